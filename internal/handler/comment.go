package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"socialnet/internal/api"
	"socialnet/internal/i18n"
	"socialnet/internal/links"
	"socialnet/internal/service"
)

var commentSortFields = []string{"publishDate"}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	params, err := h.parseListParams(r, commentSortFields, "publishDate")
	if err != nil {
		writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	listParams := service.CommentListParams{
		Params: params,
		Post:   q.Get("post"),
		Owner:  q.Get("user"),
	}

	h.respondCommentList(w, r, listParams, "/api/v1/comments",
		links.Param{Key: "sort_by", Value: q.Get("sort_by")},
		links.Param{Key: "sort_order", Value: q.Get("sort_order")},
		links.Param{Key: "post", Value: listParams.Post},
		links.Param{Key: "user", Value: listParams.Owner},
	)
}

func (h *Handler) ListCommentsByPost(w http.ResponseWriter, r *http.Request) {
	params, err := h.parseListParams(r, commentSortFields, "publishDate")
	if err != nil {
		writeError(w, r, err)
		return
	}
	post := chi.URLParam(r, "id")
	listParams := service.CommentListParams{Params: params, Post: post}

	q := r.URL.Query()
	h.respondCommentList(w, r, listParams, fmt.Sprintf("/api/v1/comments/post/%s", post),
		links.Param{Key: "sort_by", Value: q.Get("sort_by")},
		links.Param{Key: "sort_order", Value: q.Get("sort_order")},
	)
}

func (h *Handler) ListCommentsByUser(w http.ResponseWriter, r *http.Request) {
	params, err := h.parseListParams(r, commentSortFields, "publishDate")
	if err != nil {
		writeError(w, r, err)
		return
	}
	owner := chi.URLParam(r, "id")
	listParams := service.CommentListParams{Params: params, Owner: owner}

	q := r.URL.Query()
	h.respondCommentList(w, r, listParams, fmt.Sprintf("/api/v1/comments/user/%s", owner),
		links.Param{Key: "sort_by", Value: q.Get("sort_by")},
		links.Param{Key: "sort_order", Value: q.Get("sort_order")},
	)
}

func (h *Handler) respondCommentList(w http.ResponseWriter, r *http.Request, p service.CommentListParams, endpoint string, extra ...links.Param) {
	comments, total, err := h.comments.List(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}

	base := baseURL(r)
	writeJSON(w, http.StatusOK, api.ListResponse{
		Data:  api.NewCommentResponses(comments, base, lang(r)),
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
		Links: links.Pagination(base, endpoint, p.Page, p.Limit, total, extra...),
	})
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var body api.CreateCommentRequest
	if err := h.decodeValidate(r.Body, &body); err != nil {
		writeError(w, r, err)
		return
	}

	comment, err := h.comments.Create(r.Context(), body.ToData())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, api.NewCommentResponse(comment, baseURL(r), lang(r)))
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.comments.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.DeleteResponse{
		ID:      id,
		Message: i18n.Translate("comment_deleted", lang(r)),
	})
}
