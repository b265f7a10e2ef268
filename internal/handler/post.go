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

var postSortFields = []string{"publishDate", "likes"}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	params, err := h.parseListParams(r, postSortFields, "publishDate")
	if err != nil {
		writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	listParams := service.PostListParams{
		Params: params,
		Search: q.Get("search"),
	}

	h.respondPostList(w, r, listParams, "/api/v1/posts",
		links.Param{Key: "sort_by", Value: q.Get("sort_by")},
		links.Param{Key: "sort_order", Value: q.Get("sort_order")},
		links.Param{Key: "search", Value: listParams.Search},
	)
}

// ListPostsByUser scopes the listing to one owner. A malformed id is not an
// error here: no post could match, so the result is simply empty.
func (h *Handler) ListPostsByUser(w http.ResponseWriter, r *http.Request) {
	params, err := h.parseListParams(r, postSortFields, "publishDate")
	if err != nil {
		writeError(w, r, err)
		return
	}
	owner := chi.URLParam(r, "id")
	listParams := service.PostListParams{Params: params, Owner: owner}

	q := r.URL.Query()
	h.respondPostList(w, r, listParams, fmt.Sprintf("/api/v1/posts/user/%s", owner),
		links.Param{Key: "sort_by", Value: q.Get("sort_by")},
		links.Param{Key: "sort_order", Value: q.Get("sort_order")},
	)
}

func (h *Handler) ListPostsByTag(w http.ResponseWriter, r *http.Request) {
	params, err := h.parseListParams(r, postSortFields, "publishDate")
	if err != nil {
		writeError(w, r, err)
		return
	}
	tag := chi.URLParam(r, "tag")
	listParams := service.PostListParams{Params: params, Tag: tag}

	q := r.URL.Query()
	h.respondPostList(w, r, listParams, fmt.Sprintf("/api/v1/posts/tag/%s", tag),
		links.Param{Key: "sort_by", Value: q.Get("sort_by")},
		links.Param{Key: "sort_order", Value: q.Get("sort_order")},
	)
}

func (h *Handler) respondPostList(w http.ResponseWriter, r *http.Request, p service.PostListParams, endpoint string, extra ...links.Param) {
	posts, total, err := h.posts.List(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}

	base := baseURL(r)
	writeJSON(w, http.StatusOK, api.ListResponse{
		Data:  api.NewPostPreviewResponses(posts, base, lang(r)),
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
		Links: links.Pagination(base, endpoint, p.Page, p.Limit, total, extra...),
	})
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.posts.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.NewPostResponse(post, baseURL(r), lang(r)))
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var body api.CreatePostRequest
	if err := h.decodeValidate(r.Body, &body); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.posts.Create(r.Context(), body.ToData())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, api.NewPostResponse(post, baseURL(r), lang(r)))
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var body api.UpdatePostRequest
	if err := h.decodeValidate(r.Body, &body); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.posts.Update(r.Context(), id, body.ToData())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.NewPostResponse(post, baseURL(r), lang(r)))
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.posts.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.DeleteResponse{
		ID:      id,
		Message: i18n.Translate("post_deleted", lang(r)),
	})
}
