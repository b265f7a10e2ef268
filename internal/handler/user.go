package handler

import (
	"net/http"

	"socialnet/internal/api"
	"socialnet/internal/i18n"
	"socialnet/internal/links"
	"socialnet/internal/service"
)

var userSortFields = []string{"registerDate", "firstName", "lastName"}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	params, err := h.parseListParams(r, userSortFields, "registerDate")
	if err != nil {
		writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	listParams := service.UserListParams{
		Params: params,
		Title:  q.Get("title"),
		Search: q.Get("search"),
	}

	users, total, err := h.users.List(r.Context(), listParams)
	if err != nil {
		writeError(w, r, err)
		return
	}

	base := baseURL(r)
	writeJSON(w, http.StatusOK, api.ListResponse{
		Data:  api.NewUserListItems(users, base),
		Total: total,
		Page:  params.Page,
		Limit: params.Limit,
		Links: links.Pagination(base, "/api/v1/users", params.Page, params.Limit, total,
			links.Param{Key: "sort_by", Value: q.Get("sort_by")},
			links.Param{Key: "sort_order", Value: q.Get("sort_order")},
			links.Param{Key: "title", Value: listParams.Title},
			links.Param{Key: "search", Value: listParams.Search},
		),
	})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.NewUserResponse(user, baseURL(r), lang(r)))
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var body api.CreateUserRequest
	if err := h.decodeValidate(r.Body, &body); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.users.Create(r.Context(), body.ToData())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, api.NewUserResponse(user, baseURL(r), lang(r)))
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var body api.UpdateUserRequest
	if err := h.decodeValidate(r.Body, &body); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.users.Update(r.Context(), id, body.ToData())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.NewUserResponse(user, baseURL(r), lang(r)))
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.DeleteResponse{
		ID:      id,
		Message: i18n.Translate("user_deleted", lang(r)),
	})
}
