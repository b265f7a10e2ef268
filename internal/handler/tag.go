package handler

import (
	"fmt"
	"net/http"

	"socialnet/internal/api"
	"socialnet/internal/links"
)

func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.tags.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	base := baseURL(r)
	writeJSON(w, http.StatusOK, api.TagsResponse{
		Data:  api.NewTagListItems(tags, base),
		Total: len(tags),
		Links: links.Links{
			"self": {Href: fmt.Sprintf("%s/api/v1/tags", base)},
		},
	})
}
