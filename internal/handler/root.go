package handler

import (
	"fmt"
	"net/http"

	"socialnet/internal/apierr"
	"socialnet/internal/links"
)

// availableEndpoints is echoed in PATH_NOT_FOUND responses and indexed by
// the API root.
var availableEndpoints = []string{
	"/api/v1/users",
	"/api/v1/users/{id}",
	"/api/v1/posts",
	"/api/v1/posts/{id}",
	"/api/v1/posts/user/{id}",
	"/api/v1/posts/tag/{tag}",
	"/api/v1/comments",
	"/api/v1/comments/{id}",
	"/api/v1/comments/post/{id}",
	"/api/v1/comments/user/{id}",
	"/api/v1/tags",
	"/health",
	"/metrics",
}

type rootResponse struct {
	Message string      `json:"message"`
	Version string      `json:"version"`
	Links   links.Links `json:"_links"`
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	base := baseURL(r)
	writeJSON(w, http.StatusOK, rootResponse{
		Message: "Welcome to the social network API",
		Version: "v1",
		Links: links.Links{
			"self":     {Href: fmt.Sprintf("%s/api/v1", base)},
			"users":    {Href: fmt.Sprintf("%s/api/v1/users", base)},
			"posts":    {Href: fmt.Sprintf("%s/api/v1/posts", base)},
			"comments": {Href: fmt.Sprintf("%s/api/v1/comments", base)},
			"tags":     {Href: fmt.Sprintf("%s/api/v1/tags", base)},
			"health":   {Href: fmt.Sprintf("%s/health", base)},
		},
	})
}

// NotFound renders the PATH_NOT_FOUND envelope for unmatched routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, apierr.PathNotFound(availableEndpoints))
}
