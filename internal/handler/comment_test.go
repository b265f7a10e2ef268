package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialnet/internal/apierr"
	"socialnet/internal/domain"
	"socialnet/internal/service"
)

func newCommentRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Route("/api/v1/comments", func(r chi.Router) {
		r.Get("/", h.ListComments)
		r.Post("/", h.CreateComment)
		r.Get("/post/{id}", h.ListCommentsByPost)
		r.Get("/user/{id}", h.ListCommentsByUser)
		r.Delete("/{id}", h.DeleteComment)
	})
	return r
}

func TestListCommentsFilters(t *testing.T) {
	const postID = "60d0fe4f5311236168a109cc"
	comments := &MockCommentService{
		MockList: func(p service.CommentListParams) ([]domain.Comment, int64, error) {
			assert.Equal(t, postID, p.Post)
			assert.Equal(t, "publishDate", p.SortBy)
			return []domain.Comment{}, 0, nil
		},
	}
	h := newTestHandler(nil, nil, comments, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/comments?post="+postID, nil)
	rr := httptest.NewRecorder()
	newCommentRouter(h).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Links map[string]struct {
			Href string `json:"href"`
		} `json:"_links"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "http://example.com/api/v1/comments?page=1&limit=20&post="+postID, body.Links["self"].Href)
}

func TestCreateCommentHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		comments := &MockCommentService{
			MockCreate: func(data domain.CommentCreateData) (*domain.Comment, error) {
				return &domain.Comment{ID: "60d0fe4f5311236168a109cd", Message: data.Message}, nil
			},
		}
		h := newTestHandler(nil, nil, comments, nil)

		body := []byte(`{"message":"nice post","owner":"60d0fe4f5311236168a109ca","post":"60d0fe4f5311236168a109cc"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/comments", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		newCommentRouter(h).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("missing references rejected", func(t *testing.T) {
		h := newTestHandler(nil, nil, nil, nil)

		body := []byte(`{"message":"nice post"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/comments", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		newCommentRouter(h).ServeHTTP(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		var env testErrorEnvelope
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
		assert.Equal(t, apierr.CodeBodyNotValid, env.Error.Code)
	})
}

func TestDeleteCommentHandler(t *testing.T) {
	h := newTestHandler(nil, nil, nil, nil)

	const id = "60d0fe4f5311236168a109cd"
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/comments/"+id, nil)
	rr := httptest.NewRecorder()
	newCommentRouter(h).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, id, body["id"])
	assert.Equal(t, "Comment deleted successfully", body["message"])
}

func TestListTagsHandler(t *testing.T) {
	tags := &MockTagService{
		MockList: func() ([]string, error) {
			return []string{"birds", "cats"}, nil
		},
	}
	h := newTestHandler(nil, nil, nil, tags)

	r := chi.NewRouter()
	r.Get("/api/v1/tags", h.ListTags)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tags", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Data []struct {
			Tag   string `json:"tag"`
			Links map[string]struct {
				Href string `json:"href"`
			} `json:"_links"`
		} `json:"data"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Total)
	require.Len(t, body.Data, 2)
	assert.Equal(t, "birds", body.Data[0].Tag)
	assert.Equal(t, "http://example.com/api/v1/posts/tag/birds", body.Data[0].Links["posts"].Href)
}

func TestNotFoundHandler(t *testing.T) {
	h := newTestHandler(nil, nil, nil, nil)

	r := chi.NewRouter()
	r.NotFound(h.NotFound)
	req := httptest.NewRequest(http.MethodGet, "/api/v2/nope", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	var env struct {
		Error struct {
			Code    string `json:"code"`
			Details struct {
				AvailableEndpoints []string `json:"availableEndpoints"`
			} `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.Equal(t, apierr.CodePathNotFound, env.Error.Code)
	assert.Contains(t, env.Error.Details.AvailableEndpoints, "/api/v1/users")
}
