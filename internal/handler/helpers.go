package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"socialnet/internal/apierr"
	"socialnet/internal/domain"
	"socialnet/internal/i18n"
	"socialnet/internal/pagination"
)

// errorEnvelope is the single error wire shape; clients branch on code alone.
type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
	Method     string `json:"method"`
	Details    any    `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

// writeError maps any error onto the envelope. Unrecognized errors become
// SERVER_ERROR with a correlation id; the cause goes to the log, never to
// the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) {
		errorID := uuid.NewString()
		slog.Error("unhandled error", "errorId", errorID, "path", r.URL.Path, "method", r.Method, "error", err)
		apiErr = apierr.Server(errorID)
	}

	writeJSON(w, apiErr.StatusCode, errorEnvelope{Error: errorBody{
		Code:       apiErr.Code,
		Message:    apiErr.Message,
		StatusCode: apiErr.StatusCode,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       r.URL.Path,
		Method:     r.Method,
		Details:    apiErr.Details,
	}})
}

// decodeValidate decodes a JSON body and runs struct validation, turning
// validator failures into per-field violation details.
func (h *Handler) decodeValidate(body io.Reader, dst any) error {
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return apierr.BodyNotValid([]apierr.FieldViolation{{
			Field: "body",
			Issue: "body is not valid json",
			Type:  "json",
		}})
	}

	err := h.validate.Struct(dst)
	if err == nil {
		return nil
	}
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return err
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	violations := make([]apierr.FieldViolation, 0, len(verrs))
	for _, ve := range verrs {
		violations = append(violations, apierr.FieldViolation{
			Field: ve.Field(),
			Value: ve.Value(),
			Issue: fmt.Sprintf("failed on rule %q", ve.Tag()),
			Type:  ve.Tag(),
		})
	}
	return apierr.BodyNotValid(violations)
}

// parseListParams validates page/limit/sort_by/sort_order at the boundary.
// All violations are collected so the client sees every failing parameter in
// one response.
func (h *Handler) parseListParams(r *http.Request, sortFields []string, defaultSort string) (pagination.Params, error) {
	q := r.URL.Query()
	var violations []apierr.ParamViolation

	page := 1
	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			violations = append(violations, apierr.ParamViolation{
				Param: "page", Value: raw,
				Issue:          "must be an integer greater than or equal to 1",
				ExpectedFormat: "integer >= 1",
			})
		} else {
			page = n
		}
	}

	limit := h.cfg.API.DefaultLimit
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > h.cfg.API.MaxLimit {
			violations = append(violations, apierr.ParamViolation{
				Param: "limit", Value: raw,
				Issue:          fmt.Sprintf("must be an integer between 1 and %d", h.cfg.API.MaxLimit),
				ExpectedFormat: fmt.Sprintf("integer 1..%d", h.cfg.API.MaxLimit),
			})
		} else {
			limit = n
		}
	}

	sortBy := q.Get("sort_by")
	if sortBy == "" {
		sortBy = defaultSort
	} else if !contains(sortFields, sortBy) {
		violations = append(violations, apierr.ParamViolation{
			Param: "sort_by", Value: sortBy,
			Issue:          "not a sortable field",
			ExpectedFormat: fmt.Sprintf("one of %v", sortFields),
		})
	}

	sortOrder := q.Get("sort_order")
	switch sortOrder {
	case "":
		sortOrder = pagination.OrderDesc
	case pagination.OrderAsc, pagination.OrderDesc:
	default:
		violations = append(violations, apierr.ParamViolation{
			Param: "sort_order", Value: sortOrder,
			Issue:          "must be asc or desc",
			ExpectedFormat: "asc|desc",
		})
	}

	if len(violations) > 0 {
		return pagination.Params{}, apierr.ParamsNotValid(violations...)
	}
	return pagination.Params{Page: page, Limit: limit, SortBy: sortBy, SortOrder: sortOrder}, nil
}

// pathID extracts and format-checks an entity id path parameter before any
// store access.
func pathID(r *http.Request, name string) (string, error) {
	id := chi.URLParam(r, name)
	if !domain.IsValidID(id) {
		return "", apierr.ParamNotValid(name, id,
			"not a valid entity id", "24 lowercase hexadecimal characters")
	}
	return id, nil
}

func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, r.Host)
}

func lang(r *http.Request) string {
	return i18n.Lang(r.Header.Get("Accept-Language"))
}

func contains(list []string, v string) bool {
	for _, e := range list {
		if e == v {
			return true
		}
	}
	return false
}
