// Package apierr defines the API error taxonomy. Every client-visible
// failure is one of five codes so callers can branch on the code alone.
package apierr

import "fmt"

const (
	CodeParamsNotValid   = "PARAMS_NOT_VALID"
	CodeBodyNotValid     = "BODY_NOT_VALID"
	CodeResourceNotFound = "RESOURCE_NOT_FOUND"
	CodePathNotFound     = "PATH_NOT_FOUND"
	CodeServerError      = "SERVER_ERROR"
)

// Error is the transport-agnostic API error. Handlers wrap it into the
// response envelope, adding the request path, method, and timestamp.
type Error struct {
	Code       string
	Message    string
	StatusCode int
	Details    any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ParamViolation describes one failing path or query parameter.
type ParamViolation struct {
	Param          string `json:"param"`
	Value          string `json:"value"`
	Issue          string `json:"issue"`
	ExpectedFormat string `json:"expectedFormat,omitempty"`
}

// FieldViolation describes one failing body field.
type FieldViolation struct {
	Field string `json:"field"`
	Value any    `json:"value"`
	Issue string `json:"issue"`
	Type  string `json:"type"`
}

func ParamsNotValid(violations ...ParamViolation) *Error {
	return &Error{
		Code:       CodeParamsNotValid,
		Message:    "Request parameters are not valid",
		StatusCode: 400,
		Details:    violations,
	}
}

func ParamNotValid(param, value, issue, expectedFormat string) *Error {
	return ParamsNotValid(ParamViolation{
		Param:          param,
		Value:          value,
		Issue:          issue,
		ExpectedFormat: expectedFormat,
	})
}

func BodyNotValid(violations []FieldViolation) *Error {
	return &Error{
		Code:       CodeBodyNotValid,
		Message:    "Request body is not valid",
		StatusCode: 400,
		Details:    violations,
	}
}

func ResourceNotFound(resource, identifier, searchedBy string) *Error {
	return &Error{
		Code:       CodeResourceNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: 404,
		Details: map[string]string{
			"resource":   resource,
			"identifier": identifier,
			"searchedBy": searchedBy,
		},
	}
}

func PathNotFound(endpoints []string) *Error {
	return &Error{
		Code:       CodePathNotFound,
		Message:    "Path not found",
		StatusCode: 404,
		Details:    map[string]any{"availableEndpoints": endpoints},
	}
}

// Server hides the underlying cause behind an opaque correlation id; the
// cause goes to the log, never to the client.
func Server(errorID string) *Error {
	return &Error{
		Code:       CodeServerError,
		Message:    "An unexpected error occurred",
		StatusCode: 500,
		Details:    map[string]string{"errorId": errorID},
	}
}
