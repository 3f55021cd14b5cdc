package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	// ErrUnavailable means no response was received (transport failure).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the server rejected the credential (401/403).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound means the requested resource does not exist.
	ErrNotFound = errors.New("not found")
)

// HTTPError is any non-2xx response that did not map to a more specific
// error type. Message carries the server-supplied "msg" field when the body
// had one; Body keeps the raw payload for logging.
type HTTPError struct {
	Status  int
	Message string
	Body    string
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}

func (e *HTTPError) Unwrap() error { return e.Err }

// FieldError is one entry of the backend's validation error list.
type FieldError struct {
	Field   string `json:"param"`
	Message string `json:"msg"`
}

// ValidationError is a 400 response carrying field-level issues.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Field != "" {
			msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
		} else {
			msgs = append(msgs, f.Message)
		}
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// First returns the first field message, or an empty string.
func (e *ValidationError) First() string {
	if len(e.Fields) == 0 {
		return ""
	}
	return e.Fields[0].Message
}

// errorBody mirrors the two error shapes the backend produces:
// {"msg": "..."} for simple failures and {"errors": [{...}]} for
// field validation.
type errorBody struct {
	Msg    string       `json:"msg"`
	Errors []FieldError `json:"errors"`
}

// decodeError translates a non-2xx response into the error taxonomy.
// The body is read with a 1 MB cap and fully consumed.
func decodeError(resp *http.Response) error {
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if readErr != nil {
		return &HTTPError{Status: resp.StatusCode, Body: "", Message: ""}
	}

	var body errorBody
	_ = json.Unmarshal(raw, &body)

	if len(body.Errors) > 0 {
		return &ValidationError{Fields: body.Errors}
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &HTTPError{Status: resp.StatusCode, Message: body.Msg, Body: string(raw), Err: ErrUnauthorized}
	case http.StatusNotFound:
		return &HTTPError{Status: resp.StatusCode, Message: body.Msg, Body: string(raw), Err: ErrNotFound}
	default:
		return &HTTPError{Status: resp.StatusCode, Message: body.Msg, Body: string(raw)}
	}
}

// ServerMessage extracts the server-supplied message from err, if any.
// Used by callers that surface backend wording to the user.
func ServerMessage(err error) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Message
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr.First()
	}
	return ""
}
