package errs

import "strings"

// FieldError represents a field-level validation error.
//
//	{ "field": "resume_text", "error": "cannot be empty" }
type FieldError struct {
	// Field is the JSON name of the offending request field.
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// ActionType describes what the client should do.
type ActionType string

// Action describes an optional "what the client should do next" hint.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the error type returned to API clients.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: whether the message is safe to show verbatim in a UI.
//   - Errors: per-field validation errors.
//   - Action: optional client instruction.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
	Action   *Action      `json:"action"`

	// cause is the internal error behind a 5xx, kept for logging only.
	cause error
}

// Error returns the client-facing message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Unwrap exposes the internal cause so errors.Is/As can see through the
// HTTP shape.
func (e *HTTPError) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *HTTPError with the same status and code.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)

	return ok && t.Status == e.Status && t.Code == e.Code
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
