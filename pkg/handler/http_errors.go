package handler

import "net/http"

// HTTPError is an error with an HTTP status code. Key identifies the error
// kind for logs and lookups in Messages.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

// Message returns the user-facing text for e.
func (e HTTPError) Message() string {
	if msg, ok := Messages[e.Key]; ok {
		return msg
	}
	if text := http.StatusText(e.Code); text != "" {
		return text
	}
	return Messages[ErrInternalServerError.Key]
}

var (
	ErrBadRequest           = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound             = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed     = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrUnsupportedMediaType = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	ErrUnprocessableEntity  = HTTPError{Code: http.StatusUnprocessableEntity, Key: "unprocessable_entity"}
	ErrTooManyRequests      = HTTPError{Code: http.StatusTooManyRequests, Key: "too_many_requests"}

	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
)

// Messages maps error keys to the text shown to visitors.
var Messages = map[string]string{
	"bad_request":            "The request could not be understood.",
	"not_found":              "The page you are looking for does not exist.",
	"method_not_allowed":     "This action is not supported here.",
	"unsupported_media_type": "The request format is not supported.",
	"unprocessable_entity":   "Some of the submitted data is invalid.",
	"too_many_requests":      "Too many requests. Please wait a moment and try again.",
	"internal_server_error":  "Something went wrong on our side. Please try again.",
}

// NewHTTPError creates an HTTPError for a status code outside the presets.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}
