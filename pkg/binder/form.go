package binder

import (
	"fmt"
	"mime"
	"net/http"
	"strings"
)

// DefaultMaxMemory caps the memory used when parsing multipart forms.
const DefaultMaxMemory = 1 << 20 // 1 MB

const (
	mediaTypeURLEncoded = "application/x-www-form-urlencoded"
	mediaTypeMultipart  = "multipart/form-data"
)

// Form binds application/x-www-form-urlencoded and multipart/form-data bodies
// into the `form` tags of a struct. Files are not bound.
//
// Requests it cannot handle (GET/HEAD, Datastar requests, other content types)
// yield ErrBinderNotApplicable so a later binder can take over. The error also
// wraps the reason, e.g. ErrMissingContentType.
//
// Supported struct tags:
//   - `form:"name"` binds to form field "name"
//   - `form:"-"`    skips the field
//
// Example:
//
//	type BookingForm struct {
//		Name  string `form:"name"`
//		Email string `form:"email"`
//	}
//
//	r.Post("/booking", handler.Wrap(submit,
//		handler.WithBinders[handler.Context, BookingForm](binder.Signals(), binder.Form()),
//	))
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Method == http.MethodGet || r.Method == http.MethodHead || isDatastarRequest(r) {
			return ErrBinderNotApplicable
		}

		mediaType, err := formMediaType(r)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBinderNotApplicable, err)
		}

		return bindForm(r, v, mediaType)
	}
}

func formMediaType(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return "", fmt.Errorf("%w: expected %s or %s", ErrMissingContentType, mediaTypeURLEncoded, mediaTypeMultipart)
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: malformed content type %q", ErrUnsupportedMediaType, contentType)
	}

	switch mediaType {
	case mediaTypeURLEncoded:
		return mediaType, nil
	case mediaTypeMultipart:
		if strings.TrimSpace(params["boundary"]) == "" {
			return "", fmt.Errorf("%w: missing boundary in content type", ErrInvalidForm)
		}
		return mediaType, nil
	default:
		return "", fmt.Errorf("%w: got %s, expected %s or %s", ErrUnsupportedMediaType, mediaType, mediaTypeURLEncoded, mediaTypeMultipart)
	}
}

func bindForm(r *http.Request, v any, mediaType string) error {
	var values map[string][]string

	switch mediaType {
	case mediaTypeMultipart:
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		values = r.MultipartForm.Value
	default:
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		values = r.PostForm
	}

	return bindToStruct(v, "form", values, ErrInvalidForm)
}
