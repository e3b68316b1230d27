package binder

import "net/http"

// Query binds URL query parameters into the `query` tags of a struct.
// It applies to every method, so it can run first and let a body binder
// overwrite shared fields.
//
// The Datastar signal parameter is a JSON document, not a value; a struct
// that tags a field `query:"datastar"` gets it verbatim.
//
// Example:
//
//	type PageRequest struct {
//		Booking string `query:"booking"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
