// Package binder fills request structs from HTTP requests.
//
// Two binders are provided and are meant to be chained through
// handler.WithBinders:
//
//   - Signals() reads the Datastar signal store (JSON body, or the "datastar"
//     query parameter on GET) into `json` tags.
//   - Form() reads urlencoded and multipart form values into `form` tags and
//     serves the no-JavaScript fallback.
//
// A binder that does not apply to a request returns ErrBinderNotApplicable and
// the handler moves on to the next one. Malformed input is reported as
// ErrInvalidSignals or ErrInvalidForm.
package binder
