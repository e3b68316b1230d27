// Package handler turns typed functions into http.HandlerFunc values and
// renders their responses for both plain browser requests and Datastar
// backend actions.
//
// A handler receives a Context and a request value filled by the configured
// binders, and returns a Response:
//
//	func submit(ctx handler.Context, req booking.Request) handler.Response {
//		if err := req.Validate(); err != nil {
//			return handler.Signals(map[string]any{"bookingError": "Please fill in all fields."})
//		}
//		return handler.Redirect("/")
//	}
//
//	r.Post("/booking", handler.Wrap(submit,
//		handler.WithBinders[handler.Context, booking.Request](binder.Signals(), binder.Form()),
//		handler.WithErrorHandler[handler.Context, booking.Request](errorHandler),
//	))
//
// # Responses
//
// Templ, TemplPartial and TemplMulti render HTML for plain requests and
// element patches for Datastar requests. Signals patches the client signal
// store. Redirect answers 303 or navigates the browser through the event
// stream. Error defers to the ErrorHandler.
//
// # Errors
//
// HTTPError carries a status code and a key into Messages. NewErrorHandler
// builds an ErrorHandler that renders an error page for plain requests and
// a toast patch for Datastar requests; validator.ValidationErrors become 422.
package handler
