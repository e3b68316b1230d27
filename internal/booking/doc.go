// Package booking holds the booking dialog: the request a visitor types, the
// rules it must pass, the open/closed modal and the delivery of a request to
// a Sender.
//
// Form state lives on the client and is rebuilt for every HTTP request:
//
//	form := booking.NewForm(req, true)
//	out := form.Submit(ctx, sender).Wait(ctx)
//	_ = form.Apply(ctx, out) // success: fields emptied, modal closed
//
// A request that fails validation never reaches the Sender.
package booking
