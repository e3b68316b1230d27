// Package web serves the landing page of the site and the booking dialog.
//
// The page is rendered from the site content with html/template views
// wrapped as templ components. The booking dialog works two ways: with the
// Datastar client, the modal and its four fields are signals that are posted
// as JSON and patched back over an event stream; without JavaScript, plain
// form posts and redirects give the same flow.
//
// Routes:
//
//	GET  /                ?booking=open shows the modal, ?booking=sent the success notice
//	GET  /booking         open the modal
//	POST /booking         submit a booking request (rate limited per client IP)
//	POST /booking/close   close the modal and clear the fields
//	GET  /contact/qr.png  QR code that dials the business phone
//	GET  /static/*        stylesheet
package web
