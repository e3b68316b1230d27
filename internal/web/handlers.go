package web

import (
	"log/slog"

	"github.com/perfecthome/site/internal/booking"
	"github.com/perfecthome/site/pkg/binder"
	"github.com/perfecthome/site/pkg/handler"
	"github.com/perfecthome/site/pkg/logger"
)

// PageRequest is the query of the landing page.
type PageRequest struct {
	Booking string `query:"booking"`
}

func pageOptions(eh handler.ErrorHandler[handler.Context]) []handler.WrapOption[handler.Context, PageRequest] {
	return []handler.WrapOption[handler.Context, PageRequest]{
		handler.WithBinders[handler.Context, PageRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, PageRequest](eh),
	}
}

// bookingOptions binds the four fields from Datastar signals, or from the
// form body when JavaScript is off.
func bookingOptions(eh handler.ErrorHandler[handler.Context]) []handler.WrapOption[handler.Context, booking.Request] {
	return []handler.WrapOption[handler.Context, booking.Request]{
		handler.WithBinders[handler.Context, booking.Request](
			binder.Signals(),
			binder.Form(),
		),
		handler.WithErrorHandler[handler.Context, booking.Request](eh),
	}
}

func (s *Service) page(ctx handler.Context, req PageRequest) handler.Response {
	form := booking.NewForm(booking.Request{}, false)

	var notice booking.Notice
	switch req.Booking {
	case bookingOpen:
		if err := form.Open(ctx); err != nil {
			return handler.Error(err)
		}
	case bookingSent:
		notice = booking.Notice{Kind: booking.NoticeSuccess, Text: booking.MsgSuccess}
	}

	return handler.Templ(s.views.Page(s.pageParams(form, notice)))
}

// openBooking shows the modal. Typed values are kept; only the error line
// and the page notice are cleared.
func (s *Service) openBooking(ctx handler.Context, _ struct{}) handler.Response {
	if !handler.IsDataStar(ctx.Request()) {
		return handler.Redirect(openBookingURL)
	}

	form := booking.NewForm(booking.Request{}, false)
	if err := form.Open(ctx); err != nil {
		return handler.Error(err)
	}

	return handler.Signals(
		map[string]any{
			booking.SignalOpen:  form.IsOpen(),
			booking.SignalError: "",
		},
		handler.Patch(s.views.Notice(form.Notice())),
	)
}

// closeBooking hides the modal and empties the fields.
func (s *Service) closeBooking(ctx handler.Context, req booking.Request) handler.Response {
	if !handler.IsDataStar(ctx.Request()) {
		return handler.Redirect("/")
	}

	form := booking.NewForm(req, true)
	if err := form.Close(ctx); err != nil {
		return handler.Error(err)
	}

	return handler.Signals(form.Signals(), handler.Patch(s.views.Notice(form.Notice())))
}

// submitBooking validates the request and hands it to the sender. The
// response waits for the delivery so the visitor sees the real result.
func (s *Service) submitBooking(ctx handler.Context, req booking.Request) handler.Response {
	form := booking.NewForm(req, true)

	out := form.Submit(ctx, s.sender).Wait(ctx)
	if err := form.Apply(ctx, out); err != nil {
		return handler.Error(err)
	}
	s.logOutcome(ctx, out)

	if handler.IsDataStar(ctx.Request()) {
		return handler.Signals(form.Signals(), handler.Patch(s.views.Notice(form.Notice())))
	}

	if out.Status == booking.StatusSucceeded {
		return handler.Redirect(sentURL)
	}
	return handler.Templ(s.views.Page(s.pageParams(form, form.Notice())))
}

func (s *Service) logOutcome(ctx handler.Context, out booking.Outcome) {
	switch {
	case out.Status == booking.StatusSucceeded:
		s.log.DebugContext(ctx, "booking request submitted", logger.Event("booking_submitted"))
	case out.Rejected():
		s.log.InfoContext(ctx, "booking request rejected",
			logger.Event("booking_rejected"),
			slog.String("reason", out.Notice.Text),
		)
	default:
		s.log.WarnContext(ctx, "booking request failed",
			logger.Event("booking_failed"),
			logger.Error(out.Err),
		)
	}
}

func (s *Service) contactQR(_ handler.Context, _ struct{}) handler.Response {
	png, err := s.qr.get()
	if err != nil {
		return handler.Error(err)
	}
	return pngResponse(png)
}
