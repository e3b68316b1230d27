package web

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/perfecthome/site/internal/booking"
	"github.com/perfecthome/site/internal/site"
	"github.com/perfecthome/site/pkg/environment"
	"github.com/perfecthome/site/pkg/handler"
	"github.com/perfecthome/site/pkg/logger"
	"github.com/perfecthome/site/pkg/ratelimiter"
)

//go:embed static
var staticFS embed.FS

// Values of the "booking" query parameter of the page.
const (
	bookingOpen = "open"
	bookingSent = "sent"
)

// sentURL is where a plain form post lands after a successful submission.
const sentURL = "/?booking=sent#home"

// Service serves the landing page and the booking dialog.
type Service struct {
	content      *site.Content
	sender       booking.Sender
	limiter      ratelimiter.RateLimiter
	views        *Views
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
	now          func() time.Time
	qr           *qrCache
}

type Option func(*Service)

// WithLimiter throttles booking submissions per client IP.
func WithLimiter(l ratelimiter.RateLimiter) Option {
	return func(s *Service) { s.limiter = l }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock overrides time.Now, used for the copyright year.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(content *site.Content, sender booking.Sender, opts ...Option) *Service {
	s := &Service{
		content: content,
		sender:  sender,
		views:   DefaultViews(),
		log:     slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.log = s.log.With(logger.Component("web"))
	s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{
		ErrorPage:  s.views.ErrorPage,
		ErrorToast: s.views.ErrorToast,
	})
	s.qr = newQRCache(content.Contact.Phone, qrSize)

	return s
}

// Handle returns the router of the site.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.errorHandler(handler.NewContext(w, r), handler.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.errorHandler(handler.NewContext(w, r), handler.ErrMethodNotAllowed)
	})

	r.Get("/", handler.Wrap(s.page, pageOptions(s.errorHandler)...))

	r.Get("/booking", handler.Wrap(s.openBooking,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.With(s.limitBookings).Post("/booking", handler.Wrap(s.submitBooking, bookingOptions(s.errorHandler)...))
	r.Post("/booking/close", handler.Wrap(s.closeBooking, bookingOptions(s.errorHandler)...))

	r.Get("/contact/qr.png", handler.Wrap(s.contactQR,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	r.With(staticCacheControl).Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(static)))

	return r
}

// staticCacheControl lets browsers keep the embedded assets for a day in
// production. Elsewhere they are revalidated on every load.
func staticCacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if environment.IsProduction(r.Context()) {
			w.Header().Set("Cache-Control", "public, max-age=86400")
		} else {
			w.Header().Set("Cache-Control", "no-cache")
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Service) pageParams(form *booking.Form, notice booking.Notice) PageParams {
	return PageParams{
		Content: s.content,
		Booking: NewBookingParams(s.content.Booking, form),
		Notice:  notice,
		Now:     s.now(),
	}
}
