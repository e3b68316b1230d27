package web

import (
	"net/http"

	"github.com/perfecthome/site/internal/booking"
	"github.com/perfecthome/site/pkg/clientip"
	"github.com/perfecthome/site/pkg/handler"
	"github.com/perfecthome/site/pkg/logger"
	"github.com/perfecthome/site/pkg/ratelimiter"
)

// bookingRateKey buckets submissions per client IP.
var bookingRateKey = ratelimiter.Composite(ratelimiter.Static("booking"), clientIP)

func clientIP(r *http.Request) string {
	if ip := clientip.GetIPFromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.GetIP(r)
}

// limitBookings applies the limiter to booking submissions. A failing store
// lets the request through: losing a booking is worse than a missed limit.
func (s *Service) limitBookings(next http.Handler) http.Handler {
	if s.limiter == nil {
		return next
	}

	return ratelimiter.Middleware(s.limiter, bookingRateKey,
		ratelimiter.WithLimitHandler(s.tooManyBookings),
		ratelimiter.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			s.log.ErrorContext(r.Context(), "rate limiter unavailable",
				logger.Error(err),
				logger.Event("rate_limit_error"),
			)
			next.ServeHTTP(w, r)
		}),
	)(next)
}

// tooManyBookings shows the limit inside the modal for Datastar requests and
// as an error page otherwise.
func (s *Service) tooManyBookings(w http.ResponseWriter, r *http.Request, res *ratelimiter.Result) {
	s.log.WarnContext(r.Context(), "booking rate limit exceeded",
		logger.Event("booking_rate_limited"),
		logger.ClientIP(clientIP(r)),
	)

	ctx := handler.NewContext(w, r)
	if !handler.IsDataStar(r) {
		s.errorHandler(ctx, handler.ErrTooManyRequests)
		return
	}

	resp := handler.Signals(map[string]any{
		booking.SignalError: handler.ErrTooManyRequests.Message(),
	})
	if err := resp.Render(w, r); err != nil {
		s.errorHandler(ctx, err)
	}
}
