package notifier

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/perfecthome/site/internal/booking"
	"github.com/perfecthome/site/pkg/email"
	"github.com/perfecthome/site/pkg/emailjs"
	"github.com/perfecthome/site/pkg/logger"
)

type loggedSender struct {
	next     booking.Sender
	log      *slog.Logger
	provider string
	now      func() time.Time
}

// Logged records every delivery attempt of next. Failures are logged at
// error level with the provider's status code when one is known.
func Logged(next booking.Sender, log *slog.Logger, provider string) booking.Sender {
	if log == nil {
		log = slog.Default()
	}
	return &loggedSender{next: next, log: log, provider: provider, now: time.Now}
}

func (s *loggedSender) Send(ctx context.Context, req booking.Request) error {
	start := s.now()
	err := s.next.Send(ctx, req)

	attrs := []slog.Attr{
		logger.Component("notifier"),
		logger.Provider(s.provider),
		logger.Duration(s.now().Sub(start)),
	}

	if err != nil {
		if code, ok := statusCode(err); ok {
			attrs = append(attrs, logger.StatusCode(code))
		}
		attrs = append(attrs, logger.Event("booking_delivery_failed"), logger.Error(err))
		s.log.LogAttrs(ctx, slog.LevelError, "booking request delivery failed", attrs...)
		return err
	}

	attrs = append(attrs, logger.Event("booking_delivered"))
	s.log.LogAttrs(ctx, slog.LevelInfo, "booking request delivered", attrs...)
	return nil
}

// statusCode extracts the provider's status or error code from err.
func statusCode(err error) (int, bool) {
	var ejs *emailjs.Error
	if errors.As(err, &ejs) {
		return ejs.StatusCode, true
	}
	var pm *email.ProviderError
	if errors.As(err, &pm) {
		return int(pm.Code), true
	}
	return 0, false
}
