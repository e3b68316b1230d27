package notifier

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/perfecthome/site/internal/booking"
	"github.com/perfecthome/site/pkg/email"
	"github.com/perfecthome/site/pkg/emailjs"
)

// New builds the booking.Sender selected by cfg.Provider, wrapped with
// delivery logging.
func New(cfg Config, log *slog.Logger) (booking.Sender, error) {
	if !booking.IsValidEmail(cfg.Recipient) {
		return nil, fmt.Errorf("%w: BOOKING_RECIPIENT must be a valid email address", ErrInvalidConfig)
	}

	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))

	var sender booking.Sender
	switch provider {
	case ProviderEmailJS:
		var opts []emailjs.Option
		if cfg.UserAgent != "" {
			opts = append(opts, emailjs.WithUserAgent(cfg.UserAgent))
		}
		client, err := emailjs.New(cfg.EmailJS, opts...)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		sender = NewEmailJS(client, cfg.Recipient)

	case ProviderPostmark:
		client, err := email.NewPostmarkClient(cfg.Postmark)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		sender = NewMail(client, cfg.Recipient, cfg.Subject)

	case ProviderDev:
		if cfg.DevMailDir == "" {
			return nil, fmt.Errorf("%w: DEV_MAIL_DIR is required for the dev provider", ErrInvalidConfig)
		}
		sender = NewMail(email.NewDevSender(cfg.DevMailDir), cfg.Recipient, cfg.Subject)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}

	return Logged(sender, log, provider), nil
}
