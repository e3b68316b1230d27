package email

import (
	"errors"
	"fmt"
)

var (
	ErrFailedToSendEmail = errors.New("mailer.errors.failed_to_send_email")
	ErrInvalidConfig     = errors.New("mailer.errors.invalid_config")
	ErrInvalidParams     = errors.New("mailer.errors.invalid_params")
)

// ProviderError is a rejection reported by the mail provider's API.
type ProviderError struct {
	Code    int64
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("postmark error %d: %s", e.Code, e.Message)
}

// ProviderText returns the provider's own description of the failure.
func (e *ProviderError) ProviderText() string {
	return e.Message
}
