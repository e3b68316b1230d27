package booking

import (
	"errors"
	"fmt"

	"github.com/perfecthome/site/pkg/validator"
)

// Visitor-facing messages.
const (
	MsgSuccess       = "Request submitted successfully! We will contact you soon."
	MsgInvalidEmail  = "Please enter a valid email address."
	MsgMissingFields = "Please fill in all fields."
	MsgTooLong       = "Some fields are too long. Please shorten your message and try again."
	MsgEmailHint     = "Please enter a valid email address"

	// MsgGenericFailure stands in for provider text when none is available.
	MsgGenericFailure = "the request could not be delivered"

	sendFailureFormat = "Error sending request: %s. Please try again or contact us by phone."
)

// ProviderTexter is implemented by provider errors that carry a message
// safe to show to the visitor.
type ProviderTexter interface {
	ProviderText() string
}

// FailureNotice builds the notice shown when delivery fails. It quotes the
// provider's own text when err carries one.
func FailureNotice(err error) string {
	text := MsgGenericFailure

	var pt ProviderTexter
	if errors.As(err, &pt) {
		if t := pt.ProviderText(); t != "" {
			text = t
		}
	}

	return fmt.Sprintf(sendFailureFormat, text)
}

// ValidationNotice picks the single message for a rejected request.
// An email format problem wins over missing fields, which win over length.
func ValidationNotice(err error) string {
	errs := validator.ExtractValidationErrors(err)
	switch {
	case errs.HasKey(KeyInvalidEmail):
		return MsgInvalidEmail
	case errs.HasKey(validator.KeyRequired):
		return MsgMissingFields
	case errs.HasKey(validator.KeyMaxLength):
		return MsgTooLong
	}
	return MsgMissingFields
}
