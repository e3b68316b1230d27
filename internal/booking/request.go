package booking

import (
	"regexp"
	"strings"

	"github.com/perfecthome/site/pkg/sanitizer"
	"github.com/perfecthome/site/pkg/validator"
)

// Form field names. They double as Datastar signal names and form keys.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldMessage = "message"
)

// Maximum field lengths in characters.
const (
	MaxNameLen    = 100
	MaxEmailLen   = 254
	MaxPhoneLen   = 32
	MaxMessageLen = 2000
)

// KeyInvalidEmail is the translation key of a failed email format check.
const KeyInvalidEmail = "booking.invalid_email"

// EmailPattern is the superficial shape check applied to email addresses.
// It is shared with the client-side hint in the modal.
const EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

var emailRegex = regexp.MustCompile(EmailPattern)

// IsValidEmail reports whether s looks like local@domain.suffix.
// Deliverability is not checked.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// Request is one visitor's booking request.
type Request struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Message string `json:"message" form:"message"`
}

var (
	cleanLine = sanitizer.Compose(
		sanitizer.RemoveNullBytes,
		sanitizer.RemoveControlSequences,
		sanitizer.RemoveControlChars,
		sanitizer.SingleLine,
	)
	cleanText = sanitizer.Compose(
		sanitizer.RemoveNullBytes,
		sanitizer.NormalizeNewlines,
		sanitizer.RemoveControlSequences,
		sanitizer.RemoveControlChars,
		sanitizer.Trim,
	)
)

// Normalize returns a copy of r with control characters removed and
// surrounding whitespace trimmed. Name, email and phone are folded to one line.
func (r Request) Normalize() Request {
	return Request{
		Name:    cleanLine(r.Name),
		Email:   cleanLine(r.Email),
		Phone:   cleanLine(r.Phone),
		Message: cleanText(r.Message),
	}
}

// Validate checks that every field is present, the email is well formed and
// no field exceeds its length limit. It returns validator.ValidationErrors.
func (r Request) Validate() error {
	return validator.Apply(
		validator.RequiredString(FieldName, r.Name),
		validator.RequiredString(FieldEmail, r.Email),
		validator.RequiredString(FieldPhone, r.Phone),
		validator.RequiredString(FieldMessage, r.Message),
		validator.Matches(FieldEmail, r.Email, emailRegex, "email address", KeyInvalidEmail),
		validator.MaxLenString(FieldName, r.Name, MaxNameLen),
		validator.MaxLenString(FieldEmail, r.Email, MaxEmailLen),
		validator.MaxLenString(FieldPhone, r.Phone, MaxPhoneLen),
		validator.MaxLenString(FieldMessage, r.Message, MaxMessageLen),
	)
}

// IsZero reports whether every field is empty.
func (r Request) IsZero() bool {
	return r == Request{}
}

// Get returns the value of field.
func (r Request) Get(field string) (string, error) {
	switch field {
	case FieldName:
		return r.Name, nil
	case FieldEmail:
		return r.Email, nil
	case FieldPhone:
		return r.Phone, nil
	case FieldMessage:
		return r.Message, nil
	}
	return "", ErrUnknownField
}

func (r *Request) set(field, value string) error {
	switch field {
	case FieldName:
		r.Name = value
	case FieldEmail:
		r.Email = value
	case FieldPhone:
		r.Phone = value
	case FieldMessage:
		r.Message = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Signals is the request as the Datastar signal patch that overwrites the
// four input signals.
func (r Request) Signals() map[string]any {
	return map[string]any{
		FieldName:    r.Name,
		FieldEmail:   r.Email,
		FieldPhone:   r.Phone,
		FieldMessage: r.Message,
	}
}

// hasEmailHint reports whether the inline "valid email" hint should show:
// something was typed and, once trimmed the way Normalize trims it, it does
// not pass the format check.
func hasEmailHint(email string) bool {
	email = strings.TrimSpace(email)
	return email != "" && !IsValidEmail(email)
}
