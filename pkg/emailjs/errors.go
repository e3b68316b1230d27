package emailjs

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/perfecthome/site/pkg/sanitizer"
)

var (
	ErrInvalidConfig = errors.New("emailjs: invalid config")
	ErrSendFailed    = errors.New("emailjs: send failed")
	ErrTimeout       = errors.New("emailjs: request timed out")
)

func errConfig(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, msg)
}

// maxTextLen bounds the provider text kept on Error; EmailJS answers with a
// short plain-text sentence.
const maxTextLen = 200

// Error is a non-2xx answer from the EmailJS API.
type Error struct {
	StatusCode int
	Text       string
}

func newError(status int, body []byte) *Error {
	text := strings.Join(strings.Fields(string(body)), " ")
	if utf8.RuneCountInString(text) > maxTextLen {
		text = sanitizer.MaxLength(text, maxTextLen) + "..."
	}
	return &Error{StatusCode: status, Text: text}
}

func (e *Error) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("emailjs returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("emailjs returned status %d: %s", e.StatusCode, e.Text)
}

// ProviderText returns the message EmailJS sent back, e.g.
// "The Public Key is invalid".
func (e *Error) ProviderText() string {
	return e.Text
}
