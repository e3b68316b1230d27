package booking_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/perfecthome/site/internal/booking"
)

type providerErr struct{ text string }

func (e providerErr) Error() string        { return "provider: " + e.text }
func (e providerErr) ProviderText() string { return e.text }

func TestFailureNotice(t *testing.T) {
	t.Parallel()

	t.Run("provider text", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("send: %w", providerErr{text: "The Public Key is invalid"})
		assert.Equal(t,
			"Error sending request: The Public Key is invalid. Please try again or contact us by phone.",
			booking.FailureNotice(err))
	})

	t.Run("generic text", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			"Error sending request: the request could not be delivered. Please try again or contact us by phone.",
			booking.FailureNotice(errors.New("dial tcp 10.0.0.1:443: i/o timeout")))
	})

	t.Run("empty provider text falls back", func(t *testing.T) {
		t.Parallel()

		assert.Contains(t, booking.FailureNotice(providerErr{}), booking.MsgGenericFailure)
	})
}
