package booking

import "errors"

var (
	ErrUnknownField = errors.New("booking: unknown form field")
	ErrNilSender    = errors.New("booking: sender is nil")
)
