package notifier

import "errors"

var (
	ErrUnknownProvider = errors.New("notifier: unknown provider")
	ErrInvalidConfig   = errors.New("notifier: invalid configuration")
)
