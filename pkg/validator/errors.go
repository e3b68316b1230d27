package validator

import "errors"

// ErrValidationFailed marks a validation failure that carries no field details.
var ErrValidationFailed = errors.New("validation failed")
