package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidQuery         = errors.New("invalid query parameters")
	ErrInvalidSignals       = errors.New("invalid datastar signals")

	// ErrBinderNotApplicable tells the handler to skip this binder and try the next one.
	ErrBinderNotApplicable = errors.New("binder not applicable to request")
)
