package site

import "errors"

var (
	ErrContentNotFound = errors.New("site: content file not found")
	ErrInvalidContent  = errors.New("site: invalid content")
)
