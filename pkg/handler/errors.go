package handler

import "errors"

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response.
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrSSENotInitialized indicates a Datastar stream was needed on a plain request.
	ErrSSENotInitialized = errors.New("SSE not initialized for this request")
)
