package booking

import "context"

// Sender delivers a validated request to the business. One call is one
// best-effort attempt; retries are up to the visitor.
type Sender interface {
	Send(ctx context.Context, req Request) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, req Request) error

func (f SenderFunc) Send(ctx context.Context, req Request) error {
	return f(ctx, req)
}
