package booking

import (
	"context"

	"github.com/perfecthome/site/pkg/async"
)

// Status is the lifecycle of one submission.
type Status int

const (
	StatusPending Status = iota
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Outcome is a settled submission.
type Outcome struct {
	Status Status
	Err    error
	Notice Notice
}

// Rejected reports whether the request never left the server because it
// failed validation.
func (o Outcome) Rejected() bool {
	return o.Status == StatusFailed && o.Notice.Kind == NoticeInvalid
}

// Submission tracks one in-flight delivery.
type Submission struct {
	req    Request
	future *async.Future[struct{}]
}

// Submit validates req and, when it passes, starts delivery through sender.
// A request that fails validation yields an already failed submission and the
// sender is not called.
func Submit(ctx context.Context, sender Sender, req Request) *Submission {
	req = req.Normalize()

	if err := req.Validate(); err != nil {
		return &Submission{req: req, future: async.Settled(struct{}{}, err)}
	}
	if sender == nil {
		return &Submission{req: req, future: async.Settled(struct{}{}, ErrNilSender)}
	}

	return &Submission{
		req: req,
		future: async.Async(ctx, req, func(ctx context.Context, req Request) (struct{}, error) {
			return struct{}{}, sender.Send(ctx, req)
		}),
	}
}

// Request is the normalized request being delivered.
func (s *Submission) Request() Request {
	return s.req
}

// Status reports the current state without blocking.
func (s *Submission) Status() Status {
	if !s.future.IsComplete() {
		return StatusPending
	}
	if _, err := s.future.Await(); err != nil {
		return StatusFailed
	}
	return StatusSucceeded
}

// Done is closed once the submission settles.
func (s *Submission) Done() <-chan struct{} {
	return s.future.Done()
}

// Wait blocks until the submission settles or ctx is done. A ctx that ends
// first produces a failed outcome while delivery may still complete.
func (s *Submission) Wait(ctx context.Context) Outcome {
	_, err := s.future.AwaitContext(ctx)
	return outcomeOf(err)
}

func outcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return Outcome{
			Status: StatusSucceeded,
			Notice: Notice{Kind: NoticeSuccess, Text: MsgSuccess},
		}
	case isValidation(err):
		return Outcome{
			Status: StatusFailed,
			Err:    err,
			Notice: Notice{Kind: NoticeInvalid, Text: ValidationNotice(err)},
		}
	default:
		return Outcome{
			Status: StatusFailed,
			Err:    err,
			Notice: Notice{Kind: NoticeError, Text: FailureNotice(err)},
		}
	}
}
