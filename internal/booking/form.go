package booking

import (
	"context"

	"github.com/perfecthome/site/pkg/statemachine"
	"github.com/perfecthome/site/pkg/validator"
)

// NoticeKind classifies the message shown after an action.
type NoticeKind string

const (
	NoticeNone    NoticeKind = ""
	NoticeSuccess NoticeKind = "success"
	NoticeInvalid NoticeKind = "invalid"
	NoticeError   NoticeKind = "error"
)

// Notice is a message for the visitor.
type Notice struct {
	Kind NoticeKind
	Text string
}

func (n Notice) IsZero() bool {
	return n.Kind == NoticeNone && n.Text == ""
}

// Form is the state of one visitor's booking dialog: the four fields, the
// modal and the last notice. It is rebuilt from client state on every request
// and is not safe for concurrent use.
type Form struct {
	req    Request
	modal  *Modal
	notice Notice
}

// NewForm restores a form from client-held state.
func NewForm(req Request, open bool) *Form {
	f := &Form{req: req}
	f.modal = NewModal(open,
		OnOpen(func(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
			f.notice = Notice{}
			return nil
		}),
		OnClose(func(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
			f.req = Request{}
			f.notice = Notice{}
			return nil
		}),
	)
	return f
}

// Open shows the dialog and clears any previous notice.
func (f *Form) Open(ctx context.Context) error {
	return f.modal.Open(ctx)
}

// Close hides the dialog and discards the typed values.
func (f *Form) Close(ctx context.Context) error {
	return f.modal.Close(ctx)
}

func (f *Form) IsOpen() bool {
	return f.modal.IsOpen()
}

func (f *Form) Request() Request {
	return f.req
}

func (f *Form) Notice() Notice {
	return f.notice
}

// EmailHint reports whether the inline email hint is visible.
func (f *Form) EmailHint() bool {
	return hasEmailHint(f.req.Email)
}

// Set updates one field.
func (f *Form) Set(field, value string) error {
	return f.req.set(field, value)
}

// Reset empties the four fields. The modal state is left alone.
func (f *Form) Reset() {
	f.req = Request{}
}

// Submit starts delivery of the current fields.
func (f *Form) Submit(ctx context.Context, sender Sender) *Submission {
	return Submit(ctx, sender, f.req)
}

// Apply folds a settled outcome into the form. Success empties the fields
// and closes the modal; failure keeps both as they were.
func (f *Form) Apply(ctx context.Context, out Outcome) error {
	if out.Status == StatusSucceeded {
		f.req = Request{}
		if err := f.modal.Close(ctx); err != nil {
			return err
		}
	}
	f.notice = out.Notice
	return nil
}

// Signals is the full client state of the dialog as a Datastar signal patch.
func (f *Form) Signals() map[string]any {
	signals := f.req.Signals()
	signals[SignalOpen] = f.IsOpen()
	signals[SignalError] = ""
	if f.notice.Kind == NoticeInvalid || f.notice.Kind == NoticeError {
		signals[SignalError] = f.notice.Text
	}
	return signals
}

// Client-side signal names besides the four fields.
const (
	SignalOpen  = "bookingOpen"
	SignalError = "bookingError"
)

func isValidation(err error) bool {
	return validator.IsValidationError(err)
}
