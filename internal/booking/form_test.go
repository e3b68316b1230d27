package booking_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfecthome/site/internal/booking"
	"github.com/perfecthome/site/pkg/statemachine"
)

type recordingSender struct {
	calls atomic.Int32
	last  atomic.Pointer[booking.Request]
	err   error
}

func (s *recordingSender) Send(_ context.Context, req booking.Request) error {
	s.calls.Add(1)
	s.last.Store(&req)
	return s.err
}

func TestModal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := booking.NewModal(false)
	assert.False(t, m.IsOpen())
	assert.Equal(t, booking.StateClosed.Name(), m.State().Name())

	require.NoError(t, m.Open(ctx))
	assert.True(t, m.IsOpen())
	require.NoError(t, m.Open(ctx), "opening twice is a no-op")
	assert.True(t, m.IsOpen())

	require.NoError(t, m.Close(ctx))
	assert.False(t, m.IsOpen())
	require.NoError(t, m.Close(ctx), "closing twice is a no-op")
}

func TestModal_FailingCloseActionKeepsItOpen(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	m := booking.NewModal(true, booking.OnClose(func(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
		return boom
	}))

	assert.ErrorIs(t, m.Close(context.Background()), boom)
	assert.True(t, m.IsOpen())
}

func TestForm_Lifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := booking.NewForm(booking.Request{}, false)
	require.NoError(t, f.Open(ctx))

	require.NoError(t, f.Set(booking.FieldName, "Jane"))
	require.NoError(t, f.Set(booking.FieldEmail, "jane@"))
	assert.True(t, f.EmailHint())
	require.NoError(t, f.Set(booking.FieldEmail, "jane@x.com"))
	assert.False(t, f.EmailHint())
	require.NoError(t, f.Set(booking.FieldEmail, " jane@x.com "))
	assert.False(t, f.EmailHint(), "surrounding spaces are trimmed before submission")
	require.NoError(t, f.Set(booking.FieldEmail, "jane@x.com"))
	assert.ErrorIs(t, f.Set("address", "x"), booking.ErrUnknownField)

	require.NoError(t, f.Close(ctx))
	assert.False(t, f.IsOpen())
	assert.True(t, f.Request().IsZero(), "closing discards the typed values")

	require.NoError(t, f.Set(booking.FieldName, "Jane"))
	f.Reset()
	assert.True(t, f.Request().IsZero())
}

func TestForm_SubmitSuccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sender := &recordingSender{}
	f := booking.NewForm(validRequest(), true)

	sub := f.Submit(ctx, sender)
	out := sub.Wait(ctx)
	require.NoError(t, f.Apply(ctx, out))

	assert.Equal(t, booking.StatusSucceeded, out.Status)
	assert.Equal(t, booking.StatusSucceeded, sub.Status())
	assert.Equal(t, int32(1), sender.calls.Load())
	assert.Equal(t, validRequest(), *sender.last.Load())

	assert.True(t, f.Request().IsZero())
	assert.False(t, f.IsOpen())
	assert.Equal(t, booking.Notice{Kind: booking.NoticeSuccess, Text: booking.MsgSuccess}, f.Notice())

	signals := f.Signals()
	assert.Equal(t, false, signals[booking.SignalOpen])
	assert.Equal(t, "", signals[booking.FieldName])
	assert.Equal(t, "", signals[booking.SignalError])
}

func TestForm_SubmitInvalidEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sender := &recordingSender{}
	req := validRequest()
	req.Email = "not-an-email"
	f := booking.NewForm(req, true)

	sub := f.Submit(ctx, sender)
	assert.Equal(t, booking.StatusFailed, sub.Status(), "rejected submissions settle immediately")

	out := sub.Wait(ctx)
	require.NoError(t, f.Apply(ctx, out))

	assert.True(t, out.Rejected())
	assert.Equal(t, int32(0), sender.calls.Load())
	assert.True(t, f.IsOpen())
	assert.Equal(t, req, f.Request())
	assert.Equal(t, booking.MsgInvalidEmail, f.Notice().Text)
	assert.Equal(t, booking.MsgInvalidEmail, f.Signals()[booking.SignalError])
}

func TestForm_SubmitProviderFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sender := &recordingSender{err: providerErr{text: "Service is unavailable"}}
	f := booking.NewForm(validRequest(), true)

	out := f.Submit(ctx, sender).Wait(ctx)
	require.NoError(t, f.Apply(ctx, out))

	assert.Equal(t, booking.StatusFailed, out.Status)
	assert.False(t, out.Rejected())
	assert.Equal(t, int32(1), sender.calls.Load())
	assert.True(t, f.IsOpen())
	assert.Equal(t, validRequest(), f.Request())
	assert.Equal(t, booking.NoticeError, f.Notice().Kind)
	assert.Contains(t, f.Notice().Text, "Service is unavailable")
}

func TestSubmission_Pending(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	sender := booking.SenderFunc(func(ctx context.Context, _ booking.Request) error {
		select {
		case <-release:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	sub := booking.Submit(context.Background(), sender, validRequest())
	assert.Equal(t, booking.StatusPending, sub.Status())

	waitCtx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	out := sub.Wait(waitCtx)
	assert.Equal(t, booking.StatusFailed, out.Status)
	assert.ErrorIs(t, out.Err, context.DeadlineExceeded)
	assert.Equal(t, booking.StatusPending, sub.Status(), "delivery continues after the waiter gives up")

	close(release)
	<-sub.Done()
	assert.Equal(t, booking.StatusSucceeded, sub.Status())
}

func TestSubmit_NilSender(t *testing.T) {
	t.Parallel()

	out := booking.Submit(context.Background(), nil, validRequest()).Wait(context.Background())
	assert.ErrorIs(t, out.Err, booking.ErrNilSender)
	assert.Equal(t, booking.NoticeError, out.Notice.Kind)
}

func TestSubmit_NormalizesBeforeSending(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{}
	req := validRequest()
	req.Name = "  Jane \n"
	req.Email = " o'brien@x.com "

	sub := booking.Submit(context.Background(), sender, req)
	<-sub.Done()
	assert.Equal(t, booking.StatusSucceeded, sub.Status())
	assert.Equal(t, "Jane", sender.last.Load().Name)
	assert.Equal(t, "Jane", sub.Request().Name)
	assert.Equal(t, "o'brien@x.com", sender.last.Load().Email)
}

func TestStatus_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "pending", booking.StatusPending.String())
	assert.Equal(t, "succeeded", booking.StatusSucceeded.String())
	assert.Equal(t, "failed", booking.StatusFailed.String())
	assert.Equal(t, "unknown", booking.Status(9).String())
}
