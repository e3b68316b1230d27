package web_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfecthome/site/internal/booking"
	"github.com/perfecthome/site/internal/site"
	"github.com/perfecthome/site/internal/web"
	"github.com/perfecthome/site/pkg/environment"
	"github.com/perfecthome/site/pkg/ratelimiter"
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

const (
	janeSignals   = `{"name":"Jane","email":"jane@example.com","phone":"555-1234","message":"Deep clean please","bookingOpen":true,"bookingError":""}`
	invalidSignal = `{"name":"Jane","email":"not-an-email","phone":"555-1234","message":"Deep clean please","bookingOpen":true,"bookingError":""}`

	// modalHidden is the server-side hiding of the modal element.
	modalHidden = `data-show="$bookingOpen" style="display: none"`
)

func newServer(t *testing.T, sender booking.Sender, opts ...web.Option) http.Handler {
	t.Helper()
	opts = append([]web.Option{
		web.WithClock(func() time.Time { return time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC) }),
	}, opts...)
	return web.NewService(site.Default(), sender, opts...).Handle()
}

func datastarPost(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Datastar-Request", "true")
	req.Header.Set("Accept", "text/event-stream")
	return req
}

func formPost(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func janeForm() url.Values {
	return url.Values{
		"name":    {"Jane"},
		"email":   {"jane@example.com"},
		"phone":   {"555-1234"},
		"message": {"Deep clean please"},
	}
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPage(t *testing.T) {
	t.Parallel()

	srv := newServer(t, &recordingSender{})

	t.Run("renders the landing page with the modal closed", func(t *testing.T) {
		t.Parallel()

		rec := serve(srv, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

		body := rec.Body.String()
		assert.Contains(t, body, "Perfect Home Cleaning")
		assert.Contains(t, body, "We Make Homes Shine")
		assert.Contains(t, body, "Most Popular")
		assert.Contains(t, body, "500+")
		assert.Contains(t, body, "24/7")
		assert.Contains(t, body, "© 2026 Perfect Home Cleaning. All rights reserved.")
		assert.Contains(t, body, `src="/contact/qr.png"`)
		assert.Contains(t, body, "tel:")
		assert.Contains(t, body, modalHidden)
		assert.Contains(t, body, "bookingOpen&#34;:false")
		assert.NotContains(t, body, booking.MsgSuccess)
	})

	t.Run("booking=open renders the modal open", func(t *testing.T) {
		t.Parallel()

		rec := serve(srv, httptest.NewRequest(http.MethodGet, "/?booking=open", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), modalHidden)
		assert.Contains(t, rec.Body.String(), "bookingOpen&#34;:true")
	})

	t.Run("booking=sent shows the success notice", func(t *testing.T) {
		t.Parallel()

		rec := serve(srv, httptest.NewRequest(http.MethodGet, "/?booking=sent", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), booking.MsgSuccess)
		assert.Contains(t, rec.Body.String(), modalHidden)
	})

	t.Run("unknown path renders the error page", func(t *testing.T) {
		t.Parallel()

		rec := serve(srv, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "does not exist")
	})

	t.Run("serves the stylesheet", func(t *testing.T) {
		t.Parallel()

		rec := serve(srv, httptest.NewRequest(http.MethodGet, "/static/site.css", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), ".modal")
		assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	})

	t.Run("caches the stylesheet in production", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/static/site.css", nil)
		req = req.WithContext(environment.WithContext(req.Context(), environment.Production))
		rec := serve(srv, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))
	})
}

func TestOpenBooking(t *testing.T) {
	t.Parallel()

	srv := newServer(t, &recordingSender{})

	t.Run("plain request redirects to the open modal", func(t *testing.T) {
		t.Parallel()

		rec := serve(srv, httptest.NewRequest(http.MethodGet, "/booking", nil))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/?booking=open#home", rec.Header().Get("Location"))
	})

	t.Run("datastar request opens the modal", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/booking", nil)
		req.Header.Set("Datastar-Request", "true")
		rec := serve(srv, req)

		body := rec.Body.String()
		assert.Contains(t, body, "datastar-patch-signals")
		assert.Contains(t, body, `"bookingOpen":true`)
		assert.Contains(t, body, `"bookingError":""`)
		assert.Contains(t, body, `id="booking-notice"`)
		assert.NotContains(t, body, `"name"`, "typed values are left alone")
	})
}

func TestSubmitBooking_Datastar(t *testing.T) {
	t.Parallel()

	t.Run("success resets the fields and closes the modal", func(t *testing.T) {
		t.Parallel()

		sender := &recordingSender{}
		rec := serve(newServer(t, sender), datastarPost("/booking", janeSignals))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, int32(1), sender.calls.Load())
		assert.Equal(t, booking.Request{
			Name:    "Jane",
			Email:   "jane@example.com",
			Phone:   "555-1234",
			Message: "Deep clean please",
		}, *sender.last.Load())

		body := rec.Body.String()
		assert.Contains(t, body, `"bookingOpen":false`)
		assert.Contains(t, body, `"name":""`)
		assert.Contains(t, body, `"email":""`)
		assert.Contains(t, body, `"phone":""`)
		assert.Contains(t, body, `"message":""`)
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, booking.MsgSuccess)
	})

	t.Run("invalid email never reaches the sender", func(t *testing.T) {
		t.Parallel()

		sender := &recordingSender{}
		rec := serve(newServer(t, sender), datastarPost("/booking", invalidSignal))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Zero(t, sender.calls.Load())

		body := rec.Body.String()
		assert.Contains(t, body, `"bookingOpen":true`)
		assert.Contains(t, body, `"bookingError":"Please enter a valid email address."`)
		assert.Contains(t, body, `"email":"not-an-email"`)
		assert.Contains(t, body, `"name":"Jane"`)
		assert.NotContains(t, body, booking.MsgSuccess)
	})

	t.Run("delivery failure keeps the state", func(t *testing.T) {
		t.Parallel()

		sender := &recordingSender{err: errors.New("connection refused")}
		rec := serve(newServer(t, sender), datastarPost("/booking", janeSignals))

		require.Equal(t, int32(1), sender.calls.Load())
		body := rec.Body.String()
		assert.Contains(t, body, `"bookingOpen":true`)
		assert.Contains(t, body, `"name":"Jane"`)
		assert.Contains(t, body, "Error sending request: the request could not be delivered.")
		assert.NotContains(t, body, "connection refused")
	})

	t.Run("malformed signals are a bad request", func(t *testing.T) {
		t.Parallel()

		sender := &recordingSender{}
		rec := serve(newServer(t, sender), datastarPost("/booking", `{"name":`))

		assert.Zero(t, sender.calls.Load())
		assert.Contains(t, rec.Body.String(), "toast")
	})
}

func TestSubmitBooking_Form(t *testing.T) {
	t.Parallel()

	t.Run("success redirects to the notice", func(t *testing.T) {
		t.Parallel()

		sender := &recordingSender{}
		rec := serve(newServer(t, sender), formPost("/booking", janeForm()))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/?booking=sent#home", rec.Header().Get("Location"))
		assert.Equal(t, int32(1), sender.calls.Load())
	})

	t.Run("rejected request re-renders the open modal", func(t *testing.T) {
		t.Parallel()

		values := janeForm()
		values.Set("email", "not-an-email")

		sender := &recordingSender{}
		rec := serve(newServer(t, sender), formPost("/booking", values))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Zero(t, sender.calls.Load())

		body := rec.Body.String()
		assert.NotContains(t, body, modalHidden)
		assert.Contains(t, body, `value="Jane"`)
		assert.Contains(t, body, `value="not-an-email"`)
		assert.Contains(t, body, booking.MsgInvalidEmail)
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()

		values := janeForm()
		values.Del("phone")

		sender := &recordingSender{}
		rec := serve(newServer(t, sender), formPost("/booking", values))

		assert.Zero(t, sender.calls.Load())
		assert.Contains(t, rec.Body.String(), booking.MsgMissingFields)
	})
}

func TestCloseBooking(t *testing.T) {
	t.Parallel()

	srv := newServer(t, &recordingSender{})

	t.Run("datastar request closes and clears", func(t *testing.T) {
		t.Parallel()

		rec := serve(srv, datastarPost("/booking/close", invalidSignal))
		body := rec.Body.String()
		assert.Contains(t, body, `"bookingOpen":false`)
		assert.Contains(t, body, `"name":""`)
		assert.Contains(t, body, `"email":""`)
		assert.Contains(t, body, `"bookingError":""`)
	})

	t.Run("plain request goes home", func(t *testing.T) {
		t.Parallel()

		rec := serve(srv, formPost("/booking/close", url.Values{}))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})
}

func TestBookingRateLimit(t *testing.T) {
	t.Parallel()

	newLimited := func(t *testing.T, sender booking.Sender) http.Handler {
		t.Helper()
		store := ratelimiter.NewMemoryStore()
		t.Cleanup(store.Close)
		bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
			Capacity:       1,
			RefillRate:     1,
			RefillInterval: time.Hour,
		})
		require.NoError(t, err)
		return newServer(t, sender, web.WithLimiter(bucket))
	}

	t.Run("plain request gets an error page", func(t *testing.T) {
		t.Parallel()

		sender := &recordingSender{}
		srv := newLimited(t, sender)

		first := serve(srv, formPost("/booking", janeForm()))
		assert.Equal(t, http.StatusSeeOther, first.Code)
		assert.Equal(t, "0", first.Header().Get("X-RateLimit-Remaining"))

		second := serve(srv, formPost("/booking", janeForm()))
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
		assert.Contains(t, second.Body.String(), "Too many requests")
		assert.Equal(t, int32(1), sender.calls.Load())
	})

	t.Run("datastar request gets the message in the modal", func(t *testing.T) {
		t.Parallel()

		sender := &recordingSender{}
		srv := newLimited(t, sender)

		serve(srv, datastarPost("/booking", janeSignals))
		rec := serve(srv, datastarPost("/booking", janeSignals))

		assert.Contains(t, rec.Body.String(), `"bookingError":"Too many requests. Please wait a moment and try again."`)
		assert.Equal(t, int32(1), sender.calls.Load())
	})

	t.Run("other clients are not affected", func(t *testing.T) {
		t.Parallel()

		sender := &recordingSender{}
		srv := newLimited(t, sender)

		first := formPost("/booking", janeForm())
		first.RemoteAddr = "192.0.2.1:1234"
		serve(srv, first)

		other := formPost("/booking", janeForm())
		other.RemoteAddr = "192.0.2.2:1234"
		rec := serve(srv, other)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, int32(2), sender.calls.Load())
	})

	t.Run("store failure lets the booking through", func(t *testing.T) {
		t.Parallel()

		sender := &recordingSender{}
		srv := newServer(t, sender, web.WithLimiter(failingLimiter{}))

		rec := serve(srv, formPost("/booking", janeForm()))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, int32(1), sender.calls.Load())
	})
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (*ratelimiter.Result, error) {
	return nil, errors.New("redis: connection refused")
}

func (failingLimiter) AllowN(context.Context, string, int) (*ratelimiter.Result, error) {
	return nil, errors.New("redis: connection refused")
}

func TestContactQR(t *testing.T) {
	t.Parallel()

	srv := newServer(t, &recordingSender{})

	rec := serve(srv, httptest.NewRequest(http.MethodGet, "/contact/qr.png", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"))

	again := serve(srv, httptest.NewRequest(http.MethodGet, "/contact/qr.png", nil))
	assert.Equal(t, rec.Body.Bytes(), again.Body.Bytes())
}
