package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// TemplateParams are the variables substituted into the EmailJS template.
type TemplateParams map[string]string

type payload struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	AccessToken    string         `json:"accessToken,omitempty"`
	TemplateParams TemplateParams `json:"template_params"`
}

// Client sends templates through the EmailJS REST API. Safe for concurrent use.
type Client struct {
	cfg       Config
	http      *http.Client
	userAgent string
}

type Option func(*Client)

// WithHTTPClient replaces the HTTP client. Its Timeout is left untouched.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(cl *Client) { cl.userAgent = ua }
}

// New validates cfg and returns a client. APIURL defaults to DefaultAPIURL.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}

	c := &Client{
		cfg:       cfg,
		http:      &http.Client{Timeout: cfg.Timeout},
		userAgent: "perfecthome-site/1.0",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Send submits params to the configured template. It makes exactly one
// attempt. A non-2xx answer is returned as *Error joined with ErrSendFailed.
func (c *Client) Send(ctx context.Context, params TemplateParams) error {
	body, err := json.Marshal(payload{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     c.cfg.TemplateID,
		UserID:         c.cfg.PublicKey,
		AccessToken:    c.cfg.PrivateKey,
		TemplateParams: params,
	})
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return errors.Join(ErrSendFailed, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return errors.Join(ErrSendFailed, ErrTimeout, err)
		}
		return errors.Join(ErrSendFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	// 64KB is far more than EmailJS ever answers with.
	respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 64*1024))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newError(resp.StatusCode, respBody)
		if readErr != nil {
			return errors.Join(ErrSendFailed, apiErr, fmt.Errorf("read response body: %w", readErr))
		}
		return errors.Join(ErrSendFailed, apiErr)
	}
	return nil
}

func isTimeout(err error) bool {
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}
