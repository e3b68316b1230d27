package notifier

import (
	"context"

	"github.com/perfecthome/site/internal/booking"
	"github.com/perfecthome/site/pkg/emailjs"
)

// templateSender is the part of *emailjs.Client used here.
type templateSender interface {
	Send(ctx context.Context, params emailjs.TemplateParams) error
}

// EmailJS delivers booking requests as EmailJS template variables.
type EmailJS struct {
	client    templateSender
	recipient string
}

func NewEmailJS(client templateSender, recipient string) *EmailJS {
	return &EmailJS{client: client, recipient: recipient}
}

// Send maps req onto the template variables from_name, from_email, phone,
// message and to_email.
func (s *EmailJS) Send(ctx context.Context, req booking.Request) error {
	return s.client.Send(ctx, emailjs.TemplateParams{
		"from_name":  req.Name,
		"from_email": req.Email,
		"phone":      req.Phone,
		"message":    req.Message,
		"to_email":   s.recipient,
	})
}
