package notifier

import (
	"context"
	"embed"
	htmltemplate "html/template"
	"io"
	"strings"
	texttemplate "text/template"

	"github.com/a-h/templ"

	"github.com/perfecthome/site/internal/booking"
	"github.com/perfecthome/site/pkg/email"
	"github.com/perfecthome/site/pkg/email/templates"
	"github.com/perfecthome/site/pkg/sanitizer"
)

//go:embed templates/notification.html templates/notification.txt
var templateFS embed.FS

var (
	htmlTemplate = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/notification.html"))
	textTemplate = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/notification.txt"))
)

// mailTag groups booking notifications in the provider's activity log.
const mailTag = "booking-request"

type notificationData struct {
	Subject string
	Request booking.Request
}

// NotificationEmail renders the HTML notification for req.
func NotificationEmail(subject string, req booking.Request) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return htmlTemplate.Execute(w, notificationData{Subject: subject, Request: req})
	})
}

// Mail delivers booking requests as an email through an email.EmailSender:
// Postmark in production, email.DevSender locally.
type Mail struct {
	sender    email.EmailSender
	recipient string
	subject   string
}

func NewMail(sender email.EmailSender, recipient, subject string) *Mail {
	return &Mail{sender: sender, recipient: recipient, subject: subject}
}

// Send emails req to the business. Replies go to the visitor.
func (m *Mail) Send(ctx context.Context, req booking.Request) error {
	subject := m.Subject(req)

	html, err := templates.Render(ctx, NotificationEmail(subject, req))
	if err != nil {
		return err
	}

	var text strings.Builder
	if err := textTemplate.Execute(&text, notificationData{Subject: subject, Request: req}); err != nil {
		return err
	}

	return m.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   m.recipient,
		Subject:  subject,
		BodyHTML: html,
		BodyText: text.String(),
		Tag:      mailTag,
		ReplyTo:  sanitizer.PreventHeaderInjection(req.Email),
	})
}

// Subject is the configured subject followed by the visitor's name.
func (m *Mail) Subject(req booking.Request) string {
	subject := m.subject
	if name := strings.TrimSpace(req.Name); name != "" {
		subject += " from " + name
	}
	return sanitizer.Apply(subject,
		sanitizer.PreventHeaderInjection,
		sanitizer.RemoveExtraWhitespace,
		sanitizer.Truncate(200),
	)
}
