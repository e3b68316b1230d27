// Package email sends transactional emails through a provider-agnostic
// EmailSender.
//
// Implementations:
//   - NewPostmarkClient delivers through Postmark (github.com/mrz1836/postmark).
//     API rejections come back as *ProviderError joined with
//     ErrFailedToSendEmail.
//   - NewDevSender writes the HTML body and a JSON metadata file to a local
//     directory, for development.
//
// Both validate SendEmailParams first; validation errors wrap ErrInvalidParams.
// Bodies are rendered from templ components with templates.Render:
//
//	body, err := templates.Render(ctx, notification)
//	if err != nil {
//		return err
//	}
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "office@example.com",
//		Subject:  "New booking request",
//		BodyHTML: body,
//		ReplyTo:  visitorEmail,
//	})
package email
