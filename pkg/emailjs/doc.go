// Package emailjs is a minimal client for the EmailJS "send" REST endpoint.
//
// EmailJS renders a stored template with the supplied variables and delivers
// it through the email service configured in the EmailJS dashboard:
//
//	client, err := emailjs.New(cfg)
//	if err != nil {
//		return err
//	}
//	err = client.Send(ctx, emailjs.TemplateParams{
//		"from_name":  "Jane",
//		"from_email": "jane@example.com",
//	})
//
// Send makes one attempt, bounded by Config.Timeout and ctx. Failures wrap
// ErrSendFailed; API rejections carry an *Error whose ProviderText is the
// message EmailJS returned, and timeouts also wrap ErrTimeout.
package emailjs
