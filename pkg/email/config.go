package email

// Config holds the Postmark settings. Fields are optional at load time
// because Postmark is only one of the booking providers; NewPostmarkClient
// enforces what it needs.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL"`
	// SupportEmail is the Reply-To used when SendEmailParams.ReplyTo is empty.
	SupportEmail string `env:"SUPPORT_EMAIL"`
}
