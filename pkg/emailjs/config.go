package emailjs

import "time"

// DefaultAPIURL is the EmailJS REST endpoint for sending a template.
const DefaultAPIURL = "https://api.emailjs.com/api/v1.0/email/send"

// Config identifies the EmailJS service, template and account keys.
type Config struct {
	ServiceID  string        `env:"EMAILJS_SERVICE_ID"`
	TemplateID string        `env:"EMAILJS_TEMPLATE_ID"`
	PublicKey  string        `env:"EMAILJS_PUBLIC_KEY"`
	PrivateKey string        `env:"EMAILJS_PRIVATE_KEY"` // required by EmailJS for non-browser calls in strict mode
	APIURL     string        `env:"EMAILJS_API_URL" envDefault:"https://api.emailjs.com/api/v1.0/email/send"`
	Timeout    time.Duration `env:"EMAILJS_TIMEOUT" envDefault:"10s"`
}

func (c Config) validate() error {
	switch {
	case c.ServiceID == "":
		return errConfig("ServiceID is required")
	case c.TemplateID == "":
		return errConfig("TemplateID is required")
	case c.PublicKey == "":
		return errConfig("PublicKey is required")
	}
	return nil
}
