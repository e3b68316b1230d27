package notifier

import (
	"github.com/perfecthome/site/pkg/email"
	"github.com/perfecthome/site/pkg/emailjs"
)

// Providers understood by New.
const (
	ProviderEmailJS  = "emailjs"
	ProviderPostmark = "postmark"
	ProviderDev      = "dev"
)

// Config selects and configures the booking notification provider.
type Config struct {
	Provider   string `env:"BOOKING_PROVIDER" envDefault:"emailjs"`
	Recipient  string `env:"BOOKING_RECIPIENT"`
	Subject    string `env:"BOOKING_SUBJECT" envDefault:"New cleaning booking request"`
	DevMailDir string `env:"DEV_MAIL_DIR" envDefault:"./tmp/mail"`
	UserAgent  string `env:"EMAILJS_USER_AGENT"`

	EmailJS  emailjs.Config
	Postmark email.Config
}
