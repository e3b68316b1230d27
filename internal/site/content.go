package site

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

// Content is the copy of the landing page.
type Content struct {
	Locale   string    `yaml:"locale"`
	Brand    string    `yaml:"brand"`
	Nav      []Link    `yaml:"nav"`
	Hero     Hero      `yaml:"hero"`
	Services Services  `yaml:"services"`
	About    About     `yaml:"about"`
	Pricing  Pricing   `yaml:"pricing"`
	Booking  BookingUI `yaml:"booking"`
	Contact  Contact   `yaml:"contact"`

	printer *message.Printer
}

// Link scrolls to a section, or opens the booking modal when Booking is set.
type Link struct {
	Label   string `yaml:"label"`
	Target  string `yaml:"target"`
	Booking bool   `yaml:"booking"`
}

// Feature is an icon with a title and a sentence.
type Feature struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

type Hero struct {
	Title      string    `yaml:"title"`
	Text       string    `yaml:"text"`
	CTA        string    `yaml:"cta"`
	Highlights []Feature `yaml:"highlights"`
}

type ServiceCard struct {
	Title string   `yaml:"title"`
	Image string   `yaml:"image"`
	Alt   string   `yaml:"alt"`
	Text  string   `yaml:"text"`
	Items []string `yaml:"items"`
}

type Services struct {
	Title           string        `yaml:"title"`
	Cards           []ServiceCard `yaml:"cards"`
	AdditionalTitle string        `yaml:"additional_title"`
	Additional      []Feature     `yaml:"additional"`
}

// Stat is a headline number. Text, when set, is shown verbatim instead of
// the formatted Value.
type Stat struct {
	Value  int64  `yaml:"value"`
	Suffix string `yaml:"suffix"`
	Text   string `yaml:"text"`
	Label  string `yaml:"label"`
}

type About struct {
	Title        string    `yaml:"title"`
	Text         string    `yaml:"text"`
	Stats        []Stat    `yaml:"stats"`
	TeamTitle    string    `yaml:"team_title"`
	Team         []Feature `yaml:"team"`
	ProcessTitle string    `yaml:"process_title"`
	Process      []Feature `yaml:"process"`
}

type Package struct {
	Name  string   `yaml:"name"`
	Price string   `yaml:"price"`
	Badge string   `yaml:"badge"`
	Items []string `yaml:"items"`
}

type Pricing struct {
	Title    string    `yaml:"title"`
	CTA      string    `yaml:"cta"`
	Packages []Package `yaml:"packages"`
	Notes    []string  `yaml:"notes"`
}

// BookingUI is the copy of the booking modal.
type BookingUI struct {
	Title        string            `yaml:"title"`
	Submit       string            `yaml:"submit"`
	CloseLabel   string            `yaml:"close_label"`
	Placeholders map[string]string `yaml:"placeholders"`
}

type Hours struct {
	Days string `yaml:"days"`
	Time string `yaml:"time"`
}

type Contact struct {
	Title          string  `yaml:"title"`
	Phone          string  `yaml:"phone"`
	Email          string  `yaml:"email"`
	Address        string  `yaml:"address"`
	QRCaption      string  `yaml:"qr_caption"`
	HoursTitle     string  `yaml:"hours_title"`
	Hours          []Hours `yaml:"hours"`
	EmergencyTitle string  `yaml:"emergency_title"`
	EmergencyText  string  `yaml:"emergency_text"`
	LinksTitle     string  `yaml:"links_title"`
	Links          []Link  `yaml:"links"`
	CTA            string  `yaml:"cta"`
	Copyright      string  `yaml:"copyright"`
}

// Config points at an optional content file replacing the embedded copy.
type Config struct {
	ContentFile string `env:"SITE_CONTENT_FILE"`
}

// Load reads the content from path, or the embedded default when path is empty.
func Load(path string) (*Content, error) {
	data := defaultContent
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrContentNotFound, err)
		}
		data = b
	}
	return Parse(data)
}

// Default returns the embedded content. It panics if the embedded file is broken.
func Default() *Content {
	c, err := Parse(defaultContent)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes and checks a YAML content document.
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	tag := language.AmericanEnglish
	if c.Locale != "" {
		parsed, err := language.Parse(c.Locale)
		if err != nil {
			return nil, fmt.Errorf("%w: locale %q: %v", ErrInvalidContent, c.Locale, err)
		}
		tag = parsed
	}
	c.printer = message.NewPrinter(tag)

	return &c, nil
}

func (c *Content) validate() error {
	switch {
	case c.Brand == "":
		return fmt.Errorf("%w: brand is required", ErrInvalidContent)
	case c.Hero.CTA == "":
		return fmt.Errorf("%w: hero.cta is required", ErrInvalidContent)
	case len(c.Pricing.Packages) == 0:
		return fmt.Errorf("%w: at least one pricing package is required", ErrInvalidContent)
	case c.Contact.Phone == "":
		return fmt.Errorf("%w: contact.phone is required", ErrInvalidContent)
	case c.Booking.Title == "" || c.Booking.Submit == "":
		return fmt.Errorf("%w: booking.title and booking.submit are required", ErrInvalidContent)
	}
	return nil
}

// FormatStat renders s with locale-aware digit grouping, e.g. "1,500+".
func (c *Content) FormatStat(s Stat) string {
	if s.Text != "" {
		return s.Text
	}
	p := c.printer
	if p == nil {
		p = message.NewPrinter(language.AmericanEnglish)
	}
	return p.Sprintf("%d", s.Value) + s.Suffix
}

// Placeholder returns the placeholder of a booking field.
func (c *Content) Placeholder(field string) string {
	return c.Booking.Placeholders[field]
}

// CopyrightLine is the footer line for the given time.
func (c *Content) CopyrightLine(now time.Time) string {
	return fmt.Sprintf("© %d %s", now.Year(), c.Contact.Copyright)
}
