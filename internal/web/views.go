package web

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/a-h/templ"

	"github.com/perfecthome/site/internal/booking"
	"github.com/perfecthome/site/internal/site"
	"github.com/perfecthome/site/pkg/handler"
	"github.com/perfecthome/site/pkg/qrcode"
)

//go:embed templates/*.html
var templateFS embed.FS

// DatastarURL is the client bundle the page loads.
const DatastarURL = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

// openBookingURL opens the modal without JavaScript.
const openBookingURL = "/?booking=open#home"

var templates = template.Must(template.New("site").Funcs(template.FuncMap{
	"cta": func(label string) ctaData { return ctaData{Href: openBookingURL, Label: label} },
	"inc": func(i int) int { return i + 1 },
}).ParseFS(templateFS, "templates/*.html"))

type ctaData struct {
	Href  string
	Label string
}

// Views renders the site. Handlers only see components, so a view can be
// swapped without touching them.
type Views struct {
	Page       func(PageParams) templ.Component
	Notice     func(booking.Notice) templ.Component
	ErrorPage  func(handler.ErrorPageParams) templ.Component
	ErrorToast func(handler.ErrorToastParams) templ.Component
}

// DefaultViews returns the embedded html/template views.
func DefaultViews() *Views {
	return &Views{
		Page:       PageView,
		Notice:     NoticeView,
		ErrorPage:  ErrorPageView,
		ErrorToast: ErrorToastView,
	}
}

// PageParams is everything the landing page shows.
type PageParams struct {
	Content *site.Content
	Booking BookingParams
	Notice  booking.Notice
	Now     time.Time
}

// BookingParams is the server-rendered state of the booking modal.
type BookingParams struct {
	UI        site.BookingUI
	Open      bool
	Request   booking.Request
	Error     string
	EmailHint bool
	Signals   string
}

// NewBookingParams captures form for rendering. The same state is embedded
// as Datastar signals so the client starts where the server left off.
func NewBookingParams(ui site.BookingUI, form *booking.Form) BookingParams {
	signals := form.Signals()
	data, _ := json.Marshal(signals)
	errText, _ := signals[booking.SignalError].(string)

	return BookingParams{
		UI:        ui,
		Open:      form.IsOpen(),
		Request:   form.Request(),
		Error:     errText,
		EmailHint: form.EmailHint(),
		Signals:   string(data),
	}
}

type statView struct {
	Value string
	Label string
}

type modalData struct {
	BookingParams
	Placeholders map[string]string
	MaxLen       map[string]int
	EmailPattern string
	HintText     string
}

type pageData struct {
	Lang        string
	DatastarURL string
	Content     *site.Content
	Booking     modalData
	Notice      booking.Notice
	Stats       []statView
	PhoneURI    template.URL
	Copyright   string
}

var maxLengths = map[string]int{
	booking.FieldName:    booking.MaxNameLen,
	booking.FieldEmail:   booking.MaxEmailLen,
	booking.FieldPhone:   booking.MaxPhoneLen,
	booking.FieldMessage: booking.MaxMessageLen,
}

func newPageData(p PageParams) pageData {
	c := p.Content
	now := p.Now
	if now.IsZero() {
		now = time.Now()
	}

	stats := make([]statView, 0, len(c.About.Stats))
	for _, s := range c.About.Stats {
		stats = append(stats, statView{Value: c.FormatStat(s), Label: s.Label})
	}

	// The number comes from our own content file, so it is safe as a URL.
	var phoneURI template.URL
	if uri, err := qrcode.TelURI(c.Contact.Phone); err == nil {
		phoneURI = template.URL(uri)
	}

	lang := c.Locale
	if lang == "" {
		lang = "en"
	}

	return pageData{
		Lang:        lang,
		DatastarURL: DatastarURL,
		Content:     c,
		Booking: modalData{
			BookingParams: p.Booking,
			Placeholders:  c.Booking.Placeholders,
			MaxLen:        maxLengths,
			EmailPattern:  booking.EmailPattern,
			HintText:      booking.MsgEmailHint,
		},
		Notice:    flash(p.Notice),
		Stats:     stats,
		PhoneURI:  phoneURI,
		Copyright: c.CopyrightLine(now),
	}
}

func render(name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return templates.ExecuteTemplate(w, name, data)
	})
}

// PageView renders the whole landing page.
func PageView(p PageParams) templ.Component {
	return render("page", newPageData(p))
}

// NoticeView renders the #booking-notice region. Only success notices are
// shown there; problems are reported inside the modal.
func NoticeView(n booking.Notice) templ.Component {
	return render("notice", flash(n))
}

func flash(n booking.Notice) booking.Notice {
	if n.Kind != booking.NoticeSuccess {
		return booking.Notice{}
	}
	return n
}

type errorPageData struct {
	handler.ErrorPageParams
	Title string
}

func ErrorPageView(p handler.ErrorPageParams) templ.Component {
	if p.RetryURL == "" {
		p.RetryURL = "/"
	}
	return render("error_page", errorPageData{ErrorPageParams: p, Title: http.StatusText(p.StatusCode)})
}

func ErrorToastView(p handler.ErrorToastParams) templ.Component {
	return render("toast", p)
}
