package web

import (
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/perfecthome/site/pkg/handler"
	"github.com/perfecthome/site/pkg/qrcode"
)

const qrSize = 256

// qrCache renders the call-us code once; the phone number never changes
// while the process runs.
type qrCache struct {
	once  sync.Once
	phone string
	size  int
	png   []byte
	err   error
}

func newQRCache(phone string, size int) *qrCache {
	return &qrCache{phone: phone, size: size}
}

func (c *qrCache) get() ([]byte, error) {
	c.once.Do(func() {
		c.png, c.err = qrcode.GeneratePhone(c.phone, c.size)
		if c.err != nil {
			c.err = errors.Join(handler.ErrInternalServerError, c.err)
		}
	})
	return c.png, c.err
}

type pngResponse []byte

func (p pngResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	h := w.Header()
	h.Set("Content-Type", "image/png")
	h.Set("Content-Length", strconv.Itoa(len(p)))
	h.Set("Cache-Control", "public, max-age=86400")
	_, err := w.Write(p)
	return err
}
