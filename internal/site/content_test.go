package site_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfecthome/site/internal/site"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	c := site.Default()

	assert.Equal(t, "Perfect Home Cleaning", c.Brand)
	assert.Len(t, c.Nav, 4)
	assert.Len(t, c.Hero.Highlights, 3)
	assert.Len(t, c.Services.Cards, 3)
	assert.Len(t, c.Services.Additional, 4)
	assert.Len(t, c.About.Stats, 4)
	assert.Len(t, c.About.Team, 3)
	assert.Len(t, c.About.Process, 4)
	require.Len(t, c.Pricing.Packages, 3)
	assert.Equal(t, "Most Popular", c.Pricing.Packages[1].Badge)
	assert.Empty(t, c.Pricing.Packages[0].Badge)
	assert.Len(t, c.Contact.Hours, 3)
	assert.Equal(t, "8:00 AM - 6:00 PM", c.Contact.Hours[0].Time)
	assert.Equal(t, "Enter your email", c.Placeholder("email"))
	assert.NotEmpty(t, c.Contact.Phone)
}

func TestFormatStat(t *testing.T) {
	t.Parallel()

	c := site.Default()
	assert.Equal(t, "500+", c.FormatStat(c.About.Stats[0]))
	assert.Equal(t, "100%", c.FormatStat(c.About.Stats[2]))
	assert.Equal(t, "24/7", c.FormatStat(c.About.Stats[3]))
	assert.Equal(t, "1,500+", c.FormatStat(site.Stat{Value: 1500, Suffix: "+"}))

	de, err := site.Parse([]byte(minimalYAML + "locale: de-DE\n"))
	require.NoError(t, err)
	assert.Equal(t, "1.500", de.FormatStat(site.Stat{Value: 1500}))
}

func TestCopyrightLine(t *testing.T) {
	t.Parallel()

	c := site.Default()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "© 2026 Perfect Home Cleaning. All rights reserved.", c.CopyrightLine(now))
}

const minimalYAML = `
brand: Test Cleaning
hero:
  cta: Book
pricing:
  packages:
    - name: Basic
booking:
  title: Book
  submit: Send
contact:
  phone: "+1 555 0100"
`

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("embedded default", func(t *testing.T) {
		t.Parallel()

		c, err := site.Load("")
		require.NoError(t, err)
		assert.Equal(t, "Perfect Home Cleaning", c.Brand)
	})

	t.Run("override file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "content.yaml")
		require.NoError(t, os.WriteFile(path, []byte(minimalYAML), 0o600))

		c, err := site.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Test Cleaning", c.Brand)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := site.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, site.ErrContentNotFound)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		_, err := site.Parse([]byte("brand: [unclosed"))
		assert.ErrorIs(t, err, site.ErrInvalidContent)
	})

	t.Run("missing required copy", func(t *testing.T) {
		t.Parallel()

		_, err := site.Parse([]byte("brand: Only a brand\n"))
		assert.ErrorIs(t, err, site.ErrInvalidContent)
	})

	t.Run("bad locale", func(t *testing.T) {
		t.Parallel()

		_, err := site.Parse([]byte(minimalYAML + "locale: not_a_locale!\n"))
		assert.ErrorIs(t, err, site.ErrInvalidContent)
	})
}
