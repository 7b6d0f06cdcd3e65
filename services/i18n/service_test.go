package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *Service {
	t.Helper()
	svc, err := New()
	require.NoError(t, err)
	return svc
}

func TestResolve(t *testing.T) {
	svc := newService(t)

	t.Run("Explicit choice wins", func(t *testing.T) {
		assert.Equal(t, "uk", svc.Resolve("uk", "es", "en-US"))
	})

	t.Run("Stored preference beats the header", func(t *testing.T) {
		assert.Equal(t, "es", svc.Resolve("", "es", "uk;q=1.0"))
	})

	t.Run("Accept-Language is matched", func(t *testing.T) {
		assert.Equal(t, "es", svc.Resolve("", "", "es-ES,es;q=0.9,en;q=0.5"))
		assert.Equal(t, "uk", svc.Resolve("", "", "uk-UA"))
	})

	t.Run("Unsupported everything falls back to the default", func(t *testing.T) {
		assert.Equal(t, "en", svc.Resolve("de", "fr", ""))
		assert.Equal(t, "en", svc.Resolve("", "", "garbage;;;"))
	})
}

func TestTranslate(t *testing.T) {
	svc := newService(t)

	t.Run("Each language has its own string", func(t *testing.T) {
		en := svc.T("en", "nav.games", nil)
		es := svc.T("es", "nav.games", nil)
		uk := svc.T("uk", "nav.games", nil)
		assert.NotEmpty(t, en)
		assert.NotEqual(t, en, es)
		assert.NotEqual(t, en, uk)
	})

	t.Run("Template arguments are substituted", func(t *testing.T) {
		got := svc.T("en", "booking.referenceNumber", map[string]any{"Number": "QB-2026-0077"})
		assert.Contains(t, got, "QB-2026-0077")
	})

	t.Run("Unknown key falls back to the key itself", func(t *testing.T) {
		assert.Equal(t, "no.such.key", svc.T("en", "no.such.key", nil))
	})
}

func TestSubscriptions(t *testing.T) {
	svc := newService(t)

	var got []string
	svc.Subscribe(func(lang string) { got = append(got, lang) })
	svc.Subscribe(func(lang string) { got = append(got, lang+"-2") })

	svc.NotifyChange("es")
	assert.Equal(t, []string{"es", "es-2"}, got)
}

func TestSupported(t *testing.T) {
	svc := newService(t)

	assert.Equal(t, []string{"en", "es", "uk"}, svc.Supported())
	assert.True(t, svc.IsSupported("uk"))
	assert.False(t, svc.IsSupported("de"))

	// Callers must not be able to reorder the shared set.
	svc.Supported()[0] = "de"
	assert.Equal(t, "en", svc.Supported()[0])
}
