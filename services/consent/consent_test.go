package consent

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questbook/models"
)

func newConsentRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))

	r.GET("/read", func(c *gin.Context) {
		rec, present := Read(sessions.Default(c))
		c.JSON(http.StatusOK, gin.H{"present": present, "consent": rec})
	})
	r.POST("/write", func(c *gin.Context) {
		var rec models.ConsentRecord
		if err := c.ShouldBindJSON(&rec); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		saved, err := Write(sessions.Default(c), rec)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, saved)
	})
	return r
}

func TestConsentRoundTrip(t *testing.T) {
	r := newConsentRouter()

	t.Run("First visit has no record", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/read", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Present bool `json:"present"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Present)
	})

	t.Run("Written record is read back on the next request", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/write", jsonBody(t, models.ConsentRecord{Analytics: true}))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		w2 := httptest.NewRecorder()
		req2, _ := http.NewRequest(http.MethodGet, "/read", nil)
		for _, c := range w.Result().Cookies() {
			req2.AddCookie(c)
		}
		r.ServeHTTP(w2, req2)

		var resp struct {
			Present bool                  `json:"present"`
			Consent *models.ConsentRecord `json:"consent"`
		}
		require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &resp))
		assert.True(t, resp.Present)
		require.NotNil(t, resp.Consent)
		assert.True(t, resp.Consent.Analytics)
		assert.False(t, resp.Consent.Marketing)
		assert.False(t, resp.Consent.Timestamp.IsZero())
	})

	t.Run("Necessary is forced on even when sent as false", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/write", jsonBody(t, models.ConsentRecord{Necessary: false}))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var saved models.ConsentRecord
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
		assert.True(t, saved.Necessary)
	})
}

func TestPresets(t *testing.T) {
	all := AcceptAll()
	assert.True(t, all.Necessary)
	assert.True(t, all.Analytics)
	assert.True(t, all.Marketing)
	assert.True(t, all.Preferences)

	none := RejectAll()
	assert.True(t, none.Necessary, "necessary can never be rejected")
	assert.False(t, none.Analytics)
	assert.False(t, none.Marketing)
	assert.False(t, none.Preferences)
}

func TestInitializationGates(t *testing.T) {
	assert.False(t, ShouldInitializeAnalytics(nil), "no record means no consent")
	assert.False(t, ShouldInitializeMarketing(nil))

	rec := &models.ConsentRecord{Analytics: true}
	assert.True(t, ShouldInitializeAnalytics(rec))
	assert.False(t, ShouldInitializeMarketing(rec))
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}
