package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questbook/config"
	"questbook/middleware"
	"questbook/models"
	"questbook/routes"
	"questbook/services/booking"
	"questbook/services/catalog"
	"questbook/services/i18n"
	"questbook/services/upstream"
)

func intPtr(n int) *int { return &n }

// newFakeAPI serves the remote booking API endpoints the flow touches.
func newFakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/csrf/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"csrf_token": "tok"})
	})
	mux.HandleFunc("/games/", func(w http.ResponseWriter, r *http.Request) {
		game := models.Game{
			ID: 1, Title: "Prison Escape", Category: "escape", Difficulty: "hard",
			Status: "available_now", Price: 30, MaxPlayers: 6, IsFeatured: true, IsActive: true,
		}
		switch r.URL.Path {
		case "/games/":
			json.NewEncoder(w).Encode([]models.Game{game})
		case "/games/1/":
			json.NewEncoder(w).Encode(game)
		case "/games/available-times/":
			json.NewEncoder(w).Encode(map[string]any{
				"time_slots": []models.TimeSlot{
					{Time: "17:00", Available: true, AvailableCapacity: intPtr(4)},
				},
			})
		case "/games/send-otp/", "/games/verify-otp/":
			json.NewEncoder(w).Encode(map[string]bool{"success": true})
		case "/games/create/":
			json.NewEncoder(w).Encode(upstream.CreateReservationResult{
				Reservation: models.Reservation{ID: 9, ReferenceNumber: "QB-2026-0009"},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
		}
	})
	mux.HandleFunc("/billing/create-payment/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"payment_url": "https://pay.example.com/s/1"})
	})
	mux.HandleFunc("/contacts/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": models.Contacts{Phone: "+34 600 000 000", Email: "hi@example.com"}})
	})
	mux.HandleFunc("/reservations/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Authentication required"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// newTestServer assembles the full application against the fake API and
// returns a client holding the session cookie.
func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	api := newFakeAPI(t)
	cfg := &config.Config{
		SessionSecret: "test-secret",
		UpstreamURL:   api.URL,
		DefaultLang:   "en",
		CORSOrigins:   []string{"*"},
	}

	i18nSvc, err := i18n.New()
	require.NoError(t, err)

	client := upstream.NewClient(cfg.UpstreamURL)
	cat := catalog.NewService(client, false)
	wizard := booking.NewWizard(booking.NewMemoryStore(), client)

	r := gin.New()
	middleware.SetUpMiddleware(r, cfg)
	routes.SetupRoutes(r, client, cat, wizard, i18nSvc)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return srv, &http.Client{Jar: jar, Timeout: 10 * time.Second}
}

func postJSON(t *testing.T, client *http.Client, url string, body any) (*http.Response, map[string]json.RawMessage) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func getJSON(t *testing.T, client *http.Client, url string) (*http.Response, map[string]json.RawMessage) {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func draftOf(t *testing.T, body map[string]json.RawMessage) models.BookingDraft {
	t.Helper()
	var draft models.BookingDraft
	require.NoError(t, json.Unmarshal(body["draft"], &draft))
	return draft
}

func TestBookingFlowEndToEnd(t *testing.T) {
	srv, client := newTestServer(t)
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	resp, body := getJSON(t, client, srv.URL+"/api/games")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var games []models.Game
	require.NoError(t, json.Unmarshal(body["games"], &games))
	require.Len(t, games, 1)

	resp, body = postJSON(t, client, srv.URL+"/api/booking", map[string]int{"game_id": 1})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.StepDateTime, draftOf(t, body).Step)

	resp, body = postJSON(t, client, srv.URL+"/api/booking/date", map[string]string{"date": tomorrow})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, draftOf(t, body).TimeSlots, 1)

	resp, body = postJSON(t, client, srv.URL+"/api/booking/time", map[string]string{"time": "17:00"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.StepPlayers, draftOf(t, body).Step)

	// Over the remaining capacity: rejected with the ceiling.
	resp, body = postJSON(t, client, srv.URL+"/api/booking/players", map[string]int{"players": 5})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "4", string(body["ceiling"]))

	resp, _ = postJSON(t, client, srv.URL+"/api/booking/players", map[string]int{"players": 4})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = postJSON(t, client, srv.URL+"/api/booking/identity", map[string]string{
		"first_name": "Ada", "last_name": "Lovelace", "email": "ada@example.com",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = postJSON(t, client, srv.URL+"/api/booking/verify-otp", map[string]string{"otp": "123456"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = postJSON(t, client, srv.URL+"/api/booking/disclaimer", map[string]bool{"accepted": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = postJSON(t, client, srv.URL+"/api/booking/confirm", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `"https://pay.example.com/s/1"`, string(body["payment_url"]))
	done := draftOf(t, body)
	assert.Equal(t, models.StepDone, done.Step)
	assert.Equal(t, "QB-2026-0009", done.ReferenceNumber)
}

func TestBookingWithoutSession(t *testing.T) {
	srv, client := newTestServer(t)

	resp, body := getJSON(t, client, srv.URL+"/api/booking")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, body["error"])
}

func TestReservationsEmptyForAnonymousVisitor(t *testing.T) {
	srv, client := newTestServer(t)

	resp, body := getJSON(t, client, srv.URL+"/api/reservations")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reservations []models.Reservation
	require.NoError(t, json.Unmarshal(body["reservations"], &reservations))
	assert.Empty(t, reservations)
}

func TestConsentEndpoints(t *testing.T) {
	srv, client := newTestServer(t)

	resp, body := getJSON(t, client, srv.URL+"/api/consent")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "true", string(body["banner_required"]))

	resp, body = postJSON(t, client, srv.URL+"/api/consent/reject-all", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rec models.ConsentRecord
	require.NoError(t, json.Unmarshal(body["consent"], &rec))
	assert.True(t, rec.Necessary)
	assert.False(t, rec.Analytics)
	assert.Equal(t, "false", string(body["initialize_analytics"]))

	resp, body = getJSON(t, client, srv.URL+"/api/consent")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "false", string(body["banner_required"]), "choice persists across requests")
}

func TestLanguageSwitching(t *testing.T) {
	srv, client := newTestServer(t)

	resp, body := getJSON(t, client, srv.URL+"/api/language")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `"en"`, string(body["language"]))

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/language", bytes.NewReader([]byte(`{"language":"es"}`)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	putResp, err := client.Do(req)
	require.NoError(t, err)
	putResp.Body.Close()
	require.Equal(t, http.StatusOK, putResp.StatusCode)

	resp, body = getJSON(t, client, srv.URL+"/api/language")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `"es"`, string(body["language"]), "preference persists in the session")

	req, err = http.NewRequest(http.MethodPut, srv.URL+"/api/language", bytes.NewReader([]byte(`{"language":"de"}`)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	putResp, err = client.Do(req)
	require.NoError(t, err)
	putResp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, putResp.StatusCode)
}

func TestAboutPage(t *testing.T) {
	srv, client := newTestServer(t)

	resp, body := getJSON(t, client, srv.URL+"/api/pages/about")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `"About Us"`, string(body["title"]))
	assert.NotEmpty(t, body["intro"])

	var seo struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	require.NoError(t, json.Unmarshal(body["seo"], &seo))
	assert.NotEmpty(t, seo.Title)
	assert.NotEmpty(t, seo.Description)

	var legal struct {
		Title     string `json:"title"`
		Documents []struct {
			Document string `json:"document"`
			Title    string `json:"title"`
		} `json:"documents"`
	}
	require.NoError(t, json.Unmarshal(body["legal"], &legal))
	require.Len(t, legal.Documents, 3)
	assert.Equal(t, "privacy", legal.Documents[0].Document)
	assert.Equal(t, "Privacy Policy", legal.Documents[0].Title)
}

func TestLegalPages(t *testing.T) {
	srv, client := newTestServer(t)

	resp, body := getJSON(t, client, srv.URL+"/api/pages/legal/privacy")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["content"])

	resp, _ = getJSON(t, client, srv.URL+"/api/pages/legal/imprint")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPing(t *testing.T) {
	srv, client := newTestServer(t)

	resp, body := getJSON(t, client, srv.URL+"/api/ping")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `"pong"`, string(body["message"]))
}
