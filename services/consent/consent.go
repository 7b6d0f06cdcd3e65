package consent

import (
	"encoding/json"
	"time"

	"github.com/gin-contrib/sessions"

	"questbook/models"
)

// Session keys. Language preference lives next to the consent record but is
// independent of it.
const (
	RecordKey   = "cookieConsent"
	LanguageKey = "language"
)

// Read returns the stored consent record, or false when the visitor has not
// chosen yet (first visit: the banner must be shown and nothing optional may
// initialize).
func Read(session sessions.Session) (*models.ConsentRecord, bool) {
	raw, ok := session.Get(RecordKey).(string)
	if !ok || raw == "" {
		return nil, false
	}
	var rec models.ConsentRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, false
	}
	return &rec, true
}

// Write replaces the stored record wholesale. Necessary is forced on and the
// timestamp refreshed; there is no partial merge.
func Write(session sessions.Session, rec models.ConsentRecord) (models.ConsentRecord, error) {
	rec.Necessary = true
	rec.Timestamp = time.Now()

	raw, err := json.Marshal(rec)
	if err != nil {
		return rec, err
	}
	session.Set(RecordKey, string(raw))
	return rec, session.Save()
}

func AcceptAll() models.ConsentRecord {
	return models.ConsentRecord{Necessary: true, Analytics: true, Marketing: true, Preferences: true}
}

func RejectAll() models.ConsentRecord {
	return models.ConsentRecord{Necessary: true}
}

// ShouldInitializeAnalytics gates third-party analytics on explicit consent.
func ShouldInitializeAnalytics(rec *models.ConsentRecord) bool {
	return rec != nil && rec.Analytics
}

func ShouldInitializeMarketing(rec *models.ConsentRecord) bool {
	return rec != nil && rec.Marketing
}
