package booking

import (
	"context"
	"errors"
	"time"

	"questbook/models"
)

// Drafts are transient: they expire if the visitor walks away mid-wizard.
// Every save refreshes the TTL.
const DraftTTL = 30 * time.Minute

var ErrDraftNotFound = errors.New("booking draft not found")

// DraftStore persists wizard drafts between requests. Backed by redis in
// deployments, by memory in tests and redis-less runs.
type DraftStore interface {
	Get(ctx context.Context, id string) (*models.BookingDraft, error)
	Save(ctx context.Context, draft *models.BookingDraft) error
	Delete(ctx context.Context, id string) error
}
