package booking

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"questbook/models"
)

// MemoryStore is the in-process DraftStore used when no redis is configured
// and in tests. Entries are copied through JSON so callers never share the
// stored value.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

type memoryEntry struct {
	data    []byte
	expires time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     DraftTTL,
	}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*models.BookingDraft, error) {
	s.mu.Lock()
	entry, ok := s.entries[id]
	if ok && time.Now().After(entry.expires) {
		delete(s.entries, id)
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		return nil, ErrDraftNotFound
	}
	var draft models.BookingDraft
	if err := json.Unmarshal(entry.data, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *MemoryStore) Save(ctx context.Context, draft *models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.entries[draft.ID] = memoryEntry{data: data, expires: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
	return nil
}
