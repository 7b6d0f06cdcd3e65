package catalog

import (
	"context"
	"log"
	"sync"

	"questbook/models"
	"questbook/services/upstream"
)

// Service holds the localized game list for each active language. Loads
// replace a language's snapshot wholesale; a load that was superseded by a
// newer one for the same language is discarded so a slow response can never
// overwrite fresher data.
type Service struct {
	client       *upstream.Client
	demoFallback bool

	mu         sync.RWMutex
	generation map[string]uint64
	snapshots  map[string][]models.Game
}

func NewService(client *upstream.Client, demoFallback bool) *Service {
	if demoFallback {
		log.Println("catalog: demo fallback enabled; do not run this in production")
	}
	return &Service{
		client:       client,
		demoFallback: demoFallback,
		generation:   make(map[string]uint64),
		snapshots:    make(map[string][]models.Game),
	}
}

// Load fetches the game list for lang and installs it as that language's
// snapshot, unless a newer Load for the same language started in the
// meantime. With the demo fallback enabled a failed fetch serves the sample
// list instead of an error.
func (s *Service) Load(ctx context.Context, lang string) ([]models.Game, error) {
	s.mu.Lock()
	s.generation[lang]++
	gen := s.generation[lang]
	s.mu.Unlock()

	games, err := s.client.Games(ctx, lang)
	if err != nil {
		if s.demoFallback {
			log.Printf("catalog: load failed for %s, serving demo data: %v", lang, err)
			games = demoGames(lang)
		} else {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation[lang] != gen {
		// A newer load superseded this one; keep its result instead.
		return s.snapshots[lang], nil
	}
	s.snapshots[lang] = games
	return games, nil
}

// Games returns the current snapshot for lang, loading it on first use.
func (s *Service) Games(ctx context.Context, lang string) ([]models.Game, error) {
	s.mu.RLock()
	games, ok := s.snapshots[lang]
	s.mu.RUnlock()
	if ok {
		return games, nil
	}
	return s.Load(ctx, lang)
}

// OnLanguageChange is the i18n subscription hook: re-fetch the catalog for
// the newly active language.
func (s *Service) OnLanguageChange(lang string) {
	if _, err := s.Load(context.Background(), lang); err != nil {
		log.Printf("catalog: re-fetch after language change to %s failed: %v", lang, err)
	}
}
