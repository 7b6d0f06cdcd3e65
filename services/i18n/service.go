package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Supported languages, default first.
var supported = []string{"en", "es", "uk"}

// Service maps (language, key, args) to display strings and tracks the
// active-language change subscriptions the catalog relies on.
type Service struct {
	bundle  *goi18n.Bundle
	matcher language.Matcher

	mu        sync.RWMutex
	listeners []func(lang string)
}

func New() (*Service, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	tags := make([]language.Tag, 0, len(supported))
	for _, code := range supported {
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+code+".json"); err != nil {
			return nil, fmt.Errorf("loading locale %s: %w", code, err)
		}
		tags = append(tags, language.Make(code))
	}

	return &Service{
		bundle:  bundle,
		matcher: language.NewMatcher(tags),
	}, nil
}

func (s *Service) Supported() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

func (s *Service) IsSupported(code string) bool {
	for _, c := range supported {
		if c == code {
			return true
		}
	}
	return false
}

// Resolve picks the active language: an explicit choice wins, then the
// stored preference, then the Accept-Language header, then the default.
func (s *Service) Resolve(explicit, stored, acceptHeader string) string {
	if s.IsSupported(explicit) {
		return explicit
	}
	if s.IsSupported(stored) {
		return stored
	}
	if acceptHeader != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptHeader); err == nil {
			_, index, conf := s.matcher.Match(tags...)
			if conf > language.No {
				return supported[index]
			}
		}
	}
	return supported[0]
}

// T looks up key for lang, interpolating args into the message template.
// Missing keys fall back to the key itself so a gap never breaks a page.
func (s *Service) T(lang, key string, args map[string]interface{}) string {
	localizer := goi18n.NewLocalizer(s.bundle, lang)
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:      key,
		TemplateData:   args,
		DefaultMessage: &goi18n.Message{ID: key, Other: key},
	})
	if err != nil {
		return key
	}
	return msg
}

// Subscribe registers a language-change listener.
func (s *Service) Subscribe(fn func(lang string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// NotifyChange tells every subscriber the active language changed.
func (s *Service) NotifyChange(lang string) {
	s.mu.RLock()
	listeners := make([]func(string), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(lang)
	}
}
