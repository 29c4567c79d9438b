// Package i18n resolves display text for the configured locale.
package i18n

import (
	"sync"

	"golang.org/x/text/language"

	"github.com/Rorical/RoriMap/internal/models"
)

// DefaultLocale is used when nothing better matches.
const DefaultLocale = "en"

var supported = []language.Tag{
	language.English,
	language.German,
	language.French,
}

var matcher = language.NewMatcher(supported)

// Supported returns the supported locale codes in preference order.
func Supported() []string {
	codes := make([]string, len(supported))
	for i, tag := range supported {
		base, _ := tag.Base()
		codes[i] = base.String()
	}
	return codes
}

// Match returns the supported locale closest to locale ("de-AT" -> "de").
func Match(locale string) string {
	_, index := language.MatchStrings(matcher, locale)
	return Supported()[index]
}

// Next returns the supported locale after locale, wrapping around.
func Next(locale string) string {
	codes := Supported()
	current := Match(locale)
	for i, code := range codes {
		if code == current {
			return codes[(i+1)%len(codes)]
		}
	}
	return DefaultLocale
}

// Localizer implements Localize and Translate for one active locale.
type Localizer struct {
	mu     sync.RWMutex
	locale string
}

func NewLocalizer(locale string) *Localizer {
	return &Localizer{locale: Match(locale)}
}

// SetLocale switches the active locale and returns the matched code.
func (l *Localizer) SetLocale(locale string) string {
	matched := Match(locale)
	l.mu.Lock()
	l.locale = matched
	l.mu.Unlock()
	return matched
}

func (l *Localizer) Locale() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.locale
}

// Localize picks the active locale's text, then English, then the first
// locale alphabetically. An empty string yields "".
func (l *Localizer) Localize(s models.LocalizableString) string {
	if text, ok := s[l.Locale()]; ok && text != "" {
		return text
	}
	if text, ok := s[DefaultLocale]; ok && text != "" {
		return text
	}
	for _, locale := range s.Locales() {
		if s[locale] != "" {
			return s[locale]
		}
	}
	return ""
}

// Translate looks key up in the built-in catalog.
func (l *Localizer) Translate(key string) string {
	if text, ok := catalog[l.Locale()][key]; ok {
		return text
	}
	if text, ok := catalog[DefaultLocale][key]; ok {
		return text
	}
	return key
}
