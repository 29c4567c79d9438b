package i18n

import (
	"testing"

	"github.com/Rorical/RoriMap/internal/models"
)

func TestMatch(t *testing.T) {
	tests := map[string]string{
		"en":    "en",
		"de":    "de",
		"de-AT": "de",
		"fr-CA": "fr",
		"ja":    "en",
		"":      "en",
		"bogus": "en",
	}
	for in, want := range tests {
		if got := Match(in); got != want {
			t.Errorf("Match(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNextCycles(t *testing.T) {
	if got := Next("en"); got != "de" {
		t.Errorf("Next(en) = %q, want de", got)
	}
	if got := Next("fr"); got != "en" {
		t.Errorf("Next(fr) = %q, want en", got)
	}
}

func TestLocalize(t *testing.T) {
	name := models.LocalizableString{"en": "Ore mining", "de": "Erzabbau"}
	l := NewLocalizer("de-DE")

	if got := l.Localize(name); got != "Erzabbau" {
		t.Errorf("Localize = %q, want Erzabbau", got)
	}

	l.SetLocale("fr")
	if got := l.Localize(name); got != "Ore mining" {
		t.Errorf("fallback to English: got %q", got)
	}

	if got := l.Localize(models.LocalizableString{"it": "Minerale", "es": "Mineral"}); got != "Mineral" {
		t.Errorf("fallback to first locale: got %q", got)
	}

	if got := l.Localize(nil); got != "" {
		t.Errorf("nil string: got %q", got)
	}
}

func TestTranslate(t *testing.T) {
	l := NewLocalizer("de")

	if got := l.Translate("import.cancel"); got != "Abbrechen" {
		t.Errorf("Translate(import.cancel) = %q", got)
	}
	if got := l.Translate("app.title"); got != "RoriMap" {
		t.Errorf("expected English fallback, got %q", got)
	}
	if got := l.Translate("no.such.key"); got != "no.such.key" {
		t.Errorf("expected key fallback, got %q", got)
	}
}
