// Package icons maps route icon ids to remote image URLs and terminal glyphs.
package icons

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
)

var formats = []string{"png", "webp", "svg"}

var (
	ErrEmptyIcon     = errors.New("icon id is empty")
	ErrUnknownFormat = errors.New("unknown icon format")
)

// Resolver builds icon URLs below a base URL.
type Resolver struct {
	BaseURL       string
	DefaultFormat string
}

func NewResolver(baseURL, defaultFormat string) *Resolver {
	if defaultFormat == "" {
		defaultFormat = "png"
	}
	return &Resolver{BaseURL: baseURL, DefaultFormat: defaultFormat}
}

// ResolveURL returns <base>/<format>/<iconID>.<format>. An empty format uses
// the resolver default.
func (r *Resolver) ResolveURL(iconID, format string) (string, error) {
	if iconID == "" {
		return "", ErrEmptyIcon
	}
	if format == "" {
		format = r.DefaultFormat
	}
	if !slices.Contains(formats, format) {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	u, err := url.JoinPath(r.BaseURL, format, iconID+"."+format)
	if err != nil {
		return "", fmt.Errorf("invalid icon base URL %q: %w", r.BaseURL, err)
	}
	return u, nil
}

var glyphs = map[string]string{
	"ore":        "⛏",
	"wood":       "♣",
	"enemy":      "⚔",
	"chest":      "▣",
	"boss":       "☠",
	"flower":     "✿",
	"fish":       "≈",
	"waypoint":   "⌖",
	"commission": "✉",
}

// Glyph returns a single-cell symbol for iconID, "◆" when unknown.
func Glyph(iconID string) string {
	if g, ok := glyphs[iconID]; ok {
		return g
	}
	return "◆"
}
