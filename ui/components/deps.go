package components

import "github.com/Rorical/RoriMap/internal/models"

// RouteStore is what a route toggle needs from the store.
type RouteStore interface {
	RouteDisplayed(key string) bool
	Dispatch(action models.Action)
}

// ImportErrorStore is what the import dialog needs from the store.
type ImportErrorStore interface {
	ImportError() string
	Dispatch(action models.Action)
}

// Localizer resolves display text.
type Localizer interface {
	Localize(s models.LocalizableString) string
	Translate(key string) string
}
