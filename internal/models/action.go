package models

import "time"

// Action is an intent submitted to the store. Components never mutate state
// themselves; they dispatch one of the types below.
type Action interface {
	ActionName() string
}

// SetRouteDisplayed requests that a route's display flag be set to Value.
type SetRouteDisplayed struct {
	Key   string
	Value bool
}

func (SetRouteDisplayed) ActionName() string { return "set_route_displayed" }

// ClearImportError empties the import error channel.
type ClearImportError struct{}

func (ClearImportError) ActionName() string { return "clear_import_error" }

// SetImportError publishes a user-displayable import failure.
type SetImportError struct {
	Message string
}

func (SetImportError) ActionName() string { return "set_import_error" }

// ApplyImport merges a validated import batch into the store.
type ApplyImport struct {
	Batch ImportBatch
}

func (ApplyImport) ActionName() string { return "apply_import" }

// SetLocale switches the display locale.
type SetLocale struct {
	Locale string
}

func (SetLocale) ActionName() string { return "set_locale" }

// Import sources
const (
	SourcePaste       = "paste"
	SourceBookmarklet = "bookmarklet"
	SourceFile        = "file"
)

// ImportBatch is one accepted import.
type ImportBatch struct {
	ID         string
	Source     string
	Found      []string
	Routes     map[string]bool
	ImportedAt time.Time
}

// MapSnapshot is a copy of store state handed to the UI.
type MapSnapshot struct {
	DisplayedRoutes map[string]bool
	ImportError     string
	Locale          string
	FoundCount      int
	LastImport      *ImportBatch
}
