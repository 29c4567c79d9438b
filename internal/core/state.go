package core

import (
	"maps"
	"sync"

	"github.com/Rorical/RoriMap/internal/models"
)

// MapState is the single source of truth for the user layer of the map.
type MapState struct {
	mu              sync.RWMutex
	displayedRoutes map[string]bool
	importError     string
	locale          string
	found           map[string]struct{}
	lastImport      *models.ImportBatch
}

func NewMapState(locale string) *MapState {
	return &MapState{
		displayedRoutes: make(map[string]bool),
		locale:          locale,
		found:           make(map[string]struct{}),
	}
}

// RouteDisplayed reports the display flag for key, false when unset.
func (ms *MapState) RouteDisplayed(key string) bool {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.displayedRoutes[key]
}

func (ms *MapState) DisplayedRoutes() map[string]bool {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return maps.Clone(ms.displayedRoutes)
}

func (ms *MapState) ImportError() string {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.importError
}

func (ms *MapState) Locale() string {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.locale
}

func (ms *MapState) FoundCount() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.found)
}

func (ms *MapState) Snapshot() models.MapSnapshot {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	snap := models.MapSnapshot{
		DisplayedRoutes: maps.Clone(ms.displayedRoutes),
		ImportError:     ms.importError,
		Locale:          ms.locale,
		FoundCount:      len(ms.found),
	}
	if ms.lastImport != nil {
		last := *ms.lastImport
		snap.LastImport = &last
	}
	return snap
}

func (ms *MapState) setRouteDisplayed(key string, displayed bool) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.displayedRoutes[key] = displayed
}

func (ms *MapState) setImportError(message string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.importError = message
}

// setLocale reports whether the locale actually changed.
func (ms *MapState) setLocale(locale string) bool {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.locale == locale {
		return false
	}
	ms.locale = locale
	return true
}

// applyImport merges a batch atomically: route flags, found markers, and the
// error channel are updated together.
func (ms *MapState) applyImport(batch models.ImportBatch) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for key, displayed := range batch.Routes {
		ms.displayedRoutes[key] = displayed
	}
	for _, id := range batch.Found {
		ms.found[id] = struct{}{}
	}
	ms.importError = ""
	ms.lastImport = &batch
}

// hydrate replaces persisted parts of the state.
func (ms *MapState) hydrate(displayed map[string]bool, found []string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.displayedRoutes = maps.Clone(displayed)
	if ms.displayedRoutes == nil {
		ms.displayedRoutes = make(map[string]bool)
	}
	ms.found = make(map[string]struct{}, len(found))
	for _, id := range found {
		ms.found[id] = struct{}{}
	}
}
