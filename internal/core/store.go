package core

import (
	"fmt"
	"sync"

	"github.com/Rorical/RoriMap/internal/eventbus"
	"github.com/Rorical/RoriMap/internal/logging"
	"github.com/Rorical/RoriMap/internal/models"
)

// Dispatcher accepts actions.
type Dispatcher interface {
	Dispatch(action models.Action)
}

// Persister stores the durable parts of MapState.
type Persister interface {
	SaveRouteDisplayed(key string, displayed bool) error
	RecordImport(batch models.ImportBatch) error
	DisplayedRoutes() (map[string]bool, error)
	FoundMarkers() ([]string, error)
}

// Store applies actions to a MapState, persists durable changes and notifies
// the UI. Dispatch is serialized; reads go straight to the state.
type Store struct {
	dispatchMu sync.Mutex
	state      *MapState
	bus        *eventbus.EventBus
	persister  Persister
	logger     *logging.Logger
}

// Option configures a Store.
type Option func(*Store)

func WithEventBus(bus *eventbus.EventBus) Option {
	return func(s *Store) { s.bus = bus }
}

func WithPersister(p Persister) Option {
	return func(s *Store) { s.persister = p }
}

func WithLogger(l *logging.Logger) Option {
	return func(s *Store) { s.logger = l }
}

func NewStore(state *MapState, opts ...Option) *Store {
	s := &Store{state: state}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NopLogger()
	}
	s.logger = s.logger.WithComponent("store")
	return s
}

// Hydrate loads persisted route flags and found markers.
func (s *Store) Hydrate() error {
	if s.persister == nil {
		return nil
	}
	displayed, err := s.persister.DisplayedRoutes()
	if err != nil {
		return fmt.Errorf("failed to load displayed routes: %w", err)
	}
	found, err := s.persister.FoundMarkers()
	if err != nil {
		return fmt.Errorf("failed to load found markers: %w", err)
	}
	s.state.hydrate(displayed, found)
	s.logger.Info("store hydrated", "routes", len(displayed), "found", len(found))
	return nil
}

func (s *Store) RouteDisplayed(key string) bool { return s.state.RouteDisplayed(key) }
func (s *Store) ImportError() string            { return s.state.ImportError() }
func (s *Store) Locale() string                 { return s.state.Locale() }
func (s *Store) Snapshot() models.MapSnapshot   { return s.state.Snapshot() }

// Dispatch applies action synchronously. By the time it returns, readers see
// the new state.
func (s *Store) Dispatch(action models.Action) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	localeChanged := false

	switch a := action.(type) {
	case models.SetRouteDisplayed:
		s.state.setRouteDisplayed(a.Key, a.Value)
		s.persist("save route", func(p Persister) error { return p.SaveRouteDisplayed(a.Key, a.Value) })
	case models.ClearImportError:
		s.state.setImportError("")
	case models.SetImportError:
		s.state.setImportError(a.Message)
	case models.ApplyImport:
		s.state.applyImport(a.Batch)
		s.persist("record import", func(p Persister) error { return p.RecordImport(a.Batch) })
	case models.SetLocale:
		localeChanged = s.state.setLocale(a.Locale)
	default:
		s.logger.Warn("unknown action", "type", fmt.Sprintf("%T", action))
		return
	}

	s.logger.Debug("action applied", "action", action.ActionName())

	s.publish(eventbus.StateUpdateEvent{Action: action, Snapshot: s.state.Snapshot()})
	if localeChanged {
		s.publish(eventbus.LocaleChangedEvent{Locale: s.state.Locale()})
	}
}

func (s *Store) persist(op string, fn func(Persister) error) {
	if s.persister == nil {
		return
	}
	if err := fn(s.persister); err != nil {
		s.logger.Error("persistence failed", "op", op, "error", err)
	}
}

func (s *Store) publish(event eventbus.CoreEvent) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(event); err != nil {
		s.logger.Warn("failed to publish event", "error", err)
	}
}
