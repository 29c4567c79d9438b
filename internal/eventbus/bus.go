package eventbus

import (
	"errors"
	"sync"
	"time"

	"github.com/Rorical/RoriMap/internal/models"
)

// CoreEvent represents events sent from the store to the UI
type CoreEvent interface {
	CoreEvent()
}

// StateUpdateEvent - store pushes a state change to the UI
type StateUpdateEvent struct {
	Action   models.Action
	Snapshot models.MapSnapshot
}

func (e StateUpdateEvent) CoreEvent() {}

// LocaleChangedEvent - the display locale changed; text derived from it must
// be recomputed even by components that hold no locale state.
type LocaleChangedEvent struct {
	Locale string
}

func (e LocaleChangedEvent) CoreEvent() {}

// ConfigReloadedEvent - the config file changed on disk
type ConfigReloadedEvent struct {
	Path string
}

func (e ConfigReloadedEvent) CoreEvent() {}

var (
	ErrCircuitOpen = errors.New("circuit breaker is open")
	ErrBusFull     = errors.New("core to UI channel is full")
	ErrBusClosed   = errors.New("event bus is closed")
)

// EventBusError represents errors in event processing
type EventBusError struct {
	Operation string
	Err       error
	Timestamp time.Time
}

func (e EventBusError) Error() string {
	return e.Operation + ": " + e.Err.Error()
}

func (e EventBusError) Unwrap() error { return e.Err }

// CircuitBreakerState represents the state of circuit breaker
type CircuitBreakerState int

const (
	CircuitClosed CircuitBreakerState = iota
	CircuitOpen
	CircuitHalfOpen
)

// CircuitBreaker stops publishing after repeated failures until resetTimeout
// has passed.
type CircuitBreaker struct {
	mu              sync.Mutex
	maxFailures     int
	resetTimeout    time.Duration
	failureCount    int
	lastFailureTime time.Time
	state           CircuitBreakerState
	now             func() time.Time
}

func NewCircuitBreaker(maxFailures int, resetTimeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		maxFailures:  maxFailures,
		resetTimeout: resetTimeout,
		state:        CircuitClosed,
		now:          time.Now,
	}
}

func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.state == CircuitOpen && cb.now().Sub(cb.lastFailureTime) > cb.resetTimeout {
		cb.state = CircuitHalfOpen
	}
	return cb.state == CircuitOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failureCount = 0
	cb.state = CircuitClosed
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failureCount++
	cb.lastFailureTime = cb.now()
	if cb.failureCount >= cb.maxFailures {
		cb.state = CircuitOpen
	}
}

func (cb *CircuitBreaker) State() CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// EventBus carries store events to the UI loop
type EventBus struct {
	mu             sync.RWMutex
	coreToUI       chan CoreEvent
	closed         bool
	errorCallback  func(EventBusError)
	circuitBreaker *CircuitBreaker
}

func NewEventBus() *EventBus {
	return NewEventBusWithCapacity(100)
}

func NewEventBusWithCapacity(capacity int) *EventBus {
	return &EventBus{
		coreToUI:       make(chan CoreEvent, capacity),
		circuitBreaker: NewCircuitBreaker(5, 30*time.Second),
	}
}

func (eb *EventBus) SetErrorCallback(callback func(EventBusError)) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.errorCallback = callback
}

func (eb *EventBus) reportError(operation string, err error) {
	eb.circuitBreaker.RecordFailure()
	if eb.errorCallback != nil {
		eb.errorCallback(EventBusError{
			Operation: operation,
			Err:       err,
			Timestamp: time.Now(),
		})
	}
}

// Publish delivers event without blocking. A full channel or an open breaker
// drops the event and returns an error.
func (eb *EventBus) Publish(event CoreEvent) error {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	if eb.closed {
		return ErrBusClosed
	}
	if eb.circuitBreaker.IsOpen() {
		eb.reportError("Publish", ErrCircuitOpen)
		return ErrCircuitOpen
	}

	select {
	case eb.coreToUI <- event:
		eb.circuitBreaker.RecordSuccess()
		return nil
	default:
		eb.reportError("Publish", ErrBusFull)
		return ErrBusFull
	}
}

func (eb *EventBus) Events() <-chan CoreEvent {
	return eb.coreToUI
}

func (eb *EventBus) GetCircuitBreakerState() CircuitBreakerState {
	return eb.circuitBreaker.State()
}

func (eb *EventBus) Close() {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	if eb.closed {
		return
	}
	eb.closed = true
	close(eb.coreToUI)
}
