package dispatcher

import (
	"testing"

	"github.com/Rorical/RoriMap/internal/eventbus"
	"github.com/Rorical/RoriMap/internal/update"
)

func TestListenForCoreEventsWrapsEvent(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	ed := NewEventDispatcher(eb)
	defer ed.Stop()

	if err := eb.Publish(eventbus.LocaleChangedEvent{Locale: "fr"}); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	msg := ed.ListenForCoreEvents()()
	coreMsg, ok := msg.(update.CoreEventMsg)
	if !ok {
		t.Fatalf("got %T, want update.CoreEventMsg", msg)
	}
	if coreMsg.Event != (eventbus.LocaleChangedEvent{Locale: "fr"}) {
		t.Errorf("event = %#v", coreMsg.Event)
	}
}

func TestListenForCoreEventsStops(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	ed := NewEventDispatcher(eb)

	ed.Stop()
	if msg := ed.ListenForCoreEvents()(); msg != nil {
		t.Errorf("expected nil after Stop, got %#v", msg)
	}
}

func TestListenForCoreEventsClosedBus(t *testing.T) {
	eb := eventbus.NewEventBus()
	ed := NewEventDispatcher(eb)
	defer ed.Stop()

	eb.Close()
	if msg := ed.ListenForCoreEvents()(); msg != nil {
		t.Errorf("expected nil after Close, got %#v", msg)
	}
}
