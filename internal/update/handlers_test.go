package update

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriMap/internal/core"
	"github.com/Rorical/RoriMap/internal/eventbus"
	"github.com/Rorical/RoriMap/internal/i18n"
	"github.com/Rorical/RoriMap/internal/models"
	"github.com/Rorical/RoriMap/ui/components"
)

var routes = models.RouteTable{
	"ore": {
		Enabled: true,
		Name:    models.LocalizableString{"en": "Ore", "de": "Erz"},
	},
}

type harness struct {
	model models.AppModel
	c     *Components
	store *core.Store
	bus   *eventbus.EventBus
}

func newHarness(t *testing.T, onConfirm func(string) bool) *harness {
	t.Helper()
	bus := eventbus.NewEventBus()
	t.Cleanup(bus.Close)
	store := core.NewStore(core.NewMapState("en"), core.WithEventBus(bus))
	text := i18n.NewLocalizer("en")
	dialog := components.NewImportDialog(components.ImportDialogConfig{
		OnConfirm: onConfirm,
		Trigger:   components.NewKeyTrigger(func() string { return text.Translate("import.trigger") }, "i"),
	}, store, text)
	return &harness{
		c: &Components{
			Panel:  components.NewFilterPanel(routes, store, text),
			Dialog: dialog,
			Text:   text,
			Store:  store,
		},
		store: store,
		bus:   bus,
	}
}

func (h *harness) next(t *testing.T) CoreEventMsg {
	t.Helper()
	select {
	case e := <-h.bus.Events():
		return CoreEventMsg{Event: e}
	default:
		t.Fatal("expected an event on the bus")
		return CoreEventMsg{}
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTriggerOpensDialogAndCapturesKeys(t *testing.T) {
	h := newHarness(t, nil)

	HandleKeyMsg(&h.model, h.c, runes("i"))
	if !h.c.Dialog.IsOpen() {
		t.Fatal("dialog should be open")
	}

	HandleKeyMsg(&h.model, h.c, runes("q"))
	if h.model.Quitting {
		t.Error("q inside the dialog must not quit")
	}
	if h.c.Dialog.StagedText() != "q" {
		t.Errorf("staged text = %q, want q", h.c.Dialog.StagedText())
	}
}

func TestQuit(t *testing.T) {
	h := newHarness(t, nil)
	if cmd := HandleKeyMsg(&h.model, h.c, runes("q")); cmd == nil {
		t.Fatal("expected quit command")
	}
	if !h.model.Quitting {
		t.Error("model not marked quitting")
	}
}

func TestToggleProducesNotice(t *testing.T) {
	h := newHarness(t, nil)

	cmd := HandleKeyMsg(&h.model, h.c, tea.KeyMsg{Type: tea.KeySpace})
	if cmd == nil {
		t.Fatal("expected toggled command")
	}
	if !h.store.RouteDisplayed("ore") {
		t.Fatal("route not displayed after toggle")
	}

	HandleUpdate(&h.model, h.c, cmd())
	if h.model.Notice.Text != "Route shown: Ore" {
		t.Errorf("notice = %q", h.model.Notice.Text)
	}

	HandleCoreEvent(&h.model, h.c, h.next(t))
	if h.model.Status != "0 found" {
		t.Errorf("status = %q", h.model.Status)
	}
}

func TestLocaleCycleRelabels(t *testing.T) {
	h := newHarness(t, nil)

	HandleKeyMsg(&h.model, h.c, runes("L"))
	if h.store.Locale() != "de" {
		t.Fatalf("store locale = %q, want de", h.store.Locale())
	}

	// state update first, then the locale change
	HandleCoreEvent(&h.model, h.c, h.next(t))
	HandleCoreEvent(&h.model, h.c, h.next(t))

	if h.model.Locale != "de" {
		t.Errorf("model locale = %q", h.model.Locale)
	}
	if got := h.c.Panel.Toggles()[0].Label(); got != "Erz" {
		t.Errorf("label = %q, want Erz", got)
	}
}

func TestImportNotice(t *testing.T) {
	h := newHarness(t, nil)
	HandleCoreEvent(&h.model, h.c, CoreEventMsg{Event: eventbus.StateUpdateEvent{
		Action:   models.ApplyImport{Batch: models.ImportBatch{Found: []string{"a", "b"}}},
		Snapshot: models.MapSnapshot{FoundCount: 2},
	}})
	if h.model.Notice.Text != "Imported 2 locations" || h.model.Notice.Kind != models.NoticeSuccess {
		t.Errorf("notice = %#v", h.model.Notice)
	}
	if h.model.Status != "2 found" {
		t.Errorf("status = %q", h.model.Status)
	}
}

func TestClearNoticeIgnoresStaleTicks(t *testing.T) {
	var m models.AppModel
	first := m.PushNotice(models.Notice{Text: "one"})
	m.PushNotice(models.Notice{Text: "two"})

	HandleClearNotice(&m, ClearNoticeMsg{Seq: first})
	if m.Notice.Text != "two" {
		t.Fatalf("stale tick cleared the notice")
	}
	HandleClearNotice(&m, ClearNoticeMsg{Seq: m.NoticeSeq})
	if m.Notice.Text != "" {
		t.Errorf("notice not cleared")
	}
}

func TestCopiedNotice(t *testing.T) {
	h := newHarness(t, nil)
	HandleUpdate(&h.model, h.c, components.CopiedMsg{})
	if h.model.Notice.Text != "Bookmarklet copied" {
		t.Errorf("notice = %q", h.model.Notice.Text)
	}
}

func TestWindowSize(t *testing.T) {
	h := newHarness(t, nil)
	HandleUpdate(&h.model, h.c, tea.WindowSizeMsg{Width: 100, Height: 40})
	if h.model.Width != 100 || h.model.Height != 40 {
		t.Errorf("size = %dx%d", h.model.Width, h.model.Height)
	}
}
