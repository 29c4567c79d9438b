package app

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Rorical/RoriMap/internal/config"
	"github.com/Rorical/RoriMap/internal/core"
	"github.com/Rorical/RoriMap/internal/i18n"
	"github.com/Rorical/RoriMap/internal/update"
	"github.com/Rorical/RoriMap/ui/components"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func newTestApplication(t *testing.T) *Application {
	t.Helper()
	application, err := NewApplication(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("NewApplication: %v", err)
	}
	t.Cleanup(application.Stop)
	return application
}

func send(m *AppModel, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func TestModelRendersEnabledRoutes(t *testing.T) {
	m := newTestApplication(t).model
	send(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.View()
	for _, want := range []string{"RoriMap", "Ore mining", "Treasure hunt", "0 found"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Daily commissions") {
		t.Error("disabled route rendered")
	}
}

func TestModelImportFlow(t *testing.T) {
	app := newTestApplication(t)
	m := app.model
	send(m, tea.WindowSizeMsg{Width: 100, Height: 40}, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})

	dialog := m.components.Dialog
	if !dialog.IsOpen() {
		t.Fatal("import dialog did not open")
	}

	dialog.SetStagedText("{bad")
	send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !dialog.IsOpen() {
		t.Fatal("dialog closed on invalid data")
	}
	if !strings.Contains(m.View(), "import data is malformed") {
		t.Errorf("error not shown:\n%s", m.View())
	}

	dialog.SetStagedText(`{"format":"rorimap/v1","found":["a","b","a"]}`)
	send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if dialog.IsOpen() {
		t.Fatal("dialog still open after valid import")
	}
	if app.services.Store.ImportError() != "" {
		t.Errorf("error not cleared: %q", app.services.Store.ImportError())
	}
	if got := app.services.Store.Snapshot().FoundCount; got != 2 {
		t.Errorf("found = %d, want 2", got)
	}

	records, err := app.services.DB.Imports(5)
	if err != nil {
		t.Fatalf("Imports: %v", err)
	}
	if len(records) != 1 || records[0].MarkerCount != 2 {
		t.Errorf("records = %+v", records)
	}
}

func TestModelViewWithoutTrigger(t *testing.T) {
	store := core.NewStore(core.NewMapState("en"))
	text := i18n.NewLocalizer("en")
	m := &AppModel{components: &update.Components{
		Panel:  components.NewFilterPanel(config.DefaultRoutes(), store, text),
		Dialog: components.NewImportDialog(components.ImportDialogConfig{}, store, text),
		Text:   text,
		Store:  store,
	}}

	if view := m.View(); !strings.Contains(view, "RoriMap") {
		t.Errorf("view missing header:\n%s", view)
	}
}
