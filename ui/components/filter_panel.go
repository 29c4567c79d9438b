package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriMap/internal/models"
	"github.com/Rorical/RoriMap/ui/styles"
)

// FilterKeyMap binds the panel's keys.
type FilterKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
}

func DefaultFilterKeyMap() FilterKeyMap {
	return FilterKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "toggle")),
	}
}

// ToggledMsg is emitted after the focused toggle dispatched.
type ToggledMsg struct {
	Key   string
	Label string
}

// FilterPanel lists the visible route toggles with a cursor.
type FilterPanel struct {
	toggles []*RouteToggle
	cursor  int
	keys    FilterKeyMap
	text    Localizer
}

// NewFilterPanel builds a toggle for every key in table; hidden toggles are
// kept out of the cursor order.
func NewFilterPanel(table models.RouteTable, store RouteStore, text Localizer) *FilterPanel {
	p := &FilterPanel{keys: DefaultFilterKeyMap(), text: text}
	for _, k := range table.Keys() {
		toggle := NewRouteToggle(k, table, store, text)
		if toggle.Visible() {
			p.toggles = append(p.toggles, toggle)
		}
	}
	return p
}

func (p *FilterPanel) Toggles() []*RouteToggle { return p.toggles }
func (p *FilterPanel) Cursor() int             { return p.cursor }

// Focused returns the toggle under the cursor, nil when empty.
func (p *FilterPanel) Focused() *RouteToggle {
	if len(p.toggles) == 0 {
		return nil
	}
	return p.toggles[p.cursor]
}

// Relabel refreshes every toggle label after a locale change.
func (p *FilterPanel) Relabel() {
	for _, t := range p.toggles {
		t.Relabel()
	}
}

func (p *FilterPanel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(p.toggles) == 0 {
		return nil
	}
	switch {
	case key.Matches(keyMsg, p.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(keyMsg, p.keys.Down):
		if p.cursor < len(p.toggles)-1 {
			p.cursor++
		}
	case key.Matches(keyMsg, p.keys.Toggle):
		t := p.Focused()
		if t.Activate() {
			return func() tea.Msg { return ToggledMsg{Key: t.Key(), Label: t.Label()} }
		}
	}
	return nil
}

func (p *FilterPanel) View() string {
	var b strings.Builder
	b.WriteString(styles.PanelTitleStyle().Render(p.text.Translate("filter.title")))
	b.WriteString("\n")
	if len(p.toggles) == 0 {
		b.WriteString(styles.HelpStyle().Render(p.text.Translate("filter.empty")))
		return styles.PanelStyle().Render(b.String())
	}
	rows := make([]string, 0, len(p.toggles))
	for i, t := range p.toggles {
		rows = append(rows, t.View(i == p.cursor))
	}
	b.WriteString(strings.Join(rows, "\n"))
	return styles.PanelStyle().Render(b.String())
}
