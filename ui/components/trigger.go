package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriMap/ui/styles"
)

// Trigger is the control whose activation opens a dialog.
type Trigger interface {
	Activated(msg tea.KeyMsg) bool
	View() string
}

// KeyTrigger activates on a key binding and renders as a small button.
type KeyTrigger struct {
	binding key.Binding
	label   func() string
}

// NewKeyTrigger binds keys; label is evaluated on every render so it follows
// the active locale. Without keys the trigger never activates.
func NewKeyTrigger(label func() string, keys ...string) *KeyTrigger {
	help := ""
	if len(keys) > 0 {
		help = keys[0]
	}
	binding := key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, ""))
	if len(keys) == 0 {
		binding.SetEnabled(false)
	}
	return &KeyTrigger{binding: binding, label: label}
}

func (t *KeyTrigger) Activated(msg tea.KeyMsg) bool {
	return key.Matches(msg, t.binding)
}

func (t *KeyTrigger) View() string {
	text := ""
	if t.label != nil {
		text = t.label()
	}
	if k := t.binding.Help().Key; k != "" {
		text = "[" + k + "] " + text
	}
	return styles.ButtonStyle(false).Render(text)
}
