package components

import (
	"github.com/Rorical/RoriMap/internal/icons"
	"github.com/Rorical/RoriMap/internal/models"
	"github.com/Rorical/RoriMap/ui/styles"
)

const (
	shownMarker  = "●"
	hiddenMarker = "○"
)

// RouteToggle shows one route in the filter panel and flips its display flag
// on activation. Absent or disabled routes render nothing.
type RouteToggle struct {
	key     string
	meta    models.RouteMeta
	present bool
	store   RouteStore
	text    Localizer
	label   string
}

func NewRouteToggle(key string, table models.RouteTable, store RouteStore, text Localizer) *RouteToggle {
	meta, ok := table.Lookup(key)
	t := &RouteToggle{
		key:     key,
		meta:    meta,
		present: ok,
		store:   store,
		text:    text,
	}
	t.Relabel()
	return t
}

func (t *RouteToggle) Key() string { return t.key }

// Visible reports whether the route exists and is enabled.
func (t *RouteToggle) Visible() bool {
	return t.present && t.meta.Enabled
}

// Displayed reads the current flag from the store.
func (t *RouteToggle) Displayed() bool {
	return t.store.RouteDisplayed(t.key)
}

// Label is the localized route name, falling back to the key.
func (t *RouteToggle) Label() string { return t.label }

// Relabel recomputes the label after a locale change.
func (t *RouteToggle) Relabel() {
	t.label = t.key
	if !t.present {
		return
	}
	if name := t.text.Localize(t.meta.Name); name != "" {
		t.label = name
	}
}

// Activate requests the opposite of the current flag. It reports whether an
// action was dispatched.
func (t *RouteToggle) Activate() bool {
	if !t.Visible() {
		return false
	}
	t.store.Dispatch(models.SetRouteDisplayed{Key: t.key, Value: !t.Displayed()})
	return true
}

// View renders the toggle row; "" when not visible.
func (t *RouteToggle) View(focused bool) string {
	if !t.Visible() {
		return ""
	}
	displayed := t.Displayed()
	marker := hiddenMarker
	state := t.text.Translate("filter.hidden")
	if displayed {
		marker = shownMarker
		state = t.text.Translate("filter.shown")
	}
	row := marker + " " + icons.Glyph(t.meta.Icons.Filter) + " " + t.label + "  " + styles.HelpStyle().Render(state)
	return styles.ToggleStyle(displayed, focused).Render(row)
}
