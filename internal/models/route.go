package models

import "sort"

// LocalizableString maps a locale code ("en", "de", ...) to display text.
type LocalizableString map[string]string

// Locales returns the locale codes present, sorted.
func (s LocalizableString) Locales() []string {
	locales := make([]string, 0, len(s))
	for locale := range s {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// RouteIcons holds the icon ids used when a route is drawn in a given place.
type RouteIcons struct {
	Filter string `mapstructure:"filter" json:"filter" yaml:"filter"`
}

// RouteMeta describes a map route as it appears in the filter panel.
type RouteMeta struct {
	Enabled bool              `mapstructure:"enabled" json:"enabled" yaml:"enabled"`
	Icons   RouteIcons        `mapstructure:"icons" json:"icons" yaml:"icons"`
	Name    LocalizableString `mapstructure:"name" json:"name" yaml:"name"`
}

// RouteTable is the static, per-session route metadata keyed by route key.
type RouteTable map[string]RouteMeta

// Lookup returns the metadata for key and whether it exists.
func (t RouteTable) Lookup(key string) (RouteMeta, bool) {
	meta, ok := t[key]
	return meta, ok
}

// Keys returns every route key, sorted.
func (t RouteTable) Keys() []string {
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// EnabledKeys returns the keys of enabled routes, sorted.
func (t RouteTable) EnabledKeys() []string {
	keys := make([]string, 0, len(t))
	for _, key := range t.Keys() {
		if t[key].Enabled {
			keys = append(keys, key)
		}
	}
	return keys
}
