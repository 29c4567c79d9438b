package config

import (
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Rorical/RoriMap/internal/models"
)

const (
	DefaultLocale      = "en"
	DefaultIconBaseURL = "https://static.rorimap.dev/icons"
	DefaultBookmarklet = "javascript:(()=>{const d=localStorage.getItem('rorimap-user');navigator.clipboard.writeText('rorimap:'+btoa(d||'{}'))})()"
)

func setDefaults(v *viper.Viper, configDir string) {
	v.SetDefault("locale", DefaultLocale)
	v.SetDefault("data_dir", configDir)
	v.SetDefault("database", "rorimap.db")
	v.SetDefault("logging.level", "INFO")
	v.SetDefault("logging.file", "")
	v.SetDefault("icons.base_url", DefaultIconBaseURL)
	v.SetDefault("icons.format", "png")
	v.SetDefault("import.title", "")
	v.SetDefault("import.body", "")
	v.SetDefault("import.support", "")
	v.SetDefault("import.bookmarklet", DefaultBookmarklet)
}

// writeDefaultConfig writes a starter file including the default route
// table. Routes are not viper defaults: defaults merge into nested maps, so a
// user could never remove a built-in route.
func writeDefaultConfig(path string) error {
	w := viper.New()
	setDefaults(w, filepath.Dir(path))
	w.Set("routes", routesToMap(DefaultRoutes()))
	return w.WriteConfigAs(path)
}

// DefaultRoutes is the route table used when the config defines none.
func DefaultRoutes() models.RouteTable {
	return models.RouteTable{
		"ore_mining": {
			Enabled: true,
			Icons:   models.RouteIcons{Filter: "ore"},
			Name:    models.LocalizableString{"en": "Ore mining", "de": "Erzabbau", "fr": "Extraction de minerai"},
		},
		"wood_gathering": {
			Enabled: true,
			Icons:   models.RouteIcons{Filter: "wood"},
			Name:    models.LocalizableString{"en": "Wood gathering", "de": "Holzsammeln", "fr": "Récolte de bois"},
		},
		"enemy_farming": {
			Enabled: true,
			Icons:   models.RouteIcons{Filter: "enemy"},
			Name:    models.LocalizableString{"en": "Enemy farming", "de": "Gegner farmen", "fr": "Farm d'ennemis"},
		},
		"treasure_hunt": {
			Enabled: true,
			Icons:   models.RouteIcons{Filter: "chest"},
			Name:    models.LocalizableString{"en": "Treasure hunt", "de": "Schatzsuche", "fr": "Chasse au trésor"},
		},
		"daily_commissions": {
			Enabled: false,
			Icons:   models.RouteIcons{Filter: "commission"},
			Name:    models.LocalizableString{"en": "Daily commissions", "de": "Tägliche Aufträge", "fr": "Commissions quotidiennes"},
		},
	}
}

// routesToMap turns the table into plain maps so viper can write it out.
func routesToMap(t models.RouteTable) map[string]any {
	out := make(map[string]any, len(t))
	for key, meta := range t {
		name := make(map[string]any, len(meta.Name))
		for locale, text := range meta.Name {
			name[locale] = text
		}
		out[key] = map[string]any{
			"enabled": meta.Enabled,
			"icons":   map[string]any{"filter": meta.Icons.Filter},
			"name":    name,
		}
	}
	return out
}
