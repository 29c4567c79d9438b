package i18n

var catalog = map[string]map[string]string{
	"en": {
		"app.title":           "RoriMap",
		"app.help":            "j/k move • space toggle • L language • q quit",
		"filter.title":        "Routes",
		"filter.empty":        "No routes available",
		"filter.shown":        "shown",
		"filter.hidden":       "hidden",
		"import.trigger":      "Import",
		"import.title":        "Import data",
		"import.body":         "Paste the data exported from the map website, or run the **bookmarklet** on the map page and paste what it copies.",
		"import.bookmarklet":  "Bookmarklet",
		"import.copy":         "ctrl+y copy",
		"import.placeholder":  "Paste data here…",
		"import.help":         "JSON starting with { or data starting with rorimap:",
		"import.cancel":       "Cancel",
		"import.confirm":      "Import",
		"notice.route_shown":  "Route shown: %s",
		"notice.route_hidden": "Route hidden: %s",
		"notice.imported":     "Imported %d locations",
		"notice.copied":       "Bookmarklet copied",
		"notice.copy_failed":  "Copy failed: %s",
		"notice.locale":       "Language: %s",
		"notice.config":       "Configuration reloaded",
		"status.found":        "%d found",
	},
	"de": {
		"app.help":            "j/k bewegen • Leertaste umschalten • L Sprache • q beenden",
		"filter.title":        "Routen",
		"filter.empty":        "Keine Routen verfügbar",
		"filter.shown":        "sichtbar",
		"filter.hidden":       "verborgen",
		"import.trigger":      "Importieren",
		"import.title":        "Daten importieren",
		"import.body":         "Füge die von der Karten-Website exportierten Daten ein oder führe das **Bookmarklet** auf der Kartenseite aus und füge das Kopierte ein.",
		"import.copy":         "Strg+y kopieren",
		"import.placeholder":  "Daten hier einfügen…",
		"import.help":         "JSON beginnend mit { oder Daten beginnend mit rorimap:",
		"import.cancel":       "Abbrechen",
		"import.confirm":      "Importieren",
		"notice.route_shown":  "Route sichtbar: %s",
		"notice.route_hidden": "Route verborgen: %s",
		"notice.imported":     "%d Orte importiert",
		"notice.copied":       "Bookmarklet kopiert",
		"notice.copy_failed":  "Kopieren fehlgeschlagen: %s",
		"notice.locale":       "Sprache: %s",
		"notice.config":       "Konfiguration neu geladen",
		"status.found":        "%d gefunden",
	},
	"fr": {
		"app.help":            "j/k déplacer • espace basculer • L langue • q quitter",
		"filter.title":        "Itinéraires",
		"filter.empty":        "Aucun itinéraire disponible",
		"filter.shown":        "affiché",
		"filter.hidden":       "masqué",
		"import.trigger":      "Importer",
		"import.title":        "Importer des données",
		"import.body":         "Collez les données exportées depuis le site de la carte, ou lancez le **bookmarklet** sur la page de la carte et collez ce qu'il copie.",
		"import.copy":         "ctrl+y copier",
		"import.placeholder":  "Collez les données ici…",
		"import.help":         "JSON commençant par { ou données commençant par rorimap:",
		"import.cancel":       "Annuler",
		"import.confirm":      "Importer",
		"notice.route_shown":  "Itinéraire affiché : %s",
		"notice.route_hidden": "Itinéraire masqué : %s",
		"notice.imported":     "%d lieux importés",
		"notice.copied":       "Bookmarklet copié",
		"notice.copy_failed":  "Échec de la copie : %s",
		"notice.locale":       "Langue : %s",
		"notice.config":       "Configuration rechargée",
		"status.found":        "%d trouvés",
	},
}
