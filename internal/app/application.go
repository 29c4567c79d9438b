package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriMap/internal/config"
	"github.com/Rorical/RoriMap/internal/dispatcher"
	"github.com/Rorical/RoriMap/internal/eventbus"
	"github.com/Rorical/RoriMap/internal/i18n"
	"github.com/Rorical/RoriMap/internal/models"
	"github.com/Rorical/RoriMap/internal/update"
	"github.com/Rorical/RoriMap/ui/components"
)

// Application manages the complete application lifecycle
type Application struct {
	services   *Services
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	model      *AppModel
}

func NewApplication(configPath string) (*Application, error) {
	eb := eventbus.NewEventBus()

	services, err := OpenServices(configPath, eb)
	if err != nil {
		eb.Close()
		return nil, err
	}
	logger := services.Logger.WithComponent("app")
	eb.SetErrorCallback(func(e eventbus.EventBusError) {
		logger.Warn("event bus error", "op", e.Operation, "error", e.Err)
	})

	disp := dispatcher.NewEventDispatcher(eb)
	text := i18n.NewLocalizer(services.Store.Locale())
	cfg := services.Config

	dialog := components.NewImportDialog(components.ImportDialogConfig{
		Title:       cfg.Import.Title,
		Body:        cfg.Import.Body,
		Support:     cfg.Import.Support,
		Bookmarklet: cfg.Import.Bookmarklet,
		OnConfirm:   services.Importer.Confirm,
		Trigger: components.NewKeyTrigger(func() string {
			return text.Translate("import.trigger")
		}, "i"),
	}, services.Store, text)

	model := &AppModel{
		appModel:   createInitialAppModel(services, text),
		dispatcher: disp,
		components: &update.Components{
			Panel:  components.NewFilterPanel(cfg.Routes, services.Store, text),
			Dialog: dialog,
			Text:   text,
			Store:  services.Store,
		},
	}

	return &Application{
		services:   services,
		eventBus:   eb,
		dispatcher: disp,
		model:      model,
	}, nil
}

func (app *Application) Start() error {
	app.watchConfig()

	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// watchConfig applies locale edits made to the config file while running.
func (app *Application) watchConfig() {
	logger := app.services.Logger.WithComponent("config")
	app.services.Config.Watch(func(next *config.Config) {
		logger.Info("config changed", "path", next.Path())
		app.services.Store.Dispatch(models.SetLocale{Locale: i18n.Match(next.Locale)})
		if err := app.eventBus.Publish(eventbus.ConfigReloadedEvent{Path: next.Path()}); err != nil {
			logger.Warn("failed to publish reload", "error", err)
		}
	}, func(err error) {
		logger.Error("config reload failed", "error", err)
	})
}

func (app *Application) Stop() {
	app.dispatcher.Stop()
	app.eventBus.Close()
	if err := app.services.Close(); err != nil {
		app.services.Logger.Error("shutdown failed", "error", err)
	}
}

func createInitialAppModel(services *Services, text *i18n.Localizer) models.AppModel {
	snap := services.Store.Snapshot()
	return models.AppModel{
		Status: sprintfKey(text, "status.found", snap.FoundCount),
		Locale: text.Locale(),
	}
}
