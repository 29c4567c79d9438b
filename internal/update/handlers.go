package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriMap/internal/core"
	"github.com/Rorical/RoriMap/internal/eventbus"
	"github.com/Rorical/RoriMap/internal/i18n"
	"github.com/Rorical/RoriMap/internal/models"
	"github.com/Rorical/RoriMap/ui/components"
)

// NoticeTTL is how long a notice stays in the status bar.
const NoticeTTL = 4 * time.Second

// Components are the stateful pieces the handlers drive.
type Components struct {
	Panel  *components.FilterPanel
	Dialog *components.ImportDialog
	Text   *i18n.Localizer
	Store  core.Dispatcher
}

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// ClearNoticeMsg expires the notice with the same sequence number.
type ClearNoticeMsg struct {
	Seq int
}

// HandleKeyMsg gives the open dialog every key; otherwise keys go to the
// trigger, the global bindings and finally the filter panel.
func HandleKeyMsg(appModel *models.AppModel, c *Components, keyMsg tea.KeyMsg) tea.Cmd {
	if keyMsg.String() == "ctrl+c" {
		appModel.Quitting = true
		return tea.Quit
	}
	if c.Dialog.IsOpen() {
		return c.Dialog.Update(keyMsg)
	}
	if trigger := c.Dialog.Trigger(); trigger != nil && trigger.Activated(keyMsg) {
		return c.Dialog.Open()
	}

	switch keyMsg.String() {
	case "q":
		appModel.Quitting = true
		return tea.Quit
	case "L":
		c.Store.Dispatch(models.SetLocale{Locale: i18n.Next(c.Text.Locale())})
		return nil
	}
	return c.Panel.Update(keyMsg)
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, c *Components, coreEventMsg CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.LocaleChangedEvent:
		appModel.Locale = c.Text.SetLocale(event.Locale)
		c.Panel.Relabel()
		c.Dialog.Relabel()
		return pushNotice(appModel, fmt.Sprintf(c.Text.Translate("notice.locale"), appModel.Locale), models.NoticeInfo)

	case eventbus.StateUpdateEvent:
		appModel.Status = fmt.Sprintf(c.Text.Translate("status.found"), event.Snapshot.FoundCount)
		if a, ok := event.Action.(models.ApplyImport); ok {
			return pushNotice(appModel, fmt.Sprintf(c.Text.Translate("notice.imported"), len(a.Batch.Found)), models.NoticeSuccess)
		}

	case eventbus.ConfigReloadedEvent:
		return pushNotice(appModel, c.Text.Translate("notice.config"), models.NoticeInfo)
	}
	return nil
}

// HandleToggled announces the new state of a toggled route.
func HandleToggled(appModel *models.AppModel, c *Components, msg components.ToggledMsg) tea.Cmd {
	for _, t := range c.Panel.Toggles() {
		if t.Key() != msg.Key {
			continue
		}
		format := c.Text.Translate("notice.route_hidden")
		if t.Displayed() {
			format = c.Text.Translate("notice.route_shown")
		}
		return pushNotice(appModel, fmt.Sprintf(format, msg.Label), models.NoticeInfo)
	}
	return nil
}

func HandleCopied(appModel *models.AppModel, c *Components, msg components.CopiedMsg) tea.Cmd {
	if msg.Err != nil {
		return pushNotice(appModel, fmt.Sprintf(c.Text.Translate("notice.copy_failed"), msg.Err), models.NoticeError)
	}
	return pushNotice(appModel, c.Text.Translate("notice.copied"), models.NoticeSuccess)
}

func HandleClearNotice(appModel *models.AppModel, msg ClearNoticeMsg) {
	if msg.Seq == appModel.NoticeSeq {
		appModel.Notice = models.Notice{}
	}
}

func HandleWindowSizeMsg(appModel *models.AppModel, c *Components, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
	c.Dialog.SetWidth(min(72, sizeMsg.Width-4))
}

func pushNotice(appModel *models.AppModel, text, kind string) tea.Cmd {
	seq := appModel.PushNotice(models.Notice{Text: text, Kind: kind})
	return tea.Tick(NoticeTTL, func(time.Time) tea.Msg {
		return ClearNoticeMsg{Seq: seq}
	})
}
