package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriMap/internal/models"
	"github.com/Rorical/RoriMap/ui/components"
)

// HandleUpdate routes msg to the matching handler.
func HandleUpdate(appModel *models.AppModel, c *Components, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(appModel, c, msg)
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(appModel, c, msg)
		return nil
	case CoreEventMsg:
		return HandleCoreEvent(appModel, c, msg)
	case components.ToggledMsg:
		return HandleToggled(appModel, c, msg)
	case components.CopiedMsg:
		return HandleCopied(appModel, c, msg)
	case ClearNoticeMsg:
		HandleClearNotice(appModel, msg)
		return nil
	}
	// cursor blink and other text area internals
	if c.Dialog.IsOpen() {
		return c.Dialog.Update(msg)
	}
	return nil
}
