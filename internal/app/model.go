package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriMap/internal/dispatcher"
	"github.com/Rorical/RoriMap/internal/i18n"
	"github.com/Rorical/RoriMap/internal/models"
	"github.com/Rorical/RoriMap/internal/update"
	"github.com/Rorical/RoriMap/ui/components"
	"github.com/Rorical/RoriMap/ui/styles"
)

type AppModel struct {
	appModel   models.AppModel
	components *update.Components
	dispatcher *dispatcher.EventDispatcher
}

func (m *AppModel) Init() tea.Cmd {
	return m.dispatcher.ListenForCoreEvents()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := update.HandleUpdate(&m.appModel, m.components, msg)

	// keep listening after every core event
	if _, ok := msg.(update.CoreEventMsg); ok {
		return m, tea.Batch(cmd, m.dispatcher.ListenForCoreEvents())
	}
	return m, cmd
}

func (m *AppModel) View() string {
	if m.appModel.Quitting {
		return ""
	}
	c := m.components
	width := m.appModel.Width

	if c.Dialog.IsOpen() && width > 0 {
		return lipgloss.Place(width, m.appModel.Height, lipgloss.Center, lipgloss.Center, c.Dialog.View())
	}

	var b strings.Builder
	title := c.Text.Translate("app.title") + "  " + strings.ToUpper(m.appModel.Locale)
	header := title
	if trigger := c.Dialog.Trigger(); trigger != nil {
		header = lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", trigger.View())
	}
	b.WriteString(styles.HeaderStyle(width).Render(header))
	b.WriteString("\n")
	b.WriteString(c.Panel.View())
	b.WriteString("\n")
	if history := components.RenderNotices(m.appModel.History, m.appModel.Notice); history != "" {
		b.WriteString(history)
		b.WriteString("\n")
	}
	b.WriteString(components.RenderStatus(m.appModel.Status, m.appModel.Notice, width))
	b.WriteString("\n")
	b.WriteString(styles.HelpStyle().Render(c.Text.Translate("app.help")))

	if c.Dialog.IsOpen() {
		b.WriteString("\n")
		b.WriteString(c.Dialog.View())
	}
	return b.String()
}

func sprintfKey(text *i18n.Localizer, key string, args ...any) string {
	return fmt.Sprintf(text.Translate(key), args...)
}
