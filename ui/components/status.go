package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriMap/internal/models"
	"github.com/Rorical/RoriMap/ui/styles"
)

// RenderStatus draws the status bar: the current notice on the left and the
// status text on the right.
func RenderStatus(status string, notice models.Notice, width int) string {
	right := status
	left := ""
	if notice.Text != "" {
		left = styles.NoticeStyle(notice.Kind).Render(notice.Text)
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	content := lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), right)
	return styles.StatusStyle(width).Render(content)
}
