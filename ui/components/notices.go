package components

import (
	"strings"

	"github.com/Rorical/RoriMap/internal/models"
	"github.com/Rorical/RoriMap/ui/styles"
)

// RenderNotices lists recent notices, oldest first, skipping the current one.
func RenderNotices(history []models.Notice, current models.Notice) string {
	var b strings.Builder
	for i, n := range history {
		if i == len(history)-1 && n == current {
			break
		}
		style := styles.NoticeStyle(n.Kind).Faint(true)
		b.WriteString(style.Render("· " + n.Text))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
