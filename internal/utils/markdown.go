package utils

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type rendererKey struct {
	width   int
	profile termenv.Profile
}

var (
	renderersMu sync.Mutex
	renderers   = map[rendererKey]*glamour.TermRenderer{}
)

// markdownStyle is the dark theme without the document margin, so rendered
// copy lines up with the rest of the dialog.
func markdownStyle() glamour.TermRendererOption {
	style := styles.DarkStyleConfig
	margin := uint(0)
	style.Document.Margin = &margin
	style.Document.BlockPrefix = ""
	style.Document.BlockSuffix = ""
	return glamour.WithStyles(style)
}

func renderer(width int) (*glamour.TermRenderer, error) {
	key := rendererKey{width: width, profile: lipgloss.ColorProfile()}

	renderersMu.Lock()
	defer renderersMu.Unlock()
	if r, ok := renderers[key]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		markdownStyle(),
		glamour.WithColorProfile(key.profile),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	renderers[key] = r
	return r, nil
}

// RenderMarkdown renders dialog copy wrapped to width; width <= 0 disables
// wrapping. On a renderer failure the text is returned unchanged.
func RenderMarkdown(text string, width int) string {
	if width < 0 {
		width = 0
	}
	r, err := renderer(width)
	if err != nil {
		return text
	}

	renderersMu.Lock()
	out, err := r.Render(text)
	renderersMu.Unlock()
	if err != nil {
		return text
	}

	lines := strings.Split(strings.Trim(out, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
