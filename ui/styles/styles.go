package styles

import "github.com/charmbracelet/lipgloss"

const (
	accent    = lipgloss.Color("62")
	muted     = lipgloss.Color("241")
	errorRed  = lipgloss.Color("196")
	shownFG   = lipgloss.Color("214")
	hiddenFG  = lipgloss.Color("245")
	surfaceBG = lipgloss.Color("235")
)

func HeaderStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("141")).
		Padding(0, 1).
		Width(width)
}

func PanelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1)
}

func PanelTitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(accent)
}

// ToggleStyle styles one route toggle row.
func ToggleStyle(displayed, focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 1)
	if displayed {
		s = s.Foreground(shownFG).Bold(true)
	} else {
		s = s.Foreground(hiddenFG)
	}
	if focused {
		s = s.Background(lipgloss.Color("237"))
	}
	return s
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(muted).
		Background(surfaceBG).
		Padding(0, 1).
		Width(width)
}

func NoticeStyle(kind string) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 1)
	switch kind {
	case "success":
		return s.Foreground(lipgloss.Color("78"))
	case "error":
		return s.Foreground(errorRed)
	default:
		return s.Foreground(lipgloss.Color("39"))
	}
}

func HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Faint(true)
}

// DialogStyle is the modal box.
func DialogStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		Padding(1, 2).
		Width(width)
}

func DialogTitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("141"))
}

func BookmarkletStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(accent).
		PaddingLeft(1)
}

func LinkStyle() lipgloss.Style {
	return lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("39"))
}

// InputStyle frames the text area; invalid switches the frame to red.
func InputStyle(invalid bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if invalid {
		return s.BorderForeground(errorRed)
	}
	return s.BorderForeground(accent)
}

func HelperErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(errorRed)
}

func HelperTextStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(muted)
}

func ButtonStyle(primary bool) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 2).MarginRight(1)
	if primary {
		return s.Foreground(lipgloss.Color("230")).Background(accent).Bold(true)
	}
	return s.Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238"))
}
