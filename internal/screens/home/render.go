package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzer/internal/ui/components"
	"github.com/abhisek/quizzer/internal/ui/theme"
)

const titleFull = ` ██████╗ ██╗   ██╗██╗███████╗███████╗███████╗██████╗
██╔═══██╗██║   ██║██║╚══███╔╝╚══███╔╝██╔════╝██╔══██╗
██║   ██║██║   ██║██║  ███╔╝   ███╔╝ █████╗  ██████╔╝
██║▄▄ ██║██║   ██║██║ ███╔╝   ███╔╝  ██╔══╝  ██╔══██╗
╚██████╔╝╚██████╔╝██║███████╗███████╗███████╗██║  ██║
 ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝╚══════╝╚══════╝╚═╝  ╚═╝`

const titleCompact = "Q · U · I · Z · Z · E · R"

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	title := titleFull
	if compact {
		title = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderLinkBox renders the link prompt and input in a bordered box.
func renderLinkBox(input string, cw int) string {
	label := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Quiz link")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Padding(0, 1).
		Render(label + "\n" + input)
}

func renderMenu(m components.Menu, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Render(m.View())
}

// renderFrame centers content vertically and horizontally.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
