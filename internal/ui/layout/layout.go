package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzer/internal/ui/theme"
)

// Terminal floor and chrome heights, in cells.
const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3
)

// Below these body sizes the home screen drops its large title art.
const (
	compactWidth      = 100
	compactBodyHeight = 24
)

const hintSeparator = "  ·  "

var (
	barStyle = lipgloss.NewStyle().
			Background(theme.BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1)

	brandStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	titleStyle = lipgloss.NewStyle().Foreground(theme.Text)
	keyStyle   = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	descStyle  = lipgloss.NewStyle().Foreground(theme.TextDim)
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Frame is the chrome around the active screen: a header bar carrying the
// screen title and an optional status (the countdown during a quiz), and a
// footer listing key hints.
type Frame struct {
	Title  string
	Status string
	Hints  []KeyHint
}

// TooSmall reports whether the terminal is below the supported size.
func TooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// BodySize returns the area left to the active screen.
func BodySize(width, height int) (int, int) {
	return width, max(height-HeaderHeight-FooterHeight, 0)
}

// Compact reports whether a body of the given size should use condensed
// rendering.
func Compact(width, bodyHeight int) bool {
	return width < compactWidth || bodyHeight < compactBodyHeight
}

// Render composes header, body and footer to fill width x height. Terminals
// that are too small get a resize notice instead.
func (f Frame) Render(body string, width, height int) string {
	if TooSmall(width, height) {
		return resizeNotice(width, height)
	}
	_, bodyHeight := BodySize(width, height)
	content := lipgloss.NewStyle().
		Width(width).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(body)
	return f.header(width) + "\n" + content + "\n" + f.footer(width)
}

// header lays the brand left, the title centered and the status right.
func (f Frame) header(width int) string {
	inner := innerWidth(width)
	brand := brandStyle.Render("Quizzer")

	side := max(lipgloss.Width(brand), lipgloss.Width(f.Status))
	mid := max(inner-2*side, 0)
	title := titleStyle.MaxWidth(mid).Render(f.Title)

	row := lipgloss.PlaceHorizontal(side, lipgloss.Left, brand) +
		lipgloss.PlaceHorizontal(mid, lipgloss.Center, title) +
		lipgloss.PlaceHorizontal(side, lipgloss.Right, f.Status)
	return barStyle.Width(width).Render(row)
}

// footer renders as many hints as fit on one line, in order.
func (f Frame) footer(width int) string {
	inner := innerWidth(width)
	var b strings.Builder
	for i, h := range f.Hints {
		part := keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
		if i > 0 {
			part = descStyle.Render(hintSeparator) + part
		}
		if lipgloss.Width(b.String())+lipgloss.Width(part) > inner {
			break
		}
		b.WriteString(part)
	}
	return barStyle.Width(width).Render(b.String())
}

// innerWidth is the text width of a bar of the given outer width.
func innerWidth(width int) int {
	return max(width-barStyle.GetHorizontalFrameSize(), 0)
}

func resizeNotice(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Quizzer needs at least %d x %d.\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}
