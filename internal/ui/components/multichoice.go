package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzer/internal/ui/theme"
)

// OptionList renders a question's options with a cursor and the current
// selection. With Reveal set it marks the expected answer and a wrong
// selection instead.
type OptionList struct {
	Options  []string
	Cursor   int
	Selected string // "" when nothing is selected
	Expected string
	Reveal   bool
}

// MoveUp moves the cursor up, stopping at the first option.
func (o *OptionList) MoveUp() {
	if o.Cursor > 0 {
		o.Cursor--
	}
}

// MoveDown moves the cursor down, stopping at the last option.
func (o *OptionList) MoveDown() {
	if o.Cursor < len(o.Options)-1 {
		o.Cursor++
	}
}

// View renders one line per option.
func (o OptionList) View() string {
	var b strings.Builder
	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Cursor && !o.Reveal {
			prefix = "▸ "
		}

		mark := "( )"
		if opt == o.Selected {
			mark = "(•)"
		}
		line := fmt.Sprintf("%s%s %d. %s", prefix, mark, i+1, opt)

		var style lipgloss.Style
		switch {
		case o.Reveal && opt == o.Expected:
			style = theme.Correct
			line += "  ✓"
		case o.Reveal && opt == o.Selected:
			style = theme.Incorrect
			line += "  ✗"
		case o.Reveal:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == o.Cursor:
			style = theme.Selected
		case opt == o.Selected:
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line) + "\n")
	}
	return b.String()
}
