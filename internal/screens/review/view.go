package review

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzer/internal/session"
	"github.com/abhisek/quizzer/internal/ui/components"
	"github.com/abhisek/quizzer/internal/ui/theme"
)

func tierStyle(t session.Tier) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.TierColor(string(t))).Bold(true)
}

func tierMessage(t session.Tier) string {
	switch t {
	case session.TierHigh:
		return "Excellent work!"
	case session.TierMid:
		return "Good effort. Review the misses below."
	default:
		return "Keep practicing. Review the misses below."
	}
}

func renderScoreBadge(r *session.Result) string {
	return tierStyle(r.Tier).Render(fmt.Sprintf("%d/%d", r.Score, r.Total))
}

func (s *ReviewScreen) render(width, height int) string {
	r := s.result
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	heading := "Quiz complete!"
	if r.AutoSubmitted {
		heading = "Time's up! Your answers were submitted automatically."
	}
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render(heading))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(tierStyle(r.Tier).Render(fmt.Sprintf("Score: %d/%d (%.1f%%)", r.Score, r.Total, r.Percentage))))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(fmt.Sprintf(
		"%s  Answered %d/%d · Time used %s",
		tierMessage(r.Tier), r.Answered, r.Total, session.FormatClock(r.TimeUsed))))
	b.WriteString("\n")

	barWidth := min(width-4, 60)
	bar := components.ProgressBar{
		Percent:     r.Percentage / 100,
		ShowPercent: true,
		Width:       barWidth,
		Color:       theme.TierColor(string(r.Tier)),
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	items := s.review.Displayed()
	filter := fmt.Sprintf("Showing all questions (%d)", len(items))
	if s.review.ShowOnlyIncorrect {
		filter = fmt.Sprintf("Showing incorrect only (%d)", len(items))
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render("  " + filter))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	if len(items) == 0 {
		b.WriteString(theme.Hint.Render("  No incorrect answers. Nice work!"))
		return b.String()
	}

	used := lipgloss.Height(b.String())
	b.WriteString(s.renderRows(items, width, height-used))
	return b.String()
}

// renderRows renders the visible window of rows around the cursor,
// with the expanded row's detail inline.
func (s *ReviewScreen) renderRows(items []session.ReviewItem, width, avail int) string {
	expanded, hasExpanded := s.review.Expanded()

	detail := ""
	if hasExpanded {
		detail = renderDetail(items[expanded], width)
	}
	rows := avail - lipgloss.Height(detail)
	if rows < 3 {
		rows = 3
	}

	start := 0
	if s.cursor >= rows {
		start = s.cursor - rows + 1
	}
	end := min(start+rows, len(items))

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderRow(items[i], i == s.cursor, width))
		b.WriteString("\n")
		if hasExpanded && i == expanded {
			b.WriteString(detail)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderRow(it session.ReviewItem, active bool, width int) string {
	q := it.Question

	mark := theme.Incorrect.Render("✗")
	if q.Correct() {
		mark = theme.Correct.Render("✓")
	} else if !q.Answered() {
		mark = lipgloss.NewStyle().Foreground(theme.TextDim).Render("–")
	}

	prefix := "   "
	if active {
		prefix = " ▸ "
	}

	text := truncate(q.Text, max(width-16, 10))
	style := theme.Unselected
	if active {
		style = theme.Selected
	}
	return style.Render(prefix) + mark + " " + style.Render(fmt.Sprintf("%d. %s", it.Index+1, text))
}

func renderDetail(it session.ReviewItem, width int) string {
	q := it.Question

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(max(width-8, 10)).
		Foreground(theme.Text).
		Render(q.Text))
	b.WriteString("\n\n")

	opts := components.OptionList{
		Options:  q.Options,
		Selected: q.SelectedText(),
		Expected: q.Expected,
		Reveal:   true,
	}
	b.WriteString(opts.View())

	answer := "Your answer: not answered"
	if q.Answered() {
		answer = "Your answer: " + q.SelectedText()
	}
	b.WriteString("\n" + theme.Hint.Render(answer))
	b.WriteString("\n" + theme.Correct.Render("Correct answer: "+q.Expected))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		MarginLeft(5).
		Padding(0, 1).
		Render(b.String())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
