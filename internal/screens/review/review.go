package review

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzer/internal/router"
	"github.com/abhisek/quizzer/internal/screen"
	"github.com/abhisek/quizzer/internal/session"
	"github.com/abhisek/quizzer/internal/ui/layout"
)

// ReviewScreen shows the score of a submitted session and lets the
// learner inspect each answer.
type ReviewScreen struct {
	state  *session.Session
	review *session.Review
	result *session.Result
	cursor int

	// retry builds a fresh session screen from the same link.
	retry func() screen.Screen
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)
var _ screen.StatusProvider = (*ReviewScreen)(nil)

// New creates a ReviewScreen over a submitted session. retry may be nil.
func New(state *session.Session, retry func() screen.Screen) *ReviewScreen {
	return &ReviewScreen{
		state:  state,
		review: session.NewReview(state),
		result: session.BuildResult(state),
		retry:  retry,
	}
}

func (s *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (s *ReviewScreen) Title() string {
	return "Results"
}

func (s *ReviewScreen) Status() string {
	return renderScoreBadge(s.result)
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	filter := "Incorrect only"
	if s.review.ShowOnlyIncorrect {
		filter = "Show all"
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Expand"},
		{Key: "Tab", Description: filter},
	}
	if s.retry != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Retry"})
	}
	return append(hints, layout.KeyHint{Key: "H", Description: "Home"})
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "tab":
		s.review.SetFilter(!s.review.ShowOnlyIncorrect)
		s.cursor = 0
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.review.Displayed())-1 {
			s.cursor++
		}
	case "enter", "space", " ":
		s.review.ToggleExpand(s.cursor)
	case "r", "R":
		if s.retry == nil {
			return s, nil
		}
		next := s.retry()
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	case "h", "H":
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return s, nil
}

func (s *ReviewScreen) View(width, height int) string {
	return s.render(width, height)
}
