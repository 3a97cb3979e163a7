package session

import (
	"github.com/abhisek/quizzer/internal/bank"
)

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseAnswering Phase = iota // Serving questions
	PhaseSubmitted              // Terminal: scored, review available
)

func (p Phase) String() string {
	if p == PhaseSubmitted {
		return "submitted"
	}
	return "answering"
}

// Question is a sampled, order-fixed question carrying the learner's selection.
type Question struct {
	Text     string
	Options  []string
	Expected string // first listed correct answer
	Week     string

	// Selected is nil until the learner picks an option.
	Selected *string
}

// Answered reports whether an option has been selected.
func (q *Question) Answered() bool {
	return q.Selected != nil
}

// Correct reports whether the selection equals the expected answer.
func (q *Question) Correct() bool {
	return q.Selected != nil && *q.Selected == q.Expected
}

// SelectedText returns the selection, or "" if none.
func (q *Question) SelectedText() string {
	if q.Selected == nil {
		return ""
	}
	return *q.Selected
}

// NewQuestion derives a session question from a bank question.
func NewQuestion(q bank.Question, week string) Question {
	opts := make([]string, len(q.Options))
	copy(opts, q.Options)
	return Question{
		Text:     q.Question,
		Options:  opts,
		Expected: q.Expected(),
		Week:     week,
	}
}

// Session is the single authoritative record of one quiz attempt. It is
// owned by the active screen and mutated only through its methods, which
// the Bubble Tea update loop serializes.
type Session struct {
	// ID identifies this session's tick stream.
	ID string

	// BankTitle is the title of the bank the questions were drawn from.
	BankTitle string

	// Link is the quiz link the session was started from (used for retry).
	Link string

	// Questions is fixed after sampling and never reordered.
	Questions []Question

	// CurrentIndex is the cursor into Questions.
	CurrentIndex int

	// TimeBudget is the initial time budget in seconds.
	TimeBudget int

	// TimeRemaining counts down once per tick.
	TimeRemaining int

	// WarningShown latches once remaining time drops below LowTimeThreshold.
	WarningShown bool

	// ValidationPending is set when Advance was refused for a missing answer.
	ValidationPending bool

	// Submitted is set exactly once by the submission transition.
	Submitted bool

	// Score is the correct count computed at submission.
	Score int

	// AutoSubmitted records that the timer forced the submission.
	AutoSubmitted bool

	Phase Phase

	timer  countdown
	closed bool
}

// New creates a session over an already sampled question sequence.
func New(id string, questions []Question, timeBudget int) *Session {
	return &Session{
		ID:            id,
		Questions:     questions,
		TimeBudget:    timeBudget,
		TimeRemaining: timeBudget,
		Phase:         PhaseAnswering,
	}
}

// Current returns the question under the cursor, or nil if the session is empty.
func (s *Session) Current() *Question {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.CurrentIndex]
}

// IsLast reports whether the cursor is on the final question.
func (s *Session) IsLast() bool {
	return s.CurrentIndex == len(s.Questions)-1
}

// Progress returns the number of answered questions.
func (s *Session) Progress() int {
	n := 0
	for i := range s.Questions {
		if s.Questions[i].Answered() {
			n++
		}
	}
	return n
}

// Elapsed returns the seconds consumed from the time budget.
func (s *Session) Elapsed() int {
	return s.TimeBudget - s.TimeRemaining
}
