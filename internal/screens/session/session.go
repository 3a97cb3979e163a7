package session

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzer/internal/bank"
	"github.com/abhisek/quizzer/internal/router"
	"github.com/abhisek/quizzer/internal/screen"
	"github.com/abhisek/quizzer/internal/screens/review"
	sess "github.com/abhisek/quizzer/internal/session"
	"github.com/abhisek/quizzer/internal/ui/components"
	"github.com/abhisek/quizzer/internal/ui/layout"
)

// Starter builds a session from a quiz link. *sess.Initializer implements it.
type Starter interface {
	Init(ctx context.Context, link string) (*sess.Session, error)
}

// SessionScreen implements screen.Screen for an active quiz attempt.
type SessionScreen struct {
	loadID      uint64
	starter     Starter
	link        string
	state       *sess.Session
	options     components.OptionList
	quitConfirm bool
	errMsg      string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.Closer = (*SessionScreen)(nil)
var _ screen.EscapeHandler = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)

var lastLoadID atomic.Uint64

// New creates a SessionScreen that starts a session from link on Init.
func New(starter Starter, link string) *SessionScreen {
	return &SessionScreen{
		loadID:  lastLoadID.Add(1),
		starter: starter,
		link:    link,
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return s.initSession()
}

func (s *SessionScreen) Title() string {
	if s.state != nil && s.state.BankTitle != "" {
		return s.state.BankTitle
	}
	return "Quiz"
}

func (s *SessionScreen) Status() string {
	if s.state == nil {
		return ""
	}
	return renderClock(s.state)
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if s.state == nil {
		return nil
	}
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	next := "Next"
	if s.state.IsLast() {
		next = "Submit"
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Space/1-9", Description: "Select"},
		{Key: "Enter", Description: next},
		{Key: "Esc", Description: "Quit"},
	}
}

// HandlesEscape keeps the app from popping an in-progress quiz without
// confirmation.
func (s *SessionScreen) HandlesEscape() bool {
	return s.state != nil && !s.state.Submitted
}

// Close tears the session down. Called by the router when the screen
// leaves the stack.
func (s *SessionScreen) Close() {
	if s.state != nil {
		s.state.Close()
	}
}

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.state == nil {
		return renderLoading(width, height)
	}
	if s.quitConfirm {
		return renderQuitConfirm(width, height)
	}
	return s.renderQuestionView(width, height)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionInitMsg:
		return s.handleInit(msg)

	case timerTickMsg:
		return s.handleTimerTick(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// initSession fetches the bank and samples questions off the update loop.
func (s *SessionScreen) initSession() tea.Cmd {
	id, starter, link := s.loadID, s.starter, s.link
	return func() tea.Msg {
		if starter == nil {
			return sessionInitMsg{LoadID: id, Err: errors.New("no question bank configured")}
		}
		state, err := starter.Init(context.Background(), link)
		return sessionInitMsg{LoadID: id, State: state, Err: err}
	}
}

func (s *SessionScreen) handleInit(msg sessionInitMsg) (screen.Screen, tea.Cmd) {
	// Results of loads started by another screen, or arriving after this
	// one already has a session, are dropped.
	if msg.LoadID != s.loadID || s.state != nil || s.errMsg != "" {
		return s, nil
	}
	if msg.Err != nil {
		s.errMsg = describeError(msg.Err)
		return s, nil
	}
	s.state = msg.State
	s.syncOptions()

	if !s.state.StartTimer() {
		return s, nil
	}
	return s, tickCmd(s.state.ID)
}

func (s *SessionScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if s.state == nil || msg.SessionID != s.state.ID {
		return s, nil
	}

	res := s.state.Tick()
	if res.Expired {
		s.quitConfirm = false
		return s, s.showReview()
	}
	if res.Running {
		return s, tickCmd(s.state.ID)
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.state == nil || s.state.Submitted {
		return s, nil
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			s.state.Close()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.quitConfirm = true
	case "up", "k":
		s.options.MoveUp()
	case "down", "j":
		s.options.MoveDown()
	case "space", " ":
		s.selectOption(s.options.Cursor)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		s.selectOption(int(key[0] - '1'))
	case "enter":
		return s.advance()
	}
	return s, nil
}

func (s *SessionScreen) selectOption(idx int) {
	if err := s.state.SelectOption(idx); err != nil {
		return
	}
	s.options.Cursor = idx
	s.options.Selected = s.state.Current().SelectedText()
}

func (s *SessionScreen) advance() (screen.Screen, tea.Cmd) {
	res, err := s.state.Advance()
	if err != nil {
		// ErrValidation is rendered from state.ValidationPending.
		return s, nil
	}
	if res == sess.Finished {
		return s, s.showReview()
	}
	s.syncOptions()
	return s, nil
}

// syncOptions points the option list at the current question.
func (s *SessionScreen) syncOptions() {
	q := s.state.Current()
	if q == nil {
		s.options = components.OptionList{}
		return
	}
	s.options = components.OptionList{
		Options:  q.Options,
		Selected: q.SelectedText(),
	}
}

// showReview replaces this screen with the review of the submitted session.
func (s *SessionScreen) showReview() tea.Cmd {
	starter, link := s.starter, s.link
	retry := func() screen.Screen { return New(starter, link) }
	next := review.New(s.state, retry)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// describeError maps initialization failures to a learner-facing message.
func describeError(err error) string {
	var netErr *bank.NetworkError
	var bankErr *bank.InvalidBankError
	switch {
	case errors.Is(err, sess.ErrInvalidURL):
		return fmt.Sprintf("That quiz link is not valid.\n\n%v", err)
	case errors.Is(err, sess.ErrEmptySelection):
		return "No questions match this quiz link. Check the weeks and question count."
	case errors.As(err, &netErr):
		if netErr.StatusCode == 404 {
			return "This course has no question bank."
		}
		return fmt.Sprintf("Could not load the question bank.\n\n%v", err)
	case errors.Is(err, bank.ErrBankTooLarge):
		return "The question bank for this course is too large to load."
	case errors.As(err, &bankErr):
		return "The question bank for this course is malformed."
	case errors.Is(err, context.DeadlineExceeded):
		return "The question bank took too long to respond."
	}
	return err.Error()
}

// tickCmd returns a 1-second tick command bound to a session.
func tickCmd(sessionID string) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{SessionID: sessionID}
	})
}
