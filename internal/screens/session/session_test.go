package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzer/internal/bank"
	"github.com/abhisek/quizzer/internal/router"
	"github.com/abhisek/quizzer/internal/screen"
	"github.com/abhisek/quizzer/internal/screens/review"
	sess "github.com/abhisek/quizzer/internal/session"
)

// mockStarter implements Starter for testing.
type mockStarter struct {
	state *sess.Session
	err   error
	links []string
}

func (m *mockStarter) Init(_ context.Context, link string) (*sess.Session, error) {
	m.links = append(m.links, link)
	if m.err != nil {
		return nil, m.err
	}
	return m.state, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// testState builds a three-question session; "b" is always correct.
func testState(timeBudget int) *sess.Session {
	var qs []sess.Question
	for i := 0; i < 3; i++ {
		qs = append(qs, sess.Question{
			Text:     fmt.Sprintf("Question %d?", i+1),
			Options:  []string{"a", "b", "c"},
			Expected: "b",
			Week:     "2",
		})
	}
	s := sess.New("sid-1", qs, timeBudget)
	s.BankTitle = "Networks"
	return s
}

// startedScreen returns a screen that has processed a successful init.
func startedScreen(t *testing.T, timeBudget int) (*SessionScreen, tea.Cmd) {
	t.Helper()
	s := New(&mockStarter{state: testState(timeBudget)}, "/quiz/NET?weeks=2")
	msg := s.Init()()
	scr, cmd := s.Update(msg)
	return scr.(*SessionScreen), cmd
}

func update(t *testing.T, s *SessionScreen, msg tea.Msg) (*SessionScreen, tea.Cmd) {
	t.Helper()
	scr, cmd := s.Update(msg)
	return scr.(*SessionScreen), cmd
}

func TestSessionScreen_Title(t *testing.T) {
	s := New(nil, "")
	if s.Title() != "Quiz" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz")
	}

	s, _ = startedScreen(t, 60)
	if s.Title() != "Networks" {
		t.Errorf("Title = %q, want %q", s.Title(), "Networks")
	}
}

func TestSessionScreen_View_Loading(t *testing.T) {
	s := New(&mockStarter{}, "/quiz/X")
	view := s.View(80, 24)
	if !strings.Contains(view, "Loading") {
		t.Error("expected loading view before init")
	}
}

func TestSessionScreen_InitStartsTimer(t *testing.T) {
	starter := &mockStarter{state: testState(60)}
	s := New(starter, "/quiz/NET?weeks=2")

	scr, cmd := s.Update(s.Init()())
	ss := scr.(*SessionScreen)

	if cmd == nil {
		t.Fatal("expected tick command after init")
	}
	if !ss.state.TimerRunning() {
		t.Error("expected countdown running")
	}
	if len(starter.links) != 1 || starter.links[0] != "/quiz/NET?weeks=2" {
		t.Errorf("starter links = %v", starter.links)
	}
}

func TestSessionScreen_InitErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"invalid link", fmt.Errorf("%w: bad", sess.ErrInvalidURL), "not valid"},
		{"empty", sess.ErrEmptySelection, "No questions"},
		{"not found", &bank.NetworkError{StatusCode: 404, URL: "u"}, "no question bank"},
		{"network", &bank.NetworkError{URL: "u", Err: errors.New("refused")}, "Could not load"},
		{"malformed", &bank.InvalidBankError{Err: errors.New("x")}, "malformed"},
		{"too large", &bank.InvalidBankError{Err: bank.ErrBankTooLarge}, "too large"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(&mockStarter{err: tt.err}, "/quiz/X")
			s, cmd := update(t, s, s.Init()())
			if cmd != nil {
				t.Error("expected no command on init failure")
			}
			if !strings.Contains(s.errMsg, tt.want) {
				t.Errorf("errMsg = %q, want it to contain %q", s.errMsg, tt.want)
			}

			// Any key goes back.
			_, cmd = update(t, s, keyPress('x'))
			if cmd == nil {
				t.Fatal("expected pop command")
			}
			if _, ok := cmd().(router.PopScreenMsg); !ok {
				t.Error("expected PopScreenMsg")
			}
		})
	}
}

func TestSessionScreen_EnterWithoutSelection(t *testing.T) {
	s, _ := startedScreen(t, 60)

	s, cmd := update(t, s, specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("refused advance should not emit a command")
	}
	if s.state.CurrentIndex != 0 {
		t.Errorf("CurrentIndex = %d, want 0", s.state.CurrentIndex)
	}
	if !strings.Contains(s.View(100, 30), "Please select an answer") {
		t.Error("expected inline validation message")
	}
}

func TestSessionScreen_SelectAndAdvance(t *testing.T) {
	s, _ := startedScreen(t, 60)

	// Cursor down then space selects "b".
	s, _ = update(t, s, keyPress('j'))
	s, _ = update(t, s, keyPress(' '))
	if got := s.state.Current().SelectedText(); got != "b" {
		t.Fatalf("selected = %q, want b", got)
	}

	// Number keys overwrite.
	s, _ = update(t, s, keyPress('3'))
	if got := s.state.Current().SelectedText(); got != "c" {
		t.Fatalf("selected = %q, want c", got)
	}

	// Out-of-range number is ignored.
	s, _ = update(t, s, keyPress('9'))
	if got := s.state.Current().SelectedText(); got != "c" {
		t.Errorf("selected = %q after '9', want c", got)
	}

	s, _ = update(t, s, specialKey(tea.KeyEnter))
	if s.state.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want 1", s.state.CurrentIndex)
	}
	if s.options.Selected != "" || s.options.Cursor != 0 {
		t.Errorf("options not reset for next question: %+v", s.options)
	}
}

func TestSessionScreen_FinishShowsReview(t *testing.T) {
	s, _ := startedScreen(t, 60)

	var cmd tea.Cmd
	for i := 0; i < 3; i++ {
		s, _ = update(t, s, keyPress('2'))
		s, cmd = update(t, s, specialKey(tea.KeyEnter))
	}

	if !s.state.Submitted || s.state.Score != 3 {
		t.Fatalf("submitted=%v score=%d", s.state.Submitted, s.state.Score)
	}
	if cmd == nil {
		t.Fatal("expected replace command after last question")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if _, ok := msg.Screen.(*review.ReviewScreen); !ok {
		t.Errorf("replacement = %T, want *review.ReviewScreen", msg.Screen)
	}
}

func TestSessionScreen_TimerTick(t *testing.T) {
	s, _ := startedScreen(t, 60)

	s, cmd := update(t, s, timerTickMsg{SessionID: "sid-1"})
	if cmd == nil {
		t.Error("expected re-armed tick")
	}
	if s.state.TimeRemaining != 59 {
		t.Errorf("TimeRemaining = %d, want 59", s.state.TimeRemaining)
	}
}

func TestSessionScreen_StaleTickIgnored(t *testing.T) {
	s, _ := startedScreen(t, 60)

	s, cmd := update(t, s, timerTickMsg{SessionID: "another-session"})
	if cmd != nil {
		t.Error("stale tick should not be re-armed")
	}
	if s.state.TimeRemaining != 60 {
		t.Errorf("TimeRemaining = %d, want 60", s.state.TimeRemaining)
	}
}

func TestSessionScreen_LateInitFromOtherScreenIgnored(t *testing.T) {
	s, _ := startedScreen(t, 60)
	s.state.SelectOption(1)

	other := sess.New("sid-OTHER", testState(60).Questions, 60)
	other.BankTitle = "SomeOtherCourse"
	abandoned := New(&mockStarter{state: other}, "/quiz/OTHER?weeks=1")
	late := abandoned.Init()()

	s, cmd := update(t, s, late)
	if cmd != nil {
		t.Error("late init should not start a timer")
	}
	if s.state.ID != "sid-1" {
		t.Errorf("session ID = %q, want sid-1", s.state.ID)
	}
	if s.Title() != "Networks" {
		t.Errorf("Title = %q, want Networks", s.Title())
	}
	if sel := s.state.Questions[0].Selected; sel == nil || *sel != "b" {
		t.Errorf("selection lost after late init: %v", sel)
	}
	if other.TimerRunning() {
		t.Error("abandoned session timer should not run")
	}
}

func TestSessionScreen_DuplicateInitIgnored(t *testing.T) {
	starter := &mockStarter{state: testState(60)}
	s := New(starter, "/quiz/NET?weeks=2")
	first := s.Init()()

	starter.state = sess.New("sid-2", testState(60).Questions, 60)
	second := s.Init()()

	s, _ = update(t, s, first)
	s, cmd := update(t, s, second)
	if cmd != nil {
		t.Error("second init result should be dropped")
	}
	if s.state.ID != "sid-1" {
		t.Errorf("session ID = %q, want sid-1", s.state.ID)
	}
}

func TestSessionScreen_LowTimeWarning(t *testing.T) {
	s, _ := startedScreen(t, 31)

	s, _ = update(t, s, timerTickMsg{SessionID: "sid-1"})
	if s.state.WarningShown {
		t.Fatal("warning should not fire at 30 remaining")
	}
	s, _ = update(t, s, timerTickMsg{SessionID: "sid-1"})
	if !s.state.WarningShown {
		t.Fatal("warning should fire at 29 remaining")
	}
	if !strings.Contains(s.View(100, 30), "Less than 30 seconds") {
		t.Error("expected low-time notice in view")
	}
}

func TestSessionScreen_ExpiryAutoSubmits(t *testing.T) {
	s, _ := startedScreen(t, 2)
	s, _ = update(t, s, keyPress('2'))

	s, _ = update(t, s, timerTickMsg{SessionID: "sid-1"})
	s, cmd := update(t, s, timerTickMsg{SessionID: "sid-1"})

	if !s.state.Submitted || !s.state.AutoSubmitted {
		t.Fatal("expected automatic submission at zero")
	}
	if s.state.Score != 1 {
		t.Errorf("Score = %d, want 1", s.state.Score)
	}
	if cmd == nil {
		t.Fatal("expected replace command on expiry")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg on expiry")
	}

	// Keys after submission change nothing.
	s, cmd = update(t, s, keyPress('1'))
	if cmd != nil || s.state.Questions[0].SelectedText() != "b" {
		t.Error("input after submission should be ignored")
	}
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	s, _ := startedScreen(t, 60)

	// Press Esc to show quit dialog.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*SessionScreen)
	if !ss.quitConfirm {
		t.Error("expected quit confirmation dialog")
	}

	// Press N to dismiss.
	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*SessionScreen)
	if ss.quitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
	if !ss.state.TimerRunning() {
		t.Error("dismissing should keep the countdown running")
	}
}

func TestSessionScreen_QuitConfirm_Yes(t *testing.T) {
	s, _ := startedScreen(t, 60)

	// Press Esc then Y.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))

	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
	if s.state.Submitted {
		t.Error("leaving should not submit")
	}
	if !s.state.Closed() || s.state.TimerRunning() {
		t.Error("leaving should tear the session down")
	}

	// A tick that was already in flight is a no-op.
	_, cmd = s.Update(timerTickMsg{SessionID: "sid-1"})
	if cmd != nil || s.state.TimeRemaining != 60 {
		t.Error("tick after teardown should be ignored")
	}
}

func TestSessionScreen_CloseStopsTimer(t *testing.T) {
	s, _ := startedScreen(t, 60)
	s.Close()

	if s.state.TimerRunning() {
		t.Error("Close should stop the countdown")
	}
	if !s.state.Closed() {
		t.Error("Close should tear the session down")
	}
}

func TestSessionScreen_HandlesEscape(t *testing.T) {
	s := New(&mockStarter{}, "")
	if s.HandlesEscape() {
		t.Error("loading screen should let the app handle Esc")
	}

	s, _ = startedScreen(t, 60)
	if !s.HandlesEscape() {
		t.Error("active quiz should handle Esc")
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s, _ := startedScreen(t, 60)

	hints := s.KeyHints()
	if len(hints) == 0 {
		t.Error("expected non-empty key hints")
	}
}

func TestSessionScreen_StatusShowsClock(t *testing.T) {
	s, _ := startedScreen(t, 125)
	if !strings.Contains(s.Status(), "2:05") {
		t.Errorf("Status = %q, want it to contain 2:05", s.Status())
	}
}
