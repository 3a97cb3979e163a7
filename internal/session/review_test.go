package session

import (
	"testing"

	"github.com/abhisek/quizzer/internal/bank"
)

func bankQuestion(text string, options []string, answers ...string) bank.Question {
	return bank.Question{Question: text, Options: options, Answer: answers}
}

// submittedSession answers 2 of 5 correctly, 2 wrong and leaves 1 blank.
func submittedSession() *Session {
	s := testSession(60)
	answers := []string{"b", "a", "b", "c"}
	for _, a := range answers {
		_ = s.SelectAnswer(a)
		_, _ = s.Advance()
	}
	s.Submit()
	return s
}

func TestReview_FilterIncorrect(t *testing.T) {
	s := submittedSession()
	r := NewReview(s)

	if got := len(r.Displayed()); got != 5 {
		t.Fatalf("all rows = %d, want 5", got)
	}

	r.SetFilter(true)
	items := r.Displayed()
	if len(items) != 3 {
		t.Fatalf("incorrect rows = %d, want 3", len(items))
	}
	want := []int{1, 3, 4}
	for i, it := range items {
		if it.Index != want[i] {
			t.Errorf("row %d index = %d, want %d", i, it.Index, want[i])
		}
		if it.Question.Correct() {
			t.Errorf("row %d is correct but shown in incorrect-only filter", i)
		}
	}

	r.SetFilter(false)
	if got := len(r.Displayed()); got != 5 {
		t.Errorf("rows after clearing filter = %d, want 5", got)
	}
}

func TestReview_ToggleExpand(t *testing.T) {
	r := NewReview(submittedSession())

	if _, ok := r.Expanded(); ok {
		t.Fatal("nothing should start expanded")
	}

	r.ToggleExpand(2)
	if idx, ok := r.Expanded(); !ok || idx != 2 {
		t.Errorf("Expanded = (%d, %v), want (2, true)", idx, ok)
	}

	r.ToggleExpand(0)
	if idx, ok := r.Expanded(); !ok || idx != 0 {
		t.Errorf("Expanded = (%d, %v), want (0, true)", idx, ok)
	}

	r.ToggleExpand(0)
	if _, ok := r.Expanded(); ok {
		t.Error("toggling the expanded row should collapse it")
	}

	r.ToggleExpand(9)
	if _, ok := r.Expanded(); ok {
		t.Error("out-of-range toggle should be ignored")
	}
}

func TestReview_FilterChangeCollapses(t *testing.T) {
	r := NewReview(submittedSession())
	r.ToggleExpand(1)
	r.SetFilter(true)
	if _, ok := r.Expanded(); ok {
		t.Error("changing the filter should collapse the expanded row")
	}
}

func TestReview_InactiveBeforeSubmit(t *testing.T) {
	s := testSession(60)
	r := NewReview(s)

	r.ToggleExpand(0)
	r.SetFilter(true)

	if _, ok := r.Expanded(); ok {
		t.Error("expansion should be a no-op before submission")
	}
	if r.ShowOnlyIncorrect {
		t.Error("filter should be a no-op before submission")
	}
	if items := r.Displayed(); items != nil {
		t.Errorf("Displayed before submit = %v, want nil", items)
	}
}
