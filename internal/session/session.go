package session

import "fmt"

// AdvanceResult describes what a successful Advance did.
type AdvanceResult int

const (
	Moved    AdvanceResult = iota // cursor moved to the next question
	Finished                      // last question passed, session submitted
)

// SelectAnswer records the learner's choice for the current question.
// Repeated calls overwrite the previous choice.
func (s *Session) SelectAnswer(text string) error {
	if s.Submitted || s.closed {
		return ErrSubmitted
	}
	q := s.Current()
	if q == nil {
		return ErrSubmitted
	}

	valid := false
	for _, opt := range q.Options {
		if opt == text {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: %q", ErrUnknownOption, text)
	}

	choice := text
	q.Selected = &choice
	s.ValidationPending = false
	return nil
}

// SelectOption selects the option at idx of the current question.
func (s *Session) SelectOption(idx int) error {
	q := s.Current()
	if q == nil || s.Submitted || s.closed {
		return ErrSubmitted
	}
	if idx < 0 || idx >= len(q.Options) {
		return fmt.Errorf("%w: index %d", ErrUnknownOption, idx)
	}
	return s.SelectAnswer(q.Options[idx])
}

// Advance moves to the next question, or submits from the last one. It
// refuses with ErrValidation, changing nothing but ValidationPending,
// when the current question has no selection.
func (s *Session) Advance() (AdvanceResult, error) {
	if s.Submitted || s.closed {
		return Moved, ErrSubmitted
	}
	q := s.Current()
	if q == nil || !q.Answered() {
		s.ValidationPending = true
		return Moved, ErrValidation
	}

	if s.IsLast() {
		s.Submit()
		return Finished, nil
	}
	s.CurrentIndex++
	return Moved, nil
}

// Submit performs the Answering -> Submitted transition. It is shared by
// navigation and timer expiry; only the first call has any effect, and
// it reports true.
func (s *Session) Submit() bool {
	if s.Submitted || s.closed {
		return false
	}
	s.timer.stop()
	s.Submitted = true
	s.ValidationPending = false
	s.Score = Score(s.Questions)
	s.Phase = PhaseSubmitted
	return true
}

// Close tears the session down. The countdown stops and later ticks,
// selections and submissions are ignored.
func (s *Session) Close() {
	s.timer.stop()
	s.closed = true
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	return s.closed
}
