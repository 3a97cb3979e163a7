package session

import "testing"

func TestTick_CountsDown(t *testing.T) {
	s := testSession(40)
	if !s.StartTimer() {
		t.Fatal("StartTimer should arm the countdown")
	}

	res := s.Tick()
	if !res.Running || res.Warning || res.Expired {
		t.Errorf("first tick = %+v", res)
	}
	if s.TimeRemaining != 39 {
		t.Errorf("TimeRemaining = %d, want 39", s.TimeRemaining)
	}
}

func TestTick_NotStarted(t *testing.T) {
	s := testSession(40)
	if res := s.Tick(); res != (TickResult{}) {
		t.Errorf("tick before start = %+v, want zero", res)
	}
	if s.TimeRemaining != 40 {
		t.Errorf("TimeRemaining = %d, want 40", s.TimeRemaining)
	}
}

func TestTick_WarningLatchesOnce(t *testing.T) {
	s := testSession(32)
	s.StartTimer()

	var warnings []int
	for s.TimerRunning() {
		res := s.Tick()
		if res.Warning {
			warnings = append(warnings, s.TimeRemaining)
		}
	}

	if len(warnings) != 1 {
		t.Fatalf("warning fired %d times, want 1", len(warnings))
	}
	if warnings[0] != 29 {
		t.Errorf("warning fired at %d remaining, want 29", warnings[0])
	}
	if !s.WarningShown {
		t.Error("WarningShown should stay latched")
	}
}

func TestTick_ShortBudgetWarnsImmediately(t *testing.T) {
	s := testSession(10)
	s.StartTimer()
	if res := s.Tick(); !res.Warning {
		t.Errorf("first tick under threshold = %+v, want warning", res)
	}
}

func TestTick_ExpirySubmitsOnce(t *testing.T) {
	s := testSession(3)
	s.StartTimer()

	// Two of five answered correctly, current question left blank with a
	// pending validation error.
	_ = s.SelectAnswer("b")
	_, _ = s.Advance()
	_ = s.SelectAnswer("b")
	_, _ = s.Advance()
	_, _ = s.Advance()
	if !s.ValidationPending {
		t.Fatal("expected pending validation error")
	}

	var expiries int
	for i := 0; i < 10; i++ {
		if s.Tick().Expired {
			expiries++
		}
	}

	if expiries != 1 {
		t.Errorf("expired %d times, want 1", expiries)
	}
	if !s.Submitted || !s.AutoSubmitted {
		t.Error("expected timer-driven submission")
	}
	if s.ValidationPending {
		t.Error("submission should clear the pending validation error")
	}
	if s.Score != 2 {
		t.Errorf("Score = %d, want 2", s.Score)
	}
	if s.TimeRemaining != 0 {
		t.Errorf("TimeRemaining = %d, want 0", s.TimeRemaining)
	}
}

func TestStartTimer_NothingToCount(t *testing.T) {
	s := testSession(0)
	if s.StartTimer() {
		t.Error("StartTimer with no time should fail")
	}

	s = testSession(10)
	s.Submit()
	if s.StartTimer() {
		t.Error("StartTimer after submit should fail")
	}
}
