package session

// LowTimeThreshold is the remaining-seconds mark below which the
// low-time warning latches.
const LowTimeThreshold = 30

// countdown is the session's one-second tick task. The driver re-arms its
// tick source only while running is true.
type countdown struct {
	running bool
}

func (c *countdown) stop() {
	c.running = false
}

// TickResult reports the effect of one tick.
type TickResult struct {
	// Running is true if the driver should schedule another tick.
	Running bool

	// Warning is true on the single tick that latched the low-time warning.
	Warning bool

	// Expired is true on the tick that reached zero and submitted.
	Expired bool
}

// StartTimer arms the countdown. It reports false when there is nothing
// to count down: the session is submitted, closed or out of time.
func (s *Session) StartTimer() bool {
	if s.Submitted || s.closed || s.TimeRemaining <= 0 {
		return false
	}
	s.timer.running = true
	return true
}

// TimerRunning reports whether the countdown is armed.
func (s *Session) TimerRunning() bool {
	return s.timer.running
}

// Tick advances the countdown by one second. At zero it forces the
// submission regardless of any pending validation error.
func (s *Session) Tick() TickResult {
	if !s.timer.running || s.Submitted || s.closed {
		return TickResult{}
	}

	s.TimeRemaining--

	var res TickResult
	if !s.WarningShown && s.TimeRemaining < LowTimeThreshold {
		s.WarningShown = true
		res.Warning = true
	}

	if s.TimeRemaining <= 0 {
		s.TimeRemaining = 0
		if s.Submit() {
			s.AutoSubmitted = true
		}
		res.Expired = true
		return res
	}

	res.Running = true
	return res
}
