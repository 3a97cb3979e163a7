package session

import (
	sess "github.com/abhisek/quizzer/internal/session"
)

// sessionInitMsg is sent when the bank fetch and sampling complete. LoadID
// names the screen that started the load.
type sessionInitMsg struct {
	LoadID uint64
	State  *sess.Session
	Err    error
}

// timerTickMsg is sent every second while the countdown runs. It carries
// the session ID so ticks from a torn-down session are dropped.
type timerTickMsg struct {
	SessionID string
}
