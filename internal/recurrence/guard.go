package recurrence

import "sync"

type guardState int

const (
	guardIdle guardState = iota
	guardRunning
	guardDone
)

// SessionGuard limits the engine to one run per authenticated session. Its
// states are Idle, Running(user), and Done(user): a login arms exactly one
// run, and the guard stays Done for that user until logout resets it. A login
// by a different user re-arms immediately, matching a user switch without an
// explicit logout.
type SessionGuard struct {
	mu     sync.Mutex
	state  guardState
	userID string
}

// NewSessionGuard returns a guard in the Idle state.
func NewSessionGuard() *SessionGuard {
	return &SessionGuard{}
}

// Begin claims the engine run for userID. It returns false while a run is in
// flight or after a run already completed for this user's session.
func (g *SessionGuard) Begin(userID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.state {
	case guardRunning:
		return false
	case guardDone:
		if g.userID == userID {
			return false
		}
	}

	g.state = guardRunning
	g.userID = userID
	return true
}

// Finish marks the claimed run complete, keeping further runs suppressed
// until the session changes.
func (g *SessionGuard) Finish(userID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == guardRunning && g.userID == userID {
		g.state = guardDone
	}
}

// Abort releases a claimed run that failed before committing, so the next
// login retries materialization.
func (g *SessionGuard) Abort(userID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == guardRunning && g.userID == userID {
		g.state = guardIdle
		g.userID = ""
	}
}

// Reset returns the guard to Idle. Called on logout so a future login, for
// this or any other user, re-arms the engine.
func (g *SessionGuard) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.state = guardIdle
	g.userID = ""
}
