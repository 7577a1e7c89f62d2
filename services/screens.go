package services

import (
	"sync"

	"podium/models"
)

// ScreenStateMachine tracks which of the three screens is active and the
// session the session screen renders. Navigation via the persistent tab
// control is unguarded; the practice-to-session transition happens only on
// analysis completion. There is no terminal state.
type ScreenStateMachine struct {
	mu      sync.Mutex
	current models.Screen
	session *models.Session
}

func NewScreenStateMachine() *ScreenStateMachine {
	return &ScreenStateMachine{current: models.ScreenDashboard}
}

func (m *ScreenStateMachine) Current() models.Screen {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// StartPractice moves the user onto the practice screen
func (m *ScreenStateMachine) StartPractice() models.Screen {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leave(models.ScreenPractice)
	m.current = models.ScreenPractice
	return m.current
}

// NavigateTo jumps directly to any screen with no guard conditions. The
// session screen with no session renders a placeholder, never an error.
func (m *ScreenStateMachine) NavigateTo(target models.Screen) models.Screen {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leave(target)
	m.current = target
	return m.current
}

// CompleteAnalysis delivers a finished analysis. It transitions to the
// session screen only while practice is still active; a late result after
// the user navigated away is dropped unobserved. Returns whether the
// result was taken.
func (m *ScreenStateMachine) CompleteAnalysis(session *models.Session) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current != models.ScreenPractice {
		return false
	}
	m.current = models.ScreenSession
	m.session = session
	return true
}

// CurrentSession returns the held session, or nil when none exists
func (m *ScreenStateMachine) CurrentSession() *models.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// leave discards the ephemeral session when moving off the session screen
func (m *ScreenStateMachine) leave(target models.Screen) {
	if m.current == models.ScreenSession && target != models.ScreenSession {
		m.session = nil
	}
}
