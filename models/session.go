package models

// Screen identifies which view of the single-page app is active
type Screen string

const (
	ScreenDashboard Screen = "dashboard"
	ScreenPractice  Screen = "practice"
	ScreenSession   Screen = "session"
)

// Session pairs a practice attempt with its analysis result. Sessions live
// in memory only and are discarded on navigation away from the session
// screen; nothing is persisted.
type Session struct {
	ID       string          `json:"sessionId"`
	Response AnalyzeResponse `json:"response"`
	Degraded bool            `json:"degraded"`
}
