package services

import (
	"context"
	"sync"
	"time"

	"podium/config"
	"podium/models"
	"podium/utils"
)

// PracticeService is the single application state container: it owns the
// analyzer mode, the screen state machine, the recording stopwatch, and
// the one-at-a-time submission guard. All mutation goes through its
// methods.
type PracticeService struct {
	mu       sync.Mutex
	mode     Mode
	inFlight bool

	adapter   *AnalysisAdapter
	screens   *ScreenStateMachine
	stopwatch *Stopwatch
}

func NewPracticeService(cfg *config.Config) *PracticeService {
	remote := NewRemoteAnalyzer(
		cfg.Analyzer.WebhookURL,
		cfg.Analyzer.DefaultUID,
		time.Duration(cfg.Analyzer.TimeoutSec)*time.Second,
	)
	simulated := NewSimulatedAnalyzer(
		time.Duration(cfg.Analyzer.SimulatedDelayMs)*time.Millisecond,
		cfg.Rubric.Version,
	)
	return &PracticeService{
		mode:      Mode(cfg.Analyzer.Mode),
		adapter:   NewAnalysisAdapter(remote, simulated),
		screens:   NewScreenStateMachine(),
		stopwatch: NewStopwatch(),
	}
}

// NewPracticeServiceWith wires explicit collaborators; used by tests
func NewPracticeServiceWith(mode Mode, adapter *AnalysisAdapter) *PracticeService {
	return &PracticeService{
		mode:      mode,
		adapter:   adapter,
		screens:   NewScreenStateMachine(),
		stopwatch: NewStopwatch(),
	}
}

func (p *PracticeService) Mode() Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

// SetMode flips the analyzer toggle; it affects only the next analyze call
func (p *PracticeService) SetMode(mode Mode) error {
	if !ValidMode(mode) {
		return &ValidationError{Field: "mode", Reason: "must be remote or simulated"}
	}
	p.mu.Lock()
	p.mode = mode
	p.mu.Unlock()
	return nil
}

func (p *PracticeService) Screens() *ScreenStateMachine { return p.screens }
func (p *PracticeService) Stopwatch() *Stopwatch        { return p.stopwatch }

func (p *PracticeService) InFlight() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inFlight
}

// SubmitResult is what a completed submission hands back to the UI layer
type SubmitResult struct {
	Outcome  AnalyzeOutcome
	Screen   models.Screen
	Observed bool
}

// Submit builds the analyze request for the current attempt and runs it
// through the adapter. Only one submission may be outstanding; the elapsed
// recording time is used as the speech duration, defaulting to a full
// 7-minute speech when the timer never ran.
func (p *PracticeService) Submit(ctx context.Context, motion string, side models.Side, gcsURI, audioBlobURL string) (SubmitResult, error) {
	if motion == "" {
		return SubmitResult{}, &ValidationError{Field: "motion", Reason: "must not be empty"}
	}
	if !models.ValidSide(side) {
		return SubmitResult{}, &ValidationError{Field: "side", Reason: "must be one of OG, OO, CG, CO"}
	}

	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		return SubmitResult{}, ErrSubmissionInFlight
	}
	p.inFlight = true
	mode := p.mode
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.inFlight = false
		p.mu.Unlock()
	}()

	durationSec := p.stopwatch.Elapsed()
	if !p.stopwatch.EverRan() {
		durationSec = targetDurationSec
	}

	req := models.AnalyzeRequest{
		SessionID:    utils.NewSessionID(),
		Motion:       motion,
		Side:         side,
		DurationSec:  durationSec,
		GcsURI:       gcsURI,
		AudioBlobURL: audioBlobURL,
	}

	outcome, err := p.adapter.Analyze(ctx, mode, req)
	if err != nil {
		// Fallback path failed; surface inline without changing screens
		return SubmitResult{Screen: p.screens.Current()}, err
	}

	observed := p.screens.CompleteAnalysis(&models.Session{
		ID:       req.SessionID,
		Response: outcome.Response,
		Degraded: outcome.Degraded,
	})

	return SubmitResult{
		Outcome:  outcome,
		Screen:   p.screens.Current(),
		Observed: observed,
	}, nil
}

// Close tears down the service, cancelling the stopwatch tick loop
func (p *PracticeService) Close() {
	p.stopwatch.Stop()
}
