package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"podium/models"
)

// capturingAnalyzer records the last request and answers like the remote
type capturingAnalyzer struct {
	mu    sync.Mutex
	last  models.AnalyzeRequest
	delay time.Duration
}

func (a *capturingAnalyzer) Analyze(_ context.Context, req models.AnalyzeRequest) (models.AnalyzeResponse, error) {
	a.mu.Lock()
	a.last = req
	a.mu.Unlock()
	if a.delay > 0 {
		time.Sleep(a.delay)
	}
	return models.AnalyzeResponse{
		Status:    models.StatusScored,
		SessionID: req.SessionID,
		Scores:    models.Scores{Matter: 30, Manner: 26, Method: 15, Total: 71},
	}, nil
}

func (a *capturingAnalyzer) lastRequest() models.AnalyzeRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last
}

func newTestService(mode Mode, remote Analyzer) *PracticeService {
	return NewPracticeServiceWith(mode, NewAnalysisAdapter(remote, NewSimulatedAnalyzer(0, "bp-rubric-v1")))
}

func TestSubmitFlowCarriesSessionID(t *testing.T) {
	remote := &capturingAnalyzer{}
	svc := newTestService(ModeRemote, remote)
	defer svc.Close()

	svc.Screens().StartPractice()
	result, err := svc.Submit(context.Background(), "This house would tax meat", models.SideOG, "", "")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if result.Screen != models.ScreenSession {
		t.Errorf("Expected session screen after completion, got %s", result.Screen)
	}
	if !result.Observed {
		t.Error("Expected the completion to be observed")
	}

	generated := remote.lastRequest().SessionID
	if generated == "" || !strings.HasPrefix(generated, "sess-") {
		t.Errorf("Expected a generated session id, got %q", generated)
	}
	sess := svc.Screens().CurrentSession()
	if sess == nil || sess.ID != generated {
		t.Errorf("Session screen must carry the generated id %q, got %+v", generated, sess)
	}
	if result.Outcome.Response.SessionID != generated {
		t.Errorf("Response must echo the generated id %q, got %q", generated, result.Outcome.Response.SessionID)
	}
}

func TestSubmitDefaultsDurationWhenTimerNeverRan(t *testing.T) {
	remote := &capturingAnalyzer{}
	svc := newTestService(ModeRemote, remote)
	defer svc.Close()

	svc.Screens().StartPractice()
	if _, err := svc.Submit(context.Background(), "motion", models.SideCG, "", ""); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if got := remote.lastRequest().DurationSec; got != 420 {
		t.Errorf("Expected fallback duration 420, got %d", got)
	}
}

func TestSubmitValidation(t *testing.T) {
	svc := newTestService(ModeSimulated, &capturingAnalyzer{})
	defer svc.Close()

	var vErr *ValidationError
	if _, err := svc.Submit(context.Background(), "", models.SideOG, "", ""); !errors.As(err, &vErr) {
		t.Errorf("Expected ValidationError for empty motion, got %v", err)
	}
	if _, err := svc.Submit(context.Background(), "motion", models.Side("PM"), "", ""); !errors.As(err, &vErr) {
		t.Errorf("Expected ValidationError for bad side, got %v", err)
	}
}

func TestSubmitRejectsConcurrentSubmission(t *testing.T) {
	remote := &capturingAnalyzer{delay: 300 * time.Millisecond}
	svc := newTestService(ModeRemote, remote)
	defer svc.Close()

	svc.Screens().StartPractice()

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), "motion", models.SideOG, "", "")
		done <- err
	}()

	// Give the first submission time to take the guard
	time.Sleep(50 * time.Millisecond)
	if !svc.InFlight() {
		t.Fatal("Expected an analysis to be in flight")
	}

	_, err := svc.Submit(context.Background(), "motion", models.SideOG, "", "")
	if !errors.Is(err, ErrSubmissionInFlight) {
		t.Errorf("Expected ErrSubmissionInFlight, got %v", err)
	}

	if err := <-done; err != nil {
		t.Errorf("First submission failed: %v", err)
	}
	if svc.InFlight() {
		t.Error("Guard must be released after completion")
	}
}

func TestSubmitAfterNavigationDropsResult(t *testing.T) {
	remote := &capturingAnalyzer{delay: 150 * time.Millisecond}
	svc := newTestService(ModeRemote, remote)
	defer svc.Close()

	svc.Screens().StartPractice()

	done := make(chan SubmitResult, 1)
	go func() {
		result, _ := svc.Submit(context.Background(), "motion", models.SideOO, "", "")
		done <- result
	}()

	time.Sleep(50 * time.Millisecond)
	svc.Screens().NavigateTo(models.ScreenDashboard)

	result := <-done
	if result.Observed {
		t.Error("Late result must not be observed after navigation")
	}
	if result.Screen != models.ScreenDashboard {
		t.Errorf("Screen must stay dashboard, got %s", result.Screen)
	}
	if svc.Screens().CurrentSession() != nil {
		t.Error("Dropped result must not populate the session")
	}
}

func TestModeToggle(t *testing.T) {
	svc := newTestService(ModeRemote, &capturingAnalyzer{})
	defer svc.Close()

	if svc.Mode() != ModeRemote {
		t.Errorf("Expected default mode remote, got %s", svc.Mode())
	}
	if err := svc.SetMode(ModeSimulated); err != nil {
		t.Fatalf("SetMode failed: %v", err)
	}
	if svc.Mode() != ModeSimulated {
		t.Errorf("Expected mode simulated, got %s", svc.Mode())
	}

	var vErr *ValidationError
	if err := svc.SetMode(Mode("hybrid")); !errors.As(err, &vErr) {
		t.Errorf("Expected ValidationError for bad mode, got %v", err)
	}
}
