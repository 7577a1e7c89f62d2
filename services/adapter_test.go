package services

import (
	"context"
	"errors"
	"testing"

	"podium/models"
)

// countingAnalyzer records calls and returns a fixed response or error
type countingAnalyzer struct {
	calls int
	resp  models.AnalyzeResponse
	err   error
}

func (a *countingAnalyzer) Analyze(_ context.Context, req models.AnalyzeRequest) (models.AnalyzeResponse, error) {
	a.calls++
	if a.err != nil {
		return models.AnalyzeResponse{}, a.err
	}
	resp := a.resp
	resp.SessionID = req.SessionID
	return resp, nil
}

func TestAdapterFallsBackOnRemoteFailure(t *testing.T) {
	remote := &countingAnalyzer{err: &NetworkError{Err: errors.New("connection refused")}}
	simulated := NewSimulatedAnalyzer(0, "bp-rubric-v1")
	adapter := NewAnalysisAdapter(remote, simulated)

	req := models.AnalyzeRequest{SessionID: "sess-fallback", Motion: "m", Side: models.SideOO, DurationSec: 420}
	outcome, err := adapter.Analyze(context.Background(), ModeRemote, req)
	if err != nil {
		t.Fatalf("Adapter must not propagate remote failure, got: %v", err)
	}

	if !outcome.Degraded {
		t.Error("Expected degraded outcome after remote failure")
	}
	if remote.calls != 1 {
		t.Errorf("Expected exactly one remote attempt, got %d", remote.calls)
	}

	// The substituted result must be indistinguishable in shape from a
	// direct simulated call.
	resp := outcome.Response
	if resp.Status != models.StatusScored {
		t.Errorf("Expected status scored, got %s", resp.Status)
	}
	if resp.SessionID != "sess-fallback" {
		t.Errorf("Expected session id sess-fallback, got %s", resp.SessionID)
	}
	if resp.Scores.Total != resp.Scores.Matter+resp.Scores.Manner+resp.Scores.Method {
		t.Errorf("Fallback scores inconsistent: %+v", resp.Scores)
	}
}

func TestAdapterSimulatedModeSkipsRemote(t *testing.T) {
	remote := &countingAnalyzer{resp: models.AnalyzeResponse{Status: models.StatusScored}}
	simulated := NewSimulatedAnalyzer(0, "bp-rubric-v1")
	adapter := NewAnalysisAdapter(remote, simulated)

	req := models.AnalyzeRequest{SessionID: "sess-sim", Motion: "m", Side: models.SideCG, DurationSec: 300}
	outcome, err := adapter.Analyze(context.Background(), ModeSimulated, req)
	if err != nil {
		t.Fatalf("Simulated mode returned error: %v", err)
	}

	if remote.calls != 0 {
		t.Errorf("Remote analyzer must not be invoked in simulated mode, got %d calls", remote.calls)
	}
	if outcome.Degraded {
		t.Error("Deliberate simulated run must not be marked degraded")
	}
}

func TestAdapterRemoteSuccessPassesThrough(t *testing.T) {
	remote := &countingAnalyzer{resp: models.AnalyzeResponse{
		Status: models.StatusScored,
		Scores: models.Scores{Matter: 30, Manner: 28, Method: 15, Total: 73},
	}}
	simCounter := &countingAnalyzer{}
	adapter := NewAnalysisAdapter(remote, simCounter)

	req := models.AnalyzeRequest{SessionID: "sess-remote", Motion: "m", Side: models.SideOG, DurationSec: 421}
	outcome, err := adapter.Analyze(context.Background(), ModeRemote, req)
	if err != nil {
		t.Fatalf("Remote mode returned error: %v", err)
	}

	if outcome.Degraded {
		t.Error("Successful remote result must not be marked degraded")
	}
	if simCounter.calls != 0 {
		t.Errorf("Simulated analyzer must not run on remote success, got %d calls", simCounter.calls)
	}
	// The adapter must not re-derive the remote total
	if outcome.Response.Scores.Total != 73 {
		t.Errorf("Expected remote total 73 untouched, got %d", outcome.Response.Scores.Total)
	}
}

func TestAdapterSingleAttemptNoRetry(t *testing.T) {
	remote := &countingAnalyzer{err: &ProtocolError{StatusCode: 503, Reason: "unavailable"}}
	adapter := NewAnalysisAdapter(remote, NewSimulatedAnalyzer(0, "bp-rubric-v1"))

	req := models.AnalyzeRequest{SessionID: "s", Motion: "m", Side: models.SideOG, DurationSec: 420}
	if _, err := adapter.Analyze(context.Background(), ModeRemote, req); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if remote.calls != 1 {
		t.Errorf("Expected a single remote attempt, got %d", remote.calls)
	}
}
