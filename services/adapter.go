package services

import (
	"context"
	"log"

	"podium/models"
)

// Mode selects which analyzer backs the next analyze call
type Mode string

const (
	ModeRemote    Mode = "remote"
	ModeSimulated Mode = "simulated"
)

func ValidMode(m Mode) bool {
	return m == ModeRemote || m == ModeSimulated
}

// Analyzer scores one speech request
type Analyzer interface {
	Analyze(ctx context.Context, req models.AnalyzeRequest) (models.AnalyzeResponse, error)
}

// AnalyzeOutcome is a successful analysis. Degraded marks a result that
// came from the simulated fallback after a remote failure, so callers can
// tell it apart from a deliberate simulated run.
type AnalyzeOutcome struct {
	Response models.AnalyzeResponse `json:"response"`
	Degraded bool                   `json:"degraded"`
}

// AnalysisAdapter routes analyze calls to the remote or simulated analyzer.
// In remote mode a single failed attempt falls back to the simulated
// analyzer; there is no retry and no queueing. Mode is passed in per call
// so the adapter holds no hidden state.
type AnalysisAdapter struct {
	remote    Analyzer
	simulated Analyzer
}

func NewAnalysisAdapter(remote, simulated Analyzer) *AnalysisAdapter {
	return &AnalysisAdapter{remote: remote, simulated: simulated}
}

// Analyze returns a valid scored outcome for every request. The returned
// error is reserved for a failure of the fallback path itself, which the
// simulated analyzer is defined never to produce.
func (a *AnalysisAdapter) Analyze(ctx context.Context, mode Mode, req models.AnalyzeRequest) (AnalyzeOutcome, error) {
	if mode == ModeRemote {
		resp, err := a.remote.Analyze(ctx, req)
		if err == nil {
			return AnalyzeOutcome{Response: resp}, nil
		}
		log.Printf("Remote analysis failed for session %s, falling back to simulated: %v", req.SessionID, err)

		resp, err = a.simulated.Analyze(ctx, req)
		if err != nil {
			return AnalyzeOutcome{}, err
		}
		return AnalyzeOutcome{Response: resp, Degraded: true}, nil
	}

	resp, err := a.simulated.Analyze(ctx, req)
	if err != nil {
		return AnalyzeOutcome{}, err
	}
	return AnalyzeOutcome{Response: resp}, nil
}
