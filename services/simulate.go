package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"podium/models"
)

// Speech timing window: 7 minutes with 30 seconds of grace on either side
const (
	targetDurationSec = 420
	minOkDurationSec  = 390
	maxOkDurationSec  = 435
)

// SimulatedAnalyzer produces a plausible scored response without any
// network dependency. It backs the demo mode and the remote fallback, and
// waits a fixed artificial delay so the UI sees realistic latency.
type SimulatedAnalyzer struct {
	Delay         time.Duration
	RubricVersion string
}

func NewSimulatedAnalyzer(delay time.Duration, rubricVersion string) *SimulatedAnalyzer {
	return &SimulatedAnalyzer{Delay: delay, RubricVersion: rubricVersion}
}

func (s *SimulatedAnalyzer) Analyze(_ context.Context, req models.AnalyzeRequest) (models.AnalyzeResponse, error) {
	if s.Delay > 0 {
		time.Sleep(s.Delay)
	}

	scores := randomScores()
	return models.AnalyzeResponse{
		Status:     models.StatusScored,
		SessionID:  req.SessionID,
		Transcript: simulatedTranscript(req),
		Scores:     scores,
		Delivery: models.Delivery{
			WPM:          120 + rand.Intn(50),
			FillerPerMin: 1.5 + rand.Float64()*5,
		},
		Timing:        TimingForDuration(req.DurationSec),
		Feedback:      illustrativeFeedback(),
		RubricVersion: s.RubricVersion,
	}, nil
}

// randomScores draws each category from its fixed range; the total is the
// exact sum, never drawn independently
func randomScores() models.Scores {
	matter := 24 + rand.Intn(10) // [24,33]
	manner := 22 + rand.Intn(10) // [22,31]
	method := 12 + rand.Intn(8)  // [12,19]
	return models.Scores{
		Matter: matter,
		Manner: manner,
		Method: method,
		Total:  matter + manner + method,
	}
}

// TimingForDuration classifies a speech length against the 7-minute target
func TimingForDuration(durationSec int) models.Timing {
	switch {
	case durationSec < minOkDurationSec:
		return models.Timing{
			Status: models.TimingUndertime,
			Notes:  fmt.Sprintf("Spoke for %ds; aim for the full 7 minutes.", durationSec),
		}
	case durationSec > maxOkDurationSec:
		return models.Timing{
			Status: models.TimingOvertime,
			Notes:  fmt.Sprintf("Spoke for %ds; wrap up before the 7-minute mark.", durationSec),
		}
	default:
		return models.Timing{Status: models.TimingOk}
	}
}

func simulatedTranscript(req models.AnalyzeRequest) string {
	return fmt.Sprintf(
		"Thank you, Chair. Speaking as %s on the motion %q, I will advance three arguments: "+
			"first, the principled case; second, the practical outcomes; and third, why the "+
			"opposition's framing fails on its own terms. [simulated transcript]",
		req.Side, req.Motion,
	)
}

// illustrativeFeedback returns fixed coaching content. It is deliberately
// not derived from the transcript; the remote pipeline owns real feedback.
func illustrativeFeedback() models.Feedback {
	return models.Feedback{
		Justification: models.Justification{
			Matter: []string{
				"Arguments were relevant to the motion but analysis stopped one step short of impact.",
				"Strong use of examples, though comparative weighing against the other bench was thin.",
			},
			Manner: []string{
				"Clear structure signposting throughout the speech.",
				"Pace drifted upward in the final minute, costing emphasis on the summary.",
			},
			Method: []string{
				"Role fulfilment was solid; the extension was flagged but could be framed earlier.",
			},
		},
		Actionables: []models.Actionable{
			{
				Title: "Finish the impact chain",
				Why:   "Judges credit argued harms, not asserted ones.",
				How:   "After each claim, add one 'which means that...' step before moving on.",
			},
			{
				Title: "Weigh explicitly",
				Why:   "Unweighed clash leaves the comparison to the judge.",
				How:   "Name the metric (scale, probability, reversibility) when comparing cases.",
			},
			{
				Title: "Protect the last minute",
				Why:   "A rushed summary undercuts an otherwise controlled speech.",
				How:   "Reserve 45 seconds for the summary and practise stopping arguments early.",
			},
		},
		Drills: []models.Drill{
			{
				Name:         "One-minute impact ladders",
				Instructions: "Take a claim and extend it through four consequence steps in under a minute.",
			},
			{
				Name:         "Metronome delivery",
				Instructions: "Deliver a rebuttal at 130 wpm against a metronome, then again at 150, and compare recordings.",
			},
		},
	}
}
