package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"podium/models"
)

// RemoteAnalyzer scores a speech by POSTing the request to the configured
// scoring webhook. Any non-success outcome is reported as a NetworkError or
// ProtocolError; it never invents a result.
type RemoteAnalyzer struct {
	WebhookURL string
	DefaultUID string
	Client     *http.Client
}

func NewRemoteAnalyzer(webhookURL, defaultUID string, timeout time.Duration) *RemoteAnalyzer {
	return &RemoteAnalyzer{
		WebhookURL: webhookURL,
		DefaultUID: defaultUID,
		Client:     &http.Client{Timeout: timeout},
	}
}

// webhookRequest is the wire shape the scoring service expects. The audio
// reference collapses to gcsUri and marshals as an empty string when the
// speech was described rather than recorded.
type webhookRequest struct {
	SessionID   string `json:"sessionId"`
	Motion      string `json:"motion"`
	Side        string `json:"side"`
	DurationSec int    `json:"durationSec"`
	GcsURI      string `json:"gcsUri"`
	UID         string `json:"uid"`
}

func (r *RemoteAnalyzer) Analyze(ctx context.Context, req models.AnalyzeRequest) (models.AnalyzeResponse, error) {
	audioRef := req.GcsURI
	if audioRef == "" {
		audioRef = req.AudioBlobURL
	}
	uid := req.UID
	if uid == "" {
		uid = r.DefaultUID
	}

	payload, err := json.Marshal(webhookRequest{
		SessionID:   req.SessionID,
		Motion:      req.Motion,
		Side:        string(req.Side),
		DurationSec: req.DurationSec,
		GcsURI:      audioRef,
		UID:         uid,
	})
	if err != nil {
		return models.AnalyzeResponse{}, fmt.Errorf("failed to marshal analyze request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.WebhookURL, bytes.NewBuffer(payload))
	if err != nil {
		return models.AnalyzeResponse{}, &NetworkError{Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.Client.Do(httpReq)
	if err != nil {
		return models.AnalyzeResponse{}, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.AnalyzeResponse{}, &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.AnalyzeResponse{}, &ProtocolError{StatusCode: resp.StatusCode, Reason: string(body)}
	}

	return decodeWebhookBody(body)
}

// decodeWebhookBody parses the webhook response, tolerating an older
// flattened shape where matter/manner/method/total sit at the top level
// instead of under a nested scores object.
func decodeWebhookBody(body []byte) (models.AnalyzeResponse, error) {
	var result models.AnalyzeResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return models.AnalyzeResponse{}, &ProtocolError{Reason: "undecodable response body: " + err.Error()}
	}

	var probe struct {
		Scores *models.Scores `json:"scores"`
		Matter *int           `json:"matter"`
		Manner *int           `json:"manner"`
		Method *int           `json:"method"`
		Total  *int           `json:"total"`
	}
	if err := json.Unmarshal(body, &probe); err == nil && probe.Scores == nil {
		if probe.Matter != nil || probe.Manner != nil || probe.Method != nil || probe.Total != nil {
			synthesized := models.Scores{}
			if probe.Matter != nil {
				synthesized.Matter = *probe.Matter
			}
			if probe.Manner != nil {
				synthesized.Manner = *probe.Manner
			}
			if probe.Method != nil {
				synthesized.Method = *probe.Method
			}
			if probe.Total != nil {
				synthesized.Total = *probe.Total
			}
			result.Scores = synthesized
		}
	}

	return result, nil
}
