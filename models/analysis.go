package models

// Side is a British Parliamentary speaking position
type Side string

const (
	SideOG Side = "OG" // Opening Government
	SideOO Side = "OO" // Opening Opposition
	SideCG Side = "CG" // Closing Government
	SideCO Side = "CO" // Closing Opposition
)

// ValidSide reports whether s is one of the four BP positions
func ValidSide(s Side) bool {
	switch s {
	case SideOG, SideOO, SideCG, SideCO:
		return true
	}
	return false
}

// AnalyzeRequest is the payload sent to a speech analyzer.
// SessionID is generated per practice attempt; GcsURI and AudioBlobURL
// reference previously uploaded audio and may be empty.
type AnalyzeRequest struct {
	SessionID    string `json:"sessionId"`
	Motion       string `json:"motion"`
	Side         Side   `json:"side"`
	DurationSec  int    `json:"durationSec"`
	GcsURI       string `json:"gcsUri"`
	AudioBlobURL string `json:"audioBlobUrl,omitempty"`
	UID          string `json:"uid"`
}

type AnalysisStatus string

const (
	StatusScored AnalysisStatus = "scored"
	StatusFailed AnalysisStatus = "failed"
	StatusQueued AnalysisStatus = "queued"
)

// Scores holds the three-part rubric marks. Matter and Manner are out of
// 40, Method out of 20; Total is always their sum when constructed locally.
type Scores struct {
	Matter int `json:"matter"`
	Manner int `json:"manner"`
	Method int `json:"method"`
	Total  int `json:"total"`
}

// Delivery holds pace metrics for the speech
type Delivery struct {
	WPM          int     `json:"wpm"`
	FillerPerMin float64 `json:"fillerPerMin"`
}

type TimingStatus string

const (
	TimingOk        TimingStatus = "ok"
	TimingUndertime TimingStatus = "undertime"
	TimingOvertime  TimingStatus = "overtime"
)

type Timing struct {
	Status TimingStatus `json:"status"`
	Notes  string       `json:"notes,omitempty"`
}

// Justification carries per-category reasoning behind the scores
type Justification struct {
	Matter []string `json:"matter"`
	Manner []string `json:"manner"`
	Method []string `json:"method"`
}

// Actionable is a concrete improvement suggestion
type Actionable struct {
	Title string `json:"title"`
	Why   string `json:"why"`
	How   string `json:"how"`
}

// Drill is a practice exercise recommendation
type Drill struct {
	Name         string `json:"name"`
	Instructions string `json:"instructions"`
}

type Feedback struct {
	Justification Justification `json:"justification"`
	Actionables   []Actionable  `json:"actionables"`
	Drills        []Drill       `json:"drills"`
}

// AnalyzeResponse is the scored result for one speech. SessionID echoes
// the request's identifier.
type AnalyzeResponse struct {
	Status        AnalysisStatus `json:"status"`
	SessionID     string         `json:"sessionId"`
	Transcript    string         `json:"transcript"`
	Scores        Scores         `json:"scores"`
	Delivery      Delivery       `json:"delivery"`
	Timing        Timing         `json:"timing"`
	Feedback      Feedback       `json:"feedback"`
	RubricVersion string         `json:"rubricVersion"`
}
