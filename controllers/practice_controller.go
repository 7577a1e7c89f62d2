package controllers

import (
	"errors"
	"net/http"

	"podium/models"
	"podium/services"

	"github.com/gin-gonic/gin"
)

type PracticeController struct {
	svc *services.PracticeService
}

func NewPracticeController(svc *services.PracticeService) *PracticeController {
	return &PracticeController{svc: svc}
}

type navigateRequest struct {
	Screen string `json:"screen" binding:"required,oneof=dashboard practice session"`
}

type modeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=remote simulated"`
}

type submitRequest struct {
	Motion       string `json:"motion" binding:"required"`
	Side         string `json:"side" binding:"required,oneof=OG OO CG CO"`
	GcsURI       string `json:"gcsUri"`
	AudioBlobURL string `json:"audioBlobUrl"`
}

// GetAppState reports the full UI-facing state snapshot
func (pc *PracticeController) GetAppState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"screen":           pc.svc.Screens().Current(),
		"mode":             pc.svc.Mode(),
		"elapsedSec":       pc.svc.Stopwatch().Elapsed(),
		"timerRunning":     pc.svc.Stopwatch().Running(),
		"analysisInFlight": pc.svc.InFlight(),
		"hasSession":       pc.svc.Screens().CurrentSession() != nil,
	})
}

// Navigate jumps to any screen via the persistent tab control
func (pc *PracticeController) Navigate(c *gin.Context) {
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}
	screen := pc.svc.Screens().NavigateTo(models.Screen(req.Screen))
	c.JSON(http.StatusOK, gin.H{"screen": screen})
}

// SetMode flips the remote/simulated analyzer toggle
func (pc *PracticeController) SetMode(c *gin.Context) {
	var req modeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}
	if err := pc.svc.SetMode(services.Mode(req.Mode)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mode": pc.svc.Mode()})
}

// StartPractice moves from the dashboard onto the practice screen
func (pc *PracticeController) StartPractice(c *gin.Context) {
	screen := pc.svc.Screens().StartPractice()
	c.JSON(http.StatusOK, gin.H{"screen": screen})
}

// StartTimer begins (and resets) the recording stopwatch
func (pc *PracticeController) StartTimer(c *gin.Context) {
	pc.svc.Stopwatch().Start()
	c.JSON(http.StatusOK, gin.H{
		"elapsedSec":   pc.svc.Stopwatch().Elapsed(),
		"timerRunning": true,
	})
}

// StopTimer halts the stopwatch without resetting the count
func (pc *PracticeController) StopTimer(c *gin.Context) {
	pc.svc.Stopwatch().Stop()
	c.JSON(http.StatusOK, gin.H{
		"elapsedSec":   pc.svc.Stopwatch().Elapsed(),
		"timerRunning": false,
	})
}

// Submit runs the analysis for the current attempt and reports the
// resulting screen. A second submit while one is outstanding gets a 409.
func (pc *PracticeController) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	result, err := pc.svc.Submit(c.Request.Context(), req.Motion, models.Side(req.Side), req.GcsURI, req.AudioBlobURL)
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrSubmissionInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Analysis failed: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": result.Outcome.Response.SessionID,
		"degraded":  result.Outcome.Degraded,
		"screen":    result.Screen,
		"observed":  result.Observed,
		"response":  result.Outcome.Response,
	})
}

// GetSession returns the session the session screen renders, or a null
// placeholder when no analysis has completed yet
func (pc *PracticeController) GetSession(c *gin.Context) {
	session := pc.svc.Screens().CurrentSession()
	if session == nil {
		c.JSON(http.StatusOK, gin.H{"session": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}
