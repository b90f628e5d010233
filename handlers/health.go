// health.go - Handles dashboard stats, symptom checks and AI chat

package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go-health-advisor/ai"
	"go-health-advisor/middleware"
	"go-health-advisor/session"
	"go-health-advisor/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SymptomsInput struct { // Struct for symptom check input
	Symptoms string `json:"symptoms"`
}

type QuestionInput struct { // Struct for chat input
	Question string `json:"question"`
}

// HealthHandler exposes the symptom, stats and chat endpoints.
type HealthHandler struct {
	records  *store.RecordStore
	sessions session.Manager
	advisor  *ai.Advisor
	log      *zap.SugaredLogger
}

func NewHealthHandler(records *store.RecordStore, sessions session.Manager, advisor *ai.Advisor, log *zap.SugaredLogger) *HealthHandler {
	return &HealthHandler{records: records, sessions: sessions, advisor: advisor, log: log}
}

// UserStats handles GET /api/user/stats. Runs behind SessionRequired. A
// storage failure is a 500, never a fabricated zero-stats block.
func (h *HealthHandler) UserStats(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Please login first"})
		return
	}

	stats, err := h.records.UserStats(sess.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not load stats, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

// CheckSymptoms handles POST /api/symptoms/check. Runs behind
// SessionRequired. The analysis is returned even if recording the history row
// fails; that failure is only logged.
func (h *HealthHandler) CheckSymptoms(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Please login first"})
		return
	}

	var input SymptomsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Request must be JSON"})
		return
	}
	symptoms := strings.TrimSpace(input.Symptoms)
	if symptoms == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No symptoms provided"})
		return
	}

	analysis, err := h.advisor.AnalyzeSymptoms(c.Request.Context(), symptoms)
	if err != nil {
		h.log.Errorw("symptom analysis failed", "user_id", sess.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error analyzing symptoms"})
		return
	}

	analysisJSON, err := json.Marshal(analysis)
	if err == nil {
		if err := h.records.RecordSymptomCheck(sess.UserID, symptoms, string(analysisJSON)); err != nil {
			h.log.Warnw("symptom check not recorded", "user_id", sess.UserID, "error", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"symptoms": symptoms,
		"analysis": analysis,
	})
}

// Chat handles POST /api/chat and POST /ask. No session is required; when one
// is present the exchange is persisted as a consultation.
func (h *HealthHandler) Chat(c *gin.Context) {
	var input QuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No question provided"})
		return
	}
	question := strings.TrimSpace(input.Question)
	if question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No question provided"})
		return
	}

	answer, err := h.advisor.Ask(c.Request.Context(), question)
	if err != nil {
		h.log.Errorw("chat failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI service unavailable"})
		return
	}

	// Persist the exchange only when the caller has a session; /ask works
	// anonymously and anonymous exchanges leave no history.
	if cookie, cerr := c.Cookie(session.CookieName); cerr == nil {
		if sess, ok := h.sessions.Get(cookie); ok {
			if err := h.records.RecordConsultation(sess.UserID, question, answer); err != nil {
				h.log.Warnw("consultation not recorded", "user_id", sess.UserID, "error", err)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"response": answer})
}
