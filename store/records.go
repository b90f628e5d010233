// records.go - Record store: symptom history, consultations, dashboard stats

package store

import (
	"fmt"

	"go-health-advisor/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Stats is the aggregate block shown on the dashboard.
type Stats struct {
	SymptomChecks   int64 `json:"symptom_checks"`
	AIConsultations int64 `json:"ai_consultations"`
	ActiveReminders int64 `json:"active_reminders"`
	HealthScore     int   `json:"health_score"`
}

const (
	baseHealthScore = 85
	maxHealthScore  = 100
)

// RecordStore persists symptom checks and AI consultations and computes
// per-user aggregates.
type RecordStore struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewRecordStore(db *gorm.DB, log *zap.SugaredLogger) *RecordStore {
	return &RecordStore{db: db, log: log}
}

// RecordSymptomCheck inserts one immutable history row. Storage failures are
// returned to the caller; the handler decides whether the overall request
// still succeeds.
func (s *RecordStore) RecordSymptomCheck(userID uint, symptoms, analysisJSON string) error {
	rec := models.SymptomRecord{
		UserID:         userID,
		Symptoms:       symptoms,
		AnalysisResult: analysisJSON,
	}
	if err := s.db.Create(&rec).Error; err != nil {
		s.log.Errorw("symptom check insert failed", "user_id", userID, "error", err)
		return fmt.Errorf("insert symptom check: %w", err)
	}
	return nil
}

// RecordConsultation inserts one question/response exchange.
func (s *RecordStore) RecordConsultation(userID uint, question, response string) error {
	rec := models.Consultation{
		UserID:   userID,
		Question: question,
		Response: response,
	}
	if err := s.db.Create(&rec).Error; err != nil {
		s.log.Errorw("consultation insert failed", "user_id", userID, "error", err)
		return fmt.Errorf("insert consultation: %w", err)
	}
	return nil
}

// UserStats runs three independent counts for the user and derives the health
// score: min(85 + 2*symptom_checks, 100). A failed query returns an error so
// the caller can distinguish "no activity yet" from "storage is down" - no
// silent default block.
func (s *RecordStore) UserStats(userID uint) (Stats, error) {
	var checks, consultations, reminders int64

	if err := s.db.Model(&models.SymptomRecord{}).
		Where("user_id = ?", userID).
		Count(&checks).Error; err != nil {
		s.log.Errorw("symptom check count failed", "user_id", userID, "error", err)
		return Stats{}, fmt.Errorf("count symptom checks: %w", err)
	}

	if err := s.db.Model(&models.Consultation{}).
		Where("user_id = ?", userID).
		Count(&consultations).Error; err != nil {
		s.log.Errorw("consultation count failed", "user_id", userID, "error", err)
		return Stats{}, fmt.Errorf("count consultations: %w", err)
	}

	if err := s.db.Model(&models.Reminder{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&reminders).Error; err != nil {
		s.log.Errorw("reminder count failed", "user_id", userID, "error", err)
		return Stats{}, fmt.Errorf("count reminders: %w", err)
	}

	score := baseHealthScore + int(checks)*2
	if score > maxHealthScore {
		score = maxHealthScore
	}

	return Stats{
		SymptomChecks:   checks,
		AIConsultations: consultations,
		ActiveReminders: reminders,
		HealthScore:     score,
	}, nil
}
