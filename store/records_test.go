// records_test.go - Tests for symptom history and dashboard stats

package store

import (
	"testing"

	"go-health-advisor/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func createTestUser(t *testing.T, db *gorm.DB, email string) uint {
	t.Helper()
	user := models.User{UserName: "Test", ContactNumber: "000", Email: email, PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user.ID
}

func TestUserStatsHealthScore(t *testing.T) {
	db := setupTestDB(t, "test_records.db")
	records := NewRecordStore(db, testLogger())

	userID := createTestUser(t, db, "stats@example.com")
	otherID := createTestUser(t, db, "other@example.com")

	// Three checks: score = min(85 + 6, 100) = 91
	for i := 0; i < 3; i++ {
		assert.NoError(t, records.RecordSymptomCheck(userID, "headache", `{"severity":"Low"}`))
	}

	stats, err := records.UserStats(userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.SymptomChecks)
	assert.Equal(t, int64(0), stats.AIConsultations)
	assert.Equal(t, int64(0), stats.ActiveReminders)
	assert.Equal(t, 91, stats.HealthScore)

	// Rows are not counted for a different user
	otherStats, err := records.UserStats(otherID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), otherStats.SymptomChecks)
	assert.Equal(t, 85, otherStats.HealthScore)
}

func TestUserStatsScoreCapped(t *testing.T) {
	db := setupTestDB(t, "test_records_cap.db")
	records := NewRecordStore(db, testLogger())

	userID := createTestUser(t, db, "cap@example.com")
	for i := 0; i < 10; i++ {
		assert.NoError(t, records.RecordSymptomCheck(userID, "cough", "{}"))
	}

	stats, err := records.UserStats(userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), stats.SymptomChecks)
	assert.Equal(t, 100, stats.HealthScore) // capped, not 105
}

func TestConsultationsAndActiveReminders(t *testing.T) {
	db := setupTestDB(t, "test_records_misc.db")
	records := NewRecordStore(db, testLogger())

	userID := createTestUser(t, db, "misc@example.com")

	assert.NoError(t, records.RecordConsultation(userID, "what is a fever?", "elevated body temperature"))
	assert.NoError(t, records.RecordConsultation(userID, "is 38C a fever?", "yes, mildly"))

	// Only active reminders count
	db.Create(&models.Reminder{UserID: userID, MedicineName: "ibuprofen", IsActive: true})
	inactive := models.Reminder{UserID: userID, MedicineName: "paracetamol"}
	db.Create(&inactive)
	db.Model(&inactive).Update("is_active", false) // column default is true

	stats, err := records.UserStats(userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), stats.AIConsultations)
	assert.Equal(t, int64(1), stats.ActiveReminders)
	assert.Equal(t, 85, stats.HealthScore) // consultations do not move the score
}
