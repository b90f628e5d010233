// health.go - Defines the symptom history, consultation and reminder models

package models

import "time"

// SymptomRecord is one symptom check and its AI analysis. Rows are immutable
// once written and belong to exactly one user.
type SymptomRecord struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index;not null" json:"user_id"`                                    // Foreign key to users table
	User           User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // Cascade-deleted with the owning user
	Symptoms       string    `gorm:"type:text;not null" json:"symptoms"`                               // Free-text symptom description
	AnalysisResult string    `gorm:"type:text" json:"analysis_result"`                                 // Serialized JSON analysis
	CreatedAt      time.Time `json:"created_at"`
}

func (SymptomRecord) TableName() string { return "symptoms_history" }

// Consultation is one free-form question/answer exchange with the AI.
type Consultation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Response  string    `gorm:"type:text" json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

func (Consultation) TableName() string { return "ai_consultations" }

// Reminder is a scheduled medicine reminder. The table is migrated ahead of
// functionality: no create/update endpoints are exposed yet, but active rows
// count toward dashboard stats.
type Reminder struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	User         User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	MedicineName string    `gorm:"size:100;not null" json:"medicine_name"`
	Dosage       string    `gorm:"size:50" json:"dosage"`
	Schedule     string    `gorm:"size:100" json:"schedule"`
	ReminderTime string    `gorm:"size:8" json:"reminder_time"` // "HH:MM:SS"
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Reminder) TableName() string { return "medicine_reminders" }
