// user.go - Defines the User model for the database

package models // Declares the package name

import "time"

type User struct { // User struct represents a registered account
	ID            uint      `gorm:"primaryKey" json:"id"`                       // Unique user ID (primary key)
	UserName      string    `gorm:"size:100;not null" json:"user_name"`         // Display name
	ContactNumber string    `gorm:"size:20;not null" json:"contact_number"`     // Contact phone number
	Email         string    `gorm:"size:100;uniqueIndex;not null" json:"email"` // Email (must be unique, cannot be null)
	PasswordHash  string    `gorm:"size:255;not null" json:"-"`                 // Hashed password (never serialized)
	CreatedAt     time.Time `json:"created_at"`                                 // When the account was created
}
