// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"fmt" // For building the MySQL DSN

	"go-health-advisor/config" // Project config
	"go-health-advisor/models" // Data models

	"gorm.io/driver/mysql"  // MySQL driver for GORM
	"gorm.io/driver/sqlite" // SQLite driver for GORM (tests, local runs)
	"gorm.io/gorm"          // GORM ORM
)

// Connect opens the database and runs migrations. TranslateError is enabled so
// a violated unique index surfaces as gorm.ErrDuplicatedKey on every driver;
// the stores rely on that as the authoritative duplicate signal instead of a
// racy check-then-insert.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector // Driver-specific connector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DBPath)
	default:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
		dialector = mysql.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true}) // Open DB
	if err != nil {                                                     // If error, return it
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Auto-migrate all models (create tables and the unique email index if needed)
	if err := db.AutoMigrate(
		&models.User{},
		&models.SymptomRecord{},
		&models.Consultation{},
		&models.Reminder{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}
