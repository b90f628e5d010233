// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os"   // For reading environment variables
	"time" // For duration settings

	"github.com/joho/godotenv" // Loads .env files into the environment
)

type Config struct { // Config struct holds all configuration values
	Addr string // Address the HTTP server listens on

	DBDriver   string // Database driver: "mysql" or "sqlite"
	DBHost     string // MySQL host
	DBPort     string // MySQL port
	DBUser     string // MySQL user
	DBPassword string // MySQL password
	DBName     string // MySQL database name
	DBPath     string // Path to the SQLite database file (sqlite driver only)

	SessionSecret string        // Secret key for signing session cookies
	SessionTTL    time.Duration // How long a session stays valid

	PasswordScheme string // Password hashing scheme: "bcrypt" or "legacy"

	GeminiAPIKey string        // Google Gemini API key (required at startup)
	GeminiModel  string        // Gemini model name
	AITimeout    time.Duration // Per-request deadline for AI calls

	CORSOrigin string // Allowed origin for browser clients
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	_ = godotenv.Load() // Load .env if present; a missing file is not an error

	return &Config{
		Addr: getEnv("ADDR", ":8080"),

		DBDriver:   getEnv("DB_DRIVER", "mysql"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "ai_health_advisor"),
		DBPath:     getEnv("DB_PATH", "health.db"),

		SessionSecret: getEnv("SESSION_SECRET", "supersecret"),
		SessionTTL:    getDuration("SESSION_TTL", 72*time.Hour),

		PasswordScheme: getEnv("PASSWORD_SCHEME", "bcrypt"),

		GeminiAPIKey: getEnv("GOOGLE_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		AITimeout:    getDuration("AI_TIMEOUT", 60*time.Second),

		CORSOrigin: getEnv("CORS_ORIGIN", "http://127.0.0.1:8080"),
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}

func getDuration(key string, fallback time.Duration) time.Duration { // Helper for duration env vars
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
