// main.go - Entry point for the health advisor backend

package main // Declares the package name

import ( // Import required packages
	"context" // For the Gemini client bootstrap

	"go-health-advisor/ai"         // AI gateway (Gemini)
	"go-health-advisor/config"     // Project config management
	"go-health-advisor/database"   // Database connection and setup
	"go-health-advisor/handlers"   // HTTP handlers for API endpoints
	"go-health-advisor/middleware" // Middleware (session authentication)
	"go-health-advisor/session"    // Server-side session manager
	"go-health-advisor/store"      // Credential and record stores

	"github.com/gin-contrib/cors" // CORS middleware
	"github.com/gin-gonic/gin"    // Gin web framework
	"go.uber.org/zap"             // Structured logging
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and set up logging
	cfg := config.Load() // Load configuration (DB, session secret, AI key)

	logger, err := zap.NewProduction() // Structured production logger
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	if cfg.GeminiAPIKey == "" { // Missing AI key is fatal at boot
		log.Fatal("GOOGLE_API_KEY must be set")
	}

	// STEP 2: Connect to the database and build the components
	db, err := database.Connect(cfg) // Connect and migrate
	if err != nil {
		log.Fatalw("database connection failed", "error", err)
	}

	hasher := store.HasherForScheme(cfg.PasswordScheme) // bcrypt by default, legacy only for migrated rows
	creds := store.NewCredentialStore(db, hasher, log)
	records := store.NewRecordStore(db, log)
	sessions := session.NewMemoryManager(cfg.SessionSecret, cfg.SessionTTL)

	client, err := ai.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalw("Gemini client setup failed", "error", err)
	}
	advisor := ai.NewAdvisor(client, cfg.AITimeout, log)

	users := handlers.NewUserHandler(creds, sessions, log)
	health := handlers.NewHealthHandler(records, sessions, advisor, log)

	// STEP 3: Create Gin router and configure routes
	r := gin.Default() // Create a new Gin router (web server)

	r.Use(cors.New(cors.Config{ // Browser clients send the session cookie cross-origin
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Public routes (no session required)
	api := r.Group("/api")
	api.POST("/register", users.Register)         // User registration
	api.POST("/login", users.Login)               // User login (sets session cookie)
	api.POST("/logout", users.Logout)             // User logout (clears session)
	api.GET("/check_session", users.CheckSession) // Session probe, always 200
	api.POST("/chat", health.Chat)                // AI chat (session optional)
	r.POST("/ask", health.Chat)                   // Legacy alias for /api/chat

	// Protected routes (require a valid session cookie)
	protected := api.Group("")
	protected.Use(middleware.SessionRequired(sessions))
	{
		protected.GET("/user/stats", health.UserStats)         // Dashboard stats
		protected.POST("/symptoms/check", health.CheckSymptoms) // Symptom analysis
	}

	// STEP 4: Start the web server
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalw("server stopped", "error", err)
	}
}
