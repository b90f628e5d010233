// user.go - Handles user registration, login, logout and session checks

package handlers // Declares the package name

import (
	"errors"   // Sentinel error checks
	"net/http" // HTTP status codes
	"strings"  // Input trimming and validation

	"go-health-advisor/session" // Session manager
	"go-health-advisor/store"   // Credential store

	"github.com/gin-gonic/gin" // Gin web framework
	"go.uber.org/zap"          // Structured logging
)

type RegisterInput struct { // Struct for registration input
	UserName        string `json:"user_name"`
	ContactNumber   string `json:"contact_number"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type LoginInput struct { // Struct for login input
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserHandler exposes the account endpoints. Dependencies are injected; no
// package globals.
type UserHandler struct {
	creds    *store.CredentialStore
	sessions session.Manager
	log      *zap.SugaredLogger
}

func NewUserHandler(creds *store.CredentialStore, sessions session.Manager, log *zap.SugaredLogger) *UserHandler {
	return &UserHandler{creds: creds, sessions: sessions, log: log}
}

// Register handles POST /api/register. All validation failures are collected
// into one aggregated message before responding.
func (h *UserHandler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Request must be JSON"})
		return
	}

	userName := strings.TrimSpace(input.UserName)
	contactNumber := strings.TrimSpace(input.ContactNumber)
	email := store.NormalizeEmail(input.Email)
	password := strings.TrimSpace(input.Password)
	confirmPassword := strings.TrimSpace(input.ConfirmPassword)

	// Collect every missing-field violation before answering
	var validationErrors []string
	if userName == "" {
		validationErrors = append(validationErrors, "Username is required")
	}
	if contactNumber == "" {
		validationErrors = append(validationErrors, "Contact number is required")
	}
	if email == "" {
		validationErrors = append(validationErrors, "Email is required")
	}
	if password == "" {
		validationErrors = append(validationErrors, "Password is required")
	}
	if confirmPassword == "" {
		validationErrors = append(validationErrors, "Confirm password is required")
	}
	if len(validationErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": strings.Join(validationErrors, ", ")})
		return
	}

	if password != confirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Passwords do not match"})
		return
	}
	if len(password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Password must be at least 6 characters"})
		return
	}
	// Weak heuristic on purpose: the confirmation email is the real check
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid email format"})
		return
	}

	userID, err := h.creds.Register(userName, contactNumber, email, password)
	if errors.Is(err, store.ErrDuplicateEmail) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email already registered"})
		return
	}
	if err != nil {
		// Already logged by the store; never leak driver error text
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Registration failed due to a server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Registration successful",
		"user_id": userID,
	})
}

// Login handles POST /api/login. On success a signed session cookie is set.
func (h *UserHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Request must be JSON"})
		return
	}

	email := store.NormalizeEmail(input.Email)
	password := strings.TrimSpace(input.Password)
	if email == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and password are required"})
		return
	}

	user, err := h.creds.Verify(email, password)
	if errors.Is(err, store.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed"})
		return
	}

	cookie, err := h.sessions.Create(user)
	if err != nil {
		h.log.Errorw("session create failed", "user_id", user.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, cookie, 0, "/", "", false, true) // Session cookie, HttpOnly

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user": gin.H{
			"id":    user.ID,
			"name":  user.UserName,
			"email": user.Email,
		},
	})
}

// Logout handles POST /api/logout. Destroys the server-side session and
// expires the cookie. Runs behind SessionRequired.
func (h *UserHandler) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(session.CookieName); err == nil {
		h.sessions.Destroy(cookie)
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true) // Expire the cookie

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

// CheckSession handles GET /api/check_session. Always 200; the body says
// whether the caller is logged in.
func (h *UserHandler) CheckSession(c *gin.Context) {
	cookie, err := c.Cookie(session.CookieName)
	if err == nil {
		if sess, ok := h.sessions.Get(cookie); ok {
			c.JSON(http.StatusOK, gin.H{
				"logged_in": true,
				"user": gin.H{
					"id":    sess.UserID,
					"name":  sess.UserName,
					"email": sess.Email,
				},
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"logged_in": false})
}
