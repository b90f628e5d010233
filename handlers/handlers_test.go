// handlers_test.go - Shared test wiring for the API endpoints
// Run with: go test ./...

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"go-health-advisor/ai"
	"go-health-advisor/config"
	"go-health-advisor/database"
	"go-health-advisor/middleware"
	"go-health-advisor/session"
	"go-health-advisor/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// stubAI stands in for the Gemini client so tests never hit the network.
type stubAI struct {
	response string
	err      error
}

func (s *stubAI) Generate(_ context.Context, _ string) (string, error) {
	return s.response, s.err
}

// setupTestApp builds the full router against a fresh sqlite test DB, the
// same wiring as main.go but with the AI client stubbed.
func setupTestApp(t *testing.T, dbPath string, aiClient ai.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	_ = os.Remove(dbPath) // Remove old test DB if exists

	cfg := config.Load()
	cfg.DBDriver = "sqlite"
	cfg.DBPath = dbPath

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("connect test db: %v", err)
	}

	log := zap.NewNop().Sugar()
	creds := store.NewCredentialStore(db, store.BcryptHasher{}, log)
	records := store.NewRecordStore(db, log)
	sessions := session.NewMemoryManager("test-secret", time.Hour)
	advisor := ai.NewAdvisor(aiClient, time.Second, log)

	users := NewUserHandler(creds, sessions, log)
	health := NewHealthHandler(records, sessions, advisor, log)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/register", users.Register)
	api.POST("/login", users.Login)
	api.POST("/logout", users.Logout)
	api.GET("/check_session", users.CheckSession)
	api.POST("/chat", health.Chat)
	r.POST("/ask", health.Chat)

	protected := api.Group("")
	protected.Use(middleware.SessionRequired(sessions))
	protected.GET("/user/stats", health.UserStats)
	protected.POST("/symptoms/check", health.CheckSymptoms)

	return r
}

// doJSON performs a JSON request with optional cookies and returns the
// recorder.
func doJSON(router *gin.Engine, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	router.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates an account and returns the session cookies.
func registerAndLogin(t *testing.T, router *gin.Engine, email string) []*http.Cookie {
	t.Helper()

	w := doJSON(router, "POST", "/api/register", RegisterInput{
		UserName:        "Test User",
		ContactNumber:   "1234567890",
		Email:           email,
		Password:        "testpass",
		ConfirmPassword: "testpass",
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(router, "POST", "/api/login", LoginInput{Email: email, Password: "testpass"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login set no session cookie")
	}
	return cookies
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}
