// session.go - Server-side cookie sessions

package session

import (
	"errors"
	"sync"
	"time"

	"go-health-advisor/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

// Session is the server-side state behind one cookie: the authenticated
// identity plus lifetime bounds. It lives only in process memory.
type Session struct {
	UserID    uint
	UserName  string
	Email     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Manager maps cookie values to sessions. Handlers and middleware receive a
// Manager explicitly; there is no ambient request-global session state.
type Manager interface {
	Create(user *models.User) (string, error)
	Get(cookieValue string) (*Session, bool)
	Destroy(cookieValue string)
}

// MemoryManager keeps sessions in a mutex-guarded map keyed by a random
// session ID. The cookie value is an HS256-signed JWT carrying that ID, so a
// tampered cookie fails the signature check before any map lookup.
type MemoryManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	secret   []byte
	ttl      time.Duration
}

func NewMemoryManager(secret string, ttl time.Duration) *MemoryManager {
	return &MemoryManager{
		sessions: make(map[string]*Session),
		secret:   []byte(secret),
		ttl:      ttl,
	}
}

// Create stores a new session for the user and returns the signed cookie
// value.
func (m *MemoryManager) Create(user *models.User) (string, error) {
	now := time.Now()
	sid := uuid.NewString()

	sess := &Session{
		UserID:    user.ID,
		UserName:  user.UserName,
		Email:     user.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sid,
		"exp": sess.ExpiresAt.Unix(),
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	m.sessions[sid] = sess
	m.mu.Unlock()

	return signed, nil
}

// Get validates the cookie signature, then looks the session up. Expired
// sessions are removed on access.
func (m *MemoryManager) Get(cookieValue string) (*Session, bool) {
	sid, err := m.sessionID(cookieValue)
	if err != nil {
		return nil, false
	}

	m.mu.RLock()
	sess, ok := m.sessions[sid]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if time.Now().After(sess.ExpiresAt) {
		m.mu.Lock()
		delete(m.sessions, sid)
		m.mu.Unlock()
		return nil, false
	}
	return sess, true
}

// Destroy removes the session behind the cookie, if any. Invalid cookies are
// ignored: logout is idempotent.
func (m *MemoryManager) Destroy(cookieValue string) {
	sid, err := m.sessionID(cookieValue)
	if err != nil {
		return
	}
	m.mu.Lock()
	delete(m.sessions, sid)
	m.mu.Unlock()
}

// sessionID extracts the session ID from a signed cookie value.
func (m *MemoryManager) sessionID(cookieValue string) (string, error) {
	token, err := jwt.Parse(cookieValue, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid session cookie")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid session claims")
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", errors.New("missing session id")
	}
	return sid, nil
}
