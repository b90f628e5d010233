// session_test.go - Tests for the in-memory session manager

package session

import (
	"testing"
	"time"

	"go-health-advisor/models"

	"github.com/stretchr/testify/assert"
)

func testUser() *models.User {
	return &models.User{ID: 7, UserName: "Alice", Email: "alice@example.com"}
}

func TestCreateGetDestroy(t *testing.T) {
	m := NewMemoryManager("test-secret", time.Hour)

	cookie, err := m.Create(testUser())
	assert.NoError(t, err)
	assert.NotEmpty(t, cookie)

	sess, ok := m.Get(cookie)
	assert.True(t, ok)
	assert.Equal(t, uint(7), sess.UserID)
	assert.Equal(t, "Alice", sess.UserName)
	assert.Equal(t, "alice@example.com", sess.Email)

	m.Destroy(cookie)
	_, ok = m.Get(cookie)
	assert.False(t, ok)

	// Logout is idempotent
	m.Destroy(cookie)
}

func TestTamperedCookieRejected(t *testing.T) {
	m := NewMemoryManager("test-secret", time.Hour)
	other := NewMemoryManager("different-secret", time.Hour)

	cookie, err := other.Create(testUser())
	assert.NoError(t, err)

	// Signed with the wrong secret
	_, ok := m.Get(cookie)
	assert.False(t, ok)

	// Not a token at all
	_, ok = m.Get("garbage")
	assert.False(t, ok)

	_, ok = m.Get("")
	assert.False(t, ok)
}

func TestExpiredSessionGone(t *testing.T) {
	m := NewMemoryManager("test-secret", -time.Second) // already expired

	cookie, err := m.Create(testUser())
	assert.NoError(t, err)

	_, ok := m.Get(cookie)
	assert.False(t, ok)
}

func TestSessionsAreIndependent(t *testing.T) {
	m := NewMemoryManager("test-secret", time.Hour)

	c1, err := m.Create(&models.User{ID: 1, UserName: "A", Email: "a@example.com"})
	assert.NoError(t, err)
	c2, err := m.Create(&models.User{ID: 2, UserName: "B", Email: "b@example.com"})
	assert.NoError(t, err)

	m.Destroy(c1)

	_, ok := m.Get(c1)
	assert.False(t, ok)
	sess, ok := m.Get(c2)
	assert.True(t, ok)
	assert.Equal(t, uint(2), sess.UserID)
}
