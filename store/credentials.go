// credentials.go - Credential store: password hashing, registration, verification

package store

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"go-health-advisor/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateEmail means the normalized email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials is returned for both unknown email and wrong
	// password so callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// PasswordHasher produces the stored hash for a new password. Verification is
// scheme-detecting (see comparePassword), so the hasher only decides how new
// accounts are stored.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// LegacyHasher is a single unsalted SHA-256 pass, hex encoded. It exists only
// for byte-for-byte compatibility with credential rows migrated from the
// previous deployment. It is NOT a safe password hash: no salt, no
// stretching. New deployments must use BcryptHasher (PASSWORD_SCHEME=bcrypt).
type LegacyHasher struct{}

func (LegacyHasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

// BcryptHasher is the default salted adaptive hash.
type BcryptHasher struct{}

func (BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// HasherForScheme maps a config value to a hasher, defaulting to bcrypt.
func HasherForScheme(scheme string) PasswordHasher {
	if scheme == "legacy" {
		return LegacyHasher{}
	}
	return BcryptHasher{}
}

// comparePassword checks password against a stored hash of either scheme.
// Bcrypt hashes are recognized by their "$2" prefix; anything else is treated
// as a legacy SHA-256 hex digest.
func comparePassword(storedHash, password string) bool {
	if strings.HasPrefix(storedHash, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
	}
	sum := sha256.Sum256([]byte(password))
	candidate := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(storedHash), []byte(candidate)) == 1
}

// NormalizeEmail trims whitespace and lowercases; all lookups and writes go
// through the normalized form so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CredentialStore persists user accounts and verifies logins.
type CredentialStore struct {
	db     *gorm.DB
	hasher PasswordHasher
	log    *zap.SugaredLogger
}

func NewCredentialStore(db *gorm.DB, hasher PasswordHasher, log *zap.SugaredLogger) *CredentialStore {
	return &CredentialStore{db: db, hasher: hasher, log: log}
}

// Register hashes the password and inserts the user. The unique index on
// email is the authoritative duplicate check: a concurrent registration with
// the same email loses the insert and gets ErrDuplicateEmail, never a second
// row. Returns the new user ID.
func (s *CredentialStore) Register(userName, contactNumber, email, password string) (uint, error) {
	email = NormalizeEmail(email)

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		UserName:      userName,
		ContactNumber: contactNumber,
		Email:         email,
		PasswordHash:  hash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrDuplicateEmail
		}
		// Driver error text stays server-side; callers get a wrapped error.
		s.log.Errorw("user insert failed", "email", email, "error", err)
		return 0, fmt.Errorf("insert user: %w", err)
	}

	s.log.Infow("user registered", "user_id", user.ID, "email", email)
	return user.ID, nil
}

// Verify looks up the user by normalized email and compares the password
// against the stored hash. Unknown email and wrong password both return
// ErrInvalidCredentials; storage failures are returned distinctly so the
// handler can answer 500 instead of 401.
func (s *CredentialStore) Verify(email, password string) (*models.User, error) {
	email = NormalizeEmail(email)

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.log.Errorw("user lookup failed", "email", email, "error", err)
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !comparePassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
