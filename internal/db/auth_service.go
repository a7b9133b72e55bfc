package db

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/temirbekov/flowdeck/internal/models"
)

// SessionTTL is how long a sign-in lasts before it expires.
const SessionTTL = 30 * 24 * time.Hour

// ErrNotSignedIn is returned when no live session exists.
var ErrNotSignedIn = errors.New("not signed in")

// CreateUser registers a new account. The email must be unused.
func CreateUser(email, password, name string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	var existing models.User
	if err := DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("an account already exists for %s", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}
	if err := DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateSession signs in with email and password, replacing any previous
// session. Failures come back as plain message strings for inline display.
func CreateSession(email, password string) (*models.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	// One session at a time; a fresh login replaces the old one.
	if err := DB.Where("1 = 1").Delete(&models.Session{}).Error; err != nil {
		return nil, err
	}

	session := models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(SessionTTL),
	}
	if err := DB.Create(&session).Error; err != nil {
		return nil, err
	}
	session.User = user
	return &session, nil
}

// CurrentSession returns the live session, or ErrNotSignedIn when none
// exists or the session has expired.
func CurrentSession() (*models.Session, error) {
	var session models.Session
	err := DB.Preload("User").First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotSignedIn
	}
	if err != nil {
		return nil, err
	}
	if session.Expired(time.Now()) {
		DB.Delete(&session)
		return nil, ErrNotSignedIn
	}
	return &session, nil
}

// DeleteSession signs out.
func DeleteSession() error {
	session, err := CurrentSession()
	if err != nil {
		return err
	}
	return DB.Delete(session).Error
}
