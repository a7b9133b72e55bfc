package models

import (
	"time"
)

// User is a local account created through signup.
type User struct {
	ID        string    `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Name         string `json:"name"`
	PasswordHash []byte `gorm:"not null" json:"-"`
}

// Session is a live sign-in. At most one session exists at a time;
// logging in replaces any previous session.
type Session struct {
	Token     string    `gorm:"primarykey" json:"token"`
	CreatedAt time.Time `json:"created_at"`

	UserID    string    `gorm:"not null" json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`

	User User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
}

// Expired reports whether the session is past its expiry.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
