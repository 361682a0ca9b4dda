package models

import (
	"time"
)

type User struct {
	UserID    string    `json:"user_id" gorm:"primaryKey;size:64"`
	Email     string    `json:"email" gorm:"not null;size:100"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	Picture   *string   `json:"picture" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at"`
}

// UserSession is a stored opaque session token. A session is valid iff it
// exists, is unexpired and its user still exists.
type UserSession struct {
	ID           uint      `json:"-" gorm:"primaryKey"`
	UserID       string    `json:"user_id" gorm:"index;not null;size:64"`
	SessionToken string    `json:"session_token" gorm:"uniqueIndex;not null;size:128"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}
