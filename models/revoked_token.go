package models

import "time"

// RevokedToken is a blacklisted refresh token, keyed by its jti claim.
type RevokedToken struct {
	JTI       string    `gorm:"primaryKey;size:64"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
}
