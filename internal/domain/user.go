package domain

import "time"

// User is an identity record. Users are created by invitation-gated
// registration and are immutable afterwards; profile fields may be added
// later but nothing mutates or deletes a user today.
type User struct {
	ID           string
	Email        string
	PasswordHash string // argon2id PHC encoded
	CreatedAt    time.Time
}
