package auth

import "time"

// User represents a registered player account.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Avatar       string
	IsActive     bool
	CreatedAt    time.Time
}

// Session is an opaque-token login session. Multiple concurrent sessions
// per user are allowed; expiry is enforced on read.
type Session struct {
	Token     string
	Email     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Credentials is the payload returned by Register and Login.
type Credentials struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
