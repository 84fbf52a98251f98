package domain

import "time"

// RefreshToken is an opaque, server-validated session handle. It is the sole
// mechanism for durable revocation: access tokens are stateless and expire on
// their own, refresh tokens are looked up on every use.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	IPAddress string
	UserAgent string
	ExpiresAt time.Time
	CreatedAt time.Time
	Revoked   bool
}

func (rt *RefreshToken) Expired(now time.Time) bool {
	return now.After(rt.ExpiresAt)
}

// LoginAttempt is the per-IP failure counter backing the lockout gate. The
// row is deleted outright on the next successful login from that IP.
type LoginAttempt struct {
	ID           int64
	IPAddress    string
	Email        string
	Attempts     int
	LastModified time.Time
}
