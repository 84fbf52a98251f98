package domain

import "time"

// EventType enumerates the security events retained for forensic review.
type EventType string

const (
	EventLoginSuccess      EventType = "LOGIN_SUCCESS"
	EventLoginFailed       EventType = "LOGIN_FAILED"
	EventLogout            EventType = "LOGOUT"
	EventTokenRefresh      EventType = "TOKEN_REFRESH"
	EventEmailVerification EventType = "EMAIL_VERIFICATION"
	EventPasswordReset     EventType = "PASSWORD_RESET"
)

// AuditEvent is an append-only record; the core never mutates or deletes one.
// UserID is nil when the account is unknown, e.g. a failed login with an
// unregistered email.
type AuditEvent struct {
	ID        int64
	UserID    *string
	EventType EventType
	IPAddress string
	UserAgent string
	Details   string
	Success   bool
	CreatedAt time.Time
}
