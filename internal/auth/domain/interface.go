package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/ecomcore/auth-service/internal/auth/domain UserRepository
//go:generate mockgen -destination=../../mocks/mock_login_attempt_repository.go -package=mocks github.com/ecomcore/auth-service/internal/auth/domain LoginAttemptRepository
//go:generate mockgen -destination=../../mocks/mock_refresh_token_repository.go -package=mocks github.com/ecomcore/auth-service/internal/auth/domain RefreshTokenRepository

import (
	"context"
	"time"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByVerificationToken(ctx context.Context, token string) (*User, error)
	Create(ctx context.Context, user *User) error
	MarkVerified(ctx context.Context, id string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	IncrementFailedLogins(ctx context.Context, id string) (int, error)
	SetLockedUntil(ctx context.Context, id string, until time.Time) error
	ResetLoginState(ctx context.Context, id string, lastLogin time.Time) error
	List(ctx context.Context) ([]User, error)
}

type LoginAttemptRepository interface {
	Increment(ctx context.Context, ip, email string) error
	Delete(ctx context.Context, ip string) error
	GetByIP(ctx context.Context, ip string) (*LoginAttempt, error)
}

type RefreshTokenRepository interface {
	Store(ctx context.Context, rt *RefreshToken) error
	GetByToken(ctx context.Context, token string) (*RefreshToken, error)
	Revoke(ctx context.Context, id string) error
	RevokeAllByUserID(ctx context.Context, userID string) error
	Rotate(ctx context.Context, oldID string, replacement *RefreshToken) error
	ListActiveByUserID(ctx context.Context, userID string) ([]RefreshToken, error)
}

type AuditRepository interface {
	Insert(ctx context.Context, event *AuditEvent) error
}
