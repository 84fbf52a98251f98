package service

//go:generate mockgen -destination=../../mocks/mock_login_attempt_guard.go -package=mocks github.com/ecomcore/auth-service/internal/auth/service LoginAttemptGuard

import (
	"context"
	"time"

	"github.com/ecomcore/auth-service/internal/auth/domain"
)

type LoginAttemptGuard interface {
	RecordFailure(ctx context.Context, ip, email string) error
	RecordSuccess(ctx context.Context, ip string) error
	IsBlocked(ctx context.Context, ip string) (bool, error)
}

// LoginAttemptService gates logins by client IP. Keying by IP blocks
// distributed guessing against many accounts from one source without
// revealing whether an email exists.
type LoginAttemptService struct {
	repo        domain.LoginAttemptRepository
	maxAttempts int
	lockout     time.Duration
}

func NewLoginAttemptService(repo domain.LoginAttemptRepository, maxAttempts int, lockout time.Duration) *LoginAttemptService {
	return &LoginAttemptService{
		repo:        repo,
		maxAttempts: maxAttempts,
		lockout:     lockout,
	}
}

func (s *LoginAttemptService) RecordFailure(ctx context.Context, ip, email string) error {
	return s.repo.Increment(ctx, ip, email)
}

// RecordSuccess deletes the record outright, resetting the counter entirely.
func (s *LoginAttemptService) RecordSuccess(ctx context.Context, ip string) error {
	return s.repo.Delete(ctx, ip)
}

// IsBlocked is true while the failure count has reached the limit and the
// lockout window has not elapsed. Once the window passes the IP is implicitly
// unblocked even though the record persists. A store error propagates, so the
// gate fails closed.
func (s *LoginAttemptService) IsBlocked(ctx context.Context, ip string) (bool, error) {
	attempt, err := s.repo.GetByIP(ctx, ip)
	if err != nil {
		return false, err
	}
	if attempt == nil || attempt.Attempts < s.maxAttempts {
		return false, nil
	}

	return time.Now().Before(attempt.LastModified.Add(s.lockout)), nil
}
