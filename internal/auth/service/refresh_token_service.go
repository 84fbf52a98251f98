package service

//go:generate mockgen -destination=../../mocks/mock_refresh_token_manager.go -package=mocks github.com/ecomcore/auth-service/internal/auth/service RefreshTokenManager

import (
	"context"
	"time"

	"github.com/ecomcore/auth-service/internal/auth/domain"
	autherror "github.com/ecomcore/auth-service/internal/errors"
	"github.com/google/uuid"
)

type RefreshTokenManager interface {
	Create(ctx context.Context, userID, ip, userAgent string) (*domain.RefreshToken, error)
	ValidateAndGet(ctx context.Context, token string) (*domain.RefreshToken, error)
	Revoke(ctx context.Context, rt *domain.RefreshToken) error
	RevokeAll(ctx context.Context, userID string) error
	Rotate(ctx context.Context, old *domain.RefreshToken, ip, userAgent string) (*domain.RefreshToken, error)
	ListActive(ctx context.Context, userID string) ([]domain.RefreshToken, error)
}

// RefreshTokenService manages the opaque long-lived session handles. Being
// server-validated is what makes logout and revoke-all durable despite
// stateless access tokens.
type RefreshTokenService struct {
	repo domain.RefreshTokenRepository
	ttl  time.Duration
}

func NewRefreshTokenService(repo domain.RefreshTokenRepository, ttl time.Duration) *RefreshTokenService {
	return &RefreshTokenService{repo: repo, ttl: ttl}
}

func (s *RefreshTokenService) Create(ctx context.Context, userID, ip, userAgent string) (*domain.RefreshToken, error) {
	rt := s.newToken(userID, ip, userAgent)
	if err := s.repo.Store(ctx, rt); err != nil {
		return nil, err
	}

	return rt, nil
}

// ValidateAndGet fails on missing, revoked, or expired tokens. Expiry is
// detected lazily here; no background sweep is needed for correctness.
func (s *RefreshTokenService) ValidateAndGet(ctx context.Context, token string) (*domain.RefreshToken, error) {
	rt, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if rt == nil {
		return nil, autherror.ErrRefreshTokenNotFound
	}
	if rt.Revoked {
		return nil, autherror.ErrRefreshTokenRevoked
	}
	if rt.Expired(time.Now()) {
		return nil, autherror.ErrRefreshTokenExpired
	}

	return rt, nil
}

func (s *RefreshTokenService) Revoke(ctx context.Context, rt *domain.RefreshToken) error {
	return s.repo.Revoke(ctx, rt.ID)
}

// RevokeAll revokes every live token the account holds, across devices. Used
// on password change and forced logout.
func (s *RefreshTokenService) RevokeAll(ctx context.Context, userID string) error {
	return s.repo.RevokeAllByUserID(ctx, userID)
}

// Rotate revokes the presented token and issues a replacement in one
// transaction, so a replayed old token is dead the moment the new one exists.
func (s *RefreshTokenService) Rotate(ctx context.Context, old *domain.RefreshToken, ip, userAgent string) (*domain.RefreshToken, error) {
	replacement := s.newToken(old.UserID, ip, userAgent)
	if err := s.repo.Rotate(ctx, old.ID, replacement); err != nil {
		return nil, err
	}

	return replacement, nil
}

func (s *RefreshTokenService) ListActive(ctx context.Context, userID string) ([]domain.RefreshToken, error) {
	return s.repo.ListActiveByUserID(ctx, userID)
}

func (s *RefreshTokenService) newToken(userID, ip, userAgent string) *domain.RefreshToken {
	now := time.Now()

	return &domain.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    userID,
		Token:     uuid.NewString(),
		IPAddress: ip,
		UserAgent: userAgent,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
		Revoked:   false,
	}
}
