package service

import (
	"context"
	"log"
	"time"

	"github.com/ecomcore/auth-service/config"
	"github.com/ecomcore/auth-service/internal/auth/domain"
	"github.com/ecomcore/auth-service/internal/auth/dto"
	"github.com/ecomcore/auth-service/internal/auth/password"
	autherror "github.com/ecomcore/auth-service/internal/errors"
	"github.com/ecomcore/auth-service/internal/metrics"
	"github.com/ecomcore/auth-service/pkg/constant"
	"github.com/google/uuid"
)

// UserService composes the tracker, hasher, token issuer, refresh token store
// and audit logger into the login, refresh and logout flows.
type UserService struct {
	users    domain.UserRepository
	hasher   password.Hasher
	tokens   TokenGenerator
	refresh  RefreshTokenManager
	attempts LoginAttemptGuard
	audit    AuditRecorder
	cfg      *config.Config
}

func NewUserService(users domain.UserRepository, hasher password.Hasher,
	tokens TokenGenerator, refresh RefreshTokenManager,
	attempts LoginAttemptGuard, audit AuditRecorder, cfg *config.Config) *UserService {
	return &UserService{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		refresh:  refresh,
		attempts: attempts,
		audit:    audit,
		cfg:      cfg,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.UserOutput, error) {
	existing, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	verificationToken := uuid.NewString()

	user := &domain.User{
		ID:                uuid.NewString(),
		Name:              input.Name,
		Email:             input.Email,
		PasswordHash:      hash,
		Roles:             []domain.Role{domain.RoleUser},
		IsVerified:        false,
		IsActive:          true,
		VerificationToken: &verificationToken,
		OAuthProvider:     "LOCAL",
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return mapUserOutput(user), nil
}

func (s *UserService) VerifyEmail(ctx context.Context, token, ip, userAgent string) error {
	user, err := s.users.GetByVerificationToken(ctx, token)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrInvalidVerificationToken
	}

	if err := s.users.MarkVerified(ctx, user.ID); err != nil {
		return err
	}

	s.audit.Record(&user.ID, domain.EventEmailVerification, true, "email verified", ip, userAgent)

	return nil
}

// Login runs the full gate: IP lockout first, then credentials, then the
// account-level lock. The IP tracker and the account lock are deliberately
// independent defenses; both must pass. Every attempt, whatever the outcome,
// produces exactly one audit event.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	blocked, err := s.attempts.IsBlocked(ctx, input.IPAddress)
	if err != nil {
		// Tracker store failure fails closed: the login is rejected.
		return nil, err
	}
	if blocked {
		metrics.LoginAttempts.WithLabelValues("locked_out").Inc()
		s.audit.Record(nil, domain.EventLoginFailed, false, "login blocked by IP lockout", input.IPAddress, input.UserAgent)

		return nil, autherror.ErrTooManyLoginAttempts
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		if err := s.attempts.RecordFailure(ctx, input.IPAddress, input.Email); err != nil {
			return nil, err
		}
		metrics.LoginAttempts.WithLabelValues("invalid_credentials").Inc()
		s.audit.Record(nil, domain.EventLoginFailed, false, "unknown email", input.IPAddress, input.UserAgent)

		return nil, autherror.ErrInvalidCredentials
	}

	now := time.Now()
	if user.Locked(now) {
		metrics.LoginAttempts.WithLabelValues("locked_out").Inc()
		s.audit.Record(&user.ID, domain.EventLoginFailed, false, "account locked", input.IPAddress, input.UserAgent)

		return nil, autherror.ErrAccountLocked
	}

	if !user.IsActive || !s.hasher.Verify(input.Password, user.PasswordHash) {
		if err := s.attempts.RecordFailure(ctx, input.IPAddress, input.Email); err != nil {
			return nil, err
		}
		s.registerAccountFailure(ctx, user)
		metrics.LoginAttempts.WithLabelValues("invalid_credentials").Inc()

		details := "invalid credentials"
		if !user.IsActive {
			details = "account inactive"
		}
		s.audit.Record(&user.ID, domain.EventLoginFailed, false, details, input.IPAddress, input.UserAgent)

		return nil, autherror.ErrInvalidCredentials
	}

	if !user.IsVerified {
		s.audit.Record(&user.ID, domain.EventLoginFailed, false, "email not verified", input.IPAddress, input.UserAgent)

		return nil, autherror.ErrAccountNotVerified
	}

	if err := s.attempts.RecordSuccess(ctx, input.IPAddress); err != nil {
		return nil, err
	}
	if err := s.users.ResetLoginState(ctx, user.ID, now); err != nil {
		return nil, err
	}

	principal := domain.Principal{UserID: user.ID, Email: user.Email, Roles: user.Roles}
	accessToken, _, err := s.tokens.Generate(principal)
	if err != nil {
		return nil, err
	}

	rt, err := s.refresh.Create(ctx, user.ID, input.IPAddress, input.UserAgent)
	if err != nil {
		return nil, err
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	s.audit.Record(&user.ID, domain.EventLoginSuccess, true, "user logged in", input.IPAddress, input.UserAgent)

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: rt.Token,
		TokenType:    constant.TokenTypeBearer,
		ExpiresIn:    int64(s.tokens.AccessTokenTTL().Seconds()),
		User:         mapUserOutput(user),
	}, nil
}

// registerAccountFailure maintains the per-account failure counter, the
// second lockout signal next to the IP tracker. Bookkeeping errors are logged
// but do not change the login outcome.
func (s *UserService) registerAccountFailure(ctx context.Context, user *domain.User) {
	count, err := s.users.IncrementFailedLogins(ctx, user.ID)
	if err != nil {
		log.Printf("warn: failed to count login failure for user %s: %v", user.ID, err)
		return
	}

	if count >= s.cfg.AccountMaxFailedLogins {
		until := time.Now().Add(time.Duration(s.cfg.AccountLockMin) * time.Minute)
		if err := s.users.SetLockedUntil(ctx, user.ID, until); err != nil {
			log.Printf("warn: failed to lock user %s: %v", user.ID, err)
		}
	}
}

// Refresh mints a fresh access token for a valid refresh token. Roles are
// re-derived from current account state, so a role revoked mid-session takes
// effect on the next refresh. The refresh token is reused unless rotation is
// enabled, in which case the old one is revoked atomically with the new one's
// creation.
func (s *UserService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenResponse, error) {
	rt, err := s.refresh.ValidateAndGet(ctx, input.RefreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, rt.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	principal := domain.Principal{UserID: user.ID, Email: user.Email, Roles: user.Roles}
	accessToken, _, err := s.tokens.Generate(principal)
	if err != nil {
		return nil, err
	}

	refreshToken := rt.Token
	if s.cfg.RotateRefreshTokens {
		replacement, err := s.refresh.Rotate(ctx, rt, input.IPAddress, input.UserAgent)
		if err != nil {
			return nil, err
		}
		refreshToken = replacement.Token
	}

	metrics.TokenRefreshes.Inc()
	s.audit.Record(&user.ID, domain.EventTokenRefresh, true, "access token refreshed", input.IPAddress, input.UserAgent)

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    constant.TokenTypeBearer,
		ExpiresIn:    int64(s.tokens.AccessTokenTTL().Seconds()),
	}, nil
}

// Logout revokes the presented refresh token. It succeeds idempotently: an
// already revoked or unknown token still yields a 200, with the failure
// reason retained in the audit record only.
func (s *UserService) Logout(ctx context.Context, principal *domain.Principal, input dto.LogoutInput) {
	var userID *string
	if principal != nil {
		userID = &principal.UserID
	}

	rt, err := s.refresh.ValidateAndGet(ctx, input.RefreshToken)
	if err == nil {
		err = s.refresh.Revoke(ctx, rt)
	}
	if err != nil {
		s.audit.Record(userID, domain.EventLogout, false, err.Error(), input.IPAddress, input.UserAgent)
		return
	}

	s.audit.Record(userID, domain.EventLogout, true, "user logged out", input.IPAddress, input.UserAgent)
}

// ChangePassword verifies the current password, swaps the hash and revokes
// every session the account holds, so stolen refresh tokens die with the old
// password.
func (s *UserService) ChangePassword(ctx context.Context, principal *domain.Principal, input dto.ChangePasswordInput) error {
	user, err := s.users.GetByID(ctx, principal.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}

	if !s.hasher.Verify(input.CurrentPassword, user.PasswordHash) {
		s.audit.Record(&user.ID, domain.EventPasswordReset, false, "current password mismatch", input.IPAddress, input.UserAgent)

		return autherror.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}
	if err := s.refresh.RevokeAll(ctx, user.ID); err != nil {
		return err
	}

	s.audit.Record(&user.ID, domain.EventPasswordReset, true, "password changed, all sessions revoked", input.IPAddress, input.UserAgent)

	return nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]dto.UserOutput, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.UserOutput, 0, len(users))
	for i := range users {
		out = append(out, *mapUserOutput(&users[i]))
	}

	return out, nil
}

// ForceLogout revokes every session of the given account, the compromise
// response path for administrators.
func (s *UserService) ForceLogout(ctx context.Context, userID, ip, userAgent string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}

	if err := s.refresh.RevokeAll(ctx, user.ID); err != nil {
		return err
	}

	s.audit.Record(&user.ID, domain.EventLogout, true, "all sessions revoked by administrator", ip, userAgent)

	return nil
}

func (s *UserService) GetUserSessions(ctx context.Context, userID string) ([]dto.SessionOutput, error) {
	tokens, err := s.refresh.ListActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	sessions := make([]dto.SessionOutput, 0, len(tokens))
	for _, rt := range tokens {
		sessions = append(sessions, dto.SessionOutput{
			ID:        rt.ID,
			IPAddress: rt.IPAddress,
			UserAgent: rt.UserAgent,
			CreatedAt: rt.CreatedAt,
			ExpiresAt: rt.ExpiresAt,
		})
	}

	return sessions, nil
}

func mapUserOutput(user *domain.User) *dto.UserOutput {
	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, string(r))
	}

	return &dto.UserOutput{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Roles:      roles,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}
}
