package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecomcore/auth-service/config"
	"github.com/ecomcore/auth-service/internal/auth/domain"
	"github.com/ecomcore/auth-service/internal/auth/dto"
	"github.com/ecomcore/auth-service/internal/auth/password"
	"github.com/ecomcore/auth-service/internal/auth/service"
	autherror "github.com/ecomcore/auth-service/internal/errors"
	"github.com/ecomcore/auth-service/internal/mocks"
	"github.com/ecomcore/auth-service/pkg/constant"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	users    *mocks.MockUserRepository
	tokens   *mocks.MockTokenGenerator
	refresh  *mocks.MockRefreshTokenManager
	attempts *mocks.MockLoginAttemptGuard
	audit    *mocks.MockAuditRecorder
}

func newUserService(ctrl *gomock.Controller, cfg *config.Config) (*service.UserService, userServiceMocks) {
	m := userServiceMocks{
		users:    mocks.NewMockUserRepository(ctrl),
		tokens:   mocks.NewMockTokenGenerator(ctrl),
		refresh:  mocks.NewMockRefreshTokenManager(ctrl),
		attempts: mocks.NewMockLoginAttemptGuard(ctrl),
		audit:    mocks.NewMockAuditRecorder(ctrl),
	}

	s := service.NewUserService(m.users, password.NewBcryptHasher(),
		m.tokens, m.refresh, m.attempts, m.audit, cfg)

	return s, m
}

func verifiedUser(t *testing.T, email, plain string) *domain.User {
	t.Helper()

	hasher := password.NewBcryptHasher()
	hash, err := hasher.Hash(plain)
	require.NoError(t, err)

	return &domain.User{
		ID:           "user-123",
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
		Roles:        []domain.Role{domain.RoleUser},
		IsVerified:   true,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
}

func TestUserService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl, &config.Config{})

	input := dto.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	}

	var created *domain.User
	m.users.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(nil, nil)
	m.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user *domain.User) error {
			created = user
			return nil
		})

	out, err := s.Register(context.Background(), input)

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, input.Email, out.Email)
	assert.NotEmpty(t, out.ID)
	assert.False(t, out.IsVerified)
	assert.Equal(t, []string{string(domain.RoleUser)}, out.Roles)

	require.NotNil(t, created)
	assert.NotEqual(t, input.Password, created.PasswordHash)
	require.NotNil(t, created.VerificationToken)
	assert.NotEmpty(t, *created.VerificationToken)
	assert.True(t, created.IsActive)
}

func TestUserService_Register_EmailAlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl, &config.Config{})

	input := dto.RegisterInput{Email: "test@example.com", Password: "password123"}

	m.users.EXPECT().GetByEmail(gomock.Any(), input.Email).
		Return(&domain.User{ID: "existing-id", Email: input.Email}, nil)

	out, err := s.Register(context.Background(), input)

	assert.ErrorIs(t, err, autherror.ErrEmailAlreadyInUse)
	assert.Nil(t, out)
}

func TestUserService_VerifyEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl, &config.Config{})
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		user := &domain.User{ID: "user-123", Email: "test@example.com"}

		m.users.EXPECT().GetByVerificationToken(gomock.Any(), "verify-token").Return(user, nil)
		m.users.EXPECT().MarkVerified(gomock.Any(), user.ID).Return(nil)
		m.audit.EXPECT().Record(gomock.Any(), domain.EventEmailVerification, true,
			gomock.Any(), gomock.Any(), gomock.Any())

		err := s.VerifyEmail(ctx, "verify-token", "203.0.113.7", "test-agent")
		assert.NoError(t, err)
	})

	t.Run("unknown token", func(t *testing.T) {
		m.users.EXPECT().GetByVerificationToken(gomock.Any(), "bogus").Return(nil, nil)

		err := s.VerifyEmail(ctx, "bogus", "203.0.113.7", "test-agent")
		assert.ErrorIs(t, err, autherror.ErrInvalidVerificationToken)
	})
}

func TestUserService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl, &config.Config{AccountMaxFailedLogins: 10, AccountLockMin: 30})

	input := dto.LoginInput{
		Email:     "test@example.com",
		Password:  "password123",
		IPAddress: "203.0.113.7",
		UserAgent: "test-agent",
	}
	user := verifiedUser(t, input.Email, input.Password)

	m.attempts.EXPECT().IsBlocked(gomock.Any(), input.IPAddress).Return(false, nil)
	m.users.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(user, nil)
	m.attempts.EXPECT().RecordSuccess(gomock.Any(), input.IPAddress).Return(nil)
	m.users.EXPECT().ResetLoginState(gomock.Any(), user.ID, gomock.Any()).Return(nil)
	m.tokens.EXPECT().Generate(domain.Principal{UserID: user.ID, Email: user.Email, Roles: user.Roles}).
		Return("signed-jwt", time.Now().Add(15*time.Minute), nil)
	m.refresh.EXPECT().Create(gomock.Any(), user.ID, input.IPAddress, input.UserAgent).
		Return(&domain.RefreshToken{ID: "rt-1", Token: "opaque-token"}, nil)
	m.tokens.EXPECT().AccessTokenTTL().Return(15 * time.Minute)
	m.audit.EXPECT().Record(gomock.Any(), domain.EventLoginSuccess, true,
		gomock.Any(), input.IPAddress, input.UserAgent)

	resp, err := s.Login(context.Background(), input)

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "signed-jwt", resp.AccessToken)
	assert.Equal(t, "opaque-token", resp.RefreshToken)
	assert.Equal(t, constant.TokenTypeBearer, resp.TokenType)
	assert.Equal(t, int64(900), resp.ExpiresIn)
	require.NotNil(t, resp.User)
	assert.Equal(t, user.Email, resp.User.Email)
}

func TestUserService_Login_BlockedByIPLockout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl, &config.Config{})

	input := dto.LoginInput{Email: "test@example.com", Password: "password123", IPAddress: "203.0.113.7"}

	m.attempts.EXPECT().IsBlocked(gomock.Any(), input.IPAddress).Return(true, nil)
	m.audit.EXPECT().Record(gomock.Nil(), domain.EventLoginFailed, false,
		gomock.Any(), input.IPAddress, gomock.Any())

	resp, err := s.Login(context.Background(), input)

	assert.ErrorIs(t, err, autherror.ErrTooManyLoginAttempts)
	assert.Nil(t, resp)
}

func TestUserService_Login_TrackerErrorFailsClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl, &config.Config{})

	input := dto.LoginInput{Email: "test@example.com", Password: "password123", IPAddress: "203.0.113.7"}
	expectedErr := errors.New("db error")

	m.attempts.EXPECT().IsBlocked(gomock.Any(), input.IPAddress).Return(false, expectedErr)

	resp, err := s.Login(context.Background(), input)

	assert.Equal(t, expectedErr, err)
	assert.Nil(t, resp)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl, &config.Config{})

	input := dto.LoginInput{Email: "nobody@example.com", Password: "password123", IPAddress: "203.0.113.7"}

	m.attempts.EXPECT().IsBlocked(gomock.Any(), input.IPAddress).Return(false, nil)
	m.users.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(nil, nil)
	m.attempts.EXPECT().RecordFailure(gomock.Any(), input.IPAddress, input.Email).Return(nil)
	m.audit.EXPECT().Record(gomock.Nil(), domain.EventLoginFailed, false,
		gomock.Any(), input.IPAddress, gomock.Any())

	resp, err := s.Login(context.Background(), input)

	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
	assert.Nil(t, resp)
}

func TestUserService_Login_AccountLocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl, &config.Config{})

	input := dto.LoginInput{Email: "test@example.com", Password: "password123", IPAddress: "203.0.113.7"}
	until := time.Now().Add(30 * time.Minute)
	user := verifiedUser(t, input.Email, input.Password)
	user.LockedUntil = &until

	m.attempts.EXPECT().IsBlocked(gomock.Any(), input.IPAddress).Return(false, nil)
	m.users.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(user, nil)
	m.audit.EXPECT().Record(gomock.Any(), domain.EventLoginFailed, false,
		gomock.Any(), input.IPAddress, gomock.Any())

	resp, err := s.Login(context.Background(), input)

	assert.ErrorIs(t, err, autherror.ErrAccountLocked)
	assert.Nil(t, resp)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl, &config.Config{AccountMaxFailedLogins: 10, AccountLockMin: 30})

	input := dto.LoginInput{Email: "test@example.com", Password: "wrong-password", IPAddress: "203.0.113.7"}
	user := verifiedUser(t, input.Email, "correct-password")

	m.attempts.EXPECT().IsBlocked(gomock.Any(), input.IPAddress).Return(false, nil)
	m.users.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(user, nil)
	m.attempts.EXPECT().RecordFailure(gomock.Any(), input.IPAddress, input.Email).Return(nil)
	m.users.EXPECT().IncrementFailedLogins(gomock.Any(), user.ID).Return(3, nil)
	m.audit.EXPECT().Record(gomock.Any(), domain.EventLoginFailed, false,
		gomock.Any(), input.IPAddress, gomock.Any())

	resp, err := s.Login(context.Background(), input)

	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
	assert.Nil(t, resp)
}

func TestUserService_Login_WrongPasswordLocksAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl, &config.Config{AccountMaxFailedLogins: 10, AccountLockMin: 30})

	input := dto.LoginInput{Email: "test@example.com", Password: "wrong-password", IPAddress: "203.0.113.7"}
	user := verifiedUser(t, input.Email, "correct-password")

	m.attempts.EXPECT().IsBlocked(gomock.Any(), input.IPAddress).Return(false, nil)
	m.users.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(user, nil)
	m.attempts.EXPECT().RecordFailure(gomock.Any(), input.IPAddress, input.Email).Return(nil)
	// The tenth failure crosses the account threshold and locks it.
	m.users.EXPECT().IncrementFailedLogins(gomock.Any(), user.ID).Return(10, nil)
	m.users.EXPECT().SetLockedUntil(gomock.Any(), user.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, until time.Time) error {
			assert.WithinDuration(t, time.Now().Add(30*time.Minute), until, 5*time.Second)
			return nil
		})
	m.audit.EXPECT().Record(gomock.Any(), domain.EventLoginFailed, false,
		gomock.Any(), input.IPAddress, gomock.Any())

	_, err := s.Login(context.Background(), input)
	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
}

func TestUserService_Login_InactiveAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl, &config.Config{AccountMaxFailedLogins: 10})

	input := dto.LoginInput{Email: "test@example.com", Password: "password123", IPAddress: "203.0.113.7"}
	user := verifiedUser(t, input.Email, input.Password)
	user.IsActive = false

	m.attempts.EXPECT().IsBlocked(gomock.Any(), input.IPAddress).Return(false, nil)
	m.users.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(user, nil)
	m.attempts.EXPECT().RecordFailure(gomock.Any(), input.IPAddress, input.Email).Return(nil)
	m.users.EXPECT().IncrementFailedLogins(gomock.Any(), user.ID).Return(1, nil)
	m.audit.EXPECT().Record(gomock.Any(), domain.EventLoginFailed, false,
		"account inactive", input.IPAddress, gomock.Any())

	_, err := s.Login(context.Background(), input)
	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
}

func TestUserService_Login_UnverifiedAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl, &config.Config{})

	input := dto.LoginInput{Email: "test@example.com", Password: "password123", IPAddress: "203.0.113.7"}
	user := verifiedUser(t, input.Email, input.Password)
	user.IsVerified = false

	m.attempts.EXPECT().IsBlocked(gomock.Any(), input.IPAddress).Return(false, nil)
	m.users.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(user, nil)
	m.audit.EXPECT().Record(gomock.Any(), domain.EventLoginFailed, false,
		"email not verified", input.IPAddress, gomock.Any())

	_, err := s.Login(context.Background(), input)
	assert.ErrorIs(t, err, autherror.ErrAccountNotVerified)
}

func TestUserService_Refresh_WithoutRotation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl, &config.Config{RotateRefreshTokens: false})

	input := dto.RefreshInput{RefreshToken: "opaque-token", IPAddress: "203.0.113.7", UserAgent: "test-agent"}
	rt := &domain.RefreshToken{ID: "rt-1", UserID: "user-123", Token: input.RefreshToken}
	user := verifiedUser(t, "test@example.com", "password123")

	m.refresh.EXPECT().ValidateAndGet(gomock.Any(), input.RefreshToken).Return(rt, nil)
	m.users.EXPECT().GetByID(gomock.Any(), rt.UserID).Return(user, nil)
	m.tokens.EXPECT().Generate(gomock.Any()).Return("new-jwt", time.Now().Add(15*time.Minute), nil)
	m.tokens.EXPECT().AccessTokenTTL().Return(15 * time.Minute)
	m.audit.EXPECT().Record(gomock.Any(), domain.EventTokenRefresh, true,
		gomock.Any(), input.IPAddress, input.UserAgent)

	resp, err := s.Refresh(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "new-jwt", resp.AccessToken)
	// Same refresh token comes back when rotation is off.
	assert.Equal(t, input.RefreshToken, resp.RefreshToken)
}

func TestUserService_Refresh_WithRotation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl, &config.Config{RotateRefreshTokens: true})

	input := dto.RefreshInput{RefreshToken: "opaque-token", IPAddress: "203.0.113.7", UserAgent: "test-agent"}
	rt := &domain.RefreshToken{ID: "rt-1", UserID: "user-123", Token: input.RefreshToken}
	user := verifiedUser(t, "test@example.com", "password123")

	m.refresh.EXPECT().ValidateAndGet(gomock.Any(), input.RefreshToken).Return(rt, nil)
	m.users.EXPECT().GetByID(gomock.Any(), rt.UserID).Return(user, nil)
	m.tokens.EXPECT().Generate(gomock.Any()).Return("new-jwt", time.Now().Add(15*time.Minute), nil)
	m.refresh.EXPECT().Rotate(gomock.Any(), rt, input.IPAddress, input.UserAgent).
		Return(&domain.RefreshToken{ID: "rt-2", Token: "replacement-token"}, nil)
	m.tokens.EXPECT().AccessTokenTTL().Return(15 * time.Minute)
	m.audit.EXPECT().Record(gomock.Any(), domain.EventTokenRefresh, true,
		gomock.Any(), input.IPAddress, input.UserAgent)

	resp, err := s.Refresh(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "replacement-token", resp.RefreshToken)
}

func TestUserService_Refresh_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl, &config.Config{})

	input := dto.RefreshInput{RefreshToken: "bogus"}

	m.refresh.EXPECT().ValidateAndGet(gomock.Any(), input.RefreshToken).
		Return(nil, autherror.ErrRefreshTokenRevoked)

	resp, err := s.Refresh(context.Background(), input)

	assert.ErrorIs(t, err, autherror.ErrRefreshTokenRevoked)
	assert.Nil(t, resp)
}

func TestUserService_Refresh_UserGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl, &config.Config{})

	input := dto.RefreshInput{RefreshToken: "opaque-token"}
	rt := &domain.RefreshToken{ID: "rt-1", UserID: "user-123", Token: input.RefreshToken}

	m.refresh.EXPECT().ValidateAndGet(gomock.Any(), input.RefreshToken).Return(rt, nil)
	m.users.EXPECT().GetByID(gomock.Any(), rt.UserID).Return(nil, nil)

	_, err := s.Refresh(context.Background(), input)
	assert.ErrorIs(t, err, autherror.ErrUserNotFound)
}

func TestUserService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl, &config.Config{})

	principal := &domain.Principal{UserID: "user-123", Email: "test@example.com"}
	input := dto.LogoutInput{RefreshToken: "opaque-token", IPAddress: "203.0.113.7", UserAgent: "test-agent"}

	t.Run("revokes valid token", func(t *testing.T) {
		rt := &domain.RefreshToken{ID: "rt-1", UserID: principal.UserID, Token: input.RefreshToken}

		m.refresh.EXPECT().ValidateAndGet(gomock.Any(), input.RefreshToken).Return(rt, nil)
		m.refresh.EXPECT().Revoke(gomock.Any(), rt).Return(nil)
		m.audit.EXPECT().Record(gomock.Any(), domain.EventLogout, true,
			gomock.Any(), input.IPAddress, input.UserAgent)

		s.Logout(context.Background(), principal, input)
	})

	t.Run("invalid token only audits", func(t *testing.T) {
		m.refresh.EXPECT().ValidateAndGet(gomock.Any(), input.RefreshToken).
			Return(nil, autherror.ErrRefreshTokenNotFound)
		m.audit.EXPECT().Record(gomock.Any(), domain.EventLogout, false,
			autherror.ErrRefreshTokenNotFound.Error(), input.IPAddress, input.UserAgent)

		s.Logout(context.Background(), principal, input)
	})

	t.Run("nil principal", func(t *testing.T) {
		rt := &domain.RefreshToken{ID: "rt-1", Token: input.RefreshToken}

		m.refresh.EXPECT().ValidateAndGet(gomock.Any(), input.RefreshToken).Return(rt, nil)
		m.refresh.EXPECT().Revoke(gomock.Any(), rt).Return(nil)
		m.audit.EXPECT().Record(gomock.Nil(), domain.EventLogout, true,
			gomock.Any(), input.IPAddress, input.UserAgent)

		s.Logout(context.Background(), nil, input)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl, &config.Config{})
	ctx := context.Background()

	principal := &domain.Principal{UserID: "user-123", Email: "test@example.com"}

	t.Run("success revokes all sessions", func(t *testing.T) {
		user := verifiedUser(t, principal.Email, "current-password")
		input := dto.ChangePasswordInput{
			CurrentPassword: "current-password",
			NewPassword:     "new-password",
			IPAddress:       "203.0.113.7",
			UserAgent:       "test-agent",
		}

		m.users.EXPECT().GetByID(gomock.Any(), principal.UserID).Return(user, nil)
		m.users.EXPECT().UpdatePassword(gomock.Any(), user.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, hash string) error {
				assert.NotEqual(t, input.NewPassword, hash)
				return nil
			})
		m.refresh.EXPECT().RevokeAll(gomock.Any(), user.ID).Return(nil)
		m.audit.EXPECT().Record(gomock.Any(), domain.EventPasswordReset, true,
			gomock.Any(), input.IPAddress, input.UserAgent)

		err := s.ChangePassword(ctx, principal, input)
		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		user := verifiedUser(t, principal.Email, "current-password")
		input := dto.ChangePasswordInput{
			CurrentPassword: "wrong-password",
			NewPassword:     "new-password",
		}

		m.users.EXPECT().GetByID(gomock.Any(), principal.UserID).Return(user, nil)
		m.audit.EXPECT().Record(gomock.Any(), domain.EventPasswordReset, false,
			gomock.Any(), gomock.Any(), gomock.Any())

		err := s.ChangePassword(ctx, principal, input)
		assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
	})

	t.Run("user gone", func(t *testing.T) {
		m.users.EXPECT().GetByID(gomock.Any(), principal.UserID).Return(nil, nil)

		err := s.ChangePassword(ctx, principal, dto.ChangePasswordInput{})
		assert.ErrorIs(t, err, autherror.ErrUserNotFound)
	})
}

func TestUserService_ForceLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl, &config.Config{})
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		user := &domain.User{ID: "user-123", Email: "test@example.com"}

		m.users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
		m.refresh.EXPECT().RevokeAll(gomock.Any(), user.ID).Return(nil)
		m.audit.EXPECT().Record(gomock.Any(), domain.EventLogout, true,
			gomock.Any(), gomock.Any(), gomock.Any())

		err := s.ForceLogout(ctx, user.ID, "203.0.113.7", "test-agent")
		assert.NoError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		m.users.EXPECT().GetByID(gomock.Any(), "nobody").Return(nil, nil)

		err := s.ForceLogout(ctx, "nobody", "203.0.113.7", "test-agent")
		assert.ErrorIs(t, err, autherror.ErrUserNotFound)
	})
}

func TestUserService_GetUserSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl, &config.Config{})

	now := time.Now()
	m.refresh.EXPECT().ListActive(gomock.Any(), "user-123").Return([]domain.RefreshToken{
		{ID: "rt-1", IPAddress: "203.0.113.7", UserAgent: "test-agent", CreatedAt: now, ExpiresAt: now.Add(time.Hour)},
	}, nil)

	sessions, err := s.GetUserSessions(context.Background(), "user-123")

	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "rt-1", sessions[0].ID)
	assert.Equal(t, "203.0.113.7", sessions[0].IPAddress)
}

func TestUserService_ListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl, &config.Config{})

	m.users.EXPECT().List(gomock.Any()).Return([]domain.User{
		{ID: "user-1", Email: "a@example.com", Roles: []domain.Role{domain.RoleUser}},
		{ID: "user-2", Email: "b@example.com", Roles: []domain.Role{domain.RoleAdmin}},
	}, nil)

	users, err := s.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a@example.com", users[0].Email)
	assert.Equal(t, []string{string(domain.RoleAdmin)}, users[1].Roles)
}
