package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecomcore/auth-service/config"
	"github.com/ecomcore/auth-service/internal/auth/domain"
	"github.com/ecomcore/auth-service/internal/auth/dto"
	"github.com/ecomcore/auth-service/internal/auth/handler"
	"github.com/ecomcore/auth-service/internal/auth/password"
	"github.com/ecomcore/auth-service/internal/auth/service"
	autherror "github.com/ecomcore/auth-service/internal/errors"
	"github.com/ecomcore/auth-service/internal/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerMocks struct {
	users    *mocks.MockUserRepository
	tokens   *mocks.MockTokenGenerator
	refresh  *mocks.MockRefreshTokenManager
	attempts *mocks.MockLoginAttemptGuard
	audit    *mocks.MockAuditRecorder
}

func newAuthHandler(ctrl *gomock.Controller, cfg *config.Config) (*handler.AuthHandler, handlerMocks) {
	m := handlerMocks{
		users:    mocks.NewMockUserRepository(ctrl),
		tokens:   mocks.NewMockTokenGenerator(ctrl),
		refresh:  mocks.NewMockRefreshTokenManager(ctrl),
		attempts: mocks.NewMockLoginAttemptGuard(ctrl),
		audit:    mocks.NewMockAuditRecorder(ctrl),
	}

	userService := service.NewUserService(m.users, password.NewBcryptHasher(),
		m.tokens, m.refresh, m.attempts, m.audit, cfg)

	return handler.NewAuthHandler(userService, m.tokens), m
}

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newAuthHandler(ctrl, &config.Config{})

	app := fiber.New()
	app.Post("/register", h.Register)

	t.Run("success", func(t *testing.T) {
		input := dto.RegisterInput{Name: "Test User", Email: "test@example.com", Password: "password123"}

		m.users.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(nil, nil)
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		body, _ := json.Marshal(input)
		req := httptest.NewRequest("POST", "/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("conflict on duplicate email", func(t *testing.T) {
		input := dto.RegisterInput{Email: "test@example.com", Password: "password123"}

		m.users.EXPECT().GetByEmail(gomock.Any(), input.Email).
			Return(&domain.User{ID: "existing", Email: input.Email}, nil)

		body, _ := json.Marshal(input)
		req := httptest.NewRequest("POST", "/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})

	t.Run("bad request on invalid json", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/register", bytes.NewReader([]byte("{invalid-json")))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newAuthHandler(ctrl, &config.Config{AccountMaxFailedLogins: 10})

	app := fiber.New()
	app.Post("/login", h.Login)

	expectedIP := "0.0.0.0"

	t.Run("success", func(t *testing.T) {
		input := dto.LoginInput{Email: "test@example.com", Password: "password123"}

		hasher := password.NewBcryptHasher()
		hash, err := hasher.Hash(input.Password)
		require.NoError(t, err)

		user := &domain.User{
			ID:           "user-123",
			Email:        input.Email,
			PasswordHash: hash,
			Roles:        []domain.Role{domain.RoleUser},
			IsVerified:   true,
			IsActive:     true,
		}

		m.attempts.EXPECT().IsBlocked(gomock.Any(), expectedIP).Return(false, nil)
		m.users.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(user, nil)
		m.attempts.EXPECT().RecordSuccess(gomock.Any(), expectedIP).Return(nil)
		m.users.EXPECT().ResetLoginState(gomock.Any(), user.ID, gomock.Any()).Return(nil)
		m.tokens.EXPECT().Generate(gomock.Any()).Return("signed-jwt", time.Now().Add(15*time.Minute), nil)
		m.refresh.EXPECT().Create(gomock.Any(), user.ID, expectedIP, gomock.Any()).
			Return(&domain.RefreshToken{ID: "rt-1", Token: "opaque-token"}, nil)
		m.tokens.EXPECT().AccessTokenTTL().Return(15 * time.Minute)
		m.audit.EXPECT().Record(gomock.Any(), domain.EventLoginSuccess, true,
			gomock.Any(), gomock.Any(), gomock.Any())

		body, _ := json.Marshal(input)
		req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var tokenResp dto.TokenResponse
		respBody, _ := io.ReadAll(resp.Body)
		require.NoError(t, json.Unmarshal(respBody, &tokenResp))
		assert.Equal(t, "signed-jwt", tokenResp.AccessToken)
		assert.Equal(t, "opaque-token", tokenResp.RefreshToken)
		assert.Equal(t, "Bearer", tokenResp.TokenType)
	})

	t.Run("unauthorized with generic message", func(t *testing.T) {
		input := dto.LoginInput{Email: "test@example.com", Password: "wrong-password"}

		m.attempts.EXPECT().IsBlocked(gomock.Any(), expectedIP).Return(false, nil)
		m.users.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(nil, nil)
		m.attempts.EXPECT().RecordFailure(gomock.Any(), expectedIP, input.Email).Return(nil)
		m.audit.EXPECT().Record(gomock.Any(), domain.EventLoginFailed, false,
			gomock.Any(), gomock.Any(), gomock.Any())

		body, _ := json.Marshal(input)
		req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		respBody, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(respBody), "invalid email or password")
	})

	t.Run("too many requests when IP locked out", func(t *testing.T) {
		input := dto.LoginInput{Email: "test@example.com", Password: "password123"}

		m.attempts.EXPECT().IsBlocked(gomock.Any(), expectedIP).Return(true, nil)
		m.audit.EXPECT().Record(gomock.Any(), domain.EventLoginFailed, false,
			gomock.Any(), gomock.Any(), gomock.Any())

		body, _ := json.Marshal(input)
		req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	})

	t.Run("internal error on tracker failure", func(t *testing.T) {
		input := dto.LoginInput{Email: "test@example.com", Password: "password123"}

		m.attempts.EXPECT().IsBlocked(gomock.Any(), expectedIP).Return(false, errors.New("db error"))

		body, _ := json.Marshal(input)
		req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("bad request on invalid json", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/login", bytes.NewReader([]byte("{invalid-json")))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestRefreshHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newAuthHandler(ctrl, &config.Config{})

	app := fiber.New()
	app.Post("/refresh", h.Refresh)

	t.Run("success", func(t *testing.T) {
		input := dto.RefreshInput{RefreshToken: "opaque-token"}
		rt := &domain.RefreshToken{ID: "rt-1", UserID: "user-123", Token: input.RefreshToken}
		user := &domain.User{ID: "user-123", Email: "test@example.com", Roles: []domain.Role{domain.RoleUser}}

		m.refresh.EXPECT().ValidateAndGet(gomock.Any(), input.RefreshToken).Return(rt, nil)
		m.users.EXPECT().GetByID(gomock.Any(), rt.UserID).Return(user, nil)
		m.tokens.EXPECT().Generate(gomock.Any()).Return("new-jwt", time.Now().Add(15*time.Minute), nil)
		m.tokens.EXPECT().AccessTokenTTL().Return(15 * time.Minute)
		m.audit.EXPECT().Record(gomock.Any(), domain.EventTokenRefresh, true,
			gomock.Any(), gomock.Any(), gomock.Any())

		body, _ := json.Marshal(input)
		req := httptest.NewRequest("POST", "/refresh", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("unauthorized on revoked token", func(t *testing.T) {
		input := dto.RefreshInput{RefreshToken: "revoked-token"}

		m.refresh.EXPECT().ValidateAndGet(gomock.Any(), input.RefreshToken).
			Return(nil, autherror.ErrRefreshTokenRevoked)

		body, _ := json.Marshal(input)
		req := httptest.NewRequest("POST", "/refresh", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newAuthHandler(ctrl, &config.Config{})

	app := fiber.New()
	app.Post("/logout", h.Logout)

	t.Run("returns 200 for valid token", func(t *testing.T) {
		input := dto.LogoutInput{RefreshToken: "opaque-token"}
		rt := &domain.RefreshToken{ID: "rt-1", Token: input.RefreshToken}

		m.refresh.EXPECT().ValidateAndGet(gomock.Any(), input.RefreshToken).Return(rt, nil)
		m.refresh.EXPECT().Revoke(gomock.Any(), rt).Return(nil)
		m.audit.EXPECT().Record(gomock.Any(), domain.EventLogout, true,
			gomock.Any(), gomock.Any(), gomock.Any())

		body, _ := json.Marshal(input)
		req := httptest.NewRequest("POST", "/logout", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("returns 200 even for unknown token", func(t *testing.T) {
		input := dto.LogoutInput{RefreshToken: "unknown-token"}

		m.refresh.EXPECT().ValidateAndGet(gomock.Any(), input.RefreshToken).
			Return(nil, autherror.ErrRefreshTokenNotFound)
		m.audit.EXPECT().Record(gomock.Any(), domain.EventLogout, false,
			gomock.Any(), gomock.Any(), gomock.Any())

		body, _ := json.Marshal(input)
		req := httptest.NewRequest("POST", "/logout", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
