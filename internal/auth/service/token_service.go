package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/ecomcore/auth-service/internal/auth/service TokenGenerator

import (
	"errors"
	"fmt"
	"time"

	"github.com/ecomcore/auth-service/internal/auth/domain"
	autherror "github.com/ecomcore/auth-service/internal/errors"
	"github.com/golang-jwt/jwt/v5"
)

type TokenGenerator interface {
	Generate(principal domain.Principal) (string, time.Time, error)
	Verify(tokenString string) (*domain.Principal, error)
	AccessTokenTTL() time.Duration
}

// TokenService mints and validates stateless HS256 access tokens. Validation
// never touches the store; durable revocation lives in the refresh token
// layer, which is why the access TTL is kept short.
type TokenService struct {
	secret            []byte
	accessTokenExpiry time.Duration
}

type AccessClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Email  string `json:"email"`
	Roles  string `json:"roles"`
}

func NewTokenService(secret string, accessMinutes int) *TokenService {
	return &TokenService{
		secret:            []byte(secret),
		accessTokenExpiry: time.Duration(accessMinutes) * time.Minute,
	}
}

func (ts *TokenService) Generate(principal domain.Principal) (string, time.Time, error) {
	rolesClaim, err := domain.RolesToClaim(principal.Roles)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("cannot mint token: %w", err)
	}

	now := time.Now()
	expiresAt := now.Add(ts.accessTokenExpiry)

	claims := AccessClaims{
		UserID: principal.UserID,
		Email:  principal.Email,
		Roles:  rolesClaim,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// Verify checks signature and expiry and rebuilds the principal. Expired and
// malformed tokens are distinguished so callers can report them apart.
func (ts *TokenService) Verify(tokenString string) (*domain.Principal, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherror.ErrAccessTokenExpired
		}
		return nil, autherror.ErrAccessTokenMalformed
	}
	if !token.Valid {
		return nil, autherror.ErrAccessTokenMalformed
	}

	roles, err := domain.RolesFromClaim(claims.Roles)
	if err != nil {
		return nil, autherror.ErrAccessTokenMalformed
	}

	return &domain.Principal{
		UserID: claims.UserID,
		Email:  claims.Email,
		Roles:  roles,
	}, nil
}

func (ts *TokenService) AccessTokenTTL() time.Duration {
	return ts.accessTokenExpiry
}
