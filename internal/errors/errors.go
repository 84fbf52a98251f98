package errors

import (
	"errors"
)

var (
	ErrTooManyLoginAttempts       = errors.New("too many failed login attempts")
	ErrAccountLocked              = errors.New("account temporarily locked")
	ErrInvalidCredentials         = errors.New("invalid credentials")
	ErrAccountNotVerified         = errors.New("email not verified")
	ErrEmailAlreadyInUse          = errors.New("email already in use")
	ErrInvalidVerificationToken   = errors.New("invalid verification token")
	ErrRefreshTokenNotFound       = errors.New("refresh token not found")
	ErrRefreshTokenRevoked        = errors.New("refresh token revoked")
	ErrRefreshTokenExpired        = errors.New("refresh token expired")
	ErrAccessTokenExpired         = errors.New("access token expired")
	ErrAccessTokenMalformed       = errors.New("access token malformed")
	ErrMissingAuthorizationHeader = errors.New("missing or malformed authorization header")
	ErrForbidden                  = errors.New("insufficient role")
	ErrUserNotFound               = errors.New("user not found")
)
