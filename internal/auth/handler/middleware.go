package handler

import (
	"errors"
	"strings"

	"github.com/ecomcore/auth-service/internal/auth/domain"
	autherror "github.com/ecomcore/auth-service/internal/errors"
	"github.com/gofiber/fiber/v2"
)

const principalKey = "principal"

// RequireAuth validates the bearer token and attaches the principal for
// downstream handlers. A missing header is Unauthenticated, distinct from an
// invalid or expired token.
func (h *AuthHandler) RequireAuth(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": autherror.ErrMissingAuthorizationHeader.Error(),
		})
	}

	principal, err := h.tokens.Verify(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		msg := "invalid token"
		if errors.Is(err, autherror.ErrAccessTokenExpired) {
			msg = "token expired"
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
	}

	c.Locals(principalKey, principal)

	return c.Next()
}

// RequireRole rejects principals lacking the role with 403, distinct from the
// 401 an unauthenticated request gets.
func (h *AuthHandler) RequireRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal := PrincipalFromCtx(c)
		if principal == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthenticated",
			})
		}
		if !principal.HasRole(role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": autherror.ErrForbidden.Error(),
			})
		}

		return c.Next()
	}
}

func PrincipalFromCtx(c *fiber.Ctx) *domain.Principal {
	principal, _ := c.Locals(principalKey).(*domain.Principal)
	return principal
}
