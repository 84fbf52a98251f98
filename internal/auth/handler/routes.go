package handler

import (
	"github.com/ecomcore/auth-service/internal/auth/domain"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	auth := app.Group("/api/auth")
	auth.Post("/register", h.Register)
	auth.Get("/verify-email", h.VerifyEmail)
	auth.Post("/login", h.Login)
	auth.Post("/refresh", h.Refresh)
	auth.Post("/logout", h.RequireAuth, h.Logout)

	users := app.Group("/api/users", h.RequireAuth)
	users.Post("/me/password", h.ChangePassword)

	// Admin-only endpoints
	admin := app.Group("/api/admin", h.RequireAuth, h.RequireRole(domain.RoleAdmin))
	admin.Get("/users", h.GetAllUsers)
	admin.Get("/users/:id/sessions", h.GetUserSessions)
	admin.Delete("/users/:id/sessions", h.ForceLogout)
}
