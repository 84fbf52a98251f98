package main

import (
	"context"
	"log"
	"time"

	"github.com/ecomcore/auth-service/config"
	"github.com/ecomcore/auth-service/db"
	"github.com/ecomcore/auth-service/internal/auth/handler"
	"github.com/ecomcore/auth-service/internal/auth/password"
	repo "github.com/ecomcore/auth-service/internal/auth/repository/postgres"
	"github.com/ecomcore/auth-service/internal/auth/service"
	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if err := db.Migrate(cfg.DBURL); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer pool.Close()

	userRepo := repo.NewUserRepository(pool)
	attemptRepo := repo.NewLoginAttemptRepository(pool)
	refreshRepo := repo.NewRefreshTokenRepository(pool)
	auditRepo := repo.NewAuditRepository(pool)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.AccessExpiryMin)
	attemptService := service.NewLoginAttemptService(attemptRepo,
		cfg.LoginMaxAttempts, time.Duration(cfg.LockoutDurationMin)*time.Minute)
	refreshService := service.NewRefreshTokenService(refreshRepo,
		time.Duration(cfg.RefreshExpiryMin)*time.Minute)
	auditService := service.NewAuditService(auditRepo, cfg.AuditWorkers, cfg.AuditQueueSize)
	defer auditService.Close()

	userService := service.NewUserService(userRepo, password.NewBcryptHasher(),
		tokenService, refreshService, attemptService, auditService, cfg)
	authHandler := handler.NewAuthHandler(userService, tokenService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	log.Fatal(app.Listen(":" + cfg.Port))
}
