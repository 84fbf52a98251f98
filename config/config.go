package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort                   = "8080"
	DefaultAccessTokenExpiryMin   = 15
	DefaultRefreshTokenExpiryMin  = 10080
	DefaultLoginMaxAttempts       = 5
	DefaultLockoutDurationMin     = 15
	DefaultAccountMaxFailedLogins = 10
	DefaultAccountLockMin         = 30
	DefaultAuditWorkers           = 4
	DefaultAuditQueueSize         = 500
)

type Config struct {
	Env                    string
	Port                   string
	DBURL                  string
	JWTSecret              string
	AccessExpiryMin        int
	RefreshExpiryMin       int
	LoginMaxAttempts       int
	LockoutDurationMin     int
	AccountMaxFailedLogins int
	AccountLockMin         int
	RotateRefreshTokens    bool
	AuditWorkers           int
	AuditQueueSize         int
}

// Load reads config/.env.<env> if present, with real environment variables
// taking precedence, and exits on missing required keys.
func Load() *Config {
	env := getEnv("ENV", "development")

	if err := godotenv.Load(filepath.Join("config", envFileName(env))); err == nil {
		log.Printf("Loaded config file for env %s", env)
	}

	return &Config{
		Env:                    env,
		Port:                   getEnv("PORT", DefaultPort),
		DBURL:                  mustGetEnv("DB_URL"),
		JWTSecret:              mustGetEnv("JWT_SECRET"),
		AccessExpiryMin:        getEnvAsInt("ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiryMin),
		RefreshExpiryMin:       getEnvAsInt("REFRESH_TOKEN_EXPIRY", DefaultRefreshTokenExpiryMin),
		LoginMaxAttempts:       getEnvAsInt("MAX_LOGIN_ATTEMPTS", DefaultLoginMaxAttempts),
		LockoutDurationMin:     getEnvAsInt("LOCKOUT_DURATION_MINUTES", DefaultLockoutDurationMin),
		AccountMaxFailedLogins: getEnvAsInt("ACCOUNT_MAX_FAILED_LOGINS", DefaultAccountMaxFailedLogins),
		AccountLockMin:         getEnvAsInt("ACCOUNT_LOCK_MINUTES", DefaultAccountLockMin),
		RotateRefreshTokens:    getEnvAsBool("REFRESH_TOKEN_ROTATION", false),
		AuditWorkers:           getEnvAsInt("AUDIT_WORKERS", DefaultAuditWorkers),
		AuditQueueSize:         getEnvAsInt("AUDIT_QUEUE_SIZE", DefaultAuditQueueSize),
	}
}

func envFileName(env string) string {
	switch env {
	case "development":
		return ".env.dev"
	case "production":
		return ".env.prod"
	}
	return ".env." + env
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %t", key, defaultVal)
		return defaultVal
	}
	return val
}
