package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecomcore/auth-service/internal/auth/domain"
	"github.com/jackc/pgx/v5"
)

const userColumns = `u.id, u.name, u.email, u.password_hash, u.is_verified, u.is_active,
	       u.failed_login_attempts, u.locked_until, u.last_login_at,
	       u.verification_token, u.oauth_provider, u.created_at, u.updated_at,
	       COALESCE(array_agg(r.name) FILTER (WHERE r.name IS NOT NULL), '{}')`

const userJoin = `
	FROM users u
	LEFT JOIN user_roles ur ON ur.user_id = u.id
	LEFT JOIN roles r ON r.id = ur.role_id`

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + userJoin + `
		WHERE u.email = $1
		GROUP BY u.id`

	return r.getOne(ctx, query, email)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + userJoin + `
		WHERE u.id = $1
		GROUP BY u.id`

	return r.getOne(ctx, query, id)
}

func (r *UserRepository) GetByVerificationToken(ctx context.Context, token string) (*domain.User, error) {
	query := `SELECT ` + userColumns + userJoin + `
		WHERE u.verification_token = $1
		GROUP BY u.id`

	return r.getOne(ctx, query, token)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	row := r.db.QueryRow(ctx, query, arg)

	var (
		user      domain.User
		roleNames []string
	)
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.IsVerified, &user.IsActive, &user.FailedLoginAttempts,
		&user.LockedUntil, &user.LastLoginAt, &user.VerificationToken,
		&user.OAuthProvider, &user.CreatedAt, &user.UpdatedAt, &roleNames)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	roles, err := parseRoles(roleNames)
	if err != nil {
		return nil, err
	}
	user.Roles = roles

	return &user, nil
}

// Create inserts the user and its role memberships in one transaction.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, is_verified, is_active,
			verification_token, oauth_provider, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, user.ID, user.Name, user.Email, user.PasswordHash, user.IsVerified,
		user.IsActive, user.VerificationToken, user.OAuthProvider,
		user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	names := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		names = append(names, string(role))
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO user_roles (user_id, role_id)
		SELECT $1, id FROM roles WHERE name = ANY($2)
	`, user.ID, names)
	if err != nil {
		return fmt.Errorf("failed to insert user roles: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *UserRepository) MarkVerified(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET is_verified = TRUE, verification_token = NULL, updated_at = now()
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}

	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1
	`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// IncrementFailedLogins bumps the per-account failure counter server-side so
// concurrent failures cannot under-count, and returns the new value.
func (r *UserRepository) IncrementFailedLogins(ctx context.Context, id string) (int, error) {
	var attempts int
	err := r.db.QueryRow(ctx, `
		UPDATE users
		SET failed_login_attempts = failed_login_attempts + 1, updated_at = now()
		WHERE id = $1
		RETURNING failed_login_attempts
	`, id).Scan(&attempts)
	if err != nil {
		return 0, fmt.Errorf("failed to increment failed logins: %w", err)
	}

	return attempts, nil
}

func (r *UserRepository) SetLockedUntil(ctx context.Context, id string, until time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET locked_until = $2, updated_at = now() WHERE id = $1
	`, id, until)
	if err != nil {
		return fmt.Errorf("failed to lock account: %w", err)
	}

	return nil
}

// ResetLoginState clears the failure counter and lock, and stamps the login.
func (r *UserRepository) ResetLoginState(ctx context.Context, id string, lastLogin time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET failed_login_attempts = 0, locked_until = NULL, last_login_at = $2, updated_at = now()
		WHERE id = $1
	`, id, lastLogin)
	if err != nil {
		return fmt.Errorf("failed to reset login state: %w", err)
	}

	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + userJoin + `
		GROUP BY u.id
		ORDER BY u.created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var (
			user      domain.User
			roleNames []string
		)
		err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
			&user.IsVerified, &user.IsActive, &user.FailedLoginAttempts,
			&user.LockedUntil, &user.LastLoginAt, &user.VerificationToken,
			&user.OAuthProvider, &user.CreatedAt, &user.UpdatedAt, &roleNames)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}

		roles, err := parseRoles(roleNames)
		if err != nil {
			return nil, err
		}
		user.Roles = roles

		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

func parseRoles(names []string) ([]domain.Role, error) {
	roles := make([]domain.Role, 0, len(names))
	for _, name := range names {
		role, err := domain.ParseRole(name)
		if err != nil {
			return nil, fmt.Errorf("stored role invalid: %w", err)
		}
		roles = append(roles, role)
	}

	return roles, nil
}
