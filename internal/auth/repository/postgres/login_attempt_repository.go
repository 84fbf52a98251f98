package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecomcore/auth-service/internal/auth/domain"
	"github.com/jackc/pgx/v5"
)

type LoginAttemptRepository struct {
	db DB
}

func NewLoginAttemptRepository(db DB) *LoginAttemptRepository {
	return &LoginAttemptRepository{db: db}
}

// Increment bumps the failure counter for the IP in a single upsert so two
// concurrent failures cannot under-count.
func (r *LoginAttemptRepository) Increment(ctx context.Context, ip, email string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO login_attempts (ip_address, email, attempts, last_modified)
		VALUES ($1, $2, 1, now())
		ON CONFLICT (ip_address)
		DO UPDATE SET attempts = login_attempts.attempts + 1,
			email = EXCLUDED.email,
			last_modified = now()
	`, ip, email)
	if err != nil {
		return fmt.Errorf("failed to record login failure: %w", err)
	}

	return nil
}

func (r *LoginAttemptRepository) Delete(ctx context.Context, ip string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM login_attempts WHERE ip_address = $1`, ip)
	if err != nil {
		return fmt.Errorf("failed to clear login attempts: %w", err)
	}

	return nil
}

func (r *LoginAttemptRepository) GetByIP(ctx context.Context, ip string) (*domain.LoginAttempt, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, ip_address, email, attempts, last_modified
		FROM login_attempts
		WHERE ip_address = $1
	`, ip)

	var attempt domain.LoginAttempt
	err := row.Scan(&attempt.ID, &attempt.IPAddress, &attempt.Email,
		&attempt.Attempts, &attempt.LastModified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get login attempts: %w", err)
	}

	return &attempt, nil
}
