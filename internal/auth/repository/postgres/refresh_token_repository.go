package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecomcore/auth-service/internal/auth/domain"
	"github.com/jackc/pgx/v5"
)

const insertRefreshTokenQuery = `
	INSERT INTO refresh_tokens (id, user_id, token, ip_address, user_agent, expires_at, revoked, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// Revoked is one-way: the predicate keeps an already revoked row untouched.
const revokeRefreshTokenQuery = `
	UPDATE refresh_tokens SET revoked = TRUE WHERE id = $1 AND revoked = FALSE`

type RefreshTokenRepository struct {
	db DB
}

func NewRefreshTokenRepository(db DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Store(ctx context.Context, rt *domain.RefreshToken) error {
	_, err := r.db.Exec(ctx, insertRefreshTokenQuery,
		rt.ID, rt.UserID, rt.Token, rt.IPAddress, rt.UserAgent,
		rt.ExpiresAt, rt.Revoked, rt.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}

	return nil
}

func (r *RefreshTokenRepository) GetByToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, token, ip_address, user_agent, expires_at, revoked, created_at
		FROM refresh_tokens
		WHERE token = $1
	`, token)

	var rt domain.RefreshToken
	err := row.Scan(&rt.ID, &rt.UserID, &rt.Token, &rt.IPAddress, &rt.UserAgent,
		&rt.ExpiresAt, &rt.Revoked, &rt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return &rt, nil
}

func (r *RefreshTokenRepository) Revoke(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, revokeRefreshTokenQuery, id)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

func (r *RefreshTokenRepository) RevokeAllByUserID(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens SET revoked = TRUE WHERE user_id = $1 AND revoked = FALSE
	`, userID)
	if err != nil {
		return fmt.Errorf("failed to revoke user refresh tokens: %w", err)
	}

	return nil
}

// Rotate revokes the old token and stores its replacement atomically so a
// crash cannot leave both usable.
func (r *RefreshTokenRepository) Rotate(ctx context.Context, oldID string, replacement *domain.RefreshToken) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, revokeRefreshTokenQuery, oldID); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	_, err = tx.Exec(ctx, insertRefreshTokenQuery,
		replacement.ID, replacement.UserID, replacement.Token,
		replacement.IPAddress, replacement.UserAgent,
		replacement.ExpiresAt, replacement.Revoked, replacement.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *RefreshTokenRepository) ListActiveByUserID(ctx context.Context, userID string) ([]domain.RefreshToken, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, token, ip_address, user_agent, expires_at, revoked, created_at
		FROM refresh_tokens
		WHERE user_id = $1 AND revoked = FALSE AND expires_at > now()
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list refresh tokens: %w", err)
	}
	defer rows.Close()

	var tokens []domain.RefreshToken
	for rows.Next() {
		var rt domain.RefreshToken
		err := rows.Scan(&rt.ID, &rt.UserID, &rt.Token, &rt.IPAddress,
			&rt.UserAgent, &rt.ExpiresAt, &rt.Revoked, &rt.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan refresh token row: %w", err)
		}
		tokens = append(tokens, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate refresh tokens: %w", err)
	}

	return tokens, nil
}
