package postgres

import (
	"context"
	"fmt"

	"github.com/ecomcore/auth-service/internal/auth/domain"
)

type AuditRepository struct {
	db DB
}

func NewAuditRepository(db DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO audit_logs (user_id, event_type, ip_address, user_agent, details, success, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, event.UserID, string(event.EventType), event.IPAddress, event.UserAgent,
		event.Details, event.Success, event.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert audit event: %w", err)
	}

	return nil
}
