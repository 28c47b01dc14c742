package port

import (
	"admin-console/internal/core/domain"
	"context"
)

// AuditTrailPort - публикация событий о действиях администратора
type AuditTrailPort interface {
	PublishAdminAction(ctx context.Context, event domain.AdminActionEvent) error
}
