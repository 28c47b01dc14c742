package usecase

import (
	"admin-console/internal/contextkeys"
	"admin-console/internal/core/domain"
	"admin-console/internal/core/port"
	"context"
)

// recordAction публикует событие аудита. Ошибка публикации только логируется,
// на экран она не попадает.
func recordAction(ctx context.Context, audit port.AuditTrailPort, action, entityType, entityID string, payload map[string]any) {
	if audit == nil {
		return
	}
	event := domain.NewAdminActionEvent(action, entityType, entityID, payload)
	if err := audit.PublishAdminAction(ctx, event); err != nil {
		contextkeys.LoggerFromContext(ctx).Warn("Failed to record admin action", port.Fields{
			"component": "AuditTrail",
			"action":    action,
			"entity_id": entityID,
			"error":     err.Error(),
		})
	}
}
