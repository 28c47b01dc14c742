package domain

import (
	"time"

	"github.com/google/uuid"
)

// Действия администратора, попадающие в журнал аудита
const (
	ActionLogin            = "login"
	ActionLogout           = "logout"
	ActionPropertyCreated  = "property_created"
	ActionPropertyUpdated  = "property_updated"
	ActionPropertyDeleted  = "property_deleted"
	ActionPropertyFeatured = "property_featured"
	ActionUserBlocked      = "user_blocked"
)

const (
	EntityProperty = "property"
	EntityUser     = "user"
	EntitySession  = "session"
)

// AdminActionEvent - событие журнала аудита
type AdminActionEvent struct {
	EventID    uuid.UUID      `json:"event_id"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

func NewAdminActionEvent(action, entityType, entityID string, payload map[string]any) AdminActionEvent {
	return AdminActionEvent{
		EventID:    uuid.New(),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	}
}
