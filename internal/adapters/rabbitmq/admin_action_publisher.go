package rabbitmq

import (
	"admin-console/internal/constants"
	"admin-console/internal/contextkeys"
	"admin-console/internal/contracts"
	"admin-console/internal/core/domain"
	"admin-console/internal/core/port"
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

// messagePublisher - часть rabbitmq_producer.Publisher, нужная адаптеру
type messagePublisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// AdminActionPublisher публикует события аудита в admin_exchange
type AdminActionPublisher struct {
	producer   messagePublisher
	routingKey string
}

func NewAdminActionPublisher(producer messagePublisher, routingKey string) (*AdminActionPublisher, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	if routingKey == "" {
		return nil, fmt.Errorf("rabbitmq adapter: routingKey cannot be empty")
	}
	return &AdminActionPublisher{producer: producer, routingKey: routingKey}, nil
}

// PublishAdminAction проверяет событие по схеме и отправляет его
func (a *AdminActionPublisher) PublishAdminAction(ctx context.Context, event domain.AdminActionEvent) error {
	adapterLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "AdminActionPublisher",
		"routing_key": a.routingKey,
		"action":      event.Action,
		"event_id":    event.EventID.String(),
	})

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal admin action: %w", err)
	}
	if err := contracts.ValidateEvent(constants.AdminActionEventType, constants.AdminActionEventVersion, body); err != nil {
		adapterLogger.Error("Admin action does not match its contract", err, nil)
		return fmt.Errorf("rabbitmq adapter: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		MessageId:    event.EventID.String(),
		Type:         constants.AdminActionEventType,
		Headers: amqp.Table{
			"x-event-version": constants.AdminActionEventVersion,
		},
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := a.producer.Publish(publishCtx, a.routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish admin action", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish admin action %s: %w", event.EventID, err)
	}

	adapterLogger.Debug("Admin action published", nil)
	return nil
}

// NoopAuditTrail используется, когда аудит выключен
type NoopAuditTrail struct{}

func (NoopAuditTrail) PublishAdminAction(ctx context.Context, event domain.AdminActionEvent) error {
	return nil
}
