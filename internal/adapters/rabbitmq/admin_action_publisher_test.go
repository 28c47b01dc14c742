package rabbitmq

import (
	"admin-console/internal/contextkeys"
	"admin-console/internal/core/domain"
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducer struct {
	routingKey string
	msg        amqp.Publishing
	calls      int
	err        error
}

func (f *fakeProducer) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	f.calls++
	f.routingKey = routingKey
	f.msg = msg
	return f.err
}

func TestNewAdminActionPublisher_Validation(t *testing.T) {
	_, err := NewAdminActionPublisher(nil, "admin.actions")
	assert.Error(t, err)
	_, err = NewAdminActionPublisher(&fakeProducer{}, "")
	assert.Error(t, err)
}

func TestPublishAdminAction(t *testing.T) {
	producer := &fakeProducer{}
	publisher, err := NewAdminActionPublisher(producer, "admin.actions")
	require.NoError(t, err)

	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-42")
	event := domain.NewAdminActionEvent(domain.ActionPropertyFeatured, domain.EntityProperty, "p1", map[string]any{"isFeatured": true})

	require.NoError(t, publisher.PublishAdminAction(ctx, event))
	assert.Equal(t, 1, producer.calls)
	assert.Equal(t, "admin.actions", producer.routingKey)
	assert.Equal(t, "application/json", producer.msg.ContentType)
	assert.Equal(t, "trace-42", producer.msg.Headers["x-trace-id"])
	assert.Equal(t, event.EventID.String(), producer.msg.MessageId)

	var body map[string]any
	require.NoError(t, json.Unmarshal(producer.msg.Body, &body))
	assert.Equal(t, "property_featured", body["action"])
	assert.Equal(t, "p1", body["entity_id"])
}

func TestPublishAdminAction_RejectsInvalidEvent(t *testing.T) {
	producer := &fakeProducer{}
	publisher, _ := NewAdminActionPublisher(producer, "admin.actions")

	event := domain.NewAdminActionEvent("drop_tables", domain.EntityProperty, "p1", nil)
	assert.Error(t, publisher.PublishAdminAction(context.Background(), event))
	assert.Zero(t, producer.calls)
}

func TestPublishAdminAction_ProducerError(t *testing.T) {
	producer := &fakeProducer{err: errors.New("channel closed")}
	publisher, _ := NewAdminActionPublisher(producer, "admin.actions")

	err := publisher.PublishAdminAction(context.Background(), domain.NewAdminActionEvent(domain.ActionLogout, domain.EntitySession, "", nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel closed")
}

func TestPkgLoggerBridge_ToFields(t *testing.T) {
	bridge := &PkgLoggerBridge{internalLogger: contextkeys.NoopLogger()}
	fields := bridge.toFields("name", "admin_exchange", 42, "skipped", "dangling")
	assert.Equal(t, "admin_exchange", fields["name"])
	assert.Len(t, fields, 1)
}
