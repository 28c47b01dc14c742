package logger_adapter

import (
	"admin-console/internal/core/port"
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedPost struct {
	tag  string
	data port.Fields
}

type fakeFluent struct {
	mu    sync.Mutex
	posts []recordedPost
}

func (f *fakeFluent) Post(tag string, message interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts = append(f.posts, recordedPost{tag: tag, data: message.(port.Fields)})
	return nil
}

func (f *fakeFluent) Close() error { return nil }

func TestSlogAdapter_WritesFieldsAndError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelDebug}).
		WithFields(port.Fields{"component": "test"})

	logger.Error("Request failed", errors.New("boom"), port.Fields{"status_code": 502})

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, `msg="Request failed"`)
	assert.Contains(t, out, "component=test")
	assert.Contains(t, out, "status_code=502")
	assert.Contains(t, out, "err=boom")
}

func TestSlogAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelWarn})

	logger.Debug("hidden", nil)
	logger.Info("hidden too", nil)
	assert.Empty(t, buf.String())

	logger.Warn("visible", nil)
	assert.Contains(t, buf.String(), "visible")
}

func TestFluentLoggerAdapter_MergesFieldsAndFiltersLevel(t *testing.T) {
	client := &fakeFluent{}
	base := newFluentLoggerAdapter(client, slog.LevelInfo)
	logger := base.WithFields(port.Fields{"trace_id": "t-1"})

	logger.Debug("skipped", nil)
	logger.Info("Request started", port.Fields{"path": "/api/console/auth"})
	logger.Error("Request failed", errors.New("boom"), nil)

	require.Len(t, client.posts, 2)
	assert.Equal(t, "info", client.posts[0].tag)
	assert.Equal(t, "t-1", client.posts[0].data["trace_id"])
	assert.Equal(t, "/api/console/auth", client.posts[0].data["path"])
	assert.Equal(t, "Request started", client.posts[0].data["message"])
	assert.Equal(t, "boom", client.posts[1].data["error"])

	// базовый адаптер не получил полей производного
	assert.Empty(t, base.fields)
}

func TestMultiLogger(t *testing.T) {
	_, err := NewMultiloggerAdapter()
	assert.Error(t, err)

	first, second := &fakeFluent{}, &fakeFluent{}
	multi, err := NewMultiloggerAdapter(newFluentLoggerAdapter(first, nil), newFluentLoggerAdapter(second, nil))
	require.NoError(t, err)

	multi.WithFields(port.Fields{"component": "app"}).Warn("Shutting down", nil)

	require.Len(t, first.posts, 1)
	require.Len(t, second.posts, 1)
	assert.Equal(t, "app", second.posts[0].data["component"])
}
