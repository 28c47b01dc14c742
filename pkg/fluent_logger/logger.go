package fluentlogger

import (
	"fmt"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// Config хранит конфигурацию для подключения к Fluent Bit.
type Config struct {
	Host      string        // Например, "127.0.0.1" или "fluent-bit" в Docker
	Port      int           // Например, 24224
	TagPrefix string        // Общий префикс для всех тегов логов сервиса
	Timeout   time.Duration // Таймаут подключения, по умолчанию 3s
	Async     bool          // Не блокировать вызывающего при недоступном Fluent Bit
}

// NewClient создает клиент для Fluent Bit.
// Подключение ленивое: ошибки появятся при первой отправке лога.
func NewClient(cfg Config) (*fluent.Fluent, error) {
	if cfg.TagPrefix == "" {
		return nil, fmt.Errorf("fluentd tag prefix is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 3 * time.Second
	}

	logger, err := fluent.New(fluent.Config{
		FluentHost: cfg.Host,
		FluentPort: cfg.Port,
		TagPrefix:  cfg.TagPrefix,
		Timeout:    cfg.Timeout,
		Async:      cfg.Async,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fluentd logger: %w", err)
	}
	return logger, nil
}
