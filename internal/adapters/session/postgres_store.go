package session

import (
	"admin-console/internal/contextkeys"
	"admin-console/internal/core/domain"
	"admin-console/internal/core/port"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgExecutor - подмножество pgxpool.Pool, которым пользуется хранилище
type pgExecutor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const createKVTable = `CREATE TABLE IF NOT EXISTS admin_kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresStore хранит токен строкой таблицы admin_kv
type PostgresStore struct {
	db pgExecutor
}

// NewPostgresStore создает таблицу при первом запуске
func NewPostgresStore(ctx context.Context, db pgExecutor) (*PostgresStore, error) {
	if db == nil {
		return nil, fmt.Errorf("postgres pool cannot be nil")
	}
	if _, err := db.Exec(ctx, createKVTable); err != nil {
		return nil, fmt.Errorf("failed to create admin_kv table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(ctx context.Context) (string, error) {
	var token string
	err := s.db.QueryRow(ctx, `SELECT value FROM admin_kv WHERE key = $1`, domain.SessionKey).Scan(&token)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to read session from postgres", err, port.Fields{"component": "PostgresStore"})
		return "", fmt.Errorf("failed to read session: %w", err)
	}
	return token, nil
}

func (s *PostgresStore) Set(ctx context.Context, token string) error {
	query := `INSERT INTO admin_kv (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := s.db.Exec(ctx, query, domain.SessionKey, token); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (s *PostgresStore) Clear(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM admin_kv WHERE key = $1`, domain.SessionKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
