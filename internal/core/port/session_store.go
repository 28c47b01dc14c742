package port

import "context"

// SessionStorePort - постоянный слот для токена администратора.
// Get возвращает пустую строку, если токена нет.
type SessionStorePort interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
