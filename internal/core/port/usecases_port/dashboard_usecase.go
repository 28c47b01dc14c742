package usecases_port

import (
	"admin-console/internal/core/domain"
	"context"
)

type DashboardUseCasePort interface {
	SetDays(ctx context.Context, days int) error
	Reload(ctx context.Context) error
	Snapshot() domain.DashboardState
}
