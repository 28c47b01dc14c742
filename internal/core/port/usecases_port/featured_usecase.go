package usecases_port

import (
	"admin-console/internal/core/domain"
	"context"
)

type FeaturedScreenUseCasePort interface {
	SetLiveQuery(q string)
	Search(ctx context.Context) error
	Reset(ctx context.Context) error
	Load(ctx context.Context) error
	SetFeatured(ctx context.Context, id string, featured bool) (*domain.Property, error)
	Snapshot() domain.FeaturedState
}
