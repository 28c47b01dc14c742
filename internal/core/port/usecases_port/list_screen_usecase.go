package usecases_port

import (
	"admin-console/internal/core/domain"
	"context"
)

// ListScreenUseCasePort - общие операции экранов со списком
type ListScreenUseCasePort[T any, F any] interface {
	SetLiveFilters(filters F)
	Submit(ctx context.Context) error
	Reset(ctx context.Context) error
	SetPage(ctx context.Context, page int) error
	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error
	Reload(ctx context.Context) error
	Snapshot() domain.ListState[T, F]
}

type PropertiesScreenUseCasePort interface {
	ListScreenUseCasePort[domain.Property, domain.PropertyFilters]
	Delete(ctx context.Context, id string) error
}

type QueriesScreenUseCasePort interface {
	ListScreenUseCasePort[domain.Query, domain.QueryFilters]
}

type RatingsScreenUseCasePort interface {
	ListScreenUseCasePort[domain.Rating, domain.RatingFilters]
	// SetStars применяет фильтр сразу, без кнопки поиска
	SetStars(ctx context.Context, stars string) error
	Select(id string) (domain.Rating, bool)
	ClearSelection()
}

type UsersScreenUseCasePort interface {
	ListScreenUseCasePort[domain.User, domain.UserFilters]
	Select(id string) (domain.User, bool)
	ClearSelection()
	SetBlocked(ctx context.Context, id string, blocked bool) (*domain.User, error)
}
