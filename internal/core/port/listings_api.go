package port

import (
	"admin-console/internal/core/domain"
	"context"
)

// AdminAuthAPIPort - двухшаговый вход по одноразовому коду
type AdminAuthAPIPort interface {
	RequestOTP(ctx context.Context, email string) (*domain.OTPRequestResult, error)
	VerifyOTP(ctx context.Context, email, otp string) (*domain.OTPVerifyResult, error)
}

type StatsAPIPort interface {
	FetchStats(ctx context.Context, days int) (*domain.Stats, error)
}

// PropertiesAPIPort - операции над объявлениями
type PropertiesAPIPort interface {
	ListProperties(ctx context.Context) (*domain.Page[domain.Property], error)
	SearchProperties(ctx context.Context, params domain.Params) (*domain.Page[domain.Property], error)
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
	CreateProperty(ctx context.Context, input domain.PropertyInput) (*domain.Property, error)
	UpdateProperty(ctx context.Context, id string, input domain.PropertyInput) (*domain.Property, error)
	DeleteProperty(ctx context.Context, id string) error
	// SetPropertyFeatured меняет ровно одно поле и возвращает объявление в том виде, как его сохранил сервер.
	SetPropertyFeatured(ctx context.Context, id string, isFeatured bool) (*domain.Property, error)
}

type UploadsAPIPort interface {
	UploadImage(ctx context.Context, file domain.UploadFile) (string, error)
	UploadImages(ctx context.Context, files []domain.UploadFile) ([]string, error)
	UploadVideo(ctx context.Context, file domain.UploadFile) (string, error)
}

type QueriesAPIPort interface {
	SearchQueries(ctx context.Context, params domain.Params) (*domain.Page[domain.Query], error)
}

type RatingsAPIPort interface {
	SearchRatings(ctx context.Context, params domain.Params) (*domain.Page[domain.Rating], error)
}

type UsersAPIPort interface {
	SearchUsers(ctx context.Context, params domain.Params) (*domain.Page[domain.User], error)
	SetUserBlocked(ctx context.Context, id string, isBlocked bool) (*domain.User, error)
}
