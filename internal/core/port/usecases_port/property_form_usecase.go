package usecases_port

import (
	"admin-console/internal/core/domain"
	"context"
)

type PropertyFormUseCasePort interface {
	// Open готовит пустую форму (id == "") или загружает объявление для редактирования
	Open(ctx context.Context, id string) error
	Save(ctx context.Context, id string, values domain.PropertyFormValues) (*domain.Property, error)
	UploadImages(ctx context.Context, files []domain.UploadFile) ([]string, error)
	UploadVideo(ctx context.Context, file domain.UploadFile) (string, error)
	Snapshot() domain.PropertyFormState
}
