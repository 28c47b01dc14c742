package usecases_port

import (
	"admin-console/internal/core/domain"
	"context"
)

// AuthFlowUseCasePort - вход администратора по одноразовому коду
type AuthFlowUseCasePort interface {
	SetEmail(email string)
	SetOTP(otp string)
	SendOTP(ctx context.Context) error
	VerifyOTP(ctx context.Context) error
	ChangeEmail()
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) (bool, error)
	Snapshot(ctx context.Context) domain.AuthState
}
