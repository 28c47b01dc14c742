package usecase

import (
	"admin-console/internal/contextkeys"
	"admin-console/internal/core/domain"
	"admin-console/internal/core/port"
	"context"
	"fmt"
	"strings"
	"sync"
)

const minEmailLength = 4

// AuthFlow - двухшаговый вход: email -> код -> токен в хранилище сессии
type AuthFlow struct {
	mutex sync.Mutex

	api     port.AdminAuthAPIPort
	session port.SessionStorePort
	audit   port.AuditTrailPort

	step    domain.AuthStep
	email   string
	otp     string
	loading bool
	message string
	errMsg  string
}

func NewAuthFlow(api port.AdminAuthAPIPort, session port.SessionStorePort, audit port.AuditTrailPort, defaultEmail string) *AuthFlow {
	return &AuthFlow{
		api:     api,
		session: session,
		audit:   audit,
		step:    domain.AuthStepEmail,
		email:   defaultEmail,
	}
}

func (f *AuthFlow) SetEmail(email string) {
	f.mutex.Lock()
	f.email = email
	f.mutex.Unlock()
}

func (f *AuthFlow) SetOTP(otp string) {
	f.mutex.Lock()
	f.otp = otp
	f.mutex.Unlock()
}

func canSendOTP(email string) bool {
	return len(strings.TrimSpace(email)) >= minEmailLength
}

func canVerifyOTP(email, otp string) bool {
	return canSendOTP(email) && strings.TrimSpace(otp) != ""
}

// SendOTP просит бэкенд отправить код. При ошибке шаг не меняется.
func (f *AuthFlow) SendOTP(ctx context.Context) error {
	f.mutex.Lock()
	email := strings.TrimSpace(f.email)
	if !canSendOTP(email) {
		f.mutex.Unlock()
		return domain.NewValidationError("Email is required")
	}
	f.loading = true
	f.errMsg = ""
	f.message = ""
	f.mutex.Unlock()

	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "AuthFlow", "method": "SendOTP"})
	result, err := f.api.RequestOTP(ctx, email)

	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.loading = false

	if err != nil {
		f.errMsg = domain.ErrorMessage(err, domain.MsgSomethingWentWrong)
		logger.Warn("OTP request failed", port.Fields{"error": err.Error()})
		return err
	}

	f.message = domain.MsgOTPSent
	if result != nil && result.Message != "" {
		f.message = result.Message
	}
	f.step = domain.AuthStepOTP
	logger.Info("OTP requested", nil)
	return nil
}

// VerifyOTP обменивает код на токен и сохраняет его.
// Хранилище сессии меняется только после успешного ответа с токеном.
func (f *AuthFlow) VerifyOTP(ctx context.Context) error {
	f.mutex.Lock()
	email, otp := strings.TrimSpace(f.email), strings.TrimSpace(f.otp)
	if !canVerifyOTP(email, otp) {
		f.mutex.Unlock()
		return domain.NewValidationError("OTP is required")
	}
	f.loading = true
	f.errMsg = ""
	f.message = ""
	f.mutex.Unlock()

	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "AuthFlow", "method": "VerifyOTP"})

	err := f.verify(ctx, email, otp)

	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.loading = false

	if err != nil {
		f.errMsg = domain.ErrorMessage(err, domain.MsgSomethingWentWrong)
		logger.Warn("OTP verification failed", port.Fields{"error": err.Error()})
		return err
	}

	f.step = domain.AuthStepAuthenticated
	f.otp = ""
	logger.Info("Administrator logged in", nil)
	recordAction(ctx, f.audit, domain.ActionLogin, domain.EntitySession, "", map[string]any{"email": email})
	return nil
}

func (f *AuthFlow) verify(ctx context.Context, email, otp string) error {
	result, err := f.api.VerifyOTP(ctx, email, otp)
	if err != nil {
		return err
	}
	if result == nil || result.Token == "" {
		return domain.NewRequestError(200, domain.MsgTokenNotReceived)
	}
	if err := f.session.Set(ctx, result.Token); err != nil {
		return fmt.Errorf("failed to store admin session: %w", err)
	}
	return nil
}

// ChangeEmail возвращает на первый шаг и очищает код и сообщения
func (f *AuthFlow) ChangeEmail() {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.step = domain.AuthStepEmail
	f.otp = ""
	f.message = ""
	f.errMsg = ""
}

func (f *AuthFlow) Logout(ctx context.Context) error {
	if err := f.session.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear admin session: %w", err)
	}

	f.mutex.Lock()
	f.step = domain.AuthStepEmail
	f.otp = ""
	f.message = ""
	f.errMsg = ""
	f.mutex.Unlock()

	contextkeys.LoggerFromContext(ctx).Info("Administrator logged out", port.Fields{"component": "AuthFlow"})
	recordAction(ctx, f.audit, domain.ActionLogout, domain.EntitySession, "", nil)
	return nil
}

// IsAuthenticated - есть ли непустой токен. Токен локально не проверяется.
func (f *AuthFlow) IsAuthenticated(ctx context.Context) (bool, error) {
	token, err := f.session.Get(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

func (f *AuthFlow) Snapshot(ctx context.Context) domain.AuthState {
	authenticated, err := f.IsAuthenticated(ctx)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to read admin session", err, port.Fields{"component": "AuthFlow"})
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	step := f.step
	switch {
	case authenticated:
		step = domain.AuthStepAuthenticated
	case step == domain.AuthStepAuthenticated:
		// токен очищен снаружи
		step = domain.AuthStepEmail
	}

	return domain.AuthState{
		Step:      step,
		Email:     f.email,
		OTP:       f.otp,
		IsLoading: f.loading,
		Message:   f.message,
		Error:     f.errMsg,
		CanSend:   canSendOTP(f.email),
		CanVerify: canVerifyOTP(f.email, f.otp),
	}
}
