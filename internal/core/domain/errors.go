package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrPropertyNotFound = errors.New("property not found")
	ErrUserNotFound     = errors.New("user not found")
)

// Сообщения по умолчанию, когда сервер не прислал поле message
const (
	MsgRequestFailed        = "Request failed"
	MsgUploadFailed         = "Upload failed"
	MsgAdminLoginFailed     = "Admin login failed"
	MsgAdminOTPVerifyFailed = "Admin OTP verify failed"
	MsgTokenNotReceived     = "Token not received"
	MsgSomethingWentWrong   = "Something went wrong"
	MsgOTPSent              = "OTP sent"
	MsgStatsFailed          = "Failed to load stats"
	MsgPropertiesFailed     = "Failed to load properties"
	MsgFeaturedFailed       = "Failed to load featured properties"
	MsgPropertyFailed       = "Failed to load property"
	MsgQueriesFailed        = "Failed to load queries"
	MsgRatingsFailed        = "Failed to load ratings"
	MsgUsersFailed          = "Failed to load users"
	MsgDeleteFailed         = "Delete failed"
	MsgSaveFailed           = "Save failed"
	MsgUpdateFailed         = "Update failed"
	MsgUpdateUserFailed     = "Failed to update user"
	MsgImageUploadFailed    = "Image upload failed"
	MsgVideoUploadFailed    = "Video upload failed"
)

// RequestError - единственный тип ошибки клиента бэкенда.
// Message берется из поля message тела ответа или из заглушки вызова.
type RequestError struct {
	Message    string
	StatusCode int
}

func NewRequestError(statusCode int, message string) *RequestError {
	return &RequestError{Message: message, StatusCode: statusCode}
}

func (e *RequestError) Error() string {
	return e.Message
}

// ValidationError - ошибка проверки формы на стороне консоли
type ValidationError struct {
	Message string
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrorMessage возвращает текст для баннера ошибки экрана.
// Для ошибок бэкенда и валидации - их сообщение, для остальных - fallback.
func ErrorMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) && valErr.Message != "" {
		return valErr.Message
	}
	return fallback
}
