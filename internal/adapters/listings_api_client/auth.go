package listings_api_client

import (
	"admin-console/internal/core/domain"
	"context"
	"net/http"
)

// RequestOTP просит бэкенд отправить одноразовый код на почту администратора
func (c *Client) RequestOTP(ctx context.Context, email string) (*domain.OTPRequestResult, error) {
	var resp messageResponse
	if err := c.Request(ctx, http.MethodPost, "/api/admin/auth/login", loginRequest{Email: email}, &resp, domain.MsgAdminLoginFailed); err != nil {
		return nil, err
	}
	return &domain.OTPRequestResult{Message: resp.Message}, nil
}

// VerifyOTP обменивает код на bearer-токен.
// Успешный ответ без токена считается ошибкой клиента "Token not received".
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) (*domain.OTPVerifyResult, error) {
	var resp verifyOTPResponse
	if err := c.Request(ctx, http.MethodPost, "/api/admin/auth/verify-otp", verifyOTPRequest{Email: email, OTP: otp}, &resp, domain.MsgAdminOTPVerifyFailed); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, domain.NewRequestError(http.StatusOK, domain.MsgTokenNotReceived)
	}
	return &domain.OTPVerifyResult{Token: resp.Token, Message: resp.Message}, nil
}
