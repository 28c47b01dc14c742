package usecase

import (
	"admin-console/internal/adapters/listings_api_client"
	"admin-console/internal/adapters/session"
	"admin-console/internal/core/domain"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authServer struct {
	verifyBody string
	loginCalls int
	lastBody   map[string]string
}

func (s *authServer) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		s.lastBody = map[string]string{}
		require.NoError(t, json.Unmarshal(body, &s.lastBody))

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/admin/auth/login":
			s.loginCalls++
			_, _ = io.WriteString(w, `{"message":"OTP sent"}`)
		case "/api/admin/auth/verify-otp":
			_, _ = io.WriteString(w, s.verifyBody)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func newAuthFlowForTest(t *testing.T, srv *authServer) (*AuthFlow, *session.MemoryStore, *recordingAudit) {
	t.Helper()
	httpSrv := httptest.NewServer(srv.handler(t))
	t.Cleanup(httpSrv.Close)

	store := session.NewMemoryStore()
	audit := &recordingAudit{}
	client := listings_api_client.NewClient(httpSrv.URL, store, httpSrv.Client())
	return NewAuthFlow(client, store, audit, ""), store, audit
}

func TestAuthFlow_LoginStoresToken(t *testing.T) {
	ctx := context.Background()
	srv := &authServer{verifyBody: `{"token":"abc"}`}
	flow, store, audit := newAuthFlowForTest(t, srv)

	flow.SetEmail("admin@x.com")
	require.NoError(t, flow.SendOTP(ctx))

	state := flow.Snapshot(ctx)
	assert.Equal(t, domain.AuthStepOTP, state.Step)
	assert.Equal(t, "OTP sent", state.Message)
	assert.Equal(t, "admin@x.com", srv.lastBody["email"])

	flow.SetOTP("123456")
	require.NoError(t, flow.VerifyOTP(ctx))

	assert.Equal(t, map[string]string{"email": "admin@x.com", "otp": "123456"}, srv.lastBody)
	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	state = flow.Snapshot(ctx)
	assert.Equal(t, domain.AuthStepAuthenticated, state.Step)
	assert.Empty(t, state.OTP)
	assert.Equal(t, []string{domain.ActionLogin}, audit.actions())
}

func TestAuthFlow_MissingTokenLeavesSessionUntouched(t *testing.T) {
	ctx := context.Background()
	srv := &authServer{verifyBody: `{}`}
	flow, store, audit := newAuthFlowForTest(t, srv)

	flow.SetEmail("admin@x.com")
	require.NoError(t, flow.SendOTP(ctx))
	flow.SetOTP("123456")

	err := flow.VerifyOTP(ctx)
	require.Error(t, err)

	state := flow.Snapshot(ctx)
	assert.Equal(t, "Token not received", state.Error)
	assert.Equal(t, domain.AuthStepOTP, state.Step)

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, audit.actions())
}

func TestAuthFlow_ValidatesInputsWithoutCallingBackend(t *testing.T) {
	ctx := context.Background()
	srv := &authServer{}
	flow, _, _ := newAuthFlowForTest(t, srv)

	flow.SetEmail(" a@ ")
	var valErr *domain.ValidationError
	require.ErrorAs(t, flow.SendOTP(ctx), &valErr)
	assert.Equal(t, "Email is required", valErr.Message)
	assert.Zero(t, srv.loginCalls)
	assert.False(t, flow.Snapshot(ctx).CanSend)

	flow.SetEmail("admin@x.com")
	flow.SetOTP("   ")
	require.ErrorAs(t, flow.VerifyOTP(ctx), &valErr)
	assert.Equal(t, "OTP is required", valErr.Message)

	state := flow.Snapshot(ctx)
	assert.True(t, state.CanSend)
	assert.False(t, state.CanVerify)
}

type stubAuthAPI struct {
	requestErr error
	verifyErr  error
	requestMsg string
}

func (s *stubAuthAPI) RequestOTP(ctx context.Context, email string) (*domain.OTPRequestResult, error) {
	if s.requestErr != nil {
		return nil, s.requestErr
	}
	return &domain.OTPRequestResult{Message: s.requestMsg}, nil
}

func (s *stubAuthAPI) VerifyOTP(ctx context.Context, email, otp string) (*domain.OTPVerifyResult, error) {
	if s.verifyErr != nil {
		return nil, s.verifyErr
	}
	return &domain.OTPVerifyResult{Token: "tok"}, nil
}

func TestAuthFlow_ErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"server message", domain.NewRequestError(401, "Not an admin"), "Not an admin"},
		{"transport error", errors.New("dial tcp: refused"), "Something went wrong"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			flow := NewAuthFlow(&stubAuthAPI{requestErr: tt.err}, session.NewMemoryStore(), nil, "admin@x.com")

			require.Error(t, flow.SendOTP(ctx))

			state := flow.Snapshot(ctx)
			assert.Equal(t, tt.want, state.Error)
			assert.Equal(t, domain.AuthStepEmail, state.Step)
			assert.False(t, state.IsLoading)
		})
	}
}

func TestAuthFlow_DefaultMessageWhenServerSendsNone(t *testing.T) {
	ctx := context.Background()
	flow := NewAuthFlow(&stubAuthAPI{}, session.NewMemoryStore(), nil, "admin@x.com")

	require.NoError(t, flow.SendOTP(ctx))
	assert.Equal(t, domain.MsgOTPSent, flow.Snapshot(ctx).Message)
}

func TestAuthFlow_ChangeEmailAndLogout(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	audit := &recordingAudit{}
	flow := NewAuthFlow(&stubAuthAPI{requestMsg: "Check your inbox"}, store, audit, "admin@x.com")

	require.NoError(t, flow.SendOTP(ctx))
	flow.SetOTP("1")
	flow.ChangeEmail()

	state := flow.Snapshot(ctx)
	assert.Equal(t, domain.AuthStepEmail, state.Step)
	assert.Empty(t, state.OTP)
	assert.Empty(t, state.Message)

	require.NoError(t, flow.SendOTP(ctx))
	flow.SetOTP("1")
	require.NoError(t, flow.VerifyOTP(ctx))
	authenticated, err := flow.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, authenticated)

	require.NoError(t, flow.Logout(ctx))
	authenticated, err = flow.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, authenticated)
	assert.Equal(t, domain.AuthStepEmail, flow.Snapshot(ctx).Step)
	assert.Equal(t, []string{domain.ActionLogin, domain.ActionLogout}, audit.actions())
}

func TestAuthFlow_SnapshotFollowsSessionStore(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	flow := NewAuthFlow(&stubAuthAPI{}, store, nil, "")

	require.NoError(t, store.Set(ctx, "restored"))
	assert.Equal(t, domain.AuthStepAuthenticated, flow.Snapshot(ctx).Step)

	require.NoError(t, store.Clear(ctx))
	assert.Equal(t, domain.AuthStepEmail, flow.Snapshot(ctx).Step)
}

func TestAuthFlow_AuditFailureDoesNotFailLogin(t *testing.T) {
	ctx := context.Background()
	audit := &recordingAudit{err: errors.New("broker down")}
	flow := NewAuthFlow(&stubAuthAPI{}, session.NewMemoryStore(), audit, "admin@x.com")

	require.NoError(t, flow.SendOTP(ctx))
	flow.SetOTP("42")
	require.NoError(t, flow.VerifyOTP(ctx))

	assert.Empty(t, flow.Snapshot(ctx).Error)
	assert.Equal(t, []string{domain.ActionLogin}, audit.actions())
}
