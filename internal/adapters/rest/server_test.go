package rest

import (
	"admin-console/internal/adapters/listings_api_client"
	"admin-console/internal/adapters/session"
	"admin-console/internal/contextkeys"
	"admin-console/internal/core/usecase"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFakeBackend - минимальный бэкенд объявлений для проверки маршрутов консоли
func newFakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	reply := func(w http.ResponseWriter, status int, body string) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}

	mux.HandleFunc("POST /api/admin/auth/login", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, `{"message":"OTP sent"}`)
	})
	mux.HandleFunc("POST /api/admin/auth/verify-otp", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, `{"token":"abc"}`)
	})
	mux.HandleFunc("GET /api/properties", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, `[{"_id":"p1","title":"Villa","price":12345},{"_id":"p2","title":"Plot"}]`)
	})
	mux.HandleFunc("DELETE /api/properties/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") == "p1" {
			reply(w, http.StatusOK, `{"message":"Deleted"}`)
			return
		}
		reply(w, http.StatusNotFound, `{"message":"Property not found"}`)
	})
	mux.HandleFunc("GET /api/users/search", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, `{"items":[{"_id":"u1","name":"Ravi","isBlocked":false}],"meta":{"page":1,"pages":1,"total":1}}`)
	})
	mux.HandleFunc("PATCH /api/users/{id}/block", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, `{"_id":"`+r.PathValue("id")+`","name":"Ravi","isBlocked":true}`)
	})
	mux.HandleFunc("POST /api/upload/images", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		var parts []string
		for _, fh := range r.MultipartForm.File["files"] {
			parts = append(parts, `{"url":"https://cdn/`+fh.Filename+`"}`)
		}
		reply(w, http.StatusOK, `{"files":[`+strings.Join(parts, ",")+`]}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

type consoleFixture struct {
	handler http.Handler
	store   *session.MemoryStore
}

func newConsole(t *testing.T) *consoleFixture {
	t.Helper()
	backend := newFakeBackend(t)
	store := session.NewMemoryStore()
	client := listings_api_client.NewClient(backend.URL, store, backend.Client())

	handlers := NewConsoleHandlers(Screens{
		Auth:       usecase.NewAuthFlow(client, store, nil, ""),
		Dashboard:  usecase.NewDashboard(client),
		Properties: usecase.NewPropertiesScreen(client, nil),
		Form:       usecase.NewPropertyForm(client, client, nil),
		Featured:   usecase.NewFeaturedScreen(client, nil),
		Queries:    usecase.NewQueriesScreen(client),
		Ratings:    usecase.NewRatingsScreen(client),
		Users:      usecase.NewUsersScreen(client, nil),
	})
	return &consoleFixture{
		handler: NewRouter([]string{"http://localhost:5173"}, handlers, store, contextkeys.NoopLogger()),
		store:   store,
	}
}

func (f *consoleFixture) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	decoded := map[string]any{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), rec.Body.String())
	}
	return rec, decoded
}

func (f *consoleFixture) login(t *testing.T) {
	t.Helper()
	require.NoError(t, f.store.Set(context.Background(), "abc"))
}

func TestConsole_ScreensRequireSession(t *testing.T) {
	console := newConsole(t)

	for _, path := range []string{"/api/console/dashboard", "/api/console/properties", "/api/console/users"} {
		rec, body := console.do(t, http.MethodGet, path, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Equal(t, "not authenticated", body["error"])
	}
}

func TestConsole_LoginFlow(t *testing.T) {
	console := newConsole(t)

	rec, body := console.do(t, http.MethodPost, "/api/console/auth/otp", `{"email":"admin@x.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "otp", body["step"])
	assert.Equal(t, "OTP sent", body["message"])

	rec, body = console.do(t, http.MethodPost, "/api/console/auth/verify", `{"otp":"123456"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "authenticated", body["step"])

	token, err := console.store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	rec, _ = console.do(t, http.MethodGet, "/api/console/properties", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, body = console.do(t, http.MethodPost, "/api/console/auth/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "email", body["step"])

	rec, _ = console.do(t, http.MethodGet, "/api/console/properties", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestConsole_LoginValidation(t *testing.T) {
	console := newConsole(t)

	rec, body := console.do(t, http.MethodPost, "/api/console/auth/otp", `{"email":"a@"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email is required", body["error"])

	rec, body = console.do(t, http.MethodPost, "/api/console/auth/otp", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "Invalid request body")
}

func TestConsole_PropertiesListHasPriceLabels(t *testing.T) {
	console := newConsole(t)
	console.login(t)

	rec, body := console.do(t, http.MethodGet, "/api/console/properties", "")
	require.Equal(t, http.StatusOK, rec.Code)

	items := body["items"].([]any)
	require.Len(t, items, 2)
	first := items[0].(map[string]any)
	assert.Equal(t, "p1", first["id"])
	assert.Equal(t, "12,345", first["priceLabel"])
	assert.Equal(t, "-", items[1].(map[string]any)["priceLabel"])
	assert.Equal(t, false, body["canNext"])
}

func TestConsole_DeleteProperty(t *testing.T) {
	console := newConsole(t)
	console.login(t)
	console.do(t, http.MethodGet, "/api/console/properties", "")

	rec, body := console.do(t, http.MethodDelete, "/api/console/properties/p1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["items"], 1)

	rec, body = console.do(t, http.MethodDelete, "/api/console/properties/p2x", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Property not found", body["error"])
	state := body["state"].(map[string]any)
	assert.Equal(t, "Property not found", state["error"])
	assert.Len(t, state["items"], 1)
}

func TestConsole_PageRequestValidation(t *testing.T) {
	console := newConsole(t)
	console.login(t)

	rec, _ := console.do(t, http.MethodPost, "/api/console/queries/page", `{"direction":"sideways"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = console.do(t, http.MethodPost, "/api/console/queries/page", `{"page":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConsole_DashboardRejectsBadDays(t *testing.T) {
	console := newConsole(t)
	console.login(t)

	rec, _ := console.do(t, http.MethodGet, "/api/console/dashboard?days=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body := console.do(t, http.MethodGet, "/api/console/dashboard?days=14", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "days must be one of")
}

func TestConsole_UserBlockToggle(t *testing.T) {
	console := newConsole(t)
	console.login(t)

	rec, _ := console.do(t, http.MethodGet, "/api/console/users", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = console.do(t, http.MethodPut, "/api/console/users/u1/blocked", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body := console.do(t, http.MethodPut, "/api/console/users/u1/blocked", `{"isBlocked":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	user := body["items"].([]any)[0].(map[string]any)
	assert.Equal(t, true, user["isBlocked"])

	rec, body = console.do(t, http.MethodGet, "/api/console/users/u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", body["selected"].(map[string]any)["id"])

	rec, _ = console.do(t, http.MethodGet, "/api/console/users/ghost", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestConsole_UploadImagesPassthrough(t *testing.T) {
	console := newConsole(t)
	console.login(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, name := range []string{"a.jpg", "b.jpg"} {
		part, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write([]byte("image-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/console/uploads/images", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	console.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp UploadImagesResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"https://cdn/a.jpg", "https://cdn/b.jpg"}, resp.URLs)
	assert.Equal(t, resp.URLs, resp.State.Values.Images)
}

func TestConsole_TraceIDHeader(t *testing.T) {
	console := newConsole(t)

	req := httptest.NewRequest(http.MethodGet, "/api/console/auth", nil)
	req.Header.Set("X-Trace-ID", "trace-123")
	rec := httptest.NewRecorder()
	console.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "trace-123", rec.Header().Get("X-Trace-ID"))
}

func TestConsole_UploadRejectsOversizedBody(t *testing.T) {
	console := newConsole(t)
	console.login(t)

	prev := maxUploadBytes
	maxUploadBytes = 1 << 10
	t.Cleanup(func() { maxUploadBytes = prev })

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "tour.mp4")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("v"), 4<<10))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	for _, path := range []string{"/api/console/uploads/video", "/api/console/uploads/images"} {
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf.Bytes()))
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rec := httptest.NewRecorder()
		console.handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code, path)
	}

	// запрос без Content-Length режется ограничителем при чтении
	req := httptest.NewRequest(http.MethodPost, "/api/console/uploads/video", io.NopCloser(bytes.NewReader(buf.Bytes())))
	req.ContentLength = -1
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	console.handler.ServeHTTP(rec, req)
	assert.Contains(t, []int{http.StatusRequestEntityTooLarge, http.StatusBadRequest}, rec.Code)
}
