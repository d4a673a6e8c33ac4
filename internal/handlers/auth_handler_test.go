package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cerealwarehouse/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockAuthService is a mock implementation of AuthService
type mockAuthService struct {
	token string
	err   error
}

func (m *mockAuthService) Register(ctx context.Context, req *models.RegisterRequest) error {
	return m.err
}

func (m *mockAuthService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.token, nil
}

func setupAuthRouter(svc AuthService) *chi.Mux {
	logger, _ := zap.NewDevelopment()
	h := NewAuthHandler(svc, logger)
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockService    *mockAuthService
		expectedStatus int
	}{
		{
			name:           "success",
			body:           `{"username":"alice","email":"alice@example.com","password":"password123"}`,
			mockService:    &mockAuthService{},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "email already taken",
			body:           `{"username":"alice","email":"alice@example.com","password":"password123"}`,
			mockService:    &mockAuthService{err: models.ErrEmailTaken},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed json",
			body:           `{not json`,
			mockService:    &mockAuthService{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupAuthRouter(tt.mockService)

			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		mockService     *mockAuthService
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:           "success",
			body:           `{"email":"alice@example.com","password":"password123"}`,
			mockService:    &mockAuthService{token: "signed.jwt.token"},
			expectedStatus: http.StatusOK,
		},
		{
			name:            "unknown email",
			body:            `{"email":"nobody@example.com","password":"password123"}`,
			mockService:     &mockAuthService{err: models.ErrUserNotFound},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: models.ErrUserNotFound.Error(),
		},
		{
			name:            "wrong password",
			body:            `{"email":"alice@example.com","password":"wrongpass"}`,
			mockService:     &mockAuthService{err: models.ErrInvalidCredentials},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: models.ErrInvalidCredentials.Error(),
		},
		{
			name:           "malformed json",
			body:           `{not json`,
			mockService:    &mockAuthService{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupAuthRouter(tt.mockService)

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedMessage != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedMessage, body["error"])
			}
		})
	}
}

func TestAuthHandler_Login_SetsCookieAndBody(t *testing.T) {
	router := setupAuthRouter(&mockAuthService{token: "signed.jwt.token"})

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"email":"alice@example.com","password":"password123"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "login successful", body["message"])
	assert.Equal(t, "signed.jwt.token", body["access_token"])

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "access_token", cookies[0].Name)
	assert.Equal(t, "signed.jwt.token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}
