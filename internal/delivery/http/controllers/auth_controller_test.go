package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mentormatch/internal/delivery/http/helpers"
	"mentormatch/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	token string
	user  *domain.User
	err   error
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if f.err != nil {
		return "", nil, f.err
	}
	return f.token, f.user, nil
}

func TestAuthController_Login(t *testing.T) {
	tests := []struct {
		name         string
		body         map[string]any
		fake         *fakeAuthService
		wantStatus   int
		wantBodyCode string
	}{
		{
			name:       "success",
			body:       map[string]any{"email": "a@b.com", "password": "secret"},
			fake:       &fakeAuthService{token: "jwt-token", user: &domain.User{ID: "u1", Email: "a@b.com"}},
			wantStatus: http.StatusOK,
		},
		{
			name:         "missing email",
			body:         map[string]any{"password": "secret"},
			fake:         &fakeAuthService{},
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeBadRequest,
		},
		{
			name:         "missing password",
			body:         map[string]any{"email": "a@b.com"},
			fake:         &fakeAuthService{},
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeBadRequest,
		},
		{
			name:         "wrong credentials",
			body:         map[string]any{"email": "a@b.com", "password": "wrong"},
			fake:         &fakeAuthService{err: domain.ErrInvalidCredentials},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
		},
		{
			name:         "service error",
			body:         map[string]any{"email": "a@b.com", "password": "secret"},
			fake:         &fakeAuthService{err: assert.AnError},
			wantStatus:   http.StatusInternalServerError,
			wantBodyCode: helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAuthController(testControllerLogger(), tt.fake)

			raw, err := json.Marshal(tt.body)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPost, "http://test/auth/login", bytes.NewReader(raw))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.Login(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBodyCode != "" {
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantBodyCode, envelope.Error.Code)
				return
			}
			var envelope LoginSuccessResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			require.Nil(t, envelope.Error)
			assert.Equal(t, "jwt-token", envelope.Data.Token)
			require.NotNil(t, envelope.Data.User)
			assert.Equal(t, "a@b.com", envelope.Data.User.Email)
		})
	}
}
