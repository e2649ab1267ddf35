package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momozvault/go-backend/internal/usecase"
	"github.com/momozvault/go-backend/pkg/e"
	"github.com/momozvault/go-backend/pkg/logger"
)

type mockAuthUC struct {
	LoginFunc       func(ctx context.Context, email, password string) (*usecase.LoginRes, error)
	VerifyTokenFunc func(token string) (*usecase.TokenClaims, error)
}

func (m *mockAuthUC) Login(ctx context.Context, email, password string) (*usecase.LoginRes, error) {
	return m.LoginFunc(ctx, email, password)
}

func (m *mockAuthUC) VerifyToken(token string) (*usecase.TokenClaims, error) {
	return m.VerifyTokenFunc(token)
}

func TestAdminOnly_PassesClaimsToHandler(t *testing.T) {
	authUC := &mockAuthUC{
		VerifyTokenFunc: func(token string) (*usecase.TokenClaims, error) {
			require.Equal(t, "good-token", token)
			return &usecase.TokenClaims{Email: "admin@momozvault.com", Role: "admin"}, nil
		},
	}

	var seenEmail string
	handler := AdminOnly(authUC, logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenEmail = adminEmail(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "admin@momozvault.com", seenEmail)
}

func TestAdminOnly_MissingToken(t *testing.T) {
	authUC := &mockAuthUC{
		VerifyTokenFunc: func(token string) (*usecase.TokenClaims, error) {
			t.Fatal("token must not be verified without a bearer header")
			return nil, nil
		},
	}

	called := false
	handler := AdminOnly(authUC, logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAdminOnly_InvalidToken(t *testing.T) {
	authUC := &mockAuthUC{
		VerifyTokenFunc: func(token string) (*usecase.TokenClaims, error) {
			return nil, e.ErrInvalidToken
		},
	}

	called := false
	handler := AdminOnly(authUC, logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAdminClaims_OutsideAdminGroup(t *testing.T) {
	assert.Nil(t, AdminClaims(context.Background()))
	assert.Empty(t, adminEmail(context.Background()))
}
