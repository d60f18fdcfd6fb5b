package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func protectedEndpoint(token string) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return AdminAuth(token)(next)
}

func TestAdminAuth_ValidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
	req.Header.Set(AdminTokenHeader, "secret")
	rec := httptest.NewRecorder()

	protectedEndpoint("secret").ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminAuth_MissingToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
	rec := httptest.NewRecorder()

	protectedEndpoint("secret").ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuth_WrongToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
	req.Header.Set(AdminTokenHeader, "wrong")
	rec := httptest.NewRecorder()

	protectedEndpoint("secret").ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuth_EmptyConfiguredTokenDisablesCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
	rec := httptest.NewRecorder()

	protectedEndpoint("").ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
