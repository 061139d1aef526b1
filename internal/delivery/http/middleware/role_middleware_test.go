package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-vaccination-clinic/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func requestWithRole(role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), RoleKey, role)
	return req.WithContext(ctx)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(entity.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(entity.RoleStaff))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(entity.RolePatient))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdminOrStaff(t *testing.T) {
	handler := RequireAdminOrStaff(okHandler())

	for _, role := range []string{entity.RoleAdmin, entity.RoleStaff} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestWithRole(role))
		assert.Equal(t, http.StatusOK, rec.Code, "role %s", role)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(entity.RolePatient))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireStaff(t *testing.T) {
	handler := RequireStaff(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(entity.RoleStaff))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(entity.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_MissingRole(t *testing.T) {
	handler := RequirePatient(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
