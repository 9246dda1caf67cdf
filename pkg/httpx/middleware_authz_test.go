package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atelierlivre/biblio/pkg/httpx"
	"github.com/stretchr/testify/assert"
)

func TestPrincipalHasRole(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		check string
		want  bool
	}{
		{"plain user lacks admin", []string{"ROLE_USER"}, "ROLE_ADMIN", false},
		{"admin has admin", []string{"ROLE_USER", "ROLE_ADMIN"}, "ROLE_ADMIN", true},
		{"exact match only", []string{"ROLE_ADMIN"}, "ROLE_USER", false},
		{"empty roles", nil, "ROLE_USER", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := httpx.Principal{Roles: tt.roles}
			assert.Equal(t, tt.want, p.HasRole(tt.check))
		})
	}
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("no principal", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/books/1", nil)

		httpx.RequireRole("ROLE_ADMIN")(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Authentication required", decodeError(t, rec))
	})

	t.Run("missing role", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/books/1", nil)
		ctx := httpx.ContextWithPrincipal(req.Context(), httpx.Principal{UUID: "bob", Roles: []string{"ROLE_USER"}})

		httpx.RequireRole("ROLE_ADMIN")(next).ServeHTTP(rec, req.WithContext(ctx))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Accès refusé", decodeError(t, rec))
	})

	t.Run("role present", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/books/1", nil)
		ctx := httpx.ContextWithPrincipal(req.Context(), httpx.Principal{UUID: "admin", Roles: []string{"ROLE_USER", "ROLE_ADMIN"}})

		httpx.RequireRole("ROLE_ADMIN")(next).ServeHTTP(rec, req.WithContext(ctx))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
