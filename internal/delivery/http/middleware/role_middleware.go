package middleware

import (
	"net/http"

	"go-vaccination-clinic/internal/domain/entity"
	"go-vaccination-clinic/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the
// required roles. Role is read from context (set by AuthMiddleware from JWT
// claims); a violation is rejected before any handler runs.
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequirePatient is a convenience middleware for patient-only endpoints
func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(entity.RolePatient)(next)
}

// RequireStaff is a convenience middleware for staff-only endpoints
func RequireStaff(next http.Handler) http.Handler {
	return RequireRole(entity.RoleStaff)(next)
}

// RequireAdminOrStaff is a convenience middleware for clinic-side endpoints
func RequireAdminOrStaff(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin, entity.RoleStaff)(next)
}
