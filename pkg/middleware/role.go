package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/cajanegocio/caja-api/internal/domain"
	"github.com/cajanegocio/caja-api/pkg/apiErrors"
)

// RoleMiddleware restringe el acceso según el rol que viene en los claims
// del proveedor de identidad
func RoleMiddleware(allowedRoles []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)

			if !ok {
				logrus.Warning("Intento de acceso sin autenticación")
				apiErrors.WriteError(w, apiErrors.ErrTokenInvalido, "Usuario no autenticado", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.Rol == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Acceso denegado para usuario %s con rol %q", userClaims.UsuarioID, userClaims.Rol)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "No tiene permiso para acceder a este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly permite el acceso solo a administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RolAdmin})
}

// AllRoles permite el acceso a cualquier usuario autenticado con rol
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RolAdmin, domain.RolEmpleado})
}
