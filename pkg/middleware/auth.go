package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/cajanegocio/caja-api/internal/usecases/authenticating"
	"github.com/cajanegocio/caja-api/pkg/apiErrors"
)

type contextKey string

const (
	// ContextKeyUser guarda los claims validados del solicitante
	ContextKeyUser contextKey = "user"
	// ContextKeyToken guarda el token crudo, que se reenvía tal cual al
	// backend de caja en cada consulta de movimientos
	ContextKeyToken contextKey = "token"
)

// rutasPublicas no exigen token
var rutasPublicas = map[string]bool{
	"/healthcheck": true,
}

// AuthMiddleware valida el token Bearer del proveedor de identidad y deja
// claims y token crudo en el contexto. La ausencia de token y el token
// expirado producen códigos distintos: solo el segundo pide re-login.
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rutasPublicas[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrTokenAusente, "Se requiere el encabezado Authorization", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrTokenAusente, "Se requiere un token Bearer", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				if errors.Is(err, authenticating.ErrTokenExpirado) {
					apiErrors.WriteError(w, apiErrors.ErrTokenExpirado, "Sesión expirada, vuelva a iniciar sesión", nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrTokenInvalido, "Token inválido", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			ctx = context.WithValue(ctx, ContextKeyToken, tokenString)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TokenFromContext devuelve el token crudo del solicitante
func TokenFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(ContextKeyToken).(string); ok {
		return token
	}
	return ""
}
