package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cajanegocio/caja-api/internal/config"
	"github.com/cajanegocio/caja-api/internal/domain"
)

const secretoDePrueba = "secreto-de-prueba"

func tokenFirmado(t *testing.T, secreto string, metodo jwt.SigningMethod, claims jwt.Claims) string {
	t.Helper()

	token := jwt.NewWithClaims(metodo, claims)
	firmado, err := token.SignedString([]byte(secreto))
	require.NoError(t, err)
	return firmado
}

func TestValidateToken(t *testing.T) {
	service := NewService(&config.Config{
		Auth: config.Auth{Secret: secretoDePrueba},
	})

	claimsVigentes := &domain.Claims{
		UsuarioID: "u1",
		Nombre:    "Ana",
		Email:     "ana@caja.com",
		Rol:       domain.RolAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	t.Run("token válido devuelve los claims", func(t *testing.T) {
		tokenString := tokenFirmado(t, secretoDePrueba, jwt.SigningMethodHS256, claimsVigentes)

		claims, err := service.ValidateToken(tokenString)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.UsuarioID)
		assert.Equal(t, domain.RolAdmin, claims.Rol)
	})

	t.Run("token vacío", func(t *testing.T) {
		_, err := service.ValidateToken("")
		assert.ErrorIs(t, err, ErrTokenAusente)
	})

	t.Run("firma con otro secreto", func(t *testing.T) {
		tokenString := tokenFirmado(t, "otro-secreto", jwt.SigningMethodHS256, claimsVigentes)

		_, err := service.ValidateToken(tokenString)
		assert.ErrorIs(t, err, ErrTokenInvalido)
	})

	t.Run("token expirado se distingue del inválido", func(t *testing.T) {
		claimsVencidos := &domain.Claims{
			UsuarioID: "u1",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		tokenString := tokenFirmado(t, secretoDePrueba, jwt.SigningMethodHS256, claimsVencidos)

		_, err := service.ValidateToken(tokenString)
		assert.ErrorIs(t, err, ErrTokenExpirado)
	})

	t.Run("basura no es un token", func(t *testing.T) {
		_, err := service.ValidateToken("no.soy.jwt")
		assert.ErrorIs(t, err, ErrTokenInvalido)
	})
}
