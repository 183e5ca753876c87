package authenticating

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cajanegocio/caja-api/internal/config"
	"github.com/cajanegocio/caja-api/internal/domain"
)

// Authenticator valida los tokens emitidos por el proveedor de identidad.
// Este servicio no emite credenciales ni guarda usuarios: la identidad es
// responsabilidad del proveedor externo.
type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
	}
}

// ValidateToken verifica firma y vigencia del token HS256 del proveedor
// de identidad y devuelve los claims de sesión
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if tokenString == "" {
		return nil, ErrTokenAusente
	}

	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalido
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpirado
		}
		return nil, ErrTokenInvalido
	}

	if !token.Valid {
		return nil, ErrTokenInvalido
	}

	return claims, nil
}
