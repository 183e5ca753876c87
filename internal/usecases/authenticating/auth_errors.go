package authenticating

import "errors"

// Errores de validación de sesión. Token expirado y token inválido se
// distinguen a propósito: el primero pide volver a iniciar sesión, el
// segundo es una petición malformada u hostil.
var (
	ErrTokenAusente  = errors.New("falta el token de sesión")
	ErrTokenInvalido = errors.New("token de sesión inválido")
	ErrTokenExpirado = errors.New("token de sesión expirado")
)
