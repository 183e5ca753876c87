package domain

import "github.com/golang-jwt/jwt/v5"

// Roles reconocidos en el token del proveedor de identidad
const (
	RolAdmin    = "admin"
	RolEmpleado = "empleado"
)

// Claims son los datos de sesión emitidos por el proveedor de identidad
type Claims struct {
	UsuarioID string `json:"sub"`
	Nombre    string `json:"name"`
	Email     string `json:"email"`
	Rol       string `json:"rol"`
	jwt.RegisteredClaims
}
