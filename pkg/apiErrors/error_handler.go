package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de error estandarizados de la API
const (
	// Errores de autenticación (AUTH)
	ErrTokenAusente          = "AUTH_001" // Falta el token de sesión
	ErrTokenInvalido         = "AUTH_002" // Token inválido
	ErrTokenExpirado         = "AUTH_003" // Token expirado: volver a iniciar sesión
	ErrInsufficientPrivilege = "AUTH_004" // Privilegios insuficientes

	// Errores de validación (VAL)
	ErrInvalidRequest      = "VAL_001" // Petición inválida
	ErrMissingRequiredData = "VAL_002" // Datos obligatorios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de datos inválido

	// Errores del servidor (SRV)
	ErrInternalServer    = "SRV_001" // Error interno del servidor
	ErrDatabaseOperation = "SRV_002" // Error de operación de base de datos
	ErrExternalService   = "SRV_003" // Error en el backend de caja
	ErrCommunication     = "SRV_004" // Error de comunicación o timeout
)

// Mapeo de códigos de error a estados HTTP
var httpStatusMap = map[string]int{
	ErrTokenAusente:          http.StatusUnauthorized,
	ErrTokenInvalido:         http.StatusUnauthorized,
	ErrTokenExpirado:         http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError representa un error de API estandarizado
type APIError struct {
	Code    string `json:"code"`              // Código de error para el cliente
	Message string `json:"message,omitempty"` // Mensaje descriptivo (opcional)
	Details any    `json:"details,omitempty"` // Detalles adicionales (opcional)
}

// WriteError escribe el error estandarizado en la respuesta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError crea un error de API a partir de un error Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Error desconocido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
