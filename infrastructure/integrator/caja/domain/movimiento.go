package domain

import (
	"bytes"
	"strconv"
	"time"
)

// Movimiento es la forma de cable del backend de caja (base documental).
// Los nombres de campo son los que expone la API REST.
type Movimiento struct {
	ID               string        `json:"_id"`
	FechaCaja        string        `json:"fechaCaja"`
	Monto            MontoFlexible `json:"monto"`
	TipoMovimiento   string        `json:"tipoMovimiento"`
	Descripcion      string        `json:"descripcion"`
	Categoria        string        `json:"categoria"`
	TipoCosto        string        `json:"tipoCosto"`
	CategoriaIngreso string        `json:"categoriaIngreso"`
	MetodoPago       string        `json:"metodoPago"`
	Usuario          *Usuario      `json:"usuario"`
	Comprobante      string        `json:"comprobante"`
	Observaciones    string        `json:"observaciones"`
	CreatedAt        string        `json:"createdAt"`
	UpdatedAt        string        `json:"updatedAt"`
}

// Usuario es la referencia de cable al autor del movimiento
type Usuario struct {
	ID     string `json:"_id"`
	Nombre string `json:"name"`
	Email  string `json:"email"`
}

// MontoFlexible decodifica el monto tolerando datos malformados: acepta
// números, cadenas numéricas y null; cualquier otra cosa vale 0. Un monto
// inválido nunca aborta la decodificación del lote completo.
type MontoFlexible float64

// UnmarshalJSON implementa json.Unmarshaler
func (m *MontoFlexible) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}

	// Cadena numérica: "123.45"
	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			*m = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*m = 0
			return nil
		}
		*m = MontoFlexible(v)
		return nil
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*m = 0
		return nil
	}

	*m = MontoFlexible(v)
	return nil
}

// Fecha interpreta fechaCaja como fecha ISO, con o sin hora
func (mov *Movimiento) Fecha() (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, mov.FechaCaja); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", mov.FechaCaja)
}

// Pagina es la envoltura paginada que devuelve el backend
type Pagina struct {
	Movimientos []Movimiento `json:"movimientos"`
	Total       int          `json:"total"`
	Page        int          `json:"page"`
	TotalPages  int          `json:"totalPages"`
}

// Respuesta es el sobre estándar de la API de caja
type Respuesta struct {
	Success bool                   `json:"success"`
	Data    Pagina                 `json:"data"`
	Resumen map[string]interface{} `json:"resumen,omitempty"`
	Message string                 `json:"message,omitempty"`
}
