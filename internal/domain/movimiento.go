package domain

import (
	"strings"
	"time"
)

// TipoMovimiento indica la dirección de un movimiento de caja
type TipoMovimiento string

const (
	MovimientoEntrada TipoMovimiento = "entrada"
	MovimientoSalida  TipoMovimiento = "salida"
)

// TipoCosto es la sub-clasificación de un gasto (salida)
type TipoCosto string

const (
	CostoManoObra     TipoCosto = "Mano de obra"
	CostoMateriaPrima TipoCosto = "Materia prima"
	CostoOtroGasto    TipoCosto = "Otros gastos"
)

// TiposCosto lista los tipos de costo en el orden canónico de presentación
var TiposCosto = []TipoCosto{CostoManoObra, CostoMateriaPrima, CostoOtroGasto}

// Categoria es el área de negocio a la que se imputa un movimiento
type Categoria string

const (
	CategoriaAdministracion Categoria = "Administración"
	CategoriaFinanzas       Categoria = "Finanzas"
	CategoriaOperaciones    Categoria = "Operaciones"
	CategoriaVentas         Categoria = "Ventas"
	CategoriaOtros          Categoria = "Otros"
)

// Categorias lista las áreas de negocio en el orden canónico de presentación.
// CategoriaOtros recoge valores no reconocidos y se muestra al final.
var Categorias = []Categoria{
	CategoriaAdministracion,
	CategoriaFinanzas,
	CategoriaOperaciones,
	CategoriaVentas,
	CategoriaOtros,
}

// Movimiento es el registro normalizado de una entrada o salida de dinero.
// Monto siempre es un número válido: los valores malformados del backend
// se normalizan a 0 en la frontera de ingestión, pero el registro se
// conserva para que cuente en las cantidades.
type Movimiento struct {
	ID               string
	Fecha            time.Time
	Monto            float64
	Tipo             TipoMovimiento
	Descripcion      string
	Categoria        Categoria
	TipoCosto        TipoCosto
	CategoriaIngreso string
	MetodoPago       string
	Usuario          *Usuario
	Comprobante      string
	Observaciones    string
}

// Usuario es la referencia (solo para mostrar) al autor del movimiento
type Usuario struct {
	ID     string `json:"_id"`
	Nombre string `json:"name"`
	Email  string `json:"email"`
}

// FiltroMovimientos son las restricciones de consulta hacia el backend de caja
type FiltroMovimientos struct {
	Tipo     *TipoMovimiento
	Desde    time.Time
	Hasta    time.Time
	Busqueda string
	Pagina   int
	Limite   int
}

// EsSalida indica si el movimiento es un gasto
func (m *Movimiento) EsSalida() bool {
	return m.Tipo == MovimientoSalida
}

// normalizarClave reduce un valor crudo a una clave comparable:
// minúsculas, sin espacios, guiones ni guiones bajos, sin acentos comunes.
func normalizarClave(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	replacer := strings.NewReplacer(
		" ", "", "_", "", "-", "",
		"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n",
	)
	return replacer.Replace(s)
}

// NormalizeTipoCosto mapea el valor crudo del backend a un TipoCosto
// conocido. Valores vacíos o no reconocidos caen en Otros gastos.
// Esta es la única frontera donde se interpreta el campo tipoCosto.
func NormalizeTipoCosto(raw string) TipoCosto {
	switch normalizarClave(raw) {
	case "manoobra", "manodeobra", "laboral":
		return CostoManoObra
	case "materiaprima", "materiasprimas", "insumos":
		return CostoMateriaPrima
	default:
		return CostoOtroGasto
	}
}

// NormalizeCategoria mapea el valor crudo del backend a una Categoria
// conocida. Valores vacíos o no reconocidos caen en Otros.
func NormalizeCategoria(raw string) Categoria {
	switch normalizarClave(raw) {
	case "administracion", "administrativo", "administrativa", "admin":
		return CategoriaAdministracion
	case "finanzas", "financiera", "financiero":
		return CategoriaFinanzas
	case "operaciones", "operativa", "operativo", "produccion":
		return CategoriaOperaciones
	case "ventas", "comercial":
		return CategoriaVentas
	default:
		return CategoriaOtros
	}
}
