package domain

import (
	"fmt"
	"time"
)

// CriterioOrden es la clave de orden seleccionable del ranking de gastos
type CriterioOrden string

const (
	OrdenPorTotal    CriterioOrden = "total"
	OrdenPorCantidad CriterioOrden = "cantidad"
	OrdenPorPromedio CriterioOrden = "promedio"
)

// ParseCriterioOrden valida el parámetro de orden recibido por la API
func ParseCriterioOrden(raw string) (CriterioOrden, error) {
	switch CriterioOrden(raw) {
	case OrdenPorTotal, OrdenPorCantidad, OrdenPorPromedio:
		return CriterioOrden(raw), nil
	case "":
		return OrdenPorTotal, nil
	default:
		return "", fmt.Errorf("criterio de orden inválido: %q", raw)
	}
}

// ModoDistribucion selecciona qué rollup de la distribución se presenta.
// Ambos rollups se calculan siempre; el modo solo elige cuál se grafica.
type ModoDistribucion string

const (
	ModoPorCategoria ModoDistribucion = "categoria"
	ModoPorTipoCosto ModoDistribucion = "tipoCosto"
)

// ParseModoDistribucion valida el parámetro de modo recibido por la API
func ParseModoDistribucion(raw string) (ModoDistribucion, error) {
	switch ModoDistribucion(raw) {
	case ModoPorCategoria, ModoPorTipoCosto:
		return ModoDistribucion(raw), nil
	case "":
		return ModoPorCategoria, nil
	default:
		return "", fmt.Errorf("modo de distribución inválido: %q", raw)
	}
}

// InfoPeriodo describe el rango efectivamente agregado, para la cabecera
// de cada gráfico
type InfoPeriodo struct {
	Tipo   TipoPeriodo `json:"tipo"`
	Inicio time.Time   `json:"inicio"`
	Fin    time.Time   `json:"fin"`
}

// SerieCostos es la serie temporal de gastos por tipo de costo: una
// etiqueta por bucket y un arreglo numérico paralelo por cada tipo.
type SerieCostos struct {
	Periodo      InfoPeriodo `json:"periodo"`
	Etiquetas    []string    `json:"etiquetas"`
	ManoObra     []float64   `json:"manoObra"`
	MateriaPrima []float64   `json:"materiaPrima"`
	OtrosGastos  []float64   `json:"otrosGastos"`
	TotalGastos  float64     `json:"totalGastos"`
	HayDatos     bool        `json:"hayDatos"`
	EsMuestra    bool        `json:"esMuestra"`
	DesdeCache   bool        `json:"desdeCache"`
}

// DetalleGasto es una línea de gasto agrupada por descripción dentro de un
// bucket de la distribución. Porcentaje es relativo al total del padre.
type DetalleGasto struct {
	Descripcion string  `json:"descripcion"`
	Total       float64 `json:"total"`
	Cantidad    int     `json:"cantidad"`
	Porcentaje  float64 `json:"porcentaje"`
}

// ResumenTipoCosto es el rollup de un tipo de costo, con sus líneas de
// detalle por descripción
type ResumenTipoCosto struct {
	TipoCosto  TipoCosto      `json:"tipoCosto"`
	Total      float64        `json:"total"`
	Cantidad   int            `json:"cantidad"`
	Porcentaje float64        `json:"porcentaje"`
	Detalles   []DetalleGasto `json:"detalles"`
}

// ResumenCategoria es el rollup de un área de negocio, con el rollup
// anidado por tipo de costo y sus líneas de detalle por descripción
type ResumenCategoria struct {
	Categoria    Categoria          `json:"categoria"`
	Total        float64            `json:"total"`
	Cantidad     int                `json:"cantidad"`
	Porcentaje   float64            `json:"porcentaje"`
	PorTipoCosto []ResumenTipoCosto `json:"porTipoCosto"`
	Detalles     []DetalleGasto     `json:"detalles"`
}

// Distribucion es el resultado del pipeline de distribución: ambos rollups
// (por categoría y por tipo de costo) calculados en una sola pasada.
type Distribucion struct {
	Periodo      InfoPeriodo        `json:"periodo"`
	PorCategoria []ResumenCategoria `json:"porCategoria"`
	PorTipoCosto []ResumenTipoCosto `json:"porTipoCosto"`
	TotalGastos  float64            `json:"totalGastos"`
	HayDatos     bool               `json:"hayDatos"`
	EsMuestra    bool               `json:"esMuestra"`
	DesdeCache   bool               `json:"desdeCache"`
}

// ItemRanking es una línea del ranking de gastos por descripción
type ItemRanking struct {
	Descripcion string  `json:"descripcion"`
	Total       float64 `json:"total"`
	Cantidad    int     `json:"cantidad"`
	Promedio    float64 `json:"promedio"`
	Porcentaje  float64 `json:"porcentaje"`
}

// Ranking es el resultado del pipeline de ranking por descripción
type Ranking struct {
	Periodo    InfoPeriodo   `json:"periodo"`
	Items      []ItemRanking `json:"items"`
	Total      float64       `json:"total"`
	HayDatos   bool          `json:"hayDatos"`
	EsMuestra  bool          `json:"esMuestra"`
	DesdeCache bool          `json:"desdeCache"`
}

// OpcionesRanking configura el orden y el recorte del ranking.
// Limite 0 significa sin límite.
type OpcionesRanking struct {
	OrdenarPor  CriterioOrden
	Descendente bool
	Limite      int
}

// Dashboard agrupa los tres pipelines para la vista combinada. Cada
// pipeline es dueño de su propio conjunto de datos.
type Dashboard struct {
	Periodo      InfoPeriodo   `json:"periodo"`
	Serie        *SerieCostos  `json:"serie"`
	Distribucion *Distribucion `json:"distribucion"`
	Ranking      *Ranking      `json:"ranking"`
	DesdeCache   bool          `json:"desdeCache"`
	GeneradoEn   time.Time     `json:"generadoEn"`
}

// GraficoTorta es la estructura que consume la librería de gráficos:
// etiquetas más arreglos numéricos paralelos y un tooltip por porción.
type GraficoTorta struct {
	Etiquetas   []string  `json:"etiquetas"`
	Valores     []float64 `json:"valores"`
	Porcentajes []float64 `json:"porcentajes"`
	Tooltips    []string  `json:"tooltips"`
}

// TortaDesdeCategoria proyecta el rollup por categoría al formato de torta
func TortaDesdeCategoria(resumenes []ResumenCategoria) *GraficoTorta {
	torta := &GraficoTorta{}
	for _, r := range resumenes {
		torta.Etiquetas = append(torta.Etiquetas, string(r.Categoria))
		torta.Valores = append(torta.Valores, r.Total)
		torta.Porcentajes = append(torta.Porcentajes, r.Porcentaje)
		torta.Tooltips = append(torta.Tooltips, FormatearTooltip(string(r.Categoria), r.Total, r.Porcentaje))
	}
	return torta
}

// TortaDesdeTipoCosto proyecta el rollup por tipo de costo al formato de torta
func TortaDesdeTipoCosto(resumenes []ResumenTipoCosto) *GraficoTorta {
	torta := &GraficoTorta{}
	for _, r := range resumenes {
		torta.Etiquetas = append(torta.Etiquetas, string(r.TipoCosto))
		torta.Valores = append(torta.Valores, r.Total)
		torta.Porcentajes = append(torta.Porcentajes, r.Porcentaje)
		torta.Tooltips = append(torta.Tooltips, FormatearTooltip(string(r.TipoCosto), r.Total, r.Porcentaje))
	}
	return torta
}

// FormatearTooltip arma el texto legible de una porción o punto del gráfico
func FormatearTooltip(etiqueta string, monto, porcentaje float64) string {
	return fmt.Sprintf("%s: $%.2f (%.1f%%)", etiqueta, monto, porcentaje)
}
