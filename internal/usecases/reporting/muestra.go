package reporting

import (
	"github.com/cajanegocio/caja-api/internal/domain"
)

// Conjunto de muestra que se sirve cuando el backend no responde dentro
// del timeout. Siempre va marcado con esMuestra para que el dashboard lo
// presente como datos de ejemplo y no como cifras reales.

var descripcionesMuestra = []string{
	"Sueldos y jornales",
	"Compra de insumos",
	"Alquiler del local",
	"Publicidad",
	"Servicios",
}

// SerieDeMuestra genera una serie de ejemplo sobre el esqueleto real del
// período pedido, así el eje del gráfico no cambia entre muestra y datos.
func SerieDeMuestra(rango *domain.RangoPeriodo) *domain.SerieCostos {
	cantidad := len(rango.Buckets)

	serie := &domain.SerieCostos{
		Periodo:      infoPeriodo(rango),
		Etiquetas:    make([]string, cantidad),
		ManoObra:     make([]float64, cantidad),
		MateriaPrima: make([]float64, cantidad),
		OtrosGastos:  make([]float64, cantidad),
		HayDatos:     true,
		EsMuestra:    true,
	}

	for i, bucket := range rango.Buckets {
		serie.Etiquetas[i] = bucket.Etiqueta
		serie.ManoObra[i] = float64(200 + 50*(i%4))
		serie.MateriaPrima[i] = float64(150 + 30*(i%5))
		serie.OtrosGastos[i] = float64(80 + 20*(i%3))
		serie.TotalGastos += serie.ManoObra[i] + serie.MateriaPrima[i] + serie.OtrosGastos[i]
	}

	return serie
}

// DistribucionDeMuestra genera una distribución de ejemplo con las cuatro
// áreas de negocio
func DistribucionDeMuestra(rango *domain.RangoPeriodo) *domain.Distribucion {
	movimientos := movimientosDeMuestra(rango)
	distribucion := AgregarDistribucion(rango, movimientos)
	distribucion.EsMuestra = true
	return distribucion
}

// RankingDeMuestra genera un ranking de ejemplo con las descripciones de
// muestra
func RankingDeMuestra(rango *domain.RangoPeriodo, opciones domain.OpcionesRanking) *domain.Ranking {
	movimientos := movimientosDeMuestra(rango)
	ranking := AgregarRanking(rango, movimientos, opciones)
	ranking.EsMuestra = true
	return ranking
}

// movimientosDeMuestra fabrica salidas deterministas dentro del rango,
// repartidas entre las áreas y los tipos de costo conocidos
func movimientosDeMuestra(rango *domain.RangoPeriodo) []*domain.Movimiento {
	categorias := []domain.Categoria{
		domain.CategoriaAdministracion,
		domain.CategoriaFinanzas,
		domain.CategoriaOperaciones,
		domain.CategoriaVentas,
	}

	movimientos := make([]*domain.Movimiento, 0, len(descripcionesMuestra)*len(categorias))
	for i, descripcion := range descripcionesMuestra {
		for j, categoria := range categorias {
			movimientos = append(movimientos, &domain.Movimiento{
				ID:          "muestra",
				Fecha:       rango.Inicio,
				Monto:       float64(100 + 75*i + 40*j),
				Tipo:        domain.MovimientoSalida,
				Descripcion: descripcion,
				Categoria:   categoria,
				TipoCosto:   domain.TiposCosto[(i+j)%len(domain.TiposCosto)],
			})
		}
	}

	return movimientos
}
