package reporting

import (
	"github.com/cajanegocio/caja-api/internal/domain"
)

// AgregarSerieCostos pliega las salidas del período en el esqueleto de
// buckets, acumulando por tipo de costo. Es una función pura: no hace I/O
// ni muta sus entradas.
//
// Política documentada: un movimiento cuya fecha cae fuera del rango (por
// ejemplo por un borde de zona horaria) se descarta de la serie en
// silencio; nunca es un error.
func AgregarSerieCostos(rango *domain.RangoPeriodo, movimientos []*domain.Movimiento) *domain.SerieCostos {
	cantidad := len(rango.Buckets)

	indice := make(map[string]int, cantidad)
	etiquetas := make([]string, cantidad)
	for i, bucket := range rango.Buckets {
		indice[bucket.Etiqueta] = i
		etiquetas[i] = bucket.Etiqueta
	}

	serie := &domain.SerieCostos{
		Periodo:      infoPeriodo(rango),
		Etiquetas:    etiquetas,
		ManoObra:     make([]float64, cantidad),
		MateriaPrima: make([]float64, cantidad),
		OtrosGastos:  make([]float64, cantidad),
	}

	for _, mov := range movimientos {
		if !mov.EsSalida() {
			continue
		}

		if !rango.Contiene(mov.Fecha) {
			continue
		}

		pos, ok := indice[rango.ClaveBucket(mov.Fecha)]
		if !ok {
			continue
		}

		switch mov.TipoCosto {
		case domain.CostoManoObra:
			serie.ManoObra[pos] += mov.Monto
		case domain.CostoMateriaPrima:
			serie.MateriaPrima[pos] += mov.Monto
		default:
			serie.OtrosGastos[pos] += mov.Monto
		}

		serie.TotalGastos += mov.Monto
		serie.HayDatos = true
	}

	return serie
}

// infoPeriodo arma la cabecera de período de un resultado agregado
func infoPeriodo(rango *domain.RangoPeriodo) domain.InfoPeriodo {
	return domain.InfoPeriodo{
		Tipo:   rango.Tipo,
		Inicio: rango.Inicio,
		Fin:    rango.Fin,
	}
}
