package reporting

import (
	"sort"

	"github.com/cajanegocio/caja-api/internal/domain"
)

// AgregarRanking agrupa los movimientos por descripción exacta y produce
// la lista ordenada de líneas de gasto. La descripción es la identidad del
// grupo: dos movimientos distintos con el mismo texto cuentan como una
// sola línea. Es una simplificación asumida del producto; no se "corrige"
// cambiando la clave de agrupación.
func AgregarRanking(rango *domain.RangoPeriodo, movimientos []*domain.Movimiento, opciones domain.OpcionesRanking) *domain.Ranking {
	ranking := &domain.Ranking{Periodo: infoPeriodo(rango)}

	indice := make(map[string]int)
	for _, mov := range movimientos {
		pos, ok := indice[mov.Descripcion]
		if !ok {
			// Orden de primera aparición: es el desempate estable del sort
			pos = len(ranking.Items)
			indice[mov.Descripcion] = pos
			ranking.Items = append(ranking.Items, domain.ItemRanking{Descripcion: mov.Descripcion})
		}

		ranking.Items[pos].Total += mov.Monto
		ranking.Items[pos].Cantidad++
		ranking.Total += mov.Monto
	}

	if len(ranking.Items) == 0 {
		return ranking
	}
	ranking.HayDatos = true

	// Promedio siempre definido: todo grupo existente tiene cantidad >= 1
	for i := range ranking.Items {
		item := &ranking.Items[i]
		item.Promedio = item.Total / float64(item.Cantidad)
		item.Porcentaje = porcentaje(item.Total, ranking.Total)
	}

	ordenarRanking(ranking.Items, opciones)

	if opciones.Limite > 0 && len(ranking.Items) > opciones.Limite {
		ranking.Items = ranking.Items[:opciones.Limite]
	}

	return ranking
}

// ordenarRanking ordena in place por la clave seleccionada. El sort es
// estable: los empates conservan el orden de primera aparición.
func ordenarRanking(items []domain.ItemRanking, opciones domain.OpcionesRanking) {
	clave := func(item domain.ItemRanking) float64 {
		switch opciones.OrdenarPor {
		case domain.OrdenPorCantidad:
			return float64(item.Cantidad)
		case domain.OrdenPorPromedio:
			return item.Promedio
		default:
			return item.Total
		}
	}

	sort.SliceStable(items, func(a, b int) bool {
		if opciones.Descendente {
			return clave(items[a]) > clave(items[b])
		}
		return clave(items[a]) < clave(items[b])
	})
}
