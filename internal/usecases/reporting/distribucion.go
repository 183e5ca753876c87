package reporting

import (
	"github.com/cajanegocio/caja-api/internal/domain"
	"github.com/cajanegocio/caja-api/pkg/utils"
)

// acumulador junta total, cantidad y el desglose por descripción de un
// bucket de la distribución
type acumulador struct {
	total      float64
	cantidad   int
	orden      []string
	porDetalle map[string]*acumulador
}

func nuevoAcumulador() *acumulador {
	return &acumulador{porDetalle: make(map[string]*acumulador)}
}

func (a *acumulador) sumar(mov *domain.Movimiento) {
	a.total += mov.Monto
	a.cantidad++

	if a.porDetalle == nil {
		return
	}

	detalle, ok := a.porDetalle[mov.Descripcion]
	if !ok {
		// El desglose no anida más: sin mapa de detalle propio
		detalle = &acumulador{}
		a.porDetalle[mov.Descripcion] = detalle
		a.orden = append(a.orden, mov.Descripcion)
	}
	detalle.total += mov.Monto
	detalle.cantidad++
}

// detalles materializa el desglose por descripción en el orden de primera
// aparición, con porcentajes relativos al total del padre
func (a *acumulador) detalles() []domain.DetalleGasto {
	if len(a.orden) == 0 {
		return nil
	}

	resultado := make([]domain.DetalleGasto, 0, len(a.orden))
	for _, descripcion := range a.orden {
		detalle := a.porDetalle[descripcion]
		resultado = append(resultado, domain.DetalleGasto{
			Descripcion: descripcion,
			Total:       detalle.total,
			Cantidad:    detalle.cantidad,
			Porcentaje:  porcentaje(detalle.total, a.total),
		})
	}
	return resultado
}

// AgregarDistribucion calcula en una sola pasada los dos rollups de la
// distribución de gastos: por área de negocio (con el rollup por tipo de
// costo anidado adentro) y el rollup plano por tipo de costo. Cada nivel
// lleva su desglose por descripción. Función pura, como el resto de los
// pipelines.
func AgregarDistribucion(rango *domain.RangoPeriodo, movimientos []*domain.Movimiento) *domain.Distribucion {
	porCategoria := make(map[domain.Categoria]*acumulador)
	porTipo := make(map[domain.TipoCosto]*acumulador)
	anidado := make(map[domain.Categoria]map[domain.TipoCosto]*acumulador)

	distribucion := &domain.Distribucion{Periodo: infoPeriodo(rango)}

	for _, mov := range movimientos {
		if !mov.EsSalida() {
			continue
		}

		acumCategoria, ok := porCategoria[mov.Categoria]
		if !ok {
			acumCategoria = nuevoAcumulador()
			porCategoria[mov.Categoria] = acumCategoria
			anidado[mov.Categoria] = make(map[domain.TipoCosto]*acumulador)
		}
		acumCategoria.sumar(mov)

		acumAnidado, ok := anidado[mov.Categoria][mov.TipoCosto]
		if !ok {
			acumAnidado = nuevoAcumulador()
			anidado[mov.Categoria][mov.TipoCosto] = acumAnidado
		}
		acumAnidado.sumar(mov)

		acumTipo, ok := porTipo[mov.TipoCosto]
		if !ok {
			acumTipo = nuevoAcumulador()
			porTipo[mov.TipoCosto] = acumTipo
		}
		acumTipo.sumar(mov)

		distribucion.TotalGastos += mov.Monto
		distribucion.HayDatos = true
	}

	// Materializar en el orden canónico de los enums, omitiendo buckets
	// vacíos: un padre sin movimientos no aporta porciones
	for _, categoria := range domain.Categorias {
		acumCategoria, ok := porCategoria[categoria]
		if !ok {
			continue
		}

		resumen := domain.ResumenCategoria{
			Categoria:  categoria,
			Total:      acumCategoria.total,
			Cantidad:   acumCategoria.cantidad,
			Porcentaje: porcentaje(acumCategoria.total, distribucion.TotalGastos),
			Detalles:   acumCategoria.detalles(),
		}

		for _, tipo := range domain.TiposCosto {
			acumAnidado, ok := anidado[categoria][tipo]
			if !ok {
				continue
			}
			resumen.PorTipoCosto = append(resumen.PorTipoCosto, domain.ResumenTipoCosto{
				TipoCosto:  tipo,
				Total:      acumAnidado.total,
				Cantidad:   acumAnidado.cantidad,
				Porcentaje: porcentaje(acumAnidado.total, acumCategoria.total),
				Detalles:   acumAnidado.detalles(),
			})
		}

		distribucion.PorCategoria = append(distribucion.PorCategoria, resumen)
	}

	for _, tipo := range domain.TiposCosto {
		acumTipo, ok := porTipo[tipo]
		if !ok {
			continue
		}
		distribucion.PorTipoCosto = append(distribucion.PorTipoCosto, domain.ResumenTipoCosto{
			TipoCosto:  tipo,
			Total:      acumTipo.total,
			Cantidad:   acumTipo.cantidad,
			Porcentaje: porcentaje(acumTipo.total, distribucion.TotalGastos),
			Detalles:   acumTipo.detalles(),
		})
	}

	return distribucion
}

// porcentaje devuelve la proporción de parte sobre total como porcentaje.
// Con total 0 el porcentaje queda definido en 0, nunca NaN ni división
// por cero.
func porcentaje(parte, total float64) float64 {
	if total == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(parte / total * 100)
}
