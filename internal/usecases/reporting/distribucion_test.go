package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cajanegocio/caja-api/internal/domain"
)

func gasto(categoria domain.Categoria, tipoCosto domain.TipoCosto, descripcion string, monto float64) *domain.Movimiento {
	return &domain.Movimiento{
		Fecha:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Monto:       monto,
		Tipo:        domain.MovimientoSalida,
		Descripcion: descripcion,
		Categoria:   categoria,
		TipoCosto:   tipoCosto,
	}
}

func TestAgregarDistribucion(t *testing.T) {
	rango, err := domain.NuevoRangoPeriodo(domain.PeriodoMes, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	t.Run("sin movimientos el total es cero y los porcentajes están definidos", func(t *testing.T) {
		distribucion := AgregarDistribucion(rango, nil)

		assert.False(t, distribucion.HayDatos)
		assert.Equal(t, 0.0, distribucion.TotalGastos)
		assert.Empty(t, distribucion.PorCategoria)
		assert.Empty(t, distribucion.PorTipoCosto)
	})

	t.Run("todos los montos en cero producen porcentaje cero, nunca NaN", func(t *testing.T) {
		movimientos := []*domain.Movimiento{
			gasto(domain.CategoriaVentas, domain.CostoOtroGasto, "Publicidad", 0),
			gasto(domain.CategoriaVentas, domain.CostoOtroGasto, "Folletos", 0),
		}

		distribucion := AgregarDistribucion(rango, movimientos)

		require.Len(t, distribucion.PorCategoria, 1)
		assert.Equal(t, 0.0, distribucion.PorCategoria[0].Porcentaje)
		require.Len(t, distribucion.PorCategoria[0].Detalles, 2)
		for _, detalle := range distribucion.PorCategoria[0].Detalles {
			assert.Equal(t, 0.0, detalle.Porcentaje)
		}
		// El registro con monto 0 igual cuenta en la cantidad
		assert.Equal(t, 2, distribucion.PorCategoria[0].Cantidad)
	})

	t.Run("ambos rollups salen de la misma pasada y cierran al mismo total", func(t *testing.T) {
		movimientos := []*domain.Movimiento{
			gasto(domain.CategoriaOperaciones, domain.CostoManoObra, "Sueldos", 600),
			gasto(domain.CategoriaOperaciones, domain.CostoMateriaPrima, "Harina", 250),
			gasto(domain.CategoriaVentas, domain.CostoOtroGasto, "Publicidad", 150),
		}

		distribucion := AgregarDistribucion(rango, movimientos)

		assert.True(t, distribucion.HayDatos)
		assert.Equal(t, 1000.0, distribucion.TotalGastos)

		var totalCategorias, totalTipos float64
		for _, resumen := range distribucion.PorCategoria {
			totalCategorias += resumen.Total
		}
		for _, resumen := range distribucion.PorTipoCosto {
			totalTipos += resumen.Total
		}
		assert.Equal(t, distribucion.TotalGastos, totalCategorias)
		assert.Equal(t, distribucion.TotalGastos, totalTipos)
	})

	t.Run("los porcentajes de cada nivel suman aproximadamente cien", func(t *testing.T) {
		movimientos := []*domain.Movimiento{
			gasto(domain.CategoriaAdministracion, domain.CostoOtroGasto, "Papelería", 333),
			gasto(domain.CategoriaFinanzas, domain.CostoOtroGasto, "Comisiones", 333),
			gasto(domain.CategoriaVentas, domain.CostoOtroGasto, "Publicidad", 334),
		}

		distribucion := AgregarDistribucion(rango, movimientos)

		var suma float64
		for _, resumen := range distribucion.PorCategoria {
			suma += resumen.Porcentaje
		}
		assert.InDelta(t, 100.0, suma, 0.1)
	})

	t.Run("el rollup anidado es relativo al total de su área", func(t *testing.T) {
		movimientos := []*domain.Movimiento{
			gasto(domain.CategoriaOperaciones, domain.CostoManoObra, "Sueldos", 300),
			gasto(domain.CategoriaOperaciones, domain.CostoMateriaPrima, "Harina", 100),
			gasto(domain.CategoriaVentas, domain.CostoOtroGasto, "Publicidad", 600),
		}

		distribucion := AgregarDistribucion(rango, movimientos)

		require.Len(t, distribucion.PorCategoria, 2)
		operaciones := distribucion.PorCategoria[0]
		assert.Equal(t, domain.CategoriaOperaciones, operaciones.Categoria)
		assert.Equal(t, 40.0, operaciones.Porcentaje) // 400 de 1000

		require.Len(t, operaciones.PorTipoCosto, 2)
		assert.Equal(t, domain.CostoManoObra, operaciones.PorTipoCosto[0].TipoCosto)
		assert.Equal(t, 75.0, operaciones.PorTipoCosto[0].Porcentaje) // 300 de 400
		assert.Equal(t, 25.0, operaciones.PorTipoCosto[1].Porcentaje) // 100 de 400
	})

	t.Run("las áreas se presentan en el orden canónico omitiendo las vacías", func(t *testing.T) {
		movimientos := []*domain.Movimiento{
			gasto(domain.CategoriaVentas, domain.CostoOtroGasto, "Publicidad", 10),
			gasto(domain.CategoriaAdministracion, domain.CostoOtroGasto, "Papelería", 10),
			gasto(domain.CategoriaOtros, domain.CostoOtroGasto, "Varios", 10),
		}

		distribucion := AgregarDistribucion(rango, movimientos)

		require.Len(t, distribucion.PorCategoria, 3)
		assert.Equal(t, domain.CategoriaAdministracion, distribucion.PorCategoria[0].Categoria)
		assert.Equal(t, domain.CategoriaVentas, distribucion.PorCategoria[1].Categoria)
		assert.Equal(t, domain.CategoriaOtros, distribucion.PorCategoria[2].Categoria)
	})

	t.Run("las entradas no participan de la distribución", func(t *testing.T) {
		movimientos := []*domain.Movimiento{
			gasto(domain.CategoriaVentas, domain.CostoOtroGasto, "Publicidad", 100),
			{Tipo: domain.MovimientoEntrada, Monto: 999, Descripcion: "Venta mostrador"},
		}

		distribucion := AgregarDistribucion(rango, movimientos)

		assert.Equal(t, 100.0, distribucion.TotalGastos)
		require.Len(t, distribucion.PorCategoria, 1)
	})
}

func TestTortaDesdeDistribucion(t *testing.T) {
	rango, err := domain.NuevoRangoPeriodo(domain.PeriodoMes, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	movimientos := []*domain.Movimiento{
		gasto(domain.CategoriaOperaciones, domain.CostoManoObra, "Sueldos", 750),
		gasto(domain.CategoriaVentas, domain.CostoOtroGasto, "Publicidad", 250),
	}

	distribucion := AgregarDistribucion(rango, movimientos)

	torta := domain.TortaDesdeCategoria(distribucion.PorCategoria)
	require.NotNil(t, torta)
	assert.Equal(t, []string{"Operaciones", "Ventas"}, torta.Etiquetas)
	assert.Equal(t, []float64{750, 250}, torta.Valores)
	require.Len(t, torta.Tooltips, 2)
	assert.Equal(t, "Operaciones: $750.00 (75.0%)", torta.Tooltips[0])

	tortaTipos := domain.TortaDesdeTipoCosto(distribucion.PorTipoCosto)
	require.NotNil(t, tortaTipos)
	assert.Equal(t, []string{"Mano de obra", "Otros gastos"}, tortaTipos.Etiquetas)
}
