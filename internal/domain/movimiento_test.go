package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTipoCosto(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected TipoCosto
	}{
		{name: "mano_obra con guión bajo", raw: "mano_obra", expected: CostoManoObra},
		{name: "mano de obra con espacios", raw: "Mano de Obra", expected: CostoManoObra},
		{name: "manoobra pegado", raw: "manoobra", expected: CostoManoObra},
		{name: "laboral como sinónimo", raw: "laboral", expected: CostoManoObra},
		{name: "materia_prima con guión bajo", raw: "materia_prima", expected: CostoMateriaPrima},
		{name: "materias primas en plural", raw: "Materias Primas", expected: CostoMateriaPrima},
		{name: "insumos como sinónimo", raw: "insumos", expected: CostoMateriaPrima},
		{name: "valor vacío cae en otros", raw: "", expected: CostoOtroGasto},
		{name: "valor no reconocido cae en otros", raw: "xyz", expected: CostoOtroGasto},
		{name: "otro_gasto explícito", raw: "otro_gasto", expected: CostoOtroGasto},
		{name: "espacios alrededor se ignoran", raw: "  mano de obra  ", expected: CostoManoObra},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeTipoCosto(tt.raw))
		})
	}
}

func TestNormalizeCategoria(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Categoria
	}{
		{name: "administración con acento", raw: "Administración", expected: CategoriaAdministracion},
		{name: "administracion sin acento", raw: "administracion", expected: CategoriaAdministracion},
		{name: "finanzas en minúsculas", raw: "finanzas", expected: CategoriaFinanzas},
		{name: "operaciones", raw: "Operaciones", expected: CategoriaOperaciones},
		{name: "produccion mapea a operaciones", raw: "produccion", expected: CategoriaOperaciones},
		{name: "ventas", raw: "ventas", expected: CategoriaVentas},
		{name: "comercial mapea a ventas", raw: "comercial", expected: CategoriaVentas},
		{name: "valor vacío cae en otros", raw: "", expected: CategoriaOtros},
		{name: "valor no reconocido cae en otros", raw: "marketing digital", expected: CategoriaOtros},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeCategoria(tt.raw))
		})
	}
}

func TestEsSalida(t *testing.T) {
	salida := &Movimiento{Tipo: MovimientoSalida}
	entrada := &Movimiento{Tipo: MovimientoEntrada}

	assert.True(t, salida.EsSalida())
	assert.False(t, entrada.EsSalida())
}
