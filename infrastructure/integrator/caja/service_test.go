package caja

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cajanegocio/caja-api/infrastructure/integrator/caja/cajaclient"
	clientmocks "github.com/cajanegocio/caja-api/infrastructure/integrator/caja/cajaclient/mocks"
	cajadomain "github.com/cajanegocio/caja-api/infrastructure/integrator/caja/domain"
	"github.com/cajanegocio/caja-api/internal/config"
	"github.com/cajanegocio/caja-api/internal/domain"
)

func filtroDeMarzo() domain.FiltroMovimientos {
	salida := domain.MovimientoSalida
	return domain.FiltroMovimientos{
		Tipo:  &salida,
		Desde: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Hasta: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestListarMovimientos_Normalizacion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clientmocks.NewMockClient(ctrl)
	client.EXPECT().
		ListarMovimientos(gomock.Any(), "token-1", gomock.Any()).
		Return(&cajaclient.MovimientosResponse{
			Movimientos: []cajadomain.Movimiento{
				{
					ID:             "m1",
					FechaCaja:      "2024-03-05T10:30:00Z",
					Monto:          cajadomain.MontoFlexible(120.5),
					TipoMovimiento: "salida",
					Descripcion:    "Sueldos",
					Categoria:      "administracion",
					TipoCosto:      "mano_obra",
					Usuario:        &cajadomain.Usuario{ID: "u1", Nombre: "Ana", Email: "ana@caja.com"},
				},
				{
					ID:               "m2",
					FechaCaja:        "2024-03-06",
					Monto:            cajadomain.MontoFlexible(999),
					TipoMovimiento:   "entrada",
					Descripcion:      "Venta mostrador",
					CategoriaIngreso: "ventas_diarias",
				},
				{
					ID:             "m3",
					FechaCaja:      "fecha-rota",
					Monto:          cajadomain.MontoFlexible(0),
					TipoMovimiento: "salida",
					Descripcion:    "Sin fecha",
					Categoria:      "zzz",
					TipoCosto:      "zzz",
				},
			},
			Total:      3,
			Pagina:     1,
			TotalPages: 1,
		}, nil)

	integrador := New(&config.Config{}, client)

	movimientos, err := integrador.ListarMovimientos(context.Background(), "token-1", filtroDeMarzo())
	require.NoError(t, err)
	require.Len(t, movimientos, 3)

	salida := movimientos[0]
	assert.Equal(t, "m1", salida.ID)
	assert.Equal(t, time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC), salida.Fecha)
	assert.Equal(t, 120.5, salida.Monto)
	assert.Equal(t, domain.MovimientoSalida, salida.Tipo)
	assert.Equal(t, domain.CategoriaAdministracion, salida.Categoria)
	assert.Equal(t, domain.CostoManoObra, salida.TipoCosto)
	require.NotNil(t, salida.Usuario)
	assert.Equal(t, "Ana", salida.Usuario.Nombre)

	// Las entradas no llevan área de negocio ni tipo de costo
	entrada := movimientos[1]
	assert.Equal(t, domain.MovimientoEntrada, entrada.Tipo)
	assert.Empty(t, entrada.Categoria)
	assert.Empty(t, entrada.TipoCosto)
	assert.Equal(t, "ventas_diarias", entrada.CategoriaIngreso)

	// Fecha inválida degrada a fecha cero, el registro se conserva
	rota := movimientos[2]
	assert.True(t, rota.Fecha.IsZero())
	assert.Equal(t, domain.CategoriaOtros, rota.Categoria)
	assert.Equal(t, domain.CostoOtroGasto, rota.TipoCosto)
}

func TestListarMovimientos_Paginacion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clientmocks.NewMockClient(ctrl)

	pagina := func(n int, id string) *cajaclient.MovimientosResponse {
		return &cajaclient.MovimientosResponse{
			Movimientos: []cajadomain.Movimiento{
				{ID: id, FechaCaja: "2024-03-05", TipoMovimiento: "salida"},
			},
			Total:      2,
			Pagina:     n,
			TotalPages: 2,
		}
	}

	gomock.InOrder(
		client.EXPECT().
			ListarMovimientos(gomock.Any(), "token-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, params cajaclient.MovimientosParams) (*cajaclient.MovimientosResponse, error) {
				assert.Equal(t, 1, params.Pagina)
				assert.Equal(t, "salida", params.TipoMovimiento)
				return pagina(1, "m1"), nil
			}),
		client.EXPECT().
			ListarMovimientos(gomock.Any(), "token-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, params cajaclient.MovimientosParams) (*cajaclient.MovimientosResponse, error) {
				assert.Equal(t, 2, params.Pagina)
				return pagina(2, "m2"), nil
			}),
	)

	integrador := New(&config.Config{}, client)

	movimientos, err := integrador.ListarMovimientos(context.Background(), "token-1", filtroDeMarzo())
	require.NoError(t, err)
	require.Len(t, movimientos, 2)
	assert.Equal(t, "m1", movimientos[0].ID)
	assert.Equal(t, "m2", movimientos[1].ID)
}

func TestListarMovimientos_PaginaPuntualNoSiguePaginando(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clientmocks.NewMockClient(ctrl)
	client.EXPECT().
		ListarMovimientos(gomock.Any(), "token-1", gomock.Any()).
		Return(&cajaclient.MovimientosResponse{
			Movimientos: []cajadomain.Movimiento{{ID: "m5", FechaCaja: "2024-03-05", TipoMovimiento: "salida"}},
			TotalPages:  10,
		}, nil).
		Times(1)

	filtro := filtroDeMarzo()
	filtro.Pagina = 5

	integrador := New(&config.Config{}, client)

	movimientos, err := integrador.ListarMovimientos(context.Background(), "token-1", filtro)
	require.NoError(t, err)
	assert.Len(t, movimientos, 1)
}

func TestListarMovimientos_ErroresDelCliente(t *testing.T) {
	tests := []struct {
		name       string
		clienteErr error
		check      func(err error) bool
	}{
		{name: "token rechazado", clienteErr: cajaclient.ErrNoAutorizado, check: EsErrorDeAutenticacion},
		{name: "tiempo agotado", clienteErr: cajaclient.ErrTiempoAgotado, check: EsTiempoAgotado},
		{name: "error de comunicación", clienteErr: cajaclient.ErrComunicacion, check: EsErrorDeComunicacion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := clientmocks.NewMockClient(ctrl)
			client.EXPECT().
				ListarMovimientos(gomock.Any(), "token-1", gomock.Any()).
				Return(nil, tt.clienteErr)

			integrador := New(&config.Config{}, client)

			_, err := integrador.ListarMovimientos(context.Background(), "token-1", filtroDeMarzo())
			require.Error(t, err)
			assert.True(t, tt.check(err))
		})
	}
}
