package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cajanegocio/caja-api/infrastructure/integrator/caja/cajaclient"
	"github.com/cajanegocio/caja-api/internal/domain"
	reportingmocks "github.com/cajanegocio/caja-api/internal/usecases/reporting/mocks"
	"github.com/cajanegocio/caja-api/pkg/middleware"
)

func peticionConToken(t *testing.T, url string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, url, nil)
	ctx := context.WithValue(req.Context(), middleware.ContextKeyToken, "token-1")
	return req.WithContext(ctx)
}

func TestGetSerieCostos(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		setup    func(reporter *reportingmocks.MockReporter)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "devuelve la serie del período pedido",
			url:  "/v1/graficos/costos?periodo=mes&fecha=2024-03-15",
			setup: func(reporter *reportingmocks.MockReporter) {
				referencia := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
				reporter.EXPECT().
					SerieCostos(gomock.Any(), "token-1", domain.PeriodoMes, referencia).
					Return(&domain.SerieCostos{
						Etiquetas:   []string{"1", "2"},
						TotalGastos: 300,
						HayDatos:    true,
					}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), `"totalGastos":300`)
			},
		},
		{
			name:  "período inválido responde 400",
			url:   "/v1/graficos/costos?periodo=trimestre",
			setup: func(reporter *reportingmocks.MockReporter) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, rec.Body.String(), "VAL_003")
			},
		},
		{
			name:  "fecha inválida responde 400",
			url:   "/v1/graficos/costos?fecha=15-03-2024",
			setup: func(reporter *reportingmocks.MockReporter) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
		{
			name: "token rechazado por el backend responde 401",
			url:  "/v1/graficos/costos?periodo=mes",
			setup: func(reporter *reportingmocks.MockReporter) {
				reporter.EXPECT().
					SerieCostos(gomock.Any(), "token-1", domain.PeriodoMes, gomock.Any()).
					Return(nil, cajaclient.ErrNoAutorizado)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Contains(t, rec.Body.String(), "AUTH_003")
			},
		},
		{
			name: "backend caído responde 503",
			url:  "/v1/graficos/costos?periodo=mes",
			setup: func(reporter *reportingmocks.MockReporter) {
				reporter.EXPECT().
					SerieCostos(gomock.Any(), "token-1", domain.PeriodoMes, gomock.Any()).
					Return(nil, cajaclient.ErrComunicacion)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
				assert.Contains(t, rec.Body.String(), "SRV_004")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reporter := reportingmocks.NewMockReporter(ctrl)
			tt.setup(reporter)

			rec := httptest.NewRecorder()
			GetSerieCostos(reporter).ServeHTTP(rec, peticionConToken(t, tt.url))

			tt.validate(t, rec)
		})
	}
}

func TestGetDistribucion(t *testing.T) {
	distribucion := &domain.Distribucion{
		PorCategoria: []domain.ResumenCategoria{
			{Categoria: domain.CategoriaVentas, Total: 400, Porcentaje: 100},
		},
		PorTipoCosto: []domain.ResumenTipoCosto{
			{TipoCosto: domain.CostoOtroGasto, Total: 400, Porcentaje: 100},
		},
		TotalGastos: 400,
		HayDatos:    true,
	}

	tests := []struct {
		name     string
		url      string
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "el modo por defecto proyecta la torta por área",
			url:  "/v1/graficos/distribucion?periodo=mes",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), `"modo":"categoria"`)
				assert.Contains(t, rec.Body.String(), "Ventas: $400.00 (100.0%)")
			},
		},
		{
			name: "el modo tipoCosto proyecta la torta por tipo de costo",
			url:  "/v1/graficos/distribucion?periodo=mes&modo=tipoCosto",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), `"modo":"tipoCosto"`)
				assert.Contains(t, rec.Body.String(), "Otros gastos: $400.00 (100.0%)")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reporter := reportingmocks.NewMockReporter(ctrl)
			reporter.EXPECT().
				Distribucion(gomock.Any(), "token-1", domain.PeriodoMes, gomock.Any()).
				Return(distribucion, nil)

			rec := httptest.NewRecorder()
			GetDistribucion(reporter).ServeHTTP(rec, peticionConToken(t, tt.url))

			tt.validate(t, rec)
		})
	}

	t.Run("modo inválido responde 400 sin consultar el servicio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reporter := reportingmocks.NewMockReporter(ctrl)

		rec := httptest.NewRecorder()
		GetDistribucion(reporter).ServeHTTP(rec, peticionConToken(t, "/v1/graficos/distribucion?modo=torta"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetRanking(t *testing.T) {
	t.Run("traduce los parámetros de orden y límite", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reporter := reportingmocks.NewMockReporter(ctrl)
		reporter.EXPECT().
			Ranking(gomock.Any(), "token-1", domain.PeriodoSemana, gomock.Any(), domain.OpcionesRanking{
				OrdenarPor:  domain.OrdenPorCantidad,
				Descendente: false,
				Limite:      5,
			}).
			Return(&domain.Ranking{HayDatos: true}, nil)

		rec := httptest.NewRecorder()
		url := "/v1/graficos/ranking?periodo=semana&ordenar=cantidad&direccion=asc&limite=5"
		GetRanking(reporter).ServeHTTP(rec, peticionConToken(t, url))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("límite no numérico responde 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reporter := reportingmocks.NewMockReporter(ctrl)

		rec := httptest.NewRecorder()
		GetRanking(reporter).ServeHTTP(rec, peticionConToken(t, "/v1/graficos/ranking?limite=muchos"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("criterio de orden inválido responde 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reporter := reportingmocks.NewMockReporter(ctrl)

		rec := httptest.NewRecorder()
		GetRanking(reporter).ServeHTTP(rec, peticionConToken(t, "/v1/graficos/ranking?ordenar=alfabetico"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reporter := reportingmocks.NewMockReporter(ctrl)
	reporter.EXPECT().
		Dashboard(gomock.Any(), "token-1", domain.PeriodoHoy, gomock.Any()).
		Return(&domain.Dashboard{
			Serie:      &domain.SerieCostos{HayDatos: true},
			DesdeCache: true,
		}, nil)

	rec := httptest.NewRecorder()
	GetDashboard(reporter).ServeHTTP(rec, peticionConToken(t, "/v1/graficos/dashboard?periodo=hoy"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"desdeCache":true`)
}
