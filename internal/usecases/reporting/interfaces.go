package reporting

import (
	"context"
	"time"

	"github.com/cajanegocio/caja-api/internal/domain"
)

// Reporter es la interfaz del servicio de agregación para los gráficos
// del dashboard. Cada operación trae los movimientos del período con el
// token del solicitante y los pliega con el pipeline correspondiente.
type Reporter interface {
	// SerieCostos produce la serie temporal de gastos por tipo de costo
	SerieCostos(ctx context.Context, token string, tipo domain.TipoPeriodo, referencia time.Time) (*domain.SerieCostos, error)

	// Distribucion produce ambos rollups de la distribución de gastos
	Distribucion(ctx context.Context, token string, tipo domain.TipoPeriodo, referencia time.Time) (*domain.Distribucion, error)

	// Ranking produce la lista ordenada de gastos por descripción
	Ranking(ctx context.Context, token string, tipo domain.TipoPeriodo, referencia time.Time, opciones domain.OpcionesRanking) (*domain.Ranking, error)

	// Dashboard produce los tres pipelines para la vista combinada
	Dashboard(ctx context.Context, token string, tipo domain.TipoPeriodo, referencia time.Time) (*domain.Dashboard, error)
}
