package cajaclient

import (
	"context"
	"net/http"
	"time"

	"github.com/cajanegocio/caja-api/internal/config"
)

// Client es el cliente HTTP contra el backend de movimientos de caja
type Client interface {
	ListarMovimientos(ctx context.Context, token string, params MovimientosParams) (*MovimientosResponse, error)
}

type CajaClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient crea una nueva instancia del cliente de caja. El timeout del
// lado cliente es corto a propósito: ante un backend colgado el dashboard
// debe degradar a datos de muestra, no quedar girando.
func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.CajaBackend.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	return &CajaClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
