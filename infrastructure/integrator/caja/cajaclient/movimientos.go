package cajaclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/pkg/errors"

	cajadomain "github.com/cajanegocio/caja-api/infrastructure/integrator/caja/domain"
)

// Errores de la capa de transporte hacia el backend de caja. El que llama
// decide la política: autenticación nunca se reintenta, comunicación es
// reintentable a mano, tiempo agotado habilita el fallback de muestra.
var (
	ErrNoAutorizado  = errors.New("el backend de caja rechazó el token")
	ErrTiempoAgotado = errors.New("tiempo de espera agotado consultando el backend de caja")
	ErrComunicacion  = errors.New("error de comunicación con el backend de caja")
)

// MovimientosParams son los parámetros de consulta del contrato de fetch
type MovimientosParams struct {
	TipoMovimiento string
	FechaInicio    time.Time
	FechaFin       time.Time
	Busqueda       string
	Pagina         int
	Limite         int
}

// MovimientosResponse es una página de movimientos tal como la devuelve
// el backend
type MovimientosResponse struct {
	Movimientos []cajadomain.Movimiento
	Total       int
	Pagina      int
	TotalPages  int
}

// ListarMovimientos ejecuta un GET de movimientos con el token del
// solicitante. Es a lo sumo una invocación por consulta: acá no hay
// reintentos automáticos.
func (c *CajaClient) ListarMovimientos(ctx context.Context, token string, params MovimientosParams) (*MovimientosResponse, error) {
	endpoint, err := url.Parse(c.config.CajaBackend.URL)
	if err != nil {
		return nil, errors.Wrap(err, "error al analizar la URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, "/movimientos")

	// Parámetros de consulta del contrato: dirección, rango, búsqueda y
	// paginación
	query := endpoint.Query()
	if params.TipoMovimiento != "" {
		query.Set("tipoMovimiento", params.TipoMovimiento)
	}
	query.Set("dateStart", params.FechaInicio.Format(time.DateOnly))
	query.Set("dateFin", params.FechaFin.Format(time.DateOnly))
	if params.Busqueda != "" {
		query.Set("search", params.Busqueda)
	}
	query.Set("page", strconv.Itoa(params.Pagina))
	query.Set("limit", strconv.Itoa(params.Limite))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "error al crear la petición")
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || esTimeout(err) {
			return nil, errors.Wrap(ErrTiempoAgotado, err.Error())
		}
		return nil, errors.Wrap(ErrComunicacion, err.Error())
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrNoAutorizado
	case resp.StatusCode != http.StatusOK:
		return nil, errors.Wrapf(ErrComunicacion, "la petición falló con estado %s", resp.Status)
	}

	var respuesta cajadomain.Respuesta
	if err := json.NewDecoder(resp.Body).Decode(&respuesta); err != nil {
		return nil, errors.Wrap(ErrComunicacion, "error al decodificar la respuesta")
	}

	if !respuesta.Success {
		return nil, errors.Wrapf(ErrComunicacion, "el backend reportó un fallo: %s", respuesta.Message)
	}

	return &MovimientosResponse{
		Movimientos: respuesta.Data.Movimientos,
		Total:       respuesta.Data.Total,
		Pagina:      respuesta.Data.Page,
		TotalPages:  respuesta.Data.TotalPages,
	}, nil
}

// esTimeout reconoce timeouts del cliente HTTP que no se reportan como
// context.DeadlineExceeded
func esTimeout(err error) bool {
	type timeout interface{ Timeout() bool }

	for err != nil {
		if t, ok := err.(timeout); ok && t.Timeout() {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}
