package caja

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/cajanegocio/caja-api/infrastructure/integrator/caja/cajaclient"
	cajadomain "github.com/cajanegocio/caja-api/infrastructure/integrator/caja/domain"
	"github.com/cajanegocio/caja-api/internal/config"
	"github.com/cajanegocio/caja-api/internal/domain"
)

// limitePagina es el tamaño de página pedido al backend al traer el rango
// completo. paginasMaximas corta consultas desbocadas si el backend
// informa un totalPages absurdo.
const (
	limitePagina   = 500
	paginasMaximas = 50
)

// MovementsIntegrator obtiene movimientos normalizados del backend de caja
type MovementsIntegrator interface {
	// ListarMovimientos trae todas las páginas que cubren el filtro y
	// devuelve los registros ya normalizados
	ListarMovimientos(ctx context.Context, token string, filtro domain.FiltroMovimientos) ([]*domain.Movimiento, error)
}

type CajaIntegrator struct {
	config *config.Config
	client cajaclient.Client
}

// New crea el integrador del backend de caja
func New(cfg *config.Config, client cajaclient.Client) MovementsIntegrator {
	return &CajaIntegrator{
		config: cfg,
		client: client,
	}
}

// ListarMovimientos pagina sobre el backend hasta cubrir el filtro. No hay
// fetch incremental: cada consulta trae el conjunto completo del rango.
func (i *CajaIntegrator) ListarMovimientos(ctx context.Context, token string, filtro domain.FiltroMovimientos) ([]*domain.Movimiento, error) {
	params := cajaclient.MovimientosParams{
		FechaInicio: filtro.Desde,
		FechaFin:    filtro.Hasta,
		Busqueda:    filtro.Busqueda,
		Pagina:      1,
		Limite:      limitePagina,
	}
	if filtro.Tipo != nil {
		params.TipoMovimiento = string(*filtro.Tipo)
	}
	if filtro.Pagina > 0 {
		params.Pagina = filtro.Pagina
	}
	if filtro.Limite > 0 {
		params.Limite = filtro.Limite
	}

	var movimientos []*domain.Movimiento

	for pagina := params.Pagina; pagina <= paginasMaximas; pagina++ {
		params.Pagina = pagina

		respuesta, err := i.client.ListarMovimientos(ctx, token, params)
		if err != nil {
			return nil, errors.Wrapf(err, "error al listar movimientos (página %d)", pagina)
		}

		for idx := range respuesta.Movimientos {
			movimientos = append(movimientos, normalizarMovimiento(&respuesta.Movimientos[idx]))
		}

		// Si el que llama pidió una página puntual, no seguimos paginando
		if filtro.Pagina > 0 || pagina >= respuesta.TotalPages {
			break
		}
	}

	return movimientos, nil
}

// normalizarMovimiento convierte el registro de cable al modelo interno.
// Esta es la única frontera de ingestión: acá se normalizan tipo de costo
// y categoría, y un registro malformado degrada a contribución cero en
// lugar de rechazarse.
func normalizarMovimiento(mov *cajadomain.Movimiento) *domain.Movimiento {
	fecha, err := mov.Fecha()
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"movimiento_id": mov.ID,
			"fecha_caja":    mov.FechaCaja,
		}).Warn("Movimiento con fecha inválida, se conserva con fecha cero")
	}

	normalizado := &domain.Movimiento{
		ID:               mov.ID,
		Fecha:            fecha,
		Monto:            float64(mov.Monto),
		Tipo:             domain.TipoMovimiento(mov.TipoMovimiento),
		Descripcion:      mov.Descripcion,
		CategoriaIngreso: mov.CategoriaIngreso,
		MetodoPago:       mov.MetodoPago,
		Comprobante:      mov.Comprobante,
		Observaciones:    mov.Observaciones,
	}

	// Los esquemas de categoría son mutuamente excluyentes: solo las
	// salidas llevan área de negocio y tipo de costo
	if normalizado.Tipo == domain.MovimientoSalida {
		normalizado.Categoria = domain.NormalizeCategoria(mov.Categoria)
		normalizado.TipoCosto = domain.NormalizeTipoCosto(mov.TipoCosto)
	}

	if mov.Usuario != nil {
		normalizado.Usuario = &domain.Usuario{
			ID:     mov.Usuario.ID,
			Nombre: mov.Usuario.Nombre,
			Email:  mov.Usuario.Email,
		}
	}

	return normalizado
}

// EsErrorDeAutenticacion indica si el error vino de un token rechazado
func EsErrorDeAutenticacion(err error) bool {
	return errors.Is(err, cajaclient.ErrNoAutorizado)
}

// EsErrorDeComunicacion indica si el error es de red o del backend
func EsErrorDeComunicacion(err error) bool {
	return errors.Is(err, cajaclient.ErrComunicacion)
}

// EsTiempoAgotado indica si la consulta superó el timeout del cliente
func EsTiempoAgotado(err error) bool {
	return errors.Is(err, cajaclient.ErrTiempoAgotado)
}
