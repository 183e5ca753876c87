package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/cajanegocio/caja-api/infrastructure/integrator/caja"
	"github.com/cajanegocio/caja-api/internal/domain"
	"github.com/cajanegocio/caja-api/internal/usecases/authenticating"
	"github.com/cajanegocio/caja-api/internal/usecases/reporting"
	"github.com/cajanegocio/caja-api/pkg/apiErrors"
	"github.com/cajanegocio/caja-api/pkg/log"
	"github.com/cajanegocio/caja-api/pkg/middleware"
	"github.com/cajanegocio/caja-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// parametrosPeriodo extrae período y fecha de referencia de la query.
// Sin fecha explícita el período es relativo a ahora: las fechas fijas
// solo aparecen cuando el cliente las pide.
func parametrosPeriodo(r *http.Request) (domain.TipoPeriodo, time.Time, error) {
	periodo, err := domain.ParseTipoPeriodo(r.URL.Query().Get("periodo"))
	if err != nil {
		return "", time.Time{}, err
	}

	referencia := time.Now()
	fecha, err := utils.ParseDate(r.URL.Query().Get("fecha"))
	if err != nil {
		return "", time.Time{}, err
	}
	if fecha != nil && !fecha.IsZero() {
		referencia = *fecha
	}

	return periodo, referencia, nil
}

// escribirErrorReporte traduce los errores del servicio de reportes a la
// taxonomía de la API: autenticación, comunicación y el resto
func escribirErrorReporte(w http.ResponseWriter, err error) {
	switch {
	case caja.EsErrorDeAutenticacion(err) || errors.Is(err, authenticating.ErrTokenExpirado):
		apiErrors.WriteError(w, apiErrors.ErrTokenExpirado, "El backend de caja rechazó la sesión, vuelva a iniciar sesión", nil)
	case caja.EsTiempoAgotado(err) || caja.EsErrorDeComunicacion(err):
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "No se pudo consultar el backend de caja, reintente", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al generar el gráfico", nil)
	}
}

// GetSerieCostos sirve la serie temporal de gastos por tipo de costo
func GetSerieCostos(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		periodo, referencia, err := parametrosPeriodo(r)
		if err != nil {
			logger.WithError(err).Warn("graficos: parámetros de período inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		serie, err := service.SerieCostos(r.Context(), middleware.TokenFromContext(r.Context()), periodo, referencia)
		if err != nil {
			logger.WithFields(log.Fields{
				"periodo": periodo,
				"error":   err.Error(),
			}).Error("graficos: error al generar la serie de costos")
			escribirErrorReporte(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(serie); err != nil {
			logger.WithError(err).Error("graficos: error al codificar la respuesta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar la respuesta", nil)
		}
	})
}

// respuestaDistribucion agrega al resultado la proyección de torta del
// modo pedido; ambos rollups viajan igual para el conmutador de vista
type respuestaDistribucion struct {
	*domain.Distribucion
	Modo  domain.ModoDistribucion `json:"modo"`
	Torta *domain.GraficoTorta    `json:"torta"`
}

// GetDistribucion sirve la distribución de gastos por área o tipo de costo
func GetDistribucion(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		periodo, referencia, err := parametrosPeriodo(r)
		if err != nil {
			logger.WithError(err).Warn("graficos: parámetros de período inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		modo, err := domain.ParseModoDistribucion(r.URL.Query().Get("modo"))
		if err != nil {
			logger.WithError(err).Warn("graficos: modo de distribución inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		distribucion, err := service.Distribucion(r.Context(), middleware.TokenFromContext(r.Context()), periodo, referencia)
		if err != nil {
			logger.WithFields(log.Fields{
				"periodo": periodo,
				"error":   err.Error(),
			}).Error("graficos: error al generar la distribución")
			escribirErrorReporte(w, err)
			return
		}

		respuesta := respuestaDistribucion{
			Distribucion: distribucion,
			Modo:         modo,
		}
		if modo == domain.ModoPorTipoCosto {
			respuesta.Torta = domain.TortaDesdeTipoCosto(distribucion.PorTipoCosto)
		} else {
			respuesta.Torta = domain.TortaDesdeCategoria(distribucion.PorCategoria)
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(respuesta); err != nil {
			logger.WithError(err).Error("graficos: error al codificar la respuesta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar la respuesta", nil)
		}
	})
}

// GetRanking sirve el ranking de gastos por descripción
func GetRanking(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		periodo, referencia, err := parametrosPeriodo(r)
		if err != nil {
			logger.WithError(err).Warn("graficos: parámetros de período inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		ordenarPor, err := domain.ParseCriterioOrden(r.URL.Query().Get("ordenar"))
		if err != nil {
			logger.WithError(err).Warn("graficos: criterio de orden inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		opciones := domain.OpcionesRanking{
			OrdenarPor:  ordenarPor,
			Descendente: r.URL.Query().Get("direccion") != "asc",
		}

		if limite := r.URL.Query().Get("limite"); limite != "" {
			n, err := strconv.Atoi(limite)
			if err != nil || n < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "límite inválido", nil)
				return
			}
			opciones.Limite = n
		}

		ranking, err := service.Ranking(r.Context(), middleware.TokenFromContext(r.Context()), periodo, referencia, opciones)
		if err != nil {
			logger.WithFields(log.Fields{
				"periodo": periodo,
				"error":   err.Error(),
			}).Error("graficos: error al generar el ranking")
			escribirErrorReporte(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ranking); err != nil {
			logger.WithError(err).Error("graficos: error al codificar la respuesta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar la respuesta", nil)
		}
	})
}

// GetDashboard sirve los tres pipelines en una sola respuesta
func GetDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		periodo, referencia, err := parametrosPeriodo(r)
		if err != nil {
			logger.WithError(err).Warn("graficos: parámetros de período inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		dashboard, err := service.Dashboard(r.Context(), middleware.TokenFromContext(r.Context()), periodo, referencia)
		if err != nil {
			logger.WithFields(log.Fields{
				"periodo": periodo,
				"error":   err.Error(),
			}).Error("graficos: error al generar el dashboard")
			escribirErrorReporte(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"periodo":     periodo,
			"desde_cache": dashboard.DesdeCache,
		}).Info("graficos: dashboard generado")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dashboard); err != nil {
			logger.WithError(err).Error("graficos: error al codificar la respuesta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar la respuesta", nil)
		}
	})
}
