package handler

import (
	"net/http"

	"github.com/cajanegocio/caja-api/internal/api/handler/router"
	"github.com/cajanegocio/caja-api/internal/usecases/reporting"
	"github.com/cajanegocio/caja-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Graficos expone los tres pipelines de agregación y la vista combinada
func Graficos(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/graficos/costos",
			Method:      http.MethodGet,
			Handler:     GetSerieCostos(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/graficos/distribucion",
			Method:      http.MethodGet,
			Handler:     GetDistribucion(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/graficos/ranking",
			Method:      http.MethodGet,
			Handler:     GetRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/graficos/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
