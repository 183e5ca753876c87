package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/cajanegocio/caja-api/internal/scheduler"
	"github.com/cajanegocio/caja-api/pkg/apiErrors"
)

// CronJobType define el tipo de tarea programada a ejecutar
const (
	CronJobTypeSnapshots = "snapshots"
	CronJobTypeAll       = "all"
)

// CronJobServices contiene los servicios de cron disponibles para disparar a mano
type CronJobServices struct {
	SnapshotSyncService *scheduler.SnapshotSyncService
}

// RunCronJob ejecuta manualmente una tarea programada específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de tarea programada no especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSnapshots, CronJobTypeAll:
			if services.SnapshotSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Servicio de instantáneas no disponible", nil)
				return
			}
			services.SnapshotSyncService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de tarea programada inválido. Valores aceptados: snapshots, all", nil)
			return
		}

		response := map[string]any{
			"message": "Tarea programada iniciada con éxito",
			"type":    cronType,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus devuelve el estado de las tareas programadas
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"snapshots": services.SnapshotSyncService.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
