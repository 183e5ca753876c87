package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/cajanegocio/caja-api/infrastructure/repository"
	"github.com/cajanegocio/caja-api/internal/config"
	"github.com/cajanegocio/caja-api/internal/domain"
	"github.com/cajanegocio/caja-api/internal/usecases/reporting"
	"github.com/cajanegocio/caja-api/pkg/utils"
)

// SnapshotSyncConfig es la configuración del agendador de instantáneas
type SnapshotSyncConfig struct {
	CronSchedule  string
	RetentionDays int
	SyncEnabled   bool
}

// SnapshotSyncService precalcula las instantáneas del dashboard para cada
// período y las persiste como cache caliente. Corre con el token de la
// cuenta de servicio, nunca con tokens de usuarios.
type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              SnapshotSyncConfig
	appConfig           *config.Config
	resumenRepo         repository.ResumenGraficoRepository
	reporter            reporting.Reporter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewSnapshotSyncService crea el servicio de sincronización de instantáneas
func NewSnapshotSyncService(
	resumenRepo repository.ResumenGraficoRepository,
	reporter reporting.Reporter,
	appConfig *config.Config,
) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule:  appConfig.SnapshotSync.CronSchedule,
		RetentionDays: appConfig.SnapshotSync.RetentionDays,
		SyncEnabled:   appConfig.SnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"retention_days": syncConfig.RetentionDays,
		"sync_enabled":   syncConfig.SyncEnabled,
	}).Info("Configuración del agendador de instantáneas cargada")

	return &SnapshotSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		appConfig:   appConfig,
		resumenRepo: resumenRepo,
		reporter:    reporter,
		syncRunning: false,
	}
}

// Start inicia el agendador
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronización de instantáneas deshabilitada por configuración")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de instantáneas del dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllSnapshots()
	})
	if err != nil {
		return fmt.Errorf("error al agendar la sincronización de instantáneas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de instantáneas del dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllSnapshots precalcula la instantánea de cada período de reporte
func (s *SnapshotSyncService) syncAllSnapshots() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronización de instantáneas ya en curso, se ignora")
		return
	}
	startTime := time.Now()
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	if s.appConfig.CajaBackend.ServiceToken == "" {
		logrus.Warn("Sin token de cuenta de servicio: no se pueden precalcular instantáneas")
		return
	}

	logrus.Info("Iniciando precálculo de instantáneas del dashboard")

	referencia := time.Now()
	periodos := []domain.TipoPeriodo{
		domain.PeriodoHoy,
		domain.PeriodoSemana,
		domain.PeriodoMes,
		domain.PeriodoAnio,
	}

	guardadas := 0
	for _, periodo := range periodos {
		if err := s.procesarPeriodo(periodo, referencia); err != nil {
			logrus.WithError(err).WithField("periodo", periodo).Error("Error al precalcular la instantánea del período")
			continue
		}
		guardadas++
	}

	if s.config.RetentionDays > 0 {
		borradas, err := s.resumenRepo.DeleteOlderThan(s.config.RetentionDays)
		if err != nil {
			logrus.WithError(err).Error("Error al depurar instantáneas viejas")
		} else if borradas > 0 {
			logrus.WithField("borradas", borradas).Info("Instantáneas viejas depuradas")
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"guardadas": guardadas,
		"periodos":  len(periodos),
	}).Info("Precálculo de instantáneas del dashboard terminado")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// procesarPeriodo genera y persiste la instantánea de un período
func (s *SnapshotSyncService) procesarPeriodo(periodo domain.TipoPeriodo, referencia time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dashboard, err := s.reporter.Dashboard(ctx, s.appConfig.CajaBackend.ServiceToken, periodo, referencia)
	if err != nil {
		return fmt.Errorf("error al generar el dashboard del período %s: %w", periodo, err)
	}

	// Una corrida degradada a muestra o servida desde cache no pisa una
	// instantánea real
	if dashboard.Serie != nil && (dashboard.Serie.EsMuestra || dashboard.Serie.DesdeCache) {
		return fmt.Errorf("el dashboard del período %s degradó a datos de muestra o de cache, no se persiste", periodo)
	}

	resumen := &domain.ResumenGrafico{
		Periodo:   periodo,
		Fecha:     referencia,
		Dashboard: dashboard,
	}

	if err := s.resumenRepo.SaveOrUpdate(resumen); err != nil {
		return fmt.Errorf("error al guardar la instantánea del período %s: %w", periodo, err)
	}

	logrus.WithFields(logrus.Fields{
		"periodo": periodo,
		"fecha":   referencia.Format(time.DateOnly),
	}).Debug("Instantánea del dashboard guardada")

	return nil
}

// TriggerManualSync dispara una corrida manual en segundo plano
func (s *SnapshotSyncService) TriggerManualSync() {
	go s.syncAllSnapshots()
}

// GetStatus informa el estado del agendador para el endpoint de cron
func (s *SnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"enabled":       s.config.SyncEnabled,
		"cron_schedule": s.config.CronSchedule,
		"running":       s.syncRunning,
	}

	if !s.lastSyncStartedAt.IsZero() {
		status["last_sync_started_at"] = s.lastSyncStartedAt.Format(time.RFC3339)
	}
	if !s.lastSyncCompletedAt.IsZero() {
		status["last_sync_completed_at"] = s.lastSyncCompletedAt.Format(time.RFC3339)
	}

	logrus.Debug("Estado del agendador de instantáneas: ", utils.PrettyJson(status))

	return status
}
