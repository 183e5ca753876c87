package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cajanegocio/caja-api/infrastructure/database/postgres"
	"github.com/cajanegocio/caja-api/infrastructure/integrator/caja"
	"github.com/cajanegocio/caja-api/infrastructure/integrator/caja/cajaclient"
	"github.com/cajanegocio/caja-api/infrastructure/repository"
	"github.com/cajanegocio/caja-api/internal/api"
	"github.com/cajanegocio/caja-api/internal/config"
	"github.com/cajanegocio/caja-api/internal/scheduler"
	"github.com/cajanegocio/caja-api/internal/usecases/authenticating"
	"github.com/cajanegocio/caja-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nivel de log inválido: %s, se usa 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nivel de log configurado en: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	resumenRepo := repository.NewResumenGraficoRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	cajaClient := cajaclient.NewClient(cfg)
	cajaIntegrator := caja.New(cfg, cajaClient)

	// Servicio de reportes con cache de instantáneas como respaldo
	reporter := reporting.NewService(cfg, cajaIntegrator)
	cachedReporter := reporter.(*reporting.Service).WithCache(resumenRepo)

	snapshotSyncService := scheduler.NewSnapshotSyncService(
		resumenRepo,
		cachedReporter,
		cfg,
	)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el agendador de instantáneas del dashboard")
	} else {
		logrus.Info("Agendador de instantáneas del dashboard iniciado con éxito")
	}

	server, err := api.New(
		cfg,
		cachedReporter,
		authenticator,
		snapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura el formato y el comportamiento de los logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn crea la conexión con la base de datos
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error al conectar con PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error al probar la conexión con PostgreSQL")
	}

	logrus.Info("Conexión con PostgreSQL establecida con éxito")
	return conn
}
