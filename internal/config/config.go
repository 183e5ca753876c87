package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	CajaBackend  CajaBackend  `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// CajaBackend es la configuración del backend REST de movimientos
type CajaBackend struct {
	URL string `mapstructure:"caja_backend_url"`
	// ServiceToken es el token de cuenta de servicio que usa el
	// precálculo de instantáneas; las consultas de usuarios siempre van
	// con el token del solicitante
	ServiceToken   string `mapstructure:"caja_backend_service_token"`
	TimeoutSeconds int    `mapstructure:"caja_backend_timeout_seconds"`
}

// Auth guarda el secreto compartido con el proveedor de identidad
type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// SnapshotSync configura el agendador de instantáneas del dashboard
type SnapshotSync struct {
	CronSchedule  string `mapstructure:"snapshot_sync_cron"`
	Enabled       bool   `mapstructure:"snapshot_sync_enabled"`
	RetentionDays int    `mapstructure:"snapshot_sync_retention_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/caja")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("CAJA_BACKEND_URL", "http://localhost:4000/api/caja")
	viper.SetDefault("CAJA_BACKEND_SERVICE_TOKEN", "")
	// Timeout corto: frente a un backend colgado el dashboard degrada a
	// datos de muestra en lugar de girar indefinidamente
	viper.SetDefault("CAJA_BACKEND_TIMEOUT_SECONDS", 3)

	viper.SetDefault("AUTH_SECRET", "su_secreto_super_secreto")

	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 5 * * *") // Todos los días a las 5 de la mañana
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)
	viper.SetDefault("SNAPSHOT_SYNC_RETENTION_DAYS", 90)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primero cargar el archivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variables cargadas por godotenv (viper no pudo leer .env):", err)
	} else {
		logrus.Info("Archivo .env leído por viper con éxito")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile intenta cargar el .env desde las ubicaciones habituales
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("No se pudo obtener el directorio actual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Archivo .env cargado con éxito desde:", location)
			return
		}
	}

	logrus.Warn("No se pudo cargar el archivo .env desde ninguna ubicación conocida")
}
