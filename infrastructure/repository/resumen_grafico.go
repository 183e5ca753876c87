package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/cajanegocio/caja-api/infrastructure/database/postgres"
	"github.com/cajanegocio/caja-api/internal/domain"
	"github.com/cajanegocio/caja-api/pkg/utils"
)

const (
	resumenesGraficosTable = "resumenes_graficos rg"
)

// ResumenGraficoRepository es la cache de instantáneas del dashboard.
// Guarda el agregado serializado por (periodo, fecha); la invalidación es
// siempre sobrescribir con una corrida nueva.
type ResumenGraficoRepository interface {
	GetByPeriodoAndFecha(periodo domain.TipoPeriodo, fecha time.Time) (*domain.ResumenGrafico, error)
	SaveOrUpdate(resumen *domain.ResumenGrafico) error
	DeleteOlderThan(days int) (int64, error)
}

type resumenGraficoRepository struct {
	conn *postgres.Connection
}

func NewResumenGraficoRepository(conn *postgres.Connection) ResumenGraficoRepository {
	return &resumenGraficoRepository{
		conn: conn,
	}
}

func (r *resumenGraficoRepository) GetByPeriodoAndFecha(periodo domain.TipoPeriodo, fecha time.Time) (*domain.ResumenGrafico, error) {
	query, args, err := squirrel.
		Select("rg.id, rg.periodo, rg.fecha, rg.datos, rg.created_at, rg.updated_at").
		From(resumenesGraficosTable).
		Where(squirrel.Eq{"rg.periodo": string(periodo), "rg.fecha": fecha.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	resumen, err := r.scanResumen(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al escanear el resumen: %w", err)
	}

	return resumen, nil
}

func (r *resumenGraficoRepository) SaveOrUpdate(resumen *domain.ResumenGrafico) error {
	if resumen.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("error al generar el ID del resumen: %w", err)
		}
		resumen.ID = id
	}

	datos, err := json.Marshal(resumen.Dashboard)
	if err != nil {
		return fmt.Errorf("error al serializar el dashboard: %w", err)
	}

	query, args, err := squirrel.
		Insert("resumenes_graficos").
		Columns("id", "periodo", "fecha", "datos", "created_at", "updated_at").
		Values(resumen.ID, string(resumen.Periodo), resumen.Fecha.Format(time.DateOnly), datos, squirrel.Expr("NOW()"), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (periodo, fecha) DO UPDATE SET datos = EXCLUDED.datos, updated_at = NOW()").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("error al guardar el resumen: %w", err)
	}

	return nil
}

func (r *resumenGraficoRepository) DeleteOlderThan(days int) (int64, error) {
	query, args, err := squirrel.
		Delete("resumenes_graficos").
		Where(squirrel.Expr("fecha < NOW() - MAKE_INTERVAL(days => ?)", days)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error al construir la query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("error al borrar resúmenes viejos: %w", err)
	}

	return result.RowsAffected()
}

func (r *resumenGraficoRepository) scanResumen(row *sql.Row) (*domain.ResumenGrafico, error) {
	var (
		resumen domain.ResumenGrafico
		periodo string
		datos   []byte
	)

	if err := row.Scan(&resumen.ID, &periodo, &resumen.Fecha, &datos, &resumen.CreatedAt, &resumen.UpdatedAt); err != nil {
		return nil, err
	}

	resumen.Periodo = domain.TipoPeriodo(periodo)

	if err := json.Unmarshal(datos, &resumen.Dashboard); err != nil {
		return nil, fmt.Errorf("error al deserializar el dashboard: %w", err)
	}

	return &resumen, nil
}
