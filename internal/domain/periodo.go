package domain

import (
	"fmt"
	"strconv"
	"time"
)

// TipoPeriodo es el período de reporte seleccionado en el dashboard
type TipoPeriodo string

const (
	PeriodoHoy    TipoPeriodo = "hoy"
	PeriodoSemana TipoPeriodo = "semana"
	PeriodoMes    TipoPeriodo = "mes"
	PeriodoAnio   TipoPeriodo = "anio"
)

// ParseTipoPeriodo valida el parámetro de período recibido por la API
func ParseTipoPeriodo(raw string) (TipoPeriodo, error) {
	switch TipoPeriodo(raw) {
	case PeriodoHoy, PeriodoSemana, PeriodoMes, PeriodoAnio:
		return TipoPeriodo(raw), nil
	case "":
		return PeriodoMes, nil
	default:
		return "", fmt.Errorf("período inválido: %q", raw)
	}
}

// Bucket es una ranura discreta de tiempo en una serie (hora/día/mes).
// Orden es la posición cronológica canónica dentro del rango.
type Bucket struct {
	Etiqueta string
	Orden    int
}

// RangoPeriodo es el rango concreto [Inicio, Fin) de un período junto con
// el esqueleto ordenado y sin huecos de buckets que lo cubre por completo.
type RangoPeriodo struct {
	Tipo    TipoPeriodo
	Inicio  time.Time
	Fin     time.Time
	Buckets []Bucket
}

// Abreviaturas con lunes primero, igual que el selector del dashboard
var nombresDias = [7]string{"Lun", "Mar", "Mié", "Jue", "Vie", "Sáb", "Dom"}

var nombresMeses = [12]string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
}

// NuevoRangoPeriodo genera el rango de fechas y el esqueleto de buckets para
// un tipo de período y una fecha de referencia. La cantidad de buckets queda
// determinada únicamente por la granularidad del período: 24 horas, 7 días,
// los días reales del mes de referencia o 12 meses.
func NuevoRangoPeriodo(tipo TipoPeriodo, referencia time.Time) (*RangoPeriodo, error) {
	ref := referencia

	switch tipo {
	case PeriodoHoy:
		inicio := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
		buckets := make([]Bucket, 24)
		for h := 0; h < 24; h++ {
			buckets[h] = Bucket{Etiqueta: fmt.Sprintf("%02d:00", h), Orden: h}
		}
		return &RangoPeriodo{
			Tipo:    tipo,
			Inicio:  inicio,
			Fin:     inicio.AddDate(0, 0, 1),
			Buckets: buckets,
		}, nil

	case PeriodoSemana:
		inicio := inicioDeSemana(ref)
		buckets := make([]Bucket, 7)
		for d := 0; d < 7; d++ {
			buckets[d] = Bucket{Etiqueta: nombresDias[d], Orden: d}
		}
		return &RangoPeriodo{
			Tipo:    tipo,
			Inicio:  inicio,
			Fin:     inicio.AddDate(0, 0, 7),
			Buckets: buckets,
		}, nil

	case PeriodoMes:
		inicio := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		fin := inicio.AddDate(0, 1, 0)
		// Días reales del mes: el día anterior al primero del mes siguiente
		dias := fin.AddDate(0, 0, -1).Day()
		buckets := make([]Bucket, dias)
		for d := 0; d < dias; d++ {
			buckets[d] = Bucket{Etiqueta: strconv.Itoa(d + 1), Orden: d}
		}
		return &RangoPeriodo{Tipo: tipo, Inicio: inicio, Fin: fin, Buckets: buckets}, nil

	case PeriodoAnio:
		inicio := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, ref.Location())
		buckets := make([]Bucket, 12)
		for m := 0; m < 12; m++ {
			buckets[m] = Bucket{Etiqueta: nombresMeses[m], Orden: m}
		}
		return &RangoPeriodo{
			Tipo:    tipo,
			Inicio:  inicio,
			Fin:     inicio.AddDate(1, 0, 0),
			Buckets: buckets,
		}, nil
	}

	return nil, fmt.Errorf("tipo de período desconocido: %q", tipo)
}

// ClaveBucket calcula la etiqueta del bucket al que pertenece un instante,
// con la misma regla de granularidad usada para generar el esqueleto.
func (r *RangoPeriodo) ClaveBucket(t time.Time) string {
	switch r.Tipo {
	case PeriodoHoy:
		return fmt.Sprintf("%02d:00", t.Hour())
	case PeriodoSemana:
		return nombresDias[indiceDiaLunesPrimero(t.Weekday())]
	case PeriodoMes:
		return strconv.Itoa(t.Day())
	case PeriodoAnio:
		return nombresMeses[int(t.Month())-1]
	}
	return ""
}

// Contiene indica si un instante cae dentro del rango [Inicio, Fin)
func (r *RangoPeriodo) Contiene(t time.Time) bool {
	return !t.Before(r.Inicio) && t.Before(r.Fin)
}

// inicioDeSemana devuelve el lunes a medianoche de la semana de t
func inicioDeSemana(t time.Time) time.Time {
	dia := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return dia.AddDate(0, 0, -indiceDiaLunesPrimero(t.Weekday()))
}

// indiceDiaLunesPrimero convierte time.Weekday (domingo=0) a índice lunes=0
func indiceDiaLunesPrimero(d time.Weekday) int {
	return (int(d) + 6) % 7
}
