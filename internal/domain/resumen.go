package domain

import "time"

// ResumenGrafico es una instantánea precalculada del dashboard para un
// período y una fecha de referencia. Es dato derivado: se regenera
// completo en cada corrida, nunca se parchea.
type ResumenGrafico struct {
	ID        string
	Periodo   TipoPeriodo
	Fecha     time.Time
	Dashboard *Dashboard
	CreatedAt time.Time
	UpdatedAt time.Time
}
