package booking

import "time"

// Clock abstrai o "agora" para que o filtro de horário passado
// seja determinístico em teste.
type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }
