package notify

import (
	"context"

	"github.com/rs/zerolog"
)

// Event é o payload fire-and-forget disparado depois de uma mutação de
// booking bem-sucedida. Falha de entrega nunca falha o booking.
type Event struct {
	Type       string
	ClubID     uint
	CourtID    uint
	BookingRef string
	Date       string
	Window     string
	Payload    map[string]any
}

type Notifier interface {
	Notify(ctx context.Context, ev Event) error
}

// LogNotifier é o transporte default: só registra o evento. Transportes
// reais (e-mail, push) implementam Notifier e entram no lugar via config.
type LogNotifier struct {
	logger zerolog.Logger
}

func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, ev Event) error {
	n.logger.Info().
		Str("type", ev.Type).
		Uint("club_id", ev.ClubID).
		Uint("court_id", ev.CourtID).
		Str("booking_ref", ev.BookingRef).
		Str("date", ev.Date).
		Str("window", ev.Window).
		Msg("notification")
	return nil
}
