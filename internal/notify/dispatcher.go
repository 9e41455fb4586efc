package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

const notifyTimeout = 5 * time.Second

type Dispatcher struct {
	notifier Notifier
	log      zerolog.Logger
	queue    chan Event
}

func NewDispatcher(notifier Notifier, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		log:      log,
		queue:    make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		if err := d.notifier.Notify(ctx, ev); err != nil {
			d.log.Error().Err(err).Str("type", ev.Type).Msg("notification error")
		}
		cancel()
	}
}

// Dispatch nunca bloqueia o caminho do booking: fila cheia descarta.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("type", ev.Type).Msg("notify queue full, dropping event")
	}
}
