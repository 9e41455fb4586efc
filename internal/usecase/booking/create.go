package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/padel-club/internal/cache"
	domain "github.com/BruksfildServices01/padel-club/internal/domain/booking"
	"github.com/BruksfildServices01/padel-club/internal/httperr"
	"github.com/BruksfildServices01/padel-club/internal/models"
	"github.com/BruksfildServices01/padel-club/internal/notify"
	"github.com/BruksfildServices01/padel-club/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ClubID  uint
	CourtID uint

	PlayerID uint
	Guest    bool

	Date   string
	Window domain.SlotWindow
	Notes  string
}

// ======================================================
// USE CASE
// ======================================================

// CreateBooking é o writer: a única porta de escrita de bookings.
// Revalida o conflito por overlap dentro da transação do insert e só
// depois faz os efeitos best-effort (flip da grade, cache, notificação).
type CreateBooking struct {
	repo   domain.Repository
	clock  domain.Clock
	notify *notify.Dispatcher
	cache  *cache.Availability
	logger zerolog.Logger
}

func NewCreateBooking(
	repo domain.Repository,
	clock domain.Clock,
	dispatcher *notify.Dispatcher,
	avCache *cache.Availability,
	logger zerolog.Logger,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		clock:  clock,
		notify: dispatcher,
		cache:  avCache,
		logger: logger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Validação da janela, sem I/O
	// --------------------------------------------------
	if in.Window.StartMin >= in.Window.EndMin || in.Window.StartMin < 0 || in.Window.EndMin > 24*60 {
		return nil, httperr.ErrBusiness("invalid_range")
	}

	club, err := uc.repo.GetClubByID(ctx, in.ClubID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(club.Timezone)
	day, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 2. Passado e dia fechado
	// --------------------------------------------------
	now := uc.clock.Now().In(loc)
	today := now.Format("2006-01-02")
	if in.Date < today {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if in.Date == today {
		nowMin := now.Hour()*60 + now.Minute()
		if in.Window.StartMin <= nowMin {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}
	}

	if hours, err := uc.repo.GetClubHours(ctx, in.ClubID, int(day.Weekday())); err == nil && hours.Closed {
		return nil, httperr.ErrBusiness("club_closed")
	}

	// --------------------------------------------------
	// 3. Quadra e horário de funcionamento
	// --------------------------------------------------
	court, err := uc.repo.GetCourt(ctx, in.ClubID, in.CourtID)
	if err != nil {
		return nil, httperr.ErrBusiness("court_not_found")
	}

	if in.Window.StartMin < court.StartHour*60 || in.Window.EndMin > court.EndHour*60 {
		return nil, httperr.ErrBusiness("outside_operating_hours")
	}

	// --------------------------------------------------
	// 4. Check-and-insert transacional
	// --------------------------------------------------
	price := court.PricePerHour * float64(in.Window.DurationMin()) / 60

	b := &models.Booking{
		Reference: uuid.NewString(),
		ClubID:    in.ClubID,
		CourtID:   court.ID,
		PlayerID:  in.PlayerID,
		Guest:     in.Guest,
		Date:      in.Date,
		StartMin:  in.Window.StartMin,
		EndMin:    in.Window.EndMin,
		Status:    string(domain.InitialStatus()),
		Price:     price,
		Notes:     in.Notes,
	}

	if err := uc.repo.CreateBookingIfFree(ctx, b); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Efeitos best-effort: nunca desfazem o booking
	// --------------------------------------------------
	if err := uc.repo.MarkSlots(ctx, court.ID, in.Date, in.Window, false); err != nil {
		uc.logger.Warn().
			Err(err).
			Uint("court_id", court.ID).
			Str("date", in.Date).
			Msg("failed to flip availability rows")
	}

	uc.cache.InvalidateDay(ctx, court.ID, in.Date)

	uc.notify.Dispatch(notify.Event{
		Type:       "booking_created",
		ClubID:     in.ClubID,
		CourtID:    court.ID,
		BookingRef: b.Reference,
		Date:       in.Date,
		Window:     formatWindow(in.Window),
	})

	return b, nil
}

func formatWindow(w domain.SlotWindow) string {
	return fmt.Sprintf("%s-%s", domain.FormatHM(w.StartMin), domain.FormatHM(w.EndMin))
}
