package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/padel-club/internal/domain/booking"
	"github.com/BruksfildServices01/padel-club/internal/httperr"
	"github.com/BruksfildServices01/padel-club/internal/models"
	"github.com/BruksfildServices01/padel-club/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type SmartBookingQuery struct {
	ClubID   uint
	Category string
	Date     string
	Window   domain.SlotWindow
}

// ======================================================
// USE CASE
// ======================================================

// SmartBooking responde "alguma quadra desta categoria está livre nesta
// janela?" e escolhe qual quadra vai receber o booking. A escolha é
// determinística (ordem de criação) e só se torna definitiva na
// revalidação transacional do writer.
type SmartBooking struct {
	repo  domain.Repository
	clock domain.Clock
}

func NewSmartBooking(
	repo domain.Repository,
	clock domain.Clock,
) *SmartBooking {
	return &SmartBooking{
		repo:  repo,
		clock: clock,
	}
}

// ======================================================
// OPERATIONS
// ======================================================

// IsAnySlotAvailable não se compromete com uma quadra: só informa se
// existe pelo menos uma livre para a janela pedida.
func (uc *SmartBooking) IsAnySlotAvailable(
	ctx context.Context,
	q SmartBookingQuery,
) (bool, error) {

	court, err := uc.firstFreeCourt(ctx, q)
	if err != nil {
		return false, err
	}
	return court != nil, nil
}

// AssignCourt devolve a primeira quadra livre na ordem estável por id.
func (uc *SmartBooking) AssignCourt(
	ctx context.Context,
	q SmartBookingQuery,
) (*models.Court, error) {

	court, err := uc.firstFreeCourt(ctx, q)
	if err != nil {
		return nil, err
	}
	if court == nil {
		return nil, httperr.ErrBusiness("no_court_available")
	}
	return court, nil
}

// ======================================================
// INTERNAL
// ======================================================

func (uc *SmartBooking) firstFreeCourt(
	ctx context.Context,
	q SmartBookingQuery,
) (*models.Court, error) {

	if q.Window.StartMin >= q.Window.EndMin {
		return nil, httperr.ErrBusiness("invalid_range")
	}

	club, err := uc.repo.GetClubByID(ctx, q.ClubID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(club.Timezone)
	day, err := time.ParseInLocation("2006-01-02", q.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// Clube fechado → curto-circuito, nenhuma consulta por quadra.
	if hours, err := uc.repo.GetClubHours(ctx, q.ClubID, int(day.Weekday())); err == nil && hours.Closed {
		return nil, nil
	}

	// Janela no passado nunca está disponível.
	now := uc.clock.Now().In(loc)
	today := now.Format("2006-01-02")
	if q.Date < today {
		return nil, nil
	}
	if q.Date == today {
		nowMin := now.Hour()*60 + now.Minute()
		if q.Window.StartMin <= nowMin {
			return nil, nil
		}
	}

	courts, err := uc.repo.ListCourtsByCategory(ctx, q.ClubID, q.Category)
	if err != nil {
		return nil, err
	}

	for i := range courts {
		c := &courts[i]

		if q.Window.StartMin < c.StartHour*60 || q.Window.EndMin > c.EndHour*60 {
			continue
		}

		count, err := uc.repo.CountOverlappingBookings(ctx, c.ID, q.Date, q.Window)
		if err != nil {
			return nil, err
		}

		if count == 0 {
			return c, nil
		}
	}

	return nil, nil
}
