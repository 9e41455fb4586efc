package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/padel-club/internal/cache"
	domain "github.com/BruksfildServices01/padel-club/internal/domain/booking"
	"github.com/BruksfildServices01/padel-club/internal/httperr"
	"github.com/BruksfildServices01/padel-club/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type DayAvailabilityInput struct {
	ClubID  uint
	CourtID uint
	Date    string
}

// ======================================================
// USE CASE
// ======================================================

type ListDayAvailability struct {
	repo  domain.Repository
	clock domain.Clock
	cache *cache.Availability
}

func NewListDayAvailability(
	repo domain.Repository,
	clock domain.Clock,
	avCache *cache.Availability,
) *ListDayAvailability {
	return &ListDayAvailability{
		repo:  repo,
		clock: clock,
		cache: avCache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute lista as janelas livres de uma quadra num dia. A fonte de
// verdade é o overlap contra bookings não cancelados; a grade
// materializada e o cache Redis são só aceleração de leitura.
func (uc *ListDayAvailability) Execute(
	ctx context.Context,
	in DayAvailabilityInput,
) ([]domain.SlotWindow, error) {

	club, err := uc.repo.GetClubByID(ctx, in.ClubID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(club.Timezone)
	day, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// Clube fechado no dia → vazio, sem consultar quadra nenhuma.
	hours, hoursErr := uc.repo.GetClubHours(ctx, in.ClubID, int(day.Weekday()))
	if hoursErr == nil && hours.Closed {
		return []domain.SlotWindow{}, nil
	}

	court, err := uc.repo.GetCourt(ctx, in.ClubID, in.CourtID)
	if err != nil {
		return nil, httperr.ErrBusiness("court_not_found")
	}

	free, ok := uc.cache.GetDay(ctx, court.ID, in.Date)
	if !ok {
		grid, err := domain.GenerateSlots(
			court.StartHour,
			court.EndHour,
			court.DurationMin,
			court.StepMin,
		)
		if err != nil {
			return nil, err
		}

		// Horário do clube pode ser mais estreito que o da quadra.
		if hoursErr == nil {
			grid = clipToHours(grid, hours.OpenHour, hours.CloseHour)
		}

		bookings, err := uc.repo.ListBookingsForDay(ctx, court.ID, in.Date)
		if err != nil {
			return nil, err
		}

		free = make([]domain.SlotWindow, 0, len(grid))
		bIdx := 0

		for _, w := range grid {
			// avança bookings já encerrados antes desta janela
			for bIdx < len(bookings) && bookings[bIdx].EndMin <= w.StartMin {
				bIdx++
			}

			conflict := false
			for j := bIdx; j < len(bookings) && bookings[j].StartMin < w.EndMin; j++ {
				if w.Overlaps(domain.Window(&bookings[j])) {
					conflict = true
					break
				}
			}

			if !conflict {
				free = append(free, w)
			}
		}

		uc.cache.SetDay(ctx, court.ID, in.Date, free)
	}

	// Filtro de passado fica fora do cache: muda ao longo do dia.
	now := uc.clock.Now().In(loc)
	if now.Format("2006-01-02") == in.Date {
		nowMin := now.Hour()*60 + now.Minute()
		filtered := free[:0:0]
		for _, w := range free {
			if w.StartMin > nowMin {
				filtered = append(filtered, w)
			}
		}
		free = filtered
	}

	return free, nil
}

func clipToHours(grid []domain.SlotWindow, openHour, closeHour int) []domain.SlotWindow {
	if openHour <= 0 && closeHour <= 0 {
		return grid
	}

	openMin := openHour * 60
	closeMin := closeHour * 60

	clipped := grid[:0:0]
	for _, w := range grid {
		if w.StartMin >= openMin && w.EndMin <= closeMin {
			clipped = append(clipped, w)
		}
	}
	return clipped
}
