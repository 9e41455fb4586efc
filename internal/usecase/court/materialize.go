package court

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/padel-club/internal/domain/booking"
	"github.com/BruksfildServices01/padel-club/internal/models"
)

const DefaultDaysInAdvance = 30

// materializeAvailability gera a grade da quadra e grava uma linha por
// (quadra, dia, janela) para `days` dias a partir de startDate. O upsert
// do repositório ignora linhas existentes, então a operação é idempotente.
func materializeAvailability(
	ctx context.Context,
	repo domain.Repository,
	court *models.Court,
	startDate time.Time,
	days int,
) (int64, error) {

	grid, err := domain.GenerateSlots(
		court.StartHour,
		court.EndHour,
		court.DurationMin,
		court.StepMin,
	)
	if err != nil {
		return 0, err
	}

	rows := make([]models.AvailabilitySlot, 0, days*len(grid))
	for i := 0; i < days; i++ {
		date := startDate.AddDate(0, 0, i).Format("2006-01-02")
		for _, w := range grid {
			rows = append(rows, models.AvailabilitySlot{
				CourtID:     court.ID,
				Date:        date,
				StartMin:    w.StartMin,
				EndMin:      w.EndMin,
				IsAvailable: true,
			})
		}
	}

	return repo.UpsertAvailability(ctx, rows)
}

func daysInAdvance(club *models.Club) int {
	if club.DaysInAdvance > 0 {
		return club.DaysInAdvance
	}
	return DefaultDaysInAdvance
}
