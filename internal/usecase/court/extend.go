package court

import (
	"context"

	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/padel-club/internal/domain/booking"
	"github.com/BruksfildServices01/padel-club/internal/models"
	"github.com/BruksfildServices01/padel-club/internal/timezone"
)

type ExtendAvailabilityResult struct {
	Courts      int   `json:"courts"`
	RowsWritten int64 `json:"rows_written"`
	Failures    int   `json:"failures"`
}

// ExtendAvailability é o job de manutenção: percorre todas as quadras
// e rola o horizonte da grade para frente. Como o upsert ignora linhas
// existentes, cada execução só acrescenta os dias novos no fim da janela.
type ExtendAvailability struct {
	repo  domain.Repository
	clock domain.Clock

	// Horizonte de config (AVAILABILITY_DAYS_AHEAD), usado quando nem a
	// chamada nem o clube definem um.
	defaultDays int

	logger zerolog.Logger
}

func NewExtendAvailability(
	repo domain.Repository,
	clock domain.Clock,
	defaultDays int,
	logger zerolog.Logger,
) *ExtendAvailability {
	return &ExtendAvailability{
		repo:        repo,
		clock:       clock,
		defaultDays: defaultDays,
		logger:      logger,
	}
}

// Execute nunca aborta no meio: falha em uma quadra é contada e logada,
// e as demais seguem.
func (uc *ExtendAvailability) Execute(ctx context.Context, days int) (*ExtendAvailabilityResult, error) {
	courts, err := uc.repo.ListAllCourts(ctx)
	if err != nil {
		return nil, err
	}

	clubs := make(map[uint]*models.Club)

	result := &ExtendAvailabilityResult{}
	for i := range courts {
		court := &courts[i]

		club, ok := clubs[court.ClubID]
		if !ok {
			club, err = uc.repo.GetClubByID(ctx, court.ClubID)
			if err != nil {
				uc.logger.Error().Err(err).
					Uint("club_id", court.ClubID).
					Msg("extend: club lookup failed")
				result.Failures++
				continue
			}
			clubs[court.ClubID] = club
		}

		// Precedência: parâmetro da chamada > clube > config > padrão.
		horizon := days
		if horizon <= 0 {
			horizon = club.DaysInAdvance
		}
		if horizon <= 0 {
			horizon = uc.defaultDays
		}
		if horizon <= 0 {
			horizon = DefaultDaysInAdvance
		}

		today := uc.clock.Now().In(timezone.Location(club.Timezone))
		written, err := materializeAvailability(ctx, uc.repo, court, today, horizon)
		if err != nil {
			uc.logger.Error().Err(err).
				Uint("court_id", court.ID).
				Msg("extend: materialization failed")
			result.Failures++
			continue
		}

		result.Courts++
		result.RowsWritten += written
	}

	uc.logger.Info().
		Int("courts", result.Courts).
		Int64("rows_written", result.RowsWritten).
		Int("failures", result.Failures).
		Msg("availability horizon extended")

	return result, nil
}
