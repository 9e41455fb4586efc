package court

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/padel-club/internal/audit"
	domain "github.com/BruksfildServices01/padel-club/internal/domain/booking"
	"github.com/BruksfildServices01/padel-club/internal/httperr"
	"github.com/BruksfildServices01/padel-club/internal/models"
	"github.com/BruksfildServices01/padel-club/internal/timezone"
)

type DuplicateCourtInput struct {
	ClubID   uint
	OwnerID  uint
	SourceID uint
	NewName  string
}

type DuplicateCourt struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	clock  domain.Clock
	logger zerolog.Logger
}

func NewDuplicateCourt(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clock domain.Clock,
	logger zerolog.Logger,
) *DuplicateCourt {
	return &DuplicateCourt{
		repo:   repo,
		audit:  audit,
		clock:  clock,
		logger: logger,
	}
}

// Execute clona a configuração da quadra de origem e materializa uma
// grade nova a partir do gerador. Nunca copia linhas de disponibilidade:
// a origem pode ter slots já queimados por bookings.
func (uc *DuplicateCourt) Execute(
	ctx context.Context,
	in DuplicateCourtInput,
) (*models.Court, error) {

	club, err := uc.repo.GetClubByID(ctx, in.ClubID)
	if err != nil {
		return nil, err
	}

	src, err := uc.repo.GetCourt(ctx, in.ClubID, in.SourceID)
	if err != nil {
		return nil, httperr.ErrBusiness("court_not_found")
	}

	clone := &models.Court{
		ClubID:       src.ClubID,
		OwnerID:      in.OwnerID,
		Name:         in.NewName,
		Number:       src.Number + 1,
		Location:     src.Location,
		Category:     src.Category,
		PricePerHour: src.PricePerHour,
		Description:  src.Description,
		Features:     src.Features,
		StartHour:    src.StartHour,
		EndHour:      src.EndHour,
		DurationMin:  src.DurationMin,
		StepMin:      src.StepMin,
	}

	if err := uc.repo.CreateCourt(ctx, clone); err != nil {
		return nil, err
	}

	today := uc.clock.Now().In(timezone.Location(club.Timezone))
	if _, err := materializeAvailability(
		ctx, uc.repo, clone, today, daysInAdvance(club),
	); err != nil {
		uc.logger.Error().
			Err(err).
			Uint("court_id", clone.ID).
			Msg("failed to materialize availability for duplicated court")
	}

	uc.audit.Dispatch(audit.Event{
		ClubID:   in.ClubID,
		UserID:   &in.OwnerID,
		Action:   "court_duplicated",
		Entity:   "court",
		EntityID: &clone.ID,
	})

	return clone, nil
}
