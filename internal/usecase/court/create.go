package court

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/padel-club/internal/audit"
	domain "github.com/BruksfildServices01/padel-club/internal/domain/booking"
	"github.com/BruksfildServices01/padel-club/internal/models"
	"github.com/BruksfildServices01/padel-club/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateCourtInput struct {
	ClubID  uint
	OwnerID uint

	Name     string
	Location string
	Category string

	PricePerHour float64
	Description  string
	Features     string

	StartHour   int
	EndHour     int
	DurationMin int
	StepMin     int
}

// ======================================================
// USE CASE
// ======================================================

type CreateCourt struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	clock  domain.Clock
	logger zerolog.Logger
}

func NewCreateCourt(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clock domain.Clock,
	logger zerolog.Logger,
) *CreateCourt {
	return &CreateCourt{
		repo:   repo,
		audit:  audit,
		clock:  clock,
		logger: logger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateCourt) Execute(
	ctx context.Context,
	in CreateCourtInput,
) (*models.Court, error) {

	club, err := uc.repo.GetClubByID(ctx, in.ClubID)
	if err != nil {
		return nil, err
	}

	// Valida a configuração da grade antes de qualquer escrita.
	if _, err := domain.GenerateSlots(
		in.StartHour, in.EndHour, in.DurationMin, in.StepMin,
	); err != nil {
		return nil, err
	}

	court := &models.Court{
		ClubID:       in.ClubID,
		OwnerID:      in.OwnerID,
		Name:         in.Name,
		Number:       1,
		Location:     in.Location,
		Category:     in.Category,
		PricePerHour: in.PricePerHour,
		Description:  in.Description,
		Features:     in.Features,
		StartHour:    in.StartHour,
		EndHour:      in.EndHour,
		DurationMin:  in.DurationMin,
		StepMin:      in.StepMin,
	}

	if err := uc.repo.CreateCourt(ctx, court); err != nil {
		return nil, err
	}

	// Materialização é best-effort: falha aqui não desfaz a quadra,
	// a grade pode ser regenerada depois pelo endpoint de repair.
	today := uc.clock.Now().In(timezone.Location(club.Timezone))
	if _, err := materializeAvailability(
		ctx, uc.repo, court, today, daysInAdvance(club),
	); err != nil {
		uc.logger.Error().
			Err(err).
			Uint("court_id", court.ID).
			Msg("failed to materialize availability")
	}

	uc.audit.Dispatch(audit.Event{
		ClubID:   in.ClubID,
		UserID:   &in.OwnerID,
		Action:   "court_created",
		Entity:   "court",
		EntityID: &court.ID,
	})

	return court, nil
}
