package court

import (
	"context"

	"github.com/BruksfildServices01/padel-club/internal/audit"
	domain "github.com/BruksfildServices01/padel-club/internal/domain/booking"
	"github.com/BruksfildServices01/padel-club/internal/httperr"
	"github.com/BruksfildServices01/padel-club/internal/timezone"
)

type RegenerateAvailabilityInput struct {
	ClubID  uint
	OwnerID uint
	CourtID uint

	// Zero usa o horizonte configurado do clube.
	Days int
}

// RegenerateAvailability é a operação explícita de repair para quando a
// materialização best-effort falhou na criação da quadra, e também o
// passo por quadra do job de manutenção que estende a grade.
type RegenerateAvailability struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock domain.Clock
}

func NewRegenerateAvailability(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clock domain.Clock,
) *RegenerateAvailability {
	return &RegenerateAvailability{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

// Execute devolve quantas linhas novas foram gravadas. Re-executar com a
// mesma grade devolve zero e não duplica nada.
func (uc *RegenerateAvailability) Execute(
	ctx context.Context,
	in RegenerateAvailabilityInput,
) (int64, error) {

	club, err := uc.repo.GetClubByID(ctx, in.ClubID)
	if err != nil {
		return 0, err
	}

	court, err := uc.repo.GetCourt(ctx, in.ClubID, in.CourtID)
	if err != nil {
		return 0, httperr.ErrBusiness("court_not_found")
	}

	days := in.Days
	if days <= 0 {
		days = daysInAdvance(club)
	}

	today := uc.clock.Now().In(timezone.Location(club.Timezone))
	written, err := materializeAvailability(ctx, uc.repo, court, today, days)
	if err != nil {
		return 0, err
	}

	uc.audit.Dispatch(audit.Event{
		ClubID:   in.ClubID,
		UserID:   &in.OwnerID,
		Action:   "availability_regenerated",
		Entity:   "court",
		EntityID: &court.ID,
		Metadata: map[string]any{"rows_written": written, "days": days},
	})

	return written, nil
}
