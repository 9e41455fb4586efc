package booking

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/padel-club/internal/audit"
	domain "github.com/BruksfildServices01/padel-club/internal/domain/booking"
	"github.com/BruksfildServices01/padel-club/internal/httperr"
	"github.com/BruksfildServices01/padel-club/internal/models"
	"github.com/BruksfildServices01/padel-club/internal/notify"
	"github.com/BruksfildServices01/padel-club/internal/timezone"
)

type ConfirmBooking struct {
	repo   domain.Repository
	clock  domain.Clock
	notify *notify.Dispatcher
	audit  *audit.Dispatcher
	logger zerolog.Logger
}

func NewConfirmBooking(
	repo domain.Repository,
	clock domain.Clock,
	dispatcher *notify.Dispatcher,
	auditDispatcher *audit.Dispatcher,
	logger zerolog.Logger,
) *ConfirmBooking {
	return &ConfirmBooking{
		repo:   repo,
		clock:  clock,
		notify: dispatcher,
		audit:  auditDispatcher,
		logger: logger,
	}
}

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	clubID uint,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {

	club, err := uc.repo.GetClubByID(ctx, clubID)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBookingForClub(ctx, bookingID, clubID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := uc.clock.Now().In(timezone.Location(club.Timezone))
	if err := domain.Confirm(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	// Selo de fidelidade é best-effort: o booking já está confirmado.
	if b.PlayerID != 0 {
		if _, err := uc.repo.AddLoyaltyStamp(ctx, clubID, b.PlayerID); err != nil {
			uc.logger.Warn().
				Err(err).
				Uint("player_id", b.PlayerID).
				Msg("failed to add loyalty stamp")
		}
	}

	uc.audit.Dispatch(audit.Event{
		ClubID:   clubID,
		UserID:   &userID,
		Action:   "booking_confirmed",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	uc.notify.Dispatch(notify.Event{
		Type:       "booking_confirmed",
		ClubID:     clubID,
		CourtID:    b.CourtID,
		BookingRef: b.Reference,
		Date:       b.Date,
		Window:     formatWindow(domain.Window(b)),
	})

	return b, nil
}
