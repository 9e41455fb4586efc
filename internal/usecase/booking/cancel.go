package booking

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/padel-club/internal/audit"
	"github.com/BruksfildServices01/padel-club/internal/cache"
	domain "github.com/BruksfildServices01/padel-club/internal/domain/booking"
	"github.com/BruksfildServices01/padel-club/internal/httperr"
	"github.com/BruksfildServices01/padel-club/internal/models"
	"github.com/BruksfildServices01/padel-club/internal/notify"
	"github.com/BruksfildServices01/padel-club/internal/timezone"
)

type CancelBooking struct {
	repo   domain.Repository
	clock  domain.Clock
	notify *notify.Dispatcher
	cache  *cache.Availability
	audit  *audit.Dispatcher
	logger zerolog.Logger
}

func NewCancelBooking(
	repo domain.Repository,
	clock domain.Clock,
	dispatcher *notify.Dispatcher,
	avCache *cache.Availability,
	auditDispatcher *audit.Dispatcher,
	logger zerolog.Logger,
) *CancelBooking {
	return &CancelBooking{
		repo:   repo,
		clock:  clock,
		notify: dispatcher,
		cache:  avCache,
		audit:  auditDispatcher,
		logger: logger,
	}
}

// Execute cancela pelo dono do clube.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	clubID uint,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForClub(ctx, bookingID, clubID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := uc.cancel(ctx, clubID, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ClubID:   clubID,
		UserID:   &userID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

// ExecuteByReference cancela pelo próprio jogador, via código do booking.
func (uc *CancelBooking) ExecuteByReference(
	ctx context.Context,
	reference string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByReference(ctx, reference)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := uc.cancel(ctx, b.ClubID, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (uc *CancelBooking) cancel(
	ctx context.Context,
	clubID uint,
	b *models.Booking,
) error {

	club, err := uc.repo.GetClubByID(ctx, clubID)
	if err != nil {
		return err
	}

	now := uc.clock.Now().In(timezone.Location(club.Timezone))
	if err := domain.Cancel(b, now); err != nil {
		return err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return err
	}

	uc.releaseSlots(ctx, b)
	uc.cache.InvalidateDay(ctx, b.CourtID, b.Date)

	uc.notify.Dispatch(notify.Event{
		Type:       "booking_cancelled",
		ClubID:     clubID,
		CourtID:    b.CourtID,
		BookingRef: b.Reference,
		Date:       b.Date,
		Window:     formatWindow(domain.Window(b)),
	})

	return nil
}

// releaseSlots reabre as linhas da grade cobertas pelo booking e depois
// re-fecha as que ainda colidem com outros bookings do dia (com grades
// sobrepostas, uma linha pode pertencer a mais de uma janela reservada).
// Tudo best-effort: a grade é cache de exibição.
func (uc *CancelBooking) releaseSlots(ctx context.Context, b *models.Booking) {
	window := domain.Window(b)

	if err := uc.repo.MarkSlots(ctx, b.CourtID, b.Date, window, true); err != nil {
		uc.logger.Warn().
			Err(err).
			Uint("court_id", b.CourtID).
			Str("date", b.Date).
			Msg("failed to release availability rows")
		return
	}

	remaining, err := uc.repo.ListBookingsForDay(ctx, b.CourtID, b.Date)
	if err != nil {
		uc.logger.Warn().Err(err).Msg("failed to list bookings while releasing slots")
		return
	}

	for i := range remaining {
		other := domain.Window(&remaining[i])
		if !window.Overlaps(other) {
			continue
		}
		if err := uc.repo.MarkSlots(ctx, b.CourtID, b.Date, other, false); err != nil {
			uc.logger.Warn().Err(err).Msg("failed to re-flip availability row")
		}
	}
}
