package court

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/padel-club/internal/domain/booking"
	"github.com/BruksfildServices01/padel-club/internal/models"
)

// fakeRepo cobre o que os use cases de quadra exercitam: clubes, quadras
// e o upsert idempotente da grade (deduplicado pela chave composta, como
// o ON CONFLICT DO NOTHING do repositório real).
type fakeRepo struct {
	mu sync.Mutex

	clubs  map[uint]*models.Club
	courts []models.Court

	slotKeys map[string]bool

	failUpsert bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clubs:    make(map[uint]*models.Club),
		slotKeys: make(map[string]bool),
	}
}

func slotKey(s models.AvailabilitySlot) string {
	return fmt.Sprintf("%d|%s|%d|%d", s.CourtID, s.Date, s.StartMin, s.EndMin)
}

func (r *fakeRepo) GetClubByID(ctx context.Context, id uint) (*models.Club, error) {
	if club, ok := r.clubs[id]; ok {
		return club, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetClubBySlug(ctx context.Context, slug string) (*models.Club, error) {
	for _, club := range r.clubs {
		if club.Slug == slug {
			return club, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetClubHours(ctx context.Context, clubID uint, weekday int) (*models.ClubHours, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetCourt(ctx context.Context, clubID, courtID uint) (*models.Court, error) {
	for i := range r.courts {
		if r.courts[i].ID == courtID && r.courts[i].ClubID == clubID {
			return &r.courts[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) CreateCourt(ctx context.Context, court *models.Court) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	court.ID = uint(len(r.courts) + 1)
	r.courts = append(r.courts, *court)
	return nil
}

func (r *fakeRepo) ListCourtsByCategory(ctx context.Context, clubID uint, category string) ([]models.Court, error) {
	var out []models.Court
	for _, c := range r.courts {
		if c.ClubID == clubID && c.Category == category {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListCourts(ctx context.Context, clubID uint) ([]models.Court, error) {
	var out []models.Court
	for _, c := range r.courts {
		if c.ClubID == clubID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAllCourts(ctx context.Context) ([]models.Court, error) {
	return append([]models.Court(nil), r.courts...), nil
}

func (r *fakeRepo) GetOrCreatePlayer(ctx context.Context, clubID uint, name, phone, email string, guest bool) (*models.Player, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeRepo) UpsertAvailability(ctx context.Context, rows []models.AvailabilitySlot) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failUpsert {
		return 0, errors.New("upsert failed")
	}

	var written int64
	for _, row := range rows {
		key := slotKey(row)
		if r.slotKeys[key] {
			continue
		}
		r.slotKeys[key] = true
		written++
	}
	return written, nil
}

func (r *fakeRepo) ListSlotsForDay(ctx context.Context, courtID uint, date string) ([]models.AvailabilitySlot, error) {
	return nil, nil
}

func (r *fakeRepo) MarkSlots(ctx context.Context, courtID uint, date string, window domain.SlotWindow, available bool) error {
	return nil
}

func (r *fakeRepo) CountOverlappingBookings(ctx context.Context, courtID uint, date string, window domain.SlotWindow) (int64, error) {
	return 0, nil
}

func (r *fakeRepo) CreateBookingIfFree(ctx context.Context, b *models.Booking) error {
	return errors.New("not implemented")
}

func (r *fakeRepo) ListBookingsForDay(ctx context.Context, courtID uint, date string) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeRepo) GetBookingForClub(ctx context.Context, bookingID, clubID uint) (*models.Booking, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetBookingByReference(ctx context.Context, reference string) (*models.Booking, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	return errors.New("not implemented")
}

func (r *fakeRepo) ListBookingsForPeriod(ctx context.Context, clubID uint, startDate, endDate string) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeRepo) AddLoyaltyStamp(ctx context.Context, clubID, playerID uint) (*models.LoyaltyCard, error) {
	return nil, errors.New("not implemented")
}

var _ domain.Repository = (*fakeRepo)(nil)
