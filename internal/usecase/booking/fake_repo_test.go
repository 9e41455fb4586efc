package booking

import (
	"context"
	"sort"
	"sync"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/padel-club/internal/domain/booking"
	"github.com/BruksfildServices01/padel-club/internal/httperr"
	"github.com/BruksfildServices01/padel-club/internal/models"
)

// slotMark registra cada flip da grade, para os testes de cancelamento.
type slotMark struct {
	window    domain.SlotWindow
	available bool
}

// fakeRepo é um Repository em memória com a mesma semântica de conflito
// do repositório real: overlap meio-aberto, cancelados não contam, e o
// check-and-insert é atômico sob mutex.
type fakeRepo struct {
	mu sync.Mutex

	club  *models.Club
	hours map[int]*models.ClubHours

	courts   []models.Court
	players  []models.Player
	bookings []models.Booking

	stamps map[uint]*models.LoyaltyCard
	marks  []slotMark

	nextBookingID uint
	nextPlayerID  uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		club: &models.Club{
			ID:            1,
			Name:          "Padel Norte",
			Slug:          "padel-norte",
			Timezone:      "UTC",
			DaysInAdvance: 30,
		},
		hours:  make(map[int]*models.ClubHours),
		stamps: make(map[uint]*models.LoyaltyCard),
	}
}

func (r *fakeRepo) addCourt(c models.Court) {
	r.courts = append(r.courts, c)
}

func (r *fakeRepo) addBooking(b models.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextBookingID++
	b.ID = r.nextBookingID
	r.bookings = append(r.bookings, b)
}

// -------- Club --------

func (r *fakeRepo) GetClubByID(ctx context.Context, id uint) (*models.Club, error) {
	if r.club != nil && r.club.ID == id {
		return r.club, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetClubBySlug(ctx context.Context, slug string) (*models.Club, error) {
	if r.club != nil && r.club.Slug == slug {
		return r.club, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetClubHours(ctx context.Context, clubID uint, weekday int) (*models.ClubHours, error) {
	if h, ok := r.hours[weekday]; ok {
		return h, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// -------- Court --------

func (r *fakeRepo) GetCourt(ctx context.Context, clubID, courtID uint) (*models.Court, error) {
	for i := range r.courts {
		if r.courts[i].ID == courtID && r.courts[i].ClubID == clubID {
			return &r.courts[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) CreateCourt(ctx context.Context, court *models.Court) error {
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
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
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

// -------- Player --------

func (r *fakeRepo) GetOrCreatePlayer(ctx context.Context, clubID uint, name, phone, email string, guest bool) (*models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.players {
		if r.players[i].ClubID == clubID && r.players[i].Phone == phone {
			return &r.players[i], nil
		}
	}

	r.nextPlayerID++
	p := models.Player{ID: r.nextPlayerID, ClubID: clubID, Name: name, Phone: phone, Email: email, Guest: guest}
	r.players = append(r.players, p)
	return &r.players[len(r.players)-1], nil
}

// -------- Availability grid --------

func (r *fakeRepo) UpsertAvailability(ctx context.Context, rows []models.AvailabilitySlot) (int64, error) {
	return int64(len(rows)), nil
}

func (r *fakeRepo) ListSlotsForDay(ctx context.Context, courtID uint, date string) ([]models.AvailabilitySlot, error) {
	return nil, nil
}

func (r *fakeRepo) MarkSlots(ctx context.Context, courtID uint, date string, window domain.SlotWindow, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.marks = append(r.marks, slotMark{window: window, available: available})
	return nil
}

// -------- Booking --------

func (r *fakeRepo) countOverlapLocked(courtID uint, date string, window domain.SlotWindow) int64 {
	var count int64
	for _, b := range r.bookings {
		if b.CourtID != courtID || b.Date != date || b.Status == string(domain.StatusCancelled) {
			continue
		}
		if window.Overlaps(domain.Window(&b)) {
			count++
		}
	}
	return count
}

func (r *fakeRepo) CountOverlappingBookings(ctx context.Context, courtID uint, date string, window domain.SlotWindow) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.countOverlapLocked(courtID, date, window), nil
}

func (r *fakeRepo) CreateBookingIfFree(ctx context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.countOverlapLocked(b.CourtID, b.Date, domain.Window(b)) > 0 {
		return httperr.ErrBusiness("slot_no_longer_available")
	}

	r.nextBookingID++
	b.ID = r.nextBookingID
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *fakeRepo) ListBookingsForDay(ctx context.Context, courtID uint, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.CourtID == courtID && b.Date == date && b.Status != string(domain.StatusCancelled) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartMin < out[j].StartMin })
	return out, nil
}

func (r *fakeRepo) GetBookingForClub(ctx context.Context, bookingID, clubID uint) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bookings {
		if r.bookings[i].ID == bookingID && r.bookings[i].ClubID == clubID {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetBookingByReference(ctx context.Context, reference string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bookings {
		if r.bookings[i].Reference == reference {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bookings {
		if r.bookings[i].ID == b.ID {
			r.bookings[i] = *b
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeRepo) ListBookingsForPeriod(ctx context.Context, clubID uint, startDate, endDate string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.ClubID == clubID && b.Date >= startDate && b.Date <= endDate {
			out = append(out, b)
		}
	}
	return out, nil
}

// -------- Loyalty --------

func (r *fakeRepo) AddLoyaltyStamp(ctx context.Context, clubID, playerID uint) (*models.LoyaltyCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	card, ok := r.stamps[playerID]
	if !ok {
		card = &models.LoyaltyCard{ClubID: clubID, PlayerID: playerID}
		r.stamps[playerID] = card
	}

	card.Stamps++
	card.RewardReady = card.Stamps >= models.LoyaltyStampsForReward
	return card, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
