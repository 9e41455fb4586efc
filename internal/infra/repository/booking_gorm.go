package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/padel-club/internal/domain/booking"
	"github.com/BruksfildServices01/padel-club/internal/httperr"
	"github.com/BruksfildServices01/padel-club/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Club
// --------------------------------------------------

func (r *BookingGormRepository) GetClubByID(
	ctx context.Context,
	id uint,
) (*models.Club, error) {

	var club models.Club
	if err := r.db.WithContext(ctx).First(&club, id).Error; err != nil {
		return nil, err
	}
	return &club, nil
}

func (r *BookingGormRepository) GetClubBySlug(
	ctx context.Context,
	slug string,
) (*models.Club, error) {

	var club models.Club
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&club).Error; err != nil {
		return nil, err
	}
	return &club, nil
}

func (r *BookingGormRepository) GetClubHours(
	ctx context.Context,
	clubID uint,
	weekday int,
) (*models.ClubHours, error) {

	var hours models.ClubHours
	if err := r.db.WithContext(ctx).
		Where("club_id = ? AND weekday = ?", clubID, weekday).
		First(&hours).Error; err != nil {
		return nil, err
	}
	return &hours, nil
}

// --------------------------------------------------
// Court
// --------------------------------------------------

func (r *BookingGormRepository) GetCourt(
	ctx context.Context,
	clubID uint,
	courtID uint,
) (*models.Court, error) {

	var court models.Court
	if err := r.db.WithContext(ctx).
		Where("id = ? AND club_id = ?", courtID, clubID).
		First(&court).Error; err != nil {
		return nil, err
	}
	return &court, nil
}

func (r *BookingGormRepository) CreateCourt(
	ctx context.Context,
	court *models.Court,
) error {
	return r.db.WithContext(ctx).Create(court).Error
}

func (r *BookingGormRepository) ListCourtsByCategory(
	ctx context.Context,
	clubID uint,
	category string,
) ([]models.Court, error) {

	var courts []models.Court
	if err := r.db.WithContext(ctx).
		Where("club_id = ? AND category = ?", clubID, category).
		Order("id ASC").
		Find(&courts).Error; err != nil {
		return nil, err
	}
	return courts, nil
}

func (r *BookingGormRepository) ListCourts(
	ctx context.Context,
	clubID uint,
) ([]models.Court, error) {

	var courts []models.Court
	if err := r.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order("id ASC").
		Find(&courts).Error; err != nil {
		return nil, err
	}
	return courts, nil
}

func (r *BookingGormRepository) ListAllCourts(
	ctx context.Context,
) ([]models.Court, error) {

	var courts []models.Court
	if err := r.db.WithContext(ctx).
		Order("club_id ASC, id ASC").
		Find(&courts).Error; err != nil {
		return nil, err
	}
	return courts, nil
}

// --------------------------------------------------
// Player
// --------------------------------------------------

func (r *BookingGormRepository) GetOrCreatePlayer(
	ctx context.Context,
	clubID uint,
	name string,
	phone string,
	email string,
	guest bool,
) (*models.Player, error) {

	var player models.Player
	err := r.db.WithContext(ctx).
		Where("club_id = ? AND phone = ?", clubID, phone).
		First(&player).Error

	if err == nil {
		return &player, nil
	}

	player = models.Player{
		ClubID: clubID,
		Name:   name,
		Phone:  phone,
		Email:  email,
		Guest:  guest,
	}

	if err := r.db.WithContext(ctx).Create(&player).Error; err != nil {
		return nil, err
	}

	return &player, nil
}

// --------------------------------------------------
// Availability grid
// --------------------------------------------------

// UpsertAvailability insere a grade ignorando linhas já existentes,
// então re-materializar a mesma entrada é idempotente.
func (r *BookingGormRepository) UpsertAvailability(
	ctx context.Context,
	rows []models.AvailabilitySlot,
) (int64, error) {

	if len(rows) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "court_id"},
				{Name: "date"},
				{Name: "start_min"},
				{Name: "end_min"},
			},
			DoNothing: true,
		}).
		Create(&rows)

	return res.RowsAffected, res.Error
}

func (r *BookingGormRepository) ListSlotsForDay(
	ctx context.Context,
	courtID uint,
	date string,
) ([]models.AvailabilitySlot, error) {

	var slots []models.AvailabilitySlot
	if err := r.db.WithContext(ctx).
		Where("court_id = ? AND date = ?", courtID, date).
		Order("start_min ASC, end_min ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *BookingGormRepository) MarkSlots(
	ctx context.Context,
	courtID uint,
	date string,
	window domain.SlotWindow,
	available bool,
) error {

	return r.db.WithContext(ctx).
		Model(&models.AvailabilitySlot{}).
		Where(
			"court_id = ? AND date = ? AND start_min < ? AND end_min > ?",
			courtID, date, window.EndMin, window.StartMin,
		).
		Update("is_available", available).Error
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) CountOverlappingBookings(
	ctx context.Context,
	courtID uint,
	date string,
	window domain.SlotWindow,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"court_id = ? AND date = ? AND status <> 'cancelled' AND start_min < ? AND end_min > ?",
			courtID, date, window.EndMin, window.StartMin,
		).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// CreateBookingIfFree revalida o conflito por overlap dentro da mesma
// transação do insert, sob FOR UPDATE, para que duas requisições
// concorrentes pela mesma janela não possam ambas passar.
func (r *BookingGormRepository) CreateBookingIfFree(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"court_id = ? AND date = ? AND status <> 'cancelled' AND start_min < ? AND end_min > ?",
				b.CourtID, b.Date, b.EndMin, b.StartMin,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_no_longer_available")
		}

		return tx.Create(b).Error
	})
}

func (r *BookingGormRepository) ListBookingsForDay(
	ctx context.Context,
	courtID uint,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("start_min", "end_min", "status").
		Where(
			"court_id = ? AND date = ? AND status <> 'cancelled'",
			courtID, date,
		).
		Order("start_min ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingForClub(
	ctx context.Context,
	bookingID uint,
	clubID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND club_id = ?", bookingID, clubID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) GetBookingByReference(
	ctx context.Context,
	reference string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Court").
		Where("reference = ?", reference).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	clubID uint,
	startDate string,
	endDate string,
) ([]models.Booking, error) {

	var bookings []models.Booking

	err := r.db.WithContext(ctx).
		Preload("Player").
		Preload("Court").
		Where(
			"club_id = ? AND date >= ? AND date <= ?",
			clubID, startDate, endDate,
		).
		Order("date ASC, start_min ASC").
		Find(&bookings).Error

	if err != nil {
		return nil, err
	}

	return bookings, nil
}

// --------------------------------------------------
// Loyalty
// --------------------------------------------------

func (r *BookingGormRepository) AddLoyaltyStamp(
	ctx context.Context,
	clubID uint,
	playerID uint,
) (*models.LoyaltyCard, error) {

	var card models.LoyaltyCard

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("club_id = ? AND player_id = ?", clubID, playerID).
			First(&card).Error; err != nil {

			card = models.LoyaltyCard{ClubID: clubID, PlayerID: playerID}
			if err := tx.Create(&card).Error; err != nil {
				return err
			}
		}

		card.Stamps++
		card.RewardReady = card.Stamps >= models.LoyaltyStampsForReward

		return tx.Save(&card).Error
	})

	if err != nil {
		return nil, err
	}

	return &card, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
