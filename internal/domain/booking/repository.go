package booking

import (
	"context"

	"github.com/BruksfildServices01/padel-club/internal/models"
)

type Repository interface {
	// -------- Club --------
	GetClubByID(
		ctx context.Context,
		id uint,
	) (*models.Club, error)

	GetClubBySlug(
		ctx context.Context,
		slug string,
	) (*models.Club, error)

	GetClubHours(
		ctx context.Context,
		clubID uint,
		weekday int,
	) (*models.ClubHours, error)

	// -------- Court --------
	GetCourt(
		ctx context.Context,
		clubID uint,
		courtID uint,
	) (*models.Court, error)

	CreateCourt(
		ctx context.Context,
		court *models.Court,
	) error

	// Ordenada por id asc: ordem de criação é o tie-break
	// determinístico do assigner.
	ListCourtsByCategory(
		ctx context.Context,
		clubID uint,
		category string,
	) ([]models.Court, error)

	ListCourts(
		ctx context.Context,
		clubID uint,
	) ([]models.Court, error)

	// Todas as quadras de todos os clubes; usada pelo job de
	// manutenção que estende a grade de disponibilidade.
	ListAllCourts(
		ctx context.Context,
	) ([]models.Court, error)

	// -------- Player (guest ou recorrente) --------
	GetOrCreatePlayer(
		ctx context.Context,
		clubID uint,
		name string,
		phone string,
		email string,
		guest bool,
	) (*models.Player, error)

	// -------- Availability grid --------
	UpsertAvailability(
		ctx context.Context,
		rows []models.AvailabilitySlot,
	) (int64, error)

	ListSlotsForDay(
		ctx context.Context,
		courtID uint,
		date string,
	) ([]models.AvailabilitySlot, error)

	MarkSlots(
		ctx context.Context,
		courtID uint,
		date string,
		window SlotWindow,
		available bool,
	) error

	// -------- Booking (create / conflict) --------
	CountOverlappingBookings(
		ctx context.Context,
		courtID uint,
		date string,
		window SlotWindow,
	) (int64, error)

	// Check-and-insert transacional: revalida o overlap sob lock
	// e insere; conflito vira slot_no_longer_available.
	CreateBookingIfFree(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForDay(
		ctx context.Context,
		courtID uint,
		date string,
	) ([]models.Booking, error)

	// -------- Booking (state change) --------
	GetBookingForClub(
		ctx context.Context,
		bookingID uint,
		clubID uint,
	) (*models.Booking, error)

	GetBookingByReference(
		ctx context.Context,
		reference string,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForPeriod(
		ctx context.Context,
		clubID uint,
		startDate string,
		endDate string,
	) ([]models.Booking, error)

	// -------- Loyalty --------
	AddLoyaltyStamp(
		ctx context.Context,
		clubID uint,
		playerID uint,
	) (*models.LoyaltyCard, error)
}
