package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/padel-club/internal/domain/booking"
	"github.com/BruksfildServices01/padel-club/internal/httperr"
	"github.com/BruksfildServices01/padel-club/internal/models"
)

func setupSmart(t *testing.T) (*fakeRepo, *SmartBooking) {
	t.Helper()

	repo := newFakeRepo()
	for i := uint(1); i <= 2; i++ {
		repo.addCourt(models.Court{
			ID:          i,
			ClubID:      1,
			Category:    models.CourtCategoryIndoor,
			StartHour:   8,
			EndHour:     22,
			DurationMin: 90,
			StepMin:     30,
		})
	}
	repo.addCourt(models.Court{
		ID:          3,
		ClubID:      1,
		Category:    models.CourtCategoryOutdoor,
		StartHour:   8,
		EndHour:     20,
		DurationMin: 90,
		StepMin:     30,
	})

	return repo, NewSmartBooking(repo, fixedClock())
}

func query(category string, window domain.SlotWindow) SmartBookingQuery {
	return SmartBookingQuery{
		ClubID:   1,
		Category: category,
		Date:     "2026-09-10",
		Window:   window,
	}
}

func TestSmartBooking_AssignsFirstFreeCourt(t *testing.T) {
	_, uc := setupSmart(t)

	court, err := uc.AssignCourt(context.Background(), query(
		models.CourtCategoryIndoor,
		domain.SlotWindow{StartMin: 1080, EndMin: 1170},
	))
	require.NoError(t, err)

	// Duas quadras livres: a de menor id ganha, sempre.
	assert.Equal(t, uint(1), court.ID)
}

func TestSmartBooking_SkipsBusyCourt(t *testing.T) {
	repo, uc := setupSmart(t)

	repo.addBooking(models.Booking{
		ClubID:   1,
		CourtID:  1,
		Date:     "2026-09-10",
		StartMin: 1080,
		EndMin:   1170,
		Status:   string(domain.StatusConfirmed),
	})

	court, err := uc.AssignCourt(context.Background(), query(
		models.CourtCategoryIndoor,
		domain.SlotWindow{StartMin: 1110, EndMin: 1200}, // sobrepõe a quadra 1
	))
	require.NoError(t, err)
	assert.Equal(t, uint(2), court.ID)
}

func TestSmartBooking_NoCourtAvailable(t *testing.T) {
	repo, uc := setupSmart(t)

	for _, courtID := range []uint{1, 2} {
		repo.addBooking(models.Booking{
			ClubID:   1,
			CourtID:  courtID,
			Date:     "2026-09-10",
			StartMin: 1080,
			EndMin:   1170,
			Status:   string(domain.StatusPending),
		})
	}

	_, err := uc.AssignCourt(context.Background(), query(
		models.CourtCategoryIndoor,
		domain.SlotWindow{StartMin: 1080, EndMin: 1170},
	))
	assert.True(t, httperr.IsBusiness(err, "no_court_available"))

	available, err := uc.IsAnySlotAvailable(context.Background(), query(
		models.CourtCategoryIndoor,
		domain.SlotWindow{StartMin: 1080, EndMin: 1170},
	))
	require.NoError(t, err)
	assert.False(t, available)
}

func TestSmartBooking_RespectsCourtHours(t *testing.T) {
	_, uc := setupSmart(t)

	// Quadra outdoor fecha às 20h: janela até 21h não serve.
	available, err := uc.IsAnySlotAvailable(context.Background(), query(
		models.CourtCategoryOutdoor,
		domain.SlotWindow{StartMin: 1170, EndMin: 1260},
	))
	require.NoError(t, err)
	assert.False(t, available)

	available, err = uc.IsAnySlotAvailable(context.Background(), query(
		models.CourtCategoryOutdoor,
		domain.SlotWindow{StartMin: 1080, EndMin: 1170},
	))
	require.NoError(t, err)
	assert.True(t, available)
}

func TestSmartBooking_PastNeverAvailable(t *testing.T) {
	_, uc := setupSmart(t)

	q := query(models.CourtCategoryIndoor, domain.SlotWindow{StartMin: 1080, EndMin: 1170})
	q.Date = "2026-08-20"

	available, err := uc.IsAnySlotAvailable(context.Background(), q)
	require.NoError(t, err)
	assert.False(t, available)
}

func TestSmartBooking_InvalidWindow(t *testing.T) {
	_, uc := setupSmart(t)

	_, err := uc.IsAnySlotAvailable(context.Background(), query(
		models.CourtCategoryIndoor,
		domain.SlotWindow{StartMin: 1170, EndMin: 1080},
	))
	assert.True(t, httperr.IsBusiness(err, "invalid_range"))
}
