package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/padel-club/internal/domain/booking"
	"github.com/BruksfildServices01/padel-club/internal/httperr"
	"github.com/BruksfildServices01/padel-club/internal/models"
)

func setupAvailability(t *testing.T) (*fakeRepo, *ListDayAvailability) {
	t.Helper()

	repo := newFakeRepo()
	repo.addCourt(models.Court{
		ID:          1,
		ClubID:      1,
		Name:        "Quadra 1",
		Category:    models.CourtCategoryIndoor,
		StartHour:   9,
		EndHour:     12,
		DurationMin: 60,
		StepMin:     30,
	})

	uc := NewListDayAvailability(repo, fixedClock(), nil)
	return repo, uc
}

func TestListDayAvailability_FullGrid(t *testing.T) {
	_, uc := setupAvailability(t)

	windows, err := uc.Execute(context.Background(), DayAvailabilityInput{
		ClubID:  1,
		CourtID: 1,
		Date:    "2026-09-10",
	})
	require.NoError(t, err)

	// 9h-12h, 60min a cada 30min: 09:00, 09:30, 10:00, 10:30, 11:00.
	require.Len(t, windows, 5)
	assert.Equal(t, domain.SlotWindow{StartMin: 540, EndMin: 600}, windows[0])
	assert.Equal(t, domain.SlotWindow{StartMin: 660, EndMin: 720}, windows[4])
}

func TestListDayAvailability_ConflictsRemoved(t *testing.T) {
	repo, uc := setupAvailability(t)

	// Booking 10:00-11:00 derruba toda janela que o toca.
	repo.addBooking(models.Booking{
		ClubID:   1,
		CourtID:  1,
		Date:     "2026-09-10",
		StartMin: 600,
		EndMin:   660,
		Status:   string(domain.StatusPending),
	})

	windows, err := uc.Execute(context.Background(), DayAvailabilityInput{
		ClubID:  1,
		CourtID: 1,
		Date:    "2026-09-10",
	})
	require.NoError(t, err)

	expected := []domain.SlotWindow{
		{StartMin: 540, EndMin: 600}, // encosta no booking, não conflita
		{StartMin: 660, EndMin: 720},
	}
	assert.Equal(t, expected, windows)
}

func TestListDayAvailability_CancelledBookingIgnored(t *testing.T) {
	repo, uc := setupAvailability(t)

	repo.addBooking(models.Booking{
		ClubID:   1,
		CourtID:  1,
		Date:     "2026-09-10",
		StartMin: 600,
		EndMin:   660,
		Status:   string(domain.StatusCancelled),
	})

	windows, err := uc.Execute(context.Background(), DayAvailabilityInput{
		ClubID:  1,
		CourtID: 1,
		Date:    "2026-09-10",
	})
	require.NoError(t, err)
	assert.Len(t, windows, 5)
}

func TestListDayAvailability_ClosedDay(t *testing.T) {
	repo, uc := setupAvailability(t)

	day, err := time.Parse("2006-01-02", "2026-09-10")
	require.NoError(t, err)
	repo.hours[int(day.Weekday())] = &models.ClubHours{ClubID: 1, Weekday: int(day.Weekday()), Closed: true}

	windows, err := uc.Execute(context.Background(), DayAvailabilityInput{
		ClubID:  1,
		CourtID: 1,
		Date:    "2026-09-10",
	})
	require.NoError(t, err)
	assert.NotNil(t, windows)
	assert.Empty(t, windows)
}

func TestListDayAvailability_ClippedToClubHours(t *testing.T) {
	repo, uc := setupAvailability(t)

	day, err := time.Parse("2006-01-02", "2026-09-10")
	require.NoError(t, err)
	repo.hours[int(day.Weekday())] = &models.ClubHours{
		ClubID:    1,
		Weekday:   int(day.Weekday()),
		OpenHour:  10,
		CloseHour: 12,
	}

	windows, err := uc.Execute(context.Background(), DayAvailabilityInput{
		ClubID:  1,
		CourtID: 1,
		Date:    "2026-09-10",
	})
	require.NoError(t, err)

	// O horário do clube (10h-12h) é mais estreito que o da quadra.
	expected := []domain.SlotWindow{
		{StartMin: 600, EndMin: 660},
		{StartMin: 630, EndMin: 690},
		{StartMin: 660, EndMin: 720},
	}
	assert.Equal(t, expected, windows)
}

func TestListDayAvailability_PastWindowsFiltered(t *testing.T) {
	_, uc := setupAvailability(t)

	// Relógio injetado marca 10:00 de 2026-09-01: só janelas que começam
	// depois disso sobrevivem no próprio dia.
	windows, err := uc.Execute(context.Background(), DayAvailabilityInput{
		ClubID:  1,
		CourtID: 1,
		Date:    "2026-09-01",
	})
	require.NoError(t, err)

	expected := []domain.SlotWindow{
		{StartMin: 630, EndMin: 690},
		{StartMin: 660, EndMin: 720},
	}
	assert.Equal(t, expected, windows)
}

func TestListDayAvailability_InvalidDate(t *testing.T) {
	_, uc := setupAvailability(t)

	_, err := uc.Execute(context.Background(), DayAvailabilityInput{
		ClubID:  1,
		CourtID: 1,
		Date:    "10/09/2026",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

func TestListDayAvailability_CourtNotFound(t *testing.T) {
	_, uc := setupAvailability(t)

	_, err := uc.Execute(context.Background(), DayAvailabilityInput{
		ClubID:  1,
		CourtID: 42,
		Date:    "2026-09-10",
	})
	assert.True(t, httperr.IsBusiness(err, "court_not_found"))
}
