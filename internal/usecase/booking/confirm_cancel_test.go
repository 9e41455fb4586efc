package booking

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/padel-club/internal/domain/booking"
	"github.com/BruksfildServices01/padel-club/internal/httperr"
	"github.com/BruksfildServices01/padel-club/internal/models"
)

func seedBooking(repo *fakeRepo, status domain.Status) models.Booking {
	repo.addBooking(models.Booking{
		Reference: "ref-123",
		ClubID:    1,
		CourtID:   1,
		PlayerID:  7,
		Date:      "2026-09-10",
		StartMin:  1080,
		EndMin:    1170,
		Status:    string(status),
	})
	return repo.bookings[len(repo.bookings)-1]
}

func TestConfirmBooking(t *testing.T) {
	repo := newFakeRepo()
	seeded := seedBooking(repo, domain.StatusPending)

	uc := NewConfirmBooking(repo, fixedClock(), nil, nil, zerolog.Nop())

	b, err := uc.Execute(context.Background(), 1, 1, seeded.ID)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), b.Status)
	require.NotNil(t, b.ConfirmedAt)

	// Confirmação rende um selo de fidelidade para o jogador.
	card := repo.stamps[7]
	require.NotNil(t, card)
	assert.Equal(t, 1, card.Stamps)
	assert.False(t, card.RewardReady)

	// Segunda confirmação: estado inválido.
	_, err = uc.Execute(context.Background(), 1, 1, seeded.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestConfirmBooking_NotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewConfirmBooking(repo, fixedClock(), nil, nil, zerolog.Nop())

	_, err := uc.Execute(context.Background(), 1, 1, 99)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestConfirmBooking_RewardAfterTenStamps(t *testing.T) {
	repo := newFakeRepo()

	for i := 0; i < models.LoyaltyStampsForReward; i++ {
		_, err := repo.AddLoyaltyStamp(context.Background(), 1, 7)
		require.NoError(t, err)
	}

	card := repo.stamps[7]
	assert.Equal(t, models.LoyaltyStampsForReward, card.Stamps)
	assert.True(t, card.RewardReady)
}

func TestCancelBooking(t *testing.T) {
	repo := newFakeRepo()
	seeded := seedBooking(repo, domain.StatusConfirmed)

	uc := NewCancelBooking(repo, fixedClock(), nil, nil, nil, zerolog.Nop())

	b, err := uc.Execute(context.Background(), 1, 1, seeded.ID)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), b.Status)
	require.NotNil(t, b.CancelledAt)

	// A janela do booking foi reaberta na grade.
	require.NotEmpty(t, repo.marks)
	assert.True(t, repo.marks[0].available)
	assert.Equal(t, domain.SlotWindow{StartMin: 1080, EndMin: 1170}, repo.marks[0].window)
}

func TestCancelBooking_CancelledIsTerminal(t *testing.T) {
	repo := newFakeRepo()
	seeded := seedBooking(repo, domain.StatusCancelled)

	uc := NewCancelBooking(repo, fixedClock(), nil, nil, nil, zerolog.Nop())

	_, err := uc.Execute(context.Background(), 1, 1, seeded.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancelBooking_ReflipsOverlappingSurvivors(t *testing.T) {
	repo := newFakeRepo()
	seeded := seedBooking(repo, domain.StatusPending)

	// Outro booking sobrevive numa janela que toca a cancelada
	// (grades com step < duration se sobrepõem).
	repo.addBooking(models.Booking{
		Reference: "ref-456",
		ClubID:    1,
		CourtID:   1,
		Date:      "2026-09-10",
		StartMin:  1140,
		EndMin:    1230,
		Status:    string(domain.StatusConfirmed),
	})

	uc := NewCancelBooking(repo, fixedClock(), nil, nil, nil, zerolog.Nop())

	_, err := uc.Execute(context.Background(), 1, 1, seeded.ID)
	require.NoError(t, err)

	// Primeiro reabre a janela cancelada, depois re-fecha a do
	// sobrevivente que a sobrepõe.
	require.Len(t, repo.marks, 2)
	assert.True(t, repo.marks[0].available)
	assert.False(t, repo.marks[1].available)
	assert.Equal(t, domain.SlotWindow{StartMin: 1140, EndMin: 1230}, repo.marks[1].window)
}

func TestCancelBooking_ByReference(t *testing.T) {
	repo := newFakeRepo()
	seedBooking(repo, domain.StatusPending)

	uc := NewCancelBooking(repo, fixedClock(), nil, nil, nil, zerolog.Nop())

	b, err := uc.ExecuteByReference(context.Background(), "ref-123")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), b.Status)

	_, err = uc.ExecuteByReference(context.Background(), "nope")
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}
