package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/padel-club/internal/domain/booking"
	"github.com/BruksfildServices01/padel-club/internal/httperr"
	"github.com/BruksfildServices01/padel-club/internal/models"
)

func TestParseWindow(t *testing.T) {
	w, err := parseWindow("18:00", "19:30")
	require.NoError(t, err)
	assert.Equal(t, domain.SlotWindow{StartMin: 1080, EndMin: 1170}, w)

	_, err = parseWindow("25:00", "19:30")
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))

	_, err = parseWindow("18:00", "")
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

func TestParseDateInClub(t *testing.T) {
	club := &models.Club{Timezone: "America/Sao_Paulo"}

	day, err := parseDateInClub(club, "2026-09-10")
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", day.Location().String())

	_, err = parseDateInClub(club, "10/09/2026")
	assert.Error(t, err)

	// Fuso inválido cai no default.
	day, err = parseDateInClub(&models.Club{Timezone: "Nope/Nope"}, "2026-09-10")
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", day.Location().String())
}
