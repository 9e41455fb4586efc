package handlers

import (
	"time"

	domain "github.com/BruksfildServices01/padel-club/internal/domain/booking"
	"github.com/BruksfildServices01/padel-club/internal/models"
	"github.com/BruksfildServices01/padel-club/internal/timezone"
)

// --------------------------------------------------
// Timezone centralizado por clube
// --------------------------------------------------

func locationFromClub(club *models.Club) *time.Location {
	if club != nil {
		return timezone.Location(club.Timezone)
	}
	return timezone.Location("")
}

func parseDateInClub(club *models.Club, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromClub(club),
	)
}

// parseWindow converte o par "HH:MM"/"HH:MM" da borda para a janela
// canônica em minutos.
func parseWindow(startStr, endStr string) (domain.SlotWindow, error) {
	start, err := domain.ParseHM(startStr)
	if err != nil {
		return domain.SlotWindow{}, err
	}
	end, err := domain.ParseHM(endStr)
	if err != nil {
		return domain.SlotWindow{}, err
	}
	return domain.SlotWindow{StartMin: start, EndMin: end}, nil
}
