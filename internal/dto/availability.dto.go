package dto

import "github.com/BruksfildServices01/padel-club/internal/weather"

type SlotWindowDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
	// Forma 12h só para exibição; Start/End (24h) são o contrato.
	Display string `json:"display"`
}

type DayAvailabilityDTO struct {
	CourtID  uint              `json:"court_id"`
	Date     string            `json:"date"`
	Windows  []SlotWindowDTO   `json:"windows"`
	Forecast *weather.Forecast `json:"forecast,omitempty"`
}
