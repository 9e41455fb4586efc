package models

import "time"

// Linha materializada da grade de disponibilidade. Cache de exibição:
// a fonte de verdade para conflito é sempre o overlap de bookings.
type AvailabilitySlot struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	CourtID uint  `gorm:"uniqueIndex:idx_court_date_window" json:"court_id"`
	Court   Court `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Date     string `gorm:"size:10;uniqueIndex:idx_court_date_window" json:"date"`
	StartMin int    `gorm:"uniqueIndex:idx_court_date_window" json:"start_min"`
	EndMin   int    `gorm:"uniqueIndex:idx_court_date_window" json:"end_min"`

	IsAvailable bool `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
