package models

import "time"

type Booking struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	ClubID  uint  `json:"club_id"`
	CourtID uint  `gorm:"index:idx_booking_court_date" json:"court_id"`
	Court   Court `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"court"`

	PlayerID uint   `json:"player_id"`
	Player   Player `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"player"`
	Guest    bool   `gorm:"default:false" json:"guest"`

	Date     string `gorm:"size:10;index:idx_booking_court_date" json:"date"`
	StartMin int    `json:"start_min"`
	EndMin   int    `json:"end_min"`

	Status string  `gorm:"size:20;default:'pending'" json:"status"`
	Price  float64 `json:"price"`

	Notes       string     `gorm:"size:255" json:"notes"`
	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
