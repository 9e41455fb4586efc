package models

import "time"

const (
	CourtCategoryIndoor  = "indoor"
	CourtCategoryOutdoor = "outdoor"
)

type Court struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ClubID uint `gorm:"uniqueIndex:idx_club_court_name" json:"club_id"`
	Club   Club `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"club"`

	Name     string `gorm:"size:100;not null;uniqueIndex:idx_club_court_name" json:"name"`
	Number   int    `json:"number"`
	Location string `gorm:"size:255" json:"location"`

	Category     string  `gorm:"size:20;default:'indoor'" json:"category"`
	PricePerHour float64 `json:"price_per_hour"`

	Description string `gorm:"size:255" json:"description"`
	Features    string `gorm:"size:255" json:"features"`

	// Janela de funcionamento e grade de slots da quadra.
	StartHour   int `gorm:"default:8" json:"start_hour"`
	EndHour     int `gorm:"default:22" json:"end_hour"`
	DurationMin int `gorm:"default:90" json:"duration_min"`
	StepMin     int `gorm:"default:30" json:"step_min"`

	OwnerID uint `json:"owner_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
