package models

import "time"

type Tournament struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ClubID uint `json:"club_id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Category  string `gorm:"size:20" json:"category"`
	StartDate string `gorm:"size:10" json:"start_date"`
	EndDate   string `gorm:"size:10" json:"end_date"`
	Status    string `gorm:"size:20;default:'open'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TournamentMatch struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	TournamentID uint       `json:"tournament_id"`
	Tournament   Tournament `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CourtID *uint `json:"court_id"`

	Date     string `gorm:"size:10" json:"date"`
	StartMin int    `json:"start_min"`
	EndMin   int    `json:"end_min"`

	HomePair string `gorm:"size:100" json:"home_pair"`
	AwayPair string `gorm:"size:100" json:"away_pair"`

	ScoreHome int  `json:"score_home"`
	ScoreAway int  `json:"score_away"`
	Played    bool `gorm:"default:false" json:"played"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
