package models

import "time"

type ClubHours struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ClubID uint `gorm:"uniqueIndex:idx_club_weekday" json:"club_id"`

	Weekday int `gorm:"uniqueIndex:idx_club_weekday" json:"weekday"`

	OpenHour  int  `json:"open_hour"`
	CloseHour int  `json:"close_hour"`
	Closed    bool `gorm:"default:false" json:"closed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
