package models

import "time"

// Jogador do clube. Pode ser convidado (booking sem conta) ou recorrente.
type Player struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ClubID uint `json:"club_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`
	Guest bool   `gorm:"default:false" json:"guest"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
