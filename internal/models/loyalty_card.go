package models

import "time"

const LoyaltyStampsForReward = 10

// Cartão fidelidade: um selo por booking confirmado.
type LoyaltyCard struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ClubID   uint `gorm:"uniqueIndex:idx_club_player_card" json:"club_id"`
	PlayerID uint `gorm:"uniqueIndex:idx_club_player_card" json:"player_id"`

	Stamps      int  `gorm:"default:0" json:"stamps"`
	RewardReady bool `gorm:"default:false" json:"reward_ready"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
