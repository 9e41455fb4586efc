package dto

import "time"

type BookingListDTO struct {
	ID         uint      `json:"id"`
	Reference  string    `json:"reference"`
	CourtName  string    `json:"court_name"`
	Date       string    `json:"date"`
	Start      string    `json:"start"`
	End        string    `json:"end"`
	Status     string    `json:"status"`
	Price      float64   `json:"price"`
	PlayerName string    `json:"player_name"`
	Guest      bool      `json:"guest"`
	CreatedAt  time.Time `json:"created_at"`
}
