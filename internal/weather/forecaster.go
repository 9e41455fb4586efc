package weather

import "context"

// Forecast é a dica de previsão anexada à disponibilidade de quadras
// outdoor. Puramente informativa: nunca bloqueia booking.
type Forecast struct {
	Condition       string  `json:"condition"`
	TempMaxC        float64 `json:"temp_max_c"`
	TempMinC        float64 `json:"temp_min_c"`
	PrecipChance    int     `json:"precip_chance"`
	OutdoorFriendly bool    `json:"outdoor_friendly"`
}

type Forecaster interface {
	Forecast(ctx context.Context, lat, lon float64, date string) (*Forecast, error)
}
