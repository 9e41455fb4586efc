package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// CachedForecaster evita bater no provedor a cada consulta de
// disponibilidade: previsão diária muda devagar, 1h de TTL basta.
type CachedForecaster struct {
	next   Forecaster
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewCachedForecaster(next Forecaster, client *redis.Client, ttl time.Duration, logger zerolog.Logger) *CachedForecaster {
	return &CachedForecaster{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CachedForecaster) Forecast(ctx context.Context, lat, lon float64, date string) (*Forecast, error) {
	key := fmt.Sprintf("wx:%.4f:%.4f:%s", lat, lon, date)

	if c.client != nil {
		if val, err := c.client.Get(ctx, key).Result(); err == nil {
			var f Forecast
			if err := json.Unmarshal([]byte(val), &f); err == nil {
				return &f, nil
			}
		}
	}

	f, err := c.next.Forecast(ctx, lat, lon, date)
	if err != nil {
		return nil, err
	}

	if c.client != nil {
		if data, err := json.Marshal(f); err == nil {
			if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
				c.logger.Warn().Err(err).Msg("forecast cache write failed")
			}
		}
	}

	return f, nil
}

var _ Forecaster = (*CachedForecaster)(nil)
