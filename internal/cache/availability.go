package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/padel-club/internal/domain/booking"
)

// Availability guarda em Redis as janelas livres de uma quadra/dia já
// filtradas por conflito. Nunca é fonte de verdade: miss ou erro caem
// no cálculo normal, e mutações de booking invalidam o dia.
type Availability struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewAvailability(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *Availability {
	return &Availability{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func dayKey(courtID uint, date string) string {
	return fmt.Sprintf("avail:%d:%s", courtID, date)
}

func (c *Availability) GetDay(ctx context.Context, courtID uint, date string) ([]domain.SlotWindow, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	val, err := c.client.Get(ctx, dayKey(courtID, date)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Warn().Err(err).Msg("availability cache read failed")
		return nil, false
	}

	var windows []domain.SlotWindow
	if err := json.Unmarshal([]byte(val), &windows); err != nil {
		return nil, false
	}

	return windows, true
}

func (c *Availability) SetDay(ctx context.Context, courtID uint, date string, windows []domain.SlotWindow) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(windows)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, dayKey(courtID, date), data, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("availability cache write failed")
	}
}

func (c *Availability) InvalidateDay(ctx context.Context, courtID uint, date string) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Del(ctx, dayKey(courtID, date)).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("availability cache invalidate failed")
	}
}

// NewRedisClient cria o cliente a partir da config.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// Ping valida a conexão no boot; cache é opcional, o chamador decide
// se segue sem Redis.
func Ping(ctx context.Context, client *redis.Client) error {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}
