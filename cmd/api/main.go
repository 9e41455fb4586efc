package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/BruksfildServices01/padel-club/internal/cache"
	"github.com/BruksfildServices01/padel-club/internal/config"
	dbpkg "github.com/BruksfildServices01/padel-club/internal/db"
	"github.com/BruksfildServices01/padel-club/internal/logging"
	"github.com/BruksfildServices01/padel-club/internal/middleware"
	"github.com/BruksfildServices01/padel-club/internal/routes"
)

func main() {

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	db := dbpkg.NewDB(cfg, logger)

	// Redis é opcional: sem ele a API funciona, só perde o cache de
	// disponibilidade e de previsão.
	var rdb *redis.Client
	client := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := cache.Ping(ctx, client); err != nil {
		logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, caching disabled")
	} else {
		rdb = client
	}
	cancel()

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, logger)

	logger.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
