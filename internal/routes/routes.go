package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/padel-club/internal/audit"
	"github.com/BruksfildServices01/padel-club/internal/cache"
	"github.com/BruksfildServices01/padel-club/internal/config"
	domain "github.com/BruksfildServices01/padel-club/internal/domain/booking"
	"github.com/BruksfildServices01/padel-club/internal/handlers"
	infraRepo "github.com/BruksfildServices01/padel-club/internal/infra/repository"
	"github.com/BruksfildServices01/padel-club/internal/middleware"
	"github.com/BruksfildServices01/padel-club/internal/notify"
	"github.com/BruksfildServices01/padel-club/internal/timezone"
	ucBooking "github.com/BruksfildServices01/padel-club/internal/usecase/booking"
	ucCourt "github.com/BruksfildServices01/padel-club/internal/usecase/court"
	"github.com/BruksfildServices01/padel-club/internal/weather"
)

const (
	availabilityCacheTTL = 5 * time.Minute
	forecastCacheTTL     = 30 * time.Minute
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	logger zerolog.Logger,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestTimeout(cfg.RequestTimeout))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	clock := domain.ClockFunc(timezone.Now)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	notifyDispatcher := notify.NewDispatcher(notify.NewLogNotifier(logger), logger)

	var availabilityCache *cache.Availability
	if rdb != nil {
		availabilityCache = cache.NewAvailability(rdb, availabilityCacheTTL, logger)
	}

	var forecaster weather.Forecaster = weather.NewOpenMeteoClient(
		cfg.WeatherBaseURL,
		cfg.RequestTimeout,
	)
	if rdb != nil {
		forecaster = weather.NewCachedForecaster(forecaster, rdb, forecastCacheTTL, logger)
	}

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		clock,
		notifyDispatcher,
		availabilityCache,
		logger,
	)

	confirmBookingUC := ucBooking.NewConfirmBooking(
		bookingRepo,
		clock,
		notifyDispatcher,
		auditDispatcher,
		logger,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		clock,
		notifyDispatcher,
		availabilityCache,
		auditDispatcher,
		logger,
	)

	listByDateUC := ucBooking.NewListBookingsByDate(bookingRepo)
	listByMonthUC := ucBooking.NewListBookingsByMonth(bookingRepo)

	availabilityUC := ucBooking.NewListDayAvailability(
		bookingRepo,
		clock,
		availabilityCache,
	)

	smartBookingUC := ucBooking.NewSmartBooking(bookingRepo, clock)

	// ======================================================
	// 🧠 USE CASES — COURTS
	// ======================================================
	createCourtUC := ucCourt.NewCreateCourt(bookingRepo, auditDispatcher, clock, logger)
	duplicateCourtUC := ucCourt.NewDuplicateCourt(bookingRepo, auditDispatcher, clock, logger)
	regenerateUC := ucCourt.NewRegenerateAvailability(bookingRepo, auditDispatcher, clock)
	extendUC := ucCourt.NewExtendAvailability(bookingRepo, clock, cfg.AvailabilityDaysAhead, logger)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	clubHandler := handlers.NewClubHandler(db)
	clubHoursHandler := handlers.NewClubHoursHandler(db)

	courtHandler := handlers.NewCourtHandler(db, createCourtUC, duplicateCourtUC, regenerateUC)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		confirmBookingUC,
		cancelBookingUC,
		listByDateUC,
		listByMonthUC,
	)

	loyaltyHandler := handlers.NewLoyaltyHandler(db)
	tournamentHandler := handlers.NewTournamentHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	maintenanceHandler := handlers.NewMaintenanceHandler(cfg, extendUC)

	publicHandler := handlers.NewPublicHandler(
		db,
		availabilityUC,
		smartBookingUC,
		createBookingUC,
		cancelBookingUC,
		bookingRepo,
		forecaster,
		logger,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/courts", publicHandler.ListCourts)
			publicAPI.GET("/:slug/availability", publicHandler.DayAvailability)
			publicAPI.GET("/:slug/smart-booking", publicHandler.SmartCheck)
			publicAPI.POST("/:slug/smart-booking", publicHandler.CreateSmartBooking)
			publicAPI.POST("/:slug/bookings", publicHandler.CreateGuestBooking)

			publicAPI.GET("/bookings/:reference", publicHandler.GetBookingByReference)
			publicAPI.PATCH("/bookings/:reference/cancel", publicHandler.CancelByReference)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔧 MANUTENÇÃO (token compartilhado, sem JWT)
		// ------------------------------
		api.POST("/internal/maintenance/extend-availability", maintenanceHandler.ExtendAvailability)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/club", clubHandler.GetMeClub)
			secured.PATCH("/me/club", clubHandler.UpdateMeClub)

			secured.GET("/me/club-hours", clubHoursHandler.Get)
			secured.PUT("/me/club-hours", clubHoursHandler.Update)

			// ------------------------------
			// COURTS
			// ------------------------------
			secured.GET("/me/courts", courtHandler.List)
			secured.POST("/me/courts", courtHandler.Create)
			secured.GET("/me/courts/:id", courtHandler.Get)
			secured.PATCH("/me/courts/:id", courtHandler.Update)
			secured.DELETE("/me/courts/:id", courtHandler.Delete)
			secured.POST("/me/courts/:id/duplicate", courtHandler.Duplicate)
			secured.POST("/me/courts/:id/regenerate-availability", courtHandler.RegenerateAvailability)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/me/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.ListByDate)
			secured.GET("/me/bookings/month", bookingHandler.ListByMonth)
			secured.PATCH("/me/bookings/:id/confirm", bookingHandler.Confirm)
			secured.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)

			// ------------------------------
			// LOYALTY
			// ------------------------------
			secured.GET("/me/loyalty-cards", loyaltyHandler.List)
			secured.GET("/me/loyalty-cards/:playerId", loyaltyHandler.GetByPlayer)
			secured.POST("/me/loyalty-cards/:playerId/redeem", loyaltyHandler.Redeem)

			// ------------------------------
			// TOURNAMENTS
			// ------------------------------
			secured.GET("/me/tournaments", tournamentHandler.List)
			secured.POST("/me/tournaments", tournamentHandler.Create)
			secured.PATCH("/me/tournaments/:id/close", tournamentHandler.Close)
			secured.GET("/me/tournaments/:id/matches", tournamentHandler.ListMatches)
			secured.POST("/me/tournaments/:id/matches", tournamentHandler.CreateMatch)
			secured.PATCH("/me/tournaments/:id/matches/:matchId/result", tournamentHandler.RecordResult)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
