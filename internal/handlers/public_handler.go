package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/padel-club/internal/domain/booking"
	"github.com/BruksfildServices01/padel-club/internal/dto"
	"github.com/BruksfildServices01/padel-club/internal/httperr"
	"github.com/BruksfildServices01/padel-club/internal/httpresp"
	"github.com/BruksfildServices01/padel-club/internal/models"
	ucBooking "github.com/BruksfildServices01/padel-club/internal/usecase/booking"
	"github.com/BruksfildServices01/padel-club/internal/validators"
	"github.com/BruksfildServices01/padel-club/internal/weather"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	db             *gorm.DB
	availabilityUC *ucBooking.ListDayAvailability
	smartUC        *ucBooking.SmartBooking
	createUC       *ucBooking.CreateBooking
	cancelUC       *ucBooking.CancelBooking
	repo           domain.Repository
	forecaster     weather.Forecaster
	logger         zerolog.Logger
}

func NewPublicHandler(
	db *gorm.DB,
	availabilityUC *ucBooking.ListDayAvailability,
	smartUC *ucBooking.SmartBooking,
	createUC *ucBooking.CreateBooking,
	cancelUC *ucBooking.CancelBooking,
	repo domain.Repository,
	forecaster weather.Forecaster,
	logger zerolog.Logger,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
		smartUC:        smartUC,
		createUC:       createUC,
		cancelUC:       cancelUC,
		repo:           repo,
		forecaster:     forecaster,
		logger:         logger,
	}
}

// ======================================================
// DTOs
// ======================================================

type GuestBookingRequest struct {
	PlayerName  string `json:"player_name" binding:"required"`
	PlayerPhone string `json:"player_phone" binding:"required"`
	PlayerEmail string `json:"player_email"`

	CourtID uint   `json:"court_id" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Start   string `json:"start" binding:"required"`
	End     string `json:"end" binding:"required"`
	Notes   string `json:"notes"`
}

type SmartBookingRequest struct {
	PlayerName  string `json:"player_name" binding:"required"`
	PlayerPhone string `json:"player_phone" binding:"required"`
	PlayerEmail string `json:"player_email"`

	Category string `json:"category" binding:"required,oneof=indoor outdoor"`
	Date     string `json:"date" binding:"required"`
	Start    string `json:"start" binding:"required"`
	End      string `json:"end" binding:"required"`
}

// ======================================================
// COURTS
// ======================================================

func (h *PublicHandler) ListCourts(c *gin.Context) {
	slug := c.Param("slug")

	var club models.Club
	if err := h.db.Where("slug = ?", slug).First(&club).Error; err != nil {
		httperr.NotFound(c, "club_not_found", "Clube não encontrado.")
		return
	}

	category := strings.TrimSpace(strings.ToLower(c.Query("category")))

	q := h.db.Where("club_id = ?", club.ID)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var courts []models.Court
	if err := q.Order("id ASC").Find(&courts).Error; err != nil {
		httperr.Internal(c, "failed_to_list_courts", "Erro ao listar quadras.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"club":   club,
		"courts": courts,
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) DayAvailability(c *gin.Context) {
	slug := c.Param("slug")
	dateStr := c.Query("date")

	courtID, err := strconv.ParseUint(c.Query("court_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_court_id", "ID de quadra inválido.")
		return
	}

	club, err := h.repo.GetClubBySlug(c.Request.Context(), slug)
	if err != nil {
		httperr.NotFound(c, "club_not_found", "Clube não encontrado.")
		return
	}

	windows, err := h.availabilityUC.Execute(c.Request.Context(), ucBooking.DayAvailabilityInput{
		ClubID:  club.ID,
		CourtID: uint(courtID),
		Date:    dateStr,
	})
	if err != nil {
		writeBusinessError(c, err, "Erro ao consultar disponibilidade.")
		return
	}

	out := dto.DayAvailabilityDTO{
		CourtID: uint(courtID),
		Date:    dateStr,
		Windows: toWindowDTOs(windows),
	}

	// Dica de previsão só para quadra descoberta; nunca bloqueia nada.
	if court, err := h.repo.GetCourt(c.Request.Context(), club.ID, uint(courtID)); err == nil &&
		court.Category == models.CourtCategoryOutdoor && h.forecaster != nil {

		if f, err := h.forecaster.Forecast(
			c.Request.Context(), club.Latitude, club.Longitude, dateStr,
		); err == nil {
			out.Forecast = f
		} else {
			h.logger.Debug().Err(err).Msg("forecast unavailable")
		}
	}

	httpresp.OK(c, out)
}

// SmartCheck responde se alguma quadra da categoria está livre na
// janela, sem se comprometer com uma quadra específica.
func (h *PublicHandler) SmartCheck(c *gin.Context) {
	slug := c.Param("slug")

	club, err := h.repo.GetClubBySlug(c.Request.Context(), slug)
	if err != nil {
		httperr.NotFound(c, "club_not_found", "Clube não encontrado.")
		return
	}

	window, err := parseWindow(c.Query("start"), c.Query("end"))
	if err != nil {
		writeBusinessError(c, err, "Horário inválido.")
		return
	}

	available, err := h.smartUC.IsAnySlotAvailable(c.Request.Context(), ucBooking.SmartBookingQuery{
		ClubID:   club.ID,
		Category: c.Query("category"),
		Date:     c.Query("date"),
		Window:   window,
	})
	if err != nil {
		writeBusinessError(c, err, "Erro ao consultar disponibilidade.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": available})
}

// ======================================================
// BOOKINGS
// ======================================================

func (h *PublicHandler) CreateGuestBooking(c *gin.Context) {
	slug := c.Param("slug")

	club, err := h.repo.GetClubBySlug(c.Request.Context(), slug)
	if err != nil {
		httperr.NotFound(c, "club_not_found", "Clube não encontrado.")
		return
	}

	var req GuestBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsPhoneValid(req.PlayerPhone) {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}

	window, err := parseWindow(req.Start, req.End)
	if err != nil {
		writeBusinessError(c, err, "Horário inválido.")
		return
	}

	player, err := h.repo.GetOrCreatePlayer(
		c.Request.Context(),
		club.ID,
		req.PlayerName,
		req.PlayerPhone,
		req.PlayerEmail,
		true,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_create_player", "Erro ao registrar jogador.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ClubID:   club.ID,
		CourtID:  req.CourtID,
		PlayerID: player.ID,
		Guest:    true,
		Date:     req.Date,
		Window:   window,
		Notes:    req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err, "Erro ao criar reserva.")
		return
	}

	c.JSON(http.StatusCreated, b)
}

// CreateSmartBooking: o clube escolhe a quadra. A atribuição do
// assigner é provisória; quem decide é a revalidação do writer.
func (h *PublicHandler) CreateSmartBooking(c *gin.Context) {
	slug := c.Param("slug")

	club, err := h.repo.GetClubBySlug(c.Request.Context(), slug)
	if err != nil {
		httperr.NotFound(c, "club_not_found", "Clube não encontrado.")
		return
	}

	var req SmartBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsPhoneValid(req.PlayerPhone) {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}

	window, err := parseWindow(req.Start, req.End)
	if err != nil {
		writeBusinessError(c, err, "Horário inválido.")
		return
	}

	court, err := h.smartUC.AssignCourt(c.Request.Context(), ucBooking.SmartBookingQuery{
		ClubID:   club.ID,
		Category: req.Category,
		Date:     req.Date,
		Window:   window,
	})
	if err != nil {
		writeBusinessError(c, err, "Nenhuma quadra disponível.")
		return
	}

	player, err := h.repo.GetOrCreatePlayer(
		c.Request.Context(),
		club.ID,
		req.PlayerName,
		req.PlayerPhone,
		req.PlayerEmail,
		true,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_create_player", "Erro ao registrar jogador.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ClubID:   club.ID,
		CourtID:  court.ID,
		PlayerID: player.ID,
		Guest:    true,
		Date:     req.Date,
		Window:   window,
	})
	if err != nil {
		writeBusinessError(c, err, "Erro ao criar reserva.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking": b,
		"court":   court,
	})
}

func (h *PublicHandler) GetBookingByReference(c *gin.Context) {
	ref := c.Param("reference")

	b, err := h.repo.GetBookingByReference(c.Request.Context(), ref)
	if err != nil {
		httperr.NotFound(c, "booking_not_found", "Reserva não encontrada.")
		return
	}

	httpresp.OK(c, b)
}

func (h *PublicHandler) CancelByReference(c *gin.Context) {
	ref := c.Param("reference")

	b, err := h.cancelUC.ExecuteByReference(c.Request.Context(), ref)
	if err != nil {
		writeBusinessError(c, err, "Erro ao cancelar reserva.")
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// MAPPING
// ======================================================

func toWindowDTOs(windows []domain.SlotWindow) []dto.SlotWindowDTO {
	out := make([]dto.SlotWindowDTO, 0, len(windows))
	for _, w := range windows {
		out = append(out, dto.SlotWindowDTO{
			Start:   domain.FormatHM(w.StartMin),
			End:     domain.FormatHM(w.EndMin),
			Display: domain.FormatDisplay12(w.StartMin),
		})
	}
	return out
}
