package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/padel-club/internal/domain/booking"
	"github.com/BruksfildServices01/padel-club/internal/dto"
	"github.com/BruksfildServices01/padel-club/internal/httperr"
	"github.com/BruksfildServices01/padel-club/internal/httpresp"
	"github.com/BruksfildServices01/padel-club/internal/middleware"
	"github.com/BruksfildServices01/padel-club/internal/models"
	ucBooking "github.com/BruksfildServices01/padel-club/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC      *ucBooking.CreateBooking
	confirmUC     *ucBooking.ConfirmBooking
	cancelUC      *ucBooking.CancelBooking
	listByDateUC  *ucBooking.ListBookingsByDate
	listByMonthUC *ucBooking.ListBookingsByMonth
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	confirmUC *ucBooking.ConfirmBooking,
	cancelUC *ucBooking.CancelBooking,
	listByDateUC *ucBooking.ListBookingsByDate,
	listByMonthUC *ucBooking.ListBookingsByMonth,
) *BookingHandler {
	return &BookingHandler{
		createUC:      createUC,
		confirmUC:     confirmUC,
		cancelUC:      cancelUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	CourtID  uint   `json:"court_id" binding:"required"`
	PlayerID uint   `json:"player_id"`
	Date     string `json:"date" binding:"required"`  // YYYY-MM-DD
	Start    string `json:"start" binding:"required"` // HH:MM
	End      string `json:"end" binding:"required"`   // HH:MM
	Notes    string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	clubID := c.MustGet(middleware.ContextClubID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	window, err := parseWindow(req.Start, req.End)
	if err != nil {
		writeBusinessError(c, err, "Horário inválido.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ClubID:   clubID,
		CourtID:  req.CourtID,
		PlayerID: req.PlayerID,
		Date:     req.Date,
		Window:   window,
		Notes:    req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err, "Erro ao criar reserva.")
		return
	}

	c.JSON(201, b)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	clubID := c.MustGet(middleware.ContextClubID).(uint)

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data (YYYY-MM-DD).")
		return
	}

	bookings, err := h.listByDateUC.Execute(c.Request.Context(), clubID, date)
	if err != nil {
		writeBusinessError(c, err, "Erro ao listar reservas.")
		return
	}

	httpresp.List(c, toBookingDTOs(bookings))
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	clubID := c.MustGet(middleware.ContextClubID).(uint)

	year, _ := strconv.Atoi(c.Query("year"))
	month, _ := strconv.Atoi(c.Query("month"))

	bookings, err := h.listByMonthUC.Execute(c.Request.Context(), clubID, year, month)
	if err != nil {
		writeBusinessError(c, err, "Erro ao listar reservas.")
		return
	}

	httpresp.List(c, toBookingDTOs(bookings))
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *BookingHandler) Confirm(c *gin.Context) {
	clubID := c.MustGet(middleware.ContextClubID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "ID de reserva inválido.")
		return
	}

	b, err := h.confirmUC.Execute(c.Request.Context(), clubID, userID, uint(bookingID))
	if err != nil {
		writeBusinessError(c, err, "Erro ao confirmar reserva.")
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	clubID := c.MustGet(middleware.ContextClubID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "ID de reserva inválido.")
		return
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), clubID, userID, uint(bookingID))
	if err != nil {
		writeBusinessError(c, err, "Erro ao cancelar reserva.")
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// MAPPING
// ======================================================

func toBookingDTOs(bookings []models.Booking) []dto.BookingListDTO {
	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:         b.ID,
			Reference:  b.Reference,
			CourtName:  b.Court.Name,
			Date:       b.Date,
			Start:      domain.FormatHM(b.StartMin),
			End:        domain.FormatHM(b.EndMin),
			Status:     b.Status,
			Price:      b.Price,
			PlayerName: b.Player.Name,
			Guest:      b.Guest,
			CreatedAt:  b.CreatedAt,
		})
	}
	return out
}
