package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/padel-club/internal/httperr"
	"github.com/BruksfildServices01/padel-club/internal/httpresp"
	"github.com/BruksfildServices01/padel-club/internal/middleware"
	"github.com/BruksfildServices01/padel-club/internal/models"
	ucCourt "github.com/BruksfildServices01/padel-club/internal/usecase/court"
)

// ======================================================
// HANDLER
// ======================================================

type CourtHandler struct {
	db           *gorm.DB
	createUC     *ucCourt.CreateCourt
	duplicateUC  *ucCourt.DuplicateCourt
	regenerateUC *ucCourt.RegenerateAvailability
}

func NewCourtHandler(
	db *gorm.DB,
	createUC *ucCourt.CreateCourt,
	duplicateUC *ucCourt.DuplicateCourt,
	regenerateUC *ucCourt.RegenerateAvailability,
) *CourtHandler {
	return &CourtHandler{
		db:           db,
		createUC:     createUC,
		duplicateUC:  duplicateUC,
		regenerateUC: regenerateUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateCourtRequest struct {
	Name         string  `json:"name" binding:"required"`
	Location     string  `json:"location"`
	Category     string  `json:"category" binding:"required,oneof=indoor outdoor"`
	PricePerHour float64 `json:"price_per_hour" binding:"min=0"`
	Description  string  `json:"description"`
	Features     string  `json:"features"`

	StartHour   int `json:"start_hour"`
	EndHour     int `json:"end_hour"`
	DurationMin int `json:"duration_min"`
	StepMin     int `json:"step_min"`
}

type UpdateCourtRequest struct {
	Name         *string  `json:"name"`
	Location     *string  `json:"location"`
	Category     *string  `json:"category"`
	PricePerHour *float64 `json:"price_per_hour"`
	Description  *string  `json:"description"`
	Features     *string  `json:"features"`
}

type DuplicateCourtRequest struct {
	NewName string `json:"new_name" binding:"required"`
}

// ======================================================
// CRUD
// ======================================================

func (h *CourtHandler) List(c *gin.Context) {
	clubID := c.MustGet(middleware.ContextClubID).(uint)

	var courts []models.Court
	if err := h.db.
		Where("club_id = ?", clubID).
		Order("id ASC").
		Find(&courts).Error; err != nil {
		httperr.Internal(c, "failed_to_list_courts", "Erro ao listar quadras.")
		return
	}

	httpresp.List(c, courts)
}

func (h *CourtHandler) Get(c *gin.Context) {
	clubID := c.MustGet(middleware.ContextClubID).(uint)

	courtID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_court_id", "ID de quadra inválido.")
		return
	}

	var court models.Court
	if err := h.db.
		Where("id = ? AND club_id = ?", courtID, clubID).
		First(&court).Error; err != nil {
		httperr.NotFound(c, "court_not_found", "Quadra não encontrada.")
		return
	}

	httpresp.OK(c, court)
}

func (h *CourtHandler) Create(c *gin.Context) {
	clubID := c.MustGet(middleware.ContextClubID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// Defaults da grade quando o dono não configura.
	if req.StartHour == 0 && req.EndHour == 0 {
		req.StartHour, req.EndHour = 8, 22
	}
	if req.DurationMin == 0 {
		req.DurationMin = 90
	}
	if req.StepMin == 0 {
		req.StepMin = 30
	}

	court, err := h.createUC.Execute(c.Request.Context(), ucCourt.CreateCourtInput{
		ClubID:       clubID,
		OwnerID:      userID,
		Name:         req.Name,
		Location:     req.Location,
		Category:     req.Category,
		PricePerHour: req.PricePerHour,
		Description:  req.Description,
		Features:     req.Features,
		StartHour:    req.StartHour,
		EndHour:      req.EndHour,
		DurationMin:  req.DurationMin,
		StepMin:      req.StepMin,
	})
	if err != nil {
		writeBusinessError(c, err, "Erro ao criar quadra.")
		return
	}

	c.JSON(201, court)
}

func (h *CourtHandler) Update(c *gin.Context) {
	clubID := c.MustGet(middleware.ContextClubID).(uint)

	courtID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_court_id", "ID de quadra inválido.")
		return
	}

	var court models.Court
	if err := h.db.
		Where("id = ? AND club_id = ?", courtID, clubID).
		First(&court).Error; err != nil {
		httperr.NotFound(c, "court_not_found", "Quadra não encontrada.")
		return
	}

	var req UpdateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil && *req.Name != "" {
		court.Name = *req.Name
	}
	if req.Location != nil {
		court.Location = *req.Location
	}
	if req.Category != nil &&
		(*req.Category == models.CourtCategoryIndoor || *req.Category == models.CourtCategoryOutdoor) {
		court.Category = *req.Category
	}
	if req.PricePerHour != nil && *req.PricePerHour >= 0 {
		court.PricePerHour = *req.PricePerHour
	}
	if req.Description != nil {
		court.Description = *req.Description
	}
	if req.Features != nil {
		court.Features = *req.Features
	}

	if err := h.db.Save(&court).Error; err != nil {
		httperr.Internal(c, "failed_to_update_court", "Erro ao atualizar quadra.")
		return
	}

	httpresp.OK(c, court)
}

// Delete remove a quadra; slots e bookings caem junto via cascade.
func (h *CourtHandler) Delete(c *gin.Context) {
	clubID := c.MustGet(middleware.ContextClubID).(uint)

	courtID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_court_id", "ID de quadra inválido.")
		return
	}

	var court models.Court
	if err := h.db.
		Where("id = ? AND club_id = ?", courtID, clubID).
		First(&court).Error; err != nil {
		httperr.NotFound(c, "court_not_found", "Quadra não encontrada.")
		return
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("court_id = ?", court.ID).Delete(&models.AvailabilitySlot{}).Error; err != nil {
			return err
		}
		if err := tx.Where("court_id = ?", court.ID).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&court).Error
	}); err != nil {
		httperr.Internal(c, "failed_to_delete_court", "Erro ao excluir quadra.")
		return
	}

	c.JSON(204, nil)
}

// ======================================================
// DUPLICATE / REGENERATE
// ======================================================

func (h *CourtHandler) Duplicate(c *gin.Context) {
	clubID := c.MustGet(middleware.ContextClubID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	courtID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_court_id", "ID de quadra inválido.")
		return
	}

	var req DuplicateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	clone, err := h.duplicateUC.Execute(c.Request.Context(), ucCourt.DuplicateCourtInput{
		ClubID:   clubID,
		OwnerID:  userID,
		SourceID: uint(courtID),
		NewName:  req.NewName,
	})
	if err != nil {
		writeBusinessError(c, err, "Erro ao duplicar quadra.")
		return
	}

	c.JSON(201, clone)
}

func (h *CourtHandler) RegenerateAvailability(c *gin.Context) {
	clubID := c.MustGet(middleware.ContextClubID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	courtID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_court_id", "ID de quadra inválido.")
		return
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))

	written, err := h.regenerateUC.Execute(c.Request.Context(), ucCourt.RegenerateAvailabilityInput{
		ClubID:  clubID,
		OwnerID: userID,
		CourtID: uint(courtID),
		Days:    days,
	})
	if err != nil {
		writeBusinessError(c, err, "Erro ao regenerar disponibilidade.")
		return
	}

	c.JSON(200, gin.H{"rows_written": written})
}
