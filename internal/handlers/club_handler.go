package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/padel-club/internal/httperr"
	"github.com/BruksfildServices01/padel-club/internal/httpresp"
	"github.com/BruksfildServices01/padel-club/internal/middleware"
	"github.com/BruksfildServices01/padel-club/internal/models"
	"github.com/BruksfildServices01/padel-club/internal/timezone"
)

type ClubHandler struct {
	db *gorm.DB
}

func NewClubHandler(db *gorm.DB) *ClubHandler {
	return &ClubHandler{db: db}
}

type UpdateClubRequest struct {
	Name          *string  `json:"name"`
	Phone         *string  `json:"phone"`
	Address       *string  `json:"address"`
	Timezone      *string  `json:"timezone"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	DaysInAdvance *int     `json:"days_in_advance"`
}

func (h *ClubHandler) GetMeClub(c *gin.Context) {
	clubID := c.MustGet(middleware.ContextClubID).(uint)

	var club models.Club
	if err := h.db.First(&club, clubID).Error; err != nil {
		httperr.NotFound(c, "club_not_found", "Clube não encontrado.")
		return
	}

	httpresp.OK(c, club)
}

func (h *ClubHandler) UpdateMeClub(c *gin.Context) {
	clubID := c.MustGet(middleware.ContextClubID).(uint)

	var club models.Club
	if err := h.db.First(&club, clubID).Error; err != nil {
		httperr.NotFound(c, "club_not_found", "Clube não encontrado.")
		return
	}

	var req UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		club.Name = *req.Name
	}
	if req.Phone != nil {
		club.Phone = *req.Phone
	}
	if req.Address != nil {
		club.Address = *req.Address
	}
	if req.Timezone != nil && timezone.IsValid(*req.Timezone) {
		club.Timezone = *req.Timezone
	}
	if req.Latitude != nil {
		club.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		club.Longitude = *req.Longitude
	}
	if req.DaysInAdvance != nil && *req.DaysInAdvance > 0 {
		club.DaysInAdvance = *req.DaysInAdvance
	}

	if err := h.db.Save(&club).Error; err != nil {
		httperr.Internal(c, "failed_to_update_club", "Erro ao atualizar clube.")
		return
	}

	httpresp.OK(c, club)
}
