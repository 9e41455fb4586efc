package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/padel-club/internal/httperr"
	"github.com/BruksfildServices01/padel-club/internal/httpresp"
	"github.com/BruksfildServices01/padel-club/internal/middleware"
	"github.com/BruksfildServices01/padel-club/internal/models"
)

type ClubHoursHandler struct {
	db *gorm.DB
}

func NewClubHoursHandler(db *gorm.DB) *ClubHoursHandler {
	return &ClubHoursHandler{db: db}
}

type ClubHoursEntry struct {
	Weekday   int  `json:"weekday" binding:"min=0,max=6"`
	OpenHour  int  `json:"open_hour" binding:"min=0,max=23"`
	CloseHour int  `json:"close_hour" binding:"min=0,max=24"`
	Closed    bool `json:"closed"`
}

func (h *ClubHoursHandler) Get(c *gin.Context) {
	clubID := c.MustGet(middleware.ContextClubID).(uint)

	var hours []models.ClubHours
	if err := h.db.
		Where("club_id = ?", clubID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_list_hours", "Erro ao listar horários.")
		return
	}

	httpresp.List(c, hours)
}

func (h *ClubHoursHandler) Update(c *gin.Context) {
	clubID := c.MustGet(middleware.ContextClubID).(uint)

	var req []ClubHoursEntry
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	for _, entry := range req {
		if !entry.Closed && entry.OpenHour >= entry.CloseHour {
			httperr.BadRequest(c, "invalid_range", "Horário de abertura deve ser antes do fechamento.")
			return
		}

		row := models.ClubHours{
			ClubID:    clubID,
			Weekday:   entry.Weekday,
			OpenHour:  entry.OpenHour,
			CloseHour: entry.CloseHour,
			Closed:    entry.Closed,
		}

		if err := h.db.
			Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "club_id"},
					{Name: "weekday"},
				},
				DoUpdates: clause.AssignmentColumns([]string{"open_hour", "close_hour", "closed"}),
			}).
			Create(&row).Error; err != nil {
			httperr.Internal(c, "failed_to_update_hours", "Erro ao salvar horários.")
			return
		}
	}

	h.Get(c)
}
