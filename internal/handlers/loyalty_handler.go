package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/padel-club/internal/httperr"
	"github.com/BruksfildServices01/padel-club/internal/httpresp"
	"github.com/BruksfildServices01/padel-club/internal/middleware"
	"github.com/BruksfildServices01/padel-club/internal/models"
)

type LoyaltyHandler struct {
	db *gorm.DB
}

func NewLoyaltyHandler(db *gorm.DB) *LoyaltyHandler {
	return &LoyaltyHandler{db: db}
}

func (h *LoyaltyHandler) List(c *gin.Context) {
	clubID := c.MustGet(middleware.ContextClubID).(uint)

	var cards []models.LoyaltyCard
	if err := h.db.
		Where("club_id = ?", clubID).
		Order("stamps DESC").
		Find(&cards).Error; err != nil {
		httperr.Internal(c, "failed_to_list_cards", "Erro ao listar cartões.")
		return
	}

	httpresp.List(c, cards)
}

func (h *LoyaltyHandler) GetByPlayer(c *gin.Context) {
	clubID := c.MustGet(middleware.ContextClubID).(uint)

	playerID, err := strconv.ParseUint(c.Param("playerId"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_player_id", "ID de jogador inválido.")
		return
	}

	var card models.LoyaltyCard
	if err := h.db.
		Where("club_id = ? AND player_id = ?", clubID, playerID).
		First(&card).Error; err != nil {
		httperr.NotFound(c, "card_not_found", "Cartão fidelidade não encontrado.")
		return
	}

	httpresp.OK(c, card)
}

// Redeem zera o cartão quando o prêmio é entregue no balcão.
func (h *LoyaltyHandler) Redeem(c *gin.Context) {
	clubID := c.MustGet(middleware.ContextClubID).(uint)

	playerID, err := strconv.ParseUint(c.Param("playerId"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_player_id", "ID de jogador inválido.")
		return
	}

	var card models.LoyaltyCard
	if err := h.db.
		Where("club_id = ? AND player_id = ?", clubID, playerID).
		First(&card).Error; err != nil {
		httperr.NotFound(c, "card_not_found", "Cartão fidelidade não encontrado.")
		return
	}

	if !card.RewardReady {
		httperr.BadRequest(c, "reward_not_ready", "Cartão ainda não completou os selos.")
		return
	}

	card.Stamps = 0
	card.RewardReady = false

	if err := h.db.Save(&card).Error; err != nil {
		httperr.Internal(c, "failed_to_redeem", "Erro ao resgatar prêmio.")
		return
	}

	httpresp.OK(c, card)
}
