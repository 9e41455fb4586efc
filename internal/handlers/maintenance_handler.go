package handlers

import (
	"crypto/subtle"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/padel-club/internal/config"
	"github.com/BruksfildServices01/padel-club/internal/httperr"
	ucCourt "github.com/BruksfildServices01/padel-club/internal/usecase/court"
)

type MaintenanceHandler struct {
	cfg      *config.Config
	extendUC *ucCourt.ExtendAvailability
}

func NewMaintenanceHandler(cfg *config.Config, extendUC *ucCourt.ExtendAvailability) *MaintenanceHandler {
	return &MaintenanceHandler{cfg: cfg, extendUC: extendUC}
}

// ExtendAvailability é chamado por um cron externo, não por usuários.
// O token compartilhado é a única autenticação.
func (h *MaintenanceHandler) ExtendAvailability(c *gin.Context) {
	token := c.GetHeader("X-Maintenance-Token")
	if h.cfg.MaintenanceToken == "" ||
		subtle.ConstantTimeCompare([]byte(token), []byte(h.cfg.MaintenanceToken)) != 1 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_maintenance_token"})
		return
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))

	result, err := h.extendUC.Execute(c.Request.Context(), days)
	if err != nil {
		httperr.Internal(c, "maintenance_failed", "Erro ao estender disponibilidade.")
		return
	}

	c.JSON(http.StatusOK, result)
}
