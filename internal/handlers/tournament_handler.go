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

// ======================================================
// HANDLER
// ======================================================

type TournamentHandler struct {
	db *gorm.DB
}

func NewTournamentHandler(db *gorm.DB) *TournamentHandler {
	return &TournamentHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateTournamentRequest struct {
	Name      string `json:"name" binding:"required"`
	Category  string `json:"category" binding:"omitempty,oneof=indoor outdoor"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type CreateMatchRequest struct {
	CourtID  *uint  `json:"court_id"`
	Date     string `json:"date" binding:"required"`
	Start    string `json:"start" binding:"required"`
	End      string `json:"end" binding:"required"`
	HomePair string `json:"home_pair" binding:"required"`
	AwayPair string `json:"away_pair" binding:"required"`
}

type MatchResultRequest struct {
	ScoreHome int `json:"score_home" binding:"min=0"`
	ScoreAway int `json:"score_away" binding:"min=0"`
}

// ======================================================
// TOURNAMENTS
// ======================================================

func (h *TournamentHandler) List(c *gin.Context) {
	clubID := c.MustGet(middleware.ContextClubID).(uint)

	var tournaments []models.Tournament
	if err := h.db.
		Where("club_id = ?", clubID).
		Order("start_date DESC").
		Find(&tournaments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_tournaments", "Erro ao listar torneios.")
		return
	}

	httpresp.List(c, tournaments)
}

func (h *TournamentHandler) Create(c *gin.Context) {
	clubID := c.MustGet(middleware.ContextClubID).(uint)

	var req CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.StartDate > req.EndDate {
		httperr.BadRequest(c, "invalid_range", "Data inicial deve ser antes da final.")
		return
	}

	t := models.Tournament{
		ClubID:    clubID,
		Name:      req.Name,
		Category:  req.Category,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    "open",
	}

	if err := h.db.Create(&t).Error; err != nil {
		httperr.Internal(c, "failed_to_create_tournament", "Erro ao criar torneio.")
		return
	}

	c.JSON(201, t)
}

func (h *TournamentHandler) Close(c *gin.Context) {
	clubID := c.MustGet(middleware.ContextClubID).(uint)

	t, ok := h.findTournament(c, clubID)
	if !ok {
		return
	}

	t.Status = "closed"
	if err := h.db.Save(t).Error; err != nil {
		httperr.Internal(c, "failed_to_update_tournament", "Erro ao encerrar torneio.")
		return
	}

	httpresp.OK(c, t)
}

// ======================================================
// MATCHES
// ======================================================

func (h *TournamentHandler) ListMatches(c *gin.Context) {
	clubID := c.MustGet(middleware.ContextClubID).(uint)

	t, ok := h.findTournament(c, clubID)
	if !ok {
		return
	}

	var matches []models.TournamentMatch
	if err := h.db.
		Where("tournament_id = ?", t.ID).
		Order("date ASC, start_min ASC").
		Find(&matches).Error; err != nil {
		httperr.Internal(c, "failed_to_list_matches", "Erro ao listar partidas.")
		return
	}

	httpresp.List(c, matches)
}

func (h *TournamentHandler) CreateMatch(c *gin.Context) {
	clubID := c.MustGet(middleware.ContextClubID).(uint)

	t, ok := h.findTournament(c, clubID)
	if !ok {
		return
	}

	if t.Status != "open" {
		httperr.BadRequest(c, "invalid_state", "Torneio encerrado não aceita partidas.")
		return
	}

	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	window, err := parseWindow(req.Start, req.End)
	if err != nil {
		writeBusinessError(c, err, "Horário inválido.")
		return
	}

	if req.Date < t.StartDate || req.Date > t.EndDate {
		httperr.BadRequest(c, "invalid_range", "Partida fora do período do torneio.")
		return
	}

	if req.CourtID != nil {
		var court models.Court
		if err := h.db.
			Where("id = ? AND club_id = ?", *req.CourtID, clubID).
			First(&court).Error; err != nil {
			httperr.NotFound(c, "court_not_found", "Quadra não encontrada.")
			return
		}
	}

	m := models.TournamentMatch{
		TournamentID: t.ID,
		CourtID:      req.CourtID,
		Date:         req.Date,
		StartMin:     window.StartMin,
		EndMin:       window.EndMin,
		HomePair:     req.HomePair,
		AwayPair:     req.AwayPair,
	}

	if err := h.db.Create(&m).Error; err != nil {
		httperr.Internal(c, "failed_to_create_match", "Erro ao criar partida.")
		return
	}

	c.JSON(201, m)
}

func (h *TournamentHandler) RecordResult(c *gin.Context) {
	clubID := c.MustGet(middleware.ContextClubID).(uint)

	t, ok := h.findTournament(c, clubID)
	if !ok {
		return
	}

	matchID, err := strconv.ParseUint(c.Param("matchId"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_match_id", "ID de partida inválido.")
		return
	}

	var m models.TournamentMatch
	if err := h.db.
		Where("id = ? AND tournament_id = ?", matchID, t.ID).
		First(&m).Error; err != nil {
		httperr.NotFound(c, "match_not_found", "Partida não encontrada.")
		return
	}

	var req MatchResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	m.ScoreHome = req.ScoreHome
	m.ScoreAway = req.ScoreAway
	m.Played = true

	if err := h.db.Save(&m).Error; err != nil {
		httperr.Internal(c, "failed_to_update_match", "Erro ao registrar resultado.")
		return
	}

	httpresp.OK(c, m)
}

// ======================================================
// HELPERS
// ======================================================

func (h *TournamentHandler) findTournament(c *gin.Context, clubID uint) (*models.Tournament, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_tournament_id", "ID de torneio inválido.")
		return nil, false
	}

	var t models.Tournament
	if err := h.db.
		Where("id = ? AND club_id = ?", id, clubID).
		First(&t).Error; err != nil {
		httperr.NotFound(c, "tournament_not_found", "Torneio não encontrado.")
		return nil, false
	}

	return &t, true
}
