package handlers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/padel-club/internal/httperr"
)

// Mensagens dos três estados terminais visíveis ao usuário + validações.
var businessMessages = map[string]string{
	"invalid_range":            "Intervalo de horário inválido.",
	"invalid_duration":         "Duração ou passo inválido.",
	"invalid_date_or_time":     "Data ou hora inválida.",
	"outside_operating_hours":  "Fora do horário de funcionamento.",
	"club_closed":              "O clube está fechado neste dia.",
	"no_court_available":       "Nenhuma quadra disponível para este horário.",
	"slot_no_longer_available": "Este horário acabou de ser reservado, escolha outro.",
	"invalid_state":            "Transição de status inválida.",
	"upstream_unavailable":     "Não foi possível completar a operação, tente novamente.",
	"court_not_found":          "Quadra não encontrada.",
	"booking_not_found":        "Reserva não encontrada.",
	"club_not_found":           "Clube não encontrado.",
}

// writeBusinessError traduz BusinessError para o status HTTP correto;
// qualquer outro erro vira 500 genérico.
func writeBusinessError(c *gin.Context, err error, fallback string) {
	// Prazo da requisição estourado no banco/cache: o cliente pode
	// tentar de novo.
	if errors.Is(err, context.DeadlineExceeded) {
		httperr.Unavailable(c, "upstream_unavailable", businessMessages["upstream_unavailable"])
		return
	}

	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", fallback)
		return
	}

	msg, ok := businessMessages[code]
	if !ok {
		msg = fallback
	}

	switch code {
	case "court_not_found", "booking_not_found", "club_not_found":
		httperr.NotFound(c, code, msg)
	case "slot_no_longer_available", "no_court_available", "invalid_state":
		httperr.Conflict(c, code, msg)
	case "upstream_unavailable":
		httperr.Unavailable(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
}
