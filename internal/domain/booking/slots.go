package booking

import (
	"fmt"

	"github.com/BruksfildServices01/padel-club/internal/httperr"
)

// ===============================
// Slot grid
// ===============================

// SlotWindow é uma janela reservável, em minutos desde a meia-noite.
// Representação canônica do domínio; formatação só na borda (DTO).
type SlotWindow struct {
	StartMin int
	EndMin   int
}

// GenerateSlots emite as janelas candidatas de uma quadra: a partir de
// startHour, janelas de durationMin avançando stepMin, enquanto o fim
// couber antes de endHour. Com step < duration as janelas se sobrepõem
// de propósito, então conflito downstream é sempre por overlap de
// intervalo, nunca por igualdade exata.
func GenerateSlots(startHour, endHour, durationMin, stepMin int) ([]SlotWindow, error) {
	if startHour < 0 || startHour > 23 || endHour < 1 || endHour > 24 || startHour >= endHour {
		return nil, httperr.ErrBusiness("invalid_range")
	}
	if durationMin <= 0 || stepMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	var slots []SlotWindow
	limit := endHour * 60
	for cur := startHour * 60; cur+durationMin <= limit; cur += stepMin {
		slots = append(slots, SlotWindow{StartMin: cur, EndMin: cur + durationMin})
	}
	return slots, nil
}

// Overlaps reporta se as duas janelas compartilham algum minuto.
// Intervalos são meio-abertos: [start, end).
func (w SlotWindow) Overlaps(other SlotWindow) bool {
	return w.StartMin < other.EndMin && w.EndMin > other.StartMin
}

func (w SlotWindow) DurationMin() int {
	return w.EndMin - w.StartMin
}

// ===============================
// Boundary formatting
// ===============================

// FormatHM converte minutos desde a meia-noite para "HH:MM" (24h),
// o formato trocado na borda de dados.
func FormatHM(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// FormatDisplay12 é só apresentação ("h:MM AM/PM"), nunca armazenado.
func FormatDisplay12(min int) string {
	h := min / 60
	m := min % 60
	suffix := "AM"
	switch {
	case h == 0:
		h = 12
	case h == 12:
		suffix = "PM"
	case h > 12:
		h -= 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, m, suffix)
}

// ParseHM faz o caminho inverso de FormatHM.
func ParseHM(hm string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(hm, "%d:%d", &h, &m); err != nil {
		return 0, httperr.ErrBusiness("invalid_date_or_time")
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, httperr.ErrBusiness("invalid_date_or_time")
	}
	return h*60 + m, nil
}
