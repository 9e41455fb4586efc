package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/padel-club/internal/httperr"
)

func TestGenerateSlots_Basic(t *testing.T) {
	slots, err := GenerateSlots(9, 11, 60, 30)
	require.NoError(t, err)

	expected := []SlotWindow{
		{StartMin: 540, EndMin: 600},
		{StartMin: 570, EndMin: 630},
		{StartMin: 600, EndMin: 660},
	}
	assert.Equal(t, expected, slots)
}

func TestGenerateSlots_NoFit(t *testing.T) {
	// 90min não cabe numa janela de 1h: nenhuma janela, sem erro.
	slots, err := GenerateSlots(9, 10, 90, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_LastSlotTouchesClose(t *testing.T) {
	slots, err := GenerateSlots(21, 22, 60, 30)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, SlotWindow{StartMin: 1260, EndMin: 1320}, slots[0])
}

func TestGenerateSlots_InvalidRange(t *testing.T) {
	cases := [][4]int{
		{10, 9, 60, 30},  // invertido
		{9, 9, 60, 30},   // vazio
		{-1, 10, 60, 30}, // início negativo
		{24, 25, 60, 30}, // fora do dia
		{9, 25, 60, 30},
	}

	for _, c := range cases {
		_, err := GenerateSlots(c[0], c[1], c[2], c[3])
		assert.True(t, httperr.IsBusiness(err, "invalid_range"), "case %v", c)
	}
}

func TestGenerateSlots_InvalidDuration(t *testing.T) {
	_, err := GenerateSlots(9, 11, 0, 30)
	assert.True(t, httperr.IsBusiness(err, "invalid_duration"))

	_, err = GenerateSlots(9, 11, 60, 0)
	assert.True(t, httperr.IsBusiness(err, "invalid_duration"))

	_, err = GenerateSlots(9, 11, -60, 30)
	assert.True(t, httperr.IsBusiness(err, "invalid_duration"))
}

func TestGenerateSlots_AllWindowsWithinBounds(t *testing.T) {
	configs := [][4]int{
		{8, 22, 90, 30},
		{9, 12, 60, 60},
		{0, 24, 120, 45},
		{7, 23, 30, 15},
	}

	for _, c := range configs {
		slots, err := GenerateSlots(c[0], c[1], c[2], c[3])
		require.NoError(t, err)

		for i, w := range slots {
			assert.GreaterOrEqual(t, w.StartMin, c[0]*60)
			assert.LessOrEqual(t, w.EndMin, c[1]*60)
			assert.Equal(t, c[2], w.DurationMin())

			if i > 0 {
				assert.Equal(t, c[3], w.StartMin-slots[i-1].StartMin)
			}
		}
	}
}

func TestSlotWindow_Overlaps(t *testing.T) {
	base := SlotWindow{StartMin: 1080, EndMin: 1170} // 18:00-19:30

	assert.True(t, base.Overlaps(SlotWindow{StartMin: 1110, EndMin: 1200})) // 18:30-20:00
	assert.True(t, base.Overlaps(base))
	assert.True(t, base.Overlaps(SlotWindow{StartMin: 1100, EndMin: 1130})) // contido

	// Intervalos meio-abertos: encostar não é conflito.
	assert.False(t, base.Overlaps(SlotWindow{StartMin: 1170, EndMin: 1260}))
	assert.False(t, base.Overlaps(SlotWindow{StartMin: 1020, EndMin: 1080}))
	assert.False(t, base.Overlaps(SlotWindow{StartMin: 600, EndMin: 660}))
}

func TestFormatAndParseHM(t *testing.T) {
	assert.Equal(t, "09:00", FormatHM(540))
	assert.Equal(t, "18:30", FormatHM(1110))
	assert.Equal(t, "00:00", FormatHM(0))

	min, err := ParseHM("18:30")
	require.NoError(t, err)
	assert.Equal(t, 1110, min)

	min, err = ParseHM("9:05")
	require.NoError(t, err)
	assert.Equal(t, 545, min)

	for _, bad := range []string{"25:00", "10:60", "-1:30", "abc", ""} {
		_, err := ParseHM(bad)
		assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"), "input %q", bad)
	}
}

func TestFormatDisplay12(t *testing.T) {
	assert.Equal(t, "12:00 AM", FormatDisplay12(0))
	assert.Equal(t, "9:30 AM", FormatDisplay12(570))
	assert.Equal(t, "12:15 PM", FormatDisplay12(735))
	assert.Equal(t, "6:00 PM", FormatDisplay12(1080))
}
