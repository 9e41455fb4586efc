package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPhoneValid(t *testing.T) {
	valid := []string{
		"11987654321",
		"(11) 98765-4321",
		"+55 11 98765-4321",
		"1133334444",
	}
	for _, p := range valid {
		assert.True(t, IsPhoneValid(p), "phone %q", p)
	}

	invalid := []string{
		"",
		"12345",
		"987654321", // sem DDD
		"+55 11 98765-4321 000",
		"abc",
	}
	for _, p := range invalid {
		assert.False(t, IsPhoneValid(p), "phone %q", p)
	}
}
