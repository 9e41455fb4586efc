package validators

import "strings"

// IsPhoneValid aceita formatos BR comuns: com ou sem +55, DDD
// obrigatório, separadores livres. Só valida a contagem de dígitos.
func IsPhoneValid(phone string) bool {
	digits := strings.Builder{}
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	n := digits.Len()

	// 10-11 locais (DDD + número), 12-13 com código do país.
	return n >= 10 && n <= 13
}
