package utils

import "strings"

// NormalizePhone coerces a free-form phone string to digits-only with the
// Brazilian country code. Every non-digit rune is stripped; if the remaining
// digits do not already start with "55" it is prepended once. An empty result
// stays empty so callers can treat the phone as absent.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(digits, "55") {
		return digits
	}
	return "55" + digits
}
