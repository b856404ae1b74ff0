package utils

import (
	"strings"
)

// DigitsOf strips phone to its digit characters.
func DigitsOf(phone string) string {
	var b strings.Builder
	for _, ch := range phone {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// NormalizePhone canonicalizes a raw contact string. An 11-digit number with
// the domestic trunk prefix "8" becomes the international "+7" form; a value
// already carrying a leading plus keeps it over the bare digits; anything
// else is reduced to digits only. Idempotent.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	digits := DigitsOf(phone)

	if len(digits) == 11 && strings.HasPrefix(digits, "8") {
		return "+7" + digits[1:]
	}
	if strings.HasPrefix(phone, "+") {
		return "+" + digits
	}
	return digits
}

// NormalizeTelegramHandle strips whitespace and a leading "@". Idempotent;
// the "@" is re-added whenever the handle is shown to humans.
func NormalizeTelegramHandle(handle string) string {
	handle = strings.ReplaceAll(strings.TrimSpace(handle), " ", "")
	return strings.TrimPrefix(handle, "@")
}

// DisplayTelegramHandle renders a stored handle for humans, "-" when empty.
func DisplayTelegramHandle(handle string) string {
	if handle == "" {
		return "-"
	}
	if strings.HasPrefix(handle, "@") {
		return handle
	}
	return "@" + handle
}
