package chatbot

import (
	"strconv"
	"strings"
)

// ValidEmail reports whether text is a well-formed email address.
func ValidEmail(text string) bool {
	trimmed := strings.TrimSpace(text)
	return !strings.ContainsAny(trimmed, " \t") && emailPattern.MatchString(strings.ToLower(trimmed))
}

// ParseBudget parses a positive budget expression ("5000", "$5,000",
// "3.5k", "2000 eur") and returns its numeric value. The raw text, not the
// parsed value, is what gets stored in the budget slot.
func ParseBudget(text string) (float64, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	for _, cur := range []string{"$", "€", "£", "zł", "usd", "eur", "pln", "gbp"} {
		s = strings.ReplaceAll(s, cur, "")
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	multiplier := 1.0
	if strings.HasSuffix(s, "k") {
		multiplier = 1000
		s = strings.TrimSpace(strings.TrimSuffix(s, "k"))
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || value <= 0 {
		return 0, false
	}
	return value * multiplier, true
}
