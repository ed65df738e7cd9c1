package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Compact creation date layout used by the delivery system exports
const COMPACT_DATE_LAYOUT = "020106"

var nonDigitPattern = regexp.MustCompile(`\D`)

// ParseInt converts string to int
func ParseInt(value string) int {
	parsedValue, _ := strconv.Atoi(value)
	return parsedValue
}

// ParseCompactDate parses the delivery systems' compact ddmmyy creation
// date form, e.g. "010124" -> 2024-01-01. Five-digit input is left-padded
// with a zero ("10124" means 01 Jan 24). Anything that does not reduce to
// six digits, or does not name a real calendar date, yields nil rather
// than an error.
func ParseCompactDate(value string) *time.Time {
	digits := nonDigitPattern.ReplaceAllString(value, "")
	if len(digits) == 5 {
		digits = "0" + digits
	}
	if len(digits) != 6 {
		return nil
	}

	parsed, err := time.Parse(COMPACT_DATE_LAYOUT, digits)
	if err != nil {
		return nil
	}
	return &parsed
}

// NormalizeField trims surrounding whitespace from a raw tabular cell.
func NormalizeField(value string) string {
	return strings.TrimSpace(value)
}
