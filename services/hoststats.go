package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"listings-crawler/models"
)

var (
	// "4,95 sur 5" / "4.95 sur 5"
	ratingRegex = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*sur\s*5`)
	// "1 378 commentaires" — thousands groups may use regular, no-break or
	// narrow no-break spaces
	reviewsRegex = regexp.MustCompile(`(?i)(\d[\d\s\x{00a0}\x{202f}]*)[\s\x{00a0}\x{202f}]+commentaire`)
	// "Hôte depuis 2015"
	tenureRegex   = regexp.MustCompile(`(?i)h[oô]te depuis\s+(\d{4})`)
	nonDigitRegex = regexp.MustCompile(`[^\d]`)
)

// ParseHostStats extracts rating, review count and hosting tenure from a
// block of host text. The three sub-extractions are independent: absence
// of one pattern never blocks the others, and malformed input yields empty
// fields rather than an error.
func ParseHostStats(text string) models.HostStats {
	return parseHostStatsAt(text, time.Now().UTC())
}

func parseHostStatsAt(text string, now time.Time) models.HostStats {
	var stats models.HostStats

	if m := ratingRegex.FindStringSubmatch(text); len(m) >= 2 {
		stats.Rating = strings.ReplaceAll(m[1], ",", ".")
	}

	if m := reviewsRegex.FindStringSubmatch(text); len(m) >= 2 {
		stats.Reviews = nonDigitRegex.ReplaceAllString(m[1], "")
	}

	if m := tenureRegex.FindStringSubmatch(text); len(m) >= 2 {
		if startYear, err := strconv.Atoi(m[1]); err == nil {
			years := now.Year() - startYear
			if years < 0 {
				years = 0
			}
			stats.Years = strconv.Itoa(years)
		}
	}

	return stats
}
