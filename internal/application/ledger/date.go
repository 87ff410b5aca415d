package ledger

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const isoDate = "2006-01-02"

var reBRDate = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

// NormalizeDate convierte DD/MM/YYYY en YYYY-MM-DD. Una entrada con '-' se considera ya
// normalizada y se devuelve tal cual si es una fecha válida. Cualquier otra forma, o una
// fecha inexistente, devuelve la fecha de now y ok=false.
func NormalizeDate(s string, now time.Time) (string, bool) {
	s = strings.TrimSpace(s)
	today := now.Format(isoDate)

	if m := reBRDate.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		out := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		if !validDate(out) {
			return today, false
		}
		return out, true
	}

	if strings.Contains(s, "-") {
		if validDate(s) {
			return s, true
		}
		// "2025-03-05T00:00:00Z" y similares: se conserva solo la fecha.
		if len(s) > len(isoDate) && s[len(isoDate)] == 'T' {
			if validDate(s[:len(isoDate)]) {
				return s[:len(isoDate)], true
			}
		}
	}
	return today, false
}

// validDate fecha de calendario existente; el año 0 lo acepta time.Parse pero no el tipo DATE de Postgres.
func validDate(s string) bool {
	t, err := time.Parse(isoDate, s)
	return err == nil && t.Year() >= 1
}

// ParseDate normaliza y devuelve la fecha como time.Time (UTC, medianoche).
func ParseDate(s string, now time.Time) (time.Time, bool) {
	out, ok := NormalizeDate(s, now)
	t, err := time.Parse(isoDate, out)
	if err != nil {
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), false
	}
	return t, ok
}
