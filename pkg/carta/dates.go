package carta

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// spanishMonths in calendar order, lowercase, as written in the letters.
var spanishMonths = []string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// dateLayouts tried in order when parsing an imported or typed date.
var dateLayouts = []string{
	"02/01/2006",
	"2006-01-02",
	"02-01-2006",
	"2006/01/02",
	"02.01.2006",
	"2006.01.02",
	"01/02/2006", // US order, last resort among the slash forms
	"2006/02/01",
}

var spanishLongDateRe = regexp.MustCompile(`^(\d{1,2}) de (\p{L}+) de (\d{4})$`)

// ParseDate converts a date string in any of the accepted formats to a
// time.Time. The Spanish long form ("3 de febrero de 2025") is accepted
// alongside the numeric forms. Unparseable or empty input yields the
// current date rather than an error; letters default to "today".
func ParseDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Now()
	}

	if t, ok := parseSpanishLongDate(value); ok {
		return t
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}

	log.Debug().Str("value", value).Msg("unparseable date, defaulting to today")
	return time.Now()
}

func parseSpanishLongDate(value string) (time.Time, bool) {
	m := spanishLongDateRe.FindStringSubmatch(strings.ToLower(value))
	if m == nil {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[3])
	for i, month := range spanishMonths {
		if month == m[2] {
			return time.Date(year, time.Month(i+1), day, 0, 0, 0, 0, time.Local), true
		}
	}
	return time.Time{}, false
}

// FormatDateSpanish renders a date in the "2 de enero de 2006" form used
// throughout the letters.
func FormatDateSpanish(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}
