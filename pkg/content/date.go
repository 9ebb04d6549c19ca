package content

import (
	"fmt"
	"strings"
	"time"
)

// monthNumbers maps Spanish month names to their two-digit numbers.
var monthNumbers = map[string]string{
	"enero":      "01",
	"febrero":    "02",
	"marzo":      "03",
	"abril":      "04",
	"mayo":       "05",
	"junio":      "06",
	"julio":      "07",
	"agosto":     "08",
	"septiembre": "09",
	"octubre":    "10",
	"noviembre":  "11",
	"diciembre":  "12",
}

// ParseSpanishDate converts the source site's long-form Spanish date
// ("Martes 13 de febrero de 2025") to ISO "2006-01-02". A leading weekday
// is tolerated and dropped.
func ParseSpanishDate(raw string) (string, error) {
	fields := strings.Fields(strings.ToLower(raw))
	if len(fields) == 0 {
		return "", fmt.Errorf("empty date string")
	}

	// "13 de febrero de 2025" has five fields; anything longer starts
	// with the weekday ("martes 13 de febrero de 2025").
	if len(fields) > 5 {
		fields = fields[len(fields)-5:]
	}
	s := strings.Join(fields, " ")

	for name, number := range monthNumbers {
		s = strings.Replace(s, name, number, 1)
	}

	t, err := time.Parse("2 de 01 de 2006", s)
	if err != nil {
		return "", fmt.Errorf("unrecognized date %q: %w", raw, err)
	}
	return t.Format("2006-01-02"), nil
}
