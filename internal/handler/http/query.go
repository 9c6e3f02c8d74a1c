package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/period"
)

// periodQuery reads the month (name or number) and year query parameters.
// Missing or unreadable values are reported per field.
func periodQuery(r *http.Request) (month, year int, details map[string]string) {
	details = make(map[string]string)

	if raw := r.URL.Query().Get("month"); raw == "" {
		details["month"] = "is required"
	} else if m, err := period.ParseMonth(raw); err != nil {
		details["month"] = "must be a month name or a number between 1 and 12"
	} else {
		month = int(m)
	}

	if raw := r.URL.Query().Get("year"); raw == "" {
		details["year"] = "is required"
	} else if y, err := strconv.Atoi(raw); err != nil {
		details["year"] = "must be a number"
	} else {
		year = y
	}

	if len(details) == 0 {
		return month, year, nil
	}
	return month, year, details
}
