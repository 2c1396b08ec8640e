package service

import (
	"fmt"
	"time"
)

/* ==============================
   Period key derivation

   Pure helpers; callable for any (year, month) pair, past or future.
   Months are 1-based everywhere on the API surface.
============================== */

// FridaysInMonth returns every Friday of the given month, ascending.
// Always 4 or 5 dates; these are the fixed slots of the month's grid.
func FridaysInMonth(year, month int) []time.Time {
	fridays := make([]time.Time, 0, 5)
	d := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	for d.Month() == time.Month(month) {
		if d.Weekday() == time.Friday {
			fridays = append(fridays, d)
		}
		d = d.AddDate(0, 0, 1)
	}
	return fridays
}

// FridayKeys is FridaysInMonth rendered as "YYYY-MM-DD" ledger keys.
func FridayKeys(year, month int) []string {
	fridays := FridaysInMonth(year, month)
	keys := make([]string, 0, len(fridays))
	for _, f := range fridays {
		keys = append(keys, f.Format("2006-01-02"))
	}
	return keys
}

// PeriodKey is the "YYYY-MM" key used by the subscription ledger.
func PeriodKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
