package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFridaysInMonth(t *testing.T) {
	// August 2025 has five Fridays: 1, 8, 15, 22, 29.
	fridays := FridaysInMonth(2025, 8)
	assert.Len(t, fridays, 5)
	assert.Equal(t, 1, fridays[0].Day())
	assert.Equal(t, 29, fridays[4].Day())

	// February 2025 has four: 7, 14, 21, 28.
	fridays = FridaysInMonth(2025, 2)
	assert.Len(t, fridays, 4)
	assert.Equal(t, 7, fridays[0].Day())

	for _, f := range fridays {
		assert.Equal(t, time.Friday, f.Weekday())
	}
}

func TestFridaysAlwaysFourOrFive(t *testing.T) {
	for year := 2023; year <= 2027; year++ {
		for month := 1; month <= 12; month++ {
			n := len(FridaysInMonth(year, month))
			assert.True(t, n == 4 || n == 5, "year=%d month=%d got %d", year, month, n)
		}
	}
}

func TestFridayKeys(t *testing.T) {
	keys := FridayKeys(2025, 8)
	assert.Equal(t, []string{
		"2025-08-01", "2025-08-08", "2025-08-15", "2025-08-22", "2025-08-29",
	}, keys)
}

func TestPeriodKey(t *testing.T) {
	assert.Equal(t, "2025-08", PeriodKey(2025, 8))
	assert.Equal(t, "2025-12", PeriodKey(2025, 12))
	assert.Equal(t, "2024-01", PeriodKey(2024, 1))
}
