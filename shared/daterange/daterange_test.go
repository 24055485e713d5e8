package daterange_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lagovibes/shared/daterange"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalize(t *testing.T) {
	late := time.Date(2024, 6, 10, 23, 59, 59, 999, time.UTC)

	assert.Equal(t, day(2024, 6, 10), daterange.Normalize(late))
	assert.True(t, daterange.SameDay(late, day(2024, 6, 10)))
	assert.False(t, daterange.SameDay(late, day(2024, 6, 11)))
}

func TestSameDay_MixedLocations(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	assert.NoError(t, err)

	// A blocked day stored as a UTC date must match the calendar cell
	// parsed as an app-timezone midnight carrying the same date label.
	assert.True(t, daterange.SameDay(day(2026, 3, 20), time.Date(2026, 3, 20, 0, 0, 0, 0, jakarta)))
	assert.False(t, daterange.SameDay(day(2026, 3, 21), time.Date(2026, 3, 20, 0, 0, 0, 0, jakarta)))
}

func TestWithinInclusive_Boundaries(t *testing.T) {
	checkIn := day(2024, 6, 10)
	checkOut := day(2024, 6, 12)

	tests := []struct {
		name      string
		candidate time.Time
		want      bool
	}{
		{"check-in day", day(2024, 6, 10), true},
		{"middle day", day(2024, 6, 11), true},
		{"check-out day", day(2024, 6, 12), true},
		{"day after check-out", day(2024, 6, 13), false},
		{"day before check-in", day(2024, 6, 9), false},
		{"check-in with time of day", time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, daterange.WithinInclusive(tt.candidate, checkIn, checkOut))
		})
	}
}

func TestWithinInclusive_MixedLocations(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	assert.NoError(t, err)

	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	assert.NoError(t, err)

	checkIn := day(2026, 3, 10)
	checkOut := day(2026, 3, 12)

	tests := []struct {
		name      string
		candidate time.Time
		want      bool
	}{
		{"check-in day as app-timezone midnight east of UTC", time.Date(2026, 3, 10, 0, 0, 0, 0, jakarta), true},
		{"check-out day as app-timezone midnight west of UTC", time.Date(2026, 3, 12, 0, 0, 0, 0, saoPaulo), true},
		{"middle day east of UTC", time.Date(2026, 3, 11, 0, 0, 0, 0, jakarta), true},
		{"day before check-in west of UTC", time.Date(2026, 3, 9, 0, 0, 0, 0, saoPaulo), false},
		{"day after check-out east of UTC", time.Date(2026, 3, 13, 0, 0, 0, 0, jakarta), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, daterange.WithinInclusive(tt.candidate, checkIn, checkOut))
		})
	}
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"two nights", day(2024, 6, 10), day(2024, 6, 12), 2},
		{"one night", day(2024, 3, 1), day(2024, 3, 2), 1},
		{"same day", day(2024, 6, 10), day(2024, 6, 10), 0},
		{"inverted range", day(2024, 6, 12), day(2024, 6, 10), 0},
		{"time of day is ignored", day(2024, 6, 10), time.Date(2024, 6, 12, 11, 0, 0, 0, time.UTC), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, daterange.Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestNights_MixedLocations(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	assert.NoError(t, err)

	checkIn := time.Date(2026, 3, 10, 0, 0, 0, 0, jakarta)
	checkOut := day(2026, 3, 12)

	assert.Equal(t, 2, daterange.Nights(checkIn, checkOut))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"disjoint", day(2024, 6, 1), day(2024, 6, 3), day(2024, 6, 5), day(2024, 6, 7), false},
		{"touching boundary days", day(2024, 6, 1), day(2024, 6, 3), day(2024, 6, 3), day(2024, 6, 5), true},
		{"contained", day(2024, 6, 1), day(2024, 6, 10), day(2024, 6, 4), day(2024, 6, 5), true},
		{"adjacent days do not overlap", day(2024, 6, 1), day(2024, 6, 3), day(2024, 6, 4), day(2024, 6, 6), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, daterange.Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			assert.Equal(t, tt.want, daterange.Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestDays(t *testing.T) {
	days := daterange.Days(day(2024, 6, 10), day(2024, 6, 12))

	assert.Len(t, days, 3)
	assert.Equal(t, day(2024, 6, 10), days[0])
	assert.Equal(t, day(2024, 6, 12), days[2])

	assert.Nil(t, daterange.Days(day(2024, 6, 12), day(2024, 6, 10)))
}
