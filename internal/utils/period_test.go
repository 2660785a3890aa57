package utils

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeriod(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Istanbul")
	require.NoError(t, err)

	// Mittwoch, 14.10.2026 10:30 Ortszeit
	now := time.Date(2026, time.October, 14, 10, 30, 0, 0, loc)

	cases := []struct {
		name string
		from time.Time
		to   time.Time
	}{
		{PeriodToday, time.Date(2026, 10, 14, 0, 0, 0, 0, loc), time.Date(2026, 10, 15, 0, 0, 0, 0, loc)},
		{PeriodYesterday, time.Date(2026, 10, 13, 0, 0, 0, 0, loc), time.Date(2026, 10, 14, 0, 0, 0, 0, loc)},
		{PeriodWeek, time.Date(2026, 10, 12, 0, 0, 0, 0, loc), time.Date(2026, 10, 19, 0, 0, 0, 0, loc)},
		{PeriodLastWeek, time.Date(2026, 10, 5, 0, 0, 0, 0, loc), time.Date(2026, 10, 12, 0, 0, 0, 0, loc)},
		{PeriodMonth, time.Date(2026, 10, 1, 0, 0, 0, 0, loc), time.Date(2026, 11, 1, 0, 0, 0, 0, loc)},
		{PeriodLastMonth, time.Date(2026, 9, 1, 0, 0, 0, 0, loc), time.Date(2026, 10, 1, 0, 0, 0, 0, loc)},
		{PeriodYear, time.Date(2026, 1, 1, 0, 0, 0, 0, loc), time.Date(2027, 1, 1, 0, 0, 0, 0, loc)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := ResolvePeriod(tc.name, now, loc)
			require.NoError(t, err)
			assert.True(t, tc.from.Equal(w.From), "from: got %v want %v", w.From, tc.from)
			assert.True(t, tc.to.Equal(w.To), "to: got %v want %v", w.To, tc.to)
		})
	}
}

func TestResolvePeriod_SundayBelongsToPreviousWeek(t *testing.T) {
	sunday := time.Date(2026, time.October, 18, 23, 0, 0, 0, time.UTC)

	w, err := ResolvePeriod(PeriodWeek, sunday, time.UTC)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC), w.From)
}

func TestResolvePeriod_Unknown(t *testing.T) {
	_, err := ResolvePeriod("fortnight", time.Now(), time.UTC)

	assert.Error(t, err)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatDuration(0))
	assert.Equal(t, "00:50:00", FormatDuration(3000))
	assert.Equal(t, "26:01:05", FormatDuration(26*3600+65))
}
