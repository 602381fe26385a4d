package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovasilescu/travel-planner/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRange_ThreeDays(t *testing.T) {
	got := domain.DateRange(date(2024, 6, 1), date(2024, 6, 3))

	require.Len(t, got, 3)
	assert.Equal(t, date(2024, 6, 1), got[0])
	assert.Equal(t, date(2024, 6, 2), got[1])
	assert.Equal(t, date(2024, 6, 3), got[2])
}

func TestDateRange_SingleDay(t *testing.T) {
	got := domain.DateRange(date(2024, 6, 1), date(2024, 6, 1))

	require.Len(t, got, 1)
	assert.Equal(t, date(2024, 6, 1), got[0])
}

func TestDateRange_Inverted(t *testing.T) {
	// start after end is not an error — the range is simply empty.
	got := domain.DateRange(date(2024, 6, 3), date(2024, 6, 1))

	assert.Empty(t, got)
}

func TestDateRange_CrossesMonthBoundary(t *testing.T) {
	got := domain.DateRange(date(2024, 1, 30), date(2024, 2, 2))

	require.Len(t, got, 4)
	assert.Equal(t, date(2024, 1, 30), got[0])
	assert.Equal(t, date(2024, 2, 2), got[3])
}

func TestDateRange_LeapDay(t *testing.T) {
	got := domain.DateRange(date(2024, 2, 28), date(2024, 3, 1))

	require.Len(t, got, 3)
	assert.Equal(t, date(2024, 2, 29), got[1])
}

func TestDateRange_LengthMatchesDaysBetween(t *testing.T) {
	start := date(2025, 7, 4)
	for days := 1; days <= 31; days++ {
		end := start.AddDate(0, 0, days-1)
		got := domain.DateRange(start, end)

		require.Len(t, got, days)
		assert.Equal(t, days, domain.DaysBetween(start, end))
		assert.Equal(t, start, got[0])
		assert.Equal(t, end, got[len(got)-1])
	}
}

func TestDateRange_IgnoresClockAndZone(t *testing.T) {
	// A late-evening start in a western zone must still yield calendar dates.
	loc := time.FixedZone("UTC-7", -7*60*60)
	start := time.Date(2024, 6, 1, 23, 30, 0, 0, loc)
	end := time.Date(2024, 6, 3, 1, 0, 0, 0, time.UTC)

	got := domain.DateRange(start, end)

	require.Len(t, got, 3)
	assert.Equal(t, date(2024, 6, 1), got[0])
	assert.Equal(t, date(2024, 6, 3), got[2])
}

func TestDateKey_RoundTrip(t *testing.T) {
	key := domain.DateKey(time.Date(2024, 6, 1, 15, 4, 5, 0, time.Local))
	assert.Equal(t, "2024-06-01", key)

	parsed, err := domain.ParseDateKey(key)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 6, 1), parsed)
}

func TestParseDateKey_Invalid(t *testing.T) {
	_, err := domain.ParseDateKey("06/01/2024")
	assert.Error(t, err)
}
