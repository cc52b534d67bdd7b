package date_test

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"

	"github.com/ledgersheet-dev/ledgersheet/date"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := date.Parse(s)
	assert.NoError(t, err)
	return parsed
}

func TestPeriodContains_HalfOpen(t *testing.T) {
	p := date.Period{
		Begin: mustParse(t, "2024-01-01"),
		End:   mustParse(t, "2024-02-01"),
	}

	assert.True(t, p.Contains(mustParse(t, "2024-01-01")))
	assert.True(t, p.Contains(mustParse(t, "2024-01-31")))
	assert.False(t, p.Contains(mustParse(t, "2024-02-01")))
	assert.False(t, p.Contains(mustParse(t, "2023-12-31")))
}

func TestPeriodContainsUpTo_NoLowerBound(t *testing.T) {
	p := date.Period{
		Begin: mustParse(t, "2024-03-01"),
		End:   mustParse(t, "2024-04-01"),
	}

	assert.True(t, p.ContainsUpTo(mustParse(t, "2023-01-15")))
	assert.True(t, p.ContainsUpTo(mustParse(t, "2024-03-31")))
	assert.False(t, p.ContainsUpTo(mustParse(t, "2024-04-01")))
}

func TestMonthsCovering(t *testing.T) {
	periods, err := date.MonthsCovering(mustParse(t, "2024-01-15"), mustParse(t, "2024-03-02"))
	assert.NoError(t, err)

	assert.Equal(t, 3, len(periods))
	assert.Equal(t, "2024-01-01", periods[0].String())
	assert.Equal(t, "2024-02-01", periods[1].String())
	assert.Equal(t, "2024-03-01", periods[2].String())

	// Contiguous and disjoint: each end is the next begin.
	assert.Equal(t, periods[0].End, periods[1].Begin)
	assert.Equal(t, periods[1].End, periods[2].Begin)
}

func TestMonthsCovering_SingleDay(t *testing.T) {
	day := mustParse(t, "2024-06-10")
	periods, err := date.MonthsCovering(day, day)
	assert.NoError(t, err)

	assert.Equal(t, 1, len(periods))
	assert.Equal(t, "2024-06-01", periods[0].String())
	assert.True(t, periods[0].Contains(day))
}

func TestMonthsCovering_ReversedRange(t *testing.T) {
	_, err := date.MonthsCovering(mustParse(t, "2024-02-01"), mustParse(t, "2024-01-01"))
	assert.Error(t, err)
}

func TestSpan(t *testing.T) {
	min, max, ok := date.Span([]time.Time{
		mustParse(t, "2024-03-10"),
		mustParse(t, "2024-01-05"),
		mustParse(t, "2024-02-20"),
	})
	assert.True(t, ok)
	assert.Equal(t, mustParse(t, "2024-01-05"), min)
	assert.Equal(t, mustParse(t, "2024-03-10"), max)

	_, _, ok = date.Span(nil)
	assert.False(t, ok)
}
