// Package date provides the calendar-month periods used as time buckets for
// statement aggregation, plus the date parsing conventions for tabular input.
package date

import (
	"fmt"
	"time"
)

// Format is the date layout used throughout tabular input and output.
const Format = "2006-01-02"

// Parse parses a date cell in the canonical layout.
func Parse(s string) (time.Time, error) {
	return time.Parse(Format, s)
}

// Period is a half-open time interval: Begin inclusive, End exclusive.
type Period struct {
	Begin time.Time
	End   time.Time
}

// Contains reports whether t falls within the period (Begin <= t < End).
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Begin) && t.Before(p.End)
}

// ContainsUpTo reports whether t falls strictly before the period's end, with
// no lower bound. Used for point-in-time (balance-as-of) views.
func (p Period) ContainsUpTo(t time.Time) bool {
	return t.Before(p.End)
}

// String returns the period's begin instant in the canonical layout.
func (p Period) String() string {
	return p.Begin.Format(Format)
}

// MonthStart snaps t to the first instant of its calendar month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthsCovering produces the ordered sequence of disjoint, contiguous
// one-calendar-month periods covering min through max inclusive.
func MonthsCovering(min, max time.Time) ([]Period, error) {
	if max.Before(min) {
		return nil, fmt.Errorf("period range end %s is before start %s", max.Format(Format), min.Format(Format))
	}

	var periods []Period
	begin := MonthStart(min)
	for !begin.After(max) {
		end := begin.AddDate(0, 1, 0)
		periods = append(periods, Period{Begin: begin, End: end})
		begin = end
	}
	return periods, nil
}

// Span returns the earliest and latest of the given instants. The boolean is
// false when the slice is empty.
func Span(dates []time.Time) (min, max time.Time, ok bool) {
	if len(dates) == 0 {
		return time.Time{}, time.Time{}, false
	}
	min, max = dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(min) {
			min = d
		}
		if d.After(max) {
			max = d
		}
	}
	return min, max, true
}
