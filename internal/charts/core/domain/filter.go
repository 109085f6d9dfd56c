package domain

import (
	"time"

	dataset "github.com/stevanlohja/mn-pulse-alpha/internal/dataset/core/domain"
)

// All marks a filter stage as disabled.
const All = -1

// FilterState is the transient UI selection. The month pair is two month
// indices (0-11): a point passes when its month equals either one. That is a
// month-over-month comparison, not a calendar range.
type FilterState struct {
	Year    int // All or a calendar year
	Quarter int // All or 1..4
	MonthA  int // All or 0..11, always set together with MonthB
	MonthB  int
}

func NoFilter() FilterState {
	return FilterState{Year: All, Quarter: All, MonthA: All, MonthB: All}
}

// ApplyFilter narrows every series to the points matching the state. Stages
// compose by sequential intersection: year, then quarter, then month pair.
// The input is never mutated; a series left with zero points stays in the
// result as a valid empty series.
func ApplyFilter(series []dataset.MetricSeries, st FilterState) []dataset.MetricSeries {
	out := make([]dataset.MetricSeries, 0, len(series))
	for _, s := range series {
		filtered := dataset.MetricSeries{
			Label: s.Label,
			Color: s.Color,
			Data:  make([]dataset.DataPoint, 0, len(s.Data)),
		}
		for _, p := range s.Data {
			if matches(p.Date, st) {
				filtered.Data = append(filtered.Data, p)
			}
		}
		out = append(out, filtered)
	}
	return out
}

func matches(date time.Time, st FilterState) bool {
	if st.Year != All && date.Year() != st.Year {
		return false
	}
	if st.Quarter != All && QuarterOf(date) != st.Quarter {
		return false
	}
	if st.MonthA != All {
		m := monthIndex(date)
		if m != st.MonthA && m != st.MonthB {
			return false
		}
	}
	return true
}

// QuarterOf maps a date to its 1-indexed quarter (Jan-Mar = 1).
func QuarterOf(date time.Time) int {
	return monthIndex(date)/3 + 1
}

// monthIndex is the 0-based month (Jan = 0), matching the wire encoding.
func monthIndex(date time.Time) int {
	return int(date.Month()) - 1
}
