package domain

import (
	"sort"
	"time"
)

type AggregatePoint struct {
	Date  time.Time
	Value float64
}

// Aggregate sums normalized values across all series sharing the exact same
// date. No bucketing or rounding: dates present in only some series get only
// those series' contributions. The result is sorted chronologically.
func Aggregate(series []NormalizedSeries) []AggregatePoint {
	sums := make(map[int64]float64)
	dates := make(map[int64]time.Time)

	for _, s := range series {
		for _, p := range s.Points {
			key := p.Date.Unix()
			sums[key] += p.Normalized
			dates[key] = p.Date
		}
	}

	out := make([]AggregatePoint, 0, len(sums))
	for key, sum := range sums {
		out = append(out, AggregatePoint{Date: dates[key], Value: sum})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
