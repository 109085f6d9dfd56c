package domain

import (
	"time"

	dataset "github.com/stevanlohja/mn-pulse-alpha/internal/dataset/core/domain"
)

type NormalizedPoint struct {
	Date       time.Time
	Normalized float64 // 0..100
	Original   float64 // kept for tooltip display
}

type NormalizedSeries struct {
	Label  string
	Color  string
	Points []NormalizedPoint
}

// Normalize rescales one series into the common 0-100 range by min-max
// scaling. A zero range (empty series, single point, all values equal) maps
// every point to 50. Normalization is strictly per series.
func Normalize(s dataset.MetricSeries) NormalizedSeries {
	out := NormalizedSeries{
		Label:  s.Label,
		Color:  s.Color,
		Points: make([]NormalizedPoint, 0, len(s.Data)),
	}
	if len(s.Data) == 0 {
		return out
	}

	min, max := s.Data[0].Value, s.Data[0].Value
	for _, p := range s.Data[1:] {
		if p.Value < min {
			min = p.Value
		}
		if p.Value > max {
			max = p.Value
		}
	}

	span := max - min
	for _, p := range s.Data {
		norm := 50.0
		if span != 0 {
			norm = (p.Value - min) / span * 100
		}
		out.Points = append(out.Points, NormalizedPoint{
			Date:       p.Date,
			Normalized: norm,
			Original:   p.Value,
		})
	}
	return out
}

func NormalizeAll(series []dataset.MetricSeries) []NormalizedSeries {
	out := make([]NormalizedSeries, 0, len(series))
	for _, s := range series {
		out = append(out, Normalize(s))
	}
	return out
}
