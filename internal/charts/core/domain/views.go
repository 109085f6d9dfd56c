package domain

import (
	"time"

	dataset "github.com/stevanlohja/mn-pulse-alpha/internal/dataset/core/domain"
)

// TimePoint is one {x, y} tuple handed to the chart renderer.
type TimePoint struct {
	X time.Time
	Y float64
}

// MetricView is one raw per-metric line chart.
type MetricView struct {
	Label  string
	Color  string
	Points []TimePoint
}

// AggregateView is the composite activity-index chart plus event overlays.
type AggregateView struct {
	Points      []AggregatePoint
	Annotations []AnnotationBox
}

// TrendView is the normalized multi-series comparison chart; its points carry
// the original values so the renderer can show them in tooltips.
type TrendView struct {
	Series []NormalizedSeries
}

// ChartViews bundles the three prepared data shapes the renderer consumes.
// It is recomputed from a pristine snapshot on every filter change.
type ChartViews struct {
	Metrics   []MetricView
	Aggregate AggregateView
	Trend     TrendView
}

// BuildChartViews runs the whole pipeline: filter, normalize per series,
// aggregate, then shape the three views.
func BuildChartViews(ds *dataset.Dataset, st FilterState) *ChartViews {
	filtered := ApplyFilter(ds.Series, st)
	normalized := NormalizeAll(filtered)

	return &ChartViews{
		Metrics: BuildMetricViews(filtered),
		Aggregate: AggregateView{
			Points:      Aggregate(normalized),
			Annotations: BuildAnnotations(ds.Events),
		},
		Trend: TrendView{Series: normalized},
	}
}

func BuildMetricViews(series []dataset.MetricSeries) []MetricView {
	out := make([]MetricView, 0, len(series))
	for _, s := range series {
		view := MetricView{
			Label:  s.Label,
			Color:  s.Color,
			Points: make([]TimePoint, 0, len(s.Data)),
		}
		for _, p := range s.Data {
			view.Points = append(view.Points, TimePoint{X: p.Date, Y: p.Value})
		}
		out = append(out, view)
	}
	return out
}
