package fiber

import (
	"fmt"
	"time"

	"github.com/stevanlohja/mn-pulse-alpha/internal/charts/core/domain"
)

const dateLayout = "2006-01-02"

type TimePointResponse struct {
	X string  `json:"x" example:"2023-06-01"`
	Y float64 `json:"y"`
}

type MetricViewResponse struct {
	Label  string              `json:"label"`
	Color  string              `json:"color"`
	Points []TimePointResponse `json:"points"`
}

type AggregatePointResponse struct {
	Date  string  `json:"date" example:"2023-06-01"`
	Value float64 `json:"value"`
}

type AnnotationResponse struct {
	Label  string `json:"label"`
	From   string `json:"from"`
	To     string `json:"to"`
	Fill   string `json:"fill" example:"rgba(245,158,11,0.15)"`
	Border string `json:"border" example:"#F59E0B"`
}

type AggregateViewResponse struct {
	Points      []AggregatePointResponse `json:"points"`
	Annotations []AnnotationResponse     `json:"annotations"`
}

type TrendPointResponse struct {
	Date       string  `json:"date"`
	Normalized float64 `json:"normalized"`
	Original   float64 `json:"original"`
}

type TrendSeriesResponse struct {
	Label  string               `json:"label"`
	Color  string               `json:"color"`
	Points []TrendPointResponse `json:"points"`
}

type ChartViewsResponse struct {
	Metrics   []MetricViewResponse  `json:"metrics"`
	Aggregate AggregateViewResponse `json:"aggregate"`
	Trend     []TrendSeriesResponse `json:"trend"`
}

type MonthPairResponse struct {
	Value string `json:"value" example:"0-1"`
	Label string `json:"label" example:"Jan vs Feb"`
}

type FilterOptionsResponse struct {
	Years      []int               `json:"years"`
	Quarters   []int               `json:"quarters"`
	MonthPairs []MonthPairResponse `json:"month_pairs"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_filter"`
	Message string `json:"message" example:"invalid quarter filter"`
}

func toChartViewsResponse(views *domain.ChartViews) ChartViewsResponse {
	resp := ChartViewsResponse{
		Metrics: make([]MetricViewResponse, 0, len(views.Metrics)),
		Aggregate: AggregateViewResponse{
			Points:      make([]AggregatePointResponse, 0, len(views.Aggregate.Points)),
			Annotations: make([]AnnotationResponse, 0, len(views.Aggregate.Annotations)),
		},
		Trend: make([]TrendSeriesResponse, 0, len(views.Trend.Series)),
	}

	for _, m := range views.Metrics {
		mv := MetricViewResponse{
			Label:  m.Label,
			Color:  m.Color,
			Points: make([]TimePointResponse, 0, len(m.Points)),
		}
		for _, p := range m.Points {
			mv.Points = append(mv.Points, TimePointResponse{X: fmtDate(p.X), Y: p.Y})
		}
		resp.Metrics = append(resp.Metrics, mv)
	}

	for _, p := range views.Aggregate.Points {
		resp.Aggregate.Points = append(resp.Aggregate.Points, AggregatePointResponse{
			Date:  fmtDate(p.Date),
			Value: p.Value,
		})
	}
	for _, a := range views.Aggregate.Annotations {
		resp.Aggregate.Annotations = append(resp.Aggregate.Annotations, AnnotationResponse{
			Label:  a.Label,
			From:   fmtDate(a.From),
			To:     fmtDate(a.To),
			Fill:   a.Fill,
			Border: a.Border,
		})
	}

	for _, s := range views.Trend.Series {
		ts := TrendSeriesResponse{
			Label:  s.Label,
			Color:  s.Color,
			Points: make([]TrendPointResponse, 0, len(s.Points)),
		}
		for _, p := range s.Points {
			ts.Points = append(ts.Points, TrendPointResponse{
				Date:       fmtDate(p.Date),
				Normalized: p.Normalized,
				Original:   p.Original,
			})
		}
		resp.Trend = append(resp.Trend, ts)
	}

	return resp
}

func toFilterOptionsResponse(opts *domain.FilterOptions) FilterOptionsResponse {
	resp := FilterOptionsResponse{
		Years:      opts.Years,
		Quarters:   opts.Quarters,
		MonthPairs: make([]MonthPairResponse, 0, len(opts.MonthPairs)),
	}
	for _, p := range opts.MonthPairs {
		resp.MonthPairs = append(resp.MonthPairs, MonthPairResponse{
			Value: fmt.Sprintf("%d-%d", p.A, p.B),
			Label: fmt.Sprintf("%s vs %s", monthAbbr(p.A), monthAbbr(p.B)),
		})
	}
	return resp
}

func fmtDate(t time.Time) string {
	return t.Format(dateLayout)
}

func monthAbbr(index int) string {
	return time.Month(index + 1).String()[:3]
}
