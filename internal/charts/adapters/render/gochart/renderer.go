package gochart

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/stevanlohja/mn-pulse-alpha/internal/charts/core/domain"
)

// Renderer draws the aggregate activity-index view as a static PNG. Event
// intervals become vertical marker lines at their start and end dates, in the
// same palette color the browser overlay uses.
type Renderer struct {
	width  int
	height int
}

func NewRenderer() *Renderer {
	return &Renderer{width: 1100, height: 420}
}

func (r *Renderer) RenderPNG(views *domain.ChartViews) ([]byte, error) {
	points := views.Aggregate.Points
	if len(points) == 0 {
		return nil, domain.ErrNothingToRender
	}

	times := make([]time.Time, 0, len(points))
	values := make([]float64, 0, len(points))
	yMax := 0.0
	for _, p := range points {
		times = append(times, p.Date)
		values = append(values, p.Value)
		if p.Value > yMax {
			yMax = p.Value
		}
	}

	// a single point gives the x-axis a zero range; pad it out a day
	if len(times) == 1 {
		times = append(times, times[0].Add(24*time.Hour))
		values = append(values, values[0])
	}

	series := []chart.Series{
		chart.TimeSeries{
			Name:    "Activity index",
			XValues: times,
			YValues: values,
			Style: chart.Style{
				StrokeColor: drawing.ColorFromHex("4F46E5"),
				StrokeWidth: 2.2,
			},
		},
	}

	// go-chart has no box annotations; mark each event with two vertical
	// lines spanning the plot height.
	first, last := times[0], times[len(times)-1]
	for _, ann := range views.Aggregate.Annotations {
		if ann.To.Before(first) || ann.From.After(last) {
			continue
		}
		style := chart.Style{
			StrokeColor:     drawing.ColorFromHex(ann.Border[1:]),
			StrokeWidth:     1.4,
			StrokeDashArray: []float64{4, 3},
		}
		for _, edge := range []time.Time{ann.From, ann.To} {
			if edge.Before(first) || edge.After(last) {
				continue
			}
			series = append(series, chart.TimeSeries{
				XValues: []time.Time{edge, edge},
				YValues: []float64{0, yMax},
				Style:   style,
			})
		}
	}

	ch := chart.Chart{
		Title:      "Activity index",
		Width:      r.width,
		Height:     r.height,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 12}},
		YAxis:      chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: yMax * 1.05}},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		Series: series,
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render aggregate chart: %w", err)
	}
	return buf.Bytes(), nil
}
