package domain

import "time"

type DataPoint struct {
	Date  time.Time // day granularity, UTC midnight
	Value float64
}

type MetricSeries struct {
	Label string
	Color string
	Data  []DataPoint
}

type CalendarEvent struct {
	Label     string
	StartDate time.Time
	EndDate   time.Time
}

// Dataset is the pristine in-memory copy of the source document.
// Every recomputation starts from a snapshot of this; nothing mutates it.
type Dataset struct {
	Series []MetricSeries
	Events []CalendarEvent
}

// Clone returns a deep copy so callers can never reach the stored slices.
func (d *Dataset) Clone() *Dataset {
	out := &Dataset{
		Series: make([]MetricSeries, len(d.Series)),
		Events: make([]CalendarEvent, len(d.Events)),
	}
	for i, s := range d.Series {
		cp := MetricSeries{Label: s.Label, Color: s.Color, Data: make([]DataPoint, len(s.Data))}
		copy(cp.Data, s.Data)
		out.Series[i] = cp
	}
	copy(out.Events, d.Events)
	return out
}
