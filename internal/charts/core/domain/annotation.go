package domain

import (
	"time"

	dataset "github.com/stevanlohja/mn-pulse-alpha/internal/dataset/core/domain"
)

// AnnotationBox is one styled calendar-interval overlay on the aggregate view.
type AnnotationBox struct {
	Label  string
	From   time.Time
	To     time.Time
	Fill   string // translucent box fill
	Border string
}

// Fixed hue palette for event overlays; indexes past the end cycle around.
var annotationPalette = []struct {
	fill   string
	border string
}{
	{"rgba(245,158,11,0.15)", "#F59E0B"},
	{"rgba(139,92,246,0.15)", "#8B5CF6"},
	{"rgba(16,185,129,0.15)", "#10B981"},
	{"rgba(239,68,68,0.15)", "#EF4444"},
	{"rgba(6,182,212,0.15)", "#06B6D4"},
	{"rgba(236,72,153,0.15)", "#EC4899"},
}

// AnnotationColor is a pure index-to-color lookup, index modulo palette size.
func AnnotationColor(i int) (fill, border string) {
	c := annotationPalette[i%len(annotationPalette)]
	return c.fill, c.border
}

// BuildAnnotations styles one box per event. Events are never filtered.
func BuildAnnotations(events []dataset.CalendarEvent) []AnnotationBox {
	out := make([]AnnotationBox, 0, len(events))
	for i, ev := range events {
		fill, border := AnnotationColor(i)
		out = append(out, AnnotationBox{
			Label:  ev.Label,
			From:   ev.StartDate,
			To:     ev.EndDate,
			Fill:   fill,
			Border: border,
		})
	}
	return out
}
