package domain_test

import (
	"testing"

	"github.com/stevanlohja/mn-pulse-alpha/internal/charts/core/domain"
	dataset "github.com/stevanlohja/mn-pulse-alpha/internal/dataset/core/domain"
)

// ------------------------------------------------------------
// DETERMINISTIC PALETTE CYCLE
// ------------------------------------------------------------

func TestAnnotationColor_Cycles(t *testing.T) {
	fill0, border0 := domain.AnnotationColor(0)
	if fill0 == "" || border0 == "" {
		t.Fatalf("palette entry 0 is empty")
	}

	// find the palette size by walking until the colors repeat
	size := 0
	for i := 1; i <= 64; i++ {
		f, b := domain.AnnotationColor(i)
		if f == fill0 && b == border0 {
			size = i
			break
		}
	}
	if size == 0 {
		t.Fatalf("palette never cycled within 64 entries")
	}

	// same index, same color, every time
	for i := 0; i < 3*size; i++ {
		f1, b1 := domain.AnnotationColor(i)
		f2, b2 := domain.AnnotationColor(i + size)
		if f1 != f2 || b1 != b2 {
			t.Fatalf("index %d and %d differ: %s/%s vs %s/%s", i, i+size, f1, b1, f2, b2)
		}
	}
}

// ------------------------------------------------------------
// ONE BOX PER EVENT
// ------------------------------------------------------------

func TestBuildAnnotations(t *testing.T) {
	events := []dataset.CalendarEvent{
		{Label: "Launch", StartDate: day("2023-03-01"), EndDate: day("2023-03-15")},
		{Label: "Outage", StartDate: day("2023-08-01"), EndDate: day("2023-08-02")},
	}

	out := domain.BuildAnnotations(events)

	if len(out) != 2 {
		t.Fatalf("expected 2 boxes, got %d", len(out))
	}
	if out[0].Label != "Launch" || !out[0].From.Equal(day("2023-03-01")) {
		t.Fatalf("unexpected first box: %+v", out[0])
	}
	if out[0].Border == out[1].Border {
		t.Fatalf("adjacent events should get different palette entries")
	}
}

func TestBuildAnnotations_NoEvents(t *testing.T) {
	out := domain.BuildAnnotations(nil)
	if len(out) != 0 {
		t.Fatalf("expected zero overlays, got %d", len(out))
	}
}
