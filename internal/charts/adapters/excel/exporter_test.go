package excel

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/stevanlohja/mn-pulse-alpha/internal/charts/core/domain"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func sampleViews() *domain.ChartViews {
	return &domain.ChartViews{
		Metrics: []domain.MetricView{
			{
				Label: "Visitors",
				Color: "#4F46E5",
				Points: []domain.TimePoint{
					{X: day("2023-01-01"), Y: 10},
					{X: day("2023-02-01"), Y: 30},
				},
			},
			{
				Label:  "Signups",
				Color:  "#10B981",
				Points: []domain.TimePoint{{X: day("2023-01-01"), Y: 5}},
			},
		},
		Aggregate: domain.AggregateView{
			Points: []domain.AggregatePoint{
				{Date: day("2023-01-01"), Value: 50},
				{Date: day("2023-02-01"), Value: 150},
			},
			Annotations: []domain.AnnotationBox{
				{Label: "Launch", From: day("2023-01-15"), To: day("2023-01-20")},
			},
		},
	}
}

// ------------------------------------------------------------
// WORKBOOK CONTENT
// ------------------------------------------------------------

func TestExporter_Export(t *testing.T) {
	exporter := NewExporter()

	data, filename, err := exporter.Export(sampleViews())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(filename, "pulse-export-") || !strings.HasSuffix(filename, ".xlsx") {
		t.Fatalf("unexpected filename: %s", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{"Visitors", "Signups", "Activity Index", "Events"}
	if len(sheets) != len(want) {
		t.Fatalf("expected sheets %v, got %v", want, sheets)
	}
	for i, name := range want {
		if sheets[i] != name {
			t.Fatalf("expected sheet %q at %d, got %q", name, i, sheets[i])
		}
	}

	cell, err := f.GetCellValue("Visitors", "A2")
	if err != nil || cell != "2023-01-01" {
		t.Fatalf("unexpected A2 on Visitors: %q (%v)", cell, err)
	}
	cell, err = f.GetCellValue("Visitors", "B3")
	if err != nil || cell != "30" {
		t.Fatalf("unexpected B3 on Visitors: %q (%v)", cell, err)
	}
	cell, err = f.GetCellValue("Activity Index", "B3")
	if err != nil || cell != "150" {
		t.Fatalf("unexpected B3 on Activity Index: %q (%v)", cell, err)
	}
	cell, err = f.GetCellValue("Events", "A2")
	if err != nil || cell != "Launch" {
		t.Fatalf("unexpected A2 on Events: %q (%v)", cell, err)
	}
}

// ------------------------------------------------------------
// SHEET NAMING
// ------------------------------------------------------------

func TestSheetName(t *testing.T) {
	used := map[string]bool{aggregateSheet: true, eventsSheet: true}

	if got := sheetName("Visitors", 0, used); got != "Visitors" {
		t.Fatalf("expected Visitors, got %q", got)
	}
	// duplicate labels get a positional suffix
	if got := sheetName("Visitors", 1, used); got != "Visitors (2)" {
		t.Fatalf("expected Visitors (2), got %q", got)
	}
	// reserved names are never reused for metrics
	if got := sheetName("Events", 2, used); got != "Events (3)" {
		t.Fatalf("expected Events (3), got %q", got)
	}
	// forbidden characters and overlong labels are cleaned up
	got := sheetName("a/b:c", 3, used)
	if strings.ContainsAny(got, ":\\/?*[]") {
		t.Fatalf("forbidden characters survived: %q", got)
	}
	got = sheetName(strings.Repeat("x", 40), 4, used)
	if len(got) > 31 {
		t.Fatalf("name too long: %q", got)
	}
	if got := sheetName("  ", 5, used); got != "Series 6" {
		t.Fatalf("expected Series 6 fallback, got %q", got)
	}
}
