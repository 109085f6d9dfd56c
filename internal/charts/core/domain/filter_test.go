package domain_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/stevanlohja/mn-pulse-alpha/internal/charts/core/domain"
	dataset "github.com/stevanlohja/mn-pulse-alpha/internal/dataset/core/domain"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func sampleSeries() []dataset.MetricSeries {
	return []dataset.MetricSeries{
		{
			Label: "Visitors",
			Color: "#4F46E5",
			Data: []dataset.DataPoint{
				{Date: day("2023-01-01"), Value: 10},
				{Date: day("2023-06-01"), Value: 30},
				{Date: day("2023-12-01"), Value: 20},
			},
		},
	}
}

// ------------------------------------------------------------
// QUARTER DERIVATION
// ------------------------------------------------------------

func TestQuarterOf(t *testing.T) {
	tests := []struct {
		date    string
		quarter int
	}{
		{"2023-01-15", 1}, // month index 0
		{"2023-06-15", 2}, // month index 5
		{"2023-12-15", 4}, // month index 11
		{"2023-03-31", 1},
		{"2023-04-01", 2},
	}

	for _, tt := range tests {
		if q := domain.QuarterOf(day(tt.date)); q != tt.quarter {
			t.Fatalf("QuarterOf(%s): expected %d, got %d", tt.date, tt.quarter, q)
		}
	}
}

// ------------------------------------------------------------
// NO FILTER IS A NO-OP
// ------------------------------------------------------------

func TestApplyFilter_AllPasses(t *testing.T) {
	src := sampleSeries()

	out := domain.ApplyFilter(src, domain.NoFilter())

	if len(out) != 1 {
		t.Fatalf("expected 1 series, got %d", len(out))
	}
	if !reflect.DeepEqual(out[0].Data, src[0].Data) {
		t.Fatalf("expected all 3 points unchanged, got %+v", out[0].Data)
	}
}

// ------------------------------------------------------------
// YEAR THEN QUARTER
// ------------------------------------------------------------

func TestApplyFilter_YearAndQuarter(t *testing.T) {
	src := sampleSeries()

	st := domain.NoFilter()
	st.Year = 2023
	out := domain.ApplyFilter(src, st)
	if len(out[0].Data) != 3 {
		t.Fatalf("year 2023 should keep all 3 points, got %d", len(out[0].Data))
	}

	st.Quarter = 1
	out = domain.ApplyFilter(src, st)
	if len(out[0].Data) != 1 {
		t.Fatalf("quarter 1 should keep only the January point, got %d", len(out[0].Data))
	}
	if !out[0].Data[0].Date.Equal(day("2023-01-01")) {
		t.Fatalf("expected 2023-01-01, got %s", out[0].Data[0].Date)
	}

	st.Year = 1999
	out = domain.ApplyFilter(src, st)
	if len(out[0].Data) != 0 {
		t.Fatalf("year 1999 should keep nothing, got %d points", len(out[0].Data))
	}
	if out[0].Label != "Visitors" || out[0].Color != "#4F46E5" {
		t.Fatalf("empty series must keep label and color: %+v", out[0])
	}
}

// ------------------------------------------------------------
// MONTH PAIR: EQUALS EITHER ENDPOINT, NOT A RANGE
// ------------------------------------------------------------

func TestApplyFilter_MonthPair(t *testing.T) {
	src := []dataset.MetricSeries{{
		Label: "Visitors",
		Data: []dataset.DataPoint{
			{Date: day("2023-01-10"), Value: 1},
			{Date: day("2023-02-10"), Value: 2},
			{Date: day("2023-03-10"), Value: 3},
			{Date: day("2023-06-10"), Value: 4},
		},
	}}

	st := domain.NoFilter()
	st.MonthA = 0
	st.MonthB = 5

	out := domain.ApplyFilter(src, st)
	if len(out[0].Data) != 2 {
		t.Fatalf("expected 2 points (Jan and Jun), got %d", len(out[0].Data))
	}
	// Feb and Mar sit between the endpoints but must not match.
	for _, p := range out[0].Data {
		m := int(p.Date.Month()) - 1
		if m != 0 && m != 5 {
			t.Fatalf("unexpected month index %d in result", m)
		}
	}
}

// ------------------------------------------------------------
// IDEMPOTENCE
// ------------------------------------------------------------

func TestApplyFilter_Idempotent(t *testing.T) {
	src := sampleSeries()
	st := domain.NoFilter()
	st.Year = 2023
	st.Quarter = 2

	once := domain.ApplyFilter(src, st)
	twice := domain.ApplyFilter(once, st)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filtering twice diverged: %+v vs %+v", once, twice)
	}
}

// ------------------------------------------------------------
// SOURCE IS NEVER MUTATED
// ------------------------------------------------------------

func TestApplyFilter_DoesNotMutateSource(t *testing.T) {
	src := sampleSeries()
	want := sampleSeries()

	st := domain.NoFilter()
	st.Quarter = 1
	_ = domain.ApplyFilter(src, st)

	if !reflect.DeepEqual(src, want) {
		t.Fatalf("source series mutated: %+v", src)
	}
}
