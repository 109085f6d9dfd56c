package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stevanlohja/mn-pulse-alpha/internal/charts/core/usecase"
	dataset "github.com/stevanlohja/mn-pulse-alpha/internal/dataset/core/domain"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

// fakeProvider implements DatasetProviderPort for tests.
type fakeProvider struct {
	SnapshotFn func(ctx context.Context) (*dataset.Dataset, error)
	called     bool
}

func (f *fakeProvider) Snapshot(ctx context.Context) (*dataset.Dataset, error) {
	f.called = true
	if f.SnapshotFn != nil {
		return f.SnapshotFn(ctx)
	}
	return &dataset.Dataset{}, nil
}

func testDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Series: []dataset.MetricSeries{
			{Label: "Visitors", Color: "#4F46E5", Data: []dataset.DataPoint{
				{Date: day("2023-01-01"), Value: 10},
				{Date: day("2023-06-01"), Value: 30},
				{Date: day("2023-12-01"), Value: 20},
			}},
		},
		Events: []dataset.CalendarEvent{
			{Label: "Launch", StartDate: day("2023-02-01"), EndDate: day("2023-02-10")},
		},
	}
}

// ------------------------------------------------------------
// SUCCESS: all filters off
// ------------------------------------------------------------

func TestGetChartViews_Success_NoFilter(t *testing.T) {
	provider := &fakeProvider{
		SnapshotFn: func(ctx context.Context) (*dataset.Dataset, error) {
			return testDataset(), nil
		},
	}

	uc := usecase.NewGetChartViewsUseCase(provider)

	out, err := uc.Execute(context.Background(), usecase.GetChartViewsInput{
		Year:    "all",
		Quarter: "all",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out == nil {
		t.Fatalf("expected non-nil views")
	}
	if len(out.Metrics) != 1 || len(out.Metrics[0].Points) != 3 {
		t.Fatalf("unexpected metric views: %+v", out.Metrics)
	}
	if len(out.Aggregate.Annotations) != 1 {
		t.Fatalf("expected 1 annotation, got %d", len(out.Aggregate.Annotations))
	}
	if !provider.called {
		t.Fatalf("expected Snapshot to be called")
	}
}

// ------------------------------------------------------------
// SUCCESS: quarter filter narrows the views
// ------------------------------------------------------------

func TestGetChartViews_Success_QuarterFilter(t *testing.T) {
	provider := &fakeProvider{
		SnapshotFn: func(ctx context.Context) (*dataset.Dataset, error) {
			return testDataset(), nil
		},
	}

	uc := usecase.NewGetChartViewsUseCase(provider)

	out, err := uc.Execute(context.Background(), usecase.GetChartViewsInput{
		Year:      "2023",
		Quarter:   "1",
		MonthPair: "all",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Metrics[0].Points) != 1 {
		t.Fatalf("expected only the January point, got %d", len(out.Metrics[0].Points))
	}
}

// ------------------------------------------------------------
// VALIDATION
// ------------------------------------------------------------

func TestGetChartViews_InvalidFilters(t *testing.T) {
	tests := []struct {
		name    string
		in      usecase.GetChartViewsInput
		wantErr error
	}{
		{"bad_year", usecase.GetChartViewsInput{Year: "20x3"}, usecase.ErrInvalidYear},
		{"negative_year", usecase.GetChartViewsInput{Year: "-5"}, usecase.ErrInvalidYear},
		{"quarter_zero", usecase.GetChartViewsInput{Quarter: "0"}, usecase.ErrInvalidQuarter},
		{"quarter_five", usecase.GetChartViewsInput{Quarter: "5"}, usecase.ErrInvalidQuarter},
		{"quarter_text", usecase.GetChartViewsInput{Quarter: "two"}, usecase.ErrInvalidQuarter},
		{"pair_single", usecase.GetChartViewsInput{MonthPair: "3"}, usecase.ErrInvalidMonthPair},
		{"pair_out_of_range", usecase.GetChartViewsInput{MonthPair: "11-12"}, usecase.ErrInvalidMonthPair},
		{"pair_text", usecase.GetChartViewsInput{MonthPair: "jan-feb"}, usecase.ErrInvalidMonthPair},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{}
			uc := usecase.NewGetChartViewsUseCase(provider)

			out, err := uc.Execute(context.Background(), tt.in)
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if out != nil {
				t.Fatalf("expected nil views on error")
			}
			if provider.called {
				t.Fatalf("provider should not be called on invalid input")
			}
		})
	}
}

// ------------------------------------------------------------
// PROVIDER ERROR PROPAGATION
// ------------------------------------------------------------

func TestGetChartViews_ProviderError(t *testing.T) {
	provider := &fakeProvider{
		SnapshotFn: func(ctx context.Context) (*dataset.Dataset, error) {
			return nil, dataset.ErrDatasetUnavailable
		},
	}

	uc := usecase.NewGetChartViewsUseCase(provider)

	out, err := uc.Execute(context.Background(), usecase.GetChartViewsInput{})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !errors.Is(err, dataset.ErrDatasetUnavailable) {
		t.Fatalf("expected ErrDatasetUnavailable, got %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil views on error")
	}
}
