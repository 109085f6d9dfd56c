package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/stevanlohja/mn-pulse-alpha/internal/dataset/core/domain"
	"github.com/stevanlohja/mn-pulse-alpha/internal/dataset/core/ports"
)

const dateLayout = "2006-01-02"

type LoadDatasetUseCase struct {
	reader ports.DatasetReaderPort
	store  ports.DatasetStorePort
}

func NewLoadDatasetUseCase(reader ports.DatasetReaderPort, store ports.DatasetStorePort) *LoadDatasetUseCase {
	return &LoadDatasetUseCase{reader: reader, store: store}
}

// Execute reads the source document, validates it as a whole and stores the
// pristine dataset. Any failure is recorded in the store and is terminal:
// there is no partial-success path, either everything loads or nothing does.
func (uc *LoadDatasetUseCase) Execute(ctx context.Context) (*domain.Dataset, error) {
	doc, err := uc.reader.ReadDocument(ctx)
	if err != nil {
		uc.store.SetLoadError(err)
		return nil, err
	}

	ds, err := buildDataset(doc)
	if err != nil {
		uc.store.SetLoadError(err)
		return nil, err
	}

	uc.store.SetDataset(ds)
	return ds, nil
}

func buildDataset(doc *domain.SourceDocument) (*domain.Dataset, error) {
	if len(doc.Datasets) == 0 {
		return nil, domain.ErrEmptyDocument
	}

	ds := &domain.Dataset{
		Series: make([]domain.MetricSeries, 0, len(doc.Datasets)),
		Events: make([]domain.CalendarEvent, 0, len(doc.Events)),
	}

	for _, src := range doc.Datasets {
		if src.Label == "" {
			return nil, fmt.Errorf("%w: series without label", domain.ErrMalformedDocument)
		}
		series := domain.MetricSeries{
			Label: src.Label,
			Color: src.Color,
			Data:  make([]domain.DataPoint, 0, len(src.Data)),
		}
		for _, p := range src.Data {
			date, err := parseDate(p.Date)
			if err != nil {
				return nil, fmt.Errorf("%w: series %q: %v", domain.ErrMalformedDocument, src.Label, err)
			}
			if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
				return nil, fmt.Errorf("%w: series %q: non-finite value on %s", domain.ErrMalformedDocument, src.Label, p.Date)
			}
			series.Data = append(series.Data, domain.DataPoint{Date: date, Value: p.Value})
		}
		ds.Series = append(ds.Series, series)
	}

	for _, src := range doc.Events {
		start, err := parseDate(src.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: event %q: %v", domain.ErrMalformedDocument, src.Label, err)
		}
		end, err := parseDate(src.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: event %q: %v", domain.ErrMalformedDocument, src.Label, err)
		}
		if end.Before(start) {
			return nil, fmt.Errorf("%w: event %q ends before it starts", domain.ErrMalformedDocument, src.Label)
		}
		ds.Events = append(ds.Events, domain.CalendarEvent{Label: src.Label, StartDate: start, EndDate: end})
	}

	return ds, nil
}

// parseDate pins every date to UTC midnight so exact-date grouping downstream
// can compare dates by instant.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date %q", s)
	}
	return t.UTC(), nil
}
