package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/stevanlohja/mn-pulse-alpha/internal/dataset/core/domain"
	"github.com/stevanlohja/mn-pulse-alpha/internal/dataset/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// DatasetRepository reads the source document out of a warehouse instead of a
// static file. It still produces the same wire document as the other readers;
// all validation stays in the load usecase.
type DatasetRepository struct {
	db DB
}

func NewDatasetRepository(db DB) *DatasetRepository {
	return &DatasetRepository{db: db}
}

var _ ports.DatasetReaderPort = (*DatasetRepository)(nil)

const dateLayout = "2006-01-02"

func (r *DatasetRepository) ReadDocument(ctx context.Context) (*domain.SourceDocument, error) {
	doc := &domain.SourceDocument{}

	if err := r.readSeries(ctx, doc); err != nil {
		return nil, err
	}
	if err := r.readPoints(ctx, doc); err != nil {
		return nil, err
	}
	if err := r.readEvents(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

func (r *DatasetRepository) readSeries(ctx context.Context, doc *domain.SourceDocument) error {
	query := `
SELECT label, color
FROM series
ORDER BY position, label`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("%w: query series: %v", domain.ErrSourceUnavailable, err)
	}
	defer rows.Close()

	for rows.Next() {
		var label, color string
		if err := rows.Scan(&label, &color); err != nil {
			return fmt.Errorf("%w: scan series: %v", domain.ErrMalformedDocument, err)
		}
		doc.Datasets = append(doc.Datasets, domain.SourceSeries{Label: label, Color: color})
	}

	return rows.Err()
}

func (r *DatasetRepository) readPoints(ctx context.Context, doc *domain.SourceDocument) error {
	query := `
SELECT series_label, point_date, value
FROM series_points
ORDER BY series_label, point_date`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("%w: query points: %v", domain.ErrSourceUnavailable, err)
	}
	defer rows.Close()

	index := make(map[string]int, len(doc.Datasets))
	for i, s := range doc.Datasets {
		index[s.Label] = i
	}

	for rows.Next() {
		var label string
		var date time.Time
		var value float64
		if err := rows.Scan(&label, &date, &value); err != nil {
			return fmt.Errorf("%w: scan point: %v", domain.ErrMalformedDocument, err)
		}
		i, ok := index[label]
		if !ok {
			return fmt.Errorf("%w: point for unknown series %q", domain.ErrMalformedDocument, label)
		}
		doc.Datasets[i].Data = append(doc.Datasets[i].Data, domain.SourcePoint{
			Date:  date.UTC().Format(dateLayout),
			Value: value,
		})
	}

	return rows.Err()
}

func (r *DatasetRepository) readEvents(ctx context.Context, doc *domain.SourceDocument) error {
	query := `
SELECT label, start_date, end_date
FROM calendar_events
ORDER BY start_date`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("%w: query events: %v", domain.ErrSourceUnavailable, err)
	}
	defer rows.Close()

	for rows.Next() {
		var label string
		var start, end time.Time
		if err := rows.Scan(&label, &start, &end); err != nil {
			return fmt.Errorf("%w: scan event: %v", domain.ErrMalformedDocument, err)
		}
		doc.Events = append(doc.Events, domain.SourceEvent{
			Label:     label,
			StartDate: start.UTC().Format(dateLayout),
			EndDate:   end.UTC().Format(dateLayout),
		})
	}

	return rows.Err()
}
