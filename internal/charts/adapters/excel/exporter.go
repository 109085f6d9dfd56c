package excel

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/stevanlohja/mn-pulse-alpha/internal/charts/core/domain"
)

// Exporter writes the current chart views into an xlsx workbook: one sheet
// per metric, one for the aggregate index, one for events.
type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

const (
	aggregateSheet = "Activity Index"
	eventsSheet    = "Events"
)

func (e *Exporter) Export(views *domain.ChartViews) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	used := map[string]bool{aggregateSheet: true, eventsSheet: true}

	for i, m := range views.Metrics {
		sheet := sheetName(m.Label, i, used)
		if i == 0 {
			// excelize starts every workbook with "Sheet1"
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, "", fmt.Errorf("rename first sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, "", fmt.Errorf("add sheet %q: %w", sheet, err)
			}
		}

		if err := setRow(f, sheet, 1, "Date", "Value"); err != nil {
			return nil, "", err
		}
		for row, p := range m.Points {
			if err := setRow(f, sheet, row+2, p.X.Format("2006-01-02"), p.Y); err != nil {
				return nil, "", err
			}
		}
	}

	if _, err := f.NewSheet(aggregateSheet); err != nil {
		return nil, "", fmt.Errorf("add aggregate sheet: %w", err)
	}
	if err := setRow(f, aggregateSheet, 1, "Date", "Index"); err != nil {
		return nil, "", err
	}
	for row, p := range views.Aggregate.Points {
		if err := setRow(f, aggregateSheet, row+2, p.Date.Format("2006-01-02"), p.Value); err != nil {
			return nil, "", err
		}
	}

	if _, err := f.NewSheet(eventsSheet); err != nil {
		return nil, "", fmt.Errorf("add events sheet: %w", err)
	}
	if err := setRow(f, eventsSheet, 1, "Label", "Start", "End"); err != nil {
		return nil, "", err
	}
	for row, a := range views.Aggregate.Annotations {
		if err := setRow(f, eventsSheet, row+2, a.Label, a.From.Format("2006-01-02"), a.To.Format("2006-01-02")); err != nil {
			return nil, "", err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("write workbook: %w", err)
	}

	filename := fmt.Sprintf("pulse-export-%s.xlsx", uuid.NewString()[:8])
	return buf.Bytes(), filename, nil
}

func setRow(f *excelize.File, sheet string, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("sheet %q row %d: %w", sheet, row, err)
	}
	return nil
}

// sheetName keeps excelize happy: 31 chars max, no duplicates, a handful of
// forbidden characters.
func sheetName(label string, i int, used map[string]bool) string {
	name := strings.NewReplacer(":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", " ", "]", " ").Replace(label)
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Series %d", i+1)
	}
	if len(name) > 31 {
		name = name[:31]
	}
	for used[name] {
		suffix := fmt.Sprintf(" (%d)", i+1)
		if len(name)+len(suffix) > 31 {
			name = name[:31-len(suffix)]
		}
		name += suffix
	}
	used[name] = true
	return name
}
