package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/stevanlohja/mn-pulse-alpha/internal/charts/core/domain"
	"github.com/stevanlohja/mn-pulse-alpha/internal/charts/core/ports"
)

var (
	ErrInvalidYear      = errors.New("invalid year filter")
	ErrInvalidQuarter   = errors.New("invalid quarter filter")
	ErrInvalidMonthPair = errors.New("invalid month pair filter")
)

// GetChartViewsInput carries the raw filter selection as it arrives from the
// UI. Empty string and "all" both mean no filter for that stage.
type GetChartViewsInput struct {
	Year      string // "all" or e.g. "2023"
	Quarter   string // "all" or "1".."4"
	MonthPair string // "all" or "a-b" with 0-based month indices
}

type GetChartViewsUseCase struct {
	provider ports.DatasetProviderPort
}

func NewGetChartViewsUseCase(provider ports.DatasetProviderPort) *GetChartViewsUseCase {
	return &GetChartViewsUseCase{provider: provider}
}

// Execute validates the filter selection, takes a fresh snapshot of the
// pristine dataset and recomputes the three chart views from it.
func (uc *GetChartViewsUseCase) Execute(ctx context.Context, in GetChartViewsInput) (*domain.ChartViews, error) {
	state, err := parseFilterState(in)
	if err != nil {
		return nil, err
	}

	ds, err := uc.provider.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return domain.BuildChartViews(ds, state), nil
}

func parseFilterState(in GetChartViewsInput) (domain.FilterState, error) {
	state := domain.NoFilter()

	if !isAll(in.Year) {
		year, err := strconv.Atoi(in.Year)
		if err != nil || year < 1 {
			return state, ErrInvalidYear
		}
		state.Year = year
	}

	if !isAll(in.Quarter) {
		quarter, err := strconv.Atoi(in.Quarter)
		if err != nil || quarter < 1 || quarter > 4 {
			return state, ErrInvalidQuarter
		}
		state.Quarter = quarter
	}

	if !isAll(in.MonthPair) {
		a, b, ok := splitMonthPair(in.MonthPair)
		if !ok {
			return state, ErrInvalidMonthPair
		}
		state.MonthA = a
		state.MonthB = b
	}

	return state, nil
}

func isAll(s string) bool {
	return s == "" || s == "all"
}

func splitMonthPair(s string) (a, b int, ok bool) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	a, errA := strconv.Atoi(parts[0])
	b, errB := strconv.Atoi(parts[1])
	if errA != nil || errB != nil {
		return 0, 0, false
	}
	if a < 0 || a > 11 || b < 0 || b > 11 {
		return 0, 0, false
	}
	return a, b, true
}
