package domain

import (
	"sort"

	dataset "github.com/stevanlohja/mn-pulse-alpha/internal/dataset/core/domain"
)

type MonthPair struct {
	A int // 0..11
	B int
}

// FilterOptions is what the filter controls offer: years come from the data,
// quarters and month pairs are fixed.
type FilterOptions struct {
	Years      []int // descending
	Quarters   []int // 1..4
	MonthPairs []MonthPair
}

// BuildFilterOptions derives the year list from the union of all dates
// present in any series, newest first.
func BuildFilterOptions(ds *dataset.Dataset) *FilterOptions {
	seen := make(map[int]bool)
	for _, s := range ds.Series {
		for _, p := range s.Data {
			seen[p.Date.Year()] = true
		}
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	pairs := make([]MonthPair, 0, 11)
	for m := 0; m < 11; m++ {
		pairs = append(pairs, MonthPair{A: m, B: m + 1})
	}

	return &FilterOptions{
		Years:      years,
		Quarters:   []int{1, 2, 3, 4},
		MonthPairs: pairs,
	}
}
