package domain

// SourceDocument is the wire shape of the source document, shared by every
// reader adapter. Dates stay strings here; parsing and validation happen in
// the load usecase so all adapters fail the same way on a bad document.
type SourceDocument struct {
	Datasets []SourceSeries `json:"datasets"`
	Events   []SourceEvent  `json:"events"`
}

type SourceSeries struct {
	Label string        `json:"label"`
	Color string        `json:"color"`
	Data  []SourcePoint `json:"data"`
}

type SourcePoint struct {
	Date  string  `json:"date"` // ISO date, e.g. "2023-06-01"
	Value float64 `json:"value"`
}

type SourceEvent struct {
	Label     string `json:"label"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}
