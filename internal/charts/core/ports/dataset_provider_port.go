package ports

import (
	"context"

	dataset "github.com/stevanlohja/mn-pulse-alpha/internal/dataset/core/domain"
)

// DatasetProviderPort hands out deep-copy snapshots of the pristine dataset.
// It fails with dataset.ErrDatasetUnavailable until a load has succeeded.
type DatasetProviderPort interface {
	Snapshot(ctx context.Context) (*dataset.Dataset, error)
}
