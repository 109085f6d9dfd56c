package ports

import (
	"context"

	"github.com/stevanlohja/mn-pulse-alpha/internal/dataset/core/domain"
)

// DatasetReaderPort fetches the raw source document exactly once per session.
// Implementations wrap failures in the domain load errors
// (ErrSourceUnavailable / ErrBadStatus / ErrMalformedDocument).
type DatasetReaderPort interface {
	ReadDocument(ctx context.Context) (*domain.SourceDocument, error)
}

// DatasetStorePort is where the load usecase parks the outcome: either the
// pristine dataset or the terminal load error.
type DatasetStorePort interface {
	SetDataset(ds *domain.Dataset)
	SetLoadError(err error)
}
