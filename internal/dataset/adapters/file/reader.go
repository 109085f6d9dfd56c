package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/stevanlohja/mn-pulse-alpha/internal/dataset/core/domain"
	"github.com/stevanlohja/mn-pulse-alpha/internal/dataset/core/ports"
)

// Reader loads the source document from a JSON file on disk.
type Reader struct {
	path string
}

func NewReader(path string) *Reader {
	return &Reader{path: path}
}

var _ ports.DatasetReaderPort = (*Reader)(nil)

func (r *Reader) ReadDocument(ctx context.Context) (*domain.SourceDocument, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrSourceUnavailable, r.path, err)
	}

	var doc domain.SourceDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrMalformedDocument, r.path, err)
	}
	return &doc, nil
}
