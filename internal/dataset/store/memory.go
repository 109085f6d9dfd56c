package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/stevanlohja/mn-pulse-alpha/internal/dataset/core/domain"
)

// Memory holds the loaded dataset for the lifetime of the process. It is
// written exactly once (dataset or terminal load error) and read-only after
// that; Snapshot hands out deep copies so transforms never touch the source.
type Memory struct {
	mu      sync.RWMutex
	dataset *domain.Dataset
	loadErr error
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) SetDataset(ds *domain.Dataset) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dataset = ds
	m.loadErr = nil
}

func (m *Memory) SetLoadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dataset = nil
	m.loadErr = err
}

// Snapshot returns a deep copy of the pristine dataset, or the reason no
// dataset is available.
func (m *Memory) Snapshot(ctx context.Context) (*domain.Dataset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.dataset == nil {
		if m.loadErr != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrDatasetUnavailable, m.loadErr)
		}
		return nil, domain.ErrDatasetUnavailable
	}
	return m.dataset.Clone(), nil
}
