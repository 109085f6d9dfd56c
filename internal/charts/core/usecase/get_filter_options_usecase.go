package usecase

import (
	"context"

	"github.com/stevanlohja/mn-pulse-alpha/internal/charts/core/domain"
	"github.com/stevanlohja/mn-pulse-alpha/internal/charts/core/ports"
)

type GetFilterOptionsUseCase struct {
	provider ports.DatasetProviderPort
}

func NewGetFilterOptionsUseCase(provider ports.DatasetProviderPort) *GetFilterOptionsUseCase {
	return &GetFilterOptionsUseCase{provider: provider}
}

func (uc *GetFilterOptionsUseCase) Execute(ctx context.Context) (*domain.FilterOptions, error) {
	ds, err := uc.provider.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return domain.BuildFilterOptions(ds), nil
}
