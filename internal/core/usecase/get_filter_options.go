package usecase

import (
	"context"
	"fmt"
	"property-showcase/internal/contextkeys"
	"property-showcase/internal/core/domain"
	"property-showcase/internal/core/port"
)

type GetFilterOptionsUseCase struct {
	source port.PropertySourcePort
}

func NewGetFilterOptionsUseCase(source port.PropertySourcePort) *GetFilterOptionsUseCase {
	return &GetFilterOptionsUseCase{source: source}
}

func (uc *GetFilterOptionsUseCase) Execute(ctx context.Context) (*domain.FilterOptions, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "GetFilterOptions"})

	properties, err := uc.source.LoadProperties(ctx)
	if err != nil {
		ucLogger.Error("Failed to load properties", err, nil)
		return nil, fmt.Errorf("get filter options: %w", err)
	}

	options := domain.BuildFilterOptions(properties)
	ucLogger.Debug("Filter options built", port.Fields{"count": options.Count})
	return &options, nil
}
