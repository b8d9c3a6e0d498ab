package usecase

import (
	"context"
	"property-showcase/internal/contextkeys"
	"property-showcase/internal/core/domain"
	"property-showcase/internal/core/port"
	"property-showcase/internal/core/state"

	"github.com/google/uuid"
)

type UpdateFiltersUseCase struct {
	sessions port.SessionRegistryPort
}

func NewUpdateFiltersUseCase(sessions port.SessionRegistryPort) *UpdateFiltersUseCase {
	return &UpdateFiltersUseCase{sessions: sessions}
}

// Execute применяет изменения к критериям сессии и возвращает пересчитанный список.
func (uc *UpdateFiltersUseCase) Execute(ctx context.Context, sessionID uuid.UUID, update domain.FilterUpdate) (*domain.PropertyListView, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "UpdateFilters",
		"session_id": sessionID.String(),
	})

	for _, t := range update.ToggleTypes {
		if !t.IsValid() {
			ucLogger.Warn("Rejected unknown property type", port.Fields{"type": string(t)})
			return nil, domain.ErrInvalidPropertyType
		}
	}

	var view *domain.PropertyListView
	err := uc.sessions.WithSession(ctx, sessionID, func(s *state.Session) error {
		applyFilterUpdate(s.Store, update)
		view = listView(s.Store)
		return nil
	})
	if err != nil {
		ucLogger.Warn("Session lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	ucLogger.Info("Filters updated", port.Fields{
		"search_text":        view.Criteria.SearchText,
		"types":              view.Criteria.Types(),
		"price_lower":        view.Criteria.PriceRange.Lower,
		"price_upper":        view.Criteria.PriceRange.Upper,
		"min_bedrooms":       view.Criteria.MinBedrooms,
		"min_bathrooms":      view.Criteria.MinBathrooms,
		"min_square_footage": view.Criteria.MinSquareFootage,
		"matched":            len(view.Properties),
	})
	return view, nil
}

// applyFilterUpdate переводит поля FilterUpdate в операции хранилища.
// Reset выполняется первым, остальные поля применяются поверх.
func applyFilterUpdate(store *state.PropertyStore, update domain.FilterUpdate) {
	if update.Reset {
		store.ResetFilters()
	}
	if update.SearchText != nil {
		store.SetSearchText(*update.SearchText)
	}
	for _, t := range update.ToggleTypes {
		store.ToggleTypeFilter(t)
	}

	switch {
	case update.PriceLower != nil && update.PriceUpper != nil:
		store.SetPriceRange(*update.PriceLower, *update.PriceUpper)
	case update.PriceLower != nil:
		store.SetMinPrice(*update.PriceLower)
	case update.PriceUpper != nil:
		store.SetMaxPrice(*update.PriceUpper)
	}

	if update.MinBedrooms != nil {
		store.SetMinBedrooms(*update.MinBedrooms)
	}
	if update.MinBathrooms != nil {
		store.SetMinBathrooms(*update.MinBathrooms)
	}
	if update.MinSquareFootage != nil {
		store.SetMinSquareFootage(*update.MinSquareFootage)
	}
}
