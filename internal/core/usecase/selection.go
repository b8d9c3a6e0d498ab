package usecase

import (
	"context"
	"property-showcase/internal/contextkeys"
	"property-showcase/internal/core/domain"
	"property-showcase/internal/core/port"
	"property-showcase/internal/core/state"

	"github.com/google/uuid"
)

type SelectionUseCase struct {
	sessions port.SessionRegistryPort
}

func NewSelectionUseCase(sessions port.SessionRegistryPort) *SelectionUseCase {
	return &SelectionUseCase{sessions: sessions}
}

// Select делает объект текущим для детального экрана.
// Неизвестный id не меняет выбор и возвращает ErrPropertyNotFound.
func (uc *SelectionUseCase) Select(ctx context.Context, sessionID, propertyID uuid.UUID) (*domain.PropertyDetailsView, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "SelectProperty",
		"session_id":  sessionID.String(),
		"property_id": propertyID.String(),
	})

	var view *domain.PropertyDetailsView
	err := uc.sessions.WithSession(ctx, sessionID, func(s *state.Session) error {
		if !s.Store.Select(propertyID) {
			return domain.ErrPropertyNotFound
		}
		view = domain.NewPropertyDetailsView(*s.Store.Selected())
		return nil
	})
	if err != nil {
		ucLogger.Warn("Selection unchanged", port.Fields{"error": err.Error()})
		return nil, err
	}

	ucLogger.Info("Property selected", nil)
	return view, nil
}

func (uc *SelectionUseCase) Current(ctx context.Context, sessionID uuid.UUID) (*domain.PropertyDetailsView, error) {
	var view *domain.PropertyDetailsView
	err := uc.sessions.WithSession(ctx, sessionID, func(s *state.Session) error {
		selected := s.Store.Selected()
		if selected == nil {
			return domain.ErrNoSelection
		}
		view = domain.NewPropertyDetailsView(*selected)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (uc *SelectionUseCase) Clear(ctx context.Context, sessionID uuid.UUID) error {
	return uc.sessions.WithSession(ctx, sessionID, func(s *state.Session) error {
		s.Store.ClearSelection()
		return nil
	})
}
