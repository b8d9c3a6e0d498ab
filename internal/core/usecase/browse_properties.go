package usecase

import (
	"context"
	"property-showcase/internal/contextkeys"
	"property-showcase/internal/core/domain"
	"property-showcase/internal/core/port"
	"property-showcase/internal/core/state"

	"github.com/google/uuid"
)

type BrowsePropertiesUseCase struct {
	sessions port.SessionRegistryPort
}

func NewBrowsePropertiesUseCase(sessions port.SessionRegistryPort) *BrowsePropertiesUseCase {
	return &BrowsePropertiesUseCase{sessions: sessions}
}

func (uc *BrowsePropertiesUseCase) ListFiltered(ctx context.Context, sessionID uuid.UUID) (*domain.PropertyListView, error) {
	return uc.list(ctx, sessionID, true)
}

func (uc *BrowsePropertiesUseCase) ListAll(ctx context.Context, sessionID uuid.UUID) (*domain.PropertyListView, error) {
	return uc.list(ctx, sessionID, false)
}

func (uc *BrowsePropertiesUseCase) list(ctx context.Context, sessionID uuid.UUID, filtered bool) (*domain.PropertyListView, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "BrowseProperties",
		"session_id": sessionID.String(),
		"filtered":   filtered,
	})

	var view *domain.PropertyListView
	err := uc.sessions.WithSession(ctx, sessionID, func(s *state.Session) error {
		view = listView(s.Store)
		if !filtered {
			view.Properties = s.Store.Properties()
		}
		return nil
	})
	if err != nil {
		ucLogger.Warn("Session lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	ucLogger.Debug("Properties listed", port.Fields{
		"items": len(view.Properties),
		"total": view.Total,
	})
	return view, nil
}

// listView собирает представление списка из текущего состояния хранилища
func listView(store *state.PropertyStore) *domain.PropertyListView {
	snapshot := store.Snapshot()
	view := &domain.PropertyListView{
		Properties: snapshot.Filtered,
		Total:      len(snapshot.Properties),
		Criteria:   snapshot.Criteria,
	}
	if snapshot.Selected != nil {
		id := snapshot.Selected.ID
		view.SelectedID = &id
	}
	return view
}
