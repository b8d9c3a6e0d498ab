package usecases_port

import (
	"context"
	"property-showcase/internal/core/domain"

	"github.com/google/uuid"
)

type BrowsePropertiesUseCase interface {
	// ListFiltered возвращает текущий отфильтрованный список
	ListFiltered(ctx context.Context, sessionID uuid.UUID) (*domain.PropertyListView, error)
	// ListAll возвращает полный список без фильтров
	ListAll(ctx context.Context, sessionID uuid.UUID) (*domain.PropertyListView, error)
}
