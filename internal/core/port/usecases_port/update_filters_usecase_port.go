package usecases_port

import (
	"context"
	"property-showcase/internal/core/domain"

	"github.com/google/uuid"
)

type UpdateFiltersUseCase interface {
	Execute(ctx context.Context, sessionID uuid.UUID, update domain.FilterUpdate) (*domain.PropertyListView, error)
}
