package usecases_port

import (
	"context"
	"property-showcase/internal/core/domain"

	"github.com/google/uuid"
)

type SelectionUseCase interface {
	Select(ctx context.Context, sessionID, propertyID uuid.UUID) (*domain.PropertyDetailsView, error)
	Current(ctx context.Context, sessionID uuid.UUID) (*domain.PropertyDetailsView, error)
	Clear(ctx context.Context, sessionID uuid.UUID) error
}
