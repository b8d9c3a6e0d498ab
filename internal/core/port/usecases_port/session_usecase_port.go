package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type OpenSessionUseCase interface {
	Execute(ctx context.Context) (uuid.UUID, error)
}

type CloseSessionUseCase interface {
	Execute(ctx context.Context, sessionID uuid.UUID) error
}
