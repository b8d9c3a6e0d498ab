package usecases_port

import (
	"context"
	"property-showcase/internal/core/domain"

	"github.com/google/uuid"
)

type ContactAgentUseCase interface {
	Open(ctx context.Context, sessionID uuid.UUID) (domain.ContactForm, error)
	Submit(ctx context.Context, sessionID uuid.UUID, name, email, message string) (domain.ContactForm, error)
	Cancel(ctx context.Context, sessionID uuid.UUID) (domain.ContactForm, error)
}
