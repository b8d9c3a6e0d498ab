package port

import (
	"context"
	"property-showcase/internal/core/state"

	"github.com/google/uuid"
)

// SessionRegistryPort хранит UI-сессии.
// WithSession выполняет fn, пока сессия захвачена только текущим вызывающим.
type SessionRegistryPort interface {
	Add(ctx context.Context, session *state.Session) error
	WithSession(ctx context.Context, id uuid.UUID, fn func(*state.Session) error) error
	Remove(ctx context.Context, id uuid.UUID) error
	Count() int
}
