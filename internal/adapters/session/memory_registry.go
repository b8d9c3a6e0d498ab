package session

import (
	"context"
	"errors"
	"fmt"
	"property-showcase/internal/core/domain"
	"property-showcase/internal/core/port"
	"property-showcase/internal/core/state"
	"sync"

	"github.com/google/uuid"
)

var ErrSessionLimitReached = errors.New("session limit reached")

var _ port.SessionRegistryPort = (*MemoryRegistry)(nil)

// entry.mu упорядочивает доступ к PropertyStore одной сессии
type entry struct {
	mu      sync.Mutex
	session *state.Session
}

// MemoryRegistry хранит сессии в памяти процесса.
type MemoryRegistry struct {
	mu          sync.RWMutex
	sessions    map[uuid.UUID]*entry
	maxSessions int
}

// NewMemoryRegistry создает реестр. maxSessions <= 0 снимает ограничение.
func NewMemoryRegistry(maxSessions int) *MemoryRegistry {
	return &MemoryRegistry{
		sessions:    make(map[uuid.UUID]*entry),
		maxSessions: maxSessions,
	}
}

func (r *MemoryRegistry) Add(ctx context.Context, session *state.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("session cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.maxSessions > 0 && len(r.sessions) >= r.maxSessions {
		return fmt.Errorf("%w: %d", ErrSessionLimitReached, r.maxSessions)
	}
	if _, exists := r.sessions[session.ID]; exists {
		return fmt.Errorf("session %s already exists", session.ID)
	}
	r.sessions[session.ID] = &entry{session: session}
	return nil
}

func (r *MemoryRegistry) WithSession(ctx context.Context, id uuid.UUID, fn func(*state.Session) error) error {
	r.mu.RLock()
	e, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(e.session)
}

func (r *MemoryRegistry) Remove(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	delete(r.sessions, id)
	return nil
}

func (r *MemoryRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
