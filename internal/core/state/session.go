package state

import (
	"property-showcase/internal/core/domain"

	"github.com/google/uuid"
)

// Session - одна UI-сессия: собственный PropertyStore и форма обратной связи.
type Session struct {
	ID      uuid.UUID
	Store   *PropertyStore
	Contact *domain.ContactForm
}

func NewSession(id uuid.UUID, properties []domain.Property) *Session {
	return &Session{
		ID:      id,
		Store:   NewPropertyStore(properties),
		Contact: &domain.ContactForm{},
	}
}
