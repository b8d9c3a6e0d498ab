package usecase

import (
	"context"
	"errors"
	"fmt"
	"property-showcase/internal/contextkeys"
	"property-showcase/internal/core/domain"
	"property-showcase/internal/core/port"
	"property-showcase/internal/core/state"
	"time"

	"github.com/google/uuid"
)

type ContactAgentUseCase struct {
	sessions port.SessionRegistryPort
	sink     port.ContactSinkPort
	now      func() time.Time
}

func NewContactAgentUseCase(sessions port.SessionRegistryPort, sink port.ContactSinkPort) *ContactAgentUseCase {
	return &ContactAgentUseCase{sessions: sessions, sink: sink, now: time.Now}
}

// Open открывает форму для выбранного объекта.
func (uc *ContactAgentUseCase) Open(ctx context.Context, sessionID uuid.UUID) (domain.ContactForm, error) {
	var form domain.ContactForm
	err := uc.sessions.WithSession(ctx, sessionID, func(s *state.Session) error {
		selected := s.Store.Selected()
		if selected == nil {
			return domain.ErrNoSelection
		}
		s.Contact.Open(selected.ID)
		form = *s.Contact
		return nil
	})
	return form, err
}

// Submit проверяет форму и передает сообщение в sink.
// При ошибке валидации введенные данные остаются в форме, при успехе форма очищается и закрывается.
func (uc *ContactAgentUseCase) Submit(ctx context.Context, sessionID uuid.UUID, name, email, message string) (domain.ContactForm, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "ContactAgent",
		"session_id": sessionID.String(),
	})

	var form domain.ContactForm
	err := uc.sessions.WithSession(ctx, sessionID, func(s *state.Session) error {
		defer func() { form = *s.Contact }()
		if !s.Contact.IsOpen {
			return domain.ErrContactFormClosed
		}
		s.Contact.Fill(name, email, message)

		submission, err := s.Contact.Submission(uc.now())
		if err != nil {
			return err
		}
		if err := uc.sink.Deliver(ctx, submission); err != nil {
			return fmt.Errorf("deliver contact submission: %w", err)
		}
		s.Contact.Reset()
		return nil
	})

	switch {
	case err == nil:
		ucLogger.Info("Contact submission accepted", nil)
	case isContactValidationError(err):
		ucLogger.Warn("Contact submission rejected", port.Fields{"reason": err.Error()})
	default:
		ucLogger.Error("Contact submission failed", err, nil)
	}
	return form, err
}

func (uc *ContactAgentUseCase) Cancel(ctx context.Context, sessionID uuid.UUID) (domain.ContactForm, error) {
	var form domain.ContactForm
	err := uc.sessions.WithSession(ctx, sessionID, func(s *state.Session) error {
		s.Contact.Reset()
		form = *s.Contact
		return nil
	})
	return form, err
}

func isContactValidationError(err error) bool {
	return errors.Is(err, domain.ErrInvalidEmail) ||
		errors.Is(err, domain.ErrIncompleteContactForm) ||
		errors.Is(err, domain.ErrContactFormClosed)
}
