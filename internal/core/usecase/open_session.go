package usecase

import (
	"context"
	"fmt"
	"property-showcase/internal/contextkeys"
	"property-showcase/internal/core/port"
	"property-showcase/internal/core/state"

	"github.com/google/uuid"
)

type OpenSessionUseCase struct {
	source   port.PropertySourcePort
	sessions port.SessionRegistryPort
}

func NewOpenSessionUseCase(source port.PropertySourcePort, sessions port.SessionRegistryPort) *OpenSessionUseCase {
	return &OpenSessionUseCase{source: source, sessions: sessions}
}

// Execute создает сессию с собственным PropertyStore над fixture-данными.
func (uc *OpenSessionUseCase) Execute(ctx context.Context) (uuid.UUID, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "OpenSession"})

	properties, err := uc.source.LoadProperties(ctx)
	if err != nil {
		ucLogger.Error("Failed to load properties", err, nil)
		return uuid.Nil, fmt.Errorf("open session: %w", err)
	}

	session := state.NewSession(uuid.New(), properties)
	if err := uc.sessions.Add(ctx, session); err != nil {
		ucLogger.Error("Failed to register session", err, nil)
		return uuid.Nil, fmt.Errorf("open session: %w", err)
	}

	ucLogger.Info("Session opened", port.Fields{
		"session_id":      session.ID.String(),
		"properties":      len(properties),
		"active_sessions": uc.sessions.Count(),
	})
	return session.ID, nil
}

type CloseSessionUseCase struct {
	sessions port.SessionRegistryPort
}

func NewCloseSessionUseCase(sessions port.SessionRegistryPort) *CloseSessionUseCase {
	return &CloseSessionUseCase{sessions: sessions}
}

func (uc *CloseSessionUseCase) Execute(ctx context.Context, sessionID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "CloseSession",
		"session_id": sessionID.String(),
	})

	if err := uc.sessions.Remove(ctx, sessionID); err != nil {
		logger.Warn("Session was not closed", port.Fields{"error": err.Error()})
		return err
	}
	logger.Info("Session closed", nil)
	return nil
}
