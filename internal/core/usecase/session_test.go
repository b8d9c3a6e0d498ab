package usecase

import (
	"context"
	"errors"
	"testing"

	"property-showcase/internal/adapters/session"
	"property-showcase/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSession_CreatesIndependentStores(t *testing.T) {
	ctx := context.Background()
	registry := session.NewMemoryRegistry(0)
	open := NewOpenSessionUseCase(newFakeSource(), registry)

	first, err := open.Execute(ctx)
	require.NoError(t, err)
	second, err := open.Execute(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, registry.Count())

	_, err = NewUpdateFiltersUseCase(registry).Execute(ctx, first, domain.FilterUpdate{SearchText: ptr("malibu")})
	require.NoError(t, err)

	view, err := NewBrowsePropertiesUseCase(registry).ListFiltered(ctx, second)
	require.NoError(t, err)
	assert.Len(t, view.Properties, 3)
}

func TestOpenSession_SourceError(t *testing.T) {
	registry := session.NewMemoryRegistry(0)
	source := &fakeSource{err: errors.New("boom")}

	_, err := NewOpenSessionUseCase(source, registry).Execute(context.Background())

	assert.Error(t, err)
	assert.Zero(t, registry.Count())
}

func TestOpenSession_LimitReached(t *testing.T) {
	registry := session.NewMemoryRegistry(1)
	open := NewOpenSessionUseCase(newFakeSource(), registry)

	_, err := open.Execute(context.Background())
	require.NoError(t, err)
	_, err = open.Execute(context.Background())

	assert.ErrorIs(t, err, session.ErrSessionLimitReached)
}

func TestCloseSession(t *testing.T) {
	registry, id := openSession(t)
	closeUC := NewCloseSessionUseCase(registry)

	require.NoError(t, closeUC.Execute(context.Background(), id))
	assert.ErrorIs(t, closeUC.Execute(context.Background(), id), domain.ErrSessionNotFound)

	_, err := NewBrowsePropertiesUseCase(registry).ListAll(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestBrowse_UnknownSession(t *testing.T) {
	registry := session.NewMemoryRegistry(0)

	_, err := NewBrowsePropertiesUseCase(registry).ListFiltered(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
