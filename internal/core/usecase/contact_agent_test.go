package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"property-showcase/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection(t *testing.T) {
	registry, id := openSession(t)
	uc := NewSelectionUseCase(registry)
	ctx := context.Background()

	_, err := uc.Current(ctx, id)
	require.ErrorIs(t, err, domain.ErrNoSelection)

	view, err := uc.Select(ctx, id, townhouseID)
	require.NoError(t, err)
	assert.Equal(t, townhouseID, view.Property.ID)
	assert.Equal(t, "Townhouse", view.TypeDisplayName)
	assert.Len(t, view.MapPin.Geohash, domain.MapPinPrecision)

	_, err = uc.Select(ctx, id, uuid.New())
	require.ErrorIs(t, err, domain.ErrPropertyNotFound)

	current, err := uc.Current(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, townhouseID, current.Property.ID)

	list, err := NewBrowsePropertiesUseCase(registry).ListFiltered(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, list.SelectedID)
	assert.Equal(t, townhouseID, *list.SelectedID)

	require.NoError(t, uc.Clear(ctx, id))
	_, err = uc.Current(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNoSelection)
}

func newContactFixture(t *testing.T) (*ContactAgentUseCase, *capturingSink, uuid.UUID) {
	t.Helper()
	registry, id := openSession(t)
	_, err := NewSelectionUseCase(registry).Select(context.Background(), id, villaID)
	require.NoError(t, err)

	sink := &capturingSink{}
	uc := NewContactAgentUseCase(registry, sink)
	uc.now = func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) }
	return uc, sink, id
}

func TestContactAgent_OpenRequiresSelection(t *testing.T) {
	registry, id := openSession(t)

	_, err := NewContactAgentUseCase(registry, &capturingSink{}).Open(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrNoSelection)
}

func TestContactAgent_SubmitValid(t *testing.T) {
	uc, sink, id := newContactFixture(t)
	ctx := context.Background()

	opened, err := uc.Open(ctx, id)
	require.NoError(t, err)
	assert.True(t, opened.IsOpen)
	assert.Equal(t, villaID, opened.PropertyID)

	form, err := uc.Submit(ctx, id, "Ann", "a@b.com", "Hi")
	require.NoError(t, err)

	assert.False(t, form.IsOpen)
	assert.Empty(t, form.Name)
	assert.Empty(t, form.Email)
	assert.Empty(t, form.Message)

	require.Len(t, sink.submissions, 1)
	assert.Equal(t, domain.ContactSubmission{
		PropertyID:  villaID,
		Name:        "Ann",
		Email:       "a@b.com",
		Message:     "Hi",
		SubmittedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}, sink.submissions[0])
}

func TestContactAgent_SubmitInvalidEmail(t *testing.T) {
	uc, sink, id := newContactFixture(t)
	ctx := context.Background()
	_, err := uc.Open(ctx, id)
	require.NoError(t, err)

	form, err := uc.Submit(ctx, id, "Ann", "not-an-email", "Hi")

	require.ErrorIs(t, err, domain.ErrInvalidEmail)
	assert.Equal(t, "invalid email", err.Error())
	assert.True(t, form.IsOpen)
	assert.Equal(t, "Ann", form.Name)
	assert.Equal(t, "not-an-email", form.Email)
	assert.Equal(t, "Hi", form.Message)
	assert.Empty(t, sink.submissions)
}

func TestContactAgent_SubmitIncomplete(t *testing.T) {
	uc, sink, id := newContactFixture(t)
	ctx := context.Background()
	_, err := uc.Open(ctx, id)
	require.NoError(t, err)

	form, err := uc.Submit(ctx, id, "", "a@b.com", "Hi")

	assert.ErrorIs(t, err, domain.ErrIncompleteContactForm)
	assert.True(t, form.IsOpen)
	assert.Empty(t, sink.submissions)
}

func TestContactAgent_SubmitClosedForm(t *testing.T) {
	uc, _, id := newContactFixture(t)

	form, err := uc.Submit(context.Background(), id, "Ann", "a@b.com", "Hi")

	assert.ErrorIs(t, err, domain.ErrContactFormClosed)
	assert.False(t, form.IsOpen)
	assert.Empty(t, form.Name)
}

func TestContactAgent_SinkFailureKeepsForm(t *testing.T) {
	uc, sink, id := newContactFixture(t)
	sink.err = errors.New("unavailable")
	ctx := context.Background()
	_, err := uc.Open(ctx, id)
	require.NoError(t, err)

	form, err := uc.Submit(ctx, id, "Ann", "a@b.com", "Hi")

	require.Error(t, err)
	assert.True(t, form.IsOpen)
	assert.Equal(t, "Ann", form.Name)
}

func TestContactAgent_Cancel(t *testing.T) {
	uc, sink, id := newContactFixture(t)
	ctx := context.Background()
	_, err := uc.Open(ctx, id)
	require.NoError(t, err)

	form, err := uc.Cancel(ctx, id)

	require.NoError(t, err)
	assert.False(t, form.IsOpen)
	assert.Empty(t, sink.submissions)
}
