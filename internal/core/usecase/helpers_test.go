package usecase

import (
	"context"
	"sync"
	"testing"

	"property-showcase/internal/adapters/session"
	"property-showcase/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	villaID     = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	apartmentID = uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	townhouseID = uuid.MustParse("00000000-0000-0000-0000-00000000000c")
)

type fakeSource struct {
	properties []domain.Property
	err        error
}

func (f *fakeSource) LoadProperties(ctx context.Context) ([]domain.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Property, len(f.properties))
	for i, p := range f.properties {
		out[i] = p.Clone()
	}
	return out, nil
}

type capturingSink struct {
	mu          sync.Mutex
	submissions []domain.ContactSubmission
	err         error
}

func (s *capturingSink) Deliver(ctx context.Context, submission domain.ContactSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.submissions = append(s.submissions, submission)
	return nil
}

func newFakeSource() *fakeSource {
	return &fakeSource{properties: []domain.Property{
		{
			ID: villaID, Title: "Luxury Waterfront Villa", Price: 1_250_000,
			Address:  "123 Ocean View Drive, Malibu, CA",
			Location: domain.Coordinate{Latitude: 34.0259, Longitude: -118.7798},
			Bedrooms: 4, Bathrooms: 3, SquareFootage: 3500,
			Type: domain.PropertyTypeHouse, Images: []string{"property1"}, Status: domain.PropertyStatusForSale,
		},
		{
			ID: apartmentID, Title: "Modern Downtown Apartment", Price: 750_000,
			Address:  "456 City Center, Los Angeles, CA",
			Location: domain.Coordinate{Latitude: 34.0522, Longitude: -118.2437},
			Bedrooms: 2, Bathrooms: 2, SquareFootage: 1200,
			Type: domain.PropertyTypeApartment, Images: []string{"property4"}, Status: domain.PropertyStatusForSale,
		},
		{
			ID: townhouseID, Title: "Cozy Townhouse", Price: 450_000,
			Address:  "789 Suburban Lane, Pasadena, CA",
			Location: domain.Coordinate{Latitude: 34.1478, Longitude: -118.1445},
			Bedrooms: 3, Bathrooms: 2, SquareFootage: 1800,
			Type: domain.PropertyTypeTownhouse, Images: []string{}, Status: domain.PropertyStatusPending,
		},
	}}
}

// openSession создает реестр с одной открытой сессией
func openSession(t *testing.T) (*session.MemoryRegistry, uuid.UUID) {
	t.Helper()
	registry := session.NewMemoryRegistry(0)
	id, err := NewOpenSessionUseCase(newFakeSource(), registry).Execute(context.Background())
	require.NoError(t, err)
	return registry, id
}

func listIDs(view *domain.PropertyListView) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(view.Properties))
	for _, p := range view.Properties {
		out = append(out, p.ID)
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
