package fixtures

import (
	"context"
	"strings"
	"testing"

	"property-showcase/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `{
  "properties": [
    {
      "id": "0b6f2c1e-8d3a-4f5b-9a61-2f4c7e9d1a0f",
      "title": "Cozy Townhouse",
      "description": "Perfect family home in a quiet neighborhood",
      "price": 450000,
      "address": "789 Suburban Lane, Pasadena, CA",
      "location": { "latitude": LAT, "longitude": -118.1445 },
      "bedrooms": 3,
      "bathrooms": 2,
      "square_footage": 1800,
      "property_type": "townhouse",
      "images": [],
      "features": [],
      "status": "pending"
    }
  ]
}`

func docWithLatitude(lat string) []byte {
	return []byte(strings.Replace(validDoc, "LAT", lat, 1))
}

func TestNewEmbeddedSource(t *testing.T) {
	src, err := NewEmbeddedSource()
	require.NoError(t, err)

	properties, err := src.LoadProperties(context.Background())
	require.NoError(t, err)
	require.Len(t, properties, 3)

	assert.Equal(t, "Luxury Waterfront Villa", properties[0].Title)
	assert.Equal(t, "Modern Downtown Apartment", properties[1].Title)
	assert.Equal(t, "Cozy Townhouse", properties[2].Title)

	assert.Equal(t, uuid.MustParse("0b6f2c1e-8d3a-4f5b-9a61-2f4c7e9d1a01"), properties[0].ID)
	assert.Equal(t, domain.PropertyTypeHouse, properties[0].Type)
	assert.Equal(t, 3500, properties[0].SquareFootage)
	assert.Len(t, properties[0].Features, 3)
	assert.Equal(t, domain.PropertyStatusPending, properties[2].Status)
}

func TestSource_LoadPropertiesReturnsCopies(t *testing.T) {
	src, err := NewEmbeddedSource()
	require.NoError(t, err)

	first, err := src.LoadProperties(context.Background())
	require.NoError(t, err)
	first[0].Images[0] = "changed"

	second, err := src.LoadProperties(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "property1", second[0].Images[0])
}

func TestNewSource(t *testing.T) {
	src, err := NewSource(docWithLatitude("34.1478"))
	require.NoError(t, err)

	properties, err := src.LoadProperties(context.Background())
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.NotNil(t, properties[0].Images)
}

func TestNewSource_Rejects(t *testing.T) {
	duplicate := strings.Replace(validDoc, "LAT", "34.1", 1)
	start := strings.Index(duplicate, "{\n      \"id\"")
	end := strings.LastIndex(duplicate, "}\n  ]")
	item := duplicate[start : end+1]
	duplicate = strings.Replace(duplicate, item, item+",\n"+item, 1)

	tests := []struct {
		name string
		data []byte
	}{
		{"InvalidJSON", []byte(`{"properties": [`)},
		{"LatitudeOutOfRange", docWithLatitude("120")},
		{"UnknownField", []byte(`{"properties": [], "extra": true}`)},
		{"DuplicateID", []byte(duplicate)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSource(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestSource_CanceledContext(t *testing.T) {
	src, err := NewEmbeddedSource()
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = src.LoadProperties(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
