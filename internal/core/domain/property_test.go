package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mmcloughlin/geohash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePropertyType(t *testing.T) {
	for _, pt := range AllPropertyTypes() {
		parsed, err := ParsePropertyType(string(pt))
		require.NoError(t, err)
		assert.Equal(t, pt, parsed)
	}

	_, err := ParsePropertyType("castle")
	assert.ErrorIs(t, err, ErrInvalidPropertyType)
}

func TestPropertyType_DisplayName(t *testing.T) {
	assert.Equal(t, "Townhouse", PropertyTypeTownhouse.DisplayName())
	assert.Equal(t, "Land", PropertyTypeLand.DisplayName())
}

func TestCoordinate_Geohash(t *testing.T) {
	c := Coordinate{Latitude: 34.0259, Longitude: -118.7798}

	hash := c.Geohash()
	require.Len(t, hash, MapPinPrecision)

	lat, lng := geohash.Decode(hash)
	assert.InDelta(t, c.Latitude, lat, 0.001)
	assert.InDelta(t, c.Longitude, lng, 0.001)
}

func TestProperty_Validate(t *testing.T) {
	base := sampleProperties()[0]

	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(p *Property)
	}{
		{"NilID", func(p *Property) { p.ID = uuid.Nil }},
		{"NegativePrice", func(p *Property) { p.Price = -1 }},
		{"Latitude", func(p *Property) { p.Location.Latitude = 91 }},
		{"Longitude", func(p *Property) { p.Location.Longitude = -181 }},
		{"Bedrooms", func(p *Property) { p.Bedrooms = -1 }},
		{"Type", func(p *Property) { p.Type = "castle" }},
		{"Status", func(p *Property) { p.Status = "rented" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base.Clone()
			tt.mutate(&p)
			assert.ErrorIs(t, p.Validate(), ErrMalformedProperty)
		})
	}
}

func TestValidateProperties_DuplicateID(t *testing.T) {
	ps := sampleProperties()
	ps[2].ID = ps[0].ID

	assert.ErrorIs(t, ValidateProperties(ps), ErrMalformedProperty)
}

func TestProperty_CloneDoesNotShareSlices(t *testing.T) {
	p := sampleProperties()[0]
	clone := p.Clone()
	clone.Images[0] = "changed"

	assert.Equal(t, "property1", p.Images[0])
}

func TestProperty_CloneKeepsEmptySlices(t *testing.T) {
	p := Property{Images: []string{}, Features: []PropertyFeature{}}

	clone := p.Clone()

	assert.NotNil(t, clone.Images)
	assert.Empty(t, clone.Images)
	assert.NotNil(t, clone.Features)
	assert.Empty(t, clone.Features)

	var bare Property
	assert.Nil(t, bare.Clone().Images)
}

func TestBuildFilterOptions(t *testing.T) {
	opts := BuildFilterOptions(sampleProperties())

	assert.Equal(t, AllPropertyTypes(), opts.Types)
	assert.Equal(t, RangeOption{Min: 450_000, Max: 1_250_000, Step: PriceSliderStep}, opts.Price)
	assert.Equal(t, RangeOption{Min: 1200, Max: 3500, Step: SquareFootageSliderStep}, opts.SquareFootage)
	assert.Equal(t, []int{2, 3, 4}, opts.Bedrooms)
	assert.Equal(t, []int{2, 3}, opts.Bathrooms)
	assert.Equal(t, RoomStepperMax, opts.RoomStepper)
	assert.Equal(t, 3, opts.Count)
}

func TestBuildFilterOptions_Empty(t *testing.T) {
	opts := BuildFilterOptions(nil)

	assert.Zero(t, opts.Count)
	assert.Empty(t, opts.Bedrooms)
	assert.Zero(t, opts.Price.Max)
}

func TestNewPropertyDetailsView(t *testing.T) {
	p := sampleProperties()[2]

	view := NewPropertyDetailsView(p)

	assert.Equal(t, "Townhouse", view.TypeDisplayName)
	assert.Equal(t, p.Location.Latitude, view.MapPin.Latitude)
	assert.Equal(t, p.Location.Geohash(), view.MapPin.Geohash)
}
