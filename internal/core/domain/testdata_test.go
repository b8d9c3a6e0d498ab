package domain

import "github.com/google/uuid"

var (
	villaID     = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	apartmentID = uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	townhouseID = uuid.MustParse("00000000-0000-0000-0000-00000000000c")
)

// sampleProperties - A, B, C из демонстрационного набора
func sampleProperties() []Property {
	return []Property{
		{
			ID:            villaID,
			Title:         "Luxury Waterfront Villa",
			Price:         1_250_000,
			Address:       "123 Ocean View Drive, Malibu, CA",
			Location:      Coordinate{Latitude: 34.0259, Longitude: -118.7798},
			Bedrooms:      4,
			Bathrooms:     3,
			SquareFootage: 3500,
			Type:          PropertyTypeHouse,
			Images:        []string{"property1", "property2", "property3"},
			Status:        PropertyStatusForSale,
		},
		{
			ID:            apartmentID,
			Title:         "Modern Downtown Apartment",
			Price:         750_000,
			Address:       "456 City Center, Los Angeles, CA",
			Location:      Coordinate{Latitude: 34.0522, Longitude: -118.2437},
			Bedrooms:      2,
			Bathrooms:     2,
			SquareFootage: 1200,
			Type:          PropertyTypeApartment,
			Images:        []string{"property4"},
			Status:        PropertyStatusForSale,
		},
		{
			ID:            townhouseID,
			Title:         "Cozy Townhouse",
			Price:         450_000,
			Address:       "789 Suburban Lane, Pasadena, CA",
			Location:      Coordinate{Latitude: 34.1478, Longitude: -118.1445},
			Bedrooms:      3,
			Bathrooms:     2,
			SquareFootage: 1800,
			Type:          PropertyTypeTownhouse,
			Images:        []string{},
			Status:        PropertyStatusPending,
		},
	}
}

func ids(properties []Property) []uuid.UUID {
	out := make([]uuid.UUID, len(properties))
	for i, p := range properties {
		out[i] = p.ID
	}
	return out
}

func defaultCriteriaFor(properties []Property) FilterCriteria {
	return DefaultCriteria(PriceCeiling(properties))
}
