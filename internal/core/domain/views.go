package domain

import "github.com/google/uuid"

// PropertyListView - данные для экрана списка
type PropertyListView struct {
	Properties []Property
	Total      int // размер полного списка
	Criteria   FilterCriteria
	SelectedID *uuid.UUID
}

// MapPin - метка объекта на карте
type MapPin struct {
	Latitude  float64
	Longitude float64
	Geohash   string
}

// PropertyDetailsView - данные для детального экрана: карусель, карта, характеристики
type PropertyDetailsView struct {
	Property        Property
	TypeDisplayName string
	MapPin          MapPin
}

func NewPropertyDetailsView(p Property) *PropertyDetailsView {
	return &PropertyDetailsView{
		Property:        p,
		TypeDisplayName: p.Type.DisplayName(),
		MapPin: MapPin{
			Latitude:  p.Location.Latitude,
			Longitude: p.Location.Longitude,
			Geohash:   p.Location.Geohash(),
		},
	}
}

// FilterUpdate - набор изменений критериев из экрана фильтров.
// Каждое заданное поле соответствует одной операции PropertyStore.
type FilterUpdate struct {
	Reset            bool
	SearchText       *string
	ToggleTypes      []PropertyType
	PriceLower       *float64
	PriceUpper       *float64
	MinBedrooms      *int
	MinBathrooms     *int
	MinSquareFootage *int
}
