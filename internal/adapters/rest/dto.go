package rest

import (
	"property-showcase/internal/core/domain"

	"github.com/google/uuid"
)

type SessionResponse struct {
	SessionID string `json:"session_id"`
}

// PropertyCardResponse - DTO для карточки объекта в списке.
type PropertyCardResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Price         float64 `json:"price"`
	Address       string  `json:"address"`
	Bedrooms      int     `json:"bedrooms"`
	Bathrooms     int     `json:"bathrooms"`
	SquareFootage int     `json:"square_footage"`
	PropertyType  string  `json:"property_type"`
	Status        string  `json:"status"`
	Thumbnail     string  `json:"thumbnail"`
}

type PriceRangeResponse struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

type FilterCriteriaResponse struct {
	SearchText       string             `json:"search_text"`
	SelectedTypes    []string           `json:"selected_types"`
	PriceRange       PriceRangeResponse `json:"price_range"`
	MinBedrooms      int                `json:"min_bedrooms"`
	MinBathrooms     int                `json:"min_bathrooms"`
	MinSquareFootage int                `json:"min_square_footage"`
}

type PropertyListResponse struct {
	Total      int                    `json:"total"`
	Count      int                    `json:"count"`
	Data       []PropertyCardResponse `json:"data"`
	Filters    FilterCriteriaResponse `json:"filters"`
	SelectedID *string                `json:"selected_id"`
}

// PatchFiltersRequest - каждое заданное поле соответствует одной операции над критериями
type PatchFiltersRequest struct {
	Reset            bool     `json:"reset"`
	SearchText       *string  `json:"search_text"`
	ToggleTypes      []string `json:"toggle_types"`
	PriceLower       *float64 `json:"price_lower"`
	PriceUpper       *float64 `json:"price_upper"`
	MinBedrooms      *int     `json:"min_bedrooms"`
	MinBathrooms     *int     `json:"min_bathrooms"`
	MinSquareFootage *int     `json:"min_square_footage"`
}

type FeatureResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type MapPinResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Geohash   string  `json:"geohash"`
}

type PropertyDetailsResponse struct {
	ID                  string            `json:"id"`
	Title               string            `json:"title"`
	Description         string            `json:"description"`
	Price               float64           `json:"price"`
	Address             string            `json:"address"`
	Bedrooms            int               `json:"bedrooms"`
	Bathrooms           int               `json:"bathrooms"`
	SquareFootage       int               `json:"square_footage"`
	PropertyType        string            `json:"property_type"`
	PropertyTypeDisplay string            `json:"property_type_display"`
	Status              string            `json:"status"`
	Images              []string          `json:"images"`
	Features            []FeatureResponse `json:"features"`
	MapPin              MapPinResponse    `json:"map_pin"`
}

// DictionaryItemResponse - элемент справочника для UI
type DictionaryItemResponse struct {
	SystemName  string `json:"system_name"`
	DisplayName string `json:"display_name"`
}

type RangeOptionResponse struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

type FilterOptionsResponse struct {
	Types          []DictionaryItemResponse `json:"types"`
	Price          RangeOptionResponse      `json:"price"`
	SquareFootage  RangeOptionResponse      `json:"square_footage"`
	Bedrooms       []int                    `json:"bedrooms"`
	Bathrooms      []int                    `json:"bathrooms"`
	RoomStepperMax int                      `json:"room_stepper_max"`
	Count          int                      `json:"count"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ContactFormResponse struct {
	PropertyID string `json:"property_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Message    string `json:"message"`
	IsOpen     bool   `json:"is_open"`
}

type ContactErrorResponse struct {
	Error string              `json:"error"`
	Form  ContactFormResponse `json:"form"`
}

func toCard(p domain.Property) PropertyCardResponse {
	card := PropertyCardResponse{
		ID:            p.ID.String(),
		Title:         p.Title,
		Price:         p.Price,
		Address:       p.Address,
		Bedrooms:      p.Bedrooms,
		Bathrooms:     p.Bathrooms,
		SquareFootage: p.SquareFootage,
		PropertyType:  string(p.Type),
		Status:        string(p.Status),
	}
	if len(p.Images) > 0 {
		card.Thumbnail = p.Images[0]
	}
	return card
}

func toCriteriaResponse(c domain.FilterCriteria) FilterCriteriaResponse {
	types := make([]string, 0, len(c.SelectedTypes))
	for _, t := range c.Types() {
		types = append(types, string(t))
	}
	return FilterCriteriaResponse{
		SearchText:       c.SearchText,
		SelectedTypes:    types,
		PriceRange:       PriceRangeResponse{Lower: c.PriceRange.Lower, Upper: c.PriceRange.Upper},
		MinBedrooms:      c.MinBedrooms,
		MinBathrooms:     c.MinBathrooms,
		MinSquareFootage: c.MinSquareFootage,
	}
}

func toListResponse(view *domain.PropertyListView) PropertyListResponse {
	resp := PropertyListResponse{
		Total:   view.Total,
		Count:   len(view.Properties),
		Data:    make([]PropertyCardResponse, len(view.Properties)),
		Filters: toCriteriaResponse(view.Criteria),
	}
	for i, p := range view.Properties {
		resp.Data[i] = toCard(p)
	}
	if view.SelectedID != nil {
		id := view.SelectedID.String()
		resp.SelectedID = &id
	}
	return resp
}

func toDetailsResponse(view *domain.PropertyDetailsView) PropertyDetailsResponse {
	p := view.Property
	features := make([]FeatureResponse, len(p.Features))
	for i, f := range p.Features {
		features[i] = FeatureResponse{ID: f.ID.String(), Name: f.Name, Icon: f.Icon}
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return PropertyDetailsResponse{
		ID:                  p.ID.String(),
		Title:               p.Title,
		Description:         p.Description,
		Price:               p.Price,
		Address:             p.Address,
		Bedrooms:            p.Bedrooms,
		Bathrooms:           p.Bathrooms,
		SquareFootage:       p.SquareFootage,
		PropertyType:        string(p.Type),
		PropertyTypeDisplay: view.TypeDisplayName,
		Status:              string(p.Status),
		Images:              images,
		Features:            features,
		MapPin: MapPinResponse{
			Latitude:  view.MapPin.Latitude,
			Longitude: view.MapPin.Longitude,
			Geohash:   view.MapPin.Geohash,
		},
	}
}

func toFilterOptionsResponse(opts *domain.FilterOptions) FilterOptionsResponse {
	types := make([]DictionaryItemResponse, len(opts.Types))
	for i, t := range opts.Types {
		types[i] = DictionaryItemResponse{SystemName: string(t), DisplayName: t.DisplayName()}
	}
	return FilterOptionsResponse{
		Types:          types,
		Price:          RangeOptionResponse(opts.Price),
		SquareFootage:  RangeOptionResponse(opts.SquareFootage),
		Bedrooms:       opts.Bedrooms,
		Bathrooms:      opts.Bathrooms,
		RoomStepperMax: opts.RoomStepper,
		Count:          opts.Count,
	}
}

func toContactFormResponse(f domain.ContactForm) ContactFormResponse {
	resp := ContactFormResponse{
		Name:    f.Name,
		Email:   f.Email,
		Message: f.Message,
		IsOpen:  f.IsOpen,
	}
	if f.PropertyID != uuid.Nil {
		resp.PropertyID = f.PropertyID.String()
	}
	return resp
}
