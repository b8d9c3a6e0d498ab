package domain

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/mmcloughlin/geohash"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MapPinPrecision - длина geohash для метки на карте (≈5м)
const MapPinPrecision = 9

// PropertyType - тип объекта недвижимости
type PropertyType string

const (
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeCondo     PropertyType = "condo"
	PropertyTypeTownhouse PropertyType = "townhouse"
	PropertyTypeLand      PropertyType = "land"
)

// AllPropertyTypes возвращает все типы в порядке отображения на экране фильтров.
func AllPropertyTypes() []PropertyType {
	return []PropertyType{
		PropertyTypeHouse,
		PropertyTypeApartment,
		PropertyTypeCondo,
		PropertyTypeTownhouse,
		PropertyTypeLand,
	}
}

func (t PropertyType) IsValid() bool {
	switch t {
	case PropertyTypeHouse, PropertyTypeApartment, PropertyTypeCondo, PropertyTypeTownhouse, PropertyTypeLand:
		return true
	}
	return false
}

// DisplayName - название для UI ("townhouse" -> "Townhouse")
func (t PropertyType) DisplayName() string {
	return cases.Title(language.English).String(string(t))
}

// ParsePropertyType разбирает системное имя типа.
func ParsePropertyType(s string) (PropertyType, error) {
	t := PropertyType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPropertyType, s)
	}
	return t, nil
}

// PropertyStatus - статус объявления
type PropertyStatus string

const (
	PropertyStatusForSale PropertyStatus = "forSale"
	PropertyStatusPending PropertyStatus = "pending"
	PropertyStatusSold    PropertyStatus = "sold"
)

func (s PropertyStatus) IsValid() bool {
	switch s {
	case PropertyStatusForSale, PropertyStatusPending, PropertyStatusSold:
		return true
	}
	return false
}

// Coordinate - географическая точка объекта
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

func (c Coordinate) IsValid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// Geohash используется как ключ метки на карте детального экрана.
func (c Coordinate) Geohash() string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, MapPinPrecision)
}

type PropertyFeature struct {
	ID   uuid.UUID
	Name string
	Icon string
}

// Property - неизменяемая запись об объекте. Создается один раз при инициализации хранилища.
type Property struct {
	ID            uuid.UUID
	Title         string
	Description   string
	Price         float64
	Address       string
	Location      Coordinate
	Bedrooms      int
	Bathrooms     int
	SquareFootage int
	Type          PropertyType
	Images        []string
	Features      []PropertyFeature
	Status        PropertyStatus
}

// Clone возвращает копию с собственными срезами, чтобы потребители не могли изменить исходные данные.
func (p Property) Clone() Property {
	// slices.Clone сохраняет разницу между nil и пустым срезом
	c := p
	c.Images = slices.Clone(p.Images)
	c.Features = slices.Clone(p.Features)
	return c
}

// Validate проверяет инварианты записи.
func (p Property) Validate() error {
	switch {
	case p.ID == uuid.Nil:
		return fmt.Errorf("%w: empty id", ErrMalformedProperty)
	case p.Price < 0:
		return fmt.Errorf("%w: property %s has negative price", ErrMalformedProperty, p.ID)
	case !p.Location.IsValid():
		return fmt.Errorf("%w: property %s has coordinate out of range", ErrMalformedProperty, p.ID)
	case p.Bedrooms < 0 || p.Bathrooms < 0 || p.SquareFootage < 0:
		return fmt.Errorf("%w: property %s has negative counts", ErrMalformedProperty, p.ID)
	case !p.Type.IsValid():
		return fmt.Errorf("%w: property %s has unknown type %q", ErrMalformedProperty, p.ID, p.Type)
	case !p.Status.IsValid():
		return fmt.Errorf("%w: property %s has unknown status %q", ErrMalformedProperty, p.ID, p.Status)
	}
	return nil
}

// ValidateProperties проверяет каждую запись и уникальность id.
func ValidateProperties(properties []Property) error {
	seen := make(map[uuid.UUID]struct{}, len(properties))
	for _, p := range properties {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: duplicate id %s", ErrMalformedProperty, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
