// Package fixtures отдает встроенный в бинарник набор демонстрационных объектов.
//
// Данные проверяются по JSON-схеме при создании источника; некорректные данные
// считаются фатальной ошибкой запуска.
package fixtures

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"property-showcase/internal/core/domain"
	"property-showcase/internal/core/port"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "property-list.schema.json"

//go:embed data/properties.json
var embeddedProperties []byte

//go:embed data/property-list.schema.json
var embeddedSchema []byte

var _ port.PropertySourcePort = (*Source)(nil)

type Source struct {
	properties []domain.Property
}

// NewEmbeddedSource загружает встроенные fixture-данные.
func NewEmbeddedSource() (*Source, error) {
	return NewSource(embeddedProperties)
}

// NewSource проверяет data по схеме и разбирает объекты.
func NewSource(data []byte) (*Source, error) {
	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("fixture data is not a valid JSON: %w", err)
	}
	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("fixture schema validation failed: %w", err)
	}

	var doc propertyListDTO
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode fixture data: %w", err)
	}

	properties := make([]domain.Property, 0, len(doc.Properties))
	for i, dto := range doc.Properties {
		p, err := dto.toDomain()
		if err != nil {
			return nil, fmt.Errorf("fixture property #%d: %w", i, err)
		}
		properties = append(properties, p)
	}
	if err := domain.ValidateProperties(properties); err != nil {
		return nil, err
	}

	return &Source{properties: properties}, nil
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	if err := compiler.AddResource(schemaURL, bytes.NewReader(embeddedSchema)); err != nil {
		return nil, fmt.Errorf("failed to add fixture schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile fixture schema: %w", err)
	}
	return schema, nil
}

// LoadProperties возвращает копии объектов в исходном порядке.
func (s *Source) LoadProperties(ctx context.Context) ([]domain.Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.Property, len(s.properties))
	for i, p := range s.properties {
		out[i] = p.Clone()
	}
	return out, nil
}

type propertyListDTO struct {
	Properties []propertyDTO `json:"properties"`
}

type propertyDTO struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Price         float64       `json:"price"`
	Address       string        `json:"address"`
	Location      coordinateDTO `json:"location"`
	Bedrooms      int           `json:"bedrooms"`
	Bathrooms     int           `json:"bathrooms"`
	SquareFootage int           `json:"square_footage"`
	PropertyType  string        `json:"property_type"`
	Images        []string      `json:"images"`
	Features      []featureDTO  `json:"features"`
	Status        string        `json:"status"`
}

type coordinateDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type featureDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func (d propertyDTO) toDomain() (domain.Property, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Property{}, fmt.Errorf("invalid id %q: %w", d.ID, err)
	}

	features := make([]domain.PropertyFeature, 0, len(d.Features))
	for _, f := range d.Features {
		fid, err := uuid.Parse(f.ID)
		if err != nil {
			return domain.Property{}, fmt.Errorf("invalid feature id %q: %w", f.ID, err)
		}
		features = append(features, domain.PropertyFeature{ID: fid, Name: f.Name, Icon: f.Icon})
	}

	images := d.Images
	if images == nil {
		images = []string{}
	}

	return domain.Property{
		ID:            id,
		Title:         d.Title,
		Description:   d.Description,
		Price:         d.Price,
		Address:       d.Address,
		Location:      domain.Coordinate{Latitude: d.Location.Latitude, Longitude: d.Location.Longitude},
		Bedrooms:      d.Bedrooms,
		Bathrooms:     d.Bathrooms,
		SquareFootage: d.SquareFootage,
		Type:          domain.PropertyType(d.PropertyType),
		Images:        images,
		Features:      features,
		Status:        domain.PropertyStatus(d.Status),
	}, nil
}
