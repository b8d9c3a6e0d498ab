package port

import (
	"context"
	"property-showcase/internal/core/domain"
)

// PropertySourcePort - источник фиксированного набора объектов (fixture data)
type PropertySourcePort interface {
	LoadProperties(ctx context.Context) ([]domain.Property, error)
}
