package domain

import "math"

// PriceRange - закрытый диапазон цены, Lower <= Upper, обе границы >= 0
type PriceRange struct {
	Lower float64
	Upper float64
}

func (r PriceRange) Contains(price float64) bool {
	return price >= r.Lower && price <= r.Upper
}

// NormalizePriceRange приводит диапазон к допустимому виду.
// Отрицательные значения и NaN становятся 0. Если нижняя граница больше верхней,
// верхняя поднимается до нижней.
func NormalizePriceRange(lower, upper float64) PriceRange {
	lower = ClampPrice(lower)
	upper = ClampPrice(upper)
	if lower > upper {
		upper = lower
	}
	return PriceRange{Lower: lower, Upper: upper}
}

// ClampPrice заменяет отрицательную цену и NaN нулем.
func ClampPrice(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// ClampCount обрезает отрицательные пороги до нуля.
func ClampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// FilterCriteria - текущие условия фильтрации.
// Пустой SelectedTypes означает отсутствие ограничения по типу.
type FilterCriteria struct {
	SearchText       string
	SelectedTypes    map[PropertyType]struct{}
	PriceRange       PriceRange
	MinBedrooms      int
	MinBathrooms     int
	MinSquareFootage int
}

// DefaultCriteria - критерии, пропускающие любой объект с ценой до priceCeiling.
func DefaultCriteria(priceCeiling float64) FilterCriteria {
	return FilterCriteria{
		SelectedTypes: make(map[PropertyType]struct{}),
		PriceRange:    NormalizePriceRange(0, priceCeiling),
	}
}

// PriceCeiling - максимальная цена среди объектов, верхняя граница "полного" диапазона.
func PriceCeiling(properties []Property) float64 {
	var ceiling float64
	for _, p := range properties {
		if p.Price > ceiling {
			ceiling = p.Price
		}
	}
	return ceiling
}

func (c FilterCriteria) HasType(t PropertyType) bool {
	_, ok := c.SelectedTypes[t]
	return ok
}

// Types возвращает выбранные типы в порядке AllPropertyTypes.
func (c FilterCriteria) Types() []PropertyType {
	types := make([]PropertyType, 0, len(c.SelectedTypes))
	for _, t := range AllPropertyTypes() {
		if c.HasType(t) {
			types = append(types, t)
		}
	}
	return types
}

func (c FilterCriteria) Clone() FilterCriteria {
	clone := c
	clone.SelectedTypes = make(map[PropertyType]struct{}, len(c.SelectedTypes))
	for t := range c.SelectedTypes {
		clone.SelectedTypes[t] = struct{}{}
	}
	return clone
}
