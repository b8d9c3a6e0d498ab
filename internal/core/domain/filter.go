package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// ComputeFilteredView возвращает объекты, удовлетворяющие критериям, в исходном порядке.
// Чистая функция: одинаковые входные данные всегда дают одинаковый результат.
func ComputeFilteredView(properties []Property, criteria FilterCriteria) []Property {
	query := foldCase(criteria.SearchText)

	result := make([]Property, 0, len(properties))
	for _, p := range properties {
		if criteria.matches(p, query) {
			result = append(result, p)
		}
	}
	return result
}

// Matches проверяет один объект по всем шести условиям.
func (c FilterCriteria) Matches(p Property) bool {
	return c.matches(p, foldCase(c.SearchText))
}

// query - уже приведенный к folded-регистру SearchText
func (c FilterCriteria) matches(p Property, query string) bool {
	// дешевые числовые проверки первыми, поиск по тексту последним
	if p.Bedrooms < c.MinBedrooms || p.Bathrooms < c.MinBathrooms || p.SquareFootage < c.MinSquareFootage {
		return false
	}
	if !c.PriceRange.Contains(p.Price) {
		return false
	}
	if len(c.SelectedTypes) > 0 && !c.HasType(p.Type) {
		return false
	}
	if query == "" {
		return true
	}
	return strings.Contains(foldCase(p.Title), query) || strings.Contains(foldCase(p.Address), query)
}

func foldCase(s string) string {
	if s == "" {
		return s
	}
	// Caser хранит состояние, поэтому создаем новый на каждый вызов
	return cases.Fold().String(s)
}
