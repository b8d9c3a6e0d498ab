// Package state содержит PropertyStore - явно принадлежащий одной UI-сессии контейнер состояния.
//
// PropertyStore не синхронизирован: им владеет ровно одна сессия, доступ к которой
// упорядочивает реестр сессий.
package state

import (
	"property-showcase/internal/core/domain"

	"github.com/google/uuid"
)

// Snapshot - согласованный срез наблюдаемого состояния
type Snapshot struct {
	Properties []domain.Property
	Criteria   domain.FilterCriteria
	Filtered   []domain.Property
	Selected   *domain.Property
}

type PropertyStore struct {
	properties   []domain.Property
	defaults     domain.FilterCriteria
	criteria     domain.FilterCriteria
	filtered     []domain.Property
	selectedID   uuid.UUID
	hasSelection bool
}

// NewPropertyStore создает хранилище над фиксированным списком объектов.
// Критерии по умолчанию пропускают весь список.
func NewPropertyStore(properties []domain.Property) *PropertyStore {
	owned := make([]domain.Property, len(properties))
	for i, p := range properties {
		owned[i] = p.Clone()
	}

	defaults := domain.DefaultCriteria(domain.PriceCeiling(owned))
	s := &PropertyStore{
		properties: owned,
		defaults:   defaults,
		criteria:   defaults.Clone(),
	}
	s.recompute()
	return s
}

// recompute вызывается после каждой мутации критериев
func (s *PropertyStore) recompute() {
	s.filtered = domain.ComputeFilteredView(s.properties, s.criteria)
}

func (s *PropertyStore) SetSearchText(text string) {
	s.criteria.SearchText = text
	s.recompute()
}

// ToggleTypeFilter добавляет тип в набор или убирает его оттуда. Неизвестные типы игнорируются.
func (s *PropertyStore) ToggleTypeFilter(t domain.PropertyType) {
	if !t.IsValid() {
		return
	}
	if s.criteria.HasType(t) {
		delete(s.criteria.SelectedTypes, t)
	} else {
		s.criteria.SelectedTypes[t] = struct{}{}
	}
	s.recompute()
}

// SetPriceRange устанавливает обе границы; при lower > upper верхняя граница поднимается до нижней.
func (s *PropertyStore) SetPriceRange(lower, upper float64) {
	s.criteria.PriceRange = domain.NormalizePriceRange(lower, upper)
	s.recompute()
}

// SetMinPrice двигает только нижнюю границу, при необходимости поднимая верхнюю.
func (s *PropertyStore) SetMinPrice(lower float64) {
	s.criteria.PriceRange = domain.NormalizePriceRange(lower, s.criteria.PriceRange.Upper)
	s.recompute()
}

// SetMaxPrice двигает только верхнюю границу, при необходимости опуская нижнюю.
func (s *PropertyStore) SetMaxPrice(upper float64) {
	upper = domain.ClampPrice(upper)
	lower := s.criteria.PriceRange.Lower
	if lower > upper {
		lower = upper
	}
	s.criteria.PriceRange = domain.PriceRange{Lower: lower, Upper: upper}
	s.recompute()
}

func (s *PropertyStore) SetMinBedrooms(n int) {
	s.criteria.MinBedrooms = domain.ClampCount(n)
	s.recompute()
}

func (s *PropertyStore) SetMinBathrooms(n int) {
	s.criteria.MinBathrooms = domain.ClampCount(n)
	s.recompute()
}

func (s *PropertyStore) SetMinSquareFootage(n int) {
	s.criteria.MinSquareFootage = domain.ClampCount(n)
	s.recompute()
}

// ResetFilters возвращает критерии по умолчанию.
func (s *PropertyStore) ResetFilters() {
	s.criteria = s.defaults.Clone()
	s.recompute()
}

// Select выбирает объект для детального экрана. Если id не найден, выбор не меняется.
func (s *PropertyStore) Select(id uuid.UUID) bool {
	if _, ok := s.find(id); !ok {
		return false
	}
	s.selectedID = id
	s.hasSelection = true
	return true
}

func (s *PropertyStore) ClearSelection() {
	s.selectedID = uuid.Nil
	s.hasSelection = false
}

func (s *PropertyStore) find(id uuid.UUID) (domain.Property, bool) {
	for _, p := range s.properties {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Property{}, false
}

// Property ищет объект в полном списке (без учета фильтров).
func (s *PropertyStore) Property(id uuid.UUID) (domain.Property, bool) {
	p, ok := s.find(id)
	if !ok {
		return domain.Property{}, false
	}
	return p.Clone(), true
}

func (s *PropertyStore) Properties() []domain.Property {
	return cloneAll(s.properties)
}

func (s *PropertyStore) FilteredProperties() []domain.Property {
	return cloneAll(s.filtered)
}

func (s *PropertyStore) Criteria() domain.FilterCriteria {
	return s.criteria.Clone()
}

// Selected возвращает выбранный объект или nil.
func (s *PropertyStore) Selected() *domain.Property {
	if !s.hasSelection {
		return nil
	}
	p, ok := s.find(s.selectedID)
	if !ok {
		return nil
	}
	clone := p.Clone()
	return &clone
}

func (s *PropertyStore) Snapshot() Snapshot {
	return Snapshot{
		Properties: s.Properties(),
		Criteria:   s.Criteria(),
		Filtered:   s.FilteredProperties(),
		Selected:   s.Selected(),
	}
}

func cloneAll(properties []domain.Property) []domain.Property {
	out := make([]domain.Property, len(properties))
	for i, p := range properties {
		out[i] = p.Clone()
	}
	return out
}
