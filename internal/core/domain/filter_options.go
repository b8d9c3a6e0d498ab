package domain

import "slices"

const (
	PriceSliderStep         = 10_000
	SquareFootageSliderStep = 100
	RoomStepperMax          = 10
)

// RangeOption - границы и шаг слайдера
type RangeOption struct {
	Min  float64
	Max  float64
	Step float64
}

// FilterOptions - описание экрана фильтров, вычисленное по полному списку объектов
type FilterOptions struct {
	Types         []PropertyType
	Price         RangeOption
	SquareFootage RangeOption
	Bedrooms      []int
	Bathrooms     []int
	RoomStepper   int
	Count         int
}

func BuildFilterOptions(properties []Property) FilterOptions {
	opts := FilterOptions{
		Types:         AllPropertyTypes(),
		Price:         RangeOption{Step: PriceSliderStep},
		SquareFootage: RangeOption{Step: SquareFootageSliderStep},
		Bedrooms:      []int{},
		Bathrooms:     []int{},
		RoomStepper:   RoomStepperMax,
		Count:         len(properties),
	}

	for i, p := range properties {
		if i == 0 || p.Price < opts.Price.Min {
			opts.Price.Min = p.Price
		}
		if p.Price > opts.Price.Max {
			opts.Price.Max = p.Price
		}
		if i == 0 || float64(p.SquareFootage) < opts.SquareFootage.Min {
			opts.SquareFootage.Min = float64(p.SquareFootage)
		}
		if float64(p.SquareFootage) > opts.SquareFootage.Max {
			opts.SquareFootage.Max = float64(p.SquareFootage)
		}
		if !slices.Contains(opts.Bedrooms, p.Bedrooms) {
			opts.Bedrooms = append(opts.Bedrooms, p.Bedrooms)
		}
		if !slices.Contains(opts.Bathrooms, p.Bathrooms) {
			opts.Bathrooms = append(opts.Bathrooms, p.Bathrooms)
		}
	}
	slices.Sort(opts.Bedrooms)
	slices.Sort(opts.Bathrooms)

	return opts
}
