package store

import "neighbiz/internal/pkg/errs"

var ErrInvalidCategory = errs.Validation("INVALID_CATEGORY", "unknown store category")

type Category string

const (
	CategoryCafe          Category = "cafe"
	CategoryRestaurant    Category = "restaurant"
	CategoryBakery        Category = "bakery"
	CategoryPub           Category = "pub"
	CategoryFitness       Category = "fitness"
	CategoryStudy         Category = "study"
	CategoryFlorist       Category = "florist"
	CategoryConvenience   Category = "convenience"
	CategoryEntertainment Category = "entertain"
	CategoryOther         Category = "other"
)

var categories = map[Category]struct{}{
	CategoryCafe:          {},
	CategoryRestaurant:    {},
	CategoryBakery:        {},
	CategoryPub:           {},
	CategoryFitness:       {},
	CategoryStudy:         {},
	CategoryFlorist:       {},
	CategoryConvenience:   {},
	CategoryEntertainment: {},
	CategoryOther:         {},
}

// NewCategory defaults an empty value to "other".
func NewCategory(s string) (Category, error) {
	if s == "" {
		return CategoryOther, nil
	}
	c := Category(s)
	if _, ok := categories[c]; !ok {
		return "", ErrInvalidCategory
	}
	return c, nil
}

func (c Category) String() string { return string(c) }
