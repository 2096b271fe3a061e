package enums

import "fmt"

// Category represents the canonical product categories in the catalog.
type Category string

const (
	CategoryElectronics  Category = "Electronics"
	CategoryFashion      Category = "Fashion"
	CategoryHomeGoods    Category = "Home Goods"
	CategoryBeauty       Category = "Beauty"
	CategoryFitness      Category = "Fitness"
	CategoryFoodBeverage Category = "Food & Beverage"
	CategoryBooks        Category = "Books"
	CategoryToys         Category = "Toys"
)

var validCategories = []Category{
	CategoryElectronics,
	CategoryFashion,
	CategoryHomeGoods,
	CategoryBeauty,
	CategoryFitness,
	CategoryFoodBeverage,
	CategoryBooks,
	CategoryToys,
}

// Categories returns the fixed category list in catalog order.
func Categories() []Category {
	out := make([]Category, len(validCategories))
	copy(out, validCategories)
	return out
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether the value is a known Category.
func (c Category) IsValid() bool {
	for _, candidate := range validCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCategory converts raw input into a Category.
func ParseCategory(value string) (Category, error) {
	for _, candidate := range validCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid category %q", value)
}
