package enums

import "fmt"

// ProductCategory mirrors the storefront's category filter chips.
type ProductCategory string

const (
	ProductCategoryPlaystation ProductCategory = "Playstation"
	ProductCategoryNintendo    ProductCategory = "Nintendo"
	ProductCategoryXbox        ProductCategory = "Xbox"
)

var validProductCategories = []ProductCategory{
	ProductCategoryPlaystation,
	ProductCategoryNintendo,
	ProductCategoryXbox,
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCategory.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}

// ProductCategories returns the known categories in display order.
func ProductCategories() []ProductCategory {
	out := make([]ProductCategory, len(validProductCategories))
	copy(out, validProductCategories)
	return out
}
