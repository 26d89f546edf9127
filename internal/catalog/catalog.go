package catalog

import (
	"fmt"
	"strings"

	"github.com/gamehubph/gamehub-backend/pkg/enums"
	pkgerrors "github.com/gamehubph/gamehub-backend/pkg/errors"
)

// Product is the value record flowing into the cart. Price stays a display
// string; arithmetic happens in centavos at the cart layer.
type Product struct {
	ID          int64                 `json:"id"`
	Name        string                `json:"name"`
	Price       string                `json:"price"`
	Category    enums.ProductCategory `json:"category"`
	Description string                `json:"description"`
	Rating      float64               `json:"rating"`
	ReviewCount int                   `json:"review_count"`
}

// Supplier serves the static storefront catalog. It is read-only after
// construction, so concurrent reads need no locking.
type Supplier struct {
	products []Product
	byID     map[int64]Product
}

// NewSupplier builds a supplier over the provided products. Passing none
// seeds the default storefront catalog.
func NewSupplier(products ...Product) (*Supplier, error) {
	if len(products) == 0 {
		products = defaultCatalog()
	}

	byID := make(map[int64]Product, len(products))
	for _, p := range products {
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("catalog: duplicate product id %d", p.ID)
		}
		byID[p.ID] = p
	}

	return &Supplier{
		products: products,
		byID:     byID,
	}, nil
}

// All returns the catalog in display order.
func (s *Supplier) All() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// ByID resolves a single product.
func (s *Supplier) ByID(id int64) (Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return p, nil
}

// ByCategory filters the catalog; an invalid category yields an empty slice.
func (s *Supplier) ByCategory(category enums.ProductCategory) []Product {
	return s.Filter(category, "")
}

// Filter narrows the catalog by category and a case-insensitive name search,
// the two filters the storefront home screen combines. Zero values leave
// their dimension unfiltered.
func (s *Supplier) Filter(category enums.ProductCategory, query string) []Product {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if category != "" && p.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func defaultCatalog() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "PlayStation 5 Pro",
			Price:       "₱ 44,385.00",
			Category:    enums.ProductCategoryPlaystation,
			Description: "The PlayStation®5 Pro delivers next-level performance with enhanced graphics, faster load times, and smoother gameplay. Enjoy stunning visuals, advanced ray tracing, and immersive 4k gaming powered by upgraded hardware, making it ideal for players who want the best PlayStation experience.",
			Rating:      4.5,
			ReviewCount: 108,
		},
		{
			ID:          2,
			Name:        "Nintendo Switch v1",
			Price:       "₱10,400.00",
			Category:    enums.ProductCategoryNintendo,
			Description: "The original Nintendo Switch model featuring a 6.2-inch screen, up to 9 hours of battery life, and the ability to play in handheld, tabletop, or TV mode. Perfect for gaming on the go or at home.",
			Rating:      4.3,
			ReviewCount: 89,
		},
		{
			ID:          3,
			Name:        "Nintendo Switch v2",
			Price:       "₱19,600.00",
			Category:    enums.ProductCategoryNintendo,
			Description: "Enhanced version with improved battery life (up to 9 hours), brighter display, and better performance. Includes all the versatility of the original with extended play time.",
			Rating:      4.7,
			ReviewCount: 156,
		},
		{
			ID:          4,
			Name:        "Xbox 360 S Slim",
			Price:       "₱7,105.00",
			Category:    enums.ProductCategoryXbox,
			Description: "Classic Xbox 360 in its slimmest design featuring built-in Wi-Fi, larger storage capacity, and whisper-quiet operation. Backward compatible with hundreds of Xbox games.",
			Rating:      4.4,
			ReviewCount: 203,
		},
	}
}
