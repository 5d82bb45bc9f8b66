package domain

// Dimensions holds the physical size of a product in inches.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// Product represents a single catalog item. Products are read-only once
// loaded: the cart and the filter engine never mutate them, and the whole
// collection is replaced on refetch.
type Product struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Category      string      `json:"category"`
	Subcategory   string      `json:"subcategory"`
	Price         float64     `json:"price"`
	OriginalPrice *float64    `json:"original_price,omitempty"`
	Images        []string    `json:"images"`
	Colors        []string    `json:"colors"`
	Materials     []string    `json:"materials"`
	InStock       bool        `json:"in_stock"`
	StockCount    int         `json:"stock_count"`
	Rating        float64     `json:"rating"`
	ReviewCount   int         `json:"review_count"`
	Tags          []string    `json:"tags"`
	Dimensions    *Dimensions `json:"dimensions,omitempty"`
	Weight        *float64    `json:"weight,omitempty"`
	IsNew         bool        `json:"is_new"`
	IsBestseller  bool        `json:"is_bestseller"`
	Discount      *int        `json:"discount,omitempty"`
}

// Sort keys accepted by the catalog engine.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// ValidSortKeys returns the set of valid sort keys.
func ValidSortKeys() []string {
	return []string{SortFeatured, SortPriceLow, SortPriceHigh, SortRating, SortNewest}
}

// IsValidSortKey checks whether the given string is a valid sort key.
func IsValidSortKey(key string) bool {
	for _, k := range ValidSortKeys() {
		if k == key {
			return true
		}
	}
	return false
}

// Facets holds the filter dimensions applied to narrow a product collection.
// Zero-valued fields impose no constraint.
type Facets struct {
	// PriceRange is an inclusive [min, max] bound on product price.
	// A nil range imposes no price constraint.
	PriceRange *[2]float64 `json:"price_range,omitempty"`

	// Colors passes products sharing at least one color with the set.
	Colors []string `json:"colors,omitempty"`

	// Materials passes products sharing at least one material with the set.
	Materials []string `json:"materials,omitempty"`

	// InStockOnly excludes out-of-stock products when true.
	InStockOnly bool `json:"in_stock_only"`
}
