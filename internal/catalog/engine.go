// Package catalog implements the product catalog: pure filter, sort, and
// search operations over product collections, plus the store that owns the
// product list and falls back to the embedded sample data when the remote
// provider is unavailable.
package catalog

import (
	"sort"
	"strings"

	"github.com/furnworld/storefront/internal/domain"
	"github.com/furnworld/storefront/pkg/slug"
)

// FilterByCategory returns the products whose category matches the given
// name. Matching is case-insensitive and slug-tolerant: "living-room" and
// "Living Room" compare equal.
func FilterByCategory(products []domain.Product, category string) []domain.Product {
	want := slug.Normalize(category)
	out := make([]domain.Product, 0)
	for _, p := range products {
		if slug.Normalize(p.Category) == want {
			out = append(out, p)
		}
	}
	return out
}

// FilterBySubcategory returns the products matching both the category and
// subcategory names, with the same normalization as FilterByCategory. An
// empty category imposes no category constraint, so a subcategory can be
// queried on its own.
func FilterBySubcategory(products []domain.Product, category, subcategory string) []domain.Product {
	wantCat := slug.Normalize(category)
	wantSub := slug.Normalize(subcategory)
	out := make([]domain.Product, 0)
	for _, p := range products {
		if wantCat != "" && slug.Normalize(p.Category) != wantCat {
			continue
		}
		if slug.Normalize(p.Subcategory) == wantSub {
			out = append(out, p)
		}
	}
	return out
}

// FilterByFacets returns the products passing every constraint in the facet
// set. Constraints compose with AND; empty selections pass vacuously:
//   - price must fall inside the inclusive range, if one is set
//   - at least one product color must be in the selected color set
//   - at least one product material must be in the selected material set
//   - the product must be in stock when InStockOnly is set
func FilterByFacets(products []domain.Product, facets domain.Facets) []domain.Product {
	out := make([]domain.Product, 0)
	for _, p := range products {
		if matchesFacets(p, facets) {
			out = append(out, p)
		}
	}
	return out
}

func matchesFacets(p domain.Product, facets domain.Facets) bool {
	if facets.InStockOnly && !p.InStock {
		return false
	}
	if facets.PriceRange != nil {
		if p.Price < facets.PriceRange[0] || p.Price > facets.PriceRange[1] {
			return false
		}
	}
	if len(facets.Colors) > 0 && !containsAny(p.Colors, facets.Colors) {
		return false
	}
	if len(facets.Materials) > 0 && !containsAny(p.Materials, facets.Materials) {
		return false
	}
	return true
}

// containsAny reports whether any value in have appears in want.
// Comparison is locale-agnostic lowercase.
func containsAny(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

// SortProducts returns the products ordered by the given sort key. The sort
// is stable: products with equal keys keep their input order. Unknown keys
// fall through to the featured ordering (bestsellers first).
func SortProducts(products []domain.Product, key string) []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)

	switch key {
	case domain.SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case domain.SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	case domain.SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case domain.SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].IsNew && !out[j].IsNew
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].IsBestseller && !out[j].IsBestseller
		})
	}

	return out
}

// SearchProducts returns the products whose name, description, tags,
// category, or subcategory contain the query as a case-insensitive
// substring. An empty or whitespace-only query returns an empty result,
// not the full catalog.
func SearchProducts(products []domain.Product, query string) []domain.Product {
	term := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.Product, 0)
	if term == "" {
		return out
	}

	for _, p := range products {
		if matchesQuery(p, term) {
			out = append(out, p)
		}
	}
	return out
}

func matchesQuery(p domain.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Category), term) ||
		strings.Contains(strings.ToLower(p.Subcategory), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// FeaturedProducts returns the products flagged as bestsellers or new.
func FeaturedProducts(products []domain.Product) []domain.Product {
	out := make([]domain.Product, 0)
	for _, p := range products {
		if p.IsBestseller || p.IsNew {
			out = append(out, p)
		}
	}
	return out
}

// ProductByID returns the product with the given ID, or nil if absent.
func ProductByID(products []domain.Product, id string) *domain.Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}

// ProductBySlug returns the product whose URL slug matches, or nil if
// absent. Product slugs are derived from the name, so "monroe-sofa" finds
// the product named "Monroe Sofa".
func ProductBySlug(products []domain.Product, s string) *domain.Product {
	want := slug.Generate(s)
	if want == "" {
		return nil
	}
	for i := range products {
		if slug.Generate(products[i].Name) == want {
			return &products[i]
		}
	}
	return nil
}

// FacetValues returns the distinct colors and materials present in the
// product collection, in first-seen order. The storefront uses these to
// render the filter sidebar for the current view.
func FacetValues(products []domain.Product) (colors, materials []string) {
	seenColor := make(map[string]struct{})
	seenMaterial := make(map[string]struct{})
	colors = make([]string, 0)
	materials = make([]string, 0)

	for _, p := range products {
		for _, c := range p.Colors {
			if _, ok := seenColor[c]; !ok {
				seenColor[c] = struct{}{}
				colors = append(colors, c)
			}
		}
		for _, m := range p.Materials {
			if _, ok := seenMaterial[m]; !ok {
				seenMaterial[m] = struct{}{}
				materials = append(materials, m)
			}
		}
	}
	return colors, materials
}
