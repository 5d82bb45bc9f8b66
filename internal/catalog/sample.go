package catalog

import (
	"time"

	"github.com/furnworld/storefront/internal/domain"
	"github.com/furnworld/storefront/pkg/slug"
)

// Static fallback data. Served whenever the remote catalog provider is
// unreachable so the storefront keeps rendering.

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func strPtr(s string) *string     { return &s }

// SampleProducts returns the built-in furniture catalog.
func SampleProducts() []domain.Product {
	return []domain.Product{
		{
			ID:            "sofa-1",
			Name:          "Modern Sectional Sofa",
			Description:   "Comfortable and stylish sectional sofa perfect for modern living rooms. Features premium fabric upholstery and sturdy construction.",
			Category:      "Living Room",
			Subcategory:   "Sofas",
			Price:         1299,
			OriginalPrice: floatPtr(1599),
			Images:        []string{"/images/sofa-1-front.jpg", "/images/sofa-1-side.jpg"},
			Colors:        []string{"Gray", "Navy", "Beige"},
			Materials:     []string{"Fabric", "Wood Frame"},
			InStock:       true,
			StockCount:    15,
			Rating:        4.5,
			ReviewCount:   124,
			Tags:          []string{"modern", "sectional", "comfortable"},
			Dimensions:    &domain.Dimensions{Width: 90, Height: 35, Depth: 60},
			Weight:        floatPtr(85),
			IsBestseller:  true,
			Discount:      intPtr(19),
		},
		{
			ID:          "sofa-2",
			Name:        "Minimalist Loveseat",
			Description: "Clean lines and contemporary design make this loveseat perfect for smaller spaces without compromising on comfort.",
			Category:    "Living Room",
			Subcategory: "Sofas",
			Price:       799,
			Images:      []string{"/images/sofa-2-front.jpg", "/images/sofa-2-side.jpg"},
			Colors:      []string{"White", "Light Gray", "Charcoal"},
			Materials:   []string{"Linen", "Hardwood"},
			InStock:     true,
			StockCount:  8,
			Rating:      4.3,
			ReviewCount: 67,
			Tags:        []string{"minimalist", "loveseat", "compact"},
			Dimensions:  &domain.Dimensions{Width: 58, Height: 34, Depth: 32},
			Weight:      floatPtr(45),
			IsNew:       true,
		},
		{
			ID:            "coffee-table-1",
			Name:          "Glass Top Coffee Table",
			Description:   "Elegant glass top coffee table with oak wood base. Perfect centerpiece for any modern living room.",
			Category:      "Living Room",
			Subcategory:   "Coffee Tables",
			Price:         449,
			OriginalPrice: floatPtr(549),
			Images:        []string{"/images/coffee-table-1-front.jpg", "/images/coffee-table-1-top.jpg"},
			Colors:        []string{"Oak", "Walnut"},
			Materials:     []string{"Glass", "Oak Wood"},
			InStock:       true,
			StockCount:    12,
			Rating:        4.6,
			ReviewCount:   89,
			Tags:          []string{"glass", "oak", "modern"},
			Dimensions:    &domain.Dimensions{Width: 48, Height: 16, Depth: 24},
			Weight:        floatPtr(35),
			IsBestseller:  true,
			Discount:      intPtr(18),
		},
		{
			ID:           "bed-1",
			Name:         "Platform Bed Frame",
			Description:  "Sleek platform bed frame with built-in nightstands. Minimalist design that maximizes bedroom space.",
			Category:     "Bedroom",
			Subcategory:  "Beds",
			Price:        899,
			Images:       []string{"/images/bed-1-front.jpg", "/images/bed-1-angle.jpg"},
			Colors:       []string{"Natural Wood", "White", "Black"},
			Materials:    []string{"Pine Wood", "MDF"},
			InStock:      true,
			StockCount:   6,
			Rating:       4.4,
			ReviewCount:  156,
			Tags:         []string{"platform", "minimalist", "storage"},
			Dimensions:   &domain.Dimensions{Width: 64, Height: 14, Depth: 84},
			Weight:       floatPtr(75),
			IsBestseller: true,
		},
		{
			ID:            "dining-table-1",
			Name:          "Expandable Dining Table",
			Description:   "Beautiful expandable dining table that seats 4-8 people. Perfect for both intimate meals and larger gatherings.",
			Category:      "Kitchen",
			Subcategory:   "Dining Tables",
			Price:         1199,
			OriginalPrice: floatPtr(1399),
			Images:        []string{"/images/dining-table-1-closed.jpg", "/images/dining-table-1-open.jpg"},
			Colors:        []string{"Walnut", "Oak", "Cherry"},
			Materials:     []string{"Solid Wood", "Metal Hardware"},
			InStock:       true,
			StockCount:    4,
			Rating:        4.7,
			ReviewCount:   203,
			Tags:          []string{"expandable", "family", "elegant"},
			Dimensions:    &domain.Dimensions{Width: 72, Height: 30, Depth: 36},
			Weight:        floatPtr(95),
			IsBestseller:  true,
			Discount:      intPtr(14),
		},
		{
			ID:          "desk-1",
			Name:        "Standing Desk Converter",
			Description: "Adjustable standing desk converter that transforms any table into an ergonomic workspace. Height adjustable with smooth operation.",
			Category:    "Office",
			Subcategory: "Standing Desks",
			Price:       349,
			Images:      []string{"/images/desk-1-raised.jpg", "/images/desk-1-lowered.jpg"},
			Colors:      []string{"Black", "White"},
			Materials:   []string{"Steel", "Composite Wood"},
			InStock:     true,
			StockCount:  20,
			Rating:      4.2,
			ReviewCount: 78,
			Tags:        []string{"adjustable", "ergonomic", "health"},
			Dimensions:  &domain.Dimensions{Width: 32, Height: 22, Depth: 24},
			Weight:      floatPtr(28),
			IsNew:       true,
		},
		{
			ID:            "shelf-1",
			Name:          "Industrial Bookshelf",
			Description:   "Five-tier industrial style bookshelf with metal frame and wood shelves. Perfect for books, decor, and storage.",
			Category:      "Storage",
			Subcategory:   "Shelving Units",
			Price:         299,
			OriginalPrice: floatPtr(399),
			Images:        []string{"/images/shelf-1-front.jpg", "/images/shelf-1-styled.jpg"},
			Colors:        []string{"Rustic Brown", "Natural", "Black"},
			Materials:     []string{"Metal Frame", "Wood Shelves"},
			InStock:       true,
			StockCount:    18,
			Rating:        4.5,
			ReviewCount:   134,
			Tags:          []string{"industrial", "sturdy", "versatile"},
			Dimensions:    &domain.Dimensions{Width: 30, Height: 70, Depth: 12},
			Weight:        floatPtr(42),
			IsBestseller:  true,
			Discount:      intPtr(25),
		},
	}
}

// navigationTree maps each category to its subcategory names, in display order.
var navigationTree = []struct {
	name string
	subs []string
}{
	{"Living Room", []string{"Sofas", "Coffee Tables", "TV Stands", "Armchairs", "Bookshelves", "Side Tables", "Ottomans", "Room Dividers"}},
	{"Bedroom", []string{"Beds", "Mattresses", "Wardrobes", "Dressers", "Nightstands", "Bed Frames", "Vanity Tables", "Bedroom Sets"}},
	{"Kitchen", []string{"Dining Tables", "Dining Chairs", "Kitchen Islands", "Bar Stools", "Kitchen Cabinets", "Pantry Storage", "Kitchen Carts", "Dining Sets"}},
	{"Storage", []string{"Shelving Units", "Storage Boxes", "Cabinets", "Closet Systems", "Toy Storage", "Shoe Storage", "Garage Storage", "Laundry Storage"}},
	{"Office", []string{"Desks", "Office Chairs", "Filing Cabinets", "Bookcases", "Desk Accessories", "Standing Desks", "Office Storage", "Conference Tables"}},
	{"Bathroom", []string{"Vanities", "Medicine Cabinets", "Bathroom Storage", "Shower Caddies", "Towel Racks", "Bathroom Stools", "Linen Cabinets", "Over-Toilet Storage"}},
	{"Kids", []string{"Kids Beds", "Bunk Beds", "Kids Desks", "Toy Chests", "Kids Chairs", "Play Tables", "Nursery Furniture", "Teen Furniture"}},
	{"Outdoor", []string{"Patio Sets", "Outdoor Chairs", "Garden Benches", "Outdoor Tables", "Fire Pits", "Gazebos", "Outdoor Storage", "Hammocks"}},
}

// SampleCategories returns the built-in category list in navigation order.
func SampleCategories() []domain.Category {
	now := time.Unix(0, 0).UTC()
	out := make([]domain.Category, 0, len(navigationTree))
	for i, entry := range navigationTree {
		out = append(out, domain.Category{
			ID:        slug.Generate(entry.name),
			Name:      entry.name,
			Slug:      slug.Generate(entry.name),
			SortOrder: i,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return out
}

// SampleSubcategories returns the built-in subcategory list, each linked to
// its parent category by slug ID.
func SampleSubcategories() []domain.Subcategory {
	now := time.Unix(0, 0).UTC()
	out := make([]domain.Subcategory, 0)
	for _, entry := range navigationTree {
		catID := slug.Generate(entry.name)
		for i, sub := range entry.subs {
			out = append(out, domain.Subcategory{
				ID:         catID + "/" + slug.Generate(sub),
				CategoryID: catID,
				Name:       sub,
				Slug:       slug.Generate(sub),
				SortOrder:  i,
				IsActive:   true,
				CreatedAt:  now,
				UpdatedAt:  now,
			})
		}
	}
	return out
}

// SampleBanners returns the built-in hero banners.
func SampleBanners() []domain.Banner {
	now := time.Unix(0, 0).UTC()
	return []domain.Banner{
		{
			ID:        "banner-summer-sale",
			Title:     "Summer Sale",
			Subtitle:  strPtr("Up to 40% off living room furniture"),
			ImageURL:  "/images/banners/summer-sale.jpg",
			LinkURL:   strPtr("/category/living-room"),
			CTAText:   strPtr("Shop Now"),
			SortOrder: 0,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        "banner-new-arrivals",
			Title:     "New Arrivals",
			Subtitle:  strPtr("Fresh designs for every room"),
			ImageURL:  "/images/banners/new-arrivals.jpg",
			LinkURL:   strPtr("/products?sort=newest"),
			CTAText:   strPtr("Explore"),
			SortOrder: 1,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        "banner-office-refresh",
			Title:     "Office Refresh",
			Subtitle:  strPtr("Desks and chairs built for long days"),
			ImageURL:  "/images/banners/office-refresh.jpg",
			LinkURL:   strPtr("/category/office"),
			CTAText:   strPtr("Browse Office"),
			SortOrder: 2,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// SampleOffers returns the built-in promotional offers.
func SampleOffers() []domain.Offer {
	now := time.Unix(0, 0).UTC()
	return []domain.Offer{
		{
			ID:                 "offer-welcome10",
			Title:              "Welcome Offer",
			Description:        strPtr("10% off your first order"),
			DiscountPercentage: intPtr(10),
			Code:               strPtr("WELCOME10"),
			IsActive:           true,
			CreatedAt:          now,
			UpdatedAt:          now,
		},
		{
			ID:             "offer-freeship",
			Title:          "Free Delivery",
			Description:    strPtr("Free delivery on orders over $999"),
			DiscountAmount: floatPtr(49),
			Code:           strPtr("FREESHIP"),
			IsActive:       true,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}
}
