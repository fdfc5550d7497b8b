package store

import "errors"

var (
	ErrUnknownProduct = errors.New("unknown product")
	ErrEmptyCart      = errors.New("cart is empty")
)

type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
}

// Catalog is the fixed product list, prices in cents.
var Catalog = []Product{
	{ID: 1, Name: "Protein Bar", Category: "nutrition", Description: "20g protein, low sugar", PriceCents: 599},
	{ID: 2, Name: "Resistance Band", Category: "equipment", Description: "Medium resistance latex band", PriceCents: 1299},
	{ID: 3, Name: "Shaker Bottle", Category: "accessories", Description: "700ml bottle with mixing ball", PriceCents: 799},
	{ID: 4, Name: "Yoga Mat", Category: "equipment", Description: "6mm non-slip mat", PriceCents: 2499},
	{ID: 5, Name: "Whey Protein", Category: "nutrition", Description: "1kg vanilla whey isolate", PriceCents: 3999},
	{ID: 6, Name: "Dumbbell Set", Category: "equipment", Description: "Adjustable pair, 2 to 10kg", PriceCents: 4999},
	{ID: 7, Name: "Jump Rope", Category: "equipment", Description: "Speed rope with ball bearings", PriceCents: 999},
	{ID: 8, Name: "Foam Roller", Category: "recovery", Description: "High density 45cm roller", PriceCents: 1999},
}

var catalogByID = func() map[int]Product {
	m := make(map[int]Product, len(Catalog))
	for _, p := range Catalog {
		m[p.ID] = p
	}
	return m
}()

func ProductByID(id int) (Product, bool) {
	p, ok := catalogByID[id]
	return p, ok
}

// TotalCents sums the prices of ids found in the catalog. Unknown ids add nothing.
func TotalCents(ids []int) int64 {
	var total int64
	for _, id := range ids {
		if p, ok := catalogByID[id]; ok {
			total += p.PriceCents
		}
	}
	return total
}

// FormatCents renders 1398 as 13.98.
func FormatCents(cents int64) float64 {
	return float64(cents) / 100
}
