package domain

import "time"

// Product is a catalog item as the store API returns it.
type Product struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Barcode     string    `json:"barcode,omitempty"`
	SKU         string    `json:"sku"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// LowStock reports whether the product sits at or under the reorder
// threshold used by the stock view.
func (p Product) LowStock(threshold int) bool {
	return p.Quantity <= threshold
}

// Category is a product grouping. The API keeps it as a named record even
// though products reference categories by name.
type Category struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}
