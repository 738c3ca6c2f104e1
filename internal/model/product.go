package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCategory is assigned to products created without a category.
const DefaultCategory = "General"

// Product represents a single item in the store catalog.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Category  string          `json:"category"`
	CreatedAt time.Time       `json:"createdAt"`
}

// NewProduct creates a product, defaulting the category when empty.
func NewProduct(id, name string, price decimal.Decimal, quantity int, category string) *Product {
	if category == "" {
		category = DefaultCategory
	}
	return &Product{
		ID:        id,
		Name:      name,
		Price:     price,
		Quantity:  quantity,
		Category:  category,
		CreatedAt: time.Now(),
	}
}

// InStock reports whether any units remain on hand.
func (p *Product) InStock() bool {
	return p.Quantity > 0
}

// StockValue returns the value of all units on hand (price × quantity).
func (p *Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
