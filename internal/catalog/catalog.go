// Package catalog holds the in-memory product inventory for a single
// store process. All operations are synchronous and assume exclusive
// access; callers introducing concurrency must add their own locking.
package catalog

import (
	"mini-pos/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// DefaultLowStockThreshold is used when callers do not supply one.
const DefaultLowStockThreshold = 10

// Catalog owns the set of products keyed by product ID.
type Catalog struct {
	products map[string]*model.Product
	// order keeps listings deterministic; maps iterate randomly.
	order  []string
	logger zerolog.Logger
}

// New creates an empty catalog.
func New(logger zerolog.Logger) *Catalog {
	return &Catalog{
		products: make(map[string]*model.Product),
		logger:   logger.With().Str("component", "catalog").Logger(),
	}
}

// Add inserts a new product. It fails with ErrDuplicateProduct when the
// product ID is already present, leaving the catalog unchanged.
func (c *Catalog) Add(p *model.Product) error {
	if _, exists := c.products[p.ID]; exists {
		c.logger.Warn().Str("product_id", p.ID).Msg("duplicate product ID")
		return model.ErrDuplicateProduct
	}

	if p.Category == "" {
		p.Category = model.DefaultCategory
	}

	c.products[p.ID] = p
	c.order = append(c.order, p.ID)

	c.logger.Debug().
		Str("product_id", p.ID).
		Str("name", p.Name).
		Int("quantity", p.Quantity).
		Msg("product added")

	return nil
}

// Get retrieves a product by ID. The second return value reports
// whether the product was found; a miss is not an error.
func (c *Catalog) Get(id string) (*model.Product, bool) {
	p, ok := c.products[id]
	return p, ok
}

// Remove deletes a product by ID and reports whether a deletion
// occurred.
func (c *Catalog) Remove(id string) bool {
	if _, ok := c.products[id]; !ok {
		return false
	}

	delete(c.products, id)
	for i, pid := range c.order {
		if pid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}

	c.logger.Debug().Str("product_id", id).Msg("product removed")
	return true
}

// AdjustStock adds delta (which may be negative) to the product's
// quantity and returns the new quantity. There is no floor check:
// quantity may go negative when called directly. The boolean reports
// whether the product exists.
func (c *Catalog) AdjustStock(id string, delta int) (int, bool) {
	p, ok := c.products[id]
	if !ok {
		c.logger.Warn().Str("product_id", id).Msg("stock adjustment for unknown product")
		return 0, false
	}

	p.Quantity += delta

	c.logger.Debug().
		Str("product_id", id).
		Int("delta", delta).
		Int("quantity", p.Quantity).
		Msg("stock adjusted")

	return p.Quantity, true
}

// ListAll returns all products in insertion order.
func (c *Catalog) ListAll() []*model.Product {
	products := make([]*model.Product, 0, len(c.order))
	for _, id := range c.order {
		products = append(products, c.products[id])
	}
	return products
}

// FindByCategory returns the products whose category matches exactly
// (case-sensitive, no partial match).
func (c *Catalog) FindByCategory(category string) []*model.Product {
	matches := make([]*model.Product, 0)
	for _, id := range c.order {
		if p := c.products[id]; p.Category == category {
			matches = append(matches, p)
		}
	}
	return matches
}

// FindLowStock returns the products with quantity strictly below
// threshold. A quantity exactly equal to the threshold is excluded.
func (c *Catalog) FindLowStock(threshold int) []*model.Product {
	matches := make([]*model.Product, 0)
	for _, id := range c.order {
		if p := c.products[id]; p.Quantity < threshold {
			matches = append(matches, p)
		}
	}
	return matches
}

// TotalValue sums price × quantity across the whole catalog. An empty
// catalog yields zero.
func (c *Catalog) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, p := range c.products {
		total = total.Add(p.StockValue())
	}
	return total
}

// Count returns the number of products currently in the catalog.
func (c *Catalog) Count() int {
	return len(c.products)
}
