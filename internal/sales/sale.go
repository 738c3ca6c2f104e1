// Package sales implements point-of-sale transactions: a Sale
// accumulates line items against a catalog and a Ledger records
// finished sales for reporting.
package sales

import (
	"fmt"
	"time"

	"mini-pos/internal/catalog"
	"mini-pos/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Status tracks the lifecycle of a sale.
type Status string

const (
	StatusOpen      Status = "OPEN"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// LineItem is an immutable snapshot of one product-quantity entry.
// Name and unit price are captured at add time and do not track later
// changes to the catalog entry.
type LineItem struct {
	ID        uuid.UUID       `json:"-"`
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Sale is a single transaction from creation through completion or
// cancellation. It references products only by ID; stock mutation goes
// through the catalog it was opened against.
type Sale struct {
	ID              string
	Status          Status
	Items           []LineItem
	Total           decimal.Decimal
	DiscountApplied decimal.Decimal
	PaymentMethod   string
	CreatedAt       time.Time

	cat    *catalog.Catalog
	logger zerolog.Logger
}

var percentDivisor = decimal.NewFromInt(100)

// AddItem appends a line item for the given product and quantity.
// The quantity is checked against the catalog's current stock level at
// call time only; nothing is reserved, so repeated adds that each pass
// individually may jointly exceed stock until Complete runs.
func (s *Sale) AddItem(productID string, quantity int) (*LineItem, error) {
	if s.Status != StatusOpen {
		return nil, model.ErrSaleNotOpen
	}

	if quantity <= 0 {
		s.logger.Warn().
			Str("product_id", productID).
			Int("quantity", quantity).
			Msg("invalid quantity")
		return nil, model.ErrInvalidQuantity
	}

	p, ok := s.cat.Get(productID)
	if !ok {
		s.logger.Warn().Str("product_id", productID).Msg("product not in catalog")
		return nil, model.ErrProductNotFound
	}

	if quantity > p.Quantity {
		s.logger.Warn().
			Str("product_id", productID).
			Int("requested", quantity).
			Int("available", p.Quantity).
			Msg("insufficient stock")
		return nil, model.ErrInsufficientStock
	}

	item := LineItem{
		ID:        uuid.New(),
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  quantity,
		Subtotal:  p.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}

	s.Items = append(s.Items, item)
	s.Total = s.Total.Add(item.Subtotal)

	s.logger.Debug().
		Str("sale_id", s.ID).
		Str("product_id", p.ID).
		Int("quantity", quantity).
		Str("subtotal", item.Subtotal.StringFixed(2)).
		Msg("item added")

	return &s.Items[len(s.Items)-1], nil
}

// ApplyDiscount reduces the running total by percent and returns the
// amount taken off. Percent must fall within [0, 100] inclusive.
// Repeated calls compound on the already-discounted total, and
// DiscountApplied remembers only the most recent call's amount.
func (s *Sale) ApplyDiscount(percent decimal.Decimal) (decimal.Decimal, error) {
	if s.Status != StatusOpen {
		return decimal.Zero, model.ErrSaleNotOpen
	}

	if percent.IsNegative() || percent.GreaterThan(percentDivisor) {
		s.logger.Warn().
			Str("sale_id", s.ID).
			Str("percent", percent.String()).
			Msg("discount out of range")
		return decimal.Zero, model.ErrInvalidDiscount
	}

	amount := s.Total.Mul(percent).Div(percentDivisor)
	s.Total = s.Total.Sub(amount)
	s.DiscountApplied = amount

	s.logger.Debug().
		Str("sale_id", s.ID).
		Str("percent", percent.String()).
		Str("amount", amount.StringFixed(2)).
		Msg("discount applied")

	return amount, nil
}

// Complete finalises the sale: it fixes the payment method, marks the
// sale completed, and decrements catalog stock for every line item via
// AdjustStock. It fails with ErrSaleNotOpen outside the Open state, so
// a sale can never be finalised twice.
//
// There is no rollback: lines whose product has been removed from the
// catalog since they were added are skipped and reported, while the
// remaining lines are still decremented. Stock may go negative here
// when earlier adds jointly exceeded it.
func (s *Sale) Complete(paymentMethod string) error {
	if s.Status != StatusOpen {
		s.logger.Warn().
			Str("sale_id", s.ID).
			Str("status", string(s.Status)).
			Msg("complete called on non-open sale")
		return model.ErrSaleNotOpen
	}

	s.PaymentMethod = paymentMethod
	s.Status = StatusCompleted

	var missing []string
	for _, item := range s.Items {
		if _, ok := s.cat.AdjustStock(item.ProductID, -item.Quantity); !ok {
			missing = append(missing, item.ProductID)
		}
	}

	if len(missing) > 0 {
		s.logger.Error().
			Str("sale_id", s.ID).
			Strs("product_ids", missing).
			Msg("completed sale references removed products")
		return fmt.Errorf("complete sale %s: %d line item(s) reference removed products: %w",
			s.ID, len(missing), model.ErrProductNotFound)
	}

	s.logger.Info().
		Str("sale_id", s.ID).
		Int("item_count", len(s.Items)).
		Str("total", s.Total.StringFixed(2)).
		Str("payment_method", paymentMethod).
		Msg("sale completed")

	return nil
}

// Cancel abandons an open sale: items are cleared and the total and
// discount reset to zero. No stock is restored because none was
// decremented. Fails with ErrSaleNotOpen once the sale has been
// completed or cancelled.
func (s *Sale) Cancel() error {
	if s.Status != StatusOpen {
		return model.ErrSaleNotOpen
	}

	s.Items = nil
	s.Total = decimal.Zero
	s.DiscountApplied = decimal.Zero
	s.Status = StatusCancelled

	s.logger.Info().Str("sale_id", s.ID).Msg("sale cancelled")
	return nil
}
