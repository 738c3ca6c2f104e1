package sales

import (
	"fmt"
	"time"

	"mini-pos/internal/catalog"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Ledger allocates sales and keeps the record of those handed back to
// it, along with aggregate revenue reporting. The sale counter lives on
// the instance; two ledgers never share a sequence.
type Ledger struct {
	sales      []*Sale
	nextSaleID int
	cat        *catalog.Catalog
	logger     zerolog.Logger
}

// NewLedger creates an empty ledger whose sales draw stock from cat.
func NewLedger(cat *catalog.Catalog, logger zerolog.Logger) *Ledger {
	return &Ledger{
		nextSaleID: 1,
		cat:        cat,
		logger:     logger.With().Str("component", "ledger").Logger(),
	}
}

// NewSale allocates an open sale with the next sequential identity
// (SALE-0001, SALE-0002, ...). It never fails.
func (l *Ledger) NewSale() *Sale {
	id := fmt.Sprintf("SALE-%04d", l.nextSaleID)
	l.nextSaleID++

	sale := &Sale{
		ID:              id,
		Status:          StatusOpen,
		Total:           decimal.Zero,
		DiscountApplied: decimal.Zero,
		CreatedAt:       time.Now(),
		cat:             l.cat,
		logger:          l.logger.With().Str("sale_id", id).Logger(),
	}

	l.logger.Debug().Str("sale_id", id).Msg("sale created")
	return sale
}

// Record appends the sale to the ledger. The sale's status is not
// checked: an open or cancelled sale is recorded as-is.
func (l *Ledger) Record(sale *Sale) {
	l.sales = append(l.sales, sale)
	l.logger.Info().
		Str("sale_id", sale.ID).
		Str("status", string(sale.Status)).
		Str("total", sale.Total.StringFixed(2)).
		Msg("sale recorded")
}

// TotalRevenue sums the totals of all recorded sales.
func (l *Ledger) TotalRevenue() decimal.Decimal {
	revenue := decimal.Zero
	for _, s := range l.sales {
		revenue = revenue.Add(s.Total)
	}
	return revenue
}

// Count returns the number of recorded sales.
func (l *Ledger) Count() int {
	return len(l.sales)
}

// AverageSaleValue returns total revenue divided by the sale count, or
// zero for an empty ledger.
func (l *Ledger) AverageSaleValue() decimal.Decimal {
	if len(l.sales) == 0 {
		return decimal.Zero
	}
	return l.TotalRevenue().Div(decimal.NewFromInt(int64(len(l.sales))))
}

// SalesOnDate returns the recorded sales whose creation timestamp falls
// on the given calendar date.
func (l *Ledger) SalesOnDate(date time.Time) []*Sale {
	y, m, d := date.Date()
	matches := make([]*Sale, 0)
	for _, s := range l.sales {
		sy, sm, sd := s.CreatedAt.Date()
		if sy == y && sm == m && sd == d {
			matches = append(matches, s)
		}
	}
	return matches
}
