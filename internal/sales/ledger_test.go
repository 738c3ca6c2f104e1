package sales

import (
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_NewSale_SequentialIDs(t *testing.T) {
	ledger := NewLedger(newTestCatalog(t), zerolog.Nop())

	for i := 1; i <= 3; i++ {
		sale := ledger.NewSale()
		assert.Equal(t, fmt.Sprintf("SALE-%04d", i), sale.ID)
		assert.Equal(t, StatusOpen, sale.Status)
		assert.True(t, sale.Total.IsZero())
		assert.Empty(t, sale.PaymentMethod)
		assert.WithinDuration(t, time.Now(), sale.CreatedAt, time.Minute)
	}

	// A second ledger starts its own sequence.
	other := NewLedger(newTestCatalog(t), zerolog.Nop())
	assert.Equal(t, "SALE-0001", other.NewSale().ID)
}

func TestLedger_EmptyAggregates(t *testing.T) {
	ledger := NewLedger(newTestCatalog(t), zerolog.Nop())

	assert.Equal(t, 0, ledger.Count())
	assert.True(t, ledger.TotalRevenue().IsZero())
	// Average avoids division by zero and reports 0.
	assert.True(t, ledger.AverageSaleValue().IsZero())
}

func TestLedger_Aggregates(t *testing.T) {
	cat := newTestCatalog(t,
		product("P001", "Book", "10.00", 100),
		product("P002", "Pen", "2.00", 100),
	)
	ledger := NewLedger(cat, zerolog.Nop())

	first := ledger.NewSale()
	_, err := first.AddItem("P001", 1) // 10.00
	require.NoError(t, err)
	require.NoError(t, first.Complete("Cash"))
	ledger.Record(first)

	second := ledger.NewSale()
	_, err = second.AddItem("P002", 10) // 20.00
	require.NoError(t, err)
	require.NoError(t, second.Complete("Card"))
	ledger.Record(second)

	assert.Equal(t, 2, ledger.Count())
	assert.Equal(t, "30.00", ledger.TotalRevenue().StringFixed(2))
	assert.Equal(t, "15.00", ledger.AverageSaleValue().StringFixed(2))
}

func TestLedger_Record_NoStatusValidation(t *testing.T) {
	cat := newTestCatalog(t, product("P001", "Book", "10.00", 100))
	ledger := NewLedger(cat, zerolog.Nop())

	// An open, never-completed sale is recorded as-is and counts
	// toward revenue.
	open := ledger.NewSale()
	_, err := open.AddItem("P001", 2)
	require.NoError(t, err)
	ledger.Record(open)

	cancelled := ledger.NewSale()
	require.NoError(t, cancelled.Cancel())
	ledger.Record(cancelled)

	assert.Equal(t, 2, ledger.Count())
	assert.Equal(t, "20.00", ledger.TotalRevenue().StringFixed(2))
}

func TestLedger_SalesOnDate(t *testing.T) {
	ledger := NewLedger(newTestCatalog(t), zerolog.Nop())

	today := ledger.NewSale()
	ledger.Record(today)

	yesterday := ledger.NewSale()
	yesterday.CreatedAt = yesterday.CreatedAt.AddDate(0, 0, -1)
	ledger.Record(yesterday)

	matches := ledger.SalesOnDate(time.Now())
	require.Len(t, matches, 1)
	assert.Equal(t, today.ID, matches[0].ID)

	assert.Empty(t, ledger.SalesOnDate(time.Now().AddDate(0, 0, 7)))
}

func TestLedger_AverageSaleValue_Fractional(t *testing.T) {
	cat := newTestCatalog(t, product("P001", "Pen", "1.00", 100))
	ledger := NewLedger(cat, zerolog.Nop())

	totals := []int{1, 2, 4}
	for _, n := range totals {
		sale := ledger.NewSale()
		_, err := sale.AddItem("P001", n)
		require.NoError(t, err)
		require.NoError(t, sale.Complete("Cash"))
		ledger.Record(sale)
	}

	// 7.00 / 3 sales
	want := decimal.NewFromInt(7).Div(decimal.NewFromInt(3))
	assert.True(t, ledger.AverageSaleValue().Equal(want),
		"average %s != %s", ledger.AverageSaleValue(), want)
}
