package catalog

import (
	"fmt"
	"math/rand"
	"testing"

	"mini-pos/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(id, name, price string, quantity int, category string) *model.Product {
	return model.NewProduct(id, name, decimal.RequireFromString(price), quantity, category)
}

func TestCatalog_Add(t *testing.T) {
	cat := New(zerolog.Nop())

	require.NoError(t, cat.Add(newTestProduct("P001", "Milk", "3.99", 50, "Dairy")))
	require.NoError(t, cat.Add(newTestProduct("P002", "Bread", "2.49", 100, "Bakery")))
	assert.Equal(t, 2, cat.Count())

	// Re-adding an existing key fails and leaves the catalog unchanged.
	err := cat.Add(newTestProduct("P001", "Other Milk", "1.00", 5, "Dairy"))
	assert.ErrorIs(t, err, model.ErrDuplicateProduct)
	assert.Equal(t, 2, cat.Count())

	p, ok := cat.Get("P001")
	require.True(t, ok)
	assert.Equal(t, "Milk", p.Name)
}

func TestCatalog_Add_DefaultCategory(t *testing.T) {
	cat := New(zerolog.Nop())

	require.NoError(t, cat.Add(newTestProduct("P001", "Salt", "0.99", 10, "")))

	p, ok := cat.Get("P001")
	require.True(t, ok)
	assert.Equal(t, "General", p.Category)
}

func TestCatalog_Get(t *testing.T) {
	cat := New(zerolog.Nop())
	require.NoError(t, cat.Add(newTestProduct("P001", "Milk", "3.99", 50, "Dairy")))

	p, ok := cat.Get("P001")
	assert.True(t, ok)
	assert.Equal(t, "P001", p.ID)

	// A miss is not an error.
	p, ok = cat.Get("P999")
	assert.False(t, ok)
	assert.Nil(t, p)
}

func TestCatalog_Remove(t *testing.T) {
	cat := New(zerolog.Nop())
	require.NoError(t, cat.Add(newTestProduct("P001", "Milk", "3.99", 50, "Dairy")))

	assert.True(t, cat.Remove("P001"))
	assert.False(t, cat.Remove("P001"))
	assert.Equal(t, 0, cat.Count())
	assert.Empty(t, cat.ListAll())
}

func TestCatalog_AdjustStock(t *testing.T) {
	cat := New(zerolog.Nop())
	require.NoError(t, cat.Add(newTestProduct("P001", "Milk", "3.99", 50, "Dairy")))

	qty, ok := cat.AdjustStock("P001", 10)
	require.True(t, ok)
	assert.Equal(t, 60, qty)

	qty, ok = cat.AdjustStock("P001", -25)
	require.True(t, ok)
	assert.Equal(t, 35, qty)

	// No floor check: quantity may go negative when called directly.
	qty, ok = cat.AdjustStock("P001", -100)
	require.True(t, ok)
	assert.Equal(t, -65, qty)

	_, ok = cat.AdjustStock("P999", 1)
	assert.False(t, ok)
}

func TestCatalog_AdjustStock_Additivity(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		d1, d2 int
	}{
		{name: "Two positive deltas", start: 10, d1: 5, d2: 7},
		{name: "Mixed deltas", start: 10, d1: -3, d2: 8},
		{name: "Two negative deltas", start: 10, d1: -4, d2: -9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split := New(zerolog.Nop())
			require.NoError(t, split.Add(newTestProduct("P001", "Milk", "3.99", tt.start, "Dairy")))
			_, ok := split.AdjustStock("P001", tt.d1)
			require.True(t, ok)
			splitQty, ok := split.AdjustStock("P001", tt.d2)
			require.True(t, ok)

			combined := New(zerolog.Nop())
			require.NoError(t, combined.Add(newTestProduct("P001", "Milk", "3.99", tt.start, "Dairy")))
			combinedQty, ok := combined.AdjustStock("P001", tt.d1+tt.d2)
			require.True(t, ok)

			assert.Equal(t, combinedQty, splitQty)
		})
	}
}

func TestCatalog_ListAll_InsertionOrder(t *testing.T) {
	cat := New(zerolog.Nop())
	ids := []string{"P003", "P001", "P002"}
	for _, id := range ids {
		require.NoError(t, cat.Add(newTestProduct(id, "Item "+id, "1.00", 1, "")))
	}

	listed := cat.ListAll()
	require.Len(t, listed, len(ids))
	for i, p := range listed {
		assert.Equal(t, ids[i], p.ID)
	}
}

func TestCatalog_FindByCategory(t *testing.T) {
	cat := New(zerolog.Nop())
	require.NoError(t, cat.Add(newTestProduct("P001", "Milk", "3.99", 50, "Dairy")))
	require.NoError(t, cat.Add(newTestProduct("P002", "Cheese", "5.49", 20, "Dairy")))
	require.NoError(t, cat.Add(newTestProduct("P003", "Bread", "2.49", 100, "Bakery")))

	dairy := cat.FindByCategory("Dairy")
	require.Len(t, dairy, 2)
	assert.Equal(t, "P001", dairy[0].ID)
	assert.Equal(t, "P002", dairy[1].ID)

	// Exact, case-sensitive match only.
	assert.Empty(t, cat.FindByCategory("dairy"))
	assert.Empty(t, cat.FindByCategory("Dai"))
}

func TestCatalog_FindLowStock(t *testing.T) {
	cat := New(zerolog.Nop())
	require.NoError(t, cat.Add(newTestProduct("P001", "Milk", "3.99", 9, "Dairy")))
	require.NoError(t, cat.Add(newTestProduct("P002", "Bread", "2.49", 10, "Bakery")))
	require.NoError(t, cat.Add(newTestProduct("P003", "Apple", "0.99", 11, "Fruits")))

	low := cat.FindLowStock(10)
	require.Len(t, low, 1)
	// Boundary: quantity exactly equal to the threshold is excluded.
	assert.Equal(t, "P001", low[0].ID)
}

func TestCatalog_TotalValue(t *testing.T) {
	cat := New(zerolog.Nop())
	assert.True(t, cat.TotalValue().IsZero())

	require.NoError(t, cat.Add(newTestProduct("P001", "Milk", "3.99", 50, "Dairy")))
	require.NoError(t, cat.Add(newTestProduct("P002", "Bread", "2.49", 100, "Bakery")))

	// 3.99*50 + 2.49*100 = 199.50 + 249.00
	assert.Equal(t, "448.50", cat.TotalValue().StringFixed(2))
}

func TestCatalog_TotalValue_Recomputed(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cat := New(zerolog.Nop())

	expected := decimal.Zero
	for i := 0; i < 50; i++ {
		price := decimal.NewFromInt(int64(rng.Intn(10_000))).Div(decimal.NewFromInt(100))
		quantity := rng.Intn(500)
		id := fmt.Sprintf("P%03d", i)
		require.NoError(t, cat.Add(model.NewProduct(id, "Item "+id, price, quantity, "")))
		expected = expected.Add(price.Mul(decimal.NewFromInt(int64(quantity))))
	}

	assert.True(t, cat.TotalValue().Equal(expected),
		"total %s != recomputed %s", cat.TotalValue(), expected)
}
