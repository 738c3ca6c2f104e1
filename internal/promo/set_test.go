package promo

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapCodeSet(t *testing.T) {
	set := NewMapCodeSet(4).(*mapCodeSet)
	assert.Equal(t, 0, set.Size())

	set.Add("SAVE10", decimal.NewFromInt(10))
	set.Add("HALFOFF", decimal.NewFromInt(50))
	assert.Equal(t, 2, set.Size())

	percent, ok := set.Lookup("SAVE10")
	require.True(t, ok)
	assert.Equal(t, "10", percent.String())

	_, ok = set.Lookup("save10")
	assert.False(t, ok, "lookups are case-sensitive")

	// Re-adding a code overwrites its percentage.
	set.Add("SAVE10", decimal.NewFromInt(15))
	assert.Equal(t, 2, set.Size())
	percent, _ = set.Lookup("SAVE10")
	assert.Equal(t, "15", percent.String())
}
