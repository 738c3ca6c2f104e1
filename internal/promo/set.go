package promo

import "github.com/shopspring/decimal"

// mapCodeSet implements CodeSet using a map for O(1) lookups.
type mapCodeSet struct {
	codes map[string]decimal.Decimal
}

// NewMapCodeSet creates a new map-based code set.
func NewMapCodeSet(capacity int) CodeSet {
	return &mapCodeSet{
		codes: make(map[string]decimal.Decimal, capacity),
	}
}

// Lookup returns the discount percentage for a code, if present.
func (s *mapCodeSet) Lookup(code string) (decimal.Decimal, bool) {
	percent, exists := s.codes[code]
	return percent, exists
}

// Size returns the number of codes in the set.
func (s *mapCodeSet) Size() int {
	return len(s.codes)
}

// Add adds a code and its discount percentage to the set.
func (s *mapCodeSet) Add(code string, percent decimal.Decimal) {
	s.codes[code] = percent
}
