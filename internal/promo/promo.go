// Package promo validates promotional discount codes loaded from local
// code files. A code maps to the discount percentage it grants; the
// caller feeds that percentage into the sale's discount operation.
package promo

import (
	"context"

	"github.com/shopspring/decimal"
)

// Validator defines the interface for promo code validation.
type Validator interface {
	// Validate checks a promo code and returns the discount
	// percentage it grants. A valid code must:
	// - Be between 4 and 12 characters in length
	// - Appear in at least one configured promo file
	Validate(ctx context.Context, code string) (decimal.Decimal, error)
}

// CodeSet maps promo codes to discount percentages for fast lookup.
type CodeSet interface {
	// Lookup returns the percentage for a code and whether it exists.
	Lookup(code string) (decimal.Decimal, bool)

	// Size returns the number of codes in the set.
	Size() int
}

// Loader defines the interface for loading promo code files.
type Loader interface {
	// Load reads a promo file and returns a CodeSet. Files ending in
	// .gz are decompressed transparently.
	Load(ctx context.Context, filePath string) (CodeSet, error)
}
