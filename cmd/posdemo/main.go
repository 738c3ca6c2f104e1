// Command posdemo walks through the core point-of-sale flow: it seeds a
// catalog, rings up a sale with an optional promo discount, prints the
// receipt, and reports ledger aggregates.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"mini-pos/internal/catalog"
	"mini-pos/internal/config"
	"mini-pos/internal/model"
	"mini-pos/internal/promo"
	"mini-pos/internal/sales"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting mini-pos demo")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize promo validator when enabled
	var validator promo.Validator
	if cfg.Promo.Enabled {
		loader := promo.NewFileLoader(logger)
		validator, err = promo.NewValidator(ctx, &promo.ValidatorConfig{
			FilePaths: cfg.Promo.FilePaths,
		}, loader, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize promo validator: %w", err)
		}
	} else {
		logger.Info().Msg("promo codes disabled, applying flat member discount")
	}

	// Build and seed the catalog
	cat := catalog.New(logger)
	seed := []*model.Product{
		model.NewProduct("P001", "Milk", decimal.RequireFromString("3.99"), 50, "Dairy"),
		model.NewProduct("P002", "Bread", decimal.RequireFromString("2.49"), 100, "Bakery"),
		model.NewProduct("P003", "Apple", decimal.RequireFromString("0.99"), 200, "Fruits"),
		model.NewProduct("P004", "Chicken", decimal.RequireFromString("8.99"), 30, "Meat"),
		model.NewProduct("P005", "Rice", decimal.RequireFromString("12.99"), 25, "Grains"),
	}
	for _, p := range seed {
		if err := cat.Add(p); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	logger.Info().
		Int("product_count", cat.Count()).
		Str("inventory_value", cat.TotalValue().StringFixed(2)).
		Msg("catalog seeded")

	for _, p := range cat.FindLowStock(cfg.Catalog.LowStockThreshold) {
		logger.Warn().
			Str("product_id", p.ID).
			Str("name", p.Name).
			Int("quantity", p.Quantity).
			Msg("low stock")
	}

	// Ring up a sale
	ledger := sales.NewLedger(cat, logger)
	sale := ledger.NewSale()

	for _, line := range []struct {
		productID string
		quantity  int
	}{
		{"P001", 2},
		{"P002", 1},
		{"P003", 5},
	} {
		if _, err := sale.AddItem(line.productID, line.quantity); err != nil {
			return fmt.Errorf("failed to add %s: %w", line.productID, err)
		}
	}

	// Discount: a validated promo code when available, otherwise a
	// flat 10% member discount.
	percent := decimal.NewFromInt(10)
	if validator != nil {
		code := os.Getenv("PROMO_CODE")
		p, err := validator.Validate(ctx, code)
		switch {
		case err == nil:
			percent = p
		case errors.Is(err, model.ErrInvalidPromoCode), errors.Is(err, model.ErrInvalidPromoLength):
			logger.Warn().Str("code", code).Err(err).Msg("promo code rejected, no discount applied")
			percent = decimal.Zero
		default:
			return fmt.Errorf("promo validation failed: %w", err)
		}
	}

	if percent.IsPositive() {
		amount, err := sale.ApplyDiscount(percent)
		if err != nil {
			return fmt.Errorf("failed to apply discount: %w", err)
		}
		logger.Info().
			Str("percent", percent.String()).
			Str("amount", amount.StringFixed(2)).
			Msg("discount applied")
	}

	if err := sale.Complete("Credit Card"); err != nil {
		return fmt.Errorf("failed to complete sale: %w", err)
	}
	ledger.Record(sale)

	fmt.Print(sale.Receipt())

	reportAggregates(ledger, logger)
	return nil
}

func reportAggregates(ledger *sales.Ledger, logger zerolog.Logger) {
	logger.Info().
		Int("sales_count", ledger.Count()).
		Str("total_revenue", ledger.TotalRevenue().StringFixed(2)).
		Str("average_sale_value", ledger.AverageSaleValue().StringFixed(2)).
		Msg("ledger aggregates")
}
