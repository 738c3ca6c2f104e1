package promo

import (
	"context"
	"fmt"
	"sync"

	"mini-pos/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	minCodeLength = 4
	maxCodeLength = 12
)

// validator implements Validator over code sets loaded at construction.
type validator struct {
	codeSets []CodeSet
	logger   zerolog.Logger
	// No mutex needed - code sets are read-only after initialization
}

// ValidatorConfig holds configuration for the promo validator.
type ValidatorConfig struct {
	// FilePaths is the list of promo file paths to load.
	FilePaths []string
}

// DefaultValidatorConfig returns the default validator configuration.
func DefaultValidatorConfig() *ValidatorConfig {
	return &ValidatorConfig{
		FilePaths: []string{
			"data/promos/promocodes.csv",
		},
	}
}

// NewValidator creates a new promo validator. All configured files are
// loaded concurrently at initialization time; the validator serves
// lookups from memory afterwards.
func NewValidator(ctx context.Context, config *ValidatorConfig, loader Loader, logger zerolog.Logger) (Validator, error) {
	if config == nil {
		config = DefaultValidatorConfig()
	}

	logger = logger.With().Str("component", "promo-validator").Logger()

	logger.Info().
		Int("file_count", len(config.FilePaths)).
		Msg("initialising promo validator")

	v := &validator{
		codeSets: make([]CodeSet, 0, len(config.FilePaths)),
		logger:   logger,
	}

	type loadResult struct {
		index int
		set   CodeSet
		err   error
	}

	resultChan := make(chan loadResult, len(config.FilePaths))
	var wg sync.WaitGroup

	for i, filePath := range config.FilePaths {
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()

			set, err := loader.Load(ctx, path)
			resultChan <- loadResult{
				index: index,
				set:   set,
				err:   err,
			}
		}(i, filePath)
	}

	wg.Wait()
	close(resultChan)

	// Collect results in order
	results := make([]loadResult, len(config.FilePaths))
	for result := range resultChan {
		results[result.index] = result
	}

	for i, result := range results {
		if result.err != nil {
			logger.Error().
				Err(result.err).
				Str("file", config.FilePaths[i]).
				Msg("failed to load promo file")
			return nil, fmt.Errorf("failed to load promo file %s: %w", config.FilePaths[i], result.err)
		}
		v.codeSets = append(v.codeSets, result.set)
	}

	logger.Info().Int("set_count", len(v.codeSets)).Msg("promo validator ready")
	return v, nil
}

// Validate checks a promo code and returns the discount percentage it
// grants. When a code appears in several files, the first file wins.
func (v *validator) Validate(ctx context.Context, code string) (decimal.Decimal, error) {
	if len(code) < minCodeLength || len(code) > maxCodeLength {
		v.logger.Debug().Str("code", code).Int("length", len(code)).Msg("promo code length out of bounds")
		return decimal.Zero, model.ErrInvalidPromoLength
	}

	for _, set := range v.codeSets {
		if percent, ok := set.Lookup(code); ok {
			v.logger.Debug().
				Str("code", code).
				Str("percent", percent.String()).
				Msg("promo code validated")
			return percent, nil
		}
	}

	v.logger.Debug().Str("code", code).Msg("promo code not found")
	return decimal.Zero, model.ErrInvalidPromoCode
}
