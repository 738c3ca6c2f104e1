package promo

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// fileLoader implements Loader for reading promo code files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based promo loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "promo-loader").Logger(),
	}
}

// Load reads a promo file and returns a CodeSet. Each line holds one
// CODE,PERCENT pair; blank lines are skipped and malformed lines are
// counted and dropped with a warning rather than failing the load.
func (l *fileLoader) Load(ctx context.Context, filePath string) (CodeSet, error) {
	l.logger.Info().Str("file", filePath).Msg("loading promo file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open promo file")
		return nil, fmt.Errorf("failed to open promo file %s: %w", filePath, err)
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(filePath, ".gz") {
		gzipReader, err := gzip.NewReader(file)
		if err != nil {
			l.logger.Error().Err(err).Str("file", filePath).Msg("failed to create gzip reader")
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", filePath, err)
		}
		defer gzipReader.Close()
		reader = gzipReader
	}

	set := NewMapCodeSet(1024).(*mapCodeSet)

	scanner := bufio.NewScanner(reader)
	lineCount := 0
	malformed := 0
	for scanner.Scan() {
		// Check context cancellation periodically
		if lineCount%10_000 == 0 {
			select {
			case <-ctx.Done():
				l.logger.Warn().Str("file", filePath).Msg("promo loading cancelled")
				return nil, ctx.Err()
			default:
			}
		}
		lineCount++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		code, percentField, found := strings.Cut(line, ",")
		if !found {
			malformed++
			continue
		}

		percent, err := decimal.NewFromString(strings.TrimSpace(percentField))
		if err != nil {
			malformed++
			continue
		}

		set.Add(strings.TrimSpace(code), percent)
	}

	if err := scanner.Err(); err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("error reading promo file")
		return nil, fmt.Errorf("error reading promo file %s: %w", filePath, err)
	}

	if malformed > 0 {
		l.logger.Warn().
			Str("file", filePath).
			Int("malformed_lines", malformed).
			Msg("skipped malformed promo lines")
	}

	l.logger.Info().
		Str("file", filePath).
		Int("codes_loaded", set.Size()).
		Msg("promo file loaded successfully")

	return set, nil
}
