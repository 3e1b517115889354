package seed

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"asset-tracker/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for seed files on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based seed loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads a seed CSV file. Files ending in ".gz" are decompressed first.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.ProductInput, error) {
	l.logger.Info().Str("file", filePath).Msg("loading seed file")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open seed file")
		return nil, fmt.Errorf("failed to open seed file %s: %w", filePath, err)
	}
	defer file.Close()

	inputs, err := decode(file, filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read seed file")
		return nil, err
	}

	l.logger.Info().
		Str("file", filePath).
		Int("products_loaded", len(inputs)).
		Msg("seed file loaded successfully")

	return inputs, nil
}

// decode parses r as seed CSV, gunzipping it when name ends in ".gz".
func decode(r io.Reader, name string) ([]model.ProductInput, error) {
	if strings.HasSuffix(name, ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	inputs, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("error reading seed file %s: %w", name, err)
	}
	return inputs, nil
}
