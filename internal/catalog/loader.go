package catalog

import (
	"context"
	"fmt"
	"os"

	"sweetbox/internal/model"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Loader fetches the catalogue document from its external source.
type Loader interface {
	// Load reads the catalogue document stored under path.
	Load(ctx context.Context, path string) ([]model.Product, error)
}

// Decode parses a catalogue document. Both a top-level `products` list and a
// bare list are accepted. JSON documents are valid YAML, so one decoder
// serves both formats. Field-level validation is the source's responsibility.
func Decode(data []byte) ([]model.Product, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidCatalog, err)
	}
	if len(node.Content) == 0 {
		return []model.Product{}, nil
	}

	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var products []model.Product
		if err := root.Decode(&products); err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrInvalidCatalog, err)
		}
		return products, nil
	case yaml.MappingNode:
		var doc model.Catalog
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrInvalidCatalog, err)
		}
		if doc.Products == nil {
			doc.Products = []model.Product{}
		}
		return doc.Products, nil
	default:
		return nil, fmt.Errorf("%w: unexpected document shape", model.ErrInvalidCatalog)
	}
}

// fileLoader implements Loader for catalogue files on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalogue loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a YAML or JSON catalogue file.
func (l *fileLoader) Load(_ context.Context, filePath string) ([]model.Product, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read catalog file")
		return nil, fmt.Errorf("failed to read catalog file %s: %w", filePath, err)
	}

	products, err := Decode(data)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to decode catalog file")
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("products_loaded", len(products)).
		Msg("catalog file loaded")

	return products, nil
}
