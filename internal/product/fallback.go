package product

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/osse101/CarbonScan_Go/internal/domain"
	"github.com/osse101/CarbonScan_Go/internal/validation"
)

//go:embed catalog.schema.json
var catalogSchema []byte

var (
	catalogValidatorOnce sync.Once
	catalogValidator     *validation.SchemaValidator
	catalogValidatorErr  error
)

func catalogSchemaValidator() (*validation.SchemaValidator, error) {
	catalogValidatorOnce.Do(func() {
		catalogValidator = validation.NewSchemaValidator()
		catalogValidatorErr = catalogValidator.Register(catalogSchemaName, catalogSchema)
	})
	return catalogValidator, catalogValidatorErr
}

// CatalogEntry is one product in the fallback catalog file
type CatalogEntry struct {
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Categories  string `json:"categories"`
	Ingredients string `json:"ingredients"`
}

// Catalog is a static barcode table used when the remote API cannot answer
type Catalog struct {
	products map[string]CatalogEntry
}

// NewCatalog creates a catalog from an in-memory table. Entries with invalid barcodes are dropped.
func NewCatalog(entries map[string]CatalogEntry) *Catalog {
	products := make(map[string]CatalogEntry, len(entries))
	for code, entry := range entries {
		normalized := NormalizeBarcode(code)
		if !IsValidBarcode(normalized) || entry.Name == "" {
			slog.Warn(LogMsgFallbackSkipped, "barcode", code)
			continue
		}
		products[normalized] = entry
	}
	return &Catalog{products: products}
}

// LoadCatalog reads a JSON object of barcode to CatalogEntry. The file must
// match catalog.schema.json; a mistyped entry rejects the whole file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fallback catalog: %w", err)
	}

	v, err := catalogSchemaValidator()
	if err != nil {
		return nil, err
	}
	if err := v.Validate(catalogSchemaName, data); err != nil {
		return nil, fmt.Errorf("invalid fallback catalog %s: %w", path, err)
	}

	var entries map[string]CatalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse fallback catalog: %w", err)
	}

	c := NewCatalog(entries)
	slog.Info(LogMsgFallbackLoaded, "path", path, "products", c.Len())
	return c, nil
}

// Lookup returns the catalog entry for barcode
func (c *Catalog) Lookup(_ context.Context, barcode string) (*domain.Product, error) {
	entry, ok := c.products[barcode]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, barcode)
	}
	brand := entry.Brand
	if brand == "" {
		brand = BrandUnknown
	}
	return &domain.Product{
		Barcode:     barcode,
		Name:        entry.Name,
		Brand:       brand,
		Categories:  entry.Categories,
		Ingredients: entry.Ingredients,
		Source:      SourceFallback,
	}, nil
}

// Len returns the number of products in the catalog
func (c *Catalog) Len() int {
	return len(c.products)
}
