package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type fileCatalog struct {
	Categories []string      `yaml:"categories"`
	Products   []fileProduct `yaml:"products"`
}

type fileProduct struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Category    string       `yaml:"category"`
	Image       string       `yaml:"image"`
	Description string       `yaml:"description"`
	Options     []fileOption `yaml:"options"`
}

type fileOption struct {
	Weight string `yaml:"weight"`
	Price  string `yaml:"price"`
}

// Default returns the catalog shipped with the binary.
func Default() (*Catalog, error) {
	cat, err := Parse(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return cat, nil
}

// Load reads and validates a catalog file. An empty path selects the embedded catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	cat, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes YAML catalog data and validates it.
func Parse(raw []byte) (*Catalog, error) {
	var file fileCatalog
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	products := make([]Product, 0, len(file.Products))
	for _, fp := range file.Products {
		options := make([]ProductOption, 0, len(fp.Options))
		for _, fo := range fp.Options {
			price, err := decimal.NewFromString(fo.Price)
			if err != nil {
				return nil, fmt.Errorf("product %s option %q: invalid price %q: %w", fp.ID, fo.Weight, fo.Price, err)
			}
			options = append(options, ProductOption{Weight: fo.Weight, Price: price})
		}
		products = append(products, Product{
			ID:          fp.ID,
			Name:        fp.Name,
			Category:    fp.Category,
			Image:       fp.Image,
			Description: fp.Description,
			Options:     options,
		})
	}

	return New(file.Categories, products)
}
