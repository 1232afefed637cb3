// Package catalog holds the storefront's read-only product list and its filters.
package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AllCategories is the pseudo-category that disables category filtering.
const AllCategories = "All"

// ProductOption is a purchasable size or weight variant of a product.
type ProductOption struct {
	Weight string          `json:"weight"`
	Price  decimal.Decimal `json:"price"`
}

// Product is one catalog entry. Options is never empty once the product is part of a Catalog.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Options     []ProductOption `json:"options"`
	Description string          `json:"description,omitempty"`
}

// Option returns the option labelled weight.
func (p Product) Option(weight string) (ProductOption, bool) {
	for _, opt := range p.Options {
		if opt.Weight == weight {
			return opt, true
		}
	}
	return ProductOption{}, false
}

// DefaultOption returns the option a shopper sees selected first.
func (p Product) DefaultOption() (ProductOption, bool) {
	if len(p.Options) == 0 {
		return ProductOption{}, false
	}
	return p.Options[0], true
}

func (p Product) clone() Product {
	out := p
	out.Options = append([]ProductOption(nil), p.Options...)
	return out
}

// Catalog is immutable after construction and safe for concurrent reads.
type Catalog struct {
	categories []string
	products   []Product
	names      []string
	byID       map[string]int
}

// New validates products against categories and builds a Catalog.
// Every violation found is reported in the returned error.
func New(categories []string, products []Product) (*Catalog, error) {
	if err := validate(categories, products); err != nil {
		return nil, err
	}

	lower := cases.Lower(language.Und)
	c := &Catalog{
		categories: append([]string(nil), categories...),
		products:   make([]Product, 0, len(products)),
		names:      make([]string, 0, len(products)),
		byID:       make(map[string]int, len(products)),
	}
	for i, p := range products {
		c.products = append(c.products, p.clone())
		c.names = append(c.names, lower.String(p.Name))
		c.byID[p.ID] = i
	}
	return c, nil
}

func validate(categories []string, products []Product) error {
	var errs error

	known := make(map[string]struct{}, len(categories))
	for _, cat := range categories {
		switch {
		case strings.TrimSpace(cat) == "":
			errs = multierr.Append(errs, fmt.Errorf("category names must not be blank"))
		case cat == AllCategories:
			errs = multierr.Append(errs, fmt.Errorf("category %q is reserved", AllCategories))
		}
		if _, dup := known[cat]; dup {
			errs = multierr.Append(errs, fmt.Errorf("category %q listed twice", cat))
		}
		known[cat] = struct{}{}
	}

	seen := make(map[string]struct{}, len(products))
	for i, p := range products {
		ref := p.ID
		if ref == "" {
			ref = fmt.Sprintf("#%d", i)
			errs = multierr.Append(errs, fmt.Errorf("product %s: id is required", ref))
		} else if _, dup := seen[p.ID]; dup {
			errs = multierr.Append(errs, fmt.Errorf("product %s: duplicate id", ref))
		}
		seen[p.ID] = struct{}{}

		if strings.TrimSpace(p.Name) == "" {
			errs = multierr.Append(errs, fmt.Errorf("product %s: name is required", ref))
		}
		if _, ok := known[p.Category]; !ok {
			errs = multierr.Append(errs, fmt.Errorf("product %s: unknown category %q", ref, p.Category))
		}
		if len(p.Options) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("product %s: at least one option is required", ref))
		}

		weights := make(map[string]struct{}, len(p.Options))
		for _, opt := range p.Options {
			if strings.TrimSpace(opt.Weight) == "" {
				errs = multierr.Append(errs, fmt.Errorf("product %s: option label is required", ref))
			}
			if _, dup := weights[opt.Weight]; dup {
				errs = multierr.Append(errs, fmt.Errorf("product %s: option %q listed twice", ref, opt.Weight))
			}
			weights[opt.Weight] = struct{}{}
			if opt.Price.IsNegative() {
				errs = multierr.Append(errs, fmt.Errorf("product %s: option %q has negative price", ref, opt.Weight))
			}
		}
	}

	return errs
}

// Filter returns the products in category (or every category for AllCategories) whose
// name contains query, ignoring case. Definition order is preserved and an empty query
// matches everything. Unknown categories yield an empty result.
func (c *Catalog) Filter(category, query string) []Product {
	needle := cases.Lower(language.Und).String(query)
	out := make([]Product, 0, len(c.products))
	for i, p := range c.products {
		if category != AllCategories && p.Category != category {
			continue
		}
		if !strings.Contains(c.names[i], needle) {
			continue
		}
		out = append(out, p.clone())
	}
	return out
}

// All returns every product in definition order.
func (c *Catalog) All() []Product {
	return c.Filter(AllCategories, "")
}

// Categories returns the known categories in definition order, without AllCategories.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// HasCategory reports whether category is AllCategories or a known category.
func (c *Catalog) HasCategory(category string) bool {
	if category == AllCategories {
		return true
	}
	for _, known := range c.categories {
		if known == category {
			return true
		}
	}
	return false
}

// Product looks a product up by id.
func (c *Catalog) Product(id string) (Product, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[idx].clone(), true
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}
