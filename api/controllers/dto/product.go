package dto

import "github.com/pradom/storefront/internal/catalog"

type ProductOption struct {
	Weight string `json:"weight"`
	Price  string `json:"price"`
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Description string          `json:"description,omitempty"`
	Options     []ProductOption `json:"options"`
}

func NewProduct(p catalog.Product) Product {
	options := make([]ProductOption, 0, len(p.Options))
	for _, o := range p.Options {
		options = append(options, ProductOption{Weight: o.Weight, Price: Money(o.Price)})
	}
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Image:       p.Image,
		Description: p.Description,
		Options:     options,
	}
}

func NewProducts(products []catalog.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, NewProduct(p))
	}
	return out
}
