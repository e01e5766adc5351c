// Package catalog holds the static product catalog the routine builder
// UI browses. The catalog ships embedded in the binary; nothing here is
// fetched or persisted at runtime.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed products.json
var productsJSON []byte

// Product is one catalog entry.
type Product struct {
	ID          int    `json:"id"`
	Brand       string `json:"brand"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// Catalog is an immutable, in-memory product catalog.
type Catalog struct {
	products []Product
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	var data struct {
		Products []Product `json:"products"`
	}
	if err := json.Unmarshal(productsJSON, &data); err != nil {
		return nil, fmt.Errorf("failed to parse product catalog: %w", err)
	}
	if len(data.Products) == 0 {
		return nil, fmt.Errorf("product catalog is empty")
	}
	return &Catalog{products: data.Products}, nil
}

// All returns every product in catalog order.
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByID looks up a product by its identifier.
func (c *Catalog) ByID(id int) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Filter returns products matching the given category (exact) and search
// term (case-insensitive substring of name, brand, description, or
// category). Empty arguments match everything.
func (c *Catalog) Filter(category, term string) []Product {
	term = strings.ToLower(strings.TrimSpace(term))

	var out []Product
	for _, p := range c.products {
		if category != "" && p.Category != category {
			continue
		}
		if term != "" && !matchesTerm(p, term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesTerm(p Product, term string) bool {
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Brand), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Category), term)
}
