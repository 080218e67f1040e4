package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/go-memdb"
	"github.com/rs/zerolog/log"
)

//go:embed data/products.json
var productsJSON []byte

const tableProducts = "products"

// row is the shape stored in memdb; CategoryName is lifted out of the
// nested Category so it can be indexed.
type row struct {
	ID           string
	CategoryName string
	Product      Product
}

var schema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		tableProducts: {
			Name: tableProducts,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "ID"},
				},
				"category": {
					Name:    "category",
					Indexer: &memdb.StringFieldIndex{Field: "CategoryName", Lowercase: true},
				},
			},
		},
	},
}

// Catalog is the static product dataset with indexed lookups. It is
// read-only after construction.
type Catalog struct {
	db       *memdb.MemDB
	products []Product
}

// New builds the catalog from the bundled dataset.
func New() (*Catalog, error) {
	var products []Product
	if err := json.Unmarshal(productsJSON, &products); err != nil {
		return nil, fmt.Errorf("catalog: failed to parse bundled dataset: %w", err)
	}
	return NewFrom(products)
}

// NewFrom builds a catalog over the given products.
func NewFrom(products []Product) (*Catalog, error) {
	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to create index: %w", err)
	}

	txn := db.Txn(true)
	for _, p := range products {
		if err := txn.Insert(tableProducts, &row{ID: p.ID, CategoryName: p.Category.Name, Product: p}); err != nil {
			txn.Abort()
			return nil, fmt.Errorf("catalog: failed to index product %q: %w", p.ID, err)
		}
	}
	txn.Commit()

	log.Info().Int("products", len(products)).Msg("Catalog loaded")

	return &Catalog{db: db, products: products}, nil
}

// All returns every product in dataset order.
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByID looks up a single product.
func (c *Catalog) ByID(id string) (Product, bool) {
	txn := c.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableProducts, "id", id)
	if err != nil || raw == nil {
		return Product{}, false
	}
	return raw.(*row).Product, true
}

// ByCategory returns all products in the named category. The match is
// case-insensitive, as in the category filter of the original storefront.
func (c *Catalog) ByCategory(name string) []Product {
	txn := c.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableProducts, "category", name)
	if err != nil {
		return nil
	}

	var out []Product
	for raw := it.Next(); raw != nil; raw = it.Next() {
		out = append(out, raw.(*row).Product)
	}
	return out
}

// Categories returns the distinct category names in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.products {
		if !seen[p.Category.Name] {
			seen[p.Category.Name] = true
			out = append(out, p.Category.Name)
		}
	}
	return out
}

// Search returns products whose name contains the query, case-insensitively.
func (c *Catalog) Search(query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.All()
	}
	var out []Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}
