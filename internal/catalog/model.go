package catalog

// Category groups products by name only; the dataset carries no other
// category fields.
type Category struct {
	Name string `json:"name"`
}

// Product is a read-only catalog entry. The JSON field names match the
// bundled dataset and are stable.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Images      []string `json:"images"`
	Category    Category `json:"category"`
	Rate        float64  `json:"rate"`
	Review      int      `json:"review"`
	Description string   `json:"description"`
}
