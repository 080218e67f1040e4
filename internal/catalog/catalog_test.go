package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasiliy-maslov/storefront/internal/catalog"
)

func testProducts() []catalog.Product {
	return []catalog.Product{
		{ID: "p1", Name: "AMD Ryzen 5 5600X", Price: 8995, Stock: 12, Category: catalog.Category{Name: "Processor"}},
		{ID: "p2", Name: "Intel Core i5-12400F", Price: 7690, Stock: 9, Category: catalog.Category{Name: "Processor"}},
		{ID: "p3", Name: "MSI B550M PRO-VDH", Price: 5495, Stock: 8, Category: catalog.Category{Name: "Motherboard"}},
		{ID: "p4", Name: "Kingston NV2 1TB NVMe SSD", Price: 3250, Stock: 18, Category: catalog.Category{Name: "Storage"}},
	}
}

func TestCatalog_ByID(t *testing.T) {
	c, err := catalog.NewFrom(testProducts())
	require.NoError(t, err)

	p, ok := c.ByID("p3")
	assert.True(t, ok)
	assert.Equal(t, "MSI B550M PRO-VDH", p.Name)

	_, ok = c.ByID("missing")
	assert.False(t, ok)
}

func TestCatalog_ByCategory(t *testing.T) {
	c, err := catalog.NewFrom(testProducts())
	require.NoError(t, err)

	tests := []struct {
		name     string
		category string
		wantIDs  []string
	}{
		{name: "exact_case", category: "Processor", wantIDs: []string{"p1", "p2"}},
		{name: "case_insensitive", category: "processor", wantIDs: []string{"p1", "p2"}},
		{name: "single_match", category: "Storage", wantIDs: []string{"p4"}},
		{name: "unknown_category", category: "Peripherals", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []string
			for _, p := range c.ByCategory(tt.category) {
				ids = append(ids, p.ID)
			}
			assert.ElementsMatch(t, tt.wantIDs, ids)
		})
	}
}

func TestCatalog_Categories(t *testing.T) {
	c, err := catalog.NewFrom(testProducts())
	require.NoError(t, err)

	assert.Equal(t, []string{"Processor", "Motherboard", "Storage"}, c.Categories())
}

func TestCatalog_Search(t *testing.T) {
	c, err := catalog.NewFrom(testProducts())
	require.NoError(t, err)

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "substring", query: "ryzen", wantIDs: []string{"p1"}},
		{name: "case_insensitive", query: "KINGSTON", wantIDs: []string{"p4"}},
		{name: "no_match", query: "keyboard", wantIDs: nil},
		{name: "empty_returns_all", query: "", wantIDs: []string{"p1", "p2", "p3", "p4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []string
			for _, p := range c.Search(tt.query) {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCatalog_All_ReturnsCopyInDatasetOrder(t *testing.T) {
	products := testProducts()
	c, err := catalog.NewFrom(products)
	require.NoError(t, err)

	all := c.All()
	require.Len(t, all, len(products))
	for i := range products {
		assert.Equal(t, products[i].ID, all[i].ID)
	}

	all[0].Name = "mutated"
	fresh := c.All()
	assert.Equal(t, "AMD Ryzen 5 5600X", fresh[0].Name)
}

func TestCatalog_BundledDataset(t *testing.T) {
	c, err := catalog.New()
	require.NoError(t, err)

	all := c.All()
	assert.NotEmpty(t, all)

	for _, p := range all {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Category.Name)
		assert.Greater(t, p.Price, 0.0)
		assert.GreaterOrEqual(t, p.Stock, 0)
	}

	// The builder flow depends on these categories existing.
	assert.Subset(t, c.Categories(), []string{"Processor", "Motherboard", "Memory (RAM)", "Storage", "Power Supply", "Case"})
}
