package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasiliy-maslov/storefront/internal/builder"
	"github.com/vasiliy-maslov/storefront/internal/cart"
	"github.com/vasiliy-maslov/storefront/internal/catalog"
)

func builderCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.NewFrom([]catalog.Product{
		{ID: "cpu-am4", Name: "AMD Ryzen 5 5600X", Description: "AM4 socket", Stock: 5, Category: catalog.Category{Name: "Processor"}},
		{ID: "cpu-am5", Name: "AMD Ryzen 7 7700X", Description: "AM5 socket", Stock: 5, Category: catalog.Category{Name: "Processor"}},
		{ID: "mobo-am4", Name: "MSI B550M", Description: "Micro-ATX, AM4 socket, DDR4", Stock: 5, Category: catalog.Category{Name: "Motherboard"}},
		{ID: "ram-ddr4", Name: "FURY Beast DDR4", Description: "DDR4 memory", Stock: 5, Category: catalog.Category{Name: "Memory (RAM)"}},
		{ID: "ssd", Name: "NV2 1TB", Description: "NVMe SSD", Stock: 5, Category: catalog.Category{Name: "Storage"}},
		{ID: "psu", Name: "RM650", Description: "650W power supply", Stock: 5, Category: catalog.Category{Name: "Power Supply"}},
		{ID: "case", Name: "Tower", Description: "Micro-ATX case", Stock: 5, Category: catalog.Category{Name: "Case"}},
	})
	require.NoError(t, err)
	return c
}

func newBuilderRouter(t *testing.T) (*chi.Mux, *cart.Store) {
	t.Helper()
	cartStore := cart.NewStore()
	h := NewBuilderHandler(cartStore, builderCatalog(t))

	r := chi.NewRouter()
	r.Get("/builder/slots", h.ListSlots)
	r.Post("/builder/check", h.Check)
	r.Post("/builder/add-to-cart", h.AddToCart)

	return r, cartStore
}

const completeBuildBody = `{
	"slots": {
		"processor": "cpu-am4",
		"motherboard": "mobo-am4",
		"memory": "ram-ddr4",
		"storage": "ssd",
		"psu": "psu",
		"case": "case"
	}
}`

func TestBuilderHandler_ListSlots(t *testing.T) {
	r, _ := newBuilderRouter(t)

	w := do(t, r, http.MethodGet, "/builder/slots", "")
	require.Equal(t, http.StatusOK, w.Code)

	var slots []builder.SlotSpec
	require.NoError(t, json.NewDecoder(w.Body).Decode(&slots))
	assert.Len(t, slots, len(builder.Slots))
}

func TestBuilderHandler_Check(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		wantCompatible bool
		wantState      string
	}{
		{
			name:           "compatible",
			body:           completeBuildBody,
			expectedStatus: http.StatusOK,
			wantCompatible: true,
			wantState:      "compatible",
		},
		{
			name:           "socket_mismatch",
			body:           `{"slots": {"processor": "cpu-am5", "motherboard": "mobo-am4", "memory": "ram-ddr4", "storage": "ssd", "psu": "psu", "case": "case"}}`,
			expectedStatus: http.StatusOK,
			wantCompatible: false,
			wantState:      "issues",
		},
		{
			name:           "incomplete",
			body:           `{"slots": {"processor": "cpu-am4"}}`,
			expectedStatus: http.StatusOK,
			wantCompatible: false,
			wantState:      "incomplete",
		},
		{
			name:           "unknown_product",
			body:           `{"slots": {"processor": "missing"}}`,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid_json",
			body:           `{invalid}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newBuilderRouter(t)

			w := do(t, r, http.MethodPost, "/builder/check", tt.body)
			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var result builder.Result
				require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
				assert.Equal(t, tt.wantCompatible, result.Compatible)
				assert.Equal(t, tt.wantState, result.Status)
			}
		})
	}
}

func TestBuilderHandler_AddToCart(t *testing.T) {
	t.Run("compatible_build", func(t *testing.T) {
		r, cartStore := newBuilderRouter(t)

		w := do(t, r, http.MethodPost, "/builder/add-to-cart", completeBuildBody)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 6, cartStore.ItemCount())
	})

	t.Run("incompatible_build", func(t *testing.T) {
		r, cartStore := newBuilderRouter(t)

		body := `{"slots": {"processor": "cpu-am5", "motherboard": "mobo-am4", "memory": "ram-ddr4", "storage": "ssd", "psu": "psu", "case": "case"}}`
		w := do(t, r, http.MethodPost, "/builder/add-to-cart", body)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, cartStore.ItemCount())
	})
}
