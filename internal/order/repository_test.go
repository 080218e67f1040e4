package order_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasiliy-maslov/storefront/internal/order"
	"github.com/vasiliy-maslov/storefront/internal/storage"
)

func testOrders() []order.Order {
	return []order.Order{
		{
			ID: "order_0198f7a2-4f6e-7cc3-a6aa-111111111111",
			Items: []order.Item{
				{ProductID: "cpu-r5-5600x", Name: "AMD Ryzen 5 5600X", Price: 8995, Image: "products/cpu-r5-5600x-1.png", Quantity: 1},
				{ProductID: "ram-fury-16-ddr4", Name: "Kingston FURY Beast 16GB DDR4-3200", Price: 2150, Quantity: 2},
			},
			ShippingAddress: order.ShippingAddress{FullName: "Juan Dela Cruz", Address: "123 Mabini St", City: "Quezon City", Phone: "09170000000"},
			PaymentMethod:   order.PaymentCOD,
			Subtotal:        13295,
			ShippingFee:     50,
			Total:           13345,
			Status:          order.StatusToPay,
			OrderDate:       time.Date(2025, 8, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:              "order_0198f7a2-4f6e-7cc3-a6aa-222222222222",
			Items:           []order.Item{{ProductID: "gpu-rtx4060", Name: "Palit GeForce RTX 4060 Dual", Price: 17995, Quantity: 1}},
			ShippingAddress: order.ShippingAddress{FullName: "Maria Santos", Address: "45 Rizal Ave", City: "Makati", Phone: "09180000000"},
			PaymentMethod:   order.PaymentGCash,
			Subtotal:        17995,
			ShippingFee:     50,
			Total:           18045,
			Status:          order.StatusCompleted,
			OrderDate:       time.Date(2025, 7, 12, 18, 5, 0, 0, time.UTC),
		},
	}
}

func TestBoltRepository_RoundTrip(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "storefront.db"))
	require.NoError(t, err)
	defer db.Close()

	repo := order.NewBoltRepository(db)

	want := testOrders()
	require.NoError(t, repo.Save(want))

	got, err := repo.Load()
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order log mismatch after reload (-want +got):\n%s", diff)
	}
}

func TestBoltRepository_LoadEmpty(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "storefront.db"))
	require.NoError(t, err)
	defer db.Close()

	repo := order.NewBoltRepository(db)

	got, err := repo.Load()
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestBoltRepository_SimulatedRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.db")

	db, err := storage.Open(path)
	require.NoError(t, err)

	store := order.NewStore(order.NewBoltRepository(db))
	placed, err := store.Place(placeInput())
	require.NoError(t, err)
	require.True(t, store.Cancel(placed.ID))
	require.NoError(t, db.Close())

	// Reopen, as a process restart would.
	db, err = storage.Open(path)
	require.NoError(t, err)
	defer db.Close()

	reloaded := order.NewStore(order.NewBoltRepository(db))

	if diff := cmp.Diff(store.Orders(), reloaded.Orders()); diff != "" {
		t.Errorf("order log mismatch after restart (-want +got):\n%s", diff)
	}

	got, ok := reloaded.Get(placed.ID)
	assert.True(t, ok)
	assert.Equal(t, order.StatusCancelled, got.Status)
}
