package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vasiliy-maslov/storefront/internal/cart"
	"github.com/vasiliy-maslov/storefront/internal/catalog"
	"github.com/vasiliy-maslov/storefront/internal/checkout"
	"github.com/vasiliy-maslov/storefront/internal/handler"
	"github.com/vasiliy-maslov/storefront/internal/order"
	"github.com/vasiliy-maslov/storefront/internal/profile"
)

// Stores bundles the state containers the router serves.
type Stores struct {
	Catalog *catalog.Catalog
	Cart    *cart.Store
	Orders  *order.Store
	Profile *profile.Store
}

func NewRouter(s Stores) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	checkoutSvc := checkout.NewService(s.Cart, s.Orders)

	catalogHandler := handler.NewCatalogHandler(s.Catalog)
	cartHandler := handler.NewCartHandler(s.Cart, s.Catalog)
	orderHandler := handler.NewOrderHandler(s.Orders, checkoutSvc)
	builderHandler := handler.NewBuilderHandler(s.Cart, s.Catalog)
	profileHandler := handler.NewProfileHandler(s.Profile)

	r.Get("/products", catalogHandler.ListProducts)
	r.Get("/products/{id}", catalogHandler.GetProduct)
	r.Get("/categories", catalogHandler.ListCategories)

	r.Get("/cart", cartHandler.GetCart)
	r.Post("/cart/items", cartHandler.AddItem)
	r.Post("/cart/items/{id}/increase", cartHandler.IncreaseItem)
	r.Post("/cart/items/{id}/decrease", cartHandler.DecreaseItem)
	r.Delete("/cart/items/{id}", cartHandler.RemoveItem)
	r.Delete("/cart", cartHandler.ClearCart)
	r.Post("/cart/buy-now", cartHandler.BuyNow)

	r.Post("/checkout", orderHandler.Checkout)
	r.Get("/orders", orderHandler.ListOrders)
	r.Get("/orders/{id}", orderHandler.GetOrder)
	r.Post("/orders/{id}/status", orderHandler.UpdateStatus)
	r.Post("/orders/{id}/cancel", orderHandler.Cancel)

	r.Get("/builder/slots", builderHandler.ListSlots)
	r.Post("/builder/check", builderHandler.Check)
	r.Post("/builder/add-to-cart", builderHandler.AddToCart)

	r.Get("/profile", profileHandler.GetProfile)
	r.Patch("/profile", profileHandler.UpdateProfile)

	return r
}
