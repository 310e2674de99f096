package handlers

import (
	applog "threadline/internal/log"
	"threadline/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ShopHandler struct {
	Catalog *services.CatalogService
}

// Home renders the landing page with categories and a few featured products.
func (h *ShopHandler) Home(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		applog.Error(c, "home.categories", err, nil)
		cats = nil
	}
	prods, fromFallback, err := h.Catalog.ListProducts()
	if err != nil {
		applog.Error(c, "home.products", err, nil)
		prods = nil
	}
	if len(prods) > 4 {
		prods = prods[:4]
	}
	return render(c, "home", fiber.Map{
		"Categories": cats,
		"Featured":   prods,
		"Degraded":   fromFallback,
	})
}
