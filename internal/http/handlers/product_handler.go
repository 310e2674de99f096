package handlers

import (
	"strings"

	"threadline/internal/catalog"
	applog "threadline/internal/log"
	"threadline/internal/services"
	"threadline/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// Facet values offered by the listing sidebar.
var (
	facetSizes  = []string{"S", "M", "L", "XL", "XXL"}
	facetColors = []string{"Black", "White", "Red", "Blue"}
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// List renders /products filtered by the selected facets. Empty facets mean
// no constraint; an empty result renders its own empty state.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	category := strings.TrimSpace(c.Query("category"))
	size := strings.TrimSpace(c.Query("size"))
	color := strings.TrimSpace(c.Query("color"))
	if size != "" {
		if _, ok := validate.Size(size); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "size"})
			size = ""
		}
	}
	if color != "" {
		if _, ok := validate.Color(color); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "color"})
			color = ""
		}
	}

	prods, fromFallback, err := h.Catalog.FilterProducts(category, size, color)
	if err != nil {
		applog.Error(c, "products.list", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load products. Please retry."})
	}
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		applog.Error(c, "products.categories", err, nil)
		cats = nil
	}

	return render(c, "products", fiber.Map{
		"Products":         prods,
		"Categories":       cats,
		"Sizes":            facetSizes,
		"Colors":           facetColors,
		"SelectedCategory": category,
		"SelectedSize":     size,
		"SelectedColor":    color,
		"Count":            len(prods),
		"Degraded":         fromFallback,
	})
}

// Detail renders /products/:id with its size/color choices. Colors narrow
// to the selected size, mirroring the variant picker.
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	p, variants, err := h.Catalog.ProductDetail(id)
	if err != nil || p.ID == "" {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}

	size := strings.TrimSpace(c.Query("size"))
	if size != "" {
		if _, ok := validate.Size(size); !ok {
			size = ""
		}
	}

	return render(c, "product", fiber.Map{
		"P":            p,
		"Sizes":        catalog.Sizes(variants),
		"Colors":       catalog.Colors(variants, size),
		"SelectedSize": size,
	})
}
