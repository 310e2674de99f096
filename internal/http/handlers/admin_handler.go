package handlers

import (
	"path/filepath"
	"strconv"
	"strings"

	"threadline/internal/domain"
	applog "threadline/internal/log"
	"threadline/internal/repos"
	"threadline/internal/services"
	"threadline/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AdminHandler struct {
	Catalog  *services.CatalogService
	Order    *services.OrderService
	Orders   *repos.OrderRepo
	MediaDir string
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.Order.Stats()
	if err != nil {
		applog.Error(c, "admin.stats.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load dashboard"})
	}
	return render(c, "admin_dashboard", fiber.Map{"Stats": stats})
}

// GET /admin/products
func (h *AdminHandler) ProductsPage(c *fiber.Ctx) error {
	prods, _, err := h.Catalog.ListProducts()
	if err != nil {
		applog.Error(c, "admin.products.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load products"})
	}
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		applog.Error(c, "admin.categories.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load categories"})
	}
	return render(c, "admin_products", fiber.Map{"Products": prods, "Categories": cats})
}

// POST /admin/products — multipart form with repeated size/color/stock rows
// and an optional image stored under the media dir.
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return c.Status(400).SendString("name must be 1-40 characters")
	}
	categoryID, ok := validate.ID(c.FormValue("category_id"))
	if !ok {
		return c.Status(400).SendString("select a category")
	}
	price, ok := validate.Price(c.FormValue("price"))
	if !ok {
		return c.Status(400).SendString("invalid price")
	}
	description := strings.TrimSpace(c.FormValue("description"))

	variants, err := parseVariantRows(c)
	if err != nil {
		return c.Status(400).SendString(err.Error())
	}

	imageURL := ""
	if file, err := c.FormFile("image"); err == nil && file != nil {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
			return c.Status(400).SendString("unsupported image type")
		}
		fname := uuid.NewString() + ext
		if err := c.SaveFile(file, filepath.Join(h.MediaDir, "products", fname)); err != nil {
			applog.Error(c, "admin.products.upload.fail", err, nil)
			return c.Status(500).SendString("could not store image")
		}
		imageURL = "/media/products/" + fname
	}

	p, err := h.Catalog.CreateProduct(categoryID, name, description, price, imageURL, variants)
	if err != nil {
		applog.Error(c, "admin.products.create.fail", err, nil)
		return c.Status(400).SendString("could not create product")
	}
	applog.Audit(c, "admin.products.create", map[string]any{"product": p.ID, "variants": len(variants)})
	return c.Redirect("/admin/products")
}

func parseVariantRows(c *fiber.Ctx) ([]services.VariantInput, error) {
	args := c.Request().PostArgs()
	sizes := args.PeekMulti("size")
	colors := args.PeekMulti("color")
	stocks := args.PeekMulti("stock")
	if len(sizes) == 0 || len(sizes) != len(colors) || len(sizes) != len(stocks) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "add at least one size/color row")
	}
	out := make([]services.VariantInput, 0, len(sizes))
	for i := range sizes {
		size, ok := validate.Size(string(sizes[i]))
		if !ok {
			return nil, fiber.NewError(fiber.StatusBadRequest, "invalid size")
		}
		color, ok := validate.Color(string(colors[i]))
		if !ok {
			return nil, fiber.NewError(fiber.StatusBadRequest, "invalid color")
		}
		stock, err := strconv.Atoi(strings.TrimSpace(string(stocks[i])))
		if err != nil || stock < 0 {
			return nil, fiber.NewError(fiber.StatusBadRequest, "invalid stock")
		}
		out = append(out, services.VariantInput{Size: size, Color: color, Stock: stock})
	}
	return out, nil
}

// POST /admin/products/:id/delete
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.Catalog.DeleteProduct(id); err != nil {
		applog.Error(c, "admin.products.delete.fail", err, map[string]any{"product": id})
		return c.Status(400).SendString("could not delete product")
	}
	applog.Audit(c, "admin.products.delete", map[string]any{"product": id})
	return c.Redirect("/admin/products")
}

// GET /admin/categories
func (h *AdminHandler) CategoriesPage(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		applog.Error(c, "admin.categories.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load categories"})
	}
	return render(c, "admin_categories", fiber.Map{"Categories": cats})
}

// POST /admin/categories — slug is derived from the name.
func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return c.Status(400).SendString("name must be 1-40 characters")
	}
	cat, err := h.Catalog.AddCategory(name)
	if err != nil {
		applog.Error(c, "admin.categories.create.fail", err, map[string]any{"name": name})
		return c.Status(400).SendString("could not create category")
	}
	applog.Audit(c, "admin.categories.create", map[string]any{"category": cat.ID, "slug": cat.Slug})
	return c.Redirect("/admin/categories")
}

// POST /admin/categories/:id/delete
func (h *AdminHandler) DeleteCategory(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.Catalog.DeleteCategory(id); err != nil {
		applog.Error(c, "admin.categories.delete.fail", err, map[string]any{"category": id})
		return c.Status(400).SendString("could not delete category")
	}
	applog.Audit(c, "admin.categories.delete", map[string]any{"category": id})
	return c.Redirect("/admin/categories")
}

// orderRow bundles an order with its lines for the admin table.
type orderRow struct {
	Order domain.Order
	Lines []domain.OrderLine
	Ref   string
}

// GET /admin/orders
func (h *AdminHandler) OrdersPage(c *fiber.Ctx) error {
	ords, err := h.Orders.ListLatest(100)
	if err != nil {
		applog.Error(c, "admin.orders.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load orders"})
	}
	rows := make([]orderRow, 0, len(ords))
	for _, o := range ords {
		lines, err := h.Orders.Lines(o.ID)
		if err != nil {
			applog.Error(c, "admin.orders.lines.fail", err, map[string]any{"order_id": o.ID})
			continue
		}
		ref := o.ID
		if len(ref) > 8 {
			ref = ref[:8]
		}
		rows = append(rows, orderRow{Order: o, Lines: lines, Ref: ref})
	}
	return render(c, "admin_orders", fiber.Map{"Rows": rows, "Statuses": domain.Statuses})
}

// POST /admin/orders/:id/status — transitions are restricted to the allowed
// graph; an illegal move is rejected.
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	status := c.FormValue("status")
	if id == "" || !domain.ValidStatus(status) {
		return c.Status(400).SendString("missing id or status")
	}
	if err := h.Order.SetStatus(id, status); err != nil {
		applog.Error(c, "admin.orders.update.fail", err, map[string]any{"order_id": id, "status": status})
		return c.Status(400).SendString("could not update status")
	}
	applog.Audit(c, "admin.orders.update", map[string]any{"order_id": id, "status": status})
	return c.Redirect("/admin/orders")
}
