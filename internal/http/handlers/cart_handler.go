package handlers

import (
	"threadline/internal/domain"
	applog "threadline/internal/log"
	"threadline/internal/services"
	"threadline/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart *services.CartService
}

func currentUser(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals("user").(*domain.User)
	return u
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	u := currentUser(c)
	if u == nil {
		return c.Redirect("/login")
	}
	cv, err := h.Cart.View(u.ID)
	if err != nil {
		applog.Error(c, "cart.view", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load your cart"})
	}
	return render(c, "cart", fiber.Map{"Cart": cv})
}

// Add puts the selected (size, color) variant of a product into the cart.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	u := currentUser(c)
	if u == nil {
		return c.Redirect("/login")
	}
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	size, ok := validate.Size(c.FormValue("size"))
	if !ok {
		return c.Status(400).SendString("select a size")
	}
	color, ok := validate.Color(c.FormValue("color"))
	if !ok {
		return c.Status(400).SendString("select a color")
	}
	qty := validate.Qty(c.FormValue("qty"))

	if err := h.Cart.Add(u.ID, productID, size, color, qty); err != nil {
		if err == services.ErrVariantUnavailable {
			return c.Status(400).SendString("Unavailable option")
		}
		applog.Error(c, "cart.add", err, map[string]any{"product": productID})
		return c.Status(fiber.StatusInternalServerError).SendString("Could not add to cart")
	}
	applog.Audit(c, "cart.add", map[string]any{"product": productID, "size": size, "color": color, "qty": qty})
	return c.Redirect("/cart")
}

// Update sets a line's quantity; a value below 1 removes the line.
func (h *CartHandler) Update(c *fiber.Ctx) error {
	u := currentUser(c)
	if u == nil {
		return c.Redirect("/login")
	}
	variantID, ok := validate.ID(c.FormValue("variantId"))
	if !ok {
		return c.Status(400).SendString("missing variantId")
	}
	qty, remove := validate.QtyOrRemove(c.FormValue("qty"))
	var err error
	if remove {
		err = h.Cart.Remove(u.ID, variantID)
	} else {
		err = h.Cart.SetQuantity(u.ID, variantID, qty)
	}
	if err != nil {
		applog.Error(c, "cart.update", err, map[string]any{"variant": variantID})
		return c.Status(fiber.StatusInternalServerError).SendString("Could not update cart")
	}
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	u := currentUser(c)
	if u == nil {
		return c.Redirect("/login")
	}
	variantID, ok := validate.ID(c.FormValue("variantId"))
	if !ok {
		return c.Status(400).SendString("missing variantId")
	}
	if err := h.Cart.Remove(u.ID, variantID); err != nil {
		applog.Error(c, "cart.remove", err, map[string]any{"variant": variantID})
		return c.Status(fiber.StatusInternalServerError).SendString("Could not update cart")
	}
	return c.Redirect("/cart")
}
