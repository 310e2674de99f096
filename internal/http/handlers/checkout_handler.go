package handlers

import (
	"threadline/internal/handoff"
	applog "threadline/internal/log"
	"threadline/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler turns the cart into a pending order and hands the
// customer off to a pre-filled WhatsApp conversation in place of a payment
// flow.
type CheckoutHandler struct {
	Cart      *services.CartService
	Order     *services.OrderService
	Recipient string
}

func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	u := currentUser(c)
	if u == nil {
		return c.Redirect("/login")
	}

	name := u.Name
	if name == "" {
		name = u.Email
	}

	order, lines, err := h.Order.Place(u.ID, name)
	if err != nil {
		if err == services.ErrEmptyCart {
			return c.Redirect("/cart")
		}
		applog.Error(c, "checkout.place", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Checkout failed. Please try again."})
	}

	url := handoff.BuildURL(order, lines, h.Recipient)
	applog.Audit(c, "order.place", map[string]any{
		"order_id": order.ID,
		"total":    order.TotalAmount,
		"lines":    len(lines),
	})
	return c.Redirect(url)
}
