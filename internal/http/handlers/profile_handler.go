package handlers

import (
	applog "threadline/internal/log"
	"threadline/internal/repos"

	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	Orders *repos.OrderRepo
}

// Show renders the account page with the user's order history.
func (h *ProfileHandler) Show(c *fiber.Ctx) error {
	u := currentUser(c)
	if u == nil {
		return c.Redirect("/login")
	}
	orders, err := h.Orders.ListByUser(u.ID)
	if err != nil {
		applog.Error(c, "profile.orders", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load your orders"})
	}
	return render(c, "profile", fiber.Map{"Orders": orders})
}
