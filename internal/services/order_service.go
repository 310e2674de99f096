package services

import (
	"errors"
	"fmt"

	"threadline/internal/domain"
	"threadline/internal/repos"

	"github.com/google/uuid"
)

var ErrEmptyCart = errors.New("cart empty")

type OrderService struct {
	Carts  *repos.CartRepo
	Orders *repos.OrderRepo
	Prods  *repos.ProductRepo
}

func NewOrderService(carts *repos.CartRepo, orders *repos.OrderRepo, prods *repos.ProductRepo) *OrderService {
	return &OrderService{Carts: carts, Orders: orders, Prods: prods}
}

// Place snapshots the user's cart into a pending order, then clears the
// cart. Line data is denormalized so the order survives catalog edits.
func (s *OrderService) Place(userID, customerName string) (domain.Order, []domain.OrderLine, error) {
	items, err := s.Carts.Items(userID)
	if err != nil {
		return domain.Order{}, nil, err
	}
	if len(items) == 0 {
		return domain.Order{}, nil, ErrEmptyCart
	}

	o := domain.Order{
		ID:           uuid.NewString(),
		UserID:       userID,
		CustomerName: customerName,
		Status:       domain.StatusPending,
		TotalAmount:  Subtotal(items),
	}
	lines := make([]domain.OrderLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, domain.OrderLine{
			OrderID:     o.ID,
			ProductName: it.Name,
			Size:        it.Size,
			Color:       it.Color,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}

	if err := s.Orders.Create(o, lines); err != nil {
		return domain.Order{}, nil, err
	}
	_ = s.Carts.Clear(userID)
	return o, lines, nil
}

// SetStatus moves an order along the allowed transition graph.
func (s *OrderService) SetStatus(orderID, to string) error {
	from, err := s.Orders.Status(orderID)
	if err != nil {
		return err
	}
	if !domain.CanTransition(from, to) {
		return fmt.Errorf("cannot move order from %s to %s", from, to)
	}
	if from == to {
		return nil
	}
	return s.Orders.UpdateStatus(orderID, to)
}

// Stats feeds the admin dashboard: order count, revenue over non-cancelled
// orders, and active product count.
type Stats struct {
	Orders   int
	Revenue  int64
	Products int
}

func (s *OrderService) Stats() (Stats, error) {
	n, revenue, err := s.Orders.CountAndRevenue()
	if err != nil {
		return Stats{}, err
	}
	products, err := s.Prods.Count()
	if err != nil {
		return Stats{}, err
	}
	return Stats{Orders: n, Revenue: revenue, Products: products}, nil
}
