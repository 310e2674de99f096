package services

import (
	"errors"

	"threadline/internal/repos"
)

var ErrVariantUnavailable = errors.New("selected size/color is unavailable")

type CartService struct {
	Carts *repos.CartRepo
	Prods *repos.ProductRepo
}

func NewCartService(carts *repos.CartRepo, prods *repos.ProductRepo) *CartService {
	return &CartService{Carts: carts, Prods: prods}
}

// LineTotal is the price of one cart or order line.
func LineTotal(price int64, qty int) int64 { return price * int64(qty) }

// Subtotal sums line totals over a cart. Subtotal(nil) is 0.
func Subtotal(items []repos.CartRow) int64 {
	var total int64
	for _, it := range items {
		total += LineTotal(it.Price, it.Quantity)
	}
	return total
}

// Add resolves the (size, color) variant of a product and upserts a cart
// line for it; an existing line has its quantity incremented.
func (s *CartService) Add(userID, productID, size, color string, qty int) error {
	if qty < 1 {
		qty = 1
	}
	v, err := s.Prods.FindVariant(productID, size, color)
	if err != nil {
		return ErrVariantUnavailable
	}
	return s.Carts.AddItem(userID, v.ID, qty)
}

// SetQuantity updates a line's quantity; anything below 1 removes the line.
func (s *CartService) SetQuantity(userID, variantID string, qty int) error {
	if qty < 1 {
		return s.Carts.Remove(userID, variantID)
	}
	return s.Carts.SetQuantity(userID, variantID, qty)
}

func (s *CartService) Remove(userID, variantID string) error {
	return s.Carts.Remove(userID, variantID)
}

type CartView struct {
	Items    []repos.CartRow
	Subtotal int64
}

func (s *CartService) View(userID string) (CartView, error) {
	items, err := s.Carts.Items(userID)
	if err != nil {
		return CartView{}, err
	}
	return CartView{Items: items, Subtotal: Subtotal(items)}, nil
}
