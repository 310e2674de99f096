package services_test

import (
	"errors"
	"testing"

	"threadline/internal/repos"
	"threadline/internal/services"
)

func newCartService(t *testing.T) *services.CartService {
	t.Helper()
	db := newTestDB(t)
	return services.NewCartService(repos.NewCartRepo(db), repos.NewProductRepo(db))
}

func TestSubtotal(t *testing.T) {
	if got := services.Subtotal(nil); got != 0 {
		t.Fatalf("empty cart subtotal = %d, want 0", got)
	}
	items := []repos.CartRow{
		{Price: 599, Quantity: 2},
		{Price: 549, Quantity: 1},
	}
	if got := services.Subtotal(items); got != 1747 {
		t.Fatalf("subtotal = %d, want 1747", got)
	}
}

func TestAddIncrementsExistingLine(t *testing.T) {
	cart := newCartService(t)

	if err := cart.Add("u-jane", "tee-navy", "M", "Black", 2); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := cart.Add("u-jane", "tee-navy", "M", "Black", 1); err != nil {
		t.Fatalf("second add: %v", err)
	}

	view, err := cart.View("u-jane")
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("want 1 cart line, got %d", len(view.Items))
	}
	if view.Items[0].Quantity != 3 {
		t.Fatalf("quantity = %d, want 3 after increment", view.Items[0].Quantity)
	}
	if view.Subtotal != 3*599 {
		t.Fatalf("subtotal = %d, want %d", view.Subtotal, 3*599)
	}
}

func TestAddUnknownVariant(t *testing.T) {
	cart := newCartService(t)
	err := cart.Add("u-jane", "tee-navy", "XXL", "Pink", 1)
	if !errors.Is(err, services.ErrVariantUnavailable) {
		t.Fatalf("want ErrVariantUnavailable, got %v", err)
	}
}

func TestSetQuantityBelowOneRemovesLine(t *testing.T) {
	cart := newCartService(t)
	if err := cart.Add("u-jane", "tee-navy", "M", "Black", 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	view, err := cart.View("u-jane")
	if err != nil || len(view.Items) != 1 {
		t.Fatalf("view after add: %v (%d items)", err, len(view.Items))
	}

	if err := cart.SetQuantity("u-jane", view.Items[0].VariantID, 0); err != nil {
		t.Fatalf("set quantity 0: %v", err)
	}
	view, err = cart.View("u-jane")
	if err != nil {
		t.Fatalf("view after removal: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("want empty cart after qty 0, got %d lines", len(view.Items))
	}
	if view.Subtotal != 0 {
		t.Fatalf("subtotal = %d, want 0", view.Subtotal)
	}
}

func TestSetQuantityOverwrites(t *testing.T) {
	cart := newCartService(t)
	if err := cart.Add("u-jane", "tee-black", "S", "Black", 5); err != nil {
		t.Fatalf("add: %v", err)
	}
	view, _ := cart.View("u-jane")
	if err := cart.SetQuantity("u-jane", view.Items[0].VariantID, 2); err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	view, _ = cart.View("u-jane")
	if view.Items[0].Quantity != 2 {
		t.Fatalf("quantity = %d, want 2", view.Items[0].Quantity)
	}
}
