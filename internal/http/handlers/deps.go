package handlers

import (
	"threadline/internal/config"
	"threadline/internal/fixture"
	"threadline/internal/repos"
	"threadline/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	ShopHandler     *ShopHandler
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	ProfileHandler  *ProfileHandler
	WishlistHandler *WishlistHandler
	AdminHandler    *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService) *Deps {
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)
	cartRepo := repos.NewCartRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	wishRepo := repos.NewWishlistRepo(db)

	var fallback services.ProductSource
	if cfg.CatalogFallback == "fixture" {
		fallback = fixture.New()
	}

	catalogSvc := services.NewCatalogService(catRepo, prodRepo, fallback)
	cartSvc := services.NewCartService(cartRepo, prodRepo)
	orderSvc := services.NewOrderService(cartRepo, orderRepo, prodRepo)
	wishSvc := services.NewWishlistService(wishRepo)

	return &Deps{
		ShopHandler:     &ShopHandler{Catalog: catalogSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		CartHandler:     &CartHandler{Cart: cartSvc},
		CheckoutHandler: &CheckoutHandler{Cart: cartSvc, Order: orderSvc, Recipient: cfg.WhatsAppNumber},
		ProfileHandler:  &ProfileHandler{Orders: orderRepo},
		WishlistHandler: &WishlistHandler{Wish: wishSvc},
		AdminHandler: &AdminHandler{
			Catalog:  catalogSvc,
			Order:    orderSvc,
			Orders:   orderRepo,
			MediaDir: cfg.MediaDir,
		},
	}
}
