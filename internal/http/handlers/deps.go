package handlers

import (
	"pixlumia/internal/config"
	"pixlumia/internal/delivery"
	"pixlumia/internal/payment"
	"pixlumia/internal/recommend"
	"pixlumia/internal/services"
	"pixlumia/internal/store"
	"pixlumia/internal/stores"
)

type Deps struct {
	Catalog   *CatalogHandler
	Cart      *CartHandler
	Checkout  *CheckoutHandler
	Auth      *AuthHandler
	Orders    *OrderHandler
	Delivery  *DeliveryHandler
	Studio    *StudioHandler
	Recommend *RecommendHandler
	Admin     *AdminHandler

	AdminSvc *services.AdminService
	AuthSvc  *services.AuthService
}

func NewDeps(kv store.KV, cfg config.Config) *Deps {
	catalogStore := stores.NewCatalogStore(kv)
	cartStore := stores.NewCartStore(kv)
	identityStore := stores.NewIdentityStore(kv)
	orderStore := stores.NewOrderStore(kv)
	studioStore := stores.NewStudioStore(kv)
	checkoutStore := stores.NewCheckoutStore(kv)
	adminStore := stores.NewAdminStore(kv)

	gateway := payment.SimulatedGateway{Delay: cfg.PaymentDelay}
	directory := delivery.MockDirectory{}
	recClient := recommend.NewClient(cfg.GeminiBaseURL, cfg.GeminiModel, cfg.GeminiAPIKey)

	catalogSvc := services.NewCatalogService(catalogStore, studioStore)
	cartSvc := services.NewCartService(cartStore)
	authSvc := services.NewAuthService(identityStore)
	orderSvc := services.NewOrderService(cartSvc, orderStore, gateway)
	checkoutSvc := services.NewCheckoutService(cartSvc, authSvc, orderSvc, checkoutStore)
	adminSvc := services.NewAdminService(adminStore, cfg.AdminSecret)

	return &Deps{
		Catalog:   &CatalogHandler{Catalog: catalogSvc},
		Cart:      &CartHandler{Cart: cartSvc, Catalog: catalogSvc},
		Checkout:  &CheckoutHandler{Checkout: checkoutSvc, Directory: directory},
		Auth:      &AuthHandler{Auth: authSvc},
		Orders:    &OrderHandler{Orders: orderSvc, Auth: authSvc},
		Delivery:  &DeliveryHandler{Directory: directory},
		Studio:    &StudioHandler{Studio: studioStore},
		Recommend: &RecommendHandler{Client: recClient, Catalog: catalogSvc},
		Admin:     &AdminHandler{Admin: adminSvc, Catalog: catalogSvc, Studio: studioStore},

		AdminSvc: adminSvc,
		AuthSvc:  authSvc,
	}
}
