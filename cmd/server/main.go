package main

import (
	"database/sql"
	"log"
	"net/http"

	"blackboxinc-be/internal/cart"
	"blackboxinc-be/internal/checkout"
	"blackboxinc-be/internal/config"
	"blackboxinc-be/internal/db"
	"blackboxinc-be/internal/logger"
	"blackboxinc-be/internal/order"
	"blackboxinc-be/internal/payment"
	"blackboxinc-be/internal/payment/webhook"
	"blackboxinc-be/internal/product"
	"blackboxinc-be/internal/region"
	"blackboxinc-be/internal/rest"
	"blackboxinc-be/internal/shipping"
	"blackboxinc-be/internal/user"
)

// swapped out in tests
var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

func newServer(cfg *config.Config, database *sql.DB) http.Handler {
	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, productRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	gateway := payment.NewGateway(cfg.GatewayBaseURL, cfg.GatewayServerKey)
	regionClient := region.NewClient(cfg.RegionBaseURL)
	shippingClient := shipping.NewClient(cfg.CourierBaseURL, cfg.CourierAPIKey)

	checkoutSvc := checkout.NewService(
		checkout.NewSessionStore(),
		cartSvc,
		productRepo,
		orderSvc,
		gateway,
		cartSvc.ClearCart,
	)

	handler := rest.NewHandler(productSvc, cartSvc, userSvc, orderSvc, checkoutSvc, regionClient, shippingClient)
	webhookHandler := webhook.NewHandler(orderSvc, gateway)

	return rest.NewRouter(handler, webhookHandler)
}

func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	router := newServer(cfg, database)

	log.Printf("server running at http://localhost:%s/", cfg.AppPort)
	return startServerFunc(":"+cfg.AppPort, router)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
