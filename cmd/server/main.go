package main

import (
	"database/sql"
	"net/http"
	"time"

	"craftviet-be/internal/address"
	"craftviet-be/internal/cart"
	"craftviet-be/internal/checkout"
	"craftviet-be/internal/config"
	"craftviet-be/internal/dashboard"
	"craftviet-be/internal/db"
	"craftviet-be/internal/httpapi"
	"craftviet-be/internal/invoice"
	"craftviet-be/internal/logger"
	"craftviet-be/internal/order"
	"craftviet-be/internal/product"
	"craftviet-be/internal/promo"
	"craftviet-be/internal/review"
	"craftviet-be/internal/shipping"
	"craftviet-be/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Seams for tests.
var (
	initDBFunc      = db.InitDB
	startServerFunc = func(addr string, handler http.Handler) error {
		return http.ListenAndServe(addr, handler)
	}
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server exited", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	database := initDBFunc(cfg)
	defer database.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer rdb.Close()

	router, err := newServer(cfg, database, rdb)
	if err != nil {
		return err
	}

	logger.L().Info("server listening", zap.String("port", cfg.AppPort))
	return startServerFunc(":"+cfg.AppPort, router)
}

func newServer(cfg *config.Config, database *sql.DB, rdb *redis.Client) (*gin.Engine, error) {
	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, productRepo)

	addressRepo := address.NewRepository(database)
	addressSvc := address.NewService(addressRepo)

	shippingRepo := shipping.NewRepository(database)
	shippingSvc := shipping.NewService(shippingRepo)

	promoRepo := promo.NewRepository(database)
	promoSvc := promo.NewService(promoRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	reviewRepo := review.NewRepository(database)
	reviewSvc := review.NewService(reviewRepo)

	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		logger.L().Warn("failed to load shop timezone, using server local", zap.Error(err))
		loc = time.Local
	}
	dashboardSvc := dashboard.NewService(dashboard.NewRepository(database), loc)

	checkoutSvc := checkout.NewService(
		checkout.NewRedisStore(rdb),
		checkout.NewRemoteQuoter(cfg.PricingServiceURL),
		cartSvc,
		addressSvc,
		shippingSvc,
		promoSvc,
		orderSvc,
	)

	invoiceGen, err := invoice.NewGenerator(cfg.InvoiceDir, cfg.ShopName, cfg.ShopAddress)
	if err != nil {
		return nil, err
	}

	return httpapi.New(httpapi.Deps{
		User:      userSvc,
		Product:   productSvc,
		Cart:      cartSvc,
		Address:   addressSvc,
		Shipping:  shippingSvc,
		Promo:     promoSvc,
		Checkout:  checkoutSvc,
		Order:     orderSvc,
		Review:    reviewSvc,
		Dashboard: dashboardSvc,
		Invoice:   invoiceGen,
	}), nil
}
