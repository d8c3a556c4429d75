package main

import (
	"log/slog"
	"net/http"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/middleware"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/repository"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// repositories bundles one storage backend.
type repositories struct {
	Products  services.ProductRepo
	Users     services.UserRepo
	Carts     services.CartRepo
	Addresses services.AddressRepo
	TopUps    services.TopUpRepo
	Orders    services.OrderRepo
}

func postgresRepositories(pool *pgxpool.Pool) repositories {
	return repositories{
		Products:  repository.NewProductRepository(pool),
		Users:     repository.NewAuthRepository(pool),
		Carts:     repository.NewCartRepository(pool),
		Addresses: repository.NewAddressRepository(pool),
		TopUps:    repository.NewPaymentRepository(pool),
		Orders:    repository.NewOrderRepository(pool),
	}
}

func memoryRepositories(s *repository.MemoryStore) repositories {
	return repositories{
		Products:  s.Products(),
		Users:     s.Users(),
		Carts:     s.Carts(),
		Addresses: s.Addresses(),
		TopUps:    s.Payments(),
		Orders:    s.Orders(),
	}
}

type serverOptions struct {
	Repos              repositories
	Auth               *middleware.Auth
	Snap               services.SnapClient // nil disables top-ups
	MidtransServerKey  string
	DefaultWalletMoney int64
	Logger             *slog.Logger
}

// newServer wires services and routes under /v1.
func newServer(opts serverOptions) *echo.Echo {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(opts.Repos.Users, opts.DefaultWalletMoney)
	userSvc := services.NewUserService(opts.Repos.Users)
	productSvc := services.NewProductService(opts.Repos.Products)
	cartSvc := services.NewCartService(opts.Repos.Carts, opts.Repos.Products, opts.Repos.Addresses)
	addressSvc := services.NewAddressService(opts.Repos.Addresses)
	paymentSvc := services.NewPaymentService(opts.Repos.TopUps, opts.Repos.Users, opts.Snap, opts.MidtransServerKey, logger)
	orderSvc := services.NewOrderService(opts.Repos.Orders)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	api := e.Group("/v1")

	// ======================
	// ROUTES
	// ======================
	registerAuthRoutes(api, authSvc, opts.Auth)
	registerProductRoutes(api, productSvc)
	registerCartRoutes(api, cartSvc, opts.Auth)
	registerUserRoutes(api, userSvc, addressSvc, opts.Auth)
	registerWalletRoutes(api, paymentSvc, opts.Auth)
	registerOrderRoutes(api, orderSvc, opts.Auth)

	return e
}
