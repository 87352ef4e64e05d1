package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/utilize/marketplace-api/internal/api/handler"
	"github.com/utilize/marketplace-api/internal/api/middleware"
	"github.com/utilize/marketplace-api/internal/core/ports"
)

// Deps carries everything the router needs. Nothing is read from globals.
type Deps struct {
	Tokens    middleware.TokenVerifier
	Roles     middleware.RoleLookup
	Users     ports.UserService
	Catalog   ports.CatalogService
	Purchases ports.PurchaseService
	Wishlist  ports.WishlistService

	// Checks are run by GET /health/ready, keyed by dependency name.
	Checks map[string]handler.Check

	CORSOrigins []string

	// Metrics receives the HTTP request collectors. Nil disables them.
	Metrics prometheus.Registerer

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(d.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: corsOrigins(d.CORSOrigins),
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			handler.HeaderIdempotencyKey,
		},
	}))
	if d.Metrics != nil {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  "http",
			Registerer: d.Metrics,
			Skipper: func(c echo.Context) bool {
				return c.Path() == "/metrics"
			},
		}))
	}

	// --- Handlers ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Checks)
	userHandler := handler.NewUserHandler(d.Users)
	catalogHandler := handler.NewCatalogHandler(d.Catalog)
	orderHandler := handler.NewOrderHandler(d.Purchases, d.Wishlist)

	auth := middleware.Auth(d.Tokens)
	sellerOnly := middleware.SellerOnly(d.Roles, d.Log)
	adminOnly := middleware.AdminOnly(d.Roles, d.Log)

	// --- Operational routes ---
	e.GET("/", healthHandler.Hello)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Catalog (public) ---
	e.GET("/categories", catalogHandler.Categories)
	e.GET("/categories/:id", catalogHandler.ProductsByCategory)
	e.GET("/advertise", catalogHandler.Advertised)

	// --- Users and sessions ---
	e.PUT("/user/:email", userHandler.SaveProfile)
	e.GET("/user/:email", userHandler.Get)
	e.PUT("/userLogin/:email", userHandler.Login)
	e.PUT("/updateRole/:email/:role", userHandler.UpdateRole, auth)

	// --- Orders and wishlists ---
	e.POST("/purchase", orderHandler.CreatePurchase, auth)
	e.GET("/myOrder", orderHandler.MyOrders, auth)
	e.DELETE("/purchase/:id", orderHandler.DeletePurchase, auth)
	e.POST("/add_wish", orderHandler.AddWish, auth)
	e.GET("/wishlist/:user", orderHandler.Wishlist, auth)

	// --- Seller ---
	e.POST("/product", catalogHandler.CreateProduct, auth, sellerOnly)
	e.GET("/products/:name", catalogHandler.ProductsBySeller, auth, sellerOnly)
	e.DELETE("/products/:id", catalogHandler.DeleteProduct, auth, sellerOnly)
	e.PUT("/makeAdvertise/:id", catalogHandler.Advertise, auth, sellerOnly)

	// --- Admin ---
	e.GET("/allBuyers", userHandler.ListBuyers, auth, adminOnly)
	e.GET("/allSellers", userHandler.ListSellers, auth, adminOnly)
	e.DELETE("/deleteUser/:id", userHandler.Delete, auth, adminOnly)

	return e
}

func corsOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// requestLogger emits one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			switch {
			case v.Status >= 500:
				ev = log.Error().Err(v.Error)
			case v.Error != nil:
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
