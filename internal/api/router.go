package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/broccoflower/catering-api/internal/api/handler"
	"github.com/broccoflower/catering-api/internal/api/middleware"
	"github.com/broccoflower/catering-api/internal/api/session"
	"github.com/broccoflower/catering-api/internal/core/domain"
	"github.com/broccoflower/catering-api/internal/core/service"
	"github.com/broccoflower/catering-api/internal/infrastructure/config"
	redisinfra "github.com/broccoflower/catering-api/internal/infrastructure/db/redis"
	"github.com/broccoflower/catering-api/internal/infrastructure/db/sqlite"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("catering"))

	// --- Dependencies ---
	accountRepo := sqlite.NewAccountRepository(db)
	dishRepo := sqlite.NewDishRepository(db)
	eventRepo := sqlite.NewEventRepository(db)
	requestRepo := sqlite.NewEventRequestRepository(db)

	tokenTTL := time.Duration(cfg.JWT.TTLSeconds) * time.Second
	tokens := service.NewTokenService(cfg.JWT.Secret, tokenTTL)
	sessions := session.NewCarrier(cfg.JWT.CookieName, tokenTTL)

	// nil when redis is down at startup; login then runs unthrottled
	var throttle service.LoginThrottle
	if rdb != nil {
		throttle = redisinfra.NewLoginThrottle(rdb)
	}

	authenticator := service.NewAuthenticator(accountRepo)
	authService := service.NewAuthService(accountRepo, authenticator, tokens, throttle, log)
	dishService := service.NewDishService(dishRepo, log)
	eventService := service.NewEventService(eventRepo, dishRepo, accountRepo, log)
	requestService := service.NewEventRequestService(requestRepo, accountRepo, log)

	authHandler := handler.NewAuthHandler(authService, sessions)
	dishHandler := handler.NewDishHandler(dishService)
	eventHandler := handler.NewEventHandler(eventService)
	requestHandler := handler.NewEventRequestHandler(requestService)

	// Every request resolves its caller once; guards below decide access.
	e.Use(middleware.Identity(tokens, accountRepo, sessions, log))

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.POST("/auth/register", authHandler.Register)

	// --- Public catalog routes ---
	e.GET("/dishes", dishHandler.List)
	e.GET("/dishes/paginated", dishHandler.ListPage)
	e.GET("/dishes/available", dishHandler.ListAvailable)
	e.GET("/dishes/available/paginated", dishHandler.ListAvailablePage)
	e.GET("/dishes/search", dishHandler.Search)
	e.GET("/dishes/price-range", dishHandler.ListByPriceRange)
	e.GET("/dishes/type/:dishTypeId", dishHandler.ListByType)
	e.GET("/dishes/:id", dishHandler.Get)

	// --- Client routes ---
	client := e.Group("/client", middleware.RequireAuthority(domain.AuthorityClient))

	client.POST("/events", eventHandler.Create)
	client.GET("/events", eventHandler.ListMine)
	client.GET("/events/:id", eventHandler.GetMine)
	client.PUT("/events/:id", eventHandler.UpdateMine)
	client.DELETE("/events/:id", eventHandler.DeleteMine)

	client.POST("/event-requests", requestHandler.Create)
	client.GET("/event-requests", requestHandler.ListMine)
	client.GET("/event-requests/:id", requestHandler.GetMine)
	client.PUT("/event-requests/:id", requestHandler.UpdateMine)
	client.DELETE("/event-requests/:id", requestHandler.DeleteMine)

	// --- Manager routes ---
	admin := e.Group("/admin", middleware.RequireAuthority(domain.AuthorityManager))

	admin.POST("/dishes", dishHandler.Create)
	admin.PUT("/dishes/:id", dishHandler.Update)
	admin.DELETE("/dishes/:id", dishHandler.Delete)

	admin.GET("/events", eventHandler.List)
	admin.GET("/events/paginated", eventHandler.ListPage)
	admin.GET("/events/upcoming", eventHandler.ListUpcoming)
	admin.GET("/events/search", eventHandler.Search)
	admin.GET("/events/status/:status", eventHandler.ListByStatus)
	admin.GET("/events/:id", eventHandler.Get)
	admin.PUT("/events/:id/status", eventHandler.UpdateStatus)
	admin.DELETE("/events/:id", eventHandler.Delete)

	admin.GET("/event-requests", requestHandler.List)
	admin.GET("/event-requests/paginated", requestHandler.ListPage)
	admin.GET("/event-requests/upcoming", requestHandler.ListUpcoming)
	admin.GET("/event-requests/search", requestHandler.Search)
	admin.GET("/event-requests/:id", requestHandler.Get)
	admin.PUT("/event-requests/:id", requestHandler.Update)
	admin.DELETE("/event-requests/:id", requestHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
