package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/quickbite/food-ordering-api/internal/api/handler"
	"github.com/quickbite/food-ordering-api/internal/api/middleware"
	"github.com/quickbite/food-ordering-api/internal/core/domain"
	"github.com/quickbite/food-ordering-api/internal/core/ports"
	"github.com/quickbite/food-ordering-api/internal/core/service"
	"github.com/quickbite/food-ordering-api/internal/infrastructure/db/postgres"
	"github.com/quickbite/food-ordering-api/internal/infrastructure/db/redis"
	"github.com/quickbite/food-ordering-api/internal/infrastructure/http/handlers"
)

// Dependencies carries the externally constructed resources the router wires
// together.
type Dependencies struct {
	Pool   *pgxpool.Pool
	Redis  *goredis.Client
	Images ports.ImageStore
	Tokens ports.TokenManager
	Log    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Route protection is declared here, in one place: auth is the access-token
// middleware, admin additionally requires the admin role.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(deps.Pool)
	addressRepo := postgres.NewAddressRepository(deps.Pool)
	categoryRepo := postgres.NewCategoryRepository(deps.Pool)
	productRepo := postgres.NewProductRepository(deps.Pool)
	toppingRepo := postgres.NewToppingRepository(deps.Pool)
	sideOptionRepo := postgres.NewSideOptionRepository(deps.Pool)
	menuRepo := postgres.NewMenuRepository(deps.Pool)
	cache := redis.NewCatalogCache(deps.Redis)

	// --- Services ---
	authService := service.NewAuthService(userRepo, deps.Tokens)
	userService := service.NewUserService(userRepo, addressRepo, deps.Images, deps.Log)
	categoryService := service.NewCategoryService(categoryRepo)
	productService := service.NewProductService(productRepo, categoryRepo, toppingRepo, sideOptionRepo, deps.Images, cache, deps.Log)
	toppingService := service.NewToppingService(toppingRepo, productRepo, deps.Images, deps.Log)
	sideOptionService := service.NewSideOptionService(sideOptionRepo, productRepo, deps.Images, deps.Log)
	menuService := service.NewMenuService(menuRepo, deps.Images, cache, deps.Log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)
	toppingHandler := handler.NewToppingHandler(toppingService)
	sideOptionHandler := handler.NewSideOptionHandler(sideOptionService)
	menuHandler := handler.NewMenuHandler(menuService)

	auth := middleware.Auth(deps.Tokens, userRepo)
	admin := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes (public) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/refresh-token", authHandler.Refresh)

	// --- User routes ---
	e.GET("/user/profile", userHandler.Profile, auth)
	e.PATCH("/user", userHandler.UpdateProfile, auth)
	e.POST("/user/add-address", userHandler.AddAddress, auth)
	e.PATCH("/user/update-address/:addressId", userHandler.UpdateAddress, auth)

	// --- Category routes ---
	e.POST("/category", categoryHandler.Create, auth, admin)
	e.GET("/category", categoryHandler.List, auth)
	e.PATCH("/category/:id", categoryHandler.Update, auth, admin)

	// --- Product routes ---
	e.POST("/product", productHandler.Create, auth, admin)
	e.GET("/product", productHandler.List, auth)
	e.GET("/product/:id", productHandler.Get, auth)
	e.PATCH("/product/:id", productHandler.Update, auth, admin)
	e.DELETE("/product/:id", productHandler.Delete, auth, admin)

	// --- Topping routes ---
	e.POST("/topping/:productId", toppingHandler.Create, auth, admin)
	e.GET("/topping", toppingHandler.List, auth)
	e.GET("/topping/:id", toppingHandler.Get, auth, admin)
	e.PATCH("/topping/:id", toppingHandler.Update, auth, admin)
	e.DELETE("/topping/:id", toppingHandler.Delete, auth, admin)

	// --- Side option routes ---
	e.POST("/side-option/:productId", sideOptionHandler.Create, auth, admin)
	e.GET("/side-option", sideOptionHandler.List, auth)
	e.GET("/side-option/:id", sideOptionHandler.Get, auth, admin)
	e.PATCH("/side-option/:id", sideOptionHandler.Update, auth, admin)
	e.DELETE("/side-option/:id", sideOptionHandler.Delete, auth, admin)

	// --- Menu routes ---
	e.POST("/menu", menuHandler.Create, auth, admin)
	e.GET("/menu", menuHandler.List, auth)
	e.GET("/menu/:id", menuHandler.Get, auth)
	e.PATCH("/menu/:id", menuHandler.Update, auth, admin)
	e.DELETE("/menu/:id", menuHandler.Delete, auth, admin)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Pool, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
