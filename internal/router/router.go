package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/keyvanm/inventory-sales-api/internal/handler"    // import the handlers that implement business logic
	"github.com/keyvanm/inventory-sales-api/internal/middleware" // import middleware for JWT authentication
)

// RegisterSystem registers the unauthenticated system endpoints: the
// service info document at / and the database-probing health check.
// Load balancers and monitoring systems hit these without credentials.
func RegisterSystem(e *echo.Echo, s *handler.SystemHandler) {
	e.GET("/", s.Info)
	e.GET("/health", s.Health)
}

// RegisterAuth registers registration and login.  Both endpoints issue
// bearer tokens and neither requires an existing session.  The limiter is
// applied here (and only here) to slow down credential stuffing; pass a
// pass-through middleware when rate limiting is disabled.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, limiter echo.MiddlewareFunc) {
	e.POST("/register", a.Register, limiter)
	e.POST("/login", a.Login, limiter)
}

// RegisterInventory registers the inventory API.  Reads are public, with
// the response cache applied to the list endpoints; every mutating route is
// wrapped by the session guard so only authenticated users can change
// state.  Paths keep their trailing slashes to match the published API.
func RegisterInventory(
	e *echo.Echo,
	products *handler.ProductHandler,
	categories *handler.CategoryHandler,
	suppliers *handler.SupplierHandler,
	sales *handler.SaleHandler,
	report *handler.ReportHandler,
	jwtSecret string,
	cache echo.MiddlewareFunc,
) {
	// Public reads.
	e.GET("/products/", products.List, cache)
	e.GET("/products/:id", products.Get)
	e.GET("/categories/", categories.List, cache)
	e.GET("/suppliers/", suppliers.List, cache)
	e.GET("/report/inventory", report.Inventory, cache)

	// Guarded mutations.  The guard verifies the bearer token and injects
	// the subject; handlers never see an unauthenticated request.
	guard := middleware.JWTAuth(jwtSecret)
	e.POST("/products/", products.Create, guard)
	e.PUT("/products/:id", products.Update, guard)
	e.DELETE("/products/:id", products.Delete, guard)
	e.POST("/categories/", categories.Create, guard)
	e.POST("/suppliers/", suppliers.Create, guard)
	e.POST("/sales/", sales.Create, guard)
}
