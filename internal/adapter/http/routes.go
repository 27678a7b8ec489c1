package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all hotel search API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *HotelHandler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with middleware applied to
// the versioned API group only.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *HotelHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	hotels := api.Group("/hotels")
	hotels.POST("/search", h.SearchHotels)
	hotels.GET("", h.ListHotels)
	hotels.PUT("/display", h.SetDisplay)
	hotels.GET("/:id", h.GetHotel)

	favorites := api.Group("/favorites")
	favorites.GET("", h.ListFavorites)
	favorites.POST("/:id/toggle", h.ToggleFavorite)

	theme := api.Group("/preferences/theme")
	theme.GET("", h.GetTheme)
	theme.PUT("", h.SetTheme)
	theme.POST("/toggle", h.ToggleTheme)

	api.GET("/destinations", h.ListDestinations)
}
