// Package http provides the HTTP handler layer for the hotel search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/travelink/hotel-search/internal/adapter/http/middleware"
	"github.com/travelink/hotel-search/internal/adapter/http/response"
	"github.com/travelink/hotel-search/internal/domain"
	"github.com/travelink/hotel-search/internal/infrastructure/logger"
	"github.com/travelink/hotel-search/internal/usecase"
)

// HotelHandler handles HTTP requests for search, display, favorites and theme.
type HotelHandler struct {
	session   *usecase.Session
	favorites *usecase.FavoritesService
	prefs     *usecase.PreferenceService
	log       *logger.Logger
}

// NewHotelHandler creates a new HotelHandler.
func NewHotelHandler(session *usecase.Session, favorites *usecase.FavoritesService, prefs *usecase.PreferenceService, log *logger.Logger) *HotelHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &HotelHandler{
		session:   session,
		favorites: favorites,
		prefs:     prefs,
		log:       log,
	}
}

// SearchHotels handles POST /api/v1/hotels/search
//
// @Summary Search for hotels
// @Description Resolves the destination, fetches live listings and replaces the current result set. Upstream failures degrade to the fallback catalog.
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body SearchHotelsRequest true "Search criteria"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error or empty destination"
// @Failure 504 {object} response.ErrorDetail "Request cancelled"
// @Router /hotels/search [post]
func (h *HotelHandler) SearchHotels(c echo.Context) error {
	var req SearchHotelsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.session.Search(c.Request().Context(), ToDomainQuery(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	if result.Stale {
		h.requestLog(c).Info().
			Uint64("generation", result.Generation).
			Msg("answered with a superseded search result")
	}

	return response.SearchResults(c, result.Generation, string(result.Source), ToSearchResponseDTO(result, h.favorites.IsFavorite))
}

// ListHotels handles GET /api/v1/hotels
//
// @Summary Display the current result set
// @Description Returns the full result set of the last search under the current display selection. Does not change any state.
// @Tags hotels
// @Produce json
// @Success 200 {object} DisplayResponseDTO
// @Router /hotels [get]
func (h *HotelHandler) ListHotels(c echo.Context) error {
	return response.OK(c, ToDisplayResponseDTO(h.session.Current(), h.favorites.IsFavorite))
}

// SetDisplay handles PUT /api/v1/hotels/display
//
// @Summary Change the display selection
// @Description Sets category, price range and sort for the current result set and returns the new view. The selection is kept until the next search.
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body DisplayRequest true "Display selection"
// @Success 200 {object} DisplayResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /hotels/display [put]
func (h *HotelHandler) SetDisplay(c echo.Context) error {
	var req DisplayRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	view, err := h.session.Display(ToDisplayState(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Updated(c, ToDisplayResponseDTO(view, h.favorites.IsFavorite))
}

// GetHotel handles GET /api/v1/hotels/:id
//
// @Summary Get one listing of the current result set
// @Tags hotels
// @Produce json
// @Param id path string true "Listing id"
// @Success 200 {object} HotelDTO
// @Failure 404 {object} response.ErrorDetail "Not in the current result set"
// @Router /hotels/{id} [get]
func (h *HotelHandler) GetHotel(c echo.Context) error {
	id := domain.ListingID(c.Param("id"))

	listing, err := h.session.Listing(id)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToHotelDTO(listing, h.favorites.IsFavorite(id)))
}

// ListFavorites handles GET /api/v1/favorites
//
// @Summary List favorites
// @Description Returns all favorite ids and the favorites present in the current result set.
// @Tags favorites
// @Produce json
// @Success 200 {object} FavoritesResponseDTO
// @Router /favorites [get]
func (h *HotelHandler) ListFavorites(c echo.Context) error {
	return response.OK(c, ToFavoritesResponseDTO(h.favorites.List(), h.session.FavoriteListings()))
}

// ToggleFavorite handles POST /api/v1/favorites/:id/toggle
//
// @Summary Toggle a favorite
// @Description Adds the listing to the favorites when absent and removes it when present. The new set is persisted before responding.
// @Tags favorites
// @Produce json
// @Param id path string true "Listing id"
// @Success 200 {object} ToggleResponseDTO
// @Failure 400 {object} response.ErrorDetail "Missing id"
// @Failure 500 {object} response.ErrorDetail "Preferences could not be saved"
// @Router /favorites/{id}/toggle [post]
func (h *HotelHandler) ToggleFavorite(c echo.Context) error {
	result, err := h.favorites.Toggle(c.Request().Context(), domain.ListingID(c.Param("id")))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Updated(c, ToToggleResponseDTO(result))
}

// GetTheme handles GET /api/v1/preferences/theme
//
// @Summary Get the theme
// @Tags preferences
// @Produce json
// @Success 200 {object} ThemeResponseDTO
// @Router /preferences/theme [get]
func (h *HotelHandler) GetTheme(c echo.Context) error {
	return response.OK(c, &ThemeResponseDTO{Theme: string(h.prefs.Theme())})
}

// SetTheme handles PUT /api/v1/preferences/theme
//
// @Summary Set the theme
// @Tags preferences
// @Accept json
// @Produce json
// @Param request body ThemeRequest true "Theme"
// @Success 200 {object} ThemeResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 500 {object} response.ErrorDetail "Preferences could not be saved"
// @Router /preferences/theme [put]
func (h *HotelHandler) SetTheme(c echo.Context) error {
	var req ThemeRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	theme, err := h.prefs.SetTheme(c.Request().Context(), domain.Theme(req.Theme))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Updated(c, &ThemeResponseDTO{Theme: string(theme)})
}

// ToggleTheme handles POST /api/v1/preferences/theme/toggle
//
// @Summary Toggle between light and dark
// @Tags preferences
// @Produce json
// @Success 200 {object} ThemeResponseDTO
// @Failure 500 {object} response.ErrorDetail "Preferences could not be saved"
// @Router /preferences/theme/toggle [post]
func (h *HotelHandler) ToggleTheme(c echo.Context) error {
	theme, err := h.prefs.ToggleTheme(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Updated(c, &ThemeResponseDTO{Theme: string(theme)})
}

// ListDestinations handles GET /api/v1/destinations
//
// @Summary Popular destinations
// @Tags destinations
// @Produce json
// @Success 200 {object} DestinationsResponseDTO
// @Router /destinations [get]
func (h *HotelHandler) ListDestinations(c echo.Context) error {
	return response.OK(c, ToDestinationsResponseDTO(domain.PopularDestinations()))
}

// Health handles GET /health
// Reports whether a result set has been committed yet.
func (h *HotelHandler) Health(c echo.Context) error {
	result, loaded := h.session.Result()
	return response.Health(c, loaded, result.Generation)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *HotelHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *HotelHandler) handleError(c echo.Context, err error) error {
	switch {
	case domain.IsEmptyDestination(err):
		return response.EmptyDestination(c)

	case domain.IsInvalidRequest(err):
		return response.ValidationErrorWithMessage(c, err.Error())

	case errors.Is(err, domain.ErrListingNotFound):
		return response.NotFound(c, "Listing is not part of the current results")

	case errors.Is(err, domain.ErrPersistence):
		h.requestLog(c).Error().Err(err).Msg("failed to persist preferences")
		return response.StorageError(c)

	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)

	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	}

	h.requestLog(c).Error().Err(err).Msg("unhandled error")
	return response.InternalServerError(c)
}

func (h *HotelHandler) requestLog(c echo.Context) *logger.Logger {
	return h.log.WithRequestID(middleware.GetRequestID(c))
}
