package response

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Headers describing the result set a response was built from.
const (
	HeaderSearchGeneration = "X-Search-Generation"
	HeaderResultSource     = "X-Result-Source"

	headerCacheControl = "Cache-Control"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`

	// ResultsLoaded is false until a first search has been committed
	ResultsLoaded bool `json:"results_loaded" example:"true"`

	// Generation of the committed result set, 0 before the first search
	Generation uint64 `json:"generation" example:"3"`
}

// Health writes a health check response for the current session.
func Health(c echo.Context, loaded bool, generation uint64) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:        "ok",
		ResultsLoaded: loaded,
		Generation:    generation,
	})
}

// SearchResults writes a 200 OK search response. The generation and source
// are also sent as headers so clients can discard superseded answers
// without decoding the body.
func SearchResults(c echo.Context, generation uint64, source string, results interface{}) error {
	h := c.Response().Header()
	h.Set(HeaderSearchGeneration, strconv.FormatUint(generation, 10))
	h.Set(HeaderResultSource, source)
	return c.JSON(http.StatusOK, results)
}

// Updated writes a 200 OK response for a request that changed session or
// preference state. The response must not be cached.
func Updated(c echo.Context, data interface{}) error {
	c.Response().Header().Set(headerCacheControl, "no-store")
	return c.JSON(http.StatusOK, data)
}
