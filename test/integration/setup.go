// Package integration provides helpers and integration tests for the hotel search system.
// Integration tests verify that components work together correctly, including
// HTTP handlers, middleware, use cases, the Booking.com adapter and the
// preference stores.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/travelink/hotel-search/internal/adapter/http"
	"github.com/travelink/hotel-search/internal/adapter/http/middleware"
	"github.com/travelink/hotel-search/internal/adapter/http/response"
	"github.com/travelink/hotel-search/internal/adapter/provider/booking"
	"github.com/travelink/hotel-search/internal/adapter/storage/prefstore"
	"github.com/travelink/hotel-search/internal/domain"
	"github.com/travelink/hotel-search/internal/infrastructure/logger"
	"github.com/travelink/hotel-search/internal/infrastructure/randutil"
	"github.com/travelink/hotel-search/internal/infrastructure/retry"
	"github.com/travelink/hotel-search/internal/infrastructure/timeutil"
	"github.com/travelink/hotel-search/internal/usecase"
)

// TestServer wraps an Echo instance wired like cmd/server and provides
// helper methods for integration testing.
type TestServer struct {
	Echo      *echo.Echo
	Handler   *httpAdapter.HotelHandler
	Session   *usecase.Session
	Favorites *usecase.FavoritesService
	Prefs     *usecase.PreferenceService
	Store     domain.PreferenceStore
}

// Options configures NewTestServerWithOptions. Zero values select an
// in-memory store, no cache, the real clock and a 2s search timeout.
type Options struct {
	Provider      domain.HotelProvider
	Store         domain.PreferenceStore
	Cache         *usecase.ResultCache
	Clock         timeutil.Clock
	SearchTimeout time.Duration
	Destination   string
}

// NewTestServer creates a test server around provider with default options.
func NewTestServer(t *testing.T, provider domain.HotelProvider) *TestServer {
	return NewTestServerWithOptions(t, Options{Provider: provider})
}

// NewTestServerWithOptions creates a test server with the full middleware chain.
func NewTestServerWithOptions(t *testing.T, opts Options) *TestServer {
	t.Helper()

	if opts.Store == nil {
		opts.Store = prefstore.NewMemoryStore(nil)
	}
	if opts.SearchTimeout == 0 {
		opts.SearchTimeout = 2 * time.Second
	}
	log := logger.Nop()

	searcher := usecase.NewHotelSearchUseCase(opts.Provider, opts.Cache, opts.Clock, log, &usecase.SearchConfig{
		Timeout: opts.SearchTimeout,
	})
	prefs := usecase.NewPreferenceService(context.Background(), opts.Store, log)
	favorites := usecase.NewFavoritesService(prefs, log)
	session := usecase.NewSession(searcher, favorites, opts.Destination, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	if err := middleware.Setup(e, log); err != nil {
		t.Fatalf("middleware setup: %v", err)
	}

	handler := httpAdapter.NewHotelHandler(session, favorites, prefs, log)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:      e,
		Handler:   handler,
		Session:   session,
		Favorites: favorites,
		Prefs:     prefs,
		Store:     opts.Store,
	}
}

// NewBookingProvider builds the real Booking.com adapter against baseURL
// with fast retries and deterministic gap filling.
func NewBookingProvider(baseURL string, client *http.Client) *booking.Adapter {
	return booking.NewAdapter(booking.Config{
		BaseURL: baseURL,
		APIKey:  "integration-key",
		APIHost: booking.DefaultAPIHost,
		Timeout: time.Second,
		Retry: retry.Config{
			MaxAttempts:  2,
			InitialDelay: time.Millisecond,
			MaxDelay:     5 * time.Millisecond,
			Multiplier:   2,
		},
	}, client, randutil.NewSeeded(1), logger.Nop())
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
	Headers     map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a search.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/hotels/search",
		Body:   body,
	})
}

// DisplayRequest changes the display selection.
func (ts *TestServer) DisplayRequest(body DisplayRequestBody) Response {
	return ts.Do(Request{
		Method: http.MethodPut,
		Path:   "/api/v1/hotels/display",
		Body:   body,
	})
}

// CurrentViewRequest reads the current result set under the current selection.
func (ts *TestServer) CurrentViewRequest() Response {
	return ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/hotels"})
}

// ToggleFavoriteRequest toggles one favorite.
func (ts *TestServer) ToggleFavoriteRequest(id string) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/favorites/" + id + "/toggle",
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResponse parses the response body as a SearchResponseDTO.
func (r Response) ParseSearchResponse() (*httpAdapter.SearchResponseDTO, error) {
	var resp httpAdapter.SearchResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseDisplayResponse parses the response body as a DisplayResponseDTO.
func (r Response) ParseDisplayResponse() (*httpAdapter.DisplayResponseDTO, error) {
	var resp httpAdapter.DisplayResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseToggleResponse parses the response body as a ToggleResponseDTO.
func (r Response) ParseToggleResponse() (*httpAdapter.ToggleResponseDTO, error) {
	var resp httpAdapter.ToggleResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body as an error envelope.
func (r Response) ParseError() (*response.ErrorDetail, error) {
	var errResp response.ErrorDetail
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return &errResp, nil
}

// DisplayRequestBody is a helper struct for building display selections.
type DisplayRequestBody struct {
	Category   string `json:"category,omitempty"`
	PriceRange string `json:"priceRange,omitempty"`
	Sort       string `json:"sort,omitempty"`
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Destination string `json:"destination"`
	CheckIn     string `json:"checkIn,omitempty"`
	CheckOut    string `json:"checkOut,omitempty"`
	Adults      int    `json:"adults,omitempty"`
	Rooms       int    `json:"rooms,omitempty"`
}

// DefaultSearchRequest returns a valid search request body for testing.
// Dates are left empty so the stay defaults apply.
func DefaultSearchRequest(destination string) SearchRequestBody {
	return SearchRequestBody{
		Destination: destination,
		Adults:      2,
		Rooms:       1,
	}
}

// HotelIDs returns the ids of hotels in order.
func HotelIDs(hotels []httpAdapter.HotelDTO) []string {
	ids := make([]string, len(hotels))
	for i, h := range hotels {
		ids[i] = h.ID
	}
	return ids
}
