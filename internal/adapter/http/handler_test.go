package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelink/hotel-search/internal/adapter/http/response"
	"github.com/travelink/hotel-search/internal/adapter/storage/prefstore"
	"github.com/travelink/hotel-search/internal/domain"
	"github.com/travelink/hotel-search/internal/usecase"
)

// stubSearcher is a HotelSearchUseCase returning the fallback catalog.
type stubSearcher struct {
	calls int
}

func (s *stubSearcher) Search(_ context.Context, q domain.SearchQuery) domain.SearchResult {
	s.calls++
	return domain.NewFallbackResult(q, usecase.FallbackCatalog(q.Destination), domain.ReasonResolutionFailed)
}

// flakyStore fails every write when failWrites is set.
type flakyStore struct {
	*prefstore.MemoryStore
	failWrites bool
}

func (s *flakyStore) Set(ctx context.Context, key, value string) error {
	if s.failWrites {
		return errors.New("read-only filesystem")
	}
	return s.MemoryStore.Set(ctx, key, value)
}

type testEnv struct {
	e        *echo.Echo
	searcher *stubSearcher
	store    *flakyStore
}

// setupTestHandler creates a test Echo instance wired to a real session.
func setupTestHandler(t *testing.T) *testEnv {
	t.Helper()

	searcher := &stubSearcher{}
	store := &flakyStore{MemoryStore: prefstore.NewMemoryStore(nil)}

	prefs := usecase.NewPreferenceService(context.Background(), store, nil)
	favorites := usecase.NewFavoritesService(prefs, nil)
	session := usecase.NewSession(searcher, favorites, "", nil)

	e := echo.New()
	RegisterRoutes(e, NewHotelHandler(session, favorites, prefs, nil))
	return &testEnv{e: e, searcher: searcher, store: store}
}

// makeRequest is a helper to make test requests.
func makeRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (env *testEnv) search(t *testing.T, destination string) *SearchResponseDTO {
	t.Helper()
	rec := makeRequest(env.e, http.MethodPost, "/api/v1/hotels/search", map[string]interface{}{"destination": destination})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[SearchResponseDTO](t, rec)
	return &resp
}

func hotelIDs(hotels []HotelDTO) []string {
	ids := make([]string, len(hotels))
	for i, h := range hotels {
		ids[i] = h.ID
	}
	return ids
}

// =====================================================
// Search
// =====================================================

func TestSearchHotels_Success(t *testing.T) {
	env := setupTestHandler(t)

	resp := env.search(t, "  Lisbonne ")

	assert.Equal(t, "Lisbonne", resp.SearchCriteria.Destination)
	assert.Equal(t, domain.DefaultAdults, resp.SearchCriteria.Adults)
	assert.Equal(t, domain.DefaultRooms, resp.SearchCriteria.Rooms)

	assert.Equal(t, 8, resp.Metadata.TotalResults)
	assert.Equal(t, "fallback", resp.Metadata.Source)
	assert.Equal(t, "resolution_failed", resp.Metadata.FallbackReason)
	assert.Equal(t, uint64(1), resp.Metadata.Generation)
	assert.False(t, resp.Metadata.Stale)

	require.Len(t, resp.Hotels, 8)
	assert.Equal(t, "Grand Hôtel Lisbonne", resp.Hotels[0].Name)
	assert.Equal(t, PriceDTO{Amount: 120, Currency: "EUR"}, resp.Hotels[0].Price)
	assert.False(t, resp.Hotels[0].Favorite)
}

func TestSearchHotels_EmptyDestination(t *testing.T) {
	env := setupTestHandler(t)

	for _, destination := range []string{"", "   "} {
		rec := makeRequest(env.e, http.MethodPost, "/api/v1/hotels/search", map[string]interface{}{"destination": destination})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode[response.ErrorDetail](t, rec)
		assert.Equal(t, response.CodeEmptyDestination, body.Code)
		require.NotNil(t, body.Notification)
		assert.Equal(t, "warning", body.Notification.Type)
		assert.Equal(t, "Veuillez entrer une destination", body.Notification.Message)
	}

	assert.Zero(t, env.searcher.calls, "no search for an empty destination")
}

func TestSearchHotels_InvalidBody(t *testing.T) {
	env := setupTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/hotels/search", bytes.NewBufferString("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, response.CodeInvalidRequest, decode[response.ErrorDetail](t, rec).Code)
}

func TestSearchHotels_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		body      map[string]interface{}
		wantField string
	}{
		{
			name:      "malformed check-in",
			body:      map[string]interface{}{"destination": "Paris", "checkIn": "10/06/2026"},
			wantField: "checkIn",
		},
		{
			name:      "check-out before check-in",
			body:      map[string]interface{}{"destination": "Paris", "checkIn": "2026-06-12", "checkOut": "2026-06-10"},
			wantField: "checkOut",
		},
		{
			name:      "negative adults",
			body:      map[string]interface{}{"destination": "Paris", "adults": -1},
			wantField: "adults",
		},
		{
			name:      "too many rooms",
			body:      map[string]interface{}{"destination": "Paris", "rooms": 31},
			wantField: "rooms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestHandler(t)

			rec := makeRequest(env.e, http.MethodPost, "/api/v1/hotels/search", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decode[response.ErrorDetail](t, rec)
			assert.Equal(t, response.CodeValidationError, body.Code)
			assert.Contains(t, body.Details, tt.wantField)
			assert.Zero(t, env.searcher.calls)
		})
	}
}

func TestSearchHotels_ResultHeaders(t *testing.T) {
	env := setupTestHandler(t)

	rec := makeRequest(env.e, http.MethodPost, "/api/v1/hotels/search", map[string]string{"destination": "Paris"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get(response.HeaderSearchGeneration))
	assert.Equal(t, "fallback", rec.Header().Get(response.HeaderResultSource))

	rec = makeRequest(env.e, http.MethodPost, "/api/v1/hotels/search", map[string]string{"destination": "Rome"})
	assert.Equal(t, "2", rec.Header().Get(response.HeaderSearchGeneration))
}

func TestSearchHotels_CancelledRequest(t *testing.T) {
	env := setupTestHandler(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	body, _ := json.Marshal(map[string]string{"destination": "Paris"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hotels/search", bytes.NewBuffer(body)).WithContext(ctx)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, response.MsgRequestCancelled, decode[response.ErrorDetail](t, rec).Message)
}

// =====================================================
// Display
// =====================================================

func (env *testEnv) display(req DisplayRequest) *httptest.ResponseRecorder {
	return makeRequest(env.e, http.MethodPut, "/api/v1/hotels/display", req)
}

func TestSetDisplay_FilterAndSort(t *testing.T) {
	env := setupTestHandler(t)
	env.search(t, "Paris")

	tests := []struct {
		name      string
		req       DisplayRequest
		wantIDs   []string
		wantTotal int
	}{
		{name: "no selection keeps result order", req: DisplayRequest{}, wantIDs: []string{"1", "2", "3", "4", "5", "6", "7", "8"}, wantTotal: 8},
		{name: "apartments up to 100", req: DisplayRequest{Category: "apartment", PriceRange: "0-100"}, wantIDs: []string{"3", "7"}, wantTotal: 8},
		{name: "resorts by price descending", req: DisplayRequest{Category: "resort", Sort: "price-desc"}, wantIDs: []string{"8", "4"}, wantTotal: 8},
		{name: "case is normalized", req: DisplayRequest{Category: "VILLA"}, wantIDs: []string{"5"}, wantTotal: 8},
		{name: "open-ended band", req: DisplayRequest{PriceRange: "200-", Sort: "price-asc"}, wantIDs: []string{"5", "8"}, wantTotal: 8},
		{name: "closest first", req: DisplayRequest{Sort: "distance"}, wantIDs: []string{"6", "1", "3", "2", "7", "5", "4", "8"}, wantTotal: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.display(tt.req)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

			resp := decode[DisplayResponseDTO](t, rec)
			assert.Equal(t, tt.wantIDs, hotelIDs(resp.Hotels))
			assert.Equal(t, len(tt.wantIDs), resp.Count)
			assert.Equal(t, tt.wantTotal, resp.Total)
		})
	}
}

func TestSetDisplay_EchoesFilters(t *testing.T) {
	env := setupTestHandler(t)
	env.search(t, "Paris")

	rec := env.display(DisplayRequest{Category: "apartment", PriceRange: "50-100", Sort: "rating"})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[DisplayResponseDTO](t, rec)
	assert.Equal(t, FiltersDTO{Category: "apartment", PriceRange: "50-100", Sort: "rating"}, resp.Filters)
}

func TestSetDisplay_ValidationErrors(t *testing.T) {
	env := setupTestHandler(t)

	tests := []struct {
		name      string
		req       DisplayRequest
		wantField string
	}{
		{name: "unknown category", req: DisplayRequest{Category: "castle"}, wantField: "category"},
		{name: "price not numeric", req: DisplayRequest{PriceRange: "abc"}, wantField: "priceRange"},
		{name: "price bounds reversed", req: DisplayRequest{PriceRange: "200-100"}, wantField: "priceRange"},
		{name: "unknown sort", req: DisplayRequest{Sort: "name"}, wantField: "sort"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.display(tt.req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decode[response.ErrorDetail](t, rec).Details, tt.wantField)
		})
	}
}

func TestSetDisplay_InvalidBody(t *testing.T) {
	env := setupTestHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/hotels/display", bytes.NewBufferString(`{"category":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, response.MsgInvalidRequestBody, decode[response.ErrorDetail](t, rec).Message)
}

func TestListHotels_IsReadOnly(t *testing.T) {
	env := setupTestHandler(t)
	env.search(t, "Paris")

	require.Equal(t, http.StatusOK, env.display(DisplayRequest{Category: "resort", Sort: "price-desc"}).Code)

	// Query parameters are not a way to change the selection.
	rec := makeRequest(env.e, http.MethodGet, "/api/v1/hotels?category=villa&sort=price-asc", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[DisplayResponseDTO](t, rec)
	assert.Equal(t, []string{"8", "4"}, hotelIDs(resp.Hotels))
	assert.Equal(t, FiltersDTO{Category: "resort", Sort: "price-desc"}, resp.Filters)

	again := decode[DisplayResponseDTO](t, makeRequest(env.e, http.MethodGet, "/api/v1/hotels", nil))
	assert.Equal(t, resp, again, "repeated reads return the same view")
}

func TestSetDisplay_NewSearchResetsSelection(t *testing.T) {
	env := setupTestHandler(t)
	env.search(t, "Paris")

	rec := env.display(DisplayRequest{Category: "villa"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decode[DisplayResponseDTO](t, rec).Count)

	resp := env.search(t, "Rome")
	assert.Len(t, resp.Hotels, 8, "search returns the full result set")

	view := decode[DisplayResponseDTO](t, makeRequest(env.e, http.MethodGet, "/api/v1/hotels", nil))
	assert.Equal(t, 8, view.Count)
	assert.Equal(t, "all", view.Filters.Category)
}

func TestGetHotel(t *testing.T) {
	env := setupTestHandler(t)
	env.search(t, "Paris")

	rec := makeRequest(env.e, http.MethodGet, "/api/v1/hotels/4", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	hotel := decode[HotelDTO](t, rec)
	assert.Equal(t, "Paris Beach Resort", hotel.Name)
	assert.Equal(t, "resort", hotel.Type)
	assert.Equal(t, "3.5", hotel.DistanceKm)

	rec = makeRequest(env.e, http.MethodGet, "/api/v1/hotels/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, response.CodeNotFound, decode[response.ErrorDetail](t, rec).Code)
}

// =====================================================
// Favorites
// =====================================================

func TestToggleFavorite_Flow(t *testing.T) {
	env := setupTestHandler(t)
	env.search(t, "Paris")

	rec := makeRequest(env.e, http.MethodPost, "/api/v1/favorites/3/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	added := decode[ToggleResponseDTO](t, rec)
	assert.True(t, added.Favorite)
	assert.Equal(t, NotificationDTO{Type: "success", Message: "Ajouté aux favoris"}, added.Notification)
	assert.Equal(t, []string{"3"}, added.Favorites)

	stored, ok, err := env.store.Get(context.Background(), domain.FavoritesKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `["3"]`, stored)

	rec = env.display(DisplayRequest{Category: "apartment"})
	view := decode[DisplayResponseDTO](t, rec)
	require.Len(t, view.Hotels, 2)
	assert.True(t, view.Hotels[0].Favorite)
	assert.False(t, view.Hotels[1].Favorite)
	assert.Equal(t, []string{"3", "7"}, hotelIDs(view.Hotels), "favorites do not change order")

	rec = makeRequest(env.e, http.MethodGet, "/api/v1/favorites", nil)
	list := decode[FavoritesResponseDTO](t, rec)
	assert.Equal(t, []string{"3"}, list.IDs)
	assert.Equal(t, 1, list.Count)
	assert.Equal(t, []string{"3"}, hotelIDs(list.Hotels))

	rec = makeRequest(env.e, http.MethodPost, "/api/v1/favorites/3/toggle", nil)
	removed := decode[ToggleResponseDTO](t, rec)
	assert.False(t, removed.Favorite)
	assert.Equal(t, NotificationDTO{Type: "info", Message: "Retiré des favoris"}, removed.Notification)
	assert.Empty(t, removed.Favorites)
}

func TestToggleFavorite_IDNotInResults(t *testing.T) {
	env := setupTestHandler(t)
	env.search(t, "Paris")

	rec := makeRequest(env.e, http.MethodPost, "/api/v1/favorites/hotel-42/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = makeRequest(env.e, http.MethodGet, "/api/v1/favorites", nil)
	list := decode[FavoritesResponseDTO](t, rec)
	assert.Equal(t, []string{"hotel-42"}, list.IDs)
	assert.Empty(t, list.Hotels, "only favorites present in the result set are listed")
}

func TestToggleFavorite_PersistFailure(t *testing.T) {
	env := setupTestHandler(t)
	env.store.failWrites = true

	rec := makeRequest(env.e, http.MethodPost, "/api/v1/favorites/1/toggle", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, response.CodeStorageError, decode[response.ErrorDetail](t, rec).Code)

	rec = makeRequest(env.e, http.MethodGet, "/api/v1/favorites", nil)
	assert.Zero(t, decode[FavoritesResponseDTO](t, rec).Count)
}

// =====================================================
// Theme
// =====================================================

func TestTheme_Flow(t *testing.T) {
	env := setupTestHandler(t)

	rec := makeRequest(env.e, http.MethodGet, "/api/v1/preferences/theme", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "light", decode[ThemeResponseDTO](t, rec).Theme)

	rec = makeRequest(env.e, http.MethodPut, "/api/v1/preferences/theme", map[string]string{"theme": "dark"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dark", decode[ThemeResponseDTO](t, rec).Theme)

	stored, _, err := env.store.Get(context.Background(), domain.ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", stored)

	rec = makeRequest(env.e, http.MethodPost, "/api/v1/preferences/theme/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "light", decode[ThemeResponseDTO](t, rec).Theme)
}

func TestSetTheme_Invalid(t *testing.T) {
	env := setupTestHandler(t)

	rec := makeRequest(env.e, http.MethodPut, "/api/v1/preferences/theme", map[string]string{"theme": "sepia"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[response.ErrorDetail](t, rec).Details, "theme")
}

func TestToggleTheme_PersistFailure(t *testing.T) {
	env := setupTestHandler(t)
	env.store.failWrites = true

	rec := makeRequest(env.e, http.MethodPost, "/api/v1/preferences/theme/toggle", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = makeRequest(env.e, http.MethodGet, "/api/v1/preferences/theme", nil)
	assert.Equal(t, "light", decode[ThemeResponseDTO](t, rec).Theme)
}

// =====================================================
// Misc
// =====================================================

func TestListDestinations(t *testing.T) {
	env := setupTestHandler(t)

	rec := makeRequest(env.e, http.MethodGet, "/api/v1/destinations", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[DestinationsResponseDTO](t, rec)
	require.Len(t, resp.Destinations, 8)
	assert.Equal(t, "Paris", resp.Destinations[0].Name)
}

func TestHealth(t *testing.T) {
	env := setupTestHandler(t)

	rec := makeRequest(env.e, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	health := decode[response.HealthResponse](t, rec)
	assert.Equal(t, "ok", health.Status)
	assert.False(t, health.ResultsLoaded)
	assert.Zero(t, health.Generation)

	env.search(t, "Paris")

	health = decode[response.HealthResponse](t, makeRequest(env.e, http.MethodGet, "/health", nil))
	assert.True(t, health.ResultsLoaded)
	assert.Equal(t, uint64(1), health.Generation)
}
