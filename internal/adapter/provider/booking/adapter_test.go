package booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelink/hotel-search/internal/domain"
	"github.com/travelink/hotel-search/internal/infrastructure/randutil"
	"github.com/travelink/hotel-search/internal/infrastructure/retry"
)

func testConfig(baseURL string) Config {
	return Config{
		BaseURL: baseURL,
		APIKey:  "test-key",
		APIHost: DefaultAPIHost,
		Timeout: time.Second,
		Retry: retry.Config{
			MaxAttempts:  3,
			InitialDelay: time.Millisecond,
			MaxDelay:     5 * time.Millisecond,
			Multiplier:   2,
		},
	}
}

func TestAdapter_Name(t *testing.T) {
	adapter := NewAdapter(DefaultConfig(), nil, nil, nil)
	assert.Equal(t, "booking_com", adapter.Name())
}

func TestAdapter_ResolveDestination(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantID  string
		wantErr error
	}{
		{"first candidate wins", `{"data": [{"dest_id": "-1456928"}, {"dest_id": "-2"}]}`, "-1456928", nil},
		{"numeric id", `{"data": [{"dest_id": 20088325}]}`, "20088325", nil},
		{"no candidates", `{"data": []}`, "", domain.ErrDestinationNotFound},
		{"missing data", `{"status": false}`, "", domain.ErrDestinationNotFound},
		{"empty id", `{"data": [{"dest_id": ""}]}`, "", domain.ErrDestinationNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			adapter := NewAdapter(testConfig(server.URL), server.Client(), nil, nil)
			id, err := adapter.ResolveDestination(context.Background(), "Paris")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestAdapter_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"data": [{"dest_id": "-1456928"}]}`))
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL), server.Client(), nil, nil)
	id, err := adapter.ResolveDestination(context.Background(), "Paris")

	require.NoError(t, err)
	assert.Equal(t, "-1456928", id)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestAdapter_DoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL), server.Client(), nil, nil)
	_, err := adapter.SearchHotels(context.Background(), "-1456928", domain.SearchQuery{Destination: "Paris", Adults: 2, Rooms: 1})

	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestAdapter_GivesUpAfterMaxAttempts(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL), server.Client(), nil, nil)
	_, err := adapter.ResolveDestination(context.Background(), "Paris")

	assert.True(t, domain.IsRetryable(err))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestAdapter_PerCallTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.Timeout = 10 * time.Millisecond
	cfg.Retry.MaxAttempts = 1

	adapter := NewAdapter(cfg, server.Client(), nil, nil)
	start := time.Now()
	_, err := adapter.ResolveDestination(context.Background(), "Paris")

	assert.ErrorIs(t, err, domain.ErrUpstreamTimeout)
	assert.Less(t, time.Since(start), time.Second)
}

func TestAdapter_SearchHotels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-06-10", r.URL.Query().Get("arrival_date"))
		assert.Equal(t, "3", r.URL.Query().Get("adults"))
		_, _ = w.Write([]byte(`{"data": {"hotels": [
			{"hotel_id": 11, "hotel_name": "Paradise Resort", "city": "Nice", "min_total_price": 310, "review_score": 9.0, "review_nr": 812, "distance": "2.4"},
			{"hotel_id": 12, "property_name": "Appartement Promenade", "accommodation_type_name": "Apartments", "city": "Nice"}
		]}}`))
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL), server.Client(), randutil.Fixed{F: 0.5, I: 10}, nil)
	listings, err := adapter.SearchHotels(context.Background(), "-1454990", domain.SearchQuery{
		Destination: "Nice",
		CheckIn:     "2026-06-10",
		CheckOut:    "2026-06-12",
		Adults:      3,
		Rooms:       1,
	})

	require.NoError(t, err)
	require.Len(t, listings, 2)

	assert.Equal(t, domain.ListingID("11"), listings[0].ID)
	assert.Equal(t, domain.CategoryResort, listings[0].Category)
	assert.Equal(t, 310.0, listings[0].Price)
	assert.Equal(t, 4.5, listings[0].Rating)
	assert.Equal(t, "2.4", listings[0].Distance)

	assert.Equal(t, "Appartement Promenade", listings[1].Name)
	assert.Equal(t, domain.CategoryApartment, listings[1].Category)
	assert.Equal(t, 60.0, listings[1].Price)
}

func TestAdapter_SearchHotels_EmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"hotels": []}}`))
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL), server.Client(), nil, nil)
	listings, err := adapter.SearchHotels(context.Background(), "-1", domain.SearchQuery{Destination: "X", Adults: 2, Rooms: 1})

	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestAdapter_SearchHotels_KeepsGoodRecordsAroundMalformedOnes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"hotels": [
			{"hotel_id": 1, "hotel_name": "Ok", "min_total_price": 120},
			{"hotel_id": 2, "hotel_name": "Bad", "currency_code": 978, "composite_price_breakdown": []}
		]}}`))
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL), server.Client(), randutil.Fixed{F: 0.5, I: 10}, nil)
	listings, err := adapter.SearchHotels(context.Background(), "-1", domain.SearchQuery{Destination: "X", Adults: 2, Rooms: 1})

	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, domain.ListingID("1"), listings[0].ID)
	assert.Equal(t, "Ok", listings[0].Name)
	assert.Equal(t, 120.0, listings[0].Price)
}
