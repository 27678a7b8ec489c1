package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Booking.com endpoint paths served by BookingServer.
const (
	DestinationPath = "/hotels/searchDestination"
	HotelsPath      = "/hotels/searchHotels"
)

// BookingServer is a fake Booking.com RapidAPI upstream. It answers the two
// endpoints with the testdata fixtures until told to fail.
type BookingServer struct {
	*httptest.Server

	destinations []byte
	hotels       []byte

	mu      sync.Mutex
	status  int
	calls   map[string]int
	queries []string
}

// NewBookingServer starts a fake upstream serving booking_destination.json
// and booking_hotels.json. The server is closed when the test ends.
func NewBookingServer(t *testing.T) *BookingServer {
	t.Helper()

	b := &BookingServer{
		destinations: LoadTestJSON(t, "booking_destination.json"),
		hotels:       LoadTestJSON(t, "booking_hotels.json"),
		status:       http.StatusOK,
		calls:        make(map[string]int),
	}
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.Close)
	return b
}

func (b *BookingServer) serve(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.calls[r.URL.Path]++
	if r.URL.Path == DestinationPath {
		b.queries = append(b.queries, r.URL.Query().Get("query"))
	}
	status := b.status
	b.mu.Unlock()

	if status != http.StatusOK {
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case DestinationPath:
		_, _ = w.Write(b.destinations)
	case HotelsPath:
		_, _ = w.Write(b.hotels)
	default:
		http.NotFound(w, r)
	}
}

// FailWith makes every following request answer with status.
// http.StatusOK restores the fixtures.
func (b *BookingServer) FailWith(status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.status = status
}

// Calls returns how many requests hit path.
func (b *BookingServer) Calls(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[path]
}

// DestinationQueries returns the destination texts looked up so far.
func (b *BookingServer) DestinationQueries() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.queries))
	copy(out, b.queries)
	return out
}
