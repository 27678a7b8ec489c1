package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/travelink/hotel-search/internal/domain"
)

const (
	DefaultBaseURL = "https://booking-com15.p.rapidapi.com/api/v1"
	DefaultAPIHost = "booking-com15.p.rapidapi.com"

	OpSearchDestination = "searchDestination"
	OpSearchHotels      = "searchHotels"

	headerAPIKey  = "x-rapidapi-key"
	headerAPIHost = "x-rapidapi-host"

	// maxErrorBody bounds how much of a failed response ends up in the error.
	maxErrorBody = 512
)

// Fixed searchHotels parameters.
const (
	searchTypeCity  = "CITY"
	unitsMetric     = "metric"
	temperatureUnit = "c"
	languageCode    = "fr"
	currencyCode    = "EUR"
)

// Client is a typed HTTP client for the Booking.com RapidAPI endpoints.
type Client struct {
	baseURL    string
	apiKey     string
	apiHost    string
	httpClient *http.Client
}

// NewClient creates a client. A nil httpClient uses http.DefaultClient;
// timeouts are expected to come from the request context.
func NewClient(baseURL, apiKey, apiHost string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if apiHost == "" {
		apiHost = DefaultAPIHost
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		apiHost:    apiHost,
		httpClient: httpClient,
	}
}

// HotelSearchParams are the caller-controlled searchHotels parameters.
type HotelSearchParams struct {
	DestID   string
	CheckIn  string
	CheckOut string
	Adults   int
	Rooms    int
}

func (p HotelSearchParams) values() url.Values {
	return url.Values{
		"dest_id":          {p.DestID},
		"search_type":      {searchTypeCity},
		"arrival_date":     {p.CheckIn},
		"departure_date":   {p.CheckOut},
		"adults":           {strconv.Itoa(p.Adults)},
		"room_qty":         {strconv.Itoa(p.Rooms)},
		"units":            {unitsMetric},
		"temperature_unit": {temperatureUnit},
		"languagecode":     {languageCode},
		"currency_code":    {currencyCode},
	}
}

// SearchDestination returns the destination candidates for a free-text query.
func (c *Client) SearchDestination(ctx context.Context, query string) ([]Destination, error) {
	var resp destinationResponse
	if err := c.doRequest(ctx, OpSearchDestination, "/hotels/searchDestination", url.Values{"query": {query}}, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// SearchHotels returns the raw hotel records for a destination id.
// Records are decoded one by one so a malformed record only drops itself.
// A response without a hotels list yields an empty page.
func (c *Client) SearchHotels(ctx context.Context, params HotelSearchParams) (HotelsPage, error) {
	var resp hotelsResponse
	if err := c.doRequest(ctx, OpSearchHotels, "/hotels/searchHotels", params.values(), &resp); err != nil {
		return HotelsPage{}, err
	}

	page := HotelsPage{Hotels: []RawHotel{}}
	if resp.Data == nil {
		return page, nil
	}
	for _, record := range resp.Data.Hotels {
		var h RawHotel
		if err := json.Unmarshal(record, &h); err != nil {
			page.Malformed++
			continue
		}
		page.Hotels = append(page.Hotels, h)
	}
	return page, nil
}

// doRequest performs an authenticated GET request and decodes the JSON response.
// Transport failures, 5xx and 429 come back as retryable upstream errors.
func (c *Client) doRequest(ctx context.Context, op, path string, params url.Values, dest any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.NewUpstreamError(op, 0, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set(headerAPIHost, c.apiHost)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		statusErr := fmt.Errorf("%w: %s", domain.ErrUpstreamUnavailable, strings.TrimSpace(string(body)))
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return domain.NewRetryableUpstreamError(op, resp.StatusCode, statusErr)
		}
		return domain.NewUpstreamError(op, resp.StatusCode, statusErr)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return domain.NewUpstreamError(op, resp.StatusCode, fmt.Errorf("decoding response: %w", err))
	}
	return nil
}

func transportError(op string, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return domain.NewRetryableUpstreamError(op, 0, fmt.Errorf("%w: %v", domain.ErrUpstreamTimeout, err))
	case errors.Is(err, context.Canceled):
		return domain.NewUpstreamError(op, 0, err)
	default:
		return domain.NewRetryableUpstreamError(op, 0, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err))
	}
}
