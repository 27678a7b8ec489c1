package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchQuery_Validate(t *testing.T) {
	// Helper to create a valid base query
	validQuery := func() *SearchQuery {
		return &SearchQuery{
			Destination: "Paris",
			CheckIn:     "2026-06-10",
			CheckOut:    "2026-06-12",
			Adults:      2,
			Rooms:       1,
		}
	}

	tests := []struct {
		name         string
		modify       func(*SearchQuery)
		wantErr      bool
		errContains  string
		isEmptyDest  bool
		isInvalidReq bool
	}{
		{
			name:   "valid query passes",
			modify: func(q *SearchQuery) {},
		},
		{
			name:   "dates are optional",
			modify: func(q *SearchQuery) { q.CheckIn, q.CheckOut = "", "" },
		},
		{
			name:        "empty destination fails",
			modify:      func(q *SearchQuery) { q.Destination = "" },
			wantErr:     true,
			isEmptyDest: true,
		},
		{
			name:        "whitespace destination fails",
			modify:      func(q *SearchQuery) { q.Destination = "   " },
			wantErr:     true,
			isEmptyDest: true,
		},
		{
			name:         "malformed check-in fails",
			modify:       func(q *SearchQuery) { q.CheckIn = "10/06/2026" },
			wantErr:      true,
			errContains:  "YYYY-MM-DD",
			isInvalidReq: true,
		},
		{
			name:         "impossible date fails",
			modify:       func(q *SearchQuery) { q.CheckOut = "2026-02-30" },
			wantErr:      true,
			errContains:  "not a valid date",
			isInvalidReq: true,
		},
		{
			name:         "check-out before check-in fails",
			modify:       func(q *SearchQuery) { q.CheckIn, q.CheckOut = "2026-06-12", "2026-06-10" },
			wantErr:      true,
			errContains:  "after checkIn",
			isInvalidReq: true,
		},
		{
			name:         "zero adults fails",
			modify:       func(q *SearchQuery) { q.Adults = 0 },
			wantErr:      true,
			errContains:  "adults",
			isInvalidReq: true,
		},
		{
			name:         "too many rooms fails",
			modify:       func(q *SearchQuery) { q.Rooms = MaxRooms + 1 },
			wantErr:      true,
			errContains:  "rooms",
			isInvalidReq: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuery()
			tt.modify(q)
			err := q.Validate()

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.errContains != "" {
				assert.Contains(t, err.Error(), tt.errContains)
			}
			assert.Equal(t, tt.isEmptyDest, errors.Is(err, ErrEmptyDestination))
			assert.Equal(t, tt.isInvalidReq, errors.Is(err, ErrInvalidRequest))
		})
	}
}

func TestSearchQuery_SetDefaults(t *testing.T) {
	q := SearchQuery{Destination: "  Rome  "}
	q.SetDefaults()

	assert.Equal(t, "Rome", q.Destination)
	assert.Equal(t, DefaultAdults, q.Adults)
	assert.Equal(t, DefaultRooms, q.Rooms)

	explicit := SearchQuery{Destination: "Rome", Adults: 4, Rooms: 2}
	explicit.SetDefaults()
	assert.Equal(t, 4, explicit.Adults)
	assert.Equal(t, 2, explicit.Rooms)
}

func TestSearchQuery_WithStayDates(t *testing.T) {
	now := time.Date(2026, 10, 18, 23, 30, 0, 0, time.FixedZone("UTC+2", 2*3600))

	t.Run("fills missing dates 7 and 9 days ahead in UTC", func(t *testing.T) {
		q := SearchQuery{Destination: "Paris"}.WithStayDates(now)
		assert.Equal(t, "2026-10-25", q.CheckIn)
		assert.Equal(t, "2026-10-27", q.CheckOut)
	})

	t.Run("check-in only gets a two night stay", func(t *testing.T) {
		q := SearchQuery{Destination: "Paris", CheckIn: "2026-12-30", Adults: 2, Rooms: 1}.WithStayDates(now)
		assert.Equal(t, "2026-12-30", q.CheckIn)
		assert.Equal(t, "2027-01-01", q.CheckOut)
		assert.NoError(t, q.Validate())
	})

	t.Run("check-in beyond the default check-out stays valid", func(t *testing.T) {
		q := SearchQuery{Destination: "Paris", CheckIn: "2026-11-20", Adults: 2, Rooms: 1}.WithStayDates(now)
		assert.Equal(t, "2026-11-22", q.CheckOut)
		assert.NoError(t, q.Validate())
	})

	t.Run("check-out only starts two nights earlier", func(t *testing.T) {
		q := SearchQuery{Destination: "Paris", CheckOut: "2026-12-05"}.WithStayDates(now)
		assert.Equal(t, "2026-12-03", q.CheckIn)
		assert.Equal(t, "2026-12-05", q.CheckOut)
	})

	t.Run("malformed dates are left for Validate", func(t *testing.T) {
		q := SearchQuery{Destination: "Paris", CheckIn: "soon"}.WithStayDates(now)
		assert.Equal(t, "soon", q.CheckIn)
		assert.Empty(t, q.CheckOut)
	})

	t.Run("keeps explicit dates", func(t *testing.T) {
		q := SearchQuery{Destination: "Paris", CheckIn: "2026-12-01", CheckOut: "2026-12-05"}.WithStayDates(now)
		assert.Equal(t, "2026-12-01", q.CheckIn)
		assert.Equal(t, "2026-12-05", q.CheckOut)
	})

	t.Run("does not modify the receiver", func(t *testing.T) {
		orig := SearchQuery{Destination: "Paris"}
		_ = orig.WithStayDates(now)
		assert.Empty(t, orig.CheckIn)
	})
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("checkIn", "")
	assert.NoError(t, err)
	assert.True(t, d.IsZero())

	d, err = ParseDate("checkIn", "2026-06-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("checkOut", "2026-02-30")
	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "checkOut", fieldErr.Field)
	assert.Contains(t, fieldErr.Message, "not a valid date")
	assert.True(t, errors.Is(err, ErrInvalidRequest))

	_, err = ParseDate("checkIn", "10/06/2026")
	require.True(t, errors.As(err, &fieldErr))
	assert.Contains(t, fieldErr.Message, "YYYY-MM-DD")
}

func TestSearchQuery_CacheKey(t *testing.T) {
	a := SearchQuery{Destination: "Paris", CheckIn: "2026-06-10", CheckOut: "2026-06-12", Adults: 2, Rooms: 1}
	b := SearchQuery{Destination: " paris ", CheckIn: "2026-06-10", CheckOut: "2026-06-12", Adults: 2, Rooms: 1}
	c := SearchQuery{Destination: "Paris", CheckIn: "2026-06-10", CheckOut: "2026-06-12", Adults: 3, Rooms: 1}

	assert.Equal(t, a.CacheKey(), b.CacheKey(), "destination is case and space insensitive")
	assert.NotEqual(t, a.CacheKey(), c.CacheKey())
}
