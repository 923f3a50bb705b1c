package service

import (
	"testing"
	"time"

	"github.com/Suhaniisharma/hotel-booking-website/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() BookingRequest {
	return BookingRequest{
		HotelID:  "hotel-1",
		CheckIn:  "2024-05-01",
		CheckOut: "2024-05-03",
		Guests:   2,
		Rooms:    1,
	}
}

func TestValidateBooking_NilIdentity(t *testing.T) {
	// Otherwise-valid fields must not rescue an unauthenticated request.
	_, err := validateBooking(nil, validRequest())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestValidateBooking_MissingDates(t *testing.T) {
	identity := &auth.Identity{UserID: "user-1"}

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"no check-in", "", "2024-05-03"},
		{"no check-out", "2024-05-01", ""},
		{"both missing", "", ""},
		{"unparseable check-in", "01/05/2024", "2024-05-03"},
		{"unparseable check-out", "2024-05-01", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.CheckIn = tt.checkIn
			req.CheckOut = tt.checkOut
			_, err := validateBooking(identity, req)
			assert.ErrorIs(t, err, ErrMissingDates)
		})
	}
}

func TestValidateBooking_DateOrder(t *testing.T) {
	identity := &auth.Identity{UserID: "user-1"}

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"equal dates", "2024-05-01", "2024-05-01"},
		{"reversed", "2024-05-03", "2024-05-01"},
		{"reversed across months", "2024-06-01", "2024-05-28"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.CheckIn = tt.checkIn
			req.CheckOut = tt.checkOut
			_, err := validateBooking(identity, req)
			assert.ErrorIs(t, err, ErrInvalidDateOrder)
		})
	}
}

func TestValidateBooking_Quantities(t *testing.T) {
	identity := &auth.Identity{UserID: "user-1"}

	tests := []struct {
		name   string
		guests int
		rooms  int
	}{
		{"zero guests", 0, 1},
		{"zero rooms", 2, 0},
		{"negative guests", -1, 1},
		{"negative rooms", 2, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Guests = tt.guests
			req.Rooms = tt.rooms
			_, err := validateBooking(identity, req)
			assert.ErrorIs(t, err, ErrInvalidQuantity)
		})
	}
}

func TestValidateBooking_NormalizesDates(t *testing.T) {
	identity := &auth.Identity{UserID: "user-1"}

	validated, err := validateBooking(identity, validRequest())
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local), validated.CheckIn)
	assert.Equal(t, time.Date(2024, 5, 3, 0, 0, 0, 0, time.Local), validated.CheckOut)
	assert.Equal(t, "hotel-1", validated.HotelID)
	assert.Equal(t, 2, validated.Guests)
	assert.Equal(t, 1, validated.Rooms)
}
