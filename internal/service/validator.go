package service

import (
	"time"

	"github.com/Suhaniisharma/hotel-booking-website/internal/auth"
)

const dateLayout = "2006-01-02"

// BookingRequest is the raw user submission: dates as date-only strings,
// quantities as the caller provided them (the transport layer applies the
// default of 1 for absent quantities, not the validator).
type BookingRequest struct {
	HotelID         string
	CheckIn         string
	CheckOut        string
	Guests          int
	Rooms           int
	SpecialRequests string
}

// validatedBooking is the normalized form handed to pricing and
// persistence: dates parsed, quantities known-positive.
type validatedBooking struct {
	HotelID         string
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	Rooms           int
	SpecialRequests string
}

// validateBooking enforces every precondition that needs no I/O. Identity
// must be the one resolved for the submitting request, not a copy cached
// at page load, so a session that expired in between is rejected here.
func validateBooking(identity *auth.Identity, req BookingRequest) (*validatedBooking, error) {
	if identity == nil {
		return nil, ErrUnauthenticated
	}

	if req.CheckIn == "" || req.CheckOut == "" {
		return nil, ErrMissingDates
	}
	checkIn, err := time.ParseInLocation(dateLayout, req.CheckIn, time.Local)
	if err != nil {
		return nil, ErrMissingDates
	}
	checkOut, err := time.ParseInLocation(dateLayout, req.CheckOut, time.Local)
	if err != nil {
		return nil, ErrMissingDates
	}

	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateOrder
	}

	if req.Guests < 1 || req.Rooms < 1 {
		return nil, ErrInvalidQuantity
	}

	return &validatedBooking{
		HotelID:         req.HotelID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          req.Guests,
		Rooms:           req.Rooms,
		SpecialRequests: req.SpecialRequests,
	}, nil
}
