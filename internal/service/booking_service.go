package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Suhaniisharma/hotel-booking-website/internal/auth"
	"github.com/Suhaniisharma/hotel-booking-website/internal/models"
	"github.com/Suhaniisharma/hotel-booking-website/internal/pricing"
	"github.com/Suhaniisharma/hotel-booking-website/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrUnauthenticated  = errors.New("you must be signed in to make a booking")
	ErrMissingDates     = errors.New("check-in and check-out dates are required")
	ErrInvalidDateOrder = errors.New("check-out date must be after check-in date")
	ErrInvalidQuantity  = errors.New("guests and rooms must be at least 1")
	ErrHotelNotFound    = errors.New("hotel not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingFailed    = errors.New("booking could not be saved")
)

type BookingService interface {
	CreateBooking(ctx context.Context, identity *auth.Identity, req BookingRequest) (*models.Booking, error)
	ListBookings(ctx context.Context, userID string) ([]models.Booking, error)
	GetBooking(ctx context.Context, id uint, userID string) (*models.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	hotelRepo   repository.HotelRepository
}

func NewBookingService(bookingRepo repository.BookingRepository, hotelRepo repository.HotelRepository) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		hotelRepo:   hotelRepo,
	}
}

// CreateBooking runs one booking attempt: validate, resolve the hotel,
// price, persist. The nightly rate is fetched fresh here rather than taken
// from the request, so the stored total reflects the rate at submission
// time — that total is a snapshot and is never recomputed afterwards.
func (s *bookingService) CreateBooking(ctx context.Context, identity *auth.Identity, req BookingRequest) (*models.Booking, error) {
	validated, err := validateBooking(identity, req)
	if err != nil {
		return nil, err
	}

	hotel, err := s.hotelRepo.FindByID(ctx, validated.HotelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrBookingFailed, err)
	}

	total := pricing.Total(validated.CheckIn, validated.CheckOut, hotel.PricePerNight, validated.Rooms)

	booking := &models.Booking{
		UserID:          identity.UserID,
		HotelID:         hotel.ID,
		CheckInDate:     validated.CheckIn,
		CheckOutDate:    validated.CheckOut,
		Guests:          validated.Guests,
		Rooms:           validated.Rooms,
		TotalPrice:      total,
		SpecialRequests: validated.SpecialRequests,
		Status:          models.StatusConfirmed,
	}

	// No retry on storage failure: the attempt either commits whole or
	// leaves nothing behind, and the caller may resubmit.
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBookingFailed, err)
	}

	booking.Hotel = hotel
	return booking, nil
}

// ListBookings does not authenticate: the route gate already did. It only
// reads, so calling it twice without intervening writes returns the same
// sequence.
func (s *bookingService) ListBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.bookingRepo.FindByUserID(ctx, userID)
}

func (s *bookingService) GetBooking(ctx context.Context, id uint, userID string) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}
