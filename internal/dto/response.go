package dto

import (
	"time"

	"github.com/Suhaniisharma/hotel-booking-website/internal/models"
)

type HotelResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Location      string   `json:"location"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Rating        float64  `json:"rating"`
	PricePerNight float64  `json:"price_per_night"`
	Amenities     []string `json:"amenities"`
	ImageURL      string   `json:"image_url"`
}

// HotelSummary is the display subset joined onto each booking: enough to
// render the card on the bookings page, nothing more.
type HotelSummary struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	City     string `json:"city"`
	State    string `json:"state"`
	ImageURL string `json:"image_url"`
}

type BookingResponse struct {
	ID              uint                 `json:"id"`
	HotelID         string               `json:"hotel_id"`
	UserID          string               `json:"user_id"`
	CheckInDate     string               `json:"check_in_date"`
	CheckOutDate    string               `json:"check_out_date"`
	Guests          int                  `json:"guests"`
	Rooms           int                  `json:"rooms"`
	TotalPrice      float64              `json:"total_price"`
	SpecialRequests string               `json:"special_requests,omitempty"`
	Status          models.BookingStatus `json:"status"`
	CreatedAt       time.Time            `json:"created_at"`
	Hotel           *HotelSummary        `json:"hotel,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

const dateLayout = "2006-01-02"

func ToHotelResponse(h *models.Hotel) HotelResponse {
	return HotelResponse{
		ID:            h.ID,
		Name:          h.Name,
		Description:   h.Description,
		Location:      h.Location,
		City:          h.City,
		State:         h.State,
		Rating:        h.Rating,
		PricePerNight: h.PricePerNight,
		Amenities:     h.Amenities,
		ImageURL:      h.ImageURL,
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:              b.ID,
		HotelID:         b.HotelID,
		UserID:          b.UserID,
		CheckInDate:     b.CheckInDate.Format(dateLayout),
		CheckOutDate:    b.CheckOutDate.Format(dateLayout),
		Guests:          b.Guests,
		Rooms:           b.Rooms,
		TotalPrice:      b.TotalPrice,
		SpecialRequests: b.SpecialRequests,
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
	}
	if b.Hotel != nil {
		resp.Hotel = &HotelSummary{
			Name:     b.Hotel.Name,
			Location: b.Hotel.Location,
			City:     b.Hotel.City,
			State:    b.Hotel.State,
			ImageURL: b.Hotel.ImageURL,
		}
	}
	return resp
}
