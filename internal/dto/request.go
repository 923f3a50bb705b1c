package dto

type CreateHotelRequest struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Rating        float64  `json:"rating" validate:"gte=0,lte=5"`
	PricePerNight float64  `json:"price_per_night" validate:"gte=0"`
	Amenities     []string `json:"amenities"`
	ImageURL      string   `json:"image_url"`
}

// CreateBookingRequest carries the raw form values. Dates stay strings
// here: presence and ordering are the booking validator's call, so it can
// answer with the right error kind instead of a generic bind failure.
// Guests and rooms are pointers for the same reason: an absent count gets
// the default of 1, while an explicit 0 must reach the validator and be
// rejected.
type CreateBookingRequest struct {
	CheckInDate     string `json:"check_in_date"`
	CheckOutDate    string `json:"check_out_date"`
	Guests          *int   `json:"guests"`
	Rooms           *int   `json:"rooms"`
	SpecialRequests string `json:"special_requests"`
}
