//go:build integration

package integration

import (
	"testing"

	"github.com/Suhaniisharma/hotel-booking-website/internal/auth"
	"github.com/Suhaniisharma/hotel-booking-website/internal/models"
	"github.com/Suhaniisharma/hotel-booking-website/internal/repository"
	"github.com/Suhaniisharma/hotel-booking-website/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestHotel(t *testing.T, name string, pricePerNight float64) *models.Hotel {
	t.Helper()
	hotel := &models.Hotel{
		ID:            uuid.NewString(),
		Name:          name,
		Location:      "Lake Pichola",
		City:          "Udaipur",
		State:         "Rajasthan",
		Rating:        4.8,
		PricePerNight: pricePerNight,
		Amenities:     []string{"pool", "spa"},
		ImageURL:      "https://example.com/taj.jpg",
	}
	require.NoError(t, testDB.Create(hotel).Error)
	return hotel
}

func newBookingService() service.BookingService {
	hotelRepo := repository.NewHotelRepository(testDB)
	bookingRepo := repository.NewBookingRepository(testDB)
	return service.NewBookingService(bookingRepo, hotelRepo)
}

func TestCreateAndListBooking(t *testing.T) {
	cleanTables()
	hotel := createTestHotel(t, "Taj Lake Palace", 5000)
	svc := newBookingService()
	identity := &auth.Identity{UserID: "user-001"}

	booking, err := svc.CreateBooking(t.Context(), identity, service.BookingRequest{
		HotelID:         hotel.ID,
		CheckIn:         "2024-05-01",
		CheckOut:        "2024-05-03",
		Guests:          2,
		Rooms:           1,
		SpecialRequests: "lake view please",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, booking.Status)
	assert.Equal(t, 10000.0, booking.TotalPrice)

	listed, err := svc.ListBookings(t.Context(), "user-001")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, booking.ID, listed[0].ID)
	assert.Equal(t, "lake view please", listed[0].SpecialRequests)

	// Read-time join carries the display fields
	require.NotNil(t, listed[0].Hotel)
	assert.Equal(t, "Taj Lake Palace", listed[0].Hotel.Name)
	assert.Equal(t, "Udaipur", listed[0].Hotel.City)
	assert.Equal(t, "Rajasthan", listed[0].Hotel.State)
}

func TestTotalPriceIsASnapshot(t *testing.T) {
	cleanTables()
	hotel := createTestHotel(t, "Taj Lake Palace", 5000)
	svc := newBookingService()
	identity := &auth.Identity{UserID: "user-001"}

	booking, err := svc.CreateBooking(t.Context(), identity, service.BookingRequest{
		HotelID:  hotel.ID,
		CheckIn:  "2024-05-01",
		CheckOut: "2024-05-03",
		Guests:   2,
		Rooms:    1,
	})
	require.NoError(t, err)
	require.Equal(t, 10000.0, booking.TotalPrice)

	// Rate hike after the stay was booked
	require.NoError(t, testDB.Model(&models.Hotel{}).
		Where("id = ?", hotel.ID).
		Update("price_per_night", 9000).Error)

	listed, err := svc.ListBookings(t.Context(), "user-001")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 10000.0, listed[0].TotalPrice, "stored total must not follow the rate")
	assert.Equal(t, 9000.0, listed[0].Hotel.PricePerNight, "display data follows the catalog")

	// New bookings price against the new rate
	fresh, err := svc.CreateBooking(t.Context(), identity, service.BookingRequest{
		HotelID:  hotel.ID,
		CheckIn:  "2024-06-01",
		CheckOut: "2024-06-03",
		Guests:   2,
		Rooms:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, 18000.0, fresh.TotalPrice)
}

func TestListBookings_MostRecentFirst(t *testing.T) {
	cleanTables()
	hotel := createTestHotel(t, "Taj Lake Palace", 5000)
	svc := newBookingService()
	identity := &auth.Identity{UserID: "user-001"}

	dates := [][2]string{
		{"2024-05-01", "2024-05-03"},
		{"2024-06-01", "2024-06-02"},
		{"2024-07-10", "2024-07-15"},
	}
	var ids []uint
	for _, d := range dates {
		b, err := svc.CreateBooking(t.Context(), identity, service.BookingRequest{
			HotelID:  hotel.ID,
			CheckIn:  d[0],
			CheckOut: d[1],
			Guests:   1,
			Rooms:    1,
		})
		require.NoError(t, err)
		ids = append(ids, b.ID)
	}

	listed, err := svc.ListBookings(t.Context(), "user-001")
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, ids[2], listed[0].ID)
	assert.Equal(t, ids[1], listed[1].ID)
	assert.Equal(t, ids[0], listed[2].ID)
}

func TestListBookings_EmptyForFreshUser(t *testing.T) {
	cleanTables()
	svc := newBookingService()

	listed, err := svc.ListBookings(t.Context(), "user-without-bookings")
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestCreateBooking_UnknownHotel(t *testing.T) {
	cleanTables()
	svc := newBookingService()
	identity := &auth.Identity{UserID: "user-001"}

	_, err := svc.CreateBooking(t.Context(), identity, service.BookingRequest{
		HotelID:  uuid.NewString(),
		CheckIn:  "2024-05-01",
		CheckOut: "2024-05-03",
		Guests:   2,
		Rooms:    1,
	})
	assert.ErrorIs(t, err, service.ErrHotelNotFound)
}
