package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Suhaniisharma/hotel-booking-website/internal/dto"
	"github.com/Suhaniisharma/hotel-booking-website/internal/middleware"
	"github.com/Suhaniisharma/hotel-booking-website/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/hotels/:id/bookings", h.CreateBooking)

	// Listing and detail sit behind the route gate; creation does not —
	// the validator checks identity at submit time so an expired session
	// surfaces as a booking error with the form state intact.
	bookings := e.Group("/api/v1/bookings", middleware.RequireAuth)
	bookings.GET("", h.ListBookings)
	bookings.GET("/:id", h.GetBooking)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	// Defaults belong to the caller, not the validator: absent counts mean
	// one guest, one room. Anything provided — an explicit 0 included —
	// goes to the validator as-is.
	guests, rooms := 1, 1
	if req.Guests != nil {
		guests = *req.Guests
	}
	if req.Rooms != nil {
		rooms = *req.Rooms
	}

	booking, err := h.svc.CreateBooking(
		c.Request().Context(),
		middleware.CurrentIdentity(c),
		service.BookingRequest{
			HotelID:         c.Param("id"),
			CheckIn:         req.CheckInDate,
			CheckOut:        req.CheckOutDate,
			Guests:          guests,
			Rooms:           rooms,
			SpecialRequests: req.SpecialRequests,
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthenticated):
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		case errors.Is(err, service.ErrMissingDates),
			errors.Is(err, service.ErrInvalidDateOrder),
			errors.Is(err, service.ErrInvalidQuantity):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrHotelNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrBookingFailed):
			return echo.NewHTTPError(http.StatusBadGateway, service.ErrBookingFailed.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	identity := middleware.CurrentIdentity(c)

	bookings, err := h.svc.ListBookings(c.Request().Context(), identity.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	identity := middleware.CurrentIdentity(c)

	booking, err := h.svc.GetBooking(c.Request().Context(), uint(id), identity.UserID)
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}
