package handler

import (
	"errors"
	"net/http"

	"github.com/Suhaniisharma/hotel-booking-website/internal/dto"
	"github.com/Suhaniisharma/hotel-booking-website/internal/models"
	"github.com/Suhaniisharma/hotel-booking-website/internal/service"
	"github.com/labstack/echo/v4"
)

type HotelHandler struct {
	svc service.HotelService
}

func NewHotelHandler(svc service.HotelService) *HotelHandler {
	return &HotelHandler{svc: svc}
}

func (h *HotelHandler) RegisterRoutes(e *echo.Echo) {
	hotels := e.Group("/api/v1/hotels")
	hotels.POST("", h.CreateHotel)
	hotels.GET("", h.ListHotels)
	hotels.GET("/:id", h.GetHotel)
}

func (h *HotelHandler) CreateHotel(c echo.Context) error {
	var req dto.CreateHotelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	hotel := &models.Hotel{
		Name:          req.Name,
		Description:   req.Description,
		Location:      req.Location,
		City:          req.City,
		State:         req.State,
		Rating:        req.Rating,
		PricePerNight: req.PricePerNight,
		Amenities:     req.Amenities,
		ImageURL:      req.ImageURL,
	}

	if err := h.svc.CreateHotel(c.Request().Context(), hotel); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.ToHotelResponse(hotel))
}

func (h *HotelHandler) GetHotel(c echo.Context) error {
	hotel, err := h.svc.GetHotel(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrHotelNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "hotel not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToHotelResponse(hotel))
}

func (h *HotelHandler) ListHotels(c echo.Context) error {
	hotels, err := h.svc.ListHotels(c.Request().Context(), c.QueryParam("order_by"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.HotelResponse, len(hotels))
	for i, hotel := range hotels {
		resp[i] = dto.ToHotelResponse(&hotel)
	}

	return c.JSON(http.StatusOK, resp)
}
