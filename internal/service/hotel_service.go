package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Suhaniisharma/hotel-booking-website/internal/models"
	"github.com/Suhaniisharma/hotel-booking-website/internal/repository"
	"gorm.io/gorm"
)

type HotelService interface {
	CreateHotel(ctx context.Context, hotel *models.Hotel) error
	GetHotel(ctx context.Context, id string) (*models.Hotel, error)
	ListHotels(ctx context.Context, orderBy string) ([]models.Hotel, error)
}

type hotelService struct {
	repo repository.HotelRepository
}

func NewHotelService(repo repository.HotelRepository) HotelService {
	return &hotelService{repo: repo}
}

func (s *hotelService) CreateHotel(ctx context.Context, hotel *models.Hotel) error {
	if err := s.repo.Create(ctx, hotel); err != nil {
		return fmt.Errorf("create hotel: %w", err)
	}
	return nil
}

func (s *hotelService) GetHotel(ctx context.Context, id string) (*models.Hotel, error) {
	hotel, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return hotel, nil
}

func (s *hotelService) ListHotels(ctx context.Context, orderBy string) ([]models.Hotel, error) {
	return s.repo.FindAll(ctx, orderBy)
}
