package repository

import (
	"context"

	"github.com/Suhaniisharma/hotel-booking-website/internal/models"
	"gorm.io/gorm"
)

type HotelRepository interface {
	Create(ctx context.Context, hotel *models.Hotel) error
	FindByID(ctx context.Context, id string) (*models.Hotel, error)
	FindAll(ctx context.Context, orderBy string) ([]models.Hotel, error)
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) Create(ctx context.Context, hotel *models.Hotel) error {
	return r.db.WithContext(ctx).Create(hotel).Error
}

func (r *hotelRepository) FindByID(ctx context.Context, id string) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := r.db.WithContext(ctx).First(&hotel, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}

// FindAll lists the catalog ordered by the given column descending.
// Only rating and price_per_night are accepted; anything else falls back
// to rating, the default ordering of the discovery page.
func (r *hotelRepository) FindAll(ctx context.Context, orderBy string) ([]models.Hotel, error) {
	if orderBy != "price_per_night" {
		orderBy = "rating"
	}

	var hotels []models.Hotel
	if err := r.db.WithContext(ctx).Order(orderBy + " DESC").Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}
