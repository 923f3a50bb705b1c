package repository

import (
	"context"

	"github.com/Suhaniisharma/hotel-booking-website/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByUserID(ctx context.Context, userID string) ([]models.Booking, error)
	FindByIDForUser(ctx context.Context, id uint, userID string) (*models.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

// FindByUserID returns the user's bookings, most recent first, each joined
// with its hotel for display. The join happens at read time so hotel
// name/location/image are never stale; only total_price is a stored
// snapshot.
func (r *bookingRepository) FindByUserID(ctx context.Context, userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Hotel").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindByIDForUser scopes the lookup to the owner, so one user can never
// read another user's booking by guessing IDs.
func (r *bookingRepository) FindByIDForUser(ctx context.Context, id uint, userID string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Hotel").
		Where("id = ? AND user_id = ?", id, userID).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
