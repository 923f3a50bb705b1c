package models

import "time"

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusPending   BookingStatus = "pending"
	StatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	UserID          string        `gorm:"not null" json:"user_id"`
	HotelID         string        `gorm:"type:uuid;not null" json:"hotel_id"`
	CheckInDate     time.Time     `gorm:"type:date;not null" json:"check_in_date"`
	CheckOutDate    time.Time     `gorm:"type:date;not null" json:"check_out_date"`
	Guests          int           `gorm:"not null" json:"guests"`
	Rooms           int           `gorm:"not null" json:"rooms"`
	TotalPrice      float64       `gorm:"not null" json:"total_price"`
	SpecialRequests string        `json:"special_requests,omitempty"`
	Status          BookingStatus `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	Hotel *Hotel `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
}
