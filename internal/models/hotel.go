package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Hotel is a catalog record. The catalog is owned by the upstream catalog
// feed; this service only reads it (plus the admin create endpoint and the
// RabbitMQ sync upserts).
type Hotel struct {
	ID            string                      `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string                      `gorm:"not null" json:"name"`
	Description   string                      `json:"description"`
	Location      string                      `json:"location"`
	City          string                      `json:"city"`
	State         string                      `json:"state"`
	Rating        float64                     `json:"rating"`
	PricePerNight float64                     `gorm:"not null;check:price_per_night >= 0" json:"price_per_night"`
	Amenities     datatypes.JSONSlice[string] `json:"amenities"`
	ImageURL      string                      `json:"image_url"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

func (h *Hotel) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
