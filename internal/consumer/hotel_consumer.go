package consumer

import (
	"encoding/json"
	"log"

	"github.com/Suhaniisharma/hotel-booking-website/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogConsumer syncs hotel records published by the upstream catalog
// feed into the local hotels table. Bookings only ever join against this
// local copy; rates are read from it fresh at submission time.
type CatalogConsumer struct {
	db *gorm.DB
}

func NewCatalogConsumer(db *gorm.DB) *CatalogConsumer {
	return &CatalogConsumer{db: db}
}

func (cc *CatalogConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			cc.handleMessage(msg)
		}
		log.Println("[CatalogConsumer] channel closed, stopping consumer")
	}()
}

func (cc *CatalogConsumer) handleMessage(msg amqp.Delivery) {
	var hotel models.Hotel
	if err := json.Unmarshal(msg.Body, &hotel); err != nil {
		log.Printf("[CatalogConsumer] failed to unmarshal: %v", err)
		msg.Nack(false, false)
		return
	}
	if hotel.ID == "" {
		log.Printf("[CatalogConsumer] dropping hotel message without id")
		msg.Nack(false, false)
		return
	}

	// Upsert keyed on the catalog's own ID, so repeated publishes of the
	// same hotel update in place. Existing bookings are untouched: their
	// totals are snapshots, only display fields follow the catalog.
	result := cc.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "location", "city", "state",
			"rating", "price_per_night", "amenities", "image_url", "updated_at",
		}),
	}).Create(&hotel)

	if result.Error != nil {
		log.Printf("[CatalogConsumer] failed to upsert hotel %s: %v", hotel.ID, result.Error)
		msg.Nack(false, true) // requeue
		return
	}

	log.Printf("[CatalogConsumer] synced hotel %s: %s", hotel.ID, hotel.Name)
	msg.Ack(false)
}
