package main

import (
	"log"

	"github.com/Suhaniisharma/hotel-booking-website/config"
	"github.com/Suhaniisharma/hotel-booking-website/internal/consumer"
	"github.com/Suhaniisharma/hotel-booking-website/internal/handler"
	"github.com/Suhaniisharma/hotel-booking-website/internal/middleware"
	"github.com/Suhaniisharma/hotel-booking-website/internal/repository"
	"github.com/Suhaniisharma/hotel-booking-website/internal/service"
	"github.com/Suhaniisharma/hotel-booking-website/pkg/database"
	"github.com/Suhaniisharma/hotel-booking-website/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ consumer: sync hotels from the upstream catalog feed
	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		log.Fatalf("failed to start consuming: %v", err)
	}

	catalogConsumer := consumer.NewCatalogConsumer(db)
	catalogConsumer.Start(msgs)

	// Repositories
	hotelRepo := repository.NewHotelRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Services
	hotelSvc := service.NewHotelService(hotelRepo)
	bookingSvc := service.NewBookingService(bookingRepo, hotelRepo)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = handler.NewRequestValidator()
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(middleware.ResolveIdentity(cfg.JWTSecret))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "hotel-booking"})
	})

	handler.NewHotelHandler(hotelSvc).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)

	log.Printf("Hotel Booking API starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
