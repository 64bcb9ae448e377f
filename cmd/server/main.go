package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/spot-rental/internal/config"
	"github.com/iliyamo/spot-rental/internal/database"
	"github.com/iliyamo/spot-rental/internal/handler"
	"github.com/iliyamo/spot-rental/internal/queue"
	"github.com/iliyamo/spot-rental/internal/repository"
	"github.com/iliyamo/spot-rental/internal/router"
	"github.com/iliyamo/spot-rental/internal/storage"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	signer, err := storage.NewS3Signer(context.Background(), cfg.AWSRegion, cfg.AWSBucket,
		time.Duration(cfg.UploadTTLMin)*time.Minute)
	if err != nil {
		log.Fatalf("init upload signer: %v", err)
	}

	rdb := config.NewRedisClient() // nil disables cache and rate limiting

	users := repository.NewUserRepo(db)
	spots := repository.NewSpotRepo(db)
	favorites := repository.NewFavoriteRepo(db)
	reviews := repository.NewReviewRepo(db)
	bookings := repository.NewBookingRepo(db)
	images := repository.NewImageRepo(db)
	amenities := repository.NewAmenityRepo(db)
	districts := repository.NewDistrictRepo(db)

	h := router.Handlers{
		Users:    handler.NewUserHandler(cfg, users),
		Session:  handler.NewSessionHandler(cfg, users),
		Spots:    handler.NewSpotHandler(spots, favorites),
		Reviews:  handler.NewReviewHandler(reviews, spots),
		Bookings: handler.NewBookingHandler(bookings, spots),
		Images:   handler.NewImageHandler(images, spots),
		Refs:     handler.NewReferenceHandler(amenities, districts),
		Storage:  handler.NewStorageHandler(signer),
	}

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAPI(e, cfg, rdb, users, h)

	// Booking event consumer runs for the life of the process and keeps
	// reconnecting on broker failures.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
