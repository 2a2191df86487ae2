package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/booking"
	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/config"
	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/database"
	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/handler"
	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/hub"
	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/mailer"
	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/middleware"
	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/notify"
	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/queue"
	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/repository"
	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/router"
	queue_publisher "github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/service"
)

func main() {
	// A local .env is a convenience for development; in production the
	// variables come from the real environment and the file is absent.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Migrate(ctx, db); err != nil {
		cancel()
		log.Fatalf("migrations: %v", err)
	}
	cancel()

	// Redis is optional: a nil client disables rate limiting and the
	// room-catalog cache without blocking startup.
	rdb := config.NewRedisClient()

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	bookings := repository.NewBookingRepo(db)
	rooms := repository.NewRoomRepo(db)

	svc := booking.NewService(bookings)
	push := hub.New()
	publisher := queue_publisher.New(cfg.AMQPURL)
	dispatcher := notify.New(push, publisher)

	// The approval-mail consumer runs for the life of the process and
	// reconnects on broker failures.  Without SMTP settings it degrades
	// to logging the rendered mail.
	var m mailer.Mailer
	if cfg.SMTPHost != "" {
		m = mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	} else {
		m = mailer.NewConsole()
	}
	go queue.StartApprovalConsumer(cfg.AMQPURL, m)

	e := echo.New()
	if rlCfg := config.LoadRateLimitConfig(); rlCfg.Enabled && rdb != nil {
		e.Use(middleware.NewTokenBucket(rlCfg, rdb))
	}
	var cache echo.MiddlewareFunc
	if rdb != nil {
		cache = middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	}

	authH := handler.NewAuthHandler(cfg, users, tokens)
	bookH := handler.NewBookingHandler(svc, dispatcher, bookings)
	hodH := handler.NewHODHandler(svc, dispatcher)
	roomH := &handler.RoomHandler{Rooms: rooms}
	eventsH := handler.NewEventsHandler(cfg.JWTSecret, push)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterBooking(e, bookH, roomH, cfg.JWTSecret, cache)
	router.RegisterHOD(e, hodH, cfg.JWTSecret)
	router.RegisterEvents(e, eventsH)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
