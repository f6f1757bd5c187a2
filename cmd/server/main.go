package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/oliFYP/RingReady/internal/blob"
	"github.com/oliFYP/RingReady/internal/config"
	"github.com/oliFYP/RingReady/internal/database"
	"github.com/oliFYP/RingReady/internal/handler"
	"github.com/oliFYP/RingReady/internal/middleware"
	"github.com/oliFYP/RingReady/internal/queue"
	"github.com/oliFYP/RingReady/internal/repository"
	"github.com/oliFYP/RingReady/internal/router"
	queue_publisher "github.com/oliFYP/RingReady/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: open failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("database: %v", err)
	}

	blobs, err := blob.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	eventRepo := repository.NewEventRepo(db)

	authHandler := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
	eventHandler := handler.NewEventHandler(eventRepo)
	organizerHandler := handler.NewOrganizerHandler(eventRepo, userRepo, blobs)
	ticketHandler := handler.NewTicketHandler(eventRepo)
	profileHandler := handler.NewProfileHandler(userRepo)

	e := echo.New()
	e.HideBanner = true

	// redis-backed response cache and rate limiting on the public
	// catalog list; both degrade to pass-through when redis is
	// unreachable.  The detail route is left uncached so post-purchase
	// re-fetches always see the current roster and counters.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis: unavailable, cache and rate limiting disabled")
	}
	publicMW := []echo.MiddlewareFunc{
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
	}

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterPublic(e, eventHandler, publicMW...)
	router.RegisterOrganizer(e, organizerHandler, cfg.JWTSecret)
	router.RegisterAttendee(e, ticketHandler, profileHandler, cfg.JWTSecret)

	// stored poster images are served directly from the blob root
	e.Static("/uploads", blobs.Root())

	// background consumer appends issued tickets to logs/tickets.log;
	// it runs its own reconnect loop for the life of the process
	queue_publisher.SetBrokerURL(cfg.AMQPURL)
	go func() {
		if err := queue.StartTicketConsumer(cfg.AMQPURL); err != nil {
			log.Printf("ticket-consumer: stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
