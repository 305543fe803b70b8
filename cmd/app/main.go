package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Antonov7512/drinkkiosk/config"
	"github.com/Antonov7512/drinkkiosk/internal/bootstrap"
	"github.com/Antonov7512/drinkkiosk/internal/images"
	"github.com/Antonov7512/drinkkiosk/internal/kafka"
	"github.com/Antonov7512/drinkkiosk/internal/service/catalogsvc"
	"github.com/Antonov7512/drinkkiosk/internal/service/guest"
	"github.com/Antonov7512/drinkkiosk/internal/store"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var catalogStore store.CatalogStore
	switch cfg.Store.Backend {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Store.Postgres.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()
		pg := store.NewPGStore(pool)
		if err := pg.Init(ctx); err != nil {
			log.Fatalf("init postgres store: %v", err)
		}
		catalogStore = pg
	case "redis":
		catalogStore = store.NewRedisStore(cfg.Store.Redis)
	default:
		catalogStore = store.NewFileStore(cfg.Store.File.Path)
	}

	var producer *kafka.Producer
	catalogOpts := []catalogsvc.ServiceOption{}
	guestOpts := []guest.ServiceOption{}
	if len(cfg.Kafka.Brokers) > 0 {
		producer = kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		catalogOpts = append(catalogOpts,
			catalogsvc.WithBookingEvents(producer, cfg.Kafka.BookingTopic),
			catalogsvc.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
		guestOpts = append(guestOpts, guest.WithNotificationsTopic(cfg.Kafka.NotificationsTopic))
	}

	catalogService := catalogsvc.NewService(catalogStore, catalogOpts...)
	if err := catalogService.Load(ctx); err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	var guestProducer guest.Producer
	if producer != nil {
		guestProducer = producer
	}
	guestService := guest.NewService(catalogService, guestProducer, cfg.Kafka.BookingTopic, guestOpts...)

	var imageStore images.Store
	if cfg.Uploads.Dir != "" {
		imageStore = images.NewDirStore(cfg.Uploads.Dir, cfg.Uploads.BaseURL, cfg.Uploads.MaxDimension)
	} else {
		imageStore = images.NewDataURIStore()
	}

	if err := bootstrap.Run(ctx, cfg, catalogService, guestService, imageStore); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
