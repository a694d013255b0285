package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airreserve/config"
	"github.com/Domenick1991/airreserve/internal/bootstrap"
	"github.com/Domenick1991/airreserve/internal/cache"
	"github.com/Domenick1991/airreserve/internal/catalog"
	"github.com/Domenick1991/airreserve/internal/kafka"
	"github.com/Domenick1991/airreserve/internal/service/booking"
	"github.com/Domenick1991/airreserve/internal/service/flights"
	"github.com/Domenick1991/airreserve/internal/store"
	"github.com/Domenick1991/airreserve/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	logg := logger.New(cfg.Logging.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat := catalog.Seed()

	st, err := store.Open(cfg.Storage.BookingsFile, cat, logg)
	if err != nil {
		logg.Warn().Err(err).Str("path", cfg.Storage.BookingsFile).Msg("starting with empty booking store")
	}

	var routeCache flights.Cache
	if cfg.Redis.Addr != "" {
		routeCache = cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Redis.RouteCacheTTL)*time.Second)
	}

	var producer booking.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaProducer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer kafkaProducer.Close()
		producer = kafkaProducer
	}

	flightService := flights.NewService(cat, routeCache, logg)
	bookingService := booking.NewService(
		st,
		cat,
		producer,
		cfg.Kafka.BookingEventsTopic,
		logg,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	if err := bootstrap.Run(ctx, cfg, flightService, bookingService, logg); err != nil {
		logg.Fatal().Err(err).Msg("server error")
	}
}
