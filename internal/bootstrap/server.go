package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/airreserve/api"
	"github.com/Domenick1991/airreserve/config"
	"github.com/Domenick1991/airreserve/internal/service/booking"
	"github.com/Domenick1991/airreserve/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, flightSvc flights.UseCase, bookingSvc booking.UseCase, log zerolog.Logger) error {
	if cfg.Logging.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(flightSvc, bookingSvc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Info().Str("address", cfg.HTTP.Address).Msg("http server started")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func NewRouter(flightSvc flights.UseCase, bookingSvc booking.UseCase) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), api.RequestID())

	api.NewFlightHandler(flightSvc).Register(router.Group("/flights"))
	api.NewBookingHandler(bookingSvc).Register(router.Group("/bookings"))

	return router
}
