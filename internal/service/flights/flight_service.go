package flights

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/rs/zerolog"
)

type UseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	Search(ctx context.Context, origin, destination string) ([]domain.Flight, error)
	Get(ctx context.Context, number string) (*domain.Flight, error)
	Origins(ctx context.Context) ([]string, error)
	Destinations(ctx context.Context) ([]string, error)
}

type Catalog interface {
	List() []domain.Flight
	Search(origin, destination string) []domain.Flight
	Resolve(number string) (domain.Flight, bool)
	Origins() []string
	Destinations() []string
}

type Cache interface {
	GetRoute(ctx context.Context, origin, destination string) ([]domain.Flight, error)
	SetRoute(ctx context.Context, origin, destination string, flights []domain.Flight) error
}

type Service struct {
	catalog Catalog
	cache   Cache
	log     zerolog.Logger
}

func NewService(catalog Catalog, cache Cache, log zerolog.Logger) *Service {
	return &Service{catalog: catalog, cache: cache, log: log}
}

func (s *Service) List(ctx context.Context) ([]domain.Flight, error) {
	return s.catalog.List(), nil
}

// Search returns the flights matching the route exactly, consulting the
// route cache first when one is configured.
func (s *Service) Search(ctx context.Context, origin, destination string) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetRoute(ctx, origin, destination); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights := s.catalog.Search(origin, destination)
	if s.cache != nil {
		if err := s.cache.SetRoute(ctx, origin, destination, flights); err != nil {
			s.log.Warn().Err(err).Str("origin", origin).Str("destination", destination).Msg("cache route search")
		}
	}
	return flights, nil
}

func (s *Service) Get(ctx context.Context, number string) (*domain.Flight, error) {
	f, ok := s.catalog.Resolve(number)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrFlightNotFound, number)
	}
	return &f, nil
}

func (s *Service) Origins(ctx context.Context) ([]string, error) {
	return s.catalog.Origins(), nil
}

func (s *Service) Destinations(ctx context.Context) ([]string, error) {
	return s.catalog.Destinations(), nil
}

var _ UseCase = (*Service)(nil)
