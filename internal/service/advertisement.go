package service

import (
	"context"
	"fmt"
	"time"

	"github.com/danceapp/events-api/internal/cache"
	"github.com/danceapp/events-api/internal/domain"
	"github.com/danceapp/events-api/internal/filter"
)

type AdvertisementRepository interface {
	FindAll(ctx context.Context, preds []domain.Predicate) ([]domain.Advertisement, error)
}

type AdvertisementService struct {
	repo  AdvertisementRepository
	cache *cache.Cache
	ttl   time.Duration
}

// NewAdvertisementService builds the service. A nil cache disables caching.
func NewAdvertisementService(repo AdvertisementRepository, c *cache.Cache, ttl time.Duration) *AdvertisementService {
	if ttl <= 0 {
		ttl = time.Minute
	}

	return &AdvertisementService{
		repo:  repo,
		cache: c,
		ttl:   ttl,
	}
}

func (s *AdvertisementService) GetAdvertisements(ctx context.Context, params filter.AdvertisementParams) ([]domain.Advertisement, error) {
	load := func(ctx context.Context) ([]domain.Advertisement, error) {
		ads, err := s.repo.FindAll(ctx, filter.BuildAdvertisementPredicates(params))
		if err != nil {
			return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
		}
		return ads, nil
	}

	if s.cache == nil {
		return load(ctx)
	}

	return cache.GetOrSetJSON(ctx, s.cache, cache.KeyAdvertisements(params.Title, params.Category), s.ttl, load)
}
