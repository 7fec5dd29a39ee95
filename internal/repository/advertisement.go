package repository

import (
	"context"
	"fmt"

	"github.com/danceapp/events-api/internal/domain"
	"github.com/danceapp/events-api/internal/repository/dao"
)

type AdvertisementDAO interface {
	FindAll(ctx context.Context, preds []domain.Predicate) ([]dao.Advertisement, error)
}

type AdvertisementRepository struct {
	dao AdvertisementDAO
}

func NewAdvertisementRepository(dao AdvertisementDAO) *AdvertisementRepository {
	return &AdvertisementRepository{
		dao: dao,
	}
}

func (r *AdvertisementRepository) FindAll(ctx context.Context, preds []domain.Predicate) ([]domain.Advertisement, error) {
	found, err := r.dao.FindAll(ctx, preds)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	ads := make([]domain.Advertisement, len(found))
	for i, a := range found {
		ads[i] = domain.Advertisement{
			UUID:        a.UUID,
			Title:       a.Title,
			Category:    a.Category,
			Description: a.Description,
			ImageURL:    a.ImageURL,
			LinkURL:     a.LinkURL,
			CreatedAt:   a.CreatedAt,
			UpdatedAt:   a.UpdatedAt,
		}
	}

	return ads, nil
}
