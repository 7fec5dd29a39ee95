package repository

import (
	"context"
	"fmt"

	"github.com/danceapp/events-api/internal/domain"
	"github.com/danceapp/events-api/internal/repository/dao"
)

type BookingDAO interface {
	FindPass(ctx context.Context, eventID string) (*dao.Pass, error)
	FindPasses(ctx context.Context, eventID string) ([]dao.Pass, error)
	FindRooms(ctx context.Context, eventID string) ([]dao.Room, error)
	FindFood(ctx context.Context, eventID string) (*dao.Food, error)
}

type BookingRepository struct {
	dao BookingDAO
}

func NewBookingRepository(dao BookingDAO) *BookingRepository {
	return &BookingRepository{
		dao: dao,
	}
}

func (r *BookingRepository) FindPass(ctx context.Context, eventID string) (*domain.Pass, error) {
	found, err := r.dao.FindPass(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPass -> %w", err)
	}
	if found == nil {
		return nil, nil
	}

	pass := passDaoToDomain(*found)
	return &pass, nil
}

func (r *BookingRepository) FindPasses(ctx context.Context, eventID string) ([]domain.Pass, error) {
	found, err := r.dao.FindPasses(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPasses -> %w", err)
	}

	passes := make([]domain.Pass, len(found))
	for i, p := range found {
		passes[i] = passDaoToDomain(p)
	}

	return passes, nil
}

func (r *BookingRepository) FindRooms(ctx context.Context, eventID string) ([]domain.Room, error) {
	found, err := r.dao.FindRooms(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRooms -> %w", err)
	}

	rooms := make([]domain.Room, len(found))
	for i, room := range found {
		rooms[i] = domain.Room{
			UUID:      room.UUID,
			EventUUID: room.EventUUID,
			Name:      room.Name,
			Capacity:  room.Capacity,
			Price:     room.Price,
		}
	}

	return rooms, nil
}

func (r *BookingRepository) FindFood(ctx context.Context, eventID string) (*domain.Food, error) {
	found, err := r.dao.FindFood(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindFood -> %w", err)
	}
	if found == nil {
		return nil, nil
	}

	return &domain.Food{
		UUID:        found.UUID,
		EventUUID:   found.EventUUID,
		Description: found.Description,
		Price:       found.Price,
	}, nil
}

func passDaoToDomain(p dao.Pass) domain.Pass {
	return domain.Pass{
		UUID:        p.UUID,
		EventUUID:   p.EventUUID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
	}
}
