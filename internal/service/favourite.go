package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/danceapp/events-api/internal/domain"
	"github.com/danceapp/events-api/internal/filter"
	"github.com/danceapp/events-api/internal/pkg/notify"
	"github.com/danceapp/events-api/internal/repository"
)

var (
	ErrFavouriteNotFound = repository.ErrFavouriteNotFound
)

type FavouriteRepository interface {
	AddFavourite(ctx context.Context, userID, eventID string) (domain.FavouriteEvent, error)
	FindFavourites(ctx context.Context, userID string, preds []domain.Predicate) ([]domain.FavouriteEvent, error)
	RemoveFavourite(ctx context.Context, id, userID string) error
}

type FavouriteEventFinder interface {
	FindByUUID(ctx context.Context, id string) (domain.Event, error)
}

type FavouriteUserFinder interface {
	FindByUUID(ctx context.Context, id string) (domain.User, error)
}

type FavouriteService struct {
	repo     FavouriteRepository
	events   FavouriteEventFinder
	users    FavouriteUserFinder
	notifier notify.Notifier
	now      func() time.Time

	proximityDegrees func() float64
}

func NewFavouriteService(
	repo FavouriteRepository,
	events FavouriteEventFinder,
	users FavouriteUserFinder,
	notifier notify.Notifier,
	proximityDegrees func() float64,
) *FavouriteService {
	return &FavouriteService{
		repo:             repo,
		events:           events,
		users:            users,
		notifier:         notifier,
		now:              time.Now,
		proximityDegrees: proximityDegrees,
	}
}

// ListFavourites returns the user's saved events matching params. Past events
// stay listed: favourites are not restricted to upcoming dates.
func (s *FavouriteService) ListFavourites(ctx context.Context, userID string, params filter.EventParams) ([]domain.FavouriteEvent, error) {
	preds, err := filter.BuildEventPredicates(params, s.now(), filter.Options{
		ProximityDegrees: s.proximityDegrees(),
	})
	if err != nil {
		return nil, err
	}

	favs, err := s.repo.FindFavourites(ctx, userID, preds)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindFavourites -> %w", err)
	}

	return favs, nil
}

// AddFavourite saves an event for the user and pushes a confirmation to the
// user's device when a token is registered. Push failures are logged only.
func (s *FavouriteService) AddFavourite(ctx context.Context, userID, eventID string) (domain.FavouriteEvent, error) {
	event, err := s.events.FindByUUID(ctx, eventID)
	if err != nil {
		return domain.FavouriteEvent{}, fmt.Errorf("s.events.FindByUUID -> %w", err)
	}

	fav, err := s.repo.AddFavourite(ctx, userID, eventID)
	if err != nil {
		return domain.FavouriteEvent{}, fmt.Errorf("s.repo.AddFavourite -> %w", err)
	}

	s.notifySaved(ctx, userID, event)

	return fav, nil
}

func (s *FavouriteService) RemoveFavourite(ctx context.Context, id, userID string) error {
	if err := s.repo.RemoveFavourite(ctx, id, userID); err != nil {
		return fmt.Errorf("s.repo.RemoveFavourite -> %w", err)
	}

	return nil
}

func (s *FavouriteService) notifySaved(ctx context.Context, userID string, event domain.Event) {
	if s.notifier == nil {
		return
	}

	user, err := s.users.FindByUUID(ctx, userID)
	if err != nil {
		zap.L().Warn("favourite push skipped", zap.String("user", userID), zap.Error(err))
		return
	}
	if user.FCMToken == "" {
		return
	}

	err = s.notifier.Send(ctx, user.FCMToken, notify.Message{
		Title: "Added to favourites",
		Body:  event.Title,
		Data:  map[string]string{"eventUuid": event.UUID},
	})
	if err != nil {
		zap.L().Warn("favourite push failed", zap.String("user", userID), zap.Error(err))
	}
}
