package repository

import (
	"context"
	"fmt"

	"github.com/danceapp/events-api/internal/domain"
	"github.com/danceapp/events-api/internal/repository/dao"
)

var (
	ErrEventNotFound     = dao.ErrEventNotFound
	ErrFavouriteNotFound = dao.ErrFavouriteNotFound
)

type EventDAO interface {
	FindByUUID(ctx context.Context, id string) (dao.Event, error)
	FindType(ctx context.Context, id string) (string, error)
	FindAll(ctx context.Context, preds []domain.Predicate) ([]dao.Event, error)
	FirstImages(ctx context.Context, eventIDs []string) (map[string]dao.EventImage, error)
	CountTickets(ctx context.Context, eventID string) (int64, error)
}

type FavouriteDAO interface {
	Insert(ctx context.Context, userID, eventID string) (dao.FavouriteEvent, error)
	FindByUser(ctx context.Context, userID string, preds []domain.Predicate) ([]dao.FavouriteEvent, error)
	DeleteForUser(ctx context.Context, id, userID string) error
}

type EventRepository struct {
	dao    EventDAO
	favDAO FavouriteDAO
}

func NewEventRepository(dao EventDAO, favDAO FavouriteDAO) *EventRepository {
	return &EventRepository{
		dao:    dao,
		favDAO: favDAO,
	}
}

func (r *EventRepository) FindByUUID(ctx context.Context, id string) (domain.Event, error) {
	found, err := r.dao.FindByUUID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByUUID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) FindType(ctx context.Context, id string) (domain.EventType, error) {
	t, err := r.dao.FindType(ctx, id)
	if err != nil {
		return "", fmt.Errorf("r.dao.FindType -> %w", err)
	}

	return domain.EventType(t), nil
}

func (r *EventRepository) CountTickets(ctx context.Context, eventID string) (int, error) {
	count, err := r.dao.CountTickets(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountTickets -> %w", err)
	}

	return int(count), nil
}

func (r *EventRepository) FindAll(ctx context.Context, preds []domain.Predicate) ([]domain.Event, error) {
	found, err := r.dao.FindAll(ctx, preds)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, e := range found {
		events = append(events, r.daoToDomain(e))
	}

	return events, nil
}

func (r *EventRepository) AddFavourite(ctx context.Context, userID, eventID string) (domain.FavouriteEvent, error) {
	created, err := r.favDAO.Insert(ctx, userID, eventID)
	if err != nil {
		return domain.FavouriteEvent{}, fmt.Errorf("r.favDAO.Insert -> %w", err)
	}

	return r.favouriteDaoToDomain(created, nil), nil
}

// FindFavourites returns the user's favourites matching preds, each event
// carrying only its earliest image.
func (r *EventRepository) FindFavourites(ctx context.Context, userID string, preds []domain.Predicate) ([]domain.FavouriteEvent, error) {
	found, err := r.favDAO.FindByUser(ctx, userID, preds)
	if err != nil {
		return nil, fmt.Errorf("r.favDAO.FindByUser -> %w", err)
	}

	eventIDs := make([]string, 0, len(found))
	for _, f := range found {
		eventIDs = append(eventIDs, f.EventUUID)
	}

	images, err := r.dao.FirstImages(ctx, eventIDs)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FirstImages -> %w", err)
	}

	favs := make([]domain.FavouriteEvent, 0, len(found))
	for _, f := range found {
		var first []dao.EventImage
		if img, ok := images[f.EventUUID]; ok {
			first = []dao.EventImage{img}
		}
		favs = append(favs, r.favouriteDaoToDomain(f, first))
	}

	return favs, nil
}

func (r *EventRepository) RemoveFavourite(ctx context.Context, id, userID string) error {
	if err := r.favDAO.DeleteForUser(ctx, id, userID); err != nil {
		return fmt.Errorf("r.favDAO.DeleteForUser -> %w", err)
	}

	return nil
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	event := domain.Event{
		UUID:             e.UUID,
		Title:            e.Title,
		Type:             domain.EventType(e.Type),
		Style:            e.Style,
		Date:             domain.Day(e.Date),
		City:             e.City,
		Province:         e.Province,
		Address:          e.Address,
		Description:      e.Description,
		Location:         domain.GeoPoint{Lat: e.Latitude, Lon: e.Longitude},
		TotalTickets:     e.TotalTickets,
		Organizer:        e.Organizer,
		OrganizerDetails: e.OrganizerDetails,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	event.Images = r.imagesDaoToDomain(e.Images)

	return event
}

func (r *EventRepository) imagesDaoToDomain(images []dao.EventImage) []domain.EventImage {
	if len(images) == 0 {
		return nil
	}

	out := make([]domain.EventImage, len(images))
	for i, img := range images {
		out[i] = domain.EventImage{
			UUID:      img.UUID,
			EventUUID: img.EventUUID,
			ImageURL:  img.ImageURL,
			CreatedAt: img.CreatedAt,
		}
	}

	return out
}

func (r *EventRepository) favouriteDaoToDomain(f dao.FavouriteEvent, images []dao.EventImage) domain.FavouriteEvent {
	fav := domain.FavouriteEvent{
		UUID:      f.UUID,
		UserUUID:  f.UserUUID,
		EventUUID: f.EventUUID,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
	if f.Event.UUID != "" {
		event := r.daoToDomain(f.Event)
		event.Images = r.imagesDaoToDomain(images)
		fav.Event = &event
	}

	return fav
}
