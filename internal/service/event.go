package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/danceapp/events-api/internal/domain"
	"github.com/danceapp/events-api/internal/filter"
	"github.com/danceapp/events-api/internal/repository"
)

var (
	ErrEventNotFound     = repository.ErrEventNotFound
	ErrBookingNotAllowed = errors.New("booking is allowed for concert and congress only")
	ErrDateInPast        = filter.ErrDateInPast
)

type EventRepository interface {
	FindByUUID(ctx context.Context, id string) (domain.Event, error)
	FindType(ctx context.Context, id string) (domain.EventType, error)
	FindAll(ctx context.Context, preds []domain.Predicate) ([]domain.Event, error)
	CountTickets(ctx context.Context, eventID string) (int, error)
}

type BookingRepository interface {
	FindPass(ctx context.Context, eventID string) (*domain.Pass, error)
	FindPasses(ctx context.Context, eventID string) ([]domain.Pass, error)
	FindRooms(ctx context.Context, eventID string) ([]domain.Room, error)
	FindFood(ctx context.Context, eventID string) (*domain.Food, error)
}

type EventService struct {
	repo     EventRepository
	bookings BookingRepository
	now      func() time.Time

	mu        sync.RWMutex
	proximity float64
}

func NewEventService(repo EventRepository, bookings BookingRepository, proximityDegrees float64) *EventService {
	return &EventService{
		repo:      repo,
		bookings:  bookings,
		now:       time.Now,
		proximity: proximityDegrees,
	}
}

// SetProximityDegrees changes the radius used by location filters.
func (s *EventService) SetProximityDegrees(degrees float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.proximity = degrees
}

// ProximityDegrees returns the radius currently used by location filters.
func (s *EventService) ProximityDegrees() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.proximity
}

// GetEvent returns an event with its currently available tickets.
func (s *EventService) GetEvent(ctx context.Context, id string) (domain.EventDetails, error) {
	event, err := s.repo.FindByUUID(ctx, id)
	if err != nil {
		return domain.EventDetails{}, fmt.Errorf("s.repo.FindByUUID -> %w", err)
	}

	sold, err := s.repo.CountTickets(ctx, id)
	if err != nil {
		return domain.EventDetails{}, fmt.Errorf("s.repo.CountTickets -> %w", err)
	}

	return domain.EventDetails{
		Event:            event,
		AvailableTickets: event.TotalTickets - sold,
	}, nil
}

// FilterEvents lists upcoming events matching params. A date before today
// yields ErrDateInPast without querying storage.
func (s *EventService) FilterEvents(ctx context.Context, params filter.EventParams) ([]domain.Event, error) {
	preds, err := filter.BuildEventPredicates(params, s.now(), filter.Options{
		UpcomingOnly:     true,
		ProximityDegrees: s.ProximityDegrees(),
	})
	if err != nil {
		return nil, err
	}

	events, err := s.repo.FindAll(ctx, preds)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return events, nil
}

func (s *EventService) GetBookingDetails(ctx context.Context, eventID string) (domain.BookingDetails, error) {
	eventType, err := s.repo.FindType(ctx, eventID)
	if err != nil {
		return domain.BookingDetails{}, fmt.Errorf("s.repo.FindType -> %w", err)
	}

	if !eventType.Bookable() {
		return domain.BookingDetails{}, ErrBookingNotAllowed
	}

	details := domain.BookingDetails{EventType: eventType}

	if eventType == domain.EventTypeConcert {
		details.Pass, err = s.bookings.FindPass(ctx, eventID)
		if err != nil {
			return domain.BookingDetails{}, fmt.Errorf("s.bookings.FindPass -> %w", err)
		}

		return details, nil
	}

	details.Passes, err = s.bookings.FindPasses(ctx, eventID)
	if err != nil {
		return domain.BookingDetails{}, fmt.Errorf("s.bookings.FindPasses -> %w", err)
	}

	details.Rooms, err = s.bookings.FindRooms(ctx, eventID)
	if err != nil {
		return domain.BookingDetails{}, fmt.Errorf("s.bookings.FindRooms -> %w", err)
	}

	details.Food, err = s.bookings.FindFood(ctx, eventID)
	if err != nil {
		return domain.BookingDetails{}, fmt.Errorf("s.bookings.FindFood -> %w", err)
	}

	return details, nil
}
