package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danceapp/events-api/internal/domain"
	"github.com/danceapp/events-api/internal/filter"
)

func newEventService(repo *fakeEventRepo, bookings *fakeBookingRepo) *EventService {
	s := NewEventService(repo, bookings, 0.05)
	s.now = func() time.Time { return time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC) }
	return s
}

func TestEventService_GetEvent(t *testing.T) {
	repo := &fakeEventRepo{
		events: map[string]domain.Event{
			"sold":  {UUID: "sold", TotalTickets: 100},
			"fresh": {UUID: "fresh", TotalTickets: 40},
		},
		tickets: map[string]int{"sold": 37},
	}
	s := newEventService(repo, &fakeBookingRepo{})

	tests := []struct {
		id   string
		want int
	}{
		{id: "sold", want: 63},
		{id: "fresh", want: 40},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := s.GetEvent(context.Background(), tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.AvailableTickets)
			assert.Equal(t, tt.id, got.UUID)
		})
	}

	_, err := s.GetEvent(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventService_FilterEvents(t *testing.T) {
	t.Run("past date never reaches storage", func(t *testing.T) {
		repo := &fakeEventRepo{events: map[string]domain.Event{"a": {UUID: "a"}}}
		s := newEventService(repo, &fakeBookingRepo{})

		past := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
		events, err := s.FilterEvents(context.Background(), filter.EventParams{Date: &past, City: "lahore"})
		assert.ErrorIs(t, err, ErrDateInPast)
		assert.Empty(t, events)
		assert.Zero(t, repo.findAll)
	})

	t.Run("no date means from today on", func(t *testing.T) {
		repo := &fakeEventRepo{events: map[string]domain.Event{}}
		s := newEventService(repo, &fakeBookingRepo{})

		_, err := s.FilterEvents(context.Background(), filter.EventParams{})
		require.NoError(t, err)
		require.Len(t, repo.lastPreds, 1)
		assert.Equal(t, domain.OpRangeGte, repo.lastPreds[0].Op)
		assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), repo.lastPreds[0].Value)
	})

	t.Run("location uses the current radius", func(t *testing.T) {
		repo := &fakeEventRepo{events: map[string]domain.Event{}}
		s := newEventService(repo, &fakeBookingRepo{})
		s.SetProximityDegrees(0.2)

		_, err := s.FilterEvents(context.Background(), filter.EventParams{Location: &domain.GeoPoint{Lat: 1, Lon: 2}})
		require.NoError(t, err)

		var prox domain.Proximity
		for _, p := range repo.lastPreds {
			if p.Op == domain.OpWithinDistance {
				prox = p.Value.(domain.Proximity)
			}
		}
		assert.InDelta(t, 0.2, prox.Degrees, 1e-9)
	})
}

func TestEventService_GetBookingDetails(t *testing.T) {
	repo := &fakeEventRepo{events: map[string]domain.Event{
		"academy":  {UUID: "academy", Type: domain.EventTypeAcademy},
		"social":   {UUID: "social", Type: domain.EventTypeSocial},
		"concert":  {UUID: "concert", Type: domain.EventTypeConcert},
		"congress": {UUID: "congress", Type: domain.EventTypeCongress},
	}}

	for _, id := range []string{"academy", "social"} {
		t.Run(id+" is not bookable", func(t *testing.T) {
			bookings := &fakeBookingRepo{}
			s := newEventService(repo, bookings)

			_, err := s.GetBookingDetails(context.Background(), id)
			assert.ErrorIs(t, err, ErrBookingNotAllowed)
			assert.Empty(t, bookings.calls)
		})
	}

	t.Run("concert returns one pass only", func(t *testing.T) {
		bookings := &fakeBookingRepo{pass: &domain.Pass{UUID: "p"}}
		s := newEventService(repo, bookings)

		details, err := s.GetBookingDetails(context.Background(), "concert")
		require.NoError(t, err)
		assert.Equal(t, []string{"pass"}, bookings.calls)
		require.NotNil(t, details.Pass)
		assert.Nil(t, details.Passes)
		assert.Nil(t, details.Rooms)
		assert.Nil(t, details.Food)
	})

	t.Run("congress returns passes rooms and food", func(t *testing.T) {
		bookings := &fakeBookingRepo{
			passes: []domain.Pass{{UUID: "p1"}, {UUID: "p2"}},
			rooms:  []domain.Room{{UUID: "r1"}},
			food:   &domain.Food{UUID: "f"},
		}
		s := newEventService(repo, bookings)

		details, err := s.GetBookingDetails(context.Background(), "congress")
		require.NoError(t, err)
		assert.Equal(t, []string{"passes", "rooms", "food"}, bookings.calls)
		assert.Len(t, details.Passes, 2)
		assert.Len(t, details.Rooms, 1)
		assert.NotNil(t, details.Food)
		assert.Nil(t, details.Pass)
	})

	t.Run("unknown event", func(t *testing.T) {
		bookings := &fakeBookingRepo{}
		s := newEventService(repo, bookings)

		_, err := s.GetBookingDetails(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrEventNotFound)
		assert.Empty(t, bookings.calls)
	})
}
