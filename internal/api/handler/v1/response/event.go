package response

import (
	"time"

	"github.com/danceapp/events-api/internal/domain"
)

const dateLayout = "2006-01-02"

type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type EventImage struct {
	ImageURL string `json:"image_url"`
}

// Event is the full event as returned by the single event fetch.
type Event struct {
	UUID             string       `json:"uuid"`
	Title            string       `json:"title"`
	Type             string       `json:"type"`
	Style            string       `json:"style"`
	Date             string       `json:"date"`
	City             string       `json:"city"`
	Province         string       `json:"province"`
	Address          string       `json:"address"`
	Description      string       `json:"description"`
	Location         Location     `json:"location"`
	TotalTickets     int          `json:"total_tickets"`
	Organizer        string       `json:"organizer"`
	OrganizerDetails string       `json:"organizer_details"`
	AvailableTickets int          `json:"availableTickets"`
	Images           []EventImage `json:"event_images"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

// EventSummary is an event in a listing. Ticket totals, organizer data and
// timestamps are left out.
type EventSummary struct {
	UUID        string       `json:"uuid"`
	Title       string       `json:"title"`
	Type        string       `json:"type"`
	Style       string       `json:"style"`
	Date        string       `json:"date"`
	City        string       `json:"city"`
	Province    string       `json:"province"`
	Address     string       `json:"address"`
	Description string       `json:"description"`
	Location    Location     `json:"location"`
	Images      []EventImage `json:"event_images"`
}

type FavouriteEvent struct {
	UUID      string        `json:"uuid"`
	UserUUID  string        `json:"user_uuid"`
	EventUUID string        `json:"event_uuid"`
	Event     *EventSummary `json:"event,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func NewEvent(e domain.EventDetails) Event {
	return Event{
		UUID:             e.UUID,
		Title:            e.Title,
		Type:             string(e.Type),
		Style:            e.Style,
		Date:             e.Date.Format(dateLayout),
		City:             e.City,
		Province:         e.Province,
		Address:          e.Address,
		Description:      e.Description,
		Location:         Location{Lat: e.Location.Lat, Lon: e.Location.Lon},
		TotalTickets:     e.TotalTickets,
		Organizer:        e.Organizer,
		OrganizerDetails: e.OrganizerDetails,
		AvailableTickets: e.AvailableTickets,
		Images:           newEventImages(e.Images),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func NewEventSummary(e domain.Event) EventSummary {
	return EventSummary{
		UUID:        e.UUID,
		Title:       e.Title,
		Type:        string(e.Type),
		Style:       e.Style,
		Date:        e.Date.Format(dateLayout),
		City:        e.City,
		Province:    e.Province,
		Address:     e.Address,
		Description: e.Description,
		Location:    Location{Lat: e.Location.Lat, Lon: e.Location.Lon},
		Images:      newEventImages(e.Images),
	}
}

func NewEventSummaries(events []domain.Event) []EventSummary {
	out := make([]EventSummary, 0, len(events))
	for _, e := range events {
		out = append(out, NewEventSummary(e))
	}
	return out
}

func NewFavouriteEvent(f domain.FavouriteEvent) FavouriteEvent {
	fav := FavouriteEvent{
		UUID:      f.UUID,
		UserUUID:  f.UserUUID,
		EventUUID: f.EventUUID,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
	if f.Event != nil {
		event := NewEventSummary(*f.Event)
		fav.Event = &event
	}
	return fav
}

func NewFavouriteEvents(favs []domain.FavouriteEvent) []FavouriteEvent {
	out := make([]FavouriteEvent, 0, len(favs))
	for _, f := range favs {
		out = append(out, NewFavouriteEvent(f))
	}
	return out
}

func newEventImages(images []domain.EventImage) []EventImage {
	out := make([]EventImage, 0, len(images))
	for _, img := range images {
		out = append(out, EventImage{ImageURL: img.ImageURL})
	}
	return out
}
