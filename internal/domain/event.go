package domain

import "time"

type EventType string

const (
	EventTypeAcademy  EventType = "academy"
	EventTypeSocial   EventType = "social"
	EventTypeConcert  EventType = "concert"
	EventTypeCongress EventType = "congress"
)

var EventTypes = []EventType{EventTypeAcademy, EventTypeSocial, EventTypeConcert, EventTypeCongress}

// Bookable reports whether passes can be booked for events of this type.
func (t EventType) Bookable() bool {
	return t != EventTypeAcademy && t != EventTypeSocial
}

type Event struct {
	UUID             string       `json:"uuid"`
	Title            string       `json:"title"`
	Type             EventType    `json:"type"`
	Style            string       `json:"style"`
	Date             time.Time    `json:"date"`
	City             string       `json:"city"`
	Province         string       `json:"province"`
	Address          string       `json:"address"`
	Description      string       `json:"description"`
	Location         GeoPoint     `json:"location"`
	TotalTickets     int          `json:"total_tickets"`
	Organizer        string       `json:"organizer"`
	OrganizerDetails string       `json:"organizer_details"`
	Images           []EventImage `json:"event_images,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

type EventImage struct {
	UUID      string    `json:"uuid"`
	EventUUID string    `json:"event_uuid"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// EventDetails is an event together with the number of tickets still on sale.
// AvailableTickets is derived on every read and never persisted.
type EventDetails struct {
	Event
	AvailableTickets int `json:"availableTickets"`
}

type FavouriteEvent struct {
	UUID      string    `json:"uuid"`
	UserUUID  string    `json:"user_uuid"`
	EventUUID string    `json:"event_uuid"`
	Event     *Event    `json:"event,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Day truncates t to its calendar day, expressed as midnight UTC.
// Event dates are stored and compared in this form.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
