package domain

type Pass struct {
	UUID        string  `json:"uuid"`
	EventUUID   string  `json:"event_uuid"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

type Room struct {
	UUID      string  `json:"uuid"`
	EventUUID string  `json:"event_uuid"`
	Name      string  `json:"name"`
	Capacity  int     `json:"capacity"`
	Price     float64 `json:"price"`
}

type Food struct {
	UUID        string  `json:"uuid"`
	EventUUID   string  `json:"event_uuid"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// BookingDetails holds what can be booked for an event. Concerts only carry
// Pass; the other bookable types carry Passes, Rooms and Food.
type BookingDetails struct {
	EventType EventType
	Pass      *Pass
	Passes    []Pass
	Rooms     []Room
	Food      *Food
}
