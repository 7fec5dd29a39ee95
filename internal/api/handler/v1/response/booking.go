package response

import "github.com/danceapp/events-api/internal/domain"

type Pass struct {
	UUID        string  `json:"uuid"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

type Room struct {
	UUID     string  `json:"uuid"`
	Name     string  `json:"name"`
	Capacity int     `json:"capacity"`
	Price    float64 `json:"price"`
}

type Food struct {
	UUID        string  `json:"uuid"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// ConcertBooking holds the single pass of a concert. PassData is null when none exists.
type ConcertBooking struct {
	PassData *Pass `json:"passData"`
}

type CongressBooking struct {
	PassesData []Pass `json:"passesData"`
	RoomsData  []Room `json:"roomsData"`
	FoodData   *Food  `json:"foodData"`
}

// NewBookingDetails picks the payload shape for the event type.
func NewBookingDetails(d domain.BookingDetails) any {
	if d.EventType == domain.EventTypeConcert {
		return ConcertBooking{PassData: newPass(d.Pass)}
	}

	out := CongressBooking{
		PassesData: make([]Pass, 0, len(d.Passes)),
		RoomsData:  make([]Room, 0, len(d.Rooms)),
	}
	for i := range d.Passes {
		out.PassesData = append(out.PassesData, *newPass(&d.Passes[i]))
	}
	for _, r := range d.Rooms {
		out.RoomsData = append(out.RoomsData, Room{UUID: r.UUID, Name: r.Name, Capacity: r.Capacity, Price: r.Price})
	}
	if d.Food != nil {
		out.FoodData = &Food{UUID: d.Food.UUID, Description: d.Food.Description, Price: d.Food.Price}
	}
	return out
}

func newPass(p *domain.Pass) *Pass {
	if p == nil {
		return nil
	}
	return &Pass{
		UUID:        p.UUID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
	}
}
