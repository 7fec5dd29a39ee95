package request

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/danceapp/events-api/internal/domain"
	"github.com/danceapp/events-api/internal/filter"
)

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// EventFilterRequest is the query of the filtered and favourite event listings.
// Type, Style and Location hold JSON: ["social","concert"], ["salsa"], [lat, lon].
type EventFilterRequest struct {
	Type     string `form:"type"`
	Style    string `form:"style"`
	Date     string `form:"date"`
	Title    string `form:"title"`
	Location string `form:"location"`
	City     string `form:"city"`
	Province string `form:"province"`
}

// Parse lowercases the request and decodes its JSON parameters. Malformed JSON
// is returned as a plain error; values that decode but make no sense come back
// as *FieldError.
func (req *EventFilterRequest) Parse() (filter.EventParams, error) {
	params := filter.EventParams{
		Title:    lower(req.Title),
		City:     lower(req.City),
		Province: lower(req.Province),
	}

	var err error
	if params.Types, err = decodeList("type", req.Type); err != nil {
		return filter.EventParams{}, err
	}
	if params.Styles, err = decodeList("style", req.Style); err != nil {
		return filter.EventParams{}, err
	}

	if loc := strings.TrimSpace(req.Location); loc != "" {
		var coords []float64
		if err = json.Unmarshal([]byte(loc), &coords); err != nil {
			return filter.EventParams{}, fmt.Errorf("decode location -> %w", err)
		}
		if len(coords) != 2 {
			return filter.EventParams{}, &FieldError{Field: "location", Message: "location must be [lat, lon]"}
		}
		params.Location = &domain.GeoPoint{Lat: coords[0], Lon: coords[1]}
	}

	if d := strings.TrimSpace(req.Date); d != "" {
		date, ok := parseDate(d)
		if !ok {
			return filter.EventParams{}, &FieldError{Field: "date", Message: "invalid date, expected YYYY-MM-DD"}
		}
		params.Date = &date
	}

	if err = validateTypes(params.Types); err != nil {
		return filter.EventParams{}, err
	}

	return params, nil
}

// AdvertisementRequest is the query of the advertisement listing.
type AdvertisementRequest struct {
	Title    string `form:"title"`
	Category string `form:"category"`
}

func (req *AdvertisementRequest) Parse() filter.AdvertisementParams {
	return filter.AdvertisementParams{
		Title:    lower(req.Title),
		Category: lower(req.Category),
	}
}

func decodeList(field, raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("decode %s -> %w", field, err)
	}

	for i := range values {
		values[i] = lower(values[i])
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

func validateTypes(types []string) error {
	allowed := make([]interface{}, 0, len(domain.EventTypes))
	for _, t := range domain.EventTypes {
		allowed = append(allowed, string(t))
	}

	for _, t := range types {
		if err := validation.Validate(t, validation.In(allowed...)); err != nil {
			return &FieldError{Field: "type", Message: fmt.Sprintf("unknown event type %q", t)}
		}
	}
	return nil
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
