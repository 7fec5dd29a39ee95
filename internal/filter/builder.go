// Package filter turns parsed request parameters into storage predicates.
package filter

import (
	"errors"
	"time"

	"github.com/danceapp/events-api/internal/domain"
)

// DefaultProximityDegrees is the radius used for location filtering when none is configured.
const DefaultProximityDegrees = 0.05

var ErrDateInPast = errors.New("event date has already passed")

// EventParams is the typed, lowercased form of an event filter request.
// Zero values mean "no constraint".
type EventParams struct {
	Title    string
	City     string
	Province string
	Types    []string
	Styles   []string
	Date     *time.Time
	Location *domain.GeoPoint
}

type AdvertisementParams struct {
	Title    string
	Category string
}

type Options struct {
	// UpcomingOnly rejects past dates with ErrDateInPast and, when no date is
	// given, restricts results to events from today on.
	UpcomingOnly     bool
	ProximityDegrees float64
}

// BuildEventPredicates composes the predicates for an event query. today is the
// caller's current time; only its calendar day is used.
func BuildEventPredicates(p EventParams, today time.Time, opts Options) ([]domain.Predicate, error) {
	var preds []domain.Predicate

	if p.Title != "" {
		preds = append(preds, domain.Predicate{Field: domain.FieldTitle, Op: domain.OpContains, Value: p.Title})
	}

	if p.Location != nil {
		degrees := opts.ProximityDegrees
		if degrees <= 0 {
			degrees = DefaultProximityDegrees
		}
		preds = append(preds, domain.Predicate{
			Field: domain.FieldLocation,
			Op:    domain.OpWithinDistance,
			Value: domain.Proximity{Point: *p.Location, Degrees: degrees},
		})
	}

	if p.City != "" {
		preds = append(preds, domain.Predicate{Field: domain.FieldCity, Op: domain.OpEquals, Value: p.City})
	}

	if p.Province != "" {
		preds = append(preds, domain.Predicate{Field: domain.FieldProvince, Op: domain.OpEquals, Value: p.Province})
	}

	if p.Types != nil {
		preds = append(preds, domain.Predicate{Field: domain.FieldType, Op: domain.OpMemberOf, Value: p.Types})
	}

	if p.Styles != nil {
		preds = append(preds, domain.Predicate{Field: domain.FieldStyle, Op: domain.OpMemberOf, Value: p.Styles})
	}

	midnight := domain.Day(today)
	switch {
	case p.Date != nil:
		day := domain.Day(*p.Date)
		if opts.UpcomingOnly && day.Before(midnight) {
			return nil, ErrDateInPast
		}
		preds = append(preds, domain.Predicate{Field: domain.FieldDate, Op: domain.OpEquals, Value: day})
	case opts.UpcomingOnly:
		preds = append(preds, domain.Predicate{Field: domain.FieldDate, Op: domain.OpRangeGte, Value: midnight})
	}

	return preds, nil
}

func BuildAdvertisementPredicates(p AdvertisementParams) []domain.Predicate {
	var preds []domain.Predicate

	if p.Title != "" {
		preds = append(preds, domain.Predicate{Field: domain.FieldTitle, Op: domain.OpContains, Value: p.Title})
	}

	if p.Category != "" {
		preds = append(preds, domain.Predicate{Field: domain.FieldCategory, Op: domain.OpEquals, Value: p.Category})
	}

	return preds
}
