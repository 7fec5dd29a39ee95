package dao

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/danceapp/events-api/internal/domain"
)

type Predicate = domain.Predicate

// columns maps filterable fields to their column. Predicates on any other field are rejected.
var columns = map[string]string{
	domain.FieldTitle:    "title",
	domain.FieldCategory: "category",
	domain.FieldCity:     "city",
	domain.FieldProvince: "province",
	domain.FieldType:     "type",
	domain.FieldStyle:    "style",
	domain.FieldDate:     "date",
}

// applyPredicates translates predicates into where clauses on table.
func applyPredicates(tx *gorm.DB, table string, preds []Predicate) (*gorm.DB, error) {
	for _, p := range preds {
		if p.Op == domain.OpWithinDistance {
			prox, ok := p.Value.(domain.Proximity)
			if !ok {
				return nil, fmt.Errorf("predicate %s: want domain.Proximity, got %T", p.Field, p.Value)
			}
			// Planar distance in degrees, compared squared to stay portable across SQL dialects.
			lat := table + ".latitude"
			lon := table + ".longitude"
			tx = tx.Where(
				fmt.Sprintf("((%s - ?) * (%s - ?) + (%s - ?) * (%s - ?)) < ?", lat, lat, lon, lon),
				prox.Point.Lat, prox.Point.Lat, prox.Point.Lon, prox.Point.Lon, prox.Degrees*prox.Degrees,
			)
			continue
		}

		col, ok := columns[p.Field]
		if !ok {
			return nil, fmt.Errorf("predicate on unknown field %q", p.Field)
		}
		col = table + "." + col

		switch p.Op {
		case domain.OpEquals:
			tx = tx.Where(col+" = ?", p.Value)
		case domain.OpContains:
			s, ok := p.Value.(string)
			if !ok {
				return nil, fmt.Errorf("predicate %s: want string, got %T", p.Field, p.Value)
			}
			tx = tx.Where("LOWER("+col+") LIKE ?", "%"+strings.ToLower(s)+"%")
		case domain.OpMemberOf:
			values, ok := p.Value.([]string)
			if !ok {
				return nil, fmt.Errorf("predicate %s: want []string, got %T", p.Field, p.Value)
			}
			if len(values) == 0 {
				tx = tx.Where("1 = 0")
				continue
			}
			tx = tx.Where(col+" IN ?", values)
		case domain.OpRangeGte:
			if _, ok := p.Value.(time.Time); !ok {
				return nil, fmt.Errorf("predicate %s: want time.Time, got %T", p.Field, p.Value)
			}
			tx = tx.Where(col+" >= ?", p.Value)
		default:
			return nil, fmt.Errorf("predicate %s: unsupported operator %q", p.Field, p.Op)
		}
	}

	return tx, nil
}
