package domain

// Operator tags a Predicate with the comparison the storage layer has to perform.
type Operator string

const (
	OpEquals         Operator = "equals"
	OpContains       Operator = "contains"
	OpMemberOf       Operator = "memberOf"
	OpRangeGte       Operator = "rangeGte"
	OpWithinDistance Operator = "withinDistance"
)

// Fields a predicate may target.
const (
	FieldTitle    = "title"
	FieldCategory = "category"
	FieldCity     = "city"
	FieldProvince = "province"
	FieldType     = "type"
	FieldStyle    = "style"
	FieldDate     = "date"
	FieldLocation = "location"
)

// Predicate is a single filter condition. A query is the AND of its predicates.
//
// Value depends on Op: string for equals/contains, []string for memberOf,
// time.Time for rangeGte and date equality, Proximity for withinDistance.
type Predicate struct {
	Field string
	Op    Operator
	Value any
}

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Proximity matches records whose planar distance (in degrees) to Point is
// strictly below Degrees.
type Proximity struct {
	Point   GeoPoint
	Degrees float64
}
