package model

// School represents a named anchor point in the catalog. Rows are loaded
// once at startup and never mutated by the core.
type School struct {
	SchoolID int64   `json:"school_id" db:"school_id"`
	Name     string  `json:"name" db:"name"`
	Lat      float64 `json:"lat" db:"lat"`
	Lon      float64 `json:"lon" db:"lon"`
}

// ParcelHit represents one parcel row returned by a spatial search.
// DistanceMiles is computed in-query and rounded to two decimal places
// for presentation.
type ParcelHit struct {
	ParcelID      string  `json:"parcel_id" db:"parcel_id"`
	Address       string  `json:"address" db:"address"`
	AreaSqft      float64 `json:"area_sqft" db:"area_sqft"`
	PropertyType  string  `json:"property_type" db:"property_type"`
	DistanceMiles float64 `json:"distance_miles" db:"distance_miles"`
}

// ResolvedAnchor is the coordinate payload for a resolved school, used by
// both search and geocode outcomes. Lat/Lon are rounded to six decimals.
type ResolvedAnchor struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}
