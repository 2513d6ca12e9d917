package model

// Slot identifiers for the search criteria fields. The order of
// SlotPriority is the fixed clarification order: one missing slot is
// asked per turn, earliest first.
const (
	SlotAnchorName   = "anchor_name"
	SlotRadius       = "radius"
	SlotAreaMin      = "area_min"
	SlotAreaMax      = "area_max"
	SlotPropertyType = "property_type"
)

// SlotPriority is the clarification order for missing slots.
var SlotPriority = []string{
	SlotAnchorName,
	SlotRadius,
	SlotAreaMin,
	SlotAreaMax,
	SlotPropertyType,
}

// CriteriaDraft represents the partial, per-turn criteria proposed by the
// intent oracle. Nil fields are absent and never overwrite accumulated
// values. Units default to miles and square feet when omitted.
type CriteriaDraft struct {
	AnchorName   *string  `json:"anchor_name,omitempty"`
	Radius       *float64 `json:"radius,omitempty"`
	RadiusUnit   *string  `json:"radius_unit,omitempty"` // "miles" (default) or "km"
	AreaMin      *float64 `json:"area_min,omitempty"`
	AreaMax      *float64 `json:"area_max,omitempty"`
	AreaUnit     *string  `json:"area_unit,omitempty"` // "sqft" (default) or "sqm"
	PropertyType *string  `json:"property_type,omitempty"`
}

// SearchCriteria is the accumulated, unit-normalized search state of one
// conversation. Radius is stored in miles, area bounds in square feet.
type SearchCriteria struct {
	AnchorName   *string  `json:"anchor_name,omitempty"`
	RadiusMiles  *float64 `json:"radius_miles,omitempty"`
	AreaMinSqft  *float64 `json:"area_min_sqft,omitempty"`
	AreaMaxSqft  *float64 `json:"area_max_sqft,omitempty"`
	PropertyType *string  `json:"property_type,omitempty"`
}
