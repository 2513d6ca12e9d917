package service

import (
	"fmt"
	"strings"

	"propertyagent/internal/model"
	"propertyagent/internal/utils"
)

// QueryBuilder assembles parameterized PostGIS queries over the parcels
// catalog. All filter values travel as positional parameters; radius is
// converted from miles to meters for ST_DWithin and the reported
// distance is divided back to miles with the same factor.
type QueryBuilder struct {
	maxResults int
}

// NewQueryBuilder creates a query builder. maxResults caps the result
// set; ordering is deterministic so the cap is stable.
func NewQueryBuilder(maxResults int) *QueryBuilder {
	return &QueryBuilder{maxResults: maxResults}
}

// Build produces the spatial query for parcels around anchor. It
// requires a resolved anchor and a positive radius; if both area bounds
// are present they must be ordered. Violations return a
// ValidationError, never a clamped query.
func (b *QueryBuilder) Build(anchor *model.School, criteria *model.SearchCriteria) (*model.QuerySpec, error) {
	if anchor == nil {
		return nil, &model.ValidationError{Detail: "anchor is not resolved"}
	}
	if criteria == nil || criteria.RadiusMiles == nil {
		return nil, &model.ValidationError{Detail: "radius is required"}
	}
	if *criteria.RadiusMiles <= 0 {
		return nil, &model.ValidationError{Detail: fmt.Sprintf("radius must be positive, got %g", *criteria.RadiusMiles)}
	}
	if criteria.AreaMinSqft != nil && *criteria.AreaMinSqft <= 0 {
		return nil, &model.ValidationError{Detail: fmt.Sprintf("area_min must be positive, got %g", *criteria.AreaMinSqft)}
	}
	if criteria.AreaMaxSqft != nil && *criteria.AreaMaxSqft <= 0 {
		return nil, &model.ValidationError{Detail: fmt.Sprintf("area_max must be positive, got %g", *criteria.AreaMaxSqft)}
	}
	if criteria.AreaMinSqft != nil && criteria.AreaMaxSqft != nil && *criteria.AreaMinSqft > *criteria.AreaMaxSqft {
		return nil, &model.ValidationError{
			Detail: fmt.Sprintf("area_min (%g) exceeds area_max (%g)", *criteria.AreaMinSqft, *criteria.AreaMaxSqft),
		}
	}

	radiusMeters := *criteria.RadiusMiles * utils.MilesToMeters

	// $1=lon, $2=lat, $3=miles-to-meters divisor, $4=radius in meters.
	args := []interface{}{anchor.Lon, anchor.Lat, utils.MilesToMeters, radiusMeters}
	argIndex := 5

	var sb strings.Builder
	sb.WriteString(`SELECT parcel_id, address, area_sqft, property_type,
       ST_Distance(geom::geography, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) / $3 AS distance_miles
FROM parcels
WHERE ST_DWithin(geom::geography, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $4)`)

	// Area bounds are inclusive; an absent bound imposes no constraint.
	if criteria.AreaMinSqft != nil && criteria.AreaMaxSqft != nil {
		sb.WriteString(fmt.Sprintf("\n  AND area_sqft BETWEEN $%d AND $%d", argIndex, argIndex+1))
		args = append(args, *criteria.AreaMinSqft, *criteria.AreaMaxSqft)
		argIndex += 2
	} else if criteria.AreaMinSqft != nil {
		sb.WriteString(fmt.Sprintf("\n  AND area_sqft >= $%d", argIndex))
		args = append(args, *criteria.AreaMinSqft)
		argIndex++
	} else if criteria.AreaMaxSqft != nil {
		sb.WriteString(fmt.Sprintf("\n  AND area_sqft <= $%d", argIndex))
		args = append(args, *criteria.AreaMaxSqft)
		argIndex++
	}

	if criteria.PropertyType != nil {
		sb.WriteString(fmt.Sprintf("\n  AND property_type = $%d", argIndex))
		args = append(args, *criteria.PropertyType)
		argIndex++
	}

	sb.WriteString("\nORDER BY distance_miles, parcel_id")
	sb.WriteString(fmt.Sprintf("\nLIMIT $%d", argIndex))
	args = append(args, b.maxResults)

	return &model.QuerySpec{SQL: sb.String(), Args: args}, nil
}
