package service

import (
	"strings"
	"testing"

	"propertyagent/internal/model"
)

func testAnchor() *model.School {
	return &model.School{SchoolID: 1, Name: "Rato Bangala School", Lat: 27.6680, Lon: 85.3120}
}

func TestQueryBuilder_RadiusConversion(t *testing.T) {
	builder := NewQueryBuilder(100)

	spec, err := builder.Build(testAnchor(), &model.SearchCriteria{
		RadiusMiles: float64Ptr(2),
	})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	// $1=lon, $2=lat, $3=divisor, $4=radius in meters.
	if spec.Args[0] != 85.3120 || spec.Args[1] != 27.6680 {
		t.Errorf("anchor args = %v, %v; want lon, lat order", spec.Args[0], spec.Args[1])
	}
	if spec.Args[2] != 1609.344 {
		t.Errorf("distance divisor = %v, want 1609.344", spec.Args[2])
	}
	if spec.Args[3] != 3218.688 {
		t.Errorf("radius bound = %v meters, want 3218.688 (2 miles)", spec.Args[3])
	}

	// A parcel at 3000 m is inside the bound, one at 3300 m is not.
	bound := spec.Args[3].(float64)
	if !(3000 <= bound) {
		t.Error("3000 m should fall within a 2 mile radius")
	}
	if !(3300 > bound) {
		t.Error("3300 m should fall outside a 2 mile radius")
	}
}

func TestQueryBuilder_BoundParametersOnly(t *testing.T) {
	builder := NewQueryBuilder(100)

	ptype := "residential"
	spec, err := builder.Build(testAnchor(), &model.SearchCriteria{
		RadiusMiles:  float64Ptr(2),
		AreaMinSqft:  float64Ptr(1000),
		AreaMaxSqft:  float64Ptr(3000),
		PropertyType: &ptype,
	})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	// No filter value may appear literally in the SQL text.
	for _, literal := range []string{"3218", "1000", "3000", "85.31", "27.66", "residential"} {
		if strings.Contains(spec.SQL, literal) {
			t.Errorf("SQL contains interpolated value %q:\n%s", literal, spec.SQL)
		}
	}

	// lon, lat, divisor, radius, area_min, area_max, property_type, limit
	if len(spec.Args) != 8 {
		t.Errorf("len(Args) = %d, want 8", len(spec.Args))
	}
}

func TestQueryBuilder_Filters(t *testing.T) {
	builder := NewQueryBuilder(100)

	tests := []struct {
		name         string
		criteria     model.SearchCriteria
		wantContains []string
		wantAbsent   []string
		wantArgs     int
	}{
		{
			name:         "radius only",
			criteria:     model.SearchCriteria{RadiusMiles: float64Ptr(1)},
			wantContains: []string{"ST_DWithin", "ORDER BY distance_miles, parcel_id", "LIMIT $5"},
			// area_sqft stays in the SELECT list; only the filter
			// clauses must be absent.
			wantAbsent: []string{"area_sqft BETWEEN", "area_sqft >=", "area_sqft <=", "property_type ="},
			wantArgs:   5,
		},
		{
			name: "inclusive area band",
			criteria: model.SearchCriteria{
				RadiusMiles: float64Ptr(1),
				AreaMinSqft: float64Ptr(1000),
				AreaMaxSqft: float64Ptr(3000),
			},
			wantContains: []string{"area_sqft BETWEEN $5 AND $6", "LIMIT $7"},
			wantArgs:     7,
		},
		{
			name: "lower bound only",
			criteria: model.SearchCriteria{
				RadiusMiles: float64Ptr(1),
				AreaMinSqft: float64Ptr(1000),
			},
			wantContains: []string{"area_sqft >= $5"},
			wantAbsent:   []string{"BETWEEN"},
			wantArgs:     6,
		},
		{
			name: "upper bound only",
			criteria: model.SearchCriteria{
				RadiusMiles: float64Ptr(1),
				AreaMaxSqft: float64Ptr(3000),
			},
			wantContains: []string{"area_sqft <= $5"},
			wantAbsent:   []string{"BETWEEN"},
			wantArgs:     6,
		},
		{
			name: "property type equality",
			criteria: model.SearchCriteria{
				RadiusMiles:  float64Ptr(1),
				PropertyType: strPtr("commercial"),
			},
			wantContains: []string{"property_type = $5"},
			wantArgs:     6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := builder.Build(testAnchor(), &tt.criteria)
			if err != nil {
				t.Fatalf("Build returned error: %v", err)
			}
			for _, s := range tt.wantContains {
				if !strings.Contains(spec.SQL, s) {
					t.Errorf("SQL missing %q:\n%s", s, spec.SQL)
				}
			}
			for _, s := range tt.wantAbsent {
				if strings.Contains(spec.SQL, s) {
					t.Errorf("SQL unexpectedly contains %q:\n%s", s, spec.SQL)
				}
			}
			if len(spec.Args) != tt.wantArgs {
				t.Errorf("len(Args) = %d, want %d", len(spec.Args), tt.wantArgs)
			}
		})
	}
}

func TestQueryBuilder_Validation(t *testing.T) {
	builder := NewQueryBuilder(100)

	tests := []struct {
		name     string
		anchor   *model.School
		criteria *model.SearchCriteria
	}{
		{
			name:     "nil anchor",
			anchor:   nil,
			criteria: &model.SearchCriteria{RadiusMiles: float64Ptr(1)},
		},
		{
			name:     "missing radius",
			anchor:   testAnchor(),
			criteria: &model.SearchCriteria{},
		},
		{
			name:     "zero radius",
			anchor:   testAnchor(),
			criteria: &model.SearchCriteria{RadiusMiles: float64Ptr(0)},
		},
		{
			name:     "negative radius",
			anchor:   testAnchor(),
			criteria: &model.SearchCriteria{RadiusMiles: float64Ptr(-2)},
		},
		{
			name:   "inverted area band",
			anchor: testAnchor(),
			criteria: &model.SearchCriteria{
				RadiusMiles: float64Ptr(1),
				AreaMinSqft: float64Ptr(3000),
				AreaMaxSqft: float64Ptr(1000),
			},
		},
		{
			name:   "non-positive area_min",
			anchor: testAnchor(),
			criteria: &model.SearchCriteria{
				RadiusMiles: float64Ptr(1),
				AreaMinSqft: float64Ptr(0),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := builder.Build(tt.anchor, tt.criteria)
			if err == nil {
				t.Fatalf("expected ValidationError, got spec:\n%s", spec.SQL)
			}
			if _, ok := err.(*model.ValidationError); !ok {
				t.Errorf("error type = %T, want *model.ValidationError", err)
			}
		})
	}
}

func TestQueryBuilder_DeterministicOutput(t *testing.T) {
	builder := NewQueryBuilder(100)
	criteria := &model.SearchCriteria{
		RadiusMiles: float64Ptr(2),
		AreaMinSqft: float64Ptr(1000),
		AreaMaxSqft: float64Ptr(3000),
	}

	first, err := builder.Build(testAnchor(), criteria)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	second, err := builder.Build(testAnchor(), criteria)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if first.SQL != second.SQL {
		t.Error("expected identical SQL for identical input")
	}
	if len(first.Args) != len(second.Args) {
		t.Fatal("expected identical arg counts")
	}
	for i := range first.Args {
		if first.Args[i] != second.Args[i] {
			t.Errorf("arg %d differs: %v vs %v", i, first.Args[i], second.Args[i])
		}
	}
}
