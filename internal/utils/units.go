package utils

import "math"

// Unit conversion constants. Miles/meters is the exact statute mile;
// the same factor must be used for the filter bound and the reported
// distance or results drift.
const (
	MilesToMeters = 1609.344
	KmToMiles     = 0.621371
	SqmToSqft     = 10.7639
)

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
