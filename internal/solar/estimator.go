// Package solar holds the pure energy-estimation core: the orientation
// lookup tables and the irradiance-to-electricity formula.
package solar

import "math"

const (
	// Efficiency is the fixed solar-panel yield applied to every estimate.
	Efficiency = 0.2
	// PerformanceRatio is the fixed efficiency-loss coefficient.
	PerformanceRatio = 0.75
)

func degreesToRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// Estimate converts a day's solar radiation into the electricity a panel of
// the given geometry would generate. Orientation must already be validated;
// the lookup is total over the 16 compass codes and the result is never
// negative.
func Estimate(radiation, area, tilt float64, orientation string) float64 {
	reference, azimuth, ok := Angles(orientation)

	if !ok {
		return 0
	}

	irradiation := radiation *
		math.Sin(degreesToRadians(tilt)) *
		math.Cos(degreesToRadians(azimuth-reference))

	return math.Abs(area * Efficiency * irradiation * PerformanceRatio)
}
