package solar

// Orientations are the 16 compass points a panel may face. Each code maps to
// a reference angle on the compass rose and the azimuth used by the energy
// formula.
var orientationAngles = map[string]float64{
	"N":   0,
	"NNE": 22.5,
	"NE":  45,
	"ENE": 67.5,
	"E":   90,
	"ESE": 112.5,
	"SE":  135,
	"SSE": 157.5,
	"S":   180,
	"SSW": 202.5,
	"SW":  225,
	"WSW": 247.5,
	"W":   270,
	"WNW": 292.5,
	"NW":  315,
	"NNW": 337.5,
}

var azimuthAngles = map[string]float64{
	"N":   180,
	"NNE": 135,
	"NE":  90,
	"ENE": 45,
	"E":   0,
	"ESE": 315,
	"SE":  270,
	"SSE": 225,
	"S":   180,
	"SSW": 135,
	"SW":  90,
	"WSW": 45,
	"W":   0,
	"WNW": 315,
	"NW":  270,
	"NNW": 225,
}

// Orientations lists every valid orientation code.
func Orientations() []string {
	codes := make([]string, 0, len(orientationAngles))

	for code := range orientationAngles {
		codes = append(codes, code)
	}

	return codes
}

// ValidOrientation reports whether code is one of the 16 compass points.
func ValidOrientation(code string) bool {
	_, ok := orientationAngles[code]
	return ok
}

// Angles resolves an orientation code to its (referenceAngle, azimuth) pair.
// The second return is false for unknown codes; callers must reject those as
// a validation error before estimating.
func Angles(code string) (reference, azimuth float64, ok bool) {
	reference, ok = orientationAngles[code]

	if !ok {
		return 0, 0, false
	}

	return reference, azimuthAngles[code], true
}
