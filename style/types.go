package style

import "strings"

// Unit is a unit of measure for symbolizer sizes, as an SE unit URI.
// The empty Unit means pixels.
type Unit string

// Units of measure defined by Symbology Encoding.
const (
	Pixel Unit = "http://www.opengeospatial.org/se/units/pixel"
	Metre Unit = "http://www.opengeospatial.org/se/units/metre"
	Foot  Unit = "http://www.opengeospatial.org/se/units/foot"
)

// ParseUnit accepts a unit URI or one of the short names "pixel",
// "metre", "meter" and "foot".
func ParseUnit(s string) (Unit, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pixel", "px", string(Pixel):
		return Pixel, true
	case "metre", "meter", "m", string(Metre):
		return Metre, true
	case "foot", "ft", string(Foot):
		return Foot, true
	}
	return "", false
}

// String returns the short unit name.
func (u Unit) String() string {
	switch u {
	case "", Pixel:
		return "pixel"
	case Metre:
		return "metre"
	case Foot:
		return "foot"
	}
	return string(u)
}

// SemanticType classifies the geometries a feature type style targets.
type SemanticType string

// Semantic type identifiers.
const (
	SemanticAny     SemanticType = "ANY"
	SemanticPoint   SemanticType = "POINT"
	SemanticLine    SemanticType = "LINE"
	SemanticPolygon SemanticType = "POLYGON"
	SemanticText    SemanticType = "TEXT"
	SemanticRaster  SemanticType = "RASTER"
)

// ContrastMethod selects a raster contrast enhancement.
type ContrastMethod string

// Contrast methods. Logarithmic and Exponential are vendor extensions.
const (
	ContrastNone        ContrastMethod = "NONE"
	ContrastNormalize   ContrastMethod = "NORMALIZE"
	ContrastHistogram   ContrastMethod = "HISTOGRAM"
	ContrastLogarithmic ContrastMethod = "LOGARITHMIC"
	ContrastExponential ContrastMethod = "EXPONENTIAL"
)

// ParseContrastMethod matches s case-insensitively.
func ParseContrastMethod(s string) (ContrastMethod, bool) {
	switch m := ContrastMethod(strings.ToUpper(strings.TrimSpace(s))); m {
	case ContrastNone, ContrastNormalize, ContrastHistogram, ContrastLogarithmic, ContrastExponential:
		return m, true
	case "":
		return ContrastNone, true
	}
	return "", false
}

// OverlapBehavior tells a raster renderer how to combine overlapping
// coverages.
type OverlapBehavior string

// Overlap behaviours. The zero value means unspecified.
const (
	LatestOnTop   OverlapBehavior = "LATEST_ON_TOP"
	EarliestOnTop OverlapBehavior = "EARLIEST_ON_TOP"
	Average       OverlapBehavior = "AVERAGE"
	Random        OverlapBehavior = "RANDOM"
)

// Colour map types.
const (
	ColorMapRamp      = 1
	ColorMapIntervals = 2
	ColorMapValues    = 3
)
