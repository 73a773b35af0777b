package style

import (
	"golang.org/x/text/language"

	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/filter"
)

// InternationalString is a human readable text with optional
// translations.
type InternationalString interface {
	// String returns the default text.
	String() string
	// Translations returns the localised variants keyed by language.
	Translations() map[language.Tag]string
}

// Description is the title and abstract of a style element.
type Description interface {
	Title() InternationalString
	Abstract() InternationalString
}

// AnchorPoint locates a graphic or label relative to its point, as
// fractions of the graphic's size.
type AnchorPoint interface {
	AnchorPointX() expr.Expression
	AnchorPointY() expr.Expression
}

// Displacement offsets a graphic or label in units of measure.
type Displacement interface {
	DisplacementX() expr.Expression
	DisplacementY() expr.Expression
}

// Fill paints the interior of a shape.
type Fill interface {
	Color() expr.Expression
	Opacity() expr.Expression
	GraphicFill() Graphic
}

// Stroke paints a line.
type Stroke interface {
	Color() expr.Expression
	Width() expr.Expression
	Opacity() expr.Expression
	LineJoin() expr.Expression
	LineCap() expr.Expression
	DashArray() []expr.Expression
	DashOffset() expr.Expression
	GraphicFill() Graphic
	GraphicStroke() Graphic
}

// Font describes the typeface of a label. Families are in preference
// order.
type Font interface {
	Family() []expr.Expression
	Style() expr.Expression
	Weight() expr.Expression
	Size() expr.Expression
}

// Halo is the outline drawn around label glyphs.
type Halo interface {
	Fill() Fill
	Radius() expr.Expression
}

// GraphicalSymbol is one symbol of a Graphic. Mark and ExternalGraphic
// are the kinds the model knows how to hold.
type GraphicalSymbol interface{}

// Mark is a well-known shape filled and stroked.
type Mark interface {
	WellKnownName() expr.Expression
	Fill() Fill
	Stroke() Stroke
	ExternalMark() ExternalMark
}

// ExternalMark is a glyph taken from an external source such as a font.
type ExternalMark interface {
	OnlineResource() string
	InlineContent() []byte
	Format() string
	MarkIndex() int
}

// ExternalGraphic references an image by URI or holds it inline.
type ExternalGraphic interface {
	OnlineResource() string
	InlineContent() []byte
	Format() string
	ColorReplacements() []expr.Expression
	CustomProperties() map[string]string
}

// Graphic is a sized, rotated and placed list of symbols.
type Graphic interface {
	GraphicalSymbols() []GraphicalSymbol
	Opacity() expr.Expression
	Size() expr.Expression
	Rotation() expr.Expression
	AnchorPoint() AnchorPoint
	Displacement() Displacement
	Gap() expr.Expression
	InitialGap() expr.Expression
}

// LabelPlacement is either a PointPlacement or a LinePlacement.
type LabelPlacement interface{}

// PointPlacement places a label relative to a point.
type PointPlacement interface {
	AnchorPoint() AnchorPoint
	Displacement() Displacement
	Rotation() expr.Expression
}

// LinePlacement places a label along a line.
type LinePlacement interface {
	PerpendicularOffset() expr.Expression
	Repeated() bool
	Aligned() bool
	GeneralizeLine() bool
	Gap() expr.Expression
	InitialGap() expr.Expression
}

// ContrastEnhancement adjusts raster contrast.
type ContrastEnhancement interface {
	Method() ContrastMethod
	GammaValue() expr.Expression
	Options() map[string]expr.Expression
}

// ShadedRelief requests hill shading of an elevation raster.
type ShadedRelief interface {
	BrightnessOnly() bool
	ReliefFactor() expr.Expression
}

// ColorMapEntry maps one quantity to a colour.
type ColorMapEntry interface {
	Label() string
	Color() expr.Expression
	Opacity() expr.Expression
	Quantity() expr.Expression
}

// ColorMap maps raster values to colours.
type ColorMap interface {
	Type() int
	ExtendedColors() bool
	Entries() []ColorMapEntry
	Function() expr.Expression
}

// SelectedChannelType names one source band and its enhancement.
type SelectedChannelType interface {
	ChannelName() expr.Expression
	ContrastEnhancement() ContrastEnhancement
}

// ChannelSelection picks either one gray band or three RGB bands.
type ChannelSelection interface {
	GrayChannel() SelectedChannelType
	RGBChannels() []SelectedChannelType
}

// Symbolizer is the part shared by every symbolizer kind.
type Symbolizer interface {
	Name() string
	Description() Description
	Geometry() expr.Expression
	UnitOfMeasure() Unit
	Options() map[string]string
}

// PointSymbolizer draws a graphic at a point.
type PointSymbolizer interface {
	Symbolizer
	Graphic() Graphic
}

// LineSymbolizer strokes a line.
type LineSymbolizer interface {
	Symbolizer
	Stroke() Stroke
	PerpendicularOffset() expr.Expression
}

// PolygonSymbolizer fills and outlines an area.
type PolygonSymbolizer interface {
	Symbolizer
	Fill() Fill
	Stroke() Stroke
	Displacement() Displacement
	PerpendicularOffset() expr.Expression
}

// OtherText is an extra label text routed to a named target.
type OtherText interface {
	Target() string
	Text() expr.Expression
}

// TextSymbolizer draws a label.
type TextSymbolizer interface {
	Symbolizer
	Label() expr.Expression
	Fonts() []Font
	LabelPlacement() LabelPlacement
	Halo() Halo
	Fill() Fill
	Priority() expr.Expression
	Graphic() Graphic
	Snippet() expr.Expression
	FeatureDescription() expr.Expression
	OtherText() OtherText
}

// RasterSymbolizer draws coverage data.
type RasterSymbolizer interface {
	Symbolizer
	Opacity() expr.Expression
	ChannelSelection() ChannelSelection
	OverlapBehavior() OverlapBehavior
	ColorMap() ColorMap
	ContrastEnhancement() ContrastEnhancement
	ShadedRelief() ShadedRelief
	ImageOutline() Symbolizer
}

// ExtensionSymbolizer is a vendor-specific symbolizer.
type ExtensionSymbolizer interface {
	Symbolizer
	ExtensionName() string
	Parameters() map[string]expr.Expression
}

// Rule groups symbolizers under a filter and a scale range.
type Rule interface {
	Name() string
	Description() Description
	Legend() Graphic
	Filter() filter.Filter
	ElseFilter() bool
	MinScaleDenominator() float64
	MaxScaleDenominator() float64
	Symbolizers() []Symbolizer
	OnlineResource() string
}

// FeatureTypeStyle groups rules applying to some feature types.
type FeatureTypeStyle interface {
	Name() string
	Description() Description
	FeatureTypeNames() []string
	SemanticTypeIdentifiers() []SemanticType
	FeatureInstanceIDs() *filter.FeatureID
	Rules() []Rule
	Transformation() expr.Expression
	Options() map[string]string
}

// Style is the top-level paintable unit.
type Style interface {
	Name() string
	Description() Description
	IsDefault() bool
	FeatureTypeStyles() []FeatureTypeStyle
	Background() Fill
	DefaultSpecification() Symbolizer
}
