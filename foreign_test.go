package sld

import (
	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/filter"
	"github.com/gogpu/sld/style"
)

// Foreign implementations of the capability interfaces, standing in for
// another library's style model.

type foreignAnchor struct{ x, y expr.Expression }

func (a foreignAnchor) AnchorPointX() expr.Expression { return a.x }
func (a foreignAnchor) AnchorPointY() expr.Expression { return a.y }

type foreignDisplacement struct{ x, y expr.Expression }

func (d foreignDisplacement) DisplacementX() expr.Expression { return d.x }
func (d foreignDisplacement) DisplacementY() expr.Expression { return d.y }

type foreignFill struct {
	color, opacity expr.Expression
	graphic        style.Graphic
}

func (f foreignFill) Color() expr.Expression     { return f.color }
func (f foreignFill) Opacity() expr.Expression   { return f.opacity }
func (f foreignFill) GraphicFill() style.Graphic { return f.graphic }

type foreignStroke struct {
	color, width expr.Expression
	dashes       []expr.Expression
}

func (s foreignStroke) Color() expr.Expression       { return s.color }
func (s foreignStroke) Width() expr.Expression       { return s.width }
func (s foreignStroke) Opacity() expr.Expression     { return expr.Float(1) }
func (s foreignStroke) LineJoin() expr.Expression    { return expr.Str("round") }
func (s foreignStroke) LineCap() expr.Expression     { return expr.Str("round") }
func (s foreignStroke) DashArray() []expr.Expression { return s.dashes }
func (s foreignStroke) DashOffset() expr.Expression  { return nil }
func (s foreignStroke) GraphicFill() style.Graphic   { return nil }
func (s foreignStroke) GraphicStroke() style.Graphic { return nil }

type foreignMark struct {
	name expr.Expression
	fill style.Fill
}

func (m foreignMark) WellKnownName() expr.Expression   { return m.name }
func (m foreignMark) Fill() style.Fill                 { return m.fill }
func (m foreignMark) Stroke() style.Stroke             { return nil }
func (m foreignMark) ExternalMark() style.ExternalMark { return nil }

// foreignSymbol is a graphical symbol of a kind this package does not
// know.
type foreignSymbol struct{}

type foreignGraphic struct {
	symbols []style.GraphicalSymbol
	size    expr.Expression
	anchor  style.AnchorPoint
}

func (g foreignGraphic) GraphicalSymbols() []style.GraphicalSymbol { return g.symbols }
func (g foreignGraphic) Opacity() expr.Expression                  { return expr.Float(1) }
func (g foreignGraphic) Size() expr.Expression                     { return g.size }
func (g foreignGraphic) Rotation() expr.Expression                 { return expr.Float(0) }
func (g foreignGraphic) AnchorPoint() style.AnchorPoint            { return g.anchor }
func (g foreignGraphic) Displacement() style.Displacement          { return nil }
func (g foreignGraphic) Gap() expr.Expression                      { return nil }
func (g foreignGraphic) InitialGap() expr.Expression               { return nil }

type foreignBase struct{ name string }

func (b foreignBase) Name() string                   { return b.name }
func (b foreignBase) Description() style.Description { return nil }
func (b foreignBase) Geometry() expr.Expression      { return expr.Property("the_geom") }
func (b foreignBase) UnitOfMeasure() style.Unit      { return style.Metre }
func (b foreignBase) Options() map[string]string     { return map[string]string{"k": "v"} }

type foreignPolygon struct {
	foreignBase
	fill   style.Fill
	stroke style.Stroke
}

func (p foreignPolygon) Fill() style.Fill                     { return p.fill }
func (p foreignPolygon) Stroke() style.Stroke                 { return p.stroke }
func (p foreignPolygon) Displacement() style.Displacement     { return nil }
func (p foreignPolygon) PerpendicularOffset() expr.Expression { return expr.Float(2) }

type foreignLine struct {
	foreignBase
	stroke style.Stroke
}

func (l foreignLine) Stroke() style.Stroke                 { return l.stroke }
func (l foreignLine) PerpendicularOffset() expr.Expression { return nil }

type foreignPoint struct {
	foreignBase
	graphic style.Graphic
}

func (p foreignPoint) Graphic() style.Graphic { return p.graphic }

type foreignChannel struct{ name string }

func (c foreignChannel) ChannelName() expr.Expression                   { return expr.Str(c.name) }
func (c foreignChannel) ContrastEnhancement() style.ContrastEnhancement { return nil }

type foreignChannelSelection struct {
	gray style.SelectedChannelType
	rgb  []style.SelectedChannelType
}

func (c foreignChannelSelection) GrayChannel() style.SelectedChannelType   { return c.gray }
func (c foreignChannelSelection) RGBChannels() []style.SelectedChannelType { return c.rgb }

type foreignColorMap struct{ typ int }

func (m foreignColorMap) Type() int            { return m.typ }
func (m foreignColorMap) ExtendedColors() bool { return true }
func (m foreignColorMap) Function() expr.Expression {
	return nil
}

func (m foreignColorMap) Entries() []style.ColorMapEntry {
	return []style.ColorMapEntry{NewColorMapEntry(expr.Float(0), expr.Hex("#000000")), nil}
}

type foreignRule struct {
	symbolizers []style.Symbolizer
}

func (r foreignRule) Name() string                    { return "foreign" }
func (r foreignRule) Description() style.Description  { return nil }
func (r foreignRule) Legend() style.Graphic           { return nil }
func (r foreignRule) Filter() filter.Filter           { return filter.Include }
func (r foreignRule) ElseFilter() bool                { return false }
func (r foreignRule) MinScaleDenominator() float64    { return 100 }
func (r foreignRule) MaxScaleDenominator() float64    { return 1000 }
func (r foreignRule) Symbolizers() []style.Symbolizer { return r.symbolizers }
func (r foreignRule) OnlineResource() string          { return "" }

type foreignContrast struct {
	method  style.ContrastMethod
	options map[string]expr.Expression
}

func (c foreignContrast) Method() style.ContrastMethod        { return c.method }
func (c foreignContrast) GammaValue() expr.Expression         { return expr.Float(1) }
func (c foreignContrast) Options() map[string]expr.Expression { return c.options }

type foreignRaster struct {
	foreignBase
	overlap  style.OverlapBehavior
	contrast style.ContrastEnhancement
}

func (r foreignRaster) Opacity() expr.Expression                       { return expr.Float(1) }
func (r foreignRaster) ChannelSelection() style.ChannelSelection       { return nil }
func (r foreignRaster) OverlapBehavior() style.OverlapBehavior         { return r.overlap }
func (r foreignRaster) ColorMap() style.ColorMap                       { return nil }
func (r foreignRaster) ContrastEnhancement() style.ContrastEnhancement { return r.contrast }
func (r foreignRaster) ShadedRelief() style.ShadedRelief               { return nil }
func (r foreignRaster) ImageOutline() style.Symbolizer                 { return nil }
