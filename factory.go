package sld

import (
	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/filter"
	"github.com/gogpu/sld/style"
)

// StyleFactory builds style nodes, creating every literal through an
// injected expression builder.
type StyleFactory struct {
	exprs expr.Builder
}

// NewStyleFactory returns a factory using b. A nil b selects
// expr.Factory.
func NewStyleFactory(b expr.Builder) *StyleFactory {
	if b == nil {
		b = expr.Factory{}
	}
	return &StyleFactory{exprs: b}
}

func (f *StyleFactory) lit(v any) expr.Expression { return f.exprs.Literal(v) }

// Fill returns a fill of the given colour and opacity.
func (f *StyleFactory) Fill(color, opacity expr.Expression) *Fill {
	return &Fill{color: color, opacity: opacity}
}

// Stroke returns a solid stroke of the given colour and width with
// opacity 1, miter joins and butt caps.
func (f *StyleFactory) Stroke(color, width expr.Expression) *Stroke {
	return &Stroke{
		color:      color,
		width:      width,
		opacity:    f.lit(1.0),
		lineJoin:   f.lit(LineJoinMiter.String()),
		lineCap:    f.lit(LineCapButt.String()),
		dashOffset: f.lit(0.0),
	}
}

// DashedStroke returns a stroke like Stroke with a dash array.
func (f *StyleFactory) DashedStroke(color, width expr.Expression, dashes ...float64) *Stroke {
	s := f.Stroke(color, width)
	for _, d := range dashes {
		s.dashArray = append(s.dashArray, f.lit(d))
	}
	return s
}

// Font returns a font. It fails with ErrNilArgument when families is
// empty or any component is nil.
func (f *StyleFactory) Font(families []expr.Expression, style, weight, size expr.Expression) (*Font, error) {
	if len(families) == 0 || style == nil || weight == nil || size == nil {
		return nil, ErrNilArgument
	}
	for _, fam := range families {
		if fam == nil {
			return nil, ErrNilArgument
		}
	}
	return &Font{family: copyExprs(families), style: style, weight: weight, size: size}, nil
}

// Halo returns a halo drawn with fill.
func (f *StyleFactory) Halo(fill style.Fill, radius expr.Expression) *Halo {
	return &Halo{fill: CastFill(fill), radius: radius}
}

// Mark returns a well-known mark.
func (f *StyleFactory) Mark(name expr.Expression, fill style.Fill, stroke style.Stroke) *Mark {
	return &Mark{wellKnownName: name, fill: CastFill(fill), stroke: CastStroke(stroke)}
}

func (f *StyleFactory) namedMark(name string) *Mark {
	return f.Mark(f.lit(name), NewFill(), NewStroke())
}

func (f *StyleFactory) SquareMark() *Mark   { return f.namedMark(MarkSquare) }
func (f *StyleFactory) CircleMark() *Mark   { return f.namedMark(MarkCircle) }
func (f *StyleFactory) TriangleMark() *Mark { return f.namedMark(MarkTriangle) }
func (f *StyleFactory) StarMark() *Mark     { return f.namedMark(MarkStar) }
func (f *StyleFactory) CrossMark() *Mark    { return f.namedMark(MarkCross) }
func (f *StyleFactory) XMark() *Mark        { return f.namedMark(MarkX) }

// Graphic returns a graphic drawing the first supported of symbols.
// Symbols of unknown kinds are dropped.
func (f *StyleFactory) Graphic(symbols []style.GraphicalSymbol, opacity, size, rotation expr.Expression) *Graphic {
	return &Graphic{
		symbols:  castSymbols(symbols),
		opacity:  opacity,
		size:     size,
		rotation: rotation,
	}
}

// DefaultGraphic returns a graphic holding one square mark at its native
// size.
func (f *StyleFactory) DefaultGraphic() *Graphic {
	return f.Graphic([]style.GraphicalSymbol{f.SquareMark()}, f.lit(1.0), expr.Nil, f.lit(0.0))
}

// PointPlacement returns a label placement around a point.
func (f *StyleFactory) PointPlacement(anchor style.AnchorPoint, disp style.Displacement, rotation expr.Expression) *PointPlacement {
	return &PointPlacement{
		anchorPoint:  CastAnchorPoint(anchor),
		displacement: CastDisplacement(disp),
		rotation:     rotation,
	}
}

// LinePlacement returns an aligned label placement along a line, offset
// perpendicularly by offset.
func (f *StyleFactory) LinePlacement(offset expr.Expression) *LinePlacement {
	return &LinePlacement{offset: offset, aligned: true}
}

// DefaultPointSymbolizer returns a point symbolizer drawing a default
// square mark.
func (f *StyleFactory) DefaultPointSymbolizer() *PointSymbolizer {
	s := NewPointSymbolizer()
	s.graphic = f.DefaultGraphic()
	return s
}

// DefaultLineSymbolizer returns a line symbolizer with a black stroke.
func (f *StyleFactory) DefaultLineSymbolizer() *LineSymbolizer {
	s := NewLineSymbolizer()
	s.stroke = f.Stroke(f.lit(expr.RGB(0, 0, 0)), f.lit(1.0))
	return s
}

// DefaultPolygonSymbolizer returns a polygon symbolizer with a gray fill
// and a black outline.
func (f *StyleFactory) DefaultPolygonSymbolizer() *PolygonSymbolizer {
	s := NewPolygonSymbolizer()
	s.fill = f.Fill(f.lit(expr.RGB(0x80, 0x80, 0x80)), f.lit(1.0))
	s.stroke = f.Stroke(f.lit(expr.RGB(0, 0, 0)), f.lit(1.0))
	return s
}

// DefaultTextSymbolizer returns a text symbolizer printing the literal
// "Label" in the default font at a point placement.
func (f *StyleFactory) DefaultTextSymbolizer() *TextSymbolizer {
	s := NewTextSymbolizer()
	s.label = f.lit("Label")
	s.fonts = []*Font{NewFont()}
	s.placement = NewPointPlacement()
	return s
}

// DefaultRasterSymbolizer returns an opaque raster symbolizer with no
// channel selection or colour map, drawing the latest coverage on top.
func (f *StyleFactory) DefaultRasterSymbolizer() *RasterSymbolizer {
	s := NewRasterSymbolizer()
	s.opacity = f.lit(1.0)
	s.overlap = style.LatestOnTop
	return s
}

// ChannelSelection returns a selection of one gray channel or three RGB
// channels. Other lengths fail with a *CountError.
func (f *StyleFactory) ChannelSelection(channels ...style.SelectedChannelType) (*ChannelSelection, error) {
	c := NewChannelSelection()
	if err := c.SetSelectedChannels(channels...); err != nil {
		return nil, err
	}
	return c, nil
}

// SelectedChannelType returns a channel reference by source band name.
func (f *StyleFactory) SelectedChannelType(name string, ce style.ContrastEnhancement) *SelectedChannelType {
	return NewSelectedChannelType(f.lit(name), ce)
}

// ContrastEnhancement returns an enhancement using method with the
// given gamma.
func (f *StyleFactory) ContrastEnhancement(method style.ContrastMethod, gamma expr.Expression) *ContrastEnhancement {
	c := NewContrastEnhancement(method)
	c.gamma = gamma
	return c
}

func (f *StyleFactory) RemoteOWS(service, onlineResource string) *RemoteOWS {
	return &RemoteOWS{Service: service, OnlineResource: onlineResource}
}

func (f *StyleFactory) FeatureTypeConstraint(typeName string, flt filter.Filter, extents ...Extent) *FeatureTypeConstraint {
	return NewFeatureTypeConstraint(typeName, flt, extents...)
}
