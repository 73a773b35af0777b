package sld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/style"
)

func TestCastIdentity(t *testing.T) {
	fill := NewFill()
	stroke := NewStroke()
	graphic := NewGraphic()
	anchor := NewAnchorPoint(expr.Float(0.5), expr.Float(0.5))
	poly := NewPolygonSymbolizer()
	rule := NewRule()
	fts := NewFeatureTypeStyle()
	st := NewStyle("s")

	assert.Same(t, fill, CastFill(fill))
	assert.Same(t, stroke, CastStroke(stroke))
	assert.Same(t, graphic, CastGraphic(graphic))
	assert.Same(t, anchor, CastAnchorPoint(anchor))
	assert.Same(t, poly, CastPolygonSymbolizer(poly))
	assert.Same(t, rule, CastRule(rule))
	assert.Same(t, fts, CastFeatureTypeStyle(fts))
	assert.Same(t, st, CastStyle(st))

	font := NewFont()
	assert.Same(t, font, CastFont(font))
	halo := NewHalo()
	assert.Same(t, halo, CastHalo(halo))
	cm := NewColorMap()
	assert.Same(t, cm, CastColorMap(cm))
	ce := NewContrastEnhancement(style.ContrastHistogram)
	assert.Same(t, ce, CastContrastEnhancement(ce))

	sym := CastSymbolizer(poly)
	assert.Same(t, poly, sym)
}

func TestCastNil(t *testing.T) {
	assert.Nil(t, CastFill(nil))
	assert.Nil(t, CastStroke(nil))
	assert.Nil(t, CastGraphic(nil))
	assert.Nil(t, CastAnchorPoint(nil))
	assert.Nil(t, CastDisplacement(nil))
	assert.Nil(t, CastFont(nil))
	assert.Nil(t, CastHalo(nil))
	assert.Nil(t, CastMark(nil))
	assert.Nil(t, CastColorMap(nil))
	assert.Nil(t, CastChannelSelection(nil))
	assert.Nil(t, CastContrastEnhancement(nil))
	assert.Nil(t, CastShadedRelief(nil))
	assert.Nil(t, CastPolygonSymbolizer(nil))
	assert.Nil(t, CastRule(nil))
	assert.Nil(t, CastFeatureTypeStyle(nil))
	assert.Nil(t, CastStyle(nil))
	assert.Nil(t, CastSymbolizer(nil))
	assert.Nil(t, CastGraphicalSymbol(nil))
	assert.Nil(t, CastLabelPlacement(nil))

	var typed *PolygonSymbolizer
	assert.Nil(t, CastSymbolizer(typed))
}

func TestCastFrozenCopies(t *testing.T) {
	tests := []struct {
		name string
		cast func() (any, any)
	}{
		{"anchor", func() (any, any) { return DefaultAnchorPoint, CastAnchorPoint(DefaultAnchorPoint) }},
		{"displacement", func() (any, any) { return DefaultDisplacement, CastDisplacement(DefaultDisplacement) }},
		{"fill", func() (any, any) { return DefaultFill, CastFill(DefaultFill) }},
		{"stroke", func() (any, any) { return DefaultStroke, CastStroke(DefaultStroke) }},
		{"graphic", func() (any, any) { return DefaultGraphic, CastGraphic(DefaultGraphic) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out := tt.cast()
			assert.NotSame(t, in, out)
			f, ok := out.(interface{ Frozen() bool })
			require.True(t, ok)
			assert.False(t, f.Frozen())
		})
	}

	f := CastFill(DefaultFill)
	require.NoError(t, f.SetColor(expr.Hex("#FF0000")))
	assert.True(t, expr.Equal(expr.Hex("#808080"), DefaultFill.Color()))
}

func TestCastForeignFill(t *testing.T) {
	src := foreignFill{
		color:   expr.Hex("#00FF00"),
		opacity: expr.Float(0.5),
		graphic: foreignGraphic{
			symbols: []style.GraphicalSymbol{foreignMark{name: expr.Str(MarkCircle)}},
			size:    expr.Int(8),
		},
	}

	f := CastFill(src)
	require.NotNil(t, f)
	assert.True(t, expr.Equal(src.color, f.Color()))
	assert.True(t, expr.Equal(src.opacity, f.Opacity()))
	assert.Nil(t, f.BackgroundColor(), "no counterpart in the capability interface")

	g, ok := f.GraphicFill().(*Graphic)
	require.True(t, ok)
	assert.True(t, expr.Equal(expr.Int(8), g.Size()))
	require.Len(t, g.Symbols(), 1)
	m, ok := g.Symbols()[0].(*Mark)
	require.True(t, ok)
	assert.True(t, expr.Equal(expr.Str(MarkCircle), m.WellKnownName()))
	assert.Nil(t, m.Fill())
}

func TestCastForeignGraphicDropsUnknownSymbols(t *testing.T) {
	src := foreignGraphic{
		symbols: []style.GraphicalSymbol{foreignSymbol{}, NewExternalGraphic("icon.png", "image/png")},
		anchor:  foreignAnchor{x: expr.Float(0.5), y: expr.Float(1)},
	}
	g := CastGraphic(src)
	require.Len(t, g.Symbols(), 1)
	_, ok := g.Symbols()[0].(*ExternalGraphic)
	assert.True(t, ok)

	a, ok := g.AnchorPoint().(*AnchorPoint)
	require.True(t, ok)
	assert.True(t, expr.Equal(expr.Float(1), a.AnchorPointY()))
	assert.Nil(t, g.Displacement())

	assert.Nil(t, CastGraphicalSymbol(foreignSymbol{}))
}

func TestCastForeignSymbolizers(t *testing.T) {
	stroke := foreignStroke{color: expr.Hex("#0000FF"), width: expr.Float(3), dashes: []expr.Expression{expr.Float(4), expr.Float(2)}}

	t.Run("polygon before line", func(t *testing.T) {
		sym := CastSymbolizer(foreignPolygon{
			foreignBase: foreignBase{name: "area"},
			fill:        foreignFill{color: expr.Hex("#FF0000")},
			stroke:      stroke,
		})
		p, ok := sym.(*PolygonSymbolizer)
		require.True(t, ok)
		assert.Equal(t, "area", p.Name())
		assert.Equal(t, style.Metre, p.UnitOfMeasure())
		assert.Equal(t, map[string]string{"k": "v"}, p.Options())
		name, ok := p.GeometryPropertyName()
		assert.True(t, ok)
		assert.Equal(t, "the_geom", name)
		assert.True(t, expr.Equal(expr.Float(2), p.PerpendicularOffset()))

		s := p.Stroke().(*Stroke)
		assert.True(t, expr.Equal(expr.Float(3), s.Width()))
		assert.Len(t, s.DashArray(), 2)
		j, ok := s.Join()
		assert.True(t, ok)
		assert.Equal(t, LineJoinRound, j)
	})

	t.Run("line", func(t *testing.T) {
		sym := CastSymbolizer(foreignLine{foreignBase: foreignBase{name: "road"}, stroke: stroke})
		l, ok := sym.(*LineSymbolizer)
		require.True(t, ok)
		assert.Equal(t, "road", l.Name())
		assert.NotNil(t, l.Stroke())
	})

	t.Run("point", func(t *testing.T) {
		sym := CastSymbolizer(foreignPoint{foreignBase: foreignBase{name: "poi"}, graphic: foreignGraphic{size: expr.Int(12)}})
		p, ok := sym.(*PointSymbolizer)
		require.True(t, ok)
		assert.True(t, expr.Equal(expr.Int(12), p.Graphic().Size()))
	})

	t.Run("unknown kind", func(t *testing.T) {
		assert.Nil(t, CastSymbolizer(foreignBase{name: "bare"}))
	})
}

func TestCastForeignRule(t *testing.T) {
	r := CastRule(foreignRule{symbolizers: []style.Symbolizer{
		foreignLine{foreignBase: foreignBase{name: "a"}},
		foreignBase{name: "dropped"},
		NewPointSymbolizer(),
	}})
	require.NotNil(t, r)
	assert.Equal(t, "foreign", r.Name())
	assert.Equal(t, 100.0, r.MinScaleDenominator())
	assert.Equal(t, 1000.0, r.MaxScaleDenominator())
	require.Len(t, r.SymbolizerList(), 2)
	assert.IsType(t, &LineSymbolizer{}, r.SymbolizerList()[0])
	assert.IsType(t, &PointSymbolizer{}, r.SymbolizerList()[1])
	assert.True(t, r.AppliesAt(500))
	assert.False(t, r.AppliesAt(1000))
}

func TestCastForeignChannelSelection(t *testing.T) {
	rgb := []style.SelectedChannelType{foreignChannel{"1"}, foreignChannel{"2"}, foreignChannel{"3"}}

	cs := CastChannelSelection(foreignChannelSelection{gray: foreignChannel{"g"}, rgb: rgb})
	assert.Nil(t, cs.GrayChannel(), "rgb wins over gray")
	require.Len(t, cs.RGBChannels(), 3)
	assert.True(t, expr.Equal(expr.Str("2"), cs.RGBChannels()[1].ChannelName()))

	cs = CastChannelSelection(foreignChannelSelection{gray: foreignChannel{"g"}, rgb: rgb[:2]})
	require.NotNil(t, cs.GrayChannel())
	assert.Nil(t, cs.RGBChannels())
}

func TestCastForeignColorMap(t *testing.T) {
	tests := []struct {
		name string
		typ  int
		want int
	}{
		{"intervals", style.ColorMapIntervals, style.ColorMapIntervals},
		{"values", style.ColorMapValues, style.ColorMapValues},
		{"invalid falls back to ramp", 42, style.ColorMapRamp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := CastColorMap(foreignColorMap{typ: tt.typ})
			assert.Equal(t, tt.want, m.Type())
			assert.True(t, m.ExtendedColors())
			assert.Len(t, m.Entries(), 1)
		})
	}
}

func TestCastForeignRaster(t *testing.T) {
	tests := []struct {
		name     string
		overlap  style.OverlapBehavior
		contrast foreignContrast
		wantOver style.OverlapBehavior
		wantAlgo string
	}{
		{
			name:     "valid values kept",
			overlap:  style.Average,
			contrast: foreignContrast{style.ContrastNormalize, map[string]expr.Expression{AlgorithmOption: expr.Str(ClipToZero)}},
			wantOver: style.Average,
			wantAlgo: ClipToZero,
		},
		{
			name:     "unknown overlap dropped",
			overlap:  "BOGUS",
			contrast: foreignContrast{method: style.ContrastNone},
		},
		{
			name:     "algorithm not allowed for method dropped",
			contrast: foreignContrast{style.ContrastHistogram, map[string]expr.Expression{AlgorithmOption: expr.Str(ClipToZero)}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CastRasterSymbolizer(foreignRaster{foreignBase: foreignBase{name: "dem"}, overlap: tt.overlap, contrast: tt.contrast})
			require.NotNil(t, r)
			assert.Equal(t, tt.wantOver, r.OverlapBehavior())
			ce := CastContrastEnhancement(r.ContrastEnhancement())
			require.NotNil(t, ce)
			assert.Equal(t, tt.contrast.method, ce.Method())
			assert.Equal(t, tt.wantAlgo, ce.Algorithm())
		})
	}
}
