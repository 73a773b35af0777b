package sld

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/filter"
	"github.com/gogpu/sld/style"
)

// node is the common surface of the model types used by these tests.
type node interface {
	Hash() uint64
}

func sampleStyle() *Style {
	poly := NewPolygonSymbolizer()
	_ = poly.fill.SetColor(expr.Hex("#808080"))
	poly.SetStroke(NewStroke())
	poly.SetGeometryPropertyName("the_geom")

	text := NewTextSymbolizer()
	text.SetLabel(expr.Property("name"))
	text.AddFont(NewFont())
	text.SetHalo(NewHalo())
	text.SetLabelPlacement(NewPointPlacement())

	rule := NewRule(poly, text)
	rule.SetName("parcels")
	rule.SetFilter(filter.Cmp(expr.Property("area"), filter.OpGreater, expr.Float(10)))
	rule.SetDescription(NewDescription("Parcels", "Cadastral parcels"))

	fts := NewFeatureTypeStyle(rule)
	fts.SetFeatureTypeNames("parcel")
	fts.SetSemanticTypeIdentifiers(style.SemanticPolygon, style.SemanticText)

	st := NewStyle("cadastre", fts)
	st.SetBackground(NewFill())
	return st
}

func TestEqualHashConsistency(t *testing.T) {
	tests := []struct {
		name   string
		make   func() node
		modify func(node)
		equal  func(a, b node) bool
	}{
		{
			name:   "fill",
			make:   func() node { return NewFill() },
			modify: func(n node) { _ = n.(*Fill).SetOpacity(expr.Float(0.3)) },
			equal:  func(a, b node) bool { return a.(*Fill).Equal(b.(*Fill)) },
		},
		{
			name:   "stroke",
			make:   func() node { return NewStroke() },
			modify: func(n node) { _ = n.(*Stroke).SetDashArray([]expr.Expression{expr.Float(2)}) },
			equal:  func(a, b node) bool { return a.(*Stroke).Equal(b.(*Stroke)) },
		},
		{
			name:   "font",
			make:   func() node { return NewFont() },
			modify: func(n node) { n.(*Font).AddFamily(expr.Str("Sans")) },
			equal:  func(a, b node) bool { return a.(*Font).Equal(b.(*Font)) },
		},
		{
			name:   "contrast",
			make:   func() node { return NewContrastEnhancement(style.ContrastNormalize) },
			modify: func(n node) { _ = n.(*ContrastEnhancement).SetAlgorithm(ClipToZero) },
			equal: func(a, b node) bool {
				return a.(*ContrastEnhancement).Equal(b.(*ContrastEnhancement))
			},
		},
		{
			name:   "feature type style",
			make:   func() node { return sampleStyle().FeatureTypeStyleList()[0] },
			modify: func(n node) { n.(*FeatureTypeStyle).SetName("other") },
			equal: func(a, b node) bool {
				return a.(*FeatureTypeStyle).Equal(b.(*FeatureTypeStyle))
			},
		},
		{
			name:   "style",
			make:   func() node { return sampleStyle() },
			modify: func(n node) { n.(*Style).FeatureTypeStyleList()[0].RuleList()[0].SetMaxScaleDenominator(5000) },
			equal:  func(a, b node) bool { return a.(*Style).Equal(b.(*Style)) },
		},
		{
			name: "descriptor",
			make: func() node {
				return NewStyledLayerDescriptor("sld", NewNamedLayer("roads", "default"), NewUserLayer("mine", sampleStyle()))
			},
			modify: func(n node) { n.(*StyledLayerDescriptor).SetTitle("changed") },
			equal: func(a, b node) bool {
				return a.(*StyledLayerDescriptor).Equal(b.(*StyledLayerDescriptor))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := tt.make(), tt.make()
			assert.True(t, tt.equal(a, a), "reflexive")
			require.True(t, tt.equal(a, b))
			assert.True(t, tt.equal(b, a), "symmetric")
			assert.Equal(t, a.Hash(), b.Hash())

			tt.modify(b)
			assert.False(t, tt.equal(a, b))
			assert.False(t, tt.equal(b, a))
		})
	}
}

func TestEqualHashSignedZero(t *testing.T) {
	negZero := expr.Float(math.Copysign(0, -1))
	tests := []struct {
		name string
		a, b node
		eq   func(a, b node) bool
	}{
		{
			name: "displacement",
			a:    NewDisplacement(expr.Float(0), expr.Float(0)),
			b:    NewDisplacement(negZero, expr.Float(0)),
			eq:   func(a, b node) bool { return a.(*Displacement).Equal(b.(*Displacement)) },
		},
		{
			name: "anchor point",
			a:    NewAnchorPoint(expr.Int(0), expr.Float(0.5)),
			b:    NewAnchorPoint(negZero, expr.Float(0.5)),
			eq:   func(a, b node) bool { return a.(*AnchorPoint).Equal(b.(*AnchorPoint)) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.eq(tt.a, tt.b))
			assert.Equal(t, tt.a.Hash(), tt.b.Hash())
		})
	}
}

func TestEqualNilAndForeign(t *testing.T) {
	f := NewFill()
	assert.False(t, f.Equal(nil))
	assert.False(t, f.Equal((*Fill)(nil)))
	assert.True(t, (*Fill)(nil).Equal((*Fill)(nil)))
	assert.Equal(t, uint64(0), (*Fill)(nil).Hash())

	// A foreign value with the same accessors is never equal.
	assert.False(t, f.Equal(foreignFill{color: f.Color(), opacity: f.Opacity()}))

	a := NewAnchorPoint(expr.Float(0), expr.Float(0.5))
	assert.False(t, a.Equal(foreignAnchor{x: expr.Float(0), y: expr.Float(0.5)}))

	assert.False(t, EqualSymbolizers(NewLineSymbolizer(), NewPolygonSymbolizer()))
	assert.True(t, EqualSymbolizers(nil, nil))
}

func TestEqualIgnoresFrozen(t *testing.T) {
	assert.True(t, DefaultFill.Equal(NewFill()))
	assert.True(t, NewFill().Equal(DefaultFill))
	assert.Equal(t, DefaultFill.Hash(), NewFill().Hash())
	assert.True(t, DefaultStroke.Equal(NewStroke()))
}

func TestEqualSetSemantics(t *testing.T) {
	a := NewFeatureTypeStyle()
	a.SetFeatureTypeNames("road", "river")
	a.SetSemanticTypeIdentifiers(style.SemanticLine, style.SemanticPolygon)

	b := NewFeatureTypeStyle()
	b.SetFeatureTypeNames("river", "road")
	b.SetSemanticTypeIdentifiers(style.SemanticPolygon, style.SemanticLine)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	// Rules are ordered.
	r1, r2 := NewRule(), NewRule()
	r2.SetName("second")
	a.SetRules([]style.Rule{r1, r2})
	b.SetRules([]style.Rule{r2, r1})
	assert.False(t, a.Equal(b))
}

func TestEqualOptionMaps(t *testing.T) {
	a := NewPointSymbolizer()
	a.SetOption("x", "1")
	a.SetOption("y", "2")
	b := NewPointSymbolizer()
	b.SetOption("y", "2")
	b.SetOption("x", "1")
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestCloneDeep(t *testing.T) {
	orig := sampleStyle()
	c := orig.Clone()

	require.True(t, orig.Equal(c))
	assert.Equal(t, orig.Hash(), c.Hash())
	assert.NotSame(t, orig, c)

	of, cf := orig.FeatureTypeStyleList()[0], c.FeatureTypeStyleList()[0]
	assert.NotSame(t, of, cf)
	assert.NotSame(t, of.RuleList()[0], cf.RuleList()[0])
	assert.NotSame(t, orig.background, c.background)

	op := of.RuleList()[0].SymbolizerList()[0].(*PolygonSymbolizer)
	cp := cf.RuleList()[0].SymbolizerList()[0].(*PolygonSymbolizer)
	assert.NotSame(t, op, cp)
	assert.NotSame(t, op.fill, cp.fill)
	assert.NotSame(t, op.stroke, cp.stroke)

	// Expression leaves are shared.
	assert.Equal(t, op.fill.Color(), cp.fill.Color())

	require.NoError(t, cp.fill.SetColor(expr.Hex("#FF0000")))
	assert.True(t, expr.Equal(expr.Hex("#808080"), op.fill.Color()))
	assert.False(t, orig.Equal(c))
}

func TestCloneNilFields(t *testing.T) {
	p := NewPolygonSymbolizer()
	p.SetFill(nil)
	c := p.Clone()
	assert.Nil(t, c.Fill())
	assert.Nil(t, c.Stroke())
	assert.True(t, p.Equal(c))

	var nilRule *Rule
	assert.Nil(t, nilRule.Clone())

	g := DefaultGraphic.Clone()
	assert.False(t, g.Frozen())
	assert.NoError(t, g.SetSize(expr.Int(4)))
}
