package sld

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/style"
)

func channels(n int) []style.SelectedChannelType {
	out := make([]style.SelectedChannelType, n)
	for i := range out {
		out[i] = NewSelectedChannelType(expr.Int(int64(i+1)), nil)
	}
	return out
}

func TestSetRGBChannels(t *testing.T) {
	for _, n := range []int{0, 1, 2, 4} {
		cs := NewChannelSelection()
		err := cs.SetRGBChannels(channels(n))
		require.Error(t, err, "length %d", n)
		assert.ErrorIs(t, err, ErrChannelCount)

		var ce *CountError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, n, ce.Got)
		assert.Nil(t, cs.RGBChannels())
	}

	cs := NewChannelSelection()
	cs.SetGrayChannel(NewSelectedChannelType(expr.Str("gray"), nil))
	in := channels(3)
	require.NoError(t, cs.SetRGBChannels(in))
	got := cs.RGBChannels()
	require.Len(t, got, 3)
	for i := range in {
		assert.Same(t, in[i], got[i])
	}
	assert.Nil(t, cs.GrayChannel(), "rgb clears gray")

	in[1] = nil
	assert.ErrorIs(t, cs.SetRGBChannels(in), ErrNilArgument)
}

func TestSetSelectedChannels(t *testing.T) {
	tests := []struct {
		n       int
		wantErr bool
	}{
		{0, true},
		{1, false},
		{2, true},
		{3, false},
		{4, true},
	}
	for _, tt := range tests {
		cs := NewChannelSelection()
		err := cs.SetSelectedChannels(channels(tt.n)...)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrChannelCount, "length %d", tt.n)
			assert.Contains(t, err.Error(), "want 1 or 3")
			continue
		}
		require.NoError(t, err, "length %d", tt.n)
		assert.Len(t, cs.SelectedChannels(), tt.n)
	}

	cs := NewChannelSelection()
	require.NoError(t, cs.SetSelectedChannels(channels(1)...))
	assert.NotNil(t, cs.GrayChannel())
	assert.Nil(t, cs.RGBChannels())
}

func TestColorMapSetType(t *testing.T) {
	for _, typ := range []int{style.ColorMapRamp, style.ColorMapIntervals, style.ColorMapValues} {
		m := NewColorMap()
		require.NoError(t, m.SetType(typ))
		assert.Equal(t, typ, m.Type())
	}
	for _, typ := range []int{-1, 0, 4, 100} {
		m := NewColorMap()
		require.NoError(t, m.SetType(style.ColorMapValues))
		assert.ErrorIs(t, m.SetType(typ), ErrColorMapType)
		assert.Equal(t, style.ColorMapValues, m.Type(), "rejected type leaves map unchanged")
	}
}

func TestContrastAlgorithm(t *testing.T) {
	tests := []struct {
		name    string
		method  style.ContrastMethod
		algo    string
		wantErr error
	}{
		{"normalize stretch", style.ContrastNormalize, StretchToMinimumMaximum, nil},
		{"normalize clip", style.ContrastNormalize, ClipToMinimumMaximum, nil},
		{"normalize zero", style.ContrastNormalize, ClipToZero, nil},
		{"normalize unknown", style.ContrastNormalize, "Sharpen", ErrAlgorithm},
		{"histogram allows none", style.ContrastHistogram, ClipToZero, ErrAlgorithm},
		{"clear", style.ContrastNormalize, "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ce := NewContrastEnhancement(tt.method)
			err := ce.SetAlgorithm(tt.algo)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, ce.Algorithm())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.algo, ce.Algorithm())
		})
	}
}

func TestContrastMethodChangeDropsAlgorithm(t *testing.T) {
	tests := []struct {
		name     string
		change   func(*ContrastEnhancement) error
		wantAlgo string
	}{
		{"histogram", func(ce *ContrastEnhancement) error { ce.SetHistogram(); return nil }, ""},
		{"type none", func(ce *ContrastEnhancement) error { return ce.SetType(expr.Nil) }, ""},
		{"type logarithmic", func(ce *ContrastEnhancement) error { return ce.SetType(expr.Str("LOGARITHMIC")) }, ""},
		{"same method", func(ce *ContrastEnhancement) error { ce.SetNormalize(); return nil }, ClipToZero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ce := NewContrastEnhancement(style.ContrastNormalize)
			require.NoError(t, ce.SetAlgorithm(ClipToZero))
			ce.SetOption("minValue", expr.Float(3))
			require.NoError(t, tt.change(ce))
			assert.Equal(t, tt.wantAlgo, ce.Algorithm())
			assert.True(t, expr.Equal(expr.Float(3), ce.Option("minValue")), "other options kept")
		})
	}
}

func TestContrastType(t *testing.T) {
	ce := NewContrastEnhancement(style.ContrastNone)
	assert.Nil(t, ce.Type())

	ce.SetNormalize()
	assert.True(t, expr.Equal(expr.Str("NORMALIZE"), ce.Type()))
	assert.Equal(t, style.ContrastNormalize, ce.Method())

	require.NoError(t, ce.SetType(expr.Str("histogram")))
	assert.Equal(t, style.ContrastHistogram, ce.Method())
	assert.True(t, expr.Equal(expr.Str("HISTOGRAM"), ce.Type()))

	require.NoError(t, ce.SetType(expr.Nil))
	assert.Equal(t, style.ContrastNone, ce.Method())

	assert.ErrorIs(t, ce.SetType(expr.Str("sharpen")), ErrContrastMethod)
	assert.Equal(t, style.ContrastNone, ce.Method())
}

func TestParseOverlapBehavior(t *testing.T) {
	tests := []struct {
		in   string
		want style.OverlapBehavior
		ok   bool
	}{
		{"LATEST_ON_TOP", style.LatestOnTop, true},
		{"earliest_on_top", style.EarliestOnTop, true},
		{" Average ", style.Average, true},
		{"RANDOM", style.Random, true},
		{"", "", false},
		{"TOP", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOverlapBehavior(tt.in)
			if !tt.ok {
				assert.ErrorIs(t, err, ErrOverlapBehavior)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRasterSetters(t *testing.T) {
	r := NewRasterSymbolizer()
	require.NoError(t, r.SetOverlapBehavior(style.Average))
	assert.Equal(t, style.Average, r.OverlapBehavior())
	assert.ErrorIs(t, r.SetOverlapBehavior("SIDEWAYS"), ErrOverlapBehavior)
	assert.Equal(t, style.Average, r.OverlapBehavior())

	require.NoError(t, r.SetImageOutline(NewLineSymbolizer()))
	assert.IsType(t, &LineSymbolizer{}, r.ImageOutline())
	require.NoError(t, r.SetImageOutline(NewPolygonSymbolizer()))
	assert.IsType(t, &PolygonSymbolizer{}, r.ImageOutline())
	assert.ErrorIs(t, r.SetImageOutline(NewPointSymbolizer()), ErrImageOutline)
	require.NoError(t, r.SetImageOutline(nil))
	assert.Nil(t, r.ImageOutline())
}

func TestFrozenDefaults(t *testing.T) {
	red := expr.Hex("#FF0000")
	g := NewGraphic()

	tests := []struct {
		name    string
		hash    func() uint64
		setters []func() error
	}{
		{
			name: "anchor point",
			hash: DefaultAnchorPoint.Hash,
			setters: []func() error{
				func() error { return DefaultAnchorPoint.SetAnchorPointX(expr.Float(1)) },
				func() error { return DefaultAnchorPoint.SetAnchorPointY(expr.Float(1)) },
			},
		},
		{
			name: "displacement",
			hash: DefaultDisplacement.Hash,
			setters: []func() error{
				func() error { return DefaultDisplacement.SetDisplacementX(expr.Float(1)) },
				func() error { return DefaultDisplacement.SetDisplacementY(expr.Float(1)) },
			},
		},
		{
			name: "fill",
			hash: DefaultFill.Hash,
			setters: []func() error{
				func() error { return DefaultFill.SetColor(red) },
				func() error { return DefaultFill.SetBackgroundColor(red) },
				func() error { return DefaultFill.SetOpacity(expr.Float(0)) },
				func() error { return DefaultFill.SetGraphicFill(g) },
			},
		},
		{
			name: "null fill",
			hash: NullFill.Hash,
			setters: []func() error{
				func() error { return NullFill.SetColor(red) },
			},
		},
		{
			name: "stroke",
			hash: DefaultStroke.Hash,
			setters: []func() error{
				func() error { return DefaultStroke.SetColor(red) },
				func() error { return DefaultStroke.SetWidth(expr.Float(9)) },
				func() error { return DefaultStroke.SetOpacity(expr.Float(0)) },
				func() error { return DefaultStroke.SetLineJoin(expr.Str("round")) },
				func() error { return DefaultStroke.SetLineCap(expr.Str("round")) },
				func() error { return DefaultStroke.SetDashArray([]expr.Expression{expr.Float(1)}) },
				func() error { return DefaultStroke.SetDashOffset(expr.Float(1)) },
				func() error { return DefaultStroke.SetGraphicFill(g) },
				func() error { return DefaultStroke.SetGraphicStroke(g) },
			},
		},
		{
			name: "null stroke",
			hash: NullStroke.Hash,
			setters: []func() error{
				func() error { return NullStroke.SetWidth(expr.Float(1)) },
			},
		},
		{
			name: "graphic",
			hash: DefaultGraphic.Hash,
			setters: []func() error{
				func() error { return DefaultGraphic.SetGraphicalSymbols([]style.GraphicalSymbol{NewMark()}) },
				func() error { return DefaultGraphic.AddGraphicalSymbol(NewMark()) },
				func() error { return DefaultGraphic.SetOpacity(expr.Float(0)) },
				func() error { return DefaultGraphic.SetSize(expr.Int(1)) },
				func() error { return DefaultGraphic.SetRotation(expr.Float(45)) },
				func() error { return DefaultGraphic.SetAnchorPoint(NewAnchorPoint(nil, nil)) },
				func() error { return DefaultGraphic.SetDisplacement(NewDisplacement(nil, nil)) },
				func() error { return DefaultGraphic.SetGap(expr.Float(1)) },
				func() error { return DefaultGraphic.SetInitialGap(expr.Float(1)) },
			},
		},
		{
			name: "null graphic",
			hash: NullGraphic.Hash,
			setters: []func() error{
				func() error { return NullGraphic.SetSize(expr.Int(1)) },
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.hash()
			for i, set := range tt.setters {
				assert.ErrorIs(t, set(), ErrFrozen, "setter %d", i)
			}
			assert.Equal(t, before, tt.hash(), "accessors unchanged")
		})
	}

	assert.True(t, expr.Equal(expr.Float(0.5), DefaultAnchorPoint.AnchorPointY()))
	assert.True(t, expr.Equal(expr.Hex("#808080"), DefaultFill.Color()))
	assert.True(t, expr.IsNil(NullFill.Color()))
	assert.True(t, expr.Equal(expr.Int(16), DefaultGraphic.Size()))
	assert.Empty(t, DefaultGraphic.Symbols())
}

func TestFrozenDefaultsStoredAsCopies(t *testing.T) {
	p := NewPolygonSymbolizer()
	p.SetFill(DefaultFill)
	p.SetStroke(DefaultStroke)

	f := p.Fill().(*Fill)
	assert.NotSame(t, DefaultFill, f)
	assert.False(t, f.Frozen())
	assert.True(t, DefaultFill.Equal(f))
	require.NoError(t, f.SetColor(expr.Hex("#00FF00")))
	assert.True(t, expr.Equal(expr.Hex("#808080"), DefaultFill.Color()))

	g := NewGraphic()
	require.NoError(t, g.SetAnchorPoint(DefaultAnchorPoint))
	assert.NotSame(t, DefaultAnchorPoint, g.AnchorPoint())
}

func TestCountErrorMessage(t *testing.T) {
	err := error(&CountError{Op: "SetRGBChannels", Got: 2, Want: []int{3}})
	assert.Equal(t, "sld: SetRGBChannels: got 2 channels, want 3", err.Error())
	assert.True(t, errors.Is(err, ErrChannelCount))
}
