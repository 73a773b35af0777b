package sld

import (
	"fmt"

	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/style"
)

// RasterSymbolizer draws coverage data.
type RasterSymbolizer struct {
	SymbolizerBase
	opacity             expr.Expression
	channelSelection    *ChannelSelection
	overlap             style.OverlapBehavior
	colorMap            *ColorMap
	contrastEnhancement *ContrastEnhancement
	shadedRelief        *ShadedRelief
	imageOutline        Symbolizer
}

// NewRasterSymbolizer returns a fully opaque raster symbolizer with an
// empty channel selection and no colour map.
func NewRasterSymbolizer() *RasterSymbolizer {
	return &RasterSymbolizer{
		opacity:          expr.Float(1),
		channelSelection: NewChannelSelection(),
	}
}

// CastRasterSymbolizer returns s as a *RasterSymbolizer. An unknown
// overlap behavior and an image outline that is neither a line nor a
// polygon symbolizer are dropped.
func CastRasterSymbolizer(s style.RasterSymbolizer) *RasterSymbolizer {
	switch x := s.(type) {
	case nil:
		return nil
	case *RasterSymbolizer:
		return x
	}
	r := &RasterSymbolizer{
		SymbolizerBase:      castBase(s),
		opacity:             s.Opacity(),
		channelSelection:    CastChannelSelection(s.ChannelSelection()),
		colorMap:            CastColorMap(s.ColorMap()),
		contrastEnhancement: CastContrastEnhancement(s.ContrastEnhancement()),
		shadedRelief:        CastShadedRelief(s.ShadedRelief()),
	}
	if err := r.SetOverlapBehavior(s.OverlapBehavior()); err != nil {
		Logger().Debug("sld: overlap behavior dropped", "err", err)
	}
	if err := r.SetImageOutline(s.ImageOutline()); err != nil {
		Logger().Debug("sld: image outline dropped", "err", err)
	}
	return r
}

func (s *RasterSymbolizer) Opacity() expr.Expression                { return s.opacity }
func (s *RasterSymbolizer) OverlapBehavior() style.OverlapBehavior { return s.overlap }

func (s *RasterSymbolizer) ChannelSelection() style.ChannelSelection {
	return ifaceOf[style.ChannelSelection](s.channelSelection)
}

func (s *RasterSymbolizer) ColorMap() style.ColorMap { return ifaceOf[style.ColorMap](s.colorMap) }

func (s *RasterSymbolizer) ContrastEnhancement() style.ContrastEnhancement {
	return ifaceOf[style.ContrastEnhancement](s.contrastEnhancement)
}

func (s *RasterSymbolizer) ShadedRelief() style.ShadedRelief {
	return ifaceOf[style.ShadedRelief](s.shadedRelief)
}

// ImageOutline returns the line or polygon symbolizer drawn around the
// raster footprint, or nil.
func (s *RasterSymbolizer) ImageOutline() style.Symbolizer {
	if s.imageOutline == nil {
		return nil
	}
	return s.imageOutline
}

func (s *RasterSymbolizer) SetOpacity(o expr.Expression) { s.opacity = o }

func (s *RasterSymbolizer) SetChannelSelection(c style.ChannelSelection) {
	s.channelSelection = CastChannelSelection(c)
}

// SetOverlapBehavior stores b. The zero value clears it; any value other
// than the four known behaviours fails with ErrOverlapBehavior.
func (s *RasterSymbolizer) SetOverlapBehavior(b style.OverlapBehavior) error {
	if b == "" {
		s.overlap = ""
		return nil
	}
	parsed, err := ParseOverlapBehavior(string(b))
	if err != nil {
		return err
	}
	s.overlap = parsed
	return nil
}

func (s *RasterSymbolizer) SetColorMap(m style.ColorMap) { s.colorMap = CastColorMap(m) }

func (s *RasterSymbolizer) SetContrastEnhancement(c style.ContrastEnhancement) {
	s.contrastEnhancement = CastContrastEnhancement(c)
}

func (s *RasterSymbolizer) SetShadedRelief(r style.ShadedRelief) {
	s.shadedRelief = CastShadedRelief(r)
}

// SetImageOutline sets the outline symbolizer. Only line and polygon
// symbolizers are accepted; anything else fails with ErrImageOutline.
// A nil symbolizer clears the outline.
func (s *RasterSymbolizer) SetImageOutline(o style.Symbolizer) error {
	c := CastSymbolizer(o)
	switch c.(type) {
	case nil:
		if o != nil && !isNilSymbolizerValue(o) {
			return fmt.Errorf("%w: %T", ErrImageOutline, o)
		}
		s.imageOutline = nil
		return nil
	case *LineSymbolizer, *PolygonSymbolizer:
		s.imageOutline = c
		return nil
	}
	return fmt.Errorf("%w: %T", ErrImageOutline, o)
}

// isNilSymbolizerValue reports whether o holds a nil pointer of one of
// the package's symbolizer types.
func isNilSymbolizerValue(o style.Symbolizer) bool {
	x, ok := o.(Symbolizer)
	return ok && isNilSymbolizer(x)
}

func (s *RasterSymbolizer) Equal(other style.RasterSymbolizer) bool {
	o, ok := other.(*RasterSymbolizer)
	if !ok || s == nil || o == nil {
		return ok && s == nil && o == nil
	}
	if s == o {
		return true
	}
	return s.equalBase(&o.SymbolizerBase) &&
		expr.Equal(s.opacity, o.opacity) &&
		s.channelSelection.Equal(o.channelSelection) &&
		s.overlap == o.overlap &&
		s.colorMap.Equal(o.colorMap) &&
		s.contrastEnhancement.Equal(o.contrastEnhancement) &&
		s.shadedRelief.Equal(o.shadedRelief) &&
		EqualSymbolizers(s.imageOutline, o.imageOutline)
}

func (s *RasterSymbolizer) Hash() uint64 {
	if s == nil {
		return 0
	}
	return s.hashBase("raster").
		expr(s.opacity).
		add(s.channelSelection.Hash()).
		str(string(s.overlap)).
		add(s.colorMap.Hash()).
		add(s.contrastEnhancement.Hash()).
		add(s.shadedRelief.Hash()).
		add(hashSymbolizer(s.imageOutline)).
		sum()
}

func (s *RasterSymbolizer) Clone() *RasterSymbolizer {
	if s == nil {
		return nil
	}
	return &RasterSymbolizer{
		SymbolizerBase:      s.cloneBase(),
		opacity:             s.opacity,
		channelSelection:    s.channelSelection.Clone(),
		overlap:             s.overlap,
		colorMap:            s.colorMap.Clone(),
		contrastEnhancement: s.contrastEnhancement.Clone(),
		shadedRelief:        s.shadedRelief.Clone(),
		imageOutline:        CloneSymbolizer(s.imageOutline),
	}
}

func (s *RasterSymbolizer) Accept(v Visitor) { v.VisitRasterSymbolizer(s) }

func (s *RasterSymbolizer) AcceptData(v DataVisitor, data any) any {
	return v.VisitRasterSymbolizer(s, data)
}
