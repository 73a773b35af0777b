package sld

import (
	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/style"
)

// PolygonSymbolizer fills an area and outlines its boundary.
type PolygonSymbolizer struct {
	SymbolizerBase
	fill         *Fill
	stroke       *Stroke
	displacement *Displacement
	offset       expr.Expression
}

// NewPolygonSymbolizer returns a polygon symbolizer with the default
// fill and no outline.
func NewPolygonSymbolizer() *PolygonSymbolizer {
	return &PolygonSymbolizer{fill: NewFill()}
}

// CastPolygonSymbolizer returns s as a *PolygonSymbolizer.
func CastPolygonSymbolizer(s style.PolygonSymbolizer) *PolygonSymbolizer {
	switch x := s.(type) {
	case nil:
		return nil
	case *PolygonSymbolizer:
		return x
	}
	return &PolygonSymbolizer{
		SymbolizerBase: castBase(s),
		fill:           CastFill(s.Fill()),
		stroke:         CastStroke(s.Stroke()),
		displacement:   CastDisplacement(s.Displacement()),
		offset:         s.PerpendicularOffset(),
	}
}

func (s *PolygonSymbolizer) Fill() style.Fill     { return ifaceOf[style.Fill](s.fill) }
func (s *PolygonSymbolizer) Stroke() style.Stroke { return ifaceOf[style.Stroke](s.stroke) }

func (s *PolygonSymbolizer) Displacement() style.Displacement {
	return ifaceOf[style.Displacement](s.displacement)
}

func (s *PolygonSymbolizer) PerpendicularOffset() expr.Expression { return s.offset }

func (s *PolygonSymbolizer) SetFill(f style.Fill)                     { s.fill = CastFill(f) }
func (s *PolygonSymbolizer) SetStroke(st style.Stroke)                { s.stroke = CastStroke(st) }
func (s *PolygonSymbolizer) SetDisplacement(d style.Displacement)     { s.displacement = CastDisplacement(d) }
func (s *PolygonSymbolizer) SetPerpendicularOffset(o expr.Expression) { s.offset = o }

func (s *PolygonSymbolizer) Equal(other style.PolygonSymbolizer) bool {
	o, ok := other.(*PolygonSymbolizer)
	if !ok || s == nil || o == nil {
		return ok && s == nil && o == nil
	}
	if s == o {
		return true
	}
	return s.equalBase(&o.SymbolizerBase) &&
		s.fill.Equal(o.fill) &&
		s.stroke.Equal(o.stroke) &&
		s.displacement.Equal(o.displacement) &&
		expr.Equal(s.offset, o.offset)
}

func (s *PolygonSymbolizer) Hash() uint64 {
	if s == nil {
		return 0
	}
	return s.hashBase("polygon").
		add(s.fill.Hash()).
		add(s.stroke.Hash()).
		add(s.displacement.Hash()).
		expr(s.offset).
		sum()
}

func (s *PolygonSymbolizer) Clone() *PolygonSymbolizer {
	if s == nil {
		return nil
	}
	return &PolygonSymbolizer{
		SymbolizerBase: s.cloneBase(),
		fill:           s.fill.Clone(),
		stroke:         s.stroke.Clone(),
		displacement:   s.displacement.Clone(),
		offset:         s.offset,
	}
}

func (s *PolygonSymbolizer) Accept(v Visitor) { v.VisitPolygonSymbolizer(s) }

func (s *PolygonSymbolizer) AcceptData(v DataVisitor, data any) any {
	return v.VisitPolygonSymbolizer(s, data)
}
