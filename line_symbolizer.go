package sld

import (
	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/style"
)

// LineSymbolizer strokes a linear geometry, optionally offset
// perpendicular to its direction.
type LineSymbolizer struct {
	SymbolizerBase
	stroke *Stroke
	offset expr.Expression
}

// NewLineSymbolizer returns a line symbolizer with the default stroke.
func NewLineSymbolizer() *LineSymbolizer {
	return &LineSymbolizer{stroke: NewStroke()}
}

// CastLineSymbolizer returns s as a *LineSymbolizer.
func CastLineSymbolizer(s style.LineSymbolizer) *LineSymbolizer {
	switch x := s.(type) {
	case nil:
		return nil
	case *LineSymbolizer:
		return x
	}
	return &LineSymbolizer{
		SymbolizerBase: castBase(s),
		stroke:         CastStroke(s.Stroke()),
		offset:         s.PerpendicularOffset(),
	}
}

func (s *LineSymbolizer) Stroke() style.Stroke                 { return ifaceOf[style.Stroke](s.stroke) }
func (s *LineSymbolizer) PerpendicularOffset() expr.Expression { return s.offset }

func (s *LineSymbolizer) SetStroke(st style.Stroke)                { s.stroke = CastStroke(st) }
func (s *LineSymbolizer) SetPerpendicularOffset(o expr.Expression) { s.offset = o }

func (s *LineSymbolizer) Equal(other style.LineSymbolizer) bool {
	o, ok := other.(*LineSymbolizer)
	if !ok || s == nil || o == nil {
		return ok && s == nil && o == nil
	}
	return s.equalBase(&o.SymbolizerBase) && s.stroke.Equal(o.stroke) && expr.Equal(s.offset, o.offset)
}

func (s *LineSymbolizer) Hash() uint64 {
	if s == nil {
		return 0
	}
	return s.hashBase("line").add(s.stroke.Hash()).expr(s.offset).sum()
}

func (s *LineSymbolizer) Clone() *LineSymbolizer {
	if s == nil {
		return nil
	}
	return &LineSymbolizer{SymbolizerBase: s.cloneBase(), stroke: s.stroke.Clone(), offset: s.offset}
}

func (s *LineSymbolizer) Accept(v Visitor) { v.VisitLineSymbolizer(s) }

func (s *LineSymbolizer) AcceptData(v DataVisitor, data any) any {
	return v.VisitLineSymbolizer(s, data)
}
