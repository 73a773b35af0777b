package sld

import (
	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/style"
)

// Well-known mark names.
const (
	MarkSquare   = "square"
	MarkCircle   = "circle"
	MarkTriangle = "triangle"
	MarkStar     = "star"
	MarkCross    = "cross"
	MarkX        = "x"
)

// Mark is a well-known shape with a fill and a stroke. When an external
// mark is set it takes precedence over the well-known name.
type Mark struct {
	wellKnownName expr.Expression
	fill          *Fill
	stroke        *Stroke
	externalMark  *ExternalMark
}

// NewMark returns a square mark with the default fill and stroke.
func NewMark() *Mark {
	return &Mark{
		wellKnownName: expr.Str(MarkSquare),
		fill:          NewFill(),
		stroke:        NewStroke(),
	}
}

// CastMark returns m as a *Mark.
func CastMark(m style.Mark) *Mark {
	switch x := m.(type) {
	case nil:
		return nil
	case *Mark:
		return x
	}
	return &Mark{
		wellKnownName: m.WellKnownName(),
		fill:          CastFill(m.Fill()),
		stroke:        CastStroke(m.Stroke()),
		externalMark:  CastExternalMark(m.ExternalMark()),
	}
}

func (m *Mark) WellKnownName() expr.Expression { return m.wellKnownName }
func (m *Mark) Fill() style.Fill               { return ifaceOf[style.Fill](m.fill) }
func (m *Mark) Stroke() style.Stroke           { return ifaceOf[style.Stroke](m.stroke) }

func (m *Mark) ExternalMark() style.ExternalMark {
	return ifaceOf[style.ExternalMark](m.externalMark)
}

func (m *Mark) SetWellKnownName(name expr.Expression) { m.wellKnownName = name }
func (m *Mark) SetFill(f style.Fill)                  { m.fill = CastFill(f) }
func (m *Mark) SetStroke(s style.Stroke)              { m.stroke = CastStroke(s) }

func (m *Mark) SetExternalMark(e style.ExternalMark) { m.externalMark = CastExternalMark(e) }

func (m *Mark) Equal(other style.Mark) bool {
	o, ok := other.(*Mark)
	if !ok || m == nil || o == nil {
		return ok && m == nil && o == nil
	}
	return expr.Equal(m.wellKnownName, o.wellKnownName) &&
		m.fill.Equal(o.fill) &&
		m.stroke.Equal(o.stroke) &&
		m.externalMark.Equal(o.externalMark)
}

func (m *Mark) Hash() uint64 {
	if m == nil {
		return 0
	}
	return newHasher("mark").
		expr(m.wellKnownName).
		add(m.fill.Hash()).
		add(m.stroke.Hash()).
		add(m.externalMark.Hash()).
		sum()
}

func (m *Mark) Clone() *Mark {
	if m == nil {
		return nil
	}
	return &Mark{
		wellKnownName: m.wellKnownName,
		fill:          m.fill.Clone(),
		stroke:        m.stroke.Clone(),
		externalMark:  m.externalMark.Clone(),
	}
}

func (m *Mark) Accept(v Visitor) { v.VisitMark(m) }

func (m *Mark) AcceptData(v DataVisitor, data any) any { return v.VisitMark(m, data) }
