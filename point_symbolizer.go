package sld

import "github.com/gogpu/sld/style"

// PointSymbolizer draws a graphic at each point of a geometry.
type PointSymbolizer struct {
	SymbolizerBase
	graphic *Graphic
}

// NewPointSymbolizer returns a point symbolizer with an empty graphic.
func NewPointSymbolizer() *PointSymbolizer {
	return &PointSymbolizer{graphic: NewGraphic()}
}

// CastPointSymbolizer returns s as a *PointSymbolizer.
func CastPointSymbolizer(s style.PointSymbolizer) *PointSymbolizer {
	switch x := s.(type) {
	case nil:
		return nil
	case *PointSymbolizer:
		return x
	}
	return &PointSymbolizer{SymbolizerBase: castBase(s), graphic: CastGraphic(s.Graphic())}
}

func (s *PointSymbolizer) Graphic() style.Graphic { return ifaceOf[style.Graphic](s.graphic) }

func (s *PointSymbolizer) SetGraphic(g style.Graphic) { s.graphic = CastGraphic(g) }

func (s *PointSymbolizer) Equal(other style.PointSymbolizer) bool {
	o, ok := other.(*PointSymbolizer)
	if !ok || s == nil || o == nil {
		return ok && s == nil && o == nil
	}
	return s.equalBase(&o.SymbolizerBase) && s.graphic.Equal(o.graphic)
}

func (s *PointSymbolizer) Hash() uint64 {
	if s == nil {
		return 0
	}
	return s.hashBase("point").add(s.graphic.Hash()).sum()
}

func (s *PointSymbolizer) Clone() *PointSymbolizer {
	if s == nil {
		return nil
	}
	return &PointSymbolizer{SymbolizerBase: s.cloneBase(), graphic: s.graphic.Clone()}
}

func (s *PointSymbolizer) Accept(v Visitor) { v.VisitPointSymbolizer(s) }

func (s *PointSymbolizer) AcceptData(v DataVisitor, data any) any {
	return v.VisitPointSymbolizer(s, data)
}
