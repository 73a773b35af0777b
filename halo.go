package sld

import (
	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/style"
)

// Halo is the outline drawn around label glyphs.
type Halo struct {
	fill   *Fill
	radius expr.Expression
}

// NewHalo returns an opaque white halo of radius 1.
func NewHalo() *Halo {
	fill := NewFill()
	fill.color = expr.Hex("#FFFFFF")
	return &Halo{fill: fill, radius: expr.Float(1)}
}

// CastHalo returns h as a *Halo.
func CastHalo(h style.Halo) *Halo {
	switch x := h.(type) {
	case nil:
		return nil
	case *Halo:
		return x
	}
	return &Halo{fill: CastFill(h.Fill()), radius: h.Radius()}
}

func (h *Halo) Fill() style.Fill            { return ifaceOf[style.Fill](h.fill) }
func (h *Halo) Radius() expr.Expression     { return h.radius }
func (h *Halo) SetFill(f style.Fill)        { h.fill = CastFill(f) }
func (h *Halo) SetRadius(r expr.Expression) { h.radius = r }

func (h *Halo) Equal(other style.Halo) bool {
	o, ok := other.(*Halo)
	if !ok || h == nil || o == nil {
		return ok && h == nil && o == nil
	}
	return h.fill.Equal(o.fill) && expr.Equal(h.radius, o.radius)
}

func (h *Halo) Hash() uint64 {
	if h == nil {
		return 0
	}
	return newHasher("halo").add(h.fill.Hash()).expr(h.radius).sum()
}

func (h *Halo) Clone() *Halo {
	if h == nil {
		return nil
	}
	return &Halo{fill: h.fill.Clone(), radius: h.radius}
}

func (h *Halo) Accept(v Visitor) { v.VisitHalo(h) }

func (h *Halo) AcceptData(v DataVisitor, data any) any { return v.VisitHalo(h, data) }
