package sld

import (
	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/style"
)

// Fill paints the interior of an area, a mark or a label.
type Fill struct {
	color           expr.Expression
	backgroundColor expr.Expression
	opacity         expr.Expression
	graphicFill     *Graphic
	frozen          bool
}

// NewFill returns a 50% gray, fully opaque fill.
func NewFill() *Fill {
	return &Fill{color: expr.Hex("#808080"), opacity: expr.Float(1)}
}

// CastFill returns f as a mutable *Fill. The background colour has no
// counterpart in style.Fill and stays unset on a foreign copy.
func CastFill(f style.Fill) *Fill {
	switch x := f.(type) {
	case nil:
		return nil
	case *Fill:
		if x == nil || !x.frozen {
			return x
		}
		return x.Clone()
	}
	return &Fill{
		color:       f.Color(),
		opacity:     f.Opacity(),
		graphicFill: CastGraphic(f.GraphicFill()),
	}
}

func (f *Fill) Color() expr.Expression           { return f.color }
func (f *Fill) BackgroundColor() expr.Expression { return f.backgroundColor }
func (f *Fill) Opacity() expr.Expression         { return f.opacity }

// GraphicFill returns the stipple graphic, or nil for a solid fill.
func (f *Fill) GraphicFill() style.Graphic { return ifaceOf[style.Graphic](f.graphicFill) }

// Frozen reports whether f is a shared default that rejects mutation.
func (f *Fill) Frozen() bool { return f.frozen }

func (f *Fill) SetColor(c expr.Expression) error {
	if f.frozen {
		return ErrFrozen
	}
	f.color = c
	return nil
}

func (f *Fill) SetBackgroundColor(c expr.Expression) error {
	if f.frozen {
		return ErrFrozen
	}
	f.backgroundColor = c
	return nil
}

func (f *Fill) SetOpacity(o expr.Expression) error {
	if f.frozen {
		return ErrFrozen
	}
	f.opacity = o
	return nil
}

func (f *Fill) SetGraphicFill(g style.Graphic) error {
	if f.frozen {
		return ErrFrozen
	}
	f.graphicFill = CastGraphic(g)
	return nil
}

func (f *Fill) Equal(other style.Fill) bool {
	o, ok := other.(*Fill)
	if !ok || f == nil || o == nil {
		return ok && f == nil && o == nil
	}
	if f == o {
		return true
	}
	return expr.Equal(f.color, o.color) &&
		expr.Equal(f.backgroundColor, o.backgroundColor) &&
		expr.Equal(f.opacity, o.opacity) &&
		f.graphicFill.Equal(o.graphicFill)
}

func (f *Fill) Hash() uint64 {
	if f == nil {
		return 0
	}
	return newHasher("fill").
		expr(f.color).
		expr(f.backgroundColor).
		expr(f.opacity).
		add(f.graphicFill.Hash()).
		sum()
}

// Clone returns a mutable deep copy of f.
func (f *Fill) Clone() *Fill {
	if f == nil {
		return nil
	}
	return &Fill{
		color:           f.color,
		backgroundColor: f.backgroundColor,
		opacity:         f.opacity,
		graphicFill:     f.graphicFill.Clone(),
	}
}

func (f *Fill) Accept(v Visitor) { v.VisitFill(f) }

func (f *Fill) AcceptData(v DataVisitor, data any) any { return v.VisitFill(f, data) }
