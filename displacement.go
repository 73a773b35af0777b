package sld

import (
	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/style"
)

// Displacement offsets a graphic or label from its anchor, in the
// symbolizer's unit of measure.
type Displacement struct {
	x, y   expr.Expression
	frozen bool
}

// NewDisplacement returns a mutable displacement.
func NewDisplacement(x, y expr.Expression) *Displacement {
	return &Displacement{x: x, y: y}
}

// CastDisplacement returns d as a mutable *Displacement.
func CastDisplacement(d style.Displacement) *Displacement {
	switch x := d.(type) {
	case nil:
		return nil
	case *Displacement:
		if x == nil || !x.frozen {
			return x
		}
		return x.Clone()
	}
	return &Displacement{x: d.DisplacementX(), y: d.DisplacementY()}
}

func (d *Displacement) DisplacementX() expr.Expression { return d.x }
func (d *Displacement) DisplacementY() expr.Expression { return d.y }

// Frozen reports whether d is a shared default that rejects mutation.
func (d *Displacement) Frozen() bool { return d.frozen }

func (d *Displacement) SetDisplacementX(x expr.Expression) error {
	if d.frozen {
		return ErrFrozen
	}
	d.x = x
	return nil
}

func (d *Displacement) SetDisplacementY(y expr.Expression) error {
	if d.frozen {
		return ErrFrozen
	}
	d.y = y
	return nil
}

func (d *Displacement) Equal(other style.Displacement) bool {
	o, ok := other.(*Displacement)
	if !ok || d == nil || o == nil {
		return ok && d == nil && o == nil
	}
	return expr.Equal(d.x, o.x) && expr.Equal(d.y, o.y)
}

func (d *Displacement) Hash() uint64 {
	if d == nil {
		return 0
	}
	return newHasher("displacement").expr(d.x).expr(d.y).sum()
}

func (d *Displacement) Clone() *Displacement {
	if d == nil {
		return nil
	}
	return &Displacement{x: d.x, y: d.y}
}

func (d *Displacement) Accept(v Visitor) { v.VisitDisplacement(d) }

func (d *Displacement) AcceptData(v DataVisitor, data any) any {
	return v.VisitDisplacement(d, data)
}
