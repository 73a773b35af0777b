package sld

import (
	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/style"
)

// AnchorPoint places a graphic or label relative to its geometry point.
// X and Y are fractions of the graphic's extent: (0, 0) is the lower
// left corner and (0.5, 0.5) the centre.
type AnchorPoint struct {
	x, y   expr.Expression
	frozen bool
}

// NewAnchorPoint returns a mutable anchor point.
func NewAnchorPoint(x, y expr.Expression) *AnchorPoint {
	return &AnchorPoint{x: x, y: y}
}

// CastAnchorPoint returns a as a mutable *AnchorPoint. A frozen default
// is copied; a foreign implementation is copied field by field.
func CastAnchorPoint(a style.AnchorPoint) *AnchorPoint {
	switch x := a.(type) {
	case nil:
		return nil
	case *AnchorPoint:
		if x == nil || !x.frozen {
			return x
		}
		return x.Clone()
	}
	return &AnchorPoint{x: a.AnchorPointX(), y: a.AnchorPointY()}
}

func (a *AnchorPoint) AnchorPointX() expr.Expression { return a.x }
func (a *AnchorPoint) AnchorPointY() expr.Expression { return a.y }

// Frozen reports whether a is a shared default that rejects mutation.
func (a *AnchorPoint) Frozen() bool { return a.frozen }

func (a *AnchorPoint) SetAnchorPointX(x expr.Expression) error {
	if a.frozen {
		return ErrFrozen
	}
	a.x = x
	return nil
}

func (a *AnchorPoint) SetAnchorPointY(y expr.Expression) error {
	if a.frozen {
		return ErrFrozen
	}
	a.y = y
	return nil
}

func (a *AnchorPoint) Equal(other style.AnchorPoint) bool {
	o, ok := other.(*AnchorPoint)
	if !ok || a == nil || o == nil {
		return ok && a == nil && o == nil
	}
	return expr.Equal(a.x, o.x) && expr.Equal(a.y, o.y)
}

func (a *AnchorPoint) Hash() uint64 {
	if a == nil {
		return 0
	}
	return newHasher("anchor").expr(a.x).expr(a.y).sum()
}

// Clone returns a mutable copy of a.
func (a *AnchorPoint) Clone() *AnchorPoint {
	if a == nil {
		return nil
	}
	return &AnchorPoint{x: a.x, y: a.y}
}

func (a *AnchorPoint) Accept(v Visitor) { v.VisitAnchorPoint(a) }

func (a *AnchorPoint) AcceptData(v DataVisitor, data any) any {
	return v.VisitAnchorPoint(a, data)
}
