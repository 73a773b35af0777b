package sld

import (
	"fmt"

	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/style"
)

// LabelPlacement is where a text symbolizer puts its label: a
// *PointPlacement or a *LinePlacement.
type LabelPlacement interface {
	Node
	Hash() uint64
	isLabelPlacement()
}

func (*PointPlacement) isLabelPlacement() {}
func (*LinePlacement) isLabelPlacement()  {}

// CastLabelPlacement returns p as a placement of this package, or nil
// when p is nil or of an unknown kind.
func CastLabelPlacement(p style.LabelPlacement) LabelPlacement {
	switch x := p.(type) {
	case nil:
		return nil
	case *PointPlacement:
		if x == nil {
			return nil
		}
		return x
	case *LinePlacement:
		if x == nil {
			return nil
		}
		return x
	case style.PointPlacement:
		return CastPointPlacement(x)
	case style.LinePlacement:
		return CastLinePlacement(x)
	}
	Logger().Debug("sld: cannot cast label placement", "type", fmt.Sprintf("%T", p))
	return nil
}

func equalLabelPlacement(a, b LabelPlacement) bool {
	switch x := a.(type) {
	case *PointPlacement:
		o, ok := b.(*PointPlacement)
		return ok && x.Equal(o)
	case *LinePlacement:
		o, ok := b.(*LinePlacement)
		return ok && x.Equal(o)
	}
	return a == nil && b == nil
}

func hashLabelPlacement(p LabelPlacement) uint64 {
	if p == nil {
		return 0
	}
	return p.Hash()
}

func cloneLabelPlacement(p LabelPlacement) LabelPlacement {
	switch x := p.(type) {
	case *PointPlacement:
		return x.Clone()
	case *LinePlacement:
		return x.Clone()
	}
	return nil
}

// PointPlacement places a label relative to a point.
type PointPlacement struct {
	anchorPoint  *AnchorPoint
	displacement *Displacement
	rotation     expr.Expression
}

// NewPointPlacement returns a placement anchored at the lower left
// corner with no displacement and no rotation.
func NewPointPlacement() *PointPlacement {
	return &PointPlacement{
		anchorPoint:  NewAnchorPoint(expr.Float(0), expr.Float(0)),
		displacement: NewDisplacement(expr.Float(0), expr.Float(0)),
		rotation:     expr.Float(0),
	}
}

// CastPointPlacement returns p as a *PointPlacement.
func CastPointPlacement(p style.PointPlacement) *PointPlacement {
	switch x := p.(type) {
	case nil:
		return nil
	case *PointPlacement:
		return x
	}
	return &PointPlacement{
		anchorPoint:  CastAnchorPoint(p.AnchorPoint()),
		displacement: CastDisplacement(p.Displacement()),
		rotation:     p.Rotation(),
	}
}

func (p *PointPlacement) AnchorPoint() style.AnchorPoint {
	return ifaceOf[style.AnchorPoint](p.anchorPoint)
}

func (p *PointPlacement) Displacement() style.Displacement {
	return ifaceOf[style.Displacement](p.displacement)
}

func (p *PointPlacement) Rotation() expr.Expression { return p.rotation }

func (p *PointPlacement) SetAnchorPoint(a style.AnchorPoint)   { p.anchorPoint = CastAnchorPoint(a) }
func (p *PointPlacement) SetDisplacement(d style.Displacement) { p.displacement = CastDisplacement(d) }
func (p *PointPlacement) SetRotation(r expr.Expression)        { p.rotation = r }

func (p *PointPlacement) Equal(other style.PointPlacement) bool {
	o, ok := other.(*PointPlacement)
	if !ok || p == nil || o == nil {
		return ok && p == nil && o == nil
	}
	return p.anchorPoint.Equal(o.anchorPoint) &&
		p.displacement.Equal(o.displacement) &&
		expr.Equal(p.rotation, o.rotation)
}

func (p *PointPlacement) Hash() uint64 {
	if p == nil {
		return 0
	}
	return newHasher("point-placement").
		add(p.anchorPoint.Hash()).
		add(p.displacement.Hash()).
		expr(p.rotation).
		sum()
}

func (p *PointPlacement) Clone() *PointPlacement {
	if p == nil {
		return nil
	}
	return &PointPlacement{
		anchorPoint:  p.anchorPoint.Clone(),
		displacement: p.displacement.Clone(),
		rotation:     p.rotation,
	}
}

func (p *PointPlacement) Accept(v Visitor) { v.VisitPointPlacement(p) }

func (p *PointPlacement) AcceptData(v DataVisitor, data any) any {
	return v.VisitPointPlacement(p, data)
}

// LinePlacement places a label along a line.
type LinePlacement struct {
	offset     expr.Expression
	repeated   bool
	aligned    bool
	generalize bool
	gap        expr.Expression
	initialGap expr.Expression
}

// NewLinePlacement returns an aligned, non-repeated placement on the
// line itself.
func NewLinePlacement() *LinePlacement {
	return &LinePlacement{offset: expr.Float(0), aligned: true}
}

// CastLinePlacement returns p as a *LinePlacement.
func CastLinePlacement(p style.LinePlacement) *LinePlacement {
	switch x := p.(type) {
	case nil:
		return nil
	case *LinePlacement:
		return x
	}
	return &LinePlacement{
		offset:     p.PerpendicularOffset(),
		repeated:   p.Repeated(),
		aligned:    p.Aligned(),
		generalize: p.GeneralizeLine(),
		gap:        p.Gap(),
		initialGap: p.InitialGap(),
	}
}

func (p *LinePlacement) PerpendicularOffset() expr.Expression { return p.offset }
func (p *LinePlacement) Repeated() bool                       { return p.repeated }
func (p *LinePlacement) Aligned() bool                        { return p.aligned }
func (p *LinePlacement) GeneralizeLine() bool                 { return p.generalize }
func (p *LinePlacement) Gap() expr.Expression                 { return p.gap }
func (p *LinePlacement) InitialGap() expr.Expression          { return p.initialGap }

func (p *LinePlacement) SetPerpendicularOffset(o expr.Expression) { p.offset = o }
func (p *LinePlacement) SetRepeated(r bool)                       { p.repeated = r }
func (p *LinePlacement) SetAligned(a bool)                        { p.aligned = a }
func (p *LinePlacement) SetGeneralizeLine(g bool)                 { p.generalize = g }
func (p *LinePlacement) SetGap(g expr.Expression)                 { p.gap = g }
func (p *LinePlacement) SetInitialGap(g expr.Expression)          { p.initialGap = g }

func (p *LinePlacement) Equal(other style.LinePlacement) bool {
	o, ok := other.(*LinePlacement)
	if !ok || p == nil || o == nil {
		return ok && p == nil && o == nil
	}
	return expr.Equal(p.offset, o.offset) &&
		p.repeated == o.repeated &&
		p.aligned == o.aligned &&
		p.generalize == o.generalize &&
		expr.Equal(p.gap, o.gap) &&
		expr.Equal(p.initialGap, o.initialGap)
}

func (p *LinePlacement) Hash() uint64 {
	if p == nil {
		return 0
	}
	return newHasher("line-placement").
		expr(p.offset).
		bool(p.repeated).
		bool(p.aligned).
		bool(p.generalize).
		expr(p.gap).
		expr(p.initialGap).
		sum()
}

func (p *LinePlacement) Clone() *LinePlacement {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func (p *LinePlacement) Accept(v Visitor) { v.VisitLinePlacement(p) }

func (p *LinePlacement) AcceptData(v DataVisitor, data any) any {
	return v.VisitLinePlacement(p, data)
}
