package sld

import (
	"fmt"

	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/style"
)

// GraphicalSymbol is a symbol a Graphic can hold: a *Mark or an
// *ExternalGraphic.
type GraphicalSymbol interface {
	Node
	Hash() uint64
	isGraphicalSymbol()
}

func (*Mark) isGraphicalSymbol()            {}
func (*ExternalGraphic) isGraphicalSymbol() {}

// CastGraphicalSymbol returns s as a Mark or ExternalGraphic of this
// package. It returns nil for nil and for symbol kinds it cannot
// translate.
func CastGraphicalSymbol(s style.GraphicalSymbol) GraphicalSymbol {
	switch x := s.(type) {
	case nil:
		return nil
	case *Mark:
		if x == nil {
			return nil
		}
		return x
	case *ExternalGraphic:
		if x == nil {
			return nil
		}
		return x
	case style.Mark:
		return CastMark(x)
	case style.ExternalGraphic:
		return CastExternalGraphic(x)
	}
	Logger().Debug("sld: cannot cast graphical symbol", "type", fmt.Sprintf("%T", s))
	return nil
}

func equalGraphicalSymbol(a, b GraphicalSymbol) bool {
	switch x := a.(type) {
	case *Mark:
		o, ok := b.(*Mark)
		return ok && x.Equal(o)
	case *ExternalGraphic:
		o, ok := b.(*ExternalGraphic)
		return ok && x.Equal(o)
	}
	return a == nil && b == nil
}

func cloneGraphicalSymbol(s GraphicalSymbol) GraphicalSymbol {
	switch x := s.(type) {
	case *Mark:
		return x.Clone()
	case *ExternalGraphic:
		return x.Clone()
	}
	return nil
}

// Graphic is a sized and rotated list of symbols. A renderer draws the
// first symbol it supports.
type Graphic struct {
	symbols      []GraphicalSymbol
	opacity      expr.Expression
	size         expr.Expression
	rotation     expr.Expression
	anchorPoint  *AnchorPoint
	displacement *Displacement
	gap          expr.Expression
	initialGap   expr.Expression
	frozen       bool
}

// NewGraphic returns an empty, fully opaque, unrotated graphic drawn at
// its native size.
func NewGraphic() *Graphic {
	return &Graphic{opacity: expr.Float(1), rotation: expr.Float(0)}
}

// CastGraphic returns g as a mutable *Graphic. Symbols of unknown kinds
// are dropped.
func CastGraphic(g style.Graphic) *Graphic {
	switch x := g.(type) {
	case nil:
		return nil
	case *Graphic:
		if x == nil || !x.frozen {
			return x
		}
		return x.Clone()
	}
	c := &Graphic{
		opacity:      g.Opacity(),
		size:         g.Size(),
		rotation:     g.Rotation(),
		anchorPoint:  CastAnchorPoint(g.AnchorPoint()),
		displacement: CastDisplacement(g.Displacement()),
		gap:          g.Gap(),
		initialGap:   g.InitialGap(),
	}
	c.symbols = castSymbols(g.GraphicalSymbols())
	return c
}

func castSymbols(in []style.GraphicalSymbol) []GraphicalSymbol {
	var out []GraphicalSymbol
	for _, s := range in {
		if c := CastGraphicalSymbol(s); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// GraphicalSymbols returns the symbols in preference order.
func (g *Graphic) GraphicalSymbols() []style.GraphicalSymbol {
	out := make([]style.GraphicalSymbol, len(g.symbols))
	for i, s := range g.symbols {
		out[i] = s
	}
	return out
}

// Symbols returns the symbols as the package's own types.
func (g *Graphic) Symbols() []GraphicalSymbol { return append([]GraphicalSymbol(nil), g.symbols...) }

func (g *Graphic) Opacity() expr.Expression    { return g.opacity }
func (g *Graphic) Size() expr.Expression       { return g.size }
func (g *Graphic) Rotation() expr.Expression   { return g.rotation }
func (g *Graphic) Gap() expr.Expression        { return g.gap }
func (g *Graphic) InitialGap() expr.Expression { return g.initialGap }

func (g *Graphic) AnchorPoint() style.AnchorPoint {
	return ifaceOf[style.AnchorPoint](g.anchorPoint)
}

func (g *Graphic) Displacement() style.Displacement {
	return ifaceOf[style.Displacement](g.displacement)
}

// Frozen reports whether g is a shared default that rejects mutation.
func (g *Graphic) Frozen() bool { return g.frozen }

// SetGraphicalSymbols replaces the symbol list. Symbols that cannot be
// cast are dropped.
func (g *Graphic) SetGraphicalSymbols(symbols []style.GraphicalSymbol) error {
	if g.frozen {
		return ErrFrozen
	}
	g.symbols = castSymbols(symbols)
	return nil
}

// AddGraphicalSymbol appends s. A symbol that cannot be cast is ignored.
func (g *Graphic) AddGraphicalSymbol(s style.GraphicalSymbol) error {
	if g.frozen {
		return ErrFrozen
	}
	if c := CastGraphicalSymbol(s); c != nil {
		g.symbols = append(g.symbols, c)
	}
	return nil
}

func (g *Graphic) SetOpacity(o expr.Expression) error {
	if g.frozen {
		return ErrFrozen
	}
	g.opacity = o
	return nil
}

func (g *Graphic) SetSize(s expr.Expression) error {
	if g.frozen {
		return ErrFrozen
	}
	g.size = s
	return nil
}

func (g *Graphic) SetRotation(r expr.Expression) error {
	if g.frozen {
		return ErrFrozen
	}
	g.rotation = r
	return nil
}

func (g *Graphic) SetAnchorPoint(a style.AnchorPoint) error {
	if g.frozen {
		return ErrFrozen
	}
	g.anchorPoint = CastAnchorPoint(a)
	return nil
}

func (g *Graphic) SetDisplacement(d style.Displacement) error {
	if g.frozen {
		return ErrFrozen
	}
	g.displacement = CastDisplacement(d)
	return nil
}

func (g *Graphic) SetGap(gap expr.Expression) error {
	if g.frozen {
		return ErrFrozen
	}
	g.gap = gap
	return nil
}

func (g *Graphic) SetInitialGap(gap expr.Expression) error {
	if g.frozen {
		return ErrFrozen
	}
	g.initialGap = gap
	return nil
}

func (g *Graphic) Equal(other style.Graphic) bool {
	o, ok := other.(*Graphic)
	if !ok || g == nil || o == nil {
		return ok && g == nil && o == nil
	}
	if g == o {
		return true
	}
	if len(g.symbols) != len(o.symbols) {
		return false
	}
	for i := range g.symbols {
		if !equalGraphicalSymbol(g.symbols[i], o.symbols[i]) {
			return false
		}
	}
	return expr.Equal(g.opacity, o.opacity) &&
		expr.Equal(g.size, o.size) &&
		expr.Equal(g.rotation, o.rotation) &&
		g.anchorPoint.Equal(o.anchorPoint) &&
		g.displacement.Equal(o.displacement) &&
		expr.Equal(g.gap, o.gap) &&
		expr.Equal(g.initialGap, o.initialGap)
}

func (g *Graphic) Hash() uint64 {
	if g == nil {
		return 0
	}
	h := newHasher("graphic").int(len(g.symbols))
	for _, s := range g.symbols {
		h.add(s.Hash())
	}
	return h.
		expr(g.opacity).
		expr(g.size).
		expr(g.rotation).
		add(g.anchorPoint.Hash()).
		add(g.displacement.Hash()).
		expr(g.gap).
		expr(g.initialGap).
		sum()
}

// Clone returns a mutable deep copy of g.
func (g *Graphic) Clone() *Graphic {
	if g == nil {
		return nil
	}
	c := &Graphic{
		opacity:      g.opacity,
		size:         g.size,
		rotation:     g.rotation,
		anchorPoint:  g.anchorPoint.Clone(),
		displacement: g.displacement.Clone(),
		gap:          g.gap,
		initialGap:   g.initialGap,
	}
	for _, s := range g.symbols {
		c.symbols = append(c.symbols, cloneGraphicalSymbol(s))
	}
	return c
}

func (g *Graphic) Accept(v Visitor) { v.VisitGraphic(g) }

func (g *Graphic) AcceptData(v DataVisitor, data any) any { return v.VisitGraphic(g, data) }
