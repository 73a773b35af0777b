package sld

import (
	"math"
	"strings"

	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/style"
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// String returns the SLD name of the cap.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	}
	return "unknown"
}

// ParseLineCap matches an SLD line cap name case-insensitively.
func ParseLineCap(s string) (LineCap, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "butt":
		return LineCapButt, true
	case "round":
		return LineCapRound, true
	case "square":
		return LineCapSquare, true
	}
	return LineCapButt, false
}

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// String returns the SLD name of the join.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	}
	return "unknown"
}

// ParseLineJoin matches an SLD line join name case-insensitively. Both
// spellings "miter" and "mitre" are accepted.
func ParseLineJoin(s string) (LineJoin, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "miter", "mitre":
		return LineJoinMiter, true
	case "round":
		return LineJoinRound, true
	case "bevel":
		return LineJoinBevel, true
	}
	return LineJoinMiter, false
}

// Stroke paints a line or the outline of an area.
//
// The dash array alternates dash and gap lengths; an empty array means a
// solid line. A graphic fill and a graphic stroke may both be set, the
// renderer decides which wins.
type Stroke struct {
	color         expr.Expression
	width         expr.Expression
	opacity       expr.Expression
	lineJoin      expr.Expression
	lineCap       expr.Expression
	dashArray     []expr.Expression
	dashOffset    expr.Expression
	graphicFill   *Graphic
	graphicStroke *Graphic
	frozen        bool
}

// NewStroke returns a solid black stroke, 1 unit wide, fully opaque, with
// miter joins and butt caps.
func NewStroke() *Stroke {
	return &Stroke{
		color:      expr.Hex("#000000"),
		width:      expr.Float(1),
		opacity:    expr.Float(1),
		lineJoin:   expr.Str(LineJoinMiter.String()),
		lineCap:    expr.Str(LineCapButt.String()),
		dashOffset: expr.Float(0),
	}
}

// CastStroke returns s as a mutable *Stroke.
func CastStroke(s style.Stroke) *Stroke {
	switch x := s.(type) {
	case nil:
		return nil
	case *Stroke:
		if x == nil || !x.frozen {
			return x
		}
		return x.Clone()
	}
	return &Stroke{
		color:         s.Color(),
		width:         s.Width(),
		opacity:       s.Opacity(),
		lineJoin:      s.LineJoin(),
		lineCap:       s.LineCap(),
		dashArray:     copyExprs(s.DashArray()),
		dashOffset:    s.DashOffset(),
		graphicFill:   CastGraphic(s.GraphicFill()),
		graphicStroke: CastGraphic(s.GraphicStroke()),
	}
}

func (s *Stroke) Color() expr.Expression      { return s.color }
func (s *Stroke) Width() expr.Expression      { return s.width }
func (s *Stroke) Opacity() expr.Expression    { return s.opacity }
func (s *Stroke) LineJoin() expr.Expression   { return s.lineJoin }
func (s *Stroke) LineCap() expr.Expression    { return s.lineCap }
func (s *Stroke) DashOffset() expr.Expression { return s.dashOffset }

// DashArray returns a copy of the dash array.
func (s *Stroke) DashArray() []expr.Expression { return copyExprs(s.dashArray) }

func (s *Stroke) GraphicFill() style.Graphic   { return ifaceOf[style.Graphic](s.graphicFill) }
func (s *Stroke) GraphicStroke() style.Graphic { return ifaceOf[style.Graphic](s.graphicStroke) }

// Frozen reports whether s is a shared default that rejects mutation.
func (s *Stroke) Frozen() bool { return s.frozen }

func (s *Stroke) SetColor(c expr.Expression) error {
	if s.frozen {
		return ErrFrozen
	}
	s.color = c
	return nil
}

func (s *Stroke) SetWidth(w expr.Expression) error {
	if s.frozen {
		return ErrFrozen
	}
	s.width = w
	return nil
}

func (s *Stroke) SetOpacity(o expr.Expression) error {
	if s.frozen {
		return ErrFrozen
	}
	s.opacity = o
	return nil
}

func (s *Stroke) SetLineJoin(j expr.Expression) error {
	if s.frozen {
		return ErrFrozen
	}
	s.lineJoin = j
	return nil
}

func (s *Stroke) SetLineCap(c expr.Expression) error {
	if s.frozen {
		return ErrFrozen
	}
	s.lineCap = c
	return nil
}

// SetDashArray replaces the dash array with a copy of dashes.
func (s *Stroke) SetDashArray(dashes []expr.Expression) error {
	if s.frozen {
		return ErrFrozen
	}
	s.dashArray = copyExprs(dashes)
	return nil
}

func (s *Stroke) SetDashOffset(o expr.Expression) error {
	if s.frozen {
		return ErrFrozen
	}
	s.dashOffset = o
	return nil
}

func (s *Stroke) SetGraphicFill(g style.Graphic) error {
	if s.frozen {
		return ErrFrozen
	}
	s.graphicFill = CastGraphic(g)
	return nil
}

func (s *Stroke) SetGraphicStroke(g style.Graphic) error {
	if s.frozen {
		return ErrFrozen
	}
	s.graphicStroke = CastGraphic(g)
	return nil
}

// Cap resolves a literal line cap. It reports false when the cap is
// unset, computed or not a known name.
func (s *Stroke) Cap() (LineCap, bool) {
	name, ok := expr.AsString(s.lineCap)
	if !ok {
		return LineCapButt, false
	}
	return ParseLineCap(name)
}

// Join resolves a literal line join.
func (s *Stroke) Join() (LineJoin, bool) {
	name, ok := expr.AsString(s.lineJoin)
	if !ok {
		return LineJoinMiter, false
	}
	return ParseLineJoin(name)
}

// DashPattern resolves the dash array into lengths for a renderer that
// only handles constants. Negative lengths are taken as absolute values.
//
// It returns nil and true for a solid line, including an array whose
// lengths are all zero, and false when any entry is not a numeric
// literal.
func (s *Stroke) DashPattern() ([]float64, bool) {
	if len(s.dashArray) == 0 {
		return nil, true
	}
	lengths := make([]float64, len(s.dashArray))
	dashed := false
	for i, e := range s.dashArray {
		v, ok := expr.AsFloat(e)
		if !ok {
			return nil, false
		}
		lengths[i] = math.Abs(v)
		if lengths[i] > 0 {
			dashed = true
		}
	}
	if !dashed {
		return nil, true
	}
	return lengths, true
}

// IsDashed reports whether the stroke has a non-empty dash array.
func (s *Stroke) IsDashed() bool { return len(s.dashArray) > 0 }

func (s *Stroke) Equal(other style.Stroke) bool {
	o, ok := other.(*Stroke)
	if !ok || s == nil || o == nil {
		return ok && s == nil && o == nil
	}
	if s == o {
		return true
	}
	return expr.Equal(s.color, o.color) &&
		expr.Equal(s.width, o.width) &&
		expr.Equal(s.opacity, o.opacity) &&
		expr.Equal(s.lineJoin, o.lineJoin) &&
		expr.Equal(s.lineCap, o.lineCap) &&
		exprsEqual(s.dashArray, o.dashArray) &&
		expr.Equal(s.dashOffset, o.dashOffset) &&
		s.graphicFill.Equal(o.graphicFill) &&
		s.graphicStroke.Equal(o.graphicStroke)
}

func (s *Stroke) Hash() uint64 {
	if s == nil {
		return 0
	}
	return newHasher("stroke").
		expr(s.color).
		expr(s.width).
		expr(s.opacity).
		expr(s.lineJoin).
		expr(s.lineCap).
		exprs(s.dashArray).
		expr(s.dashOffset).
		add(s.graphicFill.Hash()).
		add(s.graphicStroke.Hash()).
		sum()
}

// Clone returns a mutable deep copy of s.
func (s *Stroke) Clone() *Stroke {
	if s == nil {
		return nil
	}
	return &Stroke{
		color:         s.color,
		width:         s.width,
		opacity:       s.opacity,
		lineJoin:      s.lineJoin,
		lineCap:       s.lineCap,
		dashArray:     copyExprs(s.dashArray),
		dashOffset:    s.dashOffset,
		graphicFill:   s.graphicFill.Clone(),
		graphicStroke: s.graphicStroke.Clone(),
	}
}

func (s *Stroke) Accept(v Visitor) { v.VisitStroke(s) }

func (s *Stroke) AcceptData(v DataVisitor, data any) any { return v.VisitStroke(s, data) }
