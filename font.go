package sld

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/style"
)

// DefaultFontSize is the font size, in pixels, of a new Font.
const DefaultFontSize = 10

// Font describes the typeface of a label.
type Font struct {
	family []expr.Expression
	style  expr.Expression
	weight expr.Expression
	size   expr.Expression
}

// NewFont returns a normal-weight upright serif font of DefaultFontSize.
func NewFont() *Font {
	return &Font{
		family: []expr.Expression{expr.Str("Serif")},
		style:  expr.Str("normal"),
		weight: expr.Str("normal"),
		size:   expr.Int(DefaultFontSize),
	}
}

// CastFont returns f as a *Font.
func CastFont(f style.Font) *Font {
	switch x := f.(type) {
	case nil:
		return nil
	case *Font:
		return x
	}
	return &Font{
		family: copyExprs(f.Family()),
		style:  f.Style(),
		weight: f.Weight(),
		size:   f.Size(),
	}
}

// Family returns a copy of the family names in preference order.
func (f *Font) Family() []expr.Expression { return copyExprs(f.family) }
func (f *Font) Style() expr.Expression    { return f.style }
func (f *Font) Weight() expr.Expression   { return f.weight }
func (f *Font) Size() expr.Expression     { return f.size }

func (f *Font) SetFamily(families []expr.Expression) { f.family = copyExprs(families) }

// AddFamily appends a fallback family.
func (f *Font) AddFamily(family expr.Expression) { f.family = append(f.family, family) }

func (f *Font) SetStyle(s expr.Expression)  { f.style = s }
func (f *Font) SetWeight(w expr.Expression) { f.weight = w }
func (f *Font) SetSize(s expr.Expression)   { f.size = s }

// Query converts the literal parts of f into a font lookup query.
// Computed families are skipped; a computed or unknown style or weight
// falls back to normal.
func (f *Font) Query() fontscan.Query {
	q := fontscan.Query{
		Aspect: font.Aspect{
			Style:   font.StyleNormal,
			Weight:  font.WeightNormal,
			Stretch: font.StretchNormal,
		},
	}
	for _, e := range f.family {
		if name, ok := expr.AsString(e); ok && name != "" {
			q.Families = append(q.Families, name)
		}
	}
	if s, ok := expr.AsString(f.style); ok {
		switch strings.ToLower(s) {
		case "italic", "oblique":
			q.Aspect.Style = font.StyleItalic
		}
	}
	if w, ok := expr.AsString(f.weight); ok {
		switch strings.ToLower(w) {
		case "bold":
			q.Aspect.Weight = font.WeightBold
		case "normal":
		default:
			if n, err := strconv.ParseFloat(w, 32); err == nil && n > 0 {
				q.Aspect.Weight = font.Weight(n)
			}
		}
	}
	return q
}

// FixedSize returns the literal size as a 26.6 fixed point value. It
// reports false for a computed, negative, NaN or out of range size.
func (f *Font) FixedSize() (fixed.Int26_6, bool) {
	v, ok := expr.AsFloat(f.size)
	if !ok || v < 0 || math.IsNaN(v) || v*64+0.5 > math.MaxInt32 {
		return 0, false
	}
	return fixed.Int26_6(v*64 + 0.5), true
}

func (f *Font) Equal(other style.Font) bool {
	o, ok := other.(*Font)
	if !ok || f == nil || o == nil {
		return ok && f == nil && o == nil
	}
	return exprsEqual(f.family, o.family) &&
		expr.Equal(f.style, o.style) &&
		expr.Equal(f.weight, o.weight) &&
		expr.Equal(f.size, o.size)
}

func (f *Font) Hash() uint64 {
	if f == nil {
		return 0
	}
	return newHasher("font").exprs(f.family).expr(f.style).expr(f.weight).expr(f.size).sum()
}

func (f *Font) Clone() *Font {
	if f == nil {
		return nil
	}
	return &Font{family: copyExprs(f.family), style: f.style, weight: f.weight, size: f.size}
}

func (f *Font) Accept(v Visitor) { v.VisitFont(f) }

func (f *Font) AcceptData(v DataVisitor, data any) any { return v.VisitFont(f, data) }
