package sld

import (
	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/style"
)

// OtherText is an additional label text routed to a named target, such
// as a KML description.
type OtherText struct {
	target string
	text   expr.Expression
}

// NewOtherText returns a text for target.
func NewOtherText(target string, text expr.Expression) *OtherText {
	return &OtherText{target: target, text: text}
}

// CastOtherText returns t as an *OtherText.
func CastOtherText(t style.OtherText) *OtherText {
	switch x := t.(type) {
	case nil:
		return nil
	case *OtherText:
		return x
	}
	return &OtherText{target: t.Target(), text: t.Text()}
}

func (t *OtherText) Target() string        { return t.target }
func (t *OtherText) Text() expr.Expression { return t.text }

func (t *OtherText) SetTarget(target string)      { t.target = target }
func (t *OtherText) SetText(text expr.Expression) { t.text = text }

func (t *OtherText) Equal(other style.OtherText) bool {
	o, ok := other.(*OtherText)
	if !ok || t == nil || o == nil {
		return ok && t == nil && o == nil
	}
	return t.target == o.target && expr.Equal(t.text, o.text)
}

func (t *OtherText) Hash() uint64 {
	if t == nil {
		return 0
	}
	return newHasher("other-text").str(t.target).expr(t.text).sum()
}

func (t *OtherText) Clone() *OtherText {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// TextSymbolizer draws a label for a feature.
//
// Fonts are alternatives in preference order. The graphic, when set, is
// drawn behind the label as a shield.
type TextSymbolizer struct {
	SymbolizerBase
	label              expr.Expression
	fonts              []*Font
	placement          LabelPlacement
	halo               *Halo
	fill               *Fill
	priority           expr.Expression
	graphic            *Graphic
	snippet            expr.Expression
	featureDescription expr.Expression
	otherText          *OtherText
}

// NewTextSymbolizer returns a text symbolizer with a solid black fill
// and no label.
func NewTextSymbolizer() *TextSymbolizer {
	fill := NewFill()
	fill.color = expr.Hex("#000000")
	return &TextSymbolizer{fill: fill}
}

// CastTextSymbolizer returns s as a *TextSymbolizer.
func CastTextSymbolizer(s style.TextSymbolizer) *TextSymbolizer {
	switch x := s.(type) {
	case nil:
		return nil
	case *TextSymbolizer:
		return x
	}
	t := &TextSymbolizer{
		SymbolizerBase:     castBase(s),
		label:              s.Label(),
		placement:          CastLabelPlacement(s.LabelPlacement()),
		halo:               CastHalo(s.Halo()),
		fill:               CastFill(s.Fill()),
		priority:           s.Priority(),
		graphic:            CastGraphic(s.Graphic()),
		snippet:            s.Snippet(),
		featureDescription: s.FeatureDescription(),
		otherText:          CastOtherText(s.OtherText()),
	}
	t.SetFonts(s.Fonts())
	return t
}

func (s *TextSymbolizer) Label() expr.Expression              { return s.label }
func (s *TextSymbolizer) Priority() expr.Expression           { return s.priority }
func (s *TextSymbolizer) Snippet() expr.Expression            { return s.snippet }
func (s *TextSymbolizer) FeatureDescription() expr.Expression { return s.featureDescription }

// Fonts returns the fonts in preference order.
func (s *TextSymbolizer) Fonts() []style.Font {
	out := make([]style.Font, len(s.fonts))
	for i, f := range s.fonts {
		out[i] = f
	}
	return out
}

// Font returns the preferred font, or nil.
func (s *TextSymbolizer) Font() *Font {
	if len(s.fonts) == 0 {
		return nil
	}
	return s.fonts[0]
}

func (s *TextSymbolizer) LabelPlacement() style.LabelPlacement {
	if s.placement == nil {
		return nil
	}
	return s.placement
}

func (s *TextSymbolizer) Halo() style.Halo           { return ifaceOf[style.Halo](s.halo) }
func (s *TextSymbolizer) Fill() style.Fill           { return ifaceOf[style.Fill](s.fill) }
func (s *TextSymbolizer) Graphic() style.Graphic     { return ifaceOf[style.Graphic](s.graphic) }
func (s *TextSymbolizer) OtherText() style.OtherText { return ifaceOf[style.OtherText](s.otherText) }

func (s *TextSymbolizer) SetLabel(l expr.Expression)    { s.label = l }
func (s *TextSymbolizer) SetPriority(p expr.Expression) { s.priority = p }
func (s *TextSymbolizer) SetSnippet(e expr.Expression)  { s.snippet = e }

func (s *TextSymbolizer) SetFeatureDescription(e expr.Expression) { s.featureDescription = e }

// SetFonts replaces the font list. Nil fonts are skipped.
func (s *TextSymbolizer) SetFonts(fonts []style.Font) {
	s.fonts = nil
	for _, f := range fonts {
		s.AddFont(f)
	}
}

// AddFont appends a fallback font. A nil font is ignored.
func (s *TextSymbolizer) AddFont(f style.Font) {
	if c := CastFont(f); c != nil {
		s.fonts = append(s.fonts, c)
	}
}

func (s *TextSymbolizer) SetLabelPlacement(p style.LabelPlacement) {
	s.placement = CastLabelPlacement(p)
}

func (s *TextSymbolizer) SetHalo(h style.Halo)           { s.halo = CastHalo(h) }
func (s *TextSymbolizer) SetFill(f style.Fill)           { s.fill = CastFill(f) }
func (s *TextSymbolizer) SetGraphic(g style.Graphic)     { s.graphic = CastGraphic(g) }
func (s *TextSymbolizer) SetOtherText(t style.OtherText) { s.otherText = CastOtherText(t) }

func (s *TextSymbolizer) Equal(other style.TextSymbolizer) bool {
	o, ok := other.(*TextSymbolizer)
	if !ok || s == nil || o == nil {
		return ok && s == nil && o == nil
	}
	if s == o {
		return true
	}
	if len(s.fonts) != len(o.fonts) {
		return false
	}
	for i := range s.fonts {
		if !s.fonts[i].Equal(o.fonts[i]) {
			return false
		}
	}
	return s.equalBase(&o.SymbolizerBase) &&
		expr.Equal(s.label, o.label) &&
		equalLabelPlacement(s.placement, o.placement) &&
		s.halo.Equal(o.halo) &&
		s.fill.Equal(o.fill) &&
		expr.Equal(s.priority, o.priority) &&
		s.graphic.Equal(o.graphic) &&
		expr.Equal(s.snippet, o.snippet) &&
		expr.Equal(s.featureDescription, o.featureDescription) &&
		s.otherText.Equal(o.otherText)
}

func (s *TextSymbolizer) Hash() uint64 {
	if s == nil {
		return 0
	}
	h := s.hashBase("text").expr(s.label).int(len(s.fonts))
	for _, f := range s.fonts {
		h.add(f.Hash())
	}
	return h.
		add(hashLabelPlacement(s.placement)).
		add(s.halo.Hash()).
		add(s.fill.Hash()).
		expr(s.priority).
		add(s.graphic.Hash()).
		expr(s.snippet).
		expr(s.featureDescription).
		add(s.otherText.Hash()).
		sum()
}

func (s *TextSymbolizer) Clone() *TextSymbolizer {
	if s == nil {
		return nil
	}
	c := &TextSymbolizer{
		SymbolizerBase:     s.cloneBase(),
		label:              s.label,
		placement:          cloneLabelPlacement(s.placement),
		halo:               s.halo.Clone(),
		fill:               s.fill.Clone(),
		priority:           s.priority,
		graphic:            s.graphic.Clone(),
		snippet:            s.snippet,
		featureDescription: s.featureDescription,
		otherText:          s.otherText.Clone(),
	}
	for _, f := range s.fonts {
		c.fonts = append(c.fonts, f.Clone())
	}
	return c
}

func (s *TextSymbolizer) Accept(v Visitor) { v.VisitTextSymbolizer(s) }

func (s *TextSymbolizer) AcceptData(v DataVisitor, data any) any {
	return v.VisitTextSymbolizer(s, data)
}
