package sld

import (
	"slices"

	"github.com/gogpu/sld/style"
)

// Style is the top-level paintable unit: feature type styles drawn in
// order over an optional background.
type Style struct {
	name              string
	description       *Description
	isDefault         bool
	featureTypeStyles []*FeatureTypeStyle
	background        *Fill
	defaultSpec       Symbolizer
}

// NewStyle returns a named style holding the given feature type styles.
func NewStyle(name string, fts ...style.FeatureTypeStyle) *Style {
	s := &Style{name: name}
	s.SetFeatureTypeStyles(fts)
	return s
}

// CastStyle returns s as a *Style.
func CastStyle(s style.Style) *Style {
	switch x := s.(type) {
	case nil:
		return nil
	case *Style:
		return x
	}
	c := &Style{
		name:        s.Name(),
		description: CastDescription(s.Description()),
		isDefault:   s.IsDefault(),
		background:  CastFill(s.Background()),
		defaultSpec: CastSymbolizer(s.DefaultSpecification()),
	}
	c.SetFeatureTypeStyles(s.FeatureTypeStyles())
	return c
}

func (s *Style) Name() string    { return s.name }
func (s *Style) IsDefault() bool { return s.isDefault }

func (s *Style) Description() style.Description {
	return ifaceOf[style.Description](s.description)
}

// FeatureTypeStyles returns the feature type styles in drawing order.
func (s *Style) FeatureTypeStyles() []style.FeatureTypeStyle {
	out := make([]style.FeatureTypeStyle, len(s.featureTypeStyles))
	for i, f := range s.featureTypeStyles {
		out[i] = f
	}
	return out
}

// FeatureTypeStyleList returns the feature type styles as the package's
// own type.
func (s *Style) FeatureTypeStyleList() []*FeatureTypeStyle {
	return slices.Clone(s.featureTypeStyles)
}

// Background returns the fill painted under the map, or nil.
func (s *Style) Background() style.Fill { return ifaceOf[style.Fill](s.background) }

// DefaultSpecification returns the symbolizer used when no rule
// matches, or nil.
func (s *Style) DefaultSpecification() style.Symbolizer {
	if s.defaultSpec == nil {
		return nil
	}
	return s.defaultSpec
}

func (s *Style) SetName(name string)                { s.name = name }
func (s *Style) SetDescription(d style.Description) { s.description = CastDescription(d) }
func (s *Style) SetDefault(b bool)                  { s.isDefault = b }
func (s *Style) SetBackground(f style.Fill)         { s.background = CastFill(f) }

func (s *Style) SetDefaultSpecification(sym style.Symbolizer) {
	s.defaultSpec = CastSymbolizer(sym)
}

// SetFeatureTypeStyles replaces the feature type style list. Nil
// entries are skipped.
func (s *Style) SetFeatureTypeStyles(fts []style.FeatureTypeStyle) {
	s.featureTypeStyles = nil
	for _, f := range fts {
		s.AddFeatureTypeStyle(f)
	}
}

// AddFeatureTypeStyle appends f. A nil style is ignored.
func (s *Style) AddFeatureTypeStyle(f style.FeatureTypeStyle) {
	if c := CastFeatureTypeStyle(f); c != nil {
		s.featureTypeStyles = append(s.featureTypeStyles, c)
	}
}

func (s *Style) Equal(other style.Style) bool {
	o, ok := other.(*Style)
	if !ok || s == nil || o == nil {
		return ok && s == nil && o == nil
	}
	if s == o {
		return true
	}
	if len(s.featureTypeStyles) != len(o.featureTypeStyles) {
		return false
	}
	for i := range s.featureTypeStyles {
		if !s.featureTypeStyles[i].Equal(o.featureTypeStyles[i]) {
			return false
		}
	}
	return s.name == o.name &&
		s.description.Equal(o.description) &&
		s.isDefault == o.isDefault &&
		s.background.Equal(o.background) &&
		EqualSymbolizers(s.defaultSpec, o.defaultSpec)
}

func (s *Style) Hash() uint64 {
	if s == nil {
		return 0
	}
	h := newHasher("style").
		str(s.name).
		add(s.description.Hash()).
		bool(s.isDefault).
		add(s.background.Hash()).
		add(hashSymbolizer(s.defaultSpec)).
		int(len(s.featureTypeStyles))
	for _, f := range s.featureTypeStyles {
		h.add(f.Hash())
	}
	return h.sum()
}

// Clone returns a deep copy of s down to expression and filter leaves.
func (s *Style) Clone() *Style {
	if s == nil {
		return nil
	}
	c := &Style{
		name:        s.name,
		description: s.description.Clone(),
		isDefault:   s.isDefault,
		background:  s.background.Clone(),
		defaultSpec: CloneSymbolizer(s.defaultSpec),
	}
	for _, f := range s.featureTypeStyles {
		c.featureTypeStyles = append(c.featureTypeStyles, f.Clone())
	}
	return c
}

func (s *Style) Accept(v Visitor) { v.VisitStyle(s) }

func (s *Style) AcceptData(v DataVisitor, data any) any { return v.VisitStyle(s, data) }
