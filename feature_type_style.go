package sld

import (
	"maps"
	"slices"

	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/filter"
	"github.com/gogpu/sld/style"
)

// GenericFeatureTypeName is the feature type name matching any feature
// type.
const GenericFeatureTypeName = "Feature"

// FeatureTypeStyle groups the rules that apply to a set of feature types.
//
// Feature type names and semantic type identifiers are sets: order and
// duplicates are irrelevant to equality.
type FeatureTypeStyle struct {
	name           string
	description    *Description
	typeNames      []string
	semanticTypes  []style.SemanticType
	instanceIDs    *filter.FeatureID
	rules          []*Rule
	transformation expr.Expression
	options        map[string]string
}

// NewFeatureTypeStyle returns a feature type style applying to any
// feature type.
func NewFeatureTypeStyle(rules ...style.Rule) *FeatureTypeStyle {
	f := &FeatureTypeStyle{semanticTypes: []style.SemanticType{style.SemanticAny}}
	f.SetRules(rules)
	return f
}

// CastFeatureTypeStyle returns f as a *FeatureTypeStyle.
func CastFeatureTypeStyle(f style.FeatureTypeStyle) *FeatureTypeStyle {
	switch x := f.(type) {
	case nil:
		return nil
	case *FeatureTypeStyle:
		return x
	}
	c := &FeatureTypeStyle{
		name:           f.Name(),
		description:    CastDescription(f.Description()),
		instanceIDs:    f.FeatureInstanceIDs(),
		transformation: f.Transformation(),
		options:        copyStrMap(f.Options()),
	}
	c.typeNames = dedup(f.FeatureTypeNames())
	c.semanticTypes = dedup(f.SemanticTypeIdentifiers())
	c.SetRules(f.Rules())
	return c
}

func dedup[T comparable](in []T) []T {
	var out []T
	for _, v := range in {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

func (f *FeatureTypeStyle) Name() string { return f.name }

func (f *FeatureTypeStyle) Description() style.Description {
	return ifaceOf[style.Description](f.description)
}

// FeatureTypeNames returns the names of the feature types the style
// applies to, in insertion order.
func (f *FeatureTypeStyle) FeatureTypeNames() []string { return slices.Clone(f.typeNames) }

// SemanticTypeIdentifiers returns the geometry classes the style
// targets.
func (f *FeatureTypeStyle) SemanticTypeIdentifiers() []style.SemanticType {
	return slices.Clone(f.semanticTypes)
}

// FeatureInstanceIDs returns the filter restricting which feature
// instances the style applies to, or nil.
func (f *FeatureTypeStyle) FeatureInstanceIDs() *filter.FeatureID { return f.instanceIDs }

// Rules returns the rules in evaluation order.
func (f *FeatureTypeStyle) Rules() []style.Rule {
	out := make([]style.Rule, len(f.rules))
	for i, r := range f.rules {
		out[i] = r
	}
	return out
}

// RuleList returns the rules as the package's own type.
func (f *FeatureTypeStyle) RuleList() []*Rule { return slices.Clone(f.rules) }

// Transformation returns the rendering transformation applied to the
// data before the rules, or nil.
func (f *FeatureTypeStyle) Transformation() expr.Expression { return f.transformation }

// Options returns a copy of the vendor options.
func (f *FeatureTypeStyle) Options() map[string]string { return maps.Clone(f.options) }

func (f *FeatureTypeStyle) SetName(name string) { f.name = name }

func (f *FeatureTypeStyle) SetDescription(d style.Description) {
	f.description = CastDescription(d)
}

// SetFeatureTypeNames replaces the feature type name set. The lower
// case name "feature" is kept as given but logged: the generic name is
// GenericFeatureTypeName.
func (f *FeatureTypeStyle) SetFeatureTypeNames(names ...string) {
	for _, n := range names {
		if n == "feature" {
			Logger().Warn("sld: feature type name \"feature\" is deprecated, use \"Feature\"")
		}
	}
	f.typeNames = dedup(names)
}

func (f *FeatureTypeStyle) SetSemanticTypeIdentifiers(types ...style.SemanticType) {
	f.semanticTypes = dedup(types)
}

func (f *FeatureTypeStyle) SetFeatureInstanceIDs(ids *filter.FeatureID) { f.instanceIDs = ids }

func (f *FeatureTypeStyle) SetTransformation(t expr.Expression) { f.transformation = t }

// SetOption stores a vendor option. An empty value removes it.
func (f *FeatureTypeStyle) SetOption(key, value string) {
	if value == "" {
		delete(f.options, key)
		return
	}
	if f.options == nil {
		f.options = make(map[string]string)
	}
	f.options[key] = value
}

// SetRules replaces the rule list. Nil rules are skipped.
func (f *FeatureTypeStyle) SetRules(rules []style.Rule) {
	f.rules = nil
	for _, r := range rules {
		f.AddRule(r)
	}
}

// AddRule appends r. A nil rule is ignored.
func (f *FeatureTypeStyle) AddRule(r style.Rule) {
	if c := CastRule(r); c != nil {
		f.rules = append(f.rules, c)
	}
}

func (f *FeatureTypeStyle) Equal(other style.FeatureTypeStyle) bool {
	o, ok := other.(*FeatureTypeStyle)
	if !ok || f == nil || o == nil {
		return ok && f == nil && o == nil
	}
	if f == o {
		return true
	}
	if len(f.rules) != len(o.rules) {
		return false
	}
	for i := range f.rules {
		if !f.rules[i].Equal(o.rules[i]) {
			return false
		}
	}
	return f.name == o.name &&
		f.description.Equal(o.description) &&
		setEqual(f.typeNames, o.typeNames) &&
		setEqual(f.semanticTypes, o.semanticTypes) &&
		filter.Equal(fidFilter(f.instanceIDs), fidFilter(o.instanceIDs)) &&
		expr.Equal(f.transformation, o.transformation) &&
		strMapEqual(f.options, o.options)
}

// fidFilter keeps a nil *filter.FeatureID out of the filter.Filter
// interface.
func fidFilter(ids *filter.FeatureID) filter.Filter {
	if ids == nil {
		return nil
	}
	return ids
}

func (f *FeatureTypeStyle) Hash() uint64 {
	if f == nil {
		return 0
	}
	semantic := make([]string, len(f.semanticTypes))
	for i, t := range f.semanticTypes {
		semantic[i] = string(t)
	}
	h := newHasher("fts").
		str(f.name).
		add(f.description.Hash()).
		strSet(f.typeNames).
		strSet(semantic).
		add(filter.Hash(fidFilter(f.instanceIDs))).
		expr(f.transformation).
		strMap(f.options).
		int(len(f.rules))
	for _, r := range f.rules {
		h.add(r.Hash())
	}
	return h.sum()
}

// Clone returns a deep copy of f. Filters are shared.
func (f *FeatureTypeStyle) Clone() *FeatureTypeStyle {
	if f == nil {
		return nil
	}
	c := &FeatureTypeStyle{
		name:           f.name,
		description:    f.description.Clone(),
		typeNames:      slices.Clone(f.typeNames),
		semanticTypes:  slices.Clone(f.semanticTypes),
		instanceIDs:    f.instanceIDs,
		transformation: f.transformation,
		options:        copyStrMap(f.options),
	}
	for _, r := range f.rules {
		c.rules = append(c.rules, r.Clone())
	}
	return c
}

func (f *FeatureTypeStyle) Accept(v Visitor) { v.VisitFeatureTypeStyle(f) }

func (f *FeatureTypeStyle) AcceptData(v DataVisitor, data any) any {
	return v.VisitFeatureTypeStyle(f, data)
}
