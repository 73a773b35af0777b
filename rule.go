package sld

import (
	"math"

	"github.com/gogpu/sld/filter"
	"github.com/gogpu/sld/style"
)

// Rule draws its symbolizers for the features accepted by its filter,
// within a scale denominator range [min, max).
//
// The filter and the else flag are independent: an else rule applies to
// features no other rule of its feature type style accepted, and what a
// renderer does with an else rule that also has a filter is up to the
// renderer.
type Rule struct {
	name           string
	description    *Description
	legend         *Graphic
	filter         filter.Filter
	elseFilter     bool
	minScale       float64
	maxScale       float64
	symbolizers    []Symbolizer
	onlineResource string
}

// NewRule returns a rule without filter applying at every scale.
func NewRule(symbolizers ...style.Symbolizer) *Rule {
	r := &Rule{maxScale: math.Inf(1)}
	r.SetSymbolizers(symbolizers)
	return r
}

// CastRule returns r as a *Rule.
func CastRule(r style.Rule) *Rule {
	switch x := r.(type) {
	case nil:
		return nil
	case *Rule:
		return x
	}
	c := &Rule{
		name:           r.Name(),
		description:    CastDescription(r.Description()),
		legend:         CastGraphic(r.Legend()),
		filter:         r.Filter(),
		elseFilter:     r.ElseFilter(),
		minScale:       r.MinScaleDenominator(),
		maxScale:       r.MaxScaleDenominator(),
		onlineResource: r.OnlineResource(),
	}
	c.SetSymbolizers(r.Symbolizers())
	return c
}

func (r *Rule) Name() string { return r.name }

func (r *Rule) Description() style.Description {
	return ifaceOf[style.Description](r.description)
}

// Legend returns the graphic shown for the rule in a legend, or nil.
func (r *Rule) Legend() style.Graphic { return ifaceOf[style.Graphic](r.legend) }

// Filter returns the rule's filter. Nil accepts every feature.
func (r *Rule) Filter() filter.Filter { return r.filter }

func (r *Rule) ElseFilter() bool             { return r.elseFilter }
func (r *Rule) MinScaleDenominator() float64 { return r.minScale }
func (r *Rule) MaxScaleDenominator() float64 { return r.maxScale }
func (r *Rule) OnlineResource() string       { return r.onlineResource }

// Symbolizers returns the symbolizers in drawing order.
func (r *Rule) Symbolizers() []style.Symbolizer {
	out := make([]style.Symbolizer, len(r.symbolizers))
	for i, s := range r.symbolizers {
		out[i] = s
	}
	return out
}

// SymbolizerList returns the symbolizers as the package's own types.
func (r *Rule) SymbolizerList() []Symbolizer { return append([]Symbolizer(nil), r.symbolizers...) }

// AppliesAt reports whether scaleDenominator lies in the rule's range.
func (r *Rule) AppliesAt(scaleDenominator float64) bool {
	return scaleDenominator >= r.minScale && scaleDenominator < r.maxScale
}

func (r *Rule) SetName(name string)                { r.name = name }
func (r *Rule) SetDescription(d style.Description) { r.description = CastDescription(d) }
func (r *Rule) SetLegend(g style.Graphic)          { r.legend = CastGraphic(g) }
func (r *Rule) SetFilter(f filter.Filter)          { r.filter = f }
func (r *Rule) SetElseFilter(b bool)               { r.elseFilter = b }
func (r *Rule) SetMinScaleDenominator(s float64)   { r.minScale = s }
func (r *Rule) SetMaxScaleDenominator(s float64)   { r.maxScale = s }
func (r *Rule) SetOnlineResource(uri string)       { r.onlineResource = uri }

// SetSymbolizers replaces the symbolizer list. Symbolizers that cannot
// be cast are dropped.
func (r *Rule) SetSymbolizers(symbolizers []style.Symbolizer) {
	r.symbolizers = nil
	for _, s := range symbolizers {
		r.AddSymbolizer(s)
	}
}

// AddSymbolizer appends s. A symbolizer that cannot be cast is ignored.
func (r *Rule) AddSymbolizer(s style.Symbolizer) {
	if c := CastSymbolizer(s); c != nil {
		r.symbolizers = append(r.symbolizers, c)
	}
}

func (r *Rule) Equal(other style.Rule) bool {
	o, ok := other.(*Rule)
	if !ok || r == nil || o == nil {
		return ok && r == nil && o == nil
	}
	if r == o {
		return true
	}
	if len(r.symbolizers) != len(o.symbolizers) {
		return false
	}
	for i := range r.symbolizers {
		if !EqualSymbolizers(r.symbolizers[i], o.symbolizers[i]) {
			return false
		}
	}
	return r.name == o.name &&
		r.description.Equal(o.description) &&
		r.legend.Equal(o.legend) &&
		filter.Equal(r.filter, o.filter) &&
		r.elseFilter == o.elseFilter &&
		r.minScale == o.minScale &&
		r.maxScale == o.maxScale &&
		r.onlineResource == o.onlineResource
}

func (r *Rule) Hash() uint64 {
	if r == nil {
		return 0
	}
	h := newHasher("rule").
		str(r.name).
		add(r.description.Hash()).
		add(r.legend.Hash()).
		add(filter.Hash(r.filter)).
		bool(r.elseFilter).
		float(r.minScale).
		float(r.maxScale).
		str(r.onlineResource).
		int(len(r.symbolizers))
	for _, s := range r.symbolizers {
		h.add(s.Hash())
	}
	return h.sum()
}

// Clone returns a deep copy of r. Filters are shared.
func (r *Rule) Clone() *Rule {
	if r == nil {
		return nil
	}
	c := &Rule{
		name:           r.name,
		description:    r.description.Clone(),
		legend:         r.legend.Clone(),
		filter:         r.filter,
		elseFilter:     r.elseFilter,
		minScale:       r.minScale,
		maxScale:       r.maxScale,
		onlineResource: r.onlineResource,
	}
	for _, s := range r.symbolizers {
		c.symbolizers = append(c.symbolizers, CloneSymbolizer(s))
	}
	return c
}

func (r *Rule) Accept(v Visitor) { v.VisitRule(r) }

func (r *Rule) AcceptData(v DataVisitor, data any) any { return v.VisitRule(r, data) }
