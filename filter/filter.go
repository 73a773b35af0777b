// Package filter provides the opaque feature filters referenced by rules,
// feature type styles and layer constraints.
//
// Filters are stored and compared, never evaluated: evaluating a filter
// against a feature is the renderer's job.
package filter

import (
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/gogpu/sld/expr"
)

// Filter is an opaque predicate over features.
type Filter interface {
	String() string
	Equal(other Filter) bool
	Hash() uint64
}

// constant is the type of the Include and Exclude sentinels.
type constant bool

var (
	// Include accepts every feature.
	Include Filter = constant(true)

	// Exclude rejects every feature.
	Exclude Filter = constant(false)
)

func (c constant) String() string {
	if c {
		return "INCLUDE"
	}
	return "EXCLUDE"
}

func (c constant) Equal(other Filter) bool {
	o, ok := other.(constant)
	return ok && o == c
}

func (c constant) Hash() uint64 { return xxhash.Sum64String("filter:" + c.String()) }

// Equal reports whether a and b are equal, treating two nil filters as
// equal.
func Equal(a, b Filter) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// Hash returns f.Hash(), or 0 for a nil filter.
func Hash(f Filter) uint64 {
	if f == nil {
		return 0
	}
	return f.Hash()
}

// FeatureID selects features by identifier. Identifiers form a set: order
// and duplicates are irrelevant to equality.
type FeatureID struct {
	ids []string
}

// IDs returns a FeatureID filter over the given identifiers.
func IDs(ids ...string) *FeatureID {
	set := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := set[id]; dup {
			continue
		}
		set[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return &FeatureID{ids: out}
}

// Identifiers returns the sorted identifier set.
func (f *FeatureID) Identifiers() []string { return append([]string(nil), f.ids...) }

// Contains reports whether id is part of the set.
func (f *FeatureID) Contains(id string) bool {
	i := sort.SearchStrings(f.ids, id)
	return i < len(f.ids) && f.ids[i] == id
}

func (f *FeatureID) String() string { return "FID{" + strings.Join(f.ids, ",") + "}" }

func (f *FeatureID) Equal(other Filter) bool {
	o, ok := other.(*FeatureID)
	if !ok || o == nil || len(o.ids) != len(f.ids) {
		return false
	}
	for i := range f.ids {
		if f.ids[i] != o.ids[i] {
			return false
		}
	}
	return true
}

func (f *FeatureID) Hash() uint64 { return xxhash.Sum64String("filter:" + f.String()) }

// Operator names a binary comparison.
type Operator string

// Comparison operators.
const (
	OpEqual          Operator = "="
	OpNotEqual       Operator = "<>"
	OpLess           Operator = "<"
	OpLessOrEqual    Operator = "<="
	OpGreater        Operator = ">"
	OpGreaterOrEqual Operator = ">="
	OpLike           Operator = "LIKE"
)

// Compare is a binary comparison between two expressions.
type Compare struct {
	Op          Operator
	Left, Right expr.Expression
}

// Cmp returns a comparison filter.
func Cmp(left expr.Expression, op Operator, right expr.Expression) *Compare {
	return &Compare{Op: op, Left: left, Right: right}
}

func (c *Compare) String() string {
	return exprString(c.Left) + " " + string(c.Op) + " " + exprString(c.Right)
}

func (c *Compare) Equal(other Filter) bool {
	o, ok := other.(*Compare)
	return ok && o != nil && o.Op == c.Op && expr.Equal(c.Left, o.Left) && expr.Equal(c.Right, o.Right)
}

func (c *Compare) Hash() uint64 {
	h := xxhash.Sum64String("cmp:" + string(c.Op))
	h = h*31 + expr.Hash(c.Left)
	return h*31 + expr.Hash(c.Right)
}

// LogicOp names a logical combinator.
type LogicOp string

// Logical operators.
const (
	And LogicOp = "AND"
	Or  LogicOp = "OR"
	Not LogicOp = "NOT"
)

// Logic combines child filters. Not uses only the first child.
type Logic struct {
	Op       LogicOp
	Children []Filter
}

// AllOf returns the conjunction of fs.
func AllOf(fs ...Filter) *Logic { return &Logic{Op: And, Children: fs} }

// AnyOf returns the disjunction of fs.
func AnyOf(fs ...Filter) *Logic { return &Logic{Op: Or, Children: fs} }

// Negate returns the negation of f.
func Negate(f Filter) *Logic { return &Logic{Op: Not, Children: []Filter{f}} }

func (l *Logic) String() string {
	parts := make([]string, len(l.Children))
	for i, c := range l.Children {
		if c == nil {
			parts[i] = "null"
			continue
		}
		parts[i] = c.String()
	}
	if l.Op == Not {
		return "NOT (" + strings.Join(parts, ", ") + ")"
	}
	return "(" + strings.Join(parts, " "+string(l.Op)+" ") + ")"
}

func (l *Logic) Equal(other Filter) bool {
	o, ok := other.(*Logic)
	if !ok || o == nil || o.Op != l.Op || len(o.Children) != len(l.Children) {
		return false
	}
	for i := range l.Children {
		if !Equal(l.Children[i], o.Children[i]) {
			return false
		}
	}
	return true
}

func (l *Logic) Hash() uint64 {
	h := xxhash.Sum64String("logic:" + string(l.Op))
	for _, c := range l.Children {
		h = h*31 + Hash(c)
	}
	return h
}

// Properties returns the attribute names referenced by f in first-seen
// order.
func Properties(f Filter) []string {
	var names []string
	seen := map[string]bool{}
	add := func(e expr.Expression) {
		for _, n := range expr.Properties(e) {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	var walk func(Filter)
	walk = func(f Filter) {
		switch x := f.(type) {
		case *Compare:
			add(x.Left)
			add(x.Right)
		case *Logic:
			for _, c := range x.Children {
				walk(c)
			}
		}
	}
	walk(f)
	return names
}

func exprString(e expr.Expression) string {
	if e == nil {
		return "null"
	}
	return e.String()
}
