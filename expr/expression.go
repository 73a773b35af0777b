package expr

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Expression is an opaque, lazily evaluated attribute value.
//
// Implementations must be immutable: the model copies expressions by
// reference when it clones or casts a style tree.
type Expression interface {
	// String returns a human readable form of the expression.
	String() string

	// Equal reports whether other denotes the same expression.
	Equal(other Expression) bool

	// Hash returns a hash consistent with Equal.
	Hash() uint64
}

// nilExpression is the type of the Nil sentinel.
type nilExpression struct{}

// Nil is the explicit "no value" expression. It differs from a Go nil
// Expression, which means "not specified".
var Nil Expression = nilExpression{}

func (nilExpression) String() string { return "NIL" }

func (nilExpression) Equal(other Expression) bool {
	_, ok := other.(nilExpression)
	return ok
}

func (nilExpression) Hash() uint64 { return nilHash }

var nilHash = xxhash.Sum64String("expr:nil")

// IsNil reports whether e is the Nil sentinel.
// A Go nil Expression is not the sentinel.
func IsNil(e Expression) bool {
	_, ok := e.(nilExpression)
	return ok
}

// IsSet reports whether e carries a value: it is neither a Go nil nor Nil.
func IsSet(e Expression) bool {
	return e != nil && !IsNil(e)
}

// Equal reports whether a and b are equal, treating two Go nil
// expressions as equal.
func Equal(a, b Expression) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// Hash returns e.Hash(), or 0 for a Go nil expression.
func Hash(e Expression) uint64 {
	if e == nil {
		return 0
	}
	return e.Hash()
}

// Literal is a constant expression.
// Its value is one of string, int64, float64, bool or color.NRGBA.
type Literal struct {
	value any
}

// NewLiteral wraps v in a Literal.
//
// Integer types are stored as int64, float32 as float64 and any
// color.Color as color.NRGBA. Values of other types are stored as their
// fmt.Sprint text.
func NewLiteral(v any) Literal {
	switch x := v.(type) {
	case Literal:
		return x
	case string, int64, float64, bool, color.NRGBA:
		return Literal{value: x}
	case int:
		return Literal{value: int64(x)}
	case int8:
		return Literal{value: int64(x)}
	case int16:
		return Literal{value: int64(x)}
	case int32:
		return Literal{value: int64(x)}
	case uint8:
		return Literal{value: int64(x)}
	case uint16:
		return Literal{value: int64(x)}
	case uint32:
		return Literal{value: int64(x)}
	case float32:
		return Literal{value: float64(x)}
	case color.Color:
		return Literal{value: color.NRGBAModel.Convert(x).(color.NRGBA)}
	case nil:
		return Literal{value: ""}
	default:
		return Literal{value: fmt.Sprint(x)}
	}
}

// Str returns a string literal.
func Str(s string) Literal { return Literal{value: s} }

// Int returns an integer literal.
func Int(v int64) Literal { return Literal{value: v} }

// Float returns a floating point literal.
func Float(v float64) Literal { return Literal{value: v} }

// Bool returns a boolean literal.
func Bool(v bool) Literal { return Literal{value: v} }

// Value returns the literal's underlying value.
func (l Literal) Value() any { return l.value }

// IsNumeric reports whether the literal holds an int64 or float64.
func (l Literal) IsNumeric() bool {
	_, ok := l.number()
	return ok
}

func (l Literal) number() (float64, bool) {
	switch v := l.value.(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// String implements Expression.
func (l Literal) String() string {
	switch v := l.value.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case color.NRGBA:
		return formatHex(v)
	}
	return fmt.Sprint(l.value)
}

// Equal implements Expression. Numeric literals compare by value, so
// Int(1) equals Float(1).
func (l Literal) Equal(other Expression) bool {
	o, ok := other.(Literal)
	if !ok {
		return false
	}
	if l.IsNumeric() {
		return numbersEqual(l.value, o.value)
	}
	return l.value == o.value
}

func numbersEqual(x, y any) bool {
	switch a := x.(type) {
	case int64:
		switch b := y.(type) {
		case int64:
			return a == b
		case float64:
			i, ok := exactInt(b)
			return ok && i == a
		}
	case float64:
		switch b := y.(type) {
		case int64:
			i, ok := exactInt(a)
			return ok && i == b
		case float64:
			return a == b || (math.IsNaN(a) && math.IsNaN(b))
		}
	}
	return false
}

// exactInt returns f as an int64 when it is integral and in range.
// Both zeros map to 0.
func exactInt(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// Hash implements Expression. Integral floats hash like the equal int.
func (l Literal) Hash() uint64 {
	switch v := l.value.(type) {
	case int64:
		return xxhash.Sum64String("i:" + strconv.FormatInt(v, 10))
	case float64:
		if i, ok := exactInt(v); ok {
			return xxhash.Sum64String("i:" + strconv.FormatInt(i, 10))
		}
		return xxhash.Sum64String("n:" + strconv.FormatFloat(v, 'g', -1, 64))
	}
	switch l.value.(type) {
	case bool:
		return xxhash.Sum64String("b:" + l.String())
	case color.NRGBA:
		return xxhash.Sum64String("c:" + l.String())
	}
	return xxhash.Sum64String("s:" + l.String())
}

// PropertyName references a feature attribute by name.
type PropertyName struct {
	name string
}

// Property returns a reference to the named attribute.
func Property(name string) PropertyName { return PropertyName{name: name} }

// Name returns the referenced attribute name.
func (p PropertyName) Name() string { return p.name }

// String implements Expression.
func (p PropertyName) String() string { return "[" + p.name + "]" }

// Equal implements Expression.
func (p PropertyName) Equal(other Expression) bool {
	o, ok := other.(PropertyName)
	return ok && o.name == p.name
}

// Hash implements Expression.
func (p PropertyName) Hash() uint64 { return xxhash.Sum64String("p:" + p.name) }

// Function is a named computation over argument expressions.
type Function struct {
	name     string
	args     []Expression
	fallback Expression
}

// Call returns a function expression. The argument slice is copied.
func Call(name string, args ...Expression) *Function {
	return &Function{name: name, args: append([]Expression(nil), args...)}
}

// WithFallback returns a copy of f whose fallback value is v. The
// fallback is what a consumer uses when it cannot evaluate the function.
func (f *Function) WithFallback(v Expression) *Function {
	c := *f
	c.fallback = v
	return &c
}

// Name returns the function name.
func (f *Function) Name() string { return f.name }

// Args returns a copy of the argument list.
func (f *Function) Args() []Expression { return append([]Expression(nil), f.args...) }

// Fallback returns the fallback value, or nil.
func (f *Function) Fallback() Expression { return f.fallback }

// String implements Expression.
func (f *Function) String() string {
	parts := make([]string, len(f.args))
	for i, a := range f.args {
		if a == nil {
			parts[i] = "null"
			continue
		}
		parts[i] = a.String()
	}
	return f.name + "(" + strings.Join(parts, ", ") + ")"
}

// Equal implements Expression.
func (f *Function) Equal(other Expression) bool {
	o, ok := other.(*Function)
	if !ok || o == nil {
		return false
	}
	if f == o {
		return true
	}
	if f.name != o.name || len(f.args) != len(o.args) || !Equal(f.fallback, o.fallback) {
		return false
	}
	for i := range f.args {
		if !Equal(f.args[i], o.args[i]) {
			return false
		}
	}
	return true
}

// Hash implements Expression.
func (f *Function) Hash() uint64 {
	h := xxhash.Sum64String("f:" + f.name)
	for _, a := range f.args {
		h = h*31 + Hash(a)
	}
	return h*31 + Hash(f.fallback)
}

// AsFloat returns the numeric value of a literal expression. String
// literals holding a number are converted.
func AsFloat(e Expression) (float64, bool) {
	l, ok := e.(Literal)
	if !ok {
		return 0, false
	}
	if f, ok := l.number(); ok {
		return f, true
	}
	if s, ok := l.value.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return f, err == nil
	}
	return 0, false
}

// AsString returns the text of a literal expression.
func AsString(e Expression) (string, bool) {
	l, ok := e.(Literal)
	if !ok {
		return "", false
	}
	return l.String(), true
}

// Properties returns the attribute names referenced by e, in first-seen
// order without duplicates.
func Properties(e Expression) []string {
	var names []string
	seen := map[string]bool{}
	collect(e, func(n string) {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	})
	return names
}

func collect(e Expression, fn func(string)) {
	switch x := e.(type) {
	case PropertyName:
		fn(x.name)
	case *Function:
		if x == nil {
			return
		}
		for _, a := range x.args {
			collect(a, fn)
		}
		collect(x.fallback, fn)
	}
}
