package sld

import (
	"fmt"
	"maps"
	"slices"

	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/style"
)

// AlgorithmOption is the vendor option key naming a contrast
// enhancement algorithm.
const AlgorithmOption = "algorithm"

// Normalize algorithms.
const (
	StretchToMinimumMaximum = "StretchToMinimumMaximum"
	ClipToMinimumMaximum    = "ClipToMinimumMaximum"
	ClipToZero              = "ClipToZero"
)

// contrastOptions lists the option keys each method understands.
var contrastOptions = map[style.ContrastMethod][]string{
	style.ContrastNormalize:   {AlgorithmOption, "minValue", "maxValue"},
	style.ContrastLogarithmic: {"normalizationFactor", "correctionFactor"},
	style.ContrastExponential: {"normalizationFactor", "correctionFactor"},
}

// contrastAlgorithms lists the algorithm names each method allows.
var contrastAlgorithms = map[style.ContrastMethod][]string{
	style.ContrastNormalize: {StretchToMinimumMaximum, ClipToMinimumMaximum, ClipToZero},
}

// ContrastEnhancement adjusts the contrast of a raster band or image.
//
// The method is the only stored discriminator; the legacy type
// expression returned by Type is derived from it.
type ContrastEnhancement struct {
	method  style.ContrastMethod
	gamma   expr.Expression
	options map[string]expr.Expression
}

// NewContrastEnhancement returns an enhancement using method.
func NewContrastEnhancement(method style.ContrastMethod) *ContrastEnhancement {
	if method == "" {
		method = style.ContrastNone
	}
	return &ContrastEnhancement{method: method}
}

// CastContrastEnhancement returns c as a *ContrastEnhancement. An
// algorithm the method does not allow is dropped.
func CastContrastEnhancement(c style.ContrastEnhancement) *ContrastEnhancement {
	switch x := c.(type) {
	case nil:
		return nil
	case *ContrastEnhancement:
		return x
	}
	ce := NewContrastEnhancement(c.Method())
	ce.gamma = c.GammaValue()
	ce.options = copyExprMap(c.Options())
	ce.dropAlgorithm()
	return ce
}

func (c *ContrastEnhancement) Method() style.ContrastMethod { return c.method }
func (c *ContrastEnhancement) GammaValue() expr.Expression { return c.gamma }

// Options returns a copy of the vendor options.
func (c *ContrastEnhancement) Options() map[string]expr.Expression {
	return maps.Clone(c.options)
}

// Option returns one vendor option, or nil.
func (c *ContrastEnhancement) Option(key string) expr.Expression { return c.options[key] }

// SetMethod changes the method. Options already stored are kept, except
// an algorithm the new method does not allow, which is removed.
func (c *ContrastEnhancement) SetMethod(m style.ContrastMethod) {
	if m == "" {
		m = style.ContrastNone
	}
	c.method = m
	c.dropAlgorithm()
}

func (c *ContrastEnhancement) dropAlgorithm() {
	name := c.Algorithm()
	if name == "" || slices.Contains(contrastAlgorithms[c.method], name) {
		return
	}
	Logger().Debug("sld: contrast algorithm dropped", "method", string(c.method), "algorithm", name)
	delete(c.options, AlgorithmOption)
}

func (c *ContrastEnhancement) SetNormalize() { c.SetMethod(style.ContrastNormalize) }
func (c *ContrastEnhancement) SetHistogram() { c.SetMethod(style.ContrastHistogram) }

func (c *ContrastEnhancement) SetGammaValue(g expr.Expression) { c.gamma = g }

// Type returns the method as a string literal, or nil for
// style.ContrastNone.
func (c *ContrastEnhancement) Type() expr.Expression {
	if c.method == "" || c.method == style.ContrastNone {
		return nil
	}
	return expr.Str(string(c.method))
}

// SetType sets the method from a literal method name. A nil or Nil
// expression selects style.ContrastNone.
func (c *ContrastEnhancement) SetType(t expr.Expression) error {
	if !expr.IsSet(t) {
		c.SetMethod(style.ContrastNone)
		return nil
	}
	name, _ := expr.AsString(t)
	m, ok := style.ParseContrastMethod(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrContrastMethod, t)
	}
	c.SetMethod(m)
	return nil
}

// SetOption stores a vendor option. A nil value removes it. A key the
// method does not understand is stored anyway and logged.
func (c *ContrastEnhancement) SetOption(key string, value expr.Expression) {
	if value == nil {
		delete(c.options, key)
		return
	}
	if !slices.Contains(contrastOptions[c.method], key) {
		Logger().Warn("sld: unknown contrast enhancement option", "method", string(c.method), "key", key)
	}
	if c.options == nil {
		c.options = make(map[string]expr.Expression)
	}
	c.options[key] = value
}

// Algorithm returns the name stored under AlgorithmOption.
func (c *ContrastEnhancement) Algorithm() string {
	name, _ := expr.AsString(c.options[AlgorithmOption])
	return name
}

// SetAlgorithm selects a sub-strategy of the method. The empty name
// clears it; any other name must be allowed for the method.
func (c *ContrastEnhancement) SetAlgorithm(name string) error {
	if name == "" {
		delete(c.options, AlgorithmOption)
		return nil
	}
	if !slices.Contains(contrastAlgorithms[c.method], name) {
		return fmt.Errorf("%w: %q for %s", ErrAlgorithm, name, c.method)
	}
	c.SetOption(AlgorithmOption, expr.Str(name))
	return nil
}

func (c *ContrastEnhancement) Equal(other style.ContrastEnhancement) bool {
	o, ok := other.(*ContrastEnhancement)
	if !ok || c == nil || o == nil {
		return ok && c == nil && o == nil
	}
	return c.method == o.method && expr.Equal(c.gamma, o.gamma) && exprMapEqual(c.options, o.options)
}

func (c *ContrastEnhancement) Hash() uint64 {
	if c == nil {
		return 0
	}
	return newHasher("contrast").str(string(c.method)).expr(c.gamma).exprMap(c.options).sum()
}

func (c *ContrastEnhancement) Clone() *ContrastEnhancement {
	if c == nil {
		return nil
	}
	return &ContrastEnhancement{method: c.method, gamma: c.gamma, options: copyExprMap(c.options)}
}

func (c *ContrastEnhancement) Accept(v Visitor) { v.VisitContrastEnhancement(c) }

func (c *ContrastEnhancement) AcceptData(v DataVisitor, data any) any {
	return v.VisitContrastEnhancement(c, data)
}
