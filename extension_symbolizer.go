package sld

import (
	"maps"

	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/style"
)

// ExtensionSymbolizer is a vendor-specific symbolizer identified by name
// and configured through named expression parameters.
type ExtensionSymbolizer struct {
	SymbolizerBase
	extensionName string
	params        map[string]expr.Expression
}

// NewExtensionSymbolizer returns an extension symbolizer without
// parameters.
func NewExtensionSymbolizer(extensionName string) *ExtensionSymbolizer {
	return &ExtensionSymbolizer{extensionName: extensionName}
}

// CastExtensionSymbolizer returns s as an *ExtensionSymbolizer.
func CastExtensionSymbolizer(s style.ExtensionSymbolizer) *ExtensionSymbolizer {
	switch x := s.(type) {
	case nil:
		return nil
	case *ExtensionSymbolizer:
		return x
	}
	return &ExtensionSymbolizer{
		SymbolizerBase: castBase(s),
		extensionName:  s.ExtensionName(),
		params:         copyExprMap(s.Parameters()),
	}
}

func (s *ExtensionSymbolizer) ExtensionName() string { return s.extensionName }

// Parameters returns a copy of the parameter map.
func (s *ExtensionSymbolizer) Parameters() map[string]expr.Expression {
	return maps.Clone(s.params)
}

// Parameter returns one parameter, or nil.
func (s *ExtensionSymbolizer) Parameter(name string) expr.Expression { return s.params[name] }

func (s *ExtensionSymbolizer) SetExtensionName(name string) { s.extensionName = name }

// SetParameter stores a parameter. A nil value removes it.
func (s *ExtensionSymbolizer) SetParameter(name string, value expr.Expression) {
	if value == nil {
		delete(s.params, name)
		return
	}
	if s.params == nil {
		s.params = make(map[string]expr.Expression)
	}
	s.params[name] = value
}

func (s *ExtensionSymbolizer) Equal(other style.ExtensionSymbolizer) bool {
	o, ok := other.(*ExtensionSymbolizer)
	if !ok || s == nil || o == nil {
		return ok && s == nil && o == nil
	}
	return s.equalBase(&o.SymbolizerBase) &&
		s.extensionName == o.extensionName &&
		exprMapEqual(s.params, o.params)
}

func (s *ExtensionSymbolizer) Hash() uint64 {
	if s == nil {
		return 0
	}
	return s.hashBase("extension").str(s.extensionName).exprMap(s.params).sum()
}

func (s *ExtensionSymbolizer) Clone() *ExtensionSymbolizer {
	if s == nil {
		return nil
	}
	return &ExtensionSymbolizer{
		SymbolizerBase: s.cloneBase(),
		extensionName:  s.extensionName,
		params:         copyExprMap(s.params),
	}
}

func (s *ExtensionSymbolizer) Accept(v Visitor) { v.VisitExtensionSymbolizer(s) }

func (s *ExtensionSymbolizer) AcceptData(v DataVisitor, data any) any {
	return v.VisitExtensionSymbolizer(s, data)
}
