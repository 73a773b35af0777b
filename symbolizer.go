package sld

import (
	"fmt"
	"maps"

	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/style"
)

// Symbolizer is one of *PointSymbolizer, *LineSymbolizer,
// *PolygonSymbolizer, *TextSymbolizer, *RasterSymbolizer or
// *ExtensionSymbolizer. The set is closed.
type Symbolizer interface {
	style.Symbolizer
	Node
	Hash() uint64
	isSymbolizer()
}

func (*PointSymbolizer) isSymbolizer()     {}
func (*LineSymbolizer) isSymbolizer()      {}
func (*PolygonSymbolizer) isSymbolizer()   {}
func (*TextSymbolizer) isSymbolizer()      {}
func (*RasterSymbolizer) isSymbolizer()    {}
func (*ExtensionSymbolizer) isSymbolizer() {}

// SymbolizerBase holds the fields every symbolizer kind shares. It is
// embedded by the concrete symbolizers.
type SymbolizerBase struct {
	name        string
	description *Description
	geometry    expr.Expression
	uom         style.Unit
	options     map[string]string
}

func (b *SymbolizerBase) Name() string { return b.name }

func (b *SymbolizerBase) Description() style.Description {
	return ifaceOf[style.Description](b.description)
}

// Geometry returns the expression selecting the geometry to draw, or nil
// for the feature's default geometry.
func (b *SymbolizerBase) Geometry() expr.Expression { return b.geometry }

// GeometryPropertyName returns the attribute name when the geometry is a
// plain property reference.
func (b *SymbolizerBase) GeometryPropertyName() (string, bool) {
	p, ok := b.geometry.(expr.PropertyName)
	if !ok {
		return "", false
	}
	return p.Name(), true
}

// UnitOfMeasure returns the unit sizes are given in. The zero Unit means
// pixels.
func (b *SymbolizerBase) UnitOfMeasure() style.Unit { return b.uom }

// Options returns a copy of the vendor options.
func (b *SymbolizerBase) Options() map[string]string { return maps.Clone(b.options) }

// Option returns one vendor option.
func (b *SymbolizerBase) Option(key string) (string, bool) {
	v, ok := b.options[key]
	return v, ok
}

func (b *SymbolizerBase) SetName(name string) { b.name = name }

func (b *SymbolizerBase) SetDescription(d style.Description) { b.description = CastDescription(d) }

func (b *SymbolizerBase) SetGeometry(g expr.Expression) { b.geometry = g }

// SetGeometryPropertyName references the named geometry attribute. The
// empty name selects the default geometry.
func (b *SymbolizerBase) SetGeometryPropertyName(name string) {
	if name == "" {
		b.geometry = nil
		return
	}
	b.geometry = expr.Property(name)
}

func (b *SymbolizerBase) SetUnitOfMeasure(u style.Unit) { b.uom = u }

// SetOption stores a vendor option. An empty value removes it.
func (b *SymbolizerBase) SetOption(key, value string) {
	if value == "" {
		delete(b.options, key)
		return
	}
	if b.options == nil {
		b.options = make(map[string]string)
	}
	b.options[key] = value
}

func castBase(s style.Symbolizer) SymbolizerBase {
	return SymbolizerBase{
		name:        s.Name(),
		description: CastDescription(s.Description()),
		geometry:    s.Geometry(),
		uom:         s.UnitOfMeasure(),
		options:     copyStrMap(s.Options()),
	}
}

func (b *SymbolizerBase) equalBase(o *SymbolizerBase) bool {
	return b.name == o.name &&
		b.description.Equal(o.description) &&
		expr.Equal(b.geometry, o.geometry) &&
		b.uom == o.uom &&
		strMapEqual(b.options, o.options)
}

func (b *SymbolizerBase) hashBase(kind string) *hasher {
	return newHasher(kind).
		str(b.name).
		add(b.description.Hash()).
		expr(b.geometry).
		str(string(b.uom)).
		strMap(b.options)
}

func (b *SymbolizerBase) cloneBase() SymbolizerBase {
	return SymbolizerBase{
		name:        b.name,
		description: b.description.Clone(),
		geometry:    b.geometry,
		uom:         b.uom,
		options:     copyStrMap(b.options),
	}
}

// CastSymbolizer returns s as a symbolizer of this package. Symbolizers
// of this package are returned as is; foreign ones are copied according
// to the capability they implement. It returns nil for nil and for
// kinds it cannot translate.
func CastSymbolizer(s style.Symbolizer) Symbolizer {
	if s == nil {
		return nil
	}
	if x, ok := s.(Symbolizer); ok {
		if isNilSymbolizer(x) {
			return nil
		}
		return x
	}
	// More specific capabilities first: a foreign polygon symbolizer
	// also satisfies style.LineSymbolizer, and a text symbolizer also
	// satisfies style.PointSymbolizer.
	switch x := s.(type) {
	case style.TextSymbolizer:
		return CastTextSymbolizer(x)
	case style.RasterSymbolizer:
		return CastRasterSymbolizer(x)
	case style.ExtensionSymbolizer:
		return CastExtensionSymbolizer(x)
	case style.PolygonSymbolizer:
		return CastPolygonSymbolizer(x)
	case style.LineSymbolizer:
		return CastLineSymbolizer(x)
	case style.PointSymbolizer:
		return CastPointSymbolizer(x)
	}
	Logger().Debug("sld: cannot cast symbolizer", "type", fmt.Sprintf("%T", s))
	return nil
}

func isNilSymbolizer(s Symbolizer) bool {
	switch x := s.(type) {
	case *PointSymbolizer:
		return x == nil
	case *LineSymbolizer:
		return x == nil
	case *PolygonSymbolizer:
		return x == nil
	case *TextSymbolizer:
		return x == nil
	case *RasterSymbolizer:
		return x == nil
	case *ExtensionSymbolizer:
		return x == nil
	}
	return s == nil
}

// EqualSymbolizers reports whether a and b are symbolizers of the same
// kind with equal fields. Two nil symbolizers are equal.
func EqualSymbolizers(a, b Symbolizer) bool {
	switch x := a.(type) {
	case *PointSymbolizer:
		o, ok := b.(*PointSymbolizer)
		return ok && x.Equal(o)
	case *LineSymbolizer:
		o, ok := b.(*LineSymbolizer)
		return ok && x.Equal(o)
	case *PolygonSymbolizer:
		o, ok := b.(*PolygonSymbolizer)
		return ok && x.Equal(o)
	case *TextSymbolizer:
		o, ok := b.(*TextSymbolizer)
		return ok && x.Equal(o)
	case *RasterSymbolizer:
		o, ok := b.(*RasterSymbolizer)
		return ok && x.Equal(o)
	case *ExtensionSymbolizer:
		o, ok := b.(*ExtensionSymbolizer)
		return ok && x.Equal(o)
	}
	return a == nil && b == nil
}

// CloneSymbolizer returns a deep copy of s.
func CloneSymbolizer(s Symbolizer) Symbolizer {
	switch x := s.(type) {
	case *PointSymbolizer:
		if x != nil {
			return x.Clone()
		}
	case *LineSymbolizer:
		if x != nil {
			return x.Clone()
		}
	case *PolygonSymbolizer:
		if x != nil {
			return x.Clone()
		}
	case *TextSymbolizer:
		if x != nil {
			return x.Clone()
		}
	case *RasterSymbolizer:
		if x != nil {
			return x.Clone()
		}
	case *ExtensionSymbolizer:
		if x != nil {
			return x.Clone()
		}
	}
	return nil
}

func hashSymbolizer(s Symbolizer) uint64 {
	if s == nil {
		return 0
	}
	return s.Hash()
}
