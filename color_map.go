package sld

import (
	"fmt"

	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/style"
)

// ColorMapEntry maps one quantity to a colour.
type ColorMapEntry struct {
	label    string
	color    expr.Expression
	opacity  expr.Expression
	quantity expr.Expression
}

// NewColorMapEntry returns an entry mapping quantity to color.
func NewColorMapEntry(quantity, color expr.Expression) *ColorMapEntry {
	return &ColorMapEntry{quantity: quantity, color: color}
}

// CastColorMapEntry returns e as a *ColorMapEntry.
func CastColorMapEntry(e style.ColorMapEntry) *ColorMapEntry {
	switch x := e.(type) {
	case nil:
		return nil
	case *ColorMapEntry:
		return x
	}
	return &ColorMapEntry{
		label:    e.Label(),
		color:    e.Color(),
		opacity:  e.Opacity(),
		quantity: e.Quantity(),
	}
}

func (e *ColorMapEntry) Label() string             { return e.label }
func (e *ColorMapEntry) Color() expr.Expression    { return e.color }
func (e *ColorMapEntry) Opacity() expr.Expression  { return e.opacity }
func (e *ColorMapEntry) Quantity() expr.Expression { return e.quantity }

func (e *ColorMapEntry) SetLabel(l string)             { e.label = l }
func (e *ColorMapEntry) SetColor(c expr.Expression)    { e.color = c }
func (e *ColorMapEntry) SetOpacity(o expr.Expression)  { e.opacity = o }
func (e *ColorMapEntry) SetQuantity(q expr.Expression) { e.quantity = q }

func (e *ColorMapEntry) Equal(other style.ColorMapEntry) bool {
	o, ok := other.(*ColorMapEntry)
	if !ok || e == nil || o == nil {
		return ok && e == nil && o == nil
	}
	return e.label == o.label &&
		expr.Equal(e.color, o.color) &&
		expr.Equal(e.opacity, o.opacity) &&
		expr.Equal(e.quantity, o.quantity)
}

func (e *ColorMapEntry) Hash() uint64 {
	if e == nil {
		return 0
	}
	return newHasher("colormap-entry").str(e.label).expr(e.color).expr(e.opacity).expr(e.quantity).sum()
}

func (e *ColorMapEntry) Clone() *ColorMapEntry {
	if e == nil {
		return nil
	}
	c := *e
	return &c
}

func (e *ColorMapEntry) Accept(v Visitor) { v.VisitColorMapEntry(e) }

func (e *ColorMapEntry) AcceptData(v DataVisitor, data any) any {
	return v.VisitColorMapEntry(e, data)
}

// ColorMap maps raster values to colours, either through its entries or
// through a recoding function that replaces them.
type ColorMap struct {
	typ            int
	extendedColors bool
	entries        []*ColorMapEntry
	function       expr.Expression
}

// NewColorMap returns an empty ramp colour map.
func NewColorMap() *ColorMap { return &ColorMap{typ: style.ColorMapRamp} }

// CastColorMap returns m as a *ColorMap. A foreign map reporting an
// unknown type is copied as a ramp.
func CastColorMap(m style.ColorMap) *ColorMap {
	switch x := m.(type) {
	case nil:
		return nil
	case *ColorMap:
		return x
	}
	c := &ColorMap{typ: style.ColorMapRamp, extendedColors: m.ExtendedColors(), function: m.Function()}
	if err := c.SetType(m.Type()); err != nil {
		Logger().Debug("sld: colour map type replaced by ramp", "type", m.Type())
	}
	for _, e := range m.Entries() {
		if ce := CastColorMapEntry(e); ce != nil {
			c.entries = append(c.entries, ce)
		}
	}
	return c
}

// Type returns one of style.ColorMapRamp, style.ColorMapIntervals or
// style.ColorMapValues.
func (m *ColorMap) Type() int                 { return m.typ }
func (m *ColorMap) ExtendedColors() bool      { return m.extendedColors }
func (m *ColorMap) Function() expr.Expression { return m.function }

// Entries returns the entries in order.
func (m *ColorMap) Entries() []style.ColorMapEntry {
	out := make([]style.ColorMapEntry, len(m.entries))
	for i, e := range m.entries {
		out[i] = e
	}
	return out
}

// SetType changes the map type. It fails with ErrColorMapType for a
// value other than the three colour map types.
func (m *ColorMap) SetType(t int) error {
	switch t {
	case style.ColorMapRamp, style.ColorMapIntervals, style.ColorMapValues:
		m.typ = t
		return nil
	}
	return fmt.Errorf("%w: %d", ErrColorMapType, t)
}

func (m *ColorMap) SetExtendedColors(b bool)      { m.extendedColors = b }
func (m *ColorMap) SetFunction(f expr.Expression) { m.function = f }

// AddEntry appends e. A nil entry is ignored.
func (m *ColorMap) AddEntry(e style.ColorMapEntry) {
	if ce := CastColorMapEntry(e); ce != nil {
		m.entries = append(m.entries, ce)
	}
}

// SetEntries replaces the entry list.
func (m *ColorMap) SetEntries(entries []style.ColorMapEntry) {
	m.entries = nil
	for _, e := range entries {
		m.AddEntry(e)
	}
}

func (m *ColorMap) Equal(other style.ColorMap) bool {
	o, ok := other.(*ColorMap)
	if !ok || m == nil || o == nil {
		return ok && m == nil && o == nil
	}
	if m.typ != o.typ || m.extendedColors != o.extendedColors ||
		!expr.Equal(m.function, o.function) || len(m.entries) != len(o.entries) {
		return false
	}
	for i := range m.entries {
		if !m.entries[i].Equal(o.entries[i]) {
			return false
		}
	}
	return true
}

func (m *ColorMap) Hash() uint64 {
	if m == nil {
		return 0
	}
	h := newHasher("colormap").int(m.typ).bool(m.extendedColors).expr(m.function).int(len(m.entries))
	for _, e := range m.entries {
		h.add(e.Hash())
	}
	return h.sum()
}

func (m *ColorMap) Clone() *ColorMap {
	if m == nil {
		return nil
	}
	c := &ColorMap{typ: m.typ, extendedColors: m.extendedColors, function: m.function}
	for _, e := range m.entries {
		c.entries = append(c.entries, e.Clone())
	}
	return c
}

func (m *ColorMap) Accept(v Visitor) { v.VisitColorMap(m) }

func (m *ColorMap) AcceptData(v DataVisitor, data any) any { return v.VisitColorMap(m, data) }
