package sld

import "slices"

// StyledLayerDescriptor is the root of a styling document: an ordered
// list of layers, each carrying or referencing the styles to draw it
// with.
type StyledLayerDescriptor struct {
	name     string
	title    string
	abstract string
	layers   []StyledLayer
}

// NewStyledLayerDescriptor returns an empty descriptor.
func NewStyledLayerDescriptor(name string, layers ...StyledLayer) *StyledLayerDescriptor {
	d := &StyledLayerDescriptor{name: name}
	for _, l := range layers {
		d.AddLayer(l)
	}
	return d
}

func (d *StyledLayerDescriptor) Name() string     { return d.name }
func (d *StyledLayerDescriptor) Title() string    { return d.title }
func (d *StyledLayerDescriptor) Abstract() string { return d.abstract }

// Layers returns the layers in document order.
func (d *StyledLayerDescriptor) Layers() []StyledLayer { return slices.Clone(d.layers) }

func (d *StyledLayerDescriptor) SetName(name string)         { d.name = name }
func (d *StyledLayerDescriptor) SetTitle(title string)       { d.title = title }
func (d *StyledLayerDescriptor) SetAbstract(abstract string) { d.abstract = abstract }

// AddLayer appends l. Nil layers, including typed nil pointers, are
// ignored.
func (d *StyledLayerDescriptor) AddLayer(l StyledLayer) {
	if l == nil || isNilNode(l) {
		return
	}
	d.layers = append(d.layers, l)
}

// SetLayers replaces the layers.
func (d *StyledLayerDescriptor) SetLayers(layers []StyledLayer) {
	d.layers = nil
	for _, l := range layers {
		d.AddLayer(l)
	}
}

// Styles returns every inline style of the user layers, in document
// order.
func (d *StyledLayerDescriptor) Styles() []*Style {
	var out []*Style
	for _, l := range d.layers {
		if u, ok := l.(*UserLayer); ok {
			out = append(out, u.styles...)
		}
	}
	return out
}

func (d *StyledLayerDescriptor) Equal(o *StyledLayerDescriptor) bool {
	if d == nil || o == nil {
		return d == nil && o == nil
	}
	return d.name == o.name && d.title == o.title && d.abstract == o.abstract &&
		slices.EqualFunc(d.layers, o.layers, equalLayers)
}

func (d *StyledLayerDescriptor) Hash() uint64 {
	if d == nil {
		return 0
	}
	h := newHasher("sld").str(d.name).str(d.title).str(d.abstract).int(len(d.layers))
	for _, l := range d.layers {
		h.add(l.Hash())
	}
	return h.sum()
}

func (d *StyledLayerDescriptor) Clone() *StyledLayerDescriptor {
	if d == nil {
		return nil
	}
	c := &StyledLayerDescriptor{name: d.name, title: d.title, abstract: d.abstract}
	for _, l := range d.layers {
		c.layers = append(c.layers, cloneLayer(l))
	}
	return c
}

func (d *StyledLayerDescriptor) Accept(v Visitor) { v.VisitStyledLayerDescriptor(d) }

func (d *StyledLayerDescriptor) AcceptData(v DataVisitor, data any) any {
	return v.VisitStyledLayerDescriptor(d, data)
}
