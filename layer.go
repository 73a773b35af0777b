package sld

import (
	"bytes"
	"slices"

	"github.com/gogpu/sld/filter"
)

// StyledLayer is a layer of a StyledLayerDescriptor: a *NamedLayer or a
// *UserLayer.
type StyledLayer interface {
	Node
	LayerName() string
	Hash() uint64
	isStyledLayer()
}

func (*NamedLayer) isStyledLayer() {}
func (*UserLayer) isStyledLayer()  {}

func equalLayers(a, b StyledLayer) bool {
	switch x := a.(type) {
	case *NamedLayer:
		o, ok := b.(*NamedLayer)
		return ok && x.Equal(o)
	case *UserLayer:
		o, ok := b.(*UserLayer)
		return ok && x.Equal(o)
	}
	return a == nil && b == nil
}

func cloneLayer(l StyledLayer) StyledLayer {
	switch x := l.(type) {
	case *NamedLayer:
		return x.Clone()
	case *UserLayer:
		return x.Clone()
	}
	return nil
}

// Extent names a dimension value a constrained feature type is
// restricted to, such as a time.
type Extent struct {
	Name  string
	Value string
}

// FeatureTypeConstraint restricts the features of a layer by type name,
// filter and extents.
type FeatureTypeConstraint struct {
	typeName string
	filter   filter.Filter
	extents  []Extent
}

// NewFeatureTypeConstraint returns a constraint on typeName.
func NewFeatureTypeConstraint(typeName string, f filter.Filter, extents ...Extent) *FeatureTypeConstraint {
	return &FeatureTypeConstraint{typeName: typeName, filter: f, extents: slices.Clone(extents)}
}

func (c *FeatureTypeConstraint) FeatureTypeName() string { return c.typeName }
func (c *FeatureTypeConstraint) Filter() filter.Filter   { return c.filter }
func (c *FeatureTypeConstraint) Extents() []Extent       { return slices.Clone(c.extents) }

func (c *FeatureTypeConstraint) SetFeatureTypeName(name string) { c.typeName = name }
func (c *FeatureTypeConstraint) SetFilter(f filter.Filter)      { c.filter = f }
func (c *FeatureTypeConstraint) SetExtents(e []Extent)          { c.extents = slices.Clone(e) }

func (c *FeatureTypeConstraint) Equal(o *FeatureTypeConstraint) bool {
	if c == nil || o == nil {
		return c == nil && o == nil
	}
	return c.typeName == o.typeName && filter.Equal(c.filter, o.filter) && slices.Equal(c.extents, o.extents)
}

func (c *FeatureTypeConstraint) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := newHasher("constraint").str(c.typeName).add(filter.Hash(c.filter)).int(len(c.extents))
	for _, e := range c.extents {
		h.str(e.Name).str(e.Value)
	}
	return h.sum()
}

func (c *FeatureTypeConstraint) Clone() *FeatureTypeConstraint {
	if c == nil {
		return nil
	}
	return &FeatureTypeConstraint{typeName: c.typeName, filter: c.filter, extents: slices.Clone(c.extents)}
}

func (c *FeatureTypeConstraint) Accept(v Visitor) { v.VisitFeatureTypeConstraint(c) }

func (c *FeatureTypeConstraint) AcceptData(v DataVisitor, data any) any {
	return v.VisitFeatureTypeConstraint(c, data)
}

func equalConstraints(a, b []*FeatureTypeConstraint) bool {
	return slices.EqualFunc(a, b, (*FeatureTypeConstraint).Equal)
}

func cloneConstraints(cs []*FeatureTypeConstraint) []*FeatureTypeConstraint {
	var out []*FeatureTypeConstraint
	for _, c := range cs {
		out = append(out, c.Clone())
	}
	return out
}

func hashConstraints(h *hasher, cs []*FeatureTypeConstraint) *hasher {
	h.int(len(cs))
	for _, c := range cs {
		h.add(c.Hash())
	}
	return h
}

// RemoteOWS references the OGC web service a user layer's features come
// from.
type RemoteOWS struct {
	Service        string
	OnlineResource string
}

// NamedLayer is a layer published by the server, styled by named
// server-side styles.
type NamedLayer struct {
	name        string
	styleNames  []string
	constraints []*FeatureTypeConstraint
}

// NewNamedLayer returns a layer referencing the published layer name.
func NewNamedLayer(name string, styleNames ...string) *NamedLayer {
	return &NamedLayer{name: name, styleNames: slices.Clone(styleNames)}
}

func (l *NamedLayer) LayerName() string { return l.name }

// StyleNames returns the referenced style names in order.
func (l *NamedLayer) StyleNames() []string { return slices.Clone(l.styleNames) }

func (l *NamedLayer) Constraints() []*FeatureTypeConstraint { return slices.Clone(l.constraints) }

func (l *NamedLayer) SetLayerName(name string)      { l.name = name }
func (l *NamedLayer) SetStyleNames(names ...string) { l.styleNames = slices.Clone(names) }
func (l *NamedLayer) AddStyleName(name string)      { l.styleNames = append(l.styleNames, name) }

// AddConstraint appends c. A nil constraint is ignored.
func (l *NamedLayer) AddConstraint(c *FeatureTypeConstraint) {
	if c != nil {
		l.constraints = append(l.constraints, c)
	}
}

func (l *NamedLayer) Equal(o *NamedLayer) bool {
	if l == nil || o == nil {
		return l == nil && o == nil
	}
	return l.name == o.name && slices.Equal(l.styleNames, o.styleNames) && equalConstraints(l.constraints, o.constraints)
}

func (l *NamedLayer) Hash() uint64 {
	if l == nil {
		return 0
	}
	h := newHasher("named-layer").str(l.name).int(len(l.styleNames))
	for _, n := range l.styleNames {
		h.str(n)
	}
	return hashConstraints(h, l.constraints).sum()
}

func (l *NamedLayer) Clone() *NamedLayer {
	if l == nil {
		return nil
	}
	return &NamedLayer{
		name:        l.name,
		styleNames:  slices.Clone(l.styleNames),
		constraints: cloneConstraints(l.constraints),
	}
}

func (l *NamedLayer) Accept(v Visitor) { v.VisitNamedLayer(l) }

func (l *NamedLayer) AcceptData(v DataVisitor, data any) any { return v.VisitNamedLayer(l, data) }

// UserLayer is a layer defined by the request: inline styles over either
// inline features, a remote service or the server's own data.
type UserLayer struct {
	name           string
	styles         []*Style
	inlineFeatures []byte
	remote         *RemoteOWS
	constraints    []*FeatureTypeConstraint
}

// NewUserLayer returns a user layer with the given inline styles.
func NewUserLayer(name string, styles ...*Style) *UserLayer {
	l := &UserLayer{name: name}
	for _, s := range styles {
		l.AddStyle(s)
	}
	return l
}

func (l *UserLayer) LayerName() string { return l.name }

// Styles returns the inline styles in order.
func (l *UserLayer) Styles() []*Style { return slices.Clone(l.styles) }

// InlineFeatures returns a copy of the inline feature collection
// document, or nil.
func (l *UserLayer) InlineFeatures() []byte { return bytes.Clone(l.inlineFeatures) }

// RemoteOWS returns the remote service reference, or nil.
func (l *UserLayer) RemoteOWS() *RemoteOWS {
	if l.remote == nil {
		return nil
	}
	r := *l.remote
	return &r
}

func (l *UserLayer) Constraints() []*FeatureTypeConstraint { return slices.Clone(l.constraints) }

func (l *UserLayer) SetLayerName(name string)     { l.name = name }
func (l *UserLayer) SetInlineFeatures(doc []byte) { l.inlineFeatures = bytes.Clone(doc) }

func (l *UserLayer) SetRemoteOWS(r *RemoteOWS) {
	if r == nil {
		l.remote = nil
		return
	}
	c := *r
	l.remote = &c
}

// AddStyle appends s. A nil style is ignored.
func (l *UserLayer) AddStyle(s *Style) {
	if s != nil {
		l.styles = append(l.styles, s)
	}
}

// AddConstraint appends c. A nil constraint is ignored.
func (l *UserLayer) AddConstraint(c *FeatureTypeConstraint) {
	if c != nil {
		l.constraints = append(l.constraints, c)
	}
}

func (l *UserLayer) Equal(o *UserLayer) bool {
	if l == nil || o == nil {
		return l == nil && o == nil
	}
	if l.name != o.name || !bytes.Equal(l.inlineFeatures, o.inlineFeatures) ||
		!equalRemote(l.remote, o.remote) || !equalConstraints(l.constraints, o.constraints) ||
		len(l.styles) != len(o.styles) {
		return false
	}
	for i := range l.styles {
		if !l.styles[i].Equal(o.styles[i]) {
			return false
		}
	}
	return true
}

func equalRemote(a, b *RemoteOWS) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (l *UserLayer) Hash() uint64 {
	if l == nil {
		return 0
	}
	h := newHasher("user-layer").str(l.name).bytes(l.inlineFeatures)
	if l.remote != nil {
		h.str(l.remote.Service).str(l.remote.OnlineResource)
	}
	hashConstraints(h, l.constraints).int(len(l.styles))
	for _, s := range l.styles {
		h.add(s.Hash())
	}
	return h.sum()
}

func (l *UserLayer) Clone() *UserLayer {
	if l == nil {
		return nil
	}
	c := &UserLayer{
		name:           l.name,
		inlineFeatures: bytes.Clone(l.inlineFeatures),
		constraints:    cloneConstraints(l.constraints),
	}
	c.SetRemoteOWS(l.remote)
	for _, s := range l.styles {
		c.styles = append(c.styles, s.Clone())
	}
	return c
}

func (l *UserLayer) Accept(v Visitor) { v.VisitUserLayer(l) }

func (l *UserLayer) AcceptData(v DataVisitor, data any) any { return v.VisitUserLayer(l, data) }
