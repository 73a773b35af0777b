package sld

import (
	"bytes"
	"maps"
	"slices"

	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/style"
)

// ExternalGraphic references an image by URI or carries it inline. The
// model never resolves the URI.
type ExternalGraphic struct {
	uri               string
	inline            []byte
	format            string
	colorReplacements []expr.Expression
	customProperties  map[string]string
}

// NewExternalGraphic returns a graphic referencing uri in the given MIME
// format.
func NewExternalGraphic(uri, format string) *ExternalGraphic {
	return &ExternalGraphic{uri: uri, format: format}
}

// CastExternalGraphic returns g as an *ExternalGraphic.
func CastExternalGraphic(g style.ExternalGraphic) *ExternalGraphic {
	switch x := g.(type) {
	case nil:
		return nil
	case *ExternalGraphic:
		return x
	}
	return &ExternalGraphic{
		uri:               g.OnlineResource(),
		inline:            bytes.Clone(g.InlineContent()),
		format:            g.Format(),
		colorReplacements: copyExprs(g.ColorReplacements()),
		customProperties:  copyStrMap(g.CustomProperties()),
	}
}

func (g *ExternalGraphic) OnlineResource() string { return g.uri }
func (g *ExternalGraphic) Format() string         { return g.format }

// InlineContent returns a copy of the inline image bytes.
func (g *ExternalGraphic) InlineContent() []byte { return bytes.Clone(g.inline) }

// ColorReplacements returns a copy of the colour replacement recodings.
func (g *ExternalGraphic) ColorReplacements() []expr.Expression {
	return copyExprs(g.colorReplacements)
}

// CustomProperties returns a copy of the vendor properties.
func (g *ExternalGraphic) CustomProperties() map[string]string {
	return maps.Clone(g.customProperties)
}

func (g *ExternalGraphic) SetOnlineResource(uri string) { g.uri = uri }
func (g *ExternalGraphic) SetFormat(format string)      { g.format = format }

func (g *ExternalGraphic) SetInlineContent(b []byte) { g.inline = bytes.Clone(b) }

func (g *ExternalGraphic) SetColorReplacements(r []expr.Expression) {
	g.colorReplacements = copyExprs(r)
}

// SetCustomProperty stores a vendor property. An empty value removes it.
func (g *ExternalGraphic) SetCustomProperty(key, value string) {
	if value == "" {
		delete(g.customProperties, key)
		return
	}
	if g.customProperties == nil {
		g.customProperties = make(map[string]string)
	}
	g.customProperties[key] = value
}

func (g *ExternalGraphic) Equal(other style.ExternalGraphic) bool {
	o, ok := other.(*ExternalGraphic)
	if !ok || g == nil || o == nil {
		return ok && g == nil && o == nil
	}
	return g.uri == o.uri &&
		bytes.Equal(g.inline, o.inline) &&
		g.format == o.format &&
		exprsEqual(g.colorReplacements, o.colorReplacements) &&
		strMapEqual(g.customProperties, o.customProperties)
}

func (g *ExternalGraphic) Hash() uint64 {
	if g == nil {
		return 0
	}
	return newHasher("external-graphic").
		str(g.uri).
		bytes(g.inline).
		str(g.format).
		exprs(g.colorReplacements).
		strMap(g.customProperties).
		sum()
}

func (g *ExternalGraphic) Clone() *ExternalGraphic {
	if g == nil {
		return nil
	}
	return &ExternalGraphic{
		uri:               g.uri,
		inline:            bytes.Clone(g.inline),
		format:            g.format,
		colorReplacements: copyExprs(g.colorReplacements),
		customProperties:  copyStrMap(g.customProperties),
	}
}

func (g *ExternalGraphic) Accept(v Visitor) { v.VisitExternalGraphic(g) }

func (g *ExternalGraphic) AcceptData(v DataVisitor, data any) any {
	return v.VisitExternalGraphic(g, data)
}

// ExternalMark selects one glyph of an external source, typically a
// font file, by index.
type ExternalMark struct {
	uri    string
	inline []byte
	format string
	index  int
}

// NewExternalMark returns a mark referencing glyph index of the
// resource at uri.
func NewExternalMark(uri, format string, index int) *ExternalMark {
	return &ExternalMark{uri: uri, format: format, index: index}
}

// CastExternalMark returns m as an *ExternalMark.
func CastExternalMark(m style.ExternalMark) *ExternalMark {
	switch x := m.(type) {
	case nil:
		return nil
	case *ExternalMark:
		return x
	}
	return &ExternalMark{
		uri:    m.OnlineResource(),
		inline: bytes.Clone(m.InlineContent()),
		format: m.Format(),
		index:  m.MarkIndex(),
	}
}

func (m *ExternalMark) OnlineResource() string { return m.uri }
func (m *ExternalMark) InlineContent() []byte  { return bytes.Clone(m.inline) }
func (m *ExternalMark) Format() string         { return m.format }
func (m *ExternalMark) MarkIndex() int         { return m.index }

func (m *ExternalMark) SetOnlineResource(uri string) { m.uri = uri }
func (m *ExternalMark) SetInlineContent(b []byte)    { m.inline = bytes.Clone(b) }
func (m *ExternalMark) SetFormat(format string)      { m.format = format }
func (m *ExternalMark) SetMarkIndex(i int)           { m.index = i }

func (m *ExternalMark) Equal(other style.ExternalMark) bool {
	o, ok := other.(*ExternalMark)
	if !ok || m == nil || o == nil {
		return ok && m == nil && o == nil
	}
	return m.uri == o.uri && bytes.Equal(m.inline, o.inline) && m.format == o.format && m.index == o.index
}

func (m *ExternalMark) Hash() uint64 {
	if m == nil {
		return 0
	}
	return newHasher("external-mark").str(m.uri).bytes(m.inline).str(m.format).int(m.index).sum()
}

func (m *ExternalMark) Clone() *ExternalMark {
	if m == nil {
		return nil
	}
	return &ExternalMark{uri: m.uri, inline: slices.Clone(m.inline), format: m.format, index: m.index}
}

func (m *ExternalMark) Accept(v Visitor) { v.VisitExternalMark(m) }

func (m *ExternalMark) AcceptData(v DataVisitor, data any) any {
	return v.VisitExternalMark(m, data)
}
