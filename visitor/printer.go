package visitor

import (
	"fmt"
	"io"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/sld"
	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/filter"
	"github.com/gogpu/sld/style"
)

// PrinterOption configures a Printer.
//
// Example:
//
//	p := visitor.NewPrinter(os.Stdout, visitor.WithIndent("    "))
type PrinterOption func(*printerOptions)

type printerOptions struct {
	indent    string
	kindStyle func(string) string
	attrStyle func(string) string
}

func defaultPrinterOptions() printerOptions {
	return printerOptions{
		indent:    "  ",
		kindStyle: identity,
		attrStyle: identity,
	}
}

func identity(s string) string { return s }

// WithIndent sets the string repeated once per tree level.
func WithIndent(indent string) PrinterOption {
	return func(o *printerOptions) {
		o.indent = indent
	}
}

// WithKindStyle decorates node kind names, for example with terminal
// colours.
func WithKindStyle(fn func(string) string) PrinterOption {
	return func(o *printerOptions) {
		if fn != nil {
			o.kindStyle = fn
		}
	}
}

// WithAttrStyle decorates attribute names.
func WithAttrStyle(fn func(string) string) PrinterOption {
	return func(o *printerOptions) {
		if fn != nil {
			o.attrStyle = fn
		}
	}
}

// Printer writes one line per node: the node kind followed by its set
// attributes, indented by depth. Unset attributes are omitted.
type Printer struct {
	w    io.Writer
	opts printerOptions

	line strings.Builder
	err  error
}

var _ sld.Visitor = (*Printer)(nil)

// NewPrinter returns a printer writing to w.
func NewPrinter(w io.Writer, opts ...PrinterOption) *Printer {
	o := defaultPrinterOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Printer{w: w, opts: o}
}

// Print writes the outline of n and everything below it. It returns the
// first write error.
func (p *Printer) Print(n sld.Node) error {
	p.err = nil
	p.print(n, 0)
	return p.err
}

func (p *Printer) print(n sld.Node, depth int) {
	if n == nil || p.err != nil {
		return
	}
	p.line.Reset()
	p.line.WriteString(strings.Repeat(p.opts.indent, depth))
	n.Accept(p)
	p.line.WriteByte('\n')
	if _, err := io.WriteString(p.w, p.line.String()); err != nil {
		p.err = err
		return
	}
	for _, c := range sld.Children(n) {
		p.print(c, depth+1)
	}
}

func (p *Printer) kind(name string) {
	p.line.WriteString(p.opts.kindStyle(name))
}

func (p *Printer) attr(name, value string) {
	p.line.WriteByte(' ')
	p.line.WriteString(p.opts.attrStyle(name))
	p.line.WriteByte('=')
	p.line.WriteString(value)
}

func (p *Printer) str(name, value string) {
	if value != "" {
		p.attr(name, strconv.Quote(value))
	}
}

func (p *Printer) expr(name string, e expr.Expression) {
	if e != nil {
		p.attr(name, e.String())
	}
}

func (p *Printer) exprs(name string, es []expr.Expression) {
	if len(es) == 0 {
		return
	}
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.String()
	}
	p.attr(name, "["+strings.Join(parts, " ")+"]")
}

func (p *Printer) filter(name string, f filter.Filter) {
	if f != nil {
		p.attr(name, f.String())
	}
}

func (p *Printer) flag(name string, b bool) {
	if b {
		p.attr(name, "true")
	}
}

func (p *Printer) strMap(name string, m map[string]string) {
	if len(m) == 0 {
		return
	}
	keys := slices.Sorted(maps.Keys(m))
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ":" + m[k]
	}
	p.attr(name, "{"+strings.Join(parts, " ")+"}")
}

func (p *Printer) exprMap(name string, m map[string]expr.Expression) {
	if len(m) == 0 {
		return
	}
	keys := slices.Sorted(maps.Keys(m))
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ":" + m[k].String()
	}
	p.attr(name, "{"+strings.Join(parts, " ")+"}")
}

func (p *Printer) base(kind string, s interface {
	Name() string
	Geometry() expr.Expression
	UnitOfMeasure() style.Unit
	Options() map[string]string
}) {
	p.kind(kind)
	p.str("name", s.Name())
	p.expr("geometry", s.Geometry())
	if u := s.UnitOfMeasure(); u != "" {
		p.attr("uom", u.String())
	}
	p.strMap("options", s.Options())
}

func scale(v float64) string {
	if math.IsInf(v, 1) {
		return "+Inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (p *Printer) VisitStyledLayerDescriptor(n *sld.StyledLayerDescriptor) {
	p.kind("StyledLayerDescriptor")
	p.str("name", n.Name())
	p.str("title", n.Title())
	p.str("abstract", n.Abstract())
}

func (p *Printer) VisitNamedLayer(n *sld.NamedLayer) {
	p.kind("NamedLayer")
	p.str("name", n.LayerName())
	if names := n.StyleNames(); len(names) > 0 {
		p.attr("styles", "["+strings.Join(names, " ")+"]")
	}
}

func (p *Printer) VisitUserLayer(n *sld.UserLayer) {
	p.kind("UserLayer")
	p.str("name", n.LayerName())
	if b := n.InlineFeatures(); len(b) > 0 {
		p.attr("inline", fmt.Sprintf("%dB", len(b)))
	}
	if r := n.RemoteOWS(); r != nil {
		p.attr("remote", r.Service+"@"+r.OnlineResource)
	}
}

func (p *Printer) VisitFeatureTypeConstraint(n *sld.FeatureTypeConstraint) {
	p.kind("FeatureTypeConstraint")
	p.str("type", n.FeatureTypeName())
	p.filter("filter", n.Filter())
	for _, e := range n.Extents() {
		p.attr("extent", e.Name+":"+e.Value)
	}
}

func (p *Printer) VisitStyle(n *sld.Style) {
	p.kind("Style")
	p.str("name", n.Name())
	p.flag("default", n.IsDefault())
}

func (p *Printer) VisitFeatureTypeStyle(n *sld.FeatureTypeStyle) {
	p.kind("FeatureTypeStyle")
	p.str("name", n.Name())
	if names := n.FeatureTypeNames(); len(names) > 0 {
		p.attr("types", "["+strings.Join(names, " ")+"]")
	}
	if sts := n.SemanticTypeIdentifiers(); len(sts) > 0 {
		parts := make([]string, len(sts))
		for i, st := range sts {
			parts[i] = string(st)
		}
		p.attr("semantic", "["+strings.Join(parts, " ")+"]")
	}
	if ids := n.FeatureInstanceIDs(); ids != nil {
		p.attr("ids", ids.String())
	}
	p.expr("transformation", n.Transformation())
	p.strMap("options", n.Options())
}

func (p *Printer) VisitRule(n *sld.Rule) {
	p.kind("Rule")
	p.str("name", n.Name())
	p.filter("filter", n.Filter())
	p.flag("else", n.ElseFilter())
	if n.MinScaleDenominator() != 0 || !math.IsInf(n.MaxScaleDenominator(), 1) {
		p.attr("scale", "["+scale(n.MinScaleDenominator())+", "+scale(n.MaxScaleDenominator())+")")
	}
	p.str("resource", n.OnlineResource())
}

func (p *Printer) VisitPointSymbolizer(n *sld.PointSymbolizer) { p.base("PointSymbolizer", n) }

func (p *Printer) VisitLineSymbolizer(n *sld.LineSymbolizer) {
	p.base("LineSymbolizer", n)
	p.expr("offset", n.PerpendicularOffset())
}

func (p *Printer) VisitPolygonSymbolizer(n *sld.PolygonSymbolizer) {
	p.base("PolygonSymbolizer", n)
	p.expr("offset", n.PerpendicularOffset())
}

func (p *Printer) VisitTextSymbolizer(n *sld.TextSymbolizer) {
	p.base("TextSymbolizer", n)
	p.expr("label", n.Label())
	p.expr("priority", n.Priority())
	p.expr("snippet", n.Snippet())
	p.expr("featureDescription", n.FeatureDescription())
	if o := n.OtherText(); o != nil {
		p.expr("otherText", o.Text())
	}
}

func (p *Printer) VisitRasterSymbolizer(n *sld.RasterSymbolizer) {
	p.base("RasterSymbolizer", n)
	p.expr("opacity", n.Opacity())
	if b := n.OverlapBehavior(); b != "" {
		p.attr("overlap", string(b))
	}
}

func (p *Printer) VisitExtensionSymbolizer(n *sld.ExtensionSymbolizer) {
	p.base("ExtensionSymbolizer", n)
	p.str("extension", n.ExtensionName())
	p.exprMap("parameters", n.Parameters())
}

func (p *Printer) VisitDescription(n *sld.Description) {
	p.kind("Description")
	if t := n.Title(); t != nil {
		p.str("title", t.String())
	}
	if a := n.Abstract(); a != nil {
		p.str("abstract", a.String())
	}
}

func (p *Printer) VisitFill(n *sld.Fill) {
	p.kind("Fill")
	p.expr("color", n.Color())
	p.expr("background", n.BackgroundColor())
	p.expr("opacity", n.Opacity())
	p.flag("frozen", n.Frozen())
}

func (p *Printer) VisitStroke(n *sld.Stroke) {
	p.kind("Stroke")
	p.expr("color", n.Color())
	p.expr("width", n.Width())
	p.expr("opacity", n.Opacity())
	p.expr("join", n.LineJoin())
	p.expr("cap", n.LineCap())
	p.exprs("dash", n.DashArray())
	if n.IsDashed() {
		p.expr("dashOffset", n.DashOffset())
	}
	p.flag("frozen", n.Frozen())
}

func (p *Printer) VisitFont(n *sld.Font) {
	p.kind("Font")
	p.exprs("family", n.Family())
	p.expr("style", n.Style())
	p.expr("weight", n.Weight())
	p.expr("size", n.Size())
}

func (p *Printer) VisitHalo(n *sld.Halo) {
	p.kind("Halo")
	p.expr("radius", n.Radius())
}

func (p *Printer) VisitGraphic(n *sld.Graphic) {
	p.kind("Graphic")
	p.expr("opacity", n.Opacity())
	p.expr("size", n.Size())
	p.expr("rotation", n.Rotation())
	p.expr("gap", n.Gap())
	p.expr("initialGap", n.InitialGap())
	p.flag("frozen", n.Frozen())
}

func (p *Printer) VisitMark(n *sld.Mark) {
	p.kind("Mark")
	p.expr("name", n.WellKnownName())
}

func (p *Printer) VisitExternalGraphic(n *sld.ExternalGraphic) {
	p.kind("ExternalGraphic")
	p.str("href", n.OnlineResource())
	p.str("format", n.Format())
	if b := n.InlineContent(); len(b) > 0 {
		p.attr("inline", fmt.Sprintf("%dB", len(b)))
	}
	p.exprs("replace", n.ColorReplacements())
	p.strMap("properties", n.CustomProperties())
}

func (p *Printer) VisitExternalMark(n *sld.ExternalMark) {
	p.kind("ExternalMark")
	p.str("href", n.OnlineResource())
	p.str("format", n.Format())
	p.attr("index", strconv.Itoa(n.MarkIndex()))
}

func (p *Printer) VisitPointPlacement(n *sld.PointPlacement) {
	p.kind("PointPlacement")
	p.expr("rotation", n.Rotation())
}

func (p *Printer) VisitLinePlacement(n *sld.LinePlacement) {
	p.kind("LinePlacement")
	p.expr("offset", n.PerpendicularOffset())
	p.flag("repeated", n.Repeated())
	p.flag("aligned", n.Aligned())
	p.flag("generalize", n.GeneralizeLine())
	p.expr("gap", n.Gap())
	p.expr("initialGap", n.InitialGap())
}

func (p *Printer) VisitAnchorPoint(n *sld.AnchorPoint) {
	p.kind("AnchorPoint")
	p.expr("x", n.AnchorPointX())
	p.expr("y", n.AnchorPointY())
}

func (p *Printer) VisitDisplacement(n *sld.Displacement) {
	p.kind("Displacement")
	p.expr("x", n.DisplacementX())
	p.expr("y", n.DisplacementY())
}

func (p *Printer) VisitColorMap(n *sld.ColorMap) {
	p.kind("ColorMap")
	p.attr("type", colorMapType(n.Type()))
	p.flag("extended", n.ExtendedColors())
	p.expr("function", n.Function())
}

func colorMapType(t int) string {
	switch t {
	case style.ColorMapRamp:
		return "ramp"
	case style.ColorMapIntervals:
		return "intervals"
	case style.ColorMapValues:
		return "values"
	}
	return strconv.Itoa(t)
}

func (p *Printer) VisitColorMapEntry(n *sld.ColorMapEntry) {
	p.kind("ColorMapEntry")
	p.expr("quantity", n.Quantity())
	p.expr("color", n.Color())
	p.expr("opacity", n.Opacity())
	p.str("label", n.Label())
}

func (p *Printer) VisitContrastEnhancement(n *sld.ContrastEnhancement) {
	p.kind("ContrastEnhancement")
	p.attr("method", string(n.Method()))
	p.expr("gamma", n.GammaValue())
	p.exprMap("options", n.Options())
}

func (p *Printer) VisitChannelSelection(*sld.ChannelSelection) { p.kind("ChannelSelection") }

func (p *Printer) VisitSelectedChannelType(n *sld.SelectedChannelType) {
	p.kind("SelectedChannelType")
	p.expr("name", n.ChannelName())
}

func (p *Printer) VisitShadedRelief(n *sld.ShadedRelief) {
	p.kind("ShadedRelief")
	p.flag("brightnessOnly", n.BrightnessOnly())
	p.expr("reliefFactor", n.ReliefFactor())
}
