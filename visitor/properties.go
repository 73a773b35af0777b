package visitor

import (
	"maps"
	"slices"

	"github.com/gogpu/sld"
	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/filter"
)

// PropertyCollector gathers the feature attribute names a style tree
// reads through its expressions and filters. Names are kept in first-seen
// order without duplicates.
type PropertyCollector struct {
	sld.NopVisitor

	names []string
	seen  map[string]bool
}

// NewPropertyCollector returns an empty collector.
func NewPropertyCollector() *PropertyCollector {
	return &PropertyCollector{seen: map[string]bool{}}
}

// Collect walks n and returns every attribute name seen so far,
// including names from earlier calls.
func (c *PropertyCollector) Collect(n sld.Node) []string {
	sld.Walk(c, n)
	return c.Names()
}

// Names returns a copy of the names collected so far.
func (c *PropertyCollector) Names() []string { return slices.Clone(c.names) }

// Reset forgets every collected name.
func (c *PropertyCollector) Reset() {
	c.names = nil
	clear(c.seen)
}

func (c *PropertyCollector) add(names []string) {
	if c.seen == nil {
		c.seen = map[string]bool{}
	}
	for _, n := range names {
		if !c.seen[n] {
			c.seen[n] = true
			c.names = append(c.names, n)
		}
	}
}

func (c *PropertyCollector) expr(es ...expr.Expression) {
	for _, e := range es {
		c.add(expr.Properties(e))
	}
}

func (c *PropertyCollector) exprMap(m map[string]expr.Expression) {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		c.expr(m[k])
	}
}

func (c *PropertyCollector) filter(f filter.Filter) { c.add(filter.Properties(f)) }

func (c *PropertyCollector) VisitFeatureTypeConstraint(n *sld.FeatureTypeConstraint) {
	c.filter(n.Filter())
}

func (c *PropertyCollector) VisitFeatureTypeStyle(n *sld.FeatureTypeStyle) {
	c.expr(n.Transformation())
}

func (c *PropertyCollector) VisitRule(n *sld.Rule) { c.filter(n.Filter()) }

func (c *PropertyCollector) VisitPointSymbolizer(n *sld.PointSymbolizer) { c.expr(n.Geometry()) }

func (c *PropertyCollector) VisitLineSymbolizer(n *sld.LineSymbolizer) {
	c.expr(n.Geometry(), n.PerpendicularOffset())
}

func (c *PropertyCollector) VisitPolygonSymbolizer(n *sld.PolygonSymbolizer) {
	c.expr(n.Geometry(), n.PerpendicularOffset())
}

func (c *PropertyCollector) VisitTextSymbolizer(n *sld.TextSymbolizer) {
	c.expr(n.Geometry(), n.Label(), n.Priority(), n.Snippet(), n.FeatureDescription())
	if o := n.OtherText(); o != nil {
		c.expr(o.Text())
	}
}

func (c *PropertyCollector) VisitRasterSymbolizer(n *sld.RasterSymbolizer) {
	c.expr(n.Geometry(), n.Opacity())
}

func (c *PropertyCollector) VisitExtensionSymbolizer(n *sld.ExtensionSymbolizer) {
	c.expr(n.Geometry())
	c.exprMap(n.Parameters())
}

func (c *PropertyCollector) VisitFill(n *sld.Fill) {
	c.expr(n.Color(), n.BackgroundColor(), n.Opacity())
}

func (c *PropertyCollector) VisitStroke(n *sld.Stroke) {
	c.expr(n.Color(), n.Width(), n.Opacity(), n.LineJoin(), n.LineCap())
	c.expr(n.DashArray()...)
	c.expr(n.DashOffset())
}

func (c *PropertyCollector) VisitFont(n *sld.Font) {
	c.expr(n.Family()...)
	c.expr(n.Style(), n.Weight(), n.Size())
}

func (c *PropertyCollector) VisitHalo(n *sld.Halo) { c.expr(n.Radius()) }

func (c *PropertyCollector) VisitGraphic(n *sld.Graphic) {
	c.expr(n.Opacity(), n.Size(), n.Rotation(), n.Gap(), n.InitialGap())
}

func (c *PropertyCollector) VisitMark(n *sld.Mark) { c.expr(n.WellKnownName()) }

func (c *PropertyCollector) VisitExternalGraphic(n *sld.ExternalGraphic) {
	c.expr(n.ColorReplacements()...)
}

func (c *PropertyCollector) VisitPointPlacement(n *sld.PointPlacement) { c.expr(n.Rotation()) }

func (c *PropertyCollector) VisitLinePlacement(n *sld.LinePlacement) {
	c.expr(n.PerpendicularOffset(), n.Gap(), n.InitialGap())
}

func (c *PropertyCollector) VisitAnchorPoint(n *sld.AnchorPoint) {
	c.expr(n.AnchorPointX(), n.AnchorPointY())
}

func (c *PropertyCollector) VisitDisplacement(n *sld.Displacement) {
	c.expr(n.DisplacementX(), n.DisplacementY())
}

func (c *PropertyCollector) VisitColorMap(n *sld.ColorMap) { c.expr(n.Function()) }

func (c *PropertyCollector) VisitColorMapEntry(n *sld.ColorMapEntry) {
	c.expr(n.Color(), n.Opacity(), n.Quantity())
}

func (c *PropertyCollector) VisitContrastEnhancement(n *sld.ContrastEnhancement) {
	c.expr(n.GammaValue())
	c.exprMap(n.Options())
}

func (c *PropertyCollector) VisitSelectedChannelType(n *sld.SelectedChannelType) {
	c.expr(n.ChannelName())
}

func (c *PropertyCollector) VisitShadedRelief(n *sld.ShadedRelief) { c.expr(n.ReliefFactor()) }
