package sld

// Node is implemented by every element of a style tree.
//
// Accept calls the visitor method for the node's own type and nothing
// else; Walk drives the traversal into children.
type Node interface {
	Accept(v Visitor)
	AcceptData(v DataVisitor, data any) any
}

// Visitor receives one call per visited node. Embed NopVisitor to
// implement only the methods of interest.
type Visitor interface {
	VisitStyledLayerDescriptor(*StyledLayerDescriptor)
	VisitNamedLayer(*NamedLayer)
	VisitUserLayer(*UserLayer)
	VisitFeatureTypeConstraint(*FeatureTypeConstraint)
	VisitStyle(*Style)
	VisitFeatureTypeStyle(*FeatureTypeStyle)
	VisitRule(*Rule)
	VisitPointSymbolizer(*PointSymbolizer)
	VisitLineSymbolizer(*LineSymbolizer)
	VisitPolygonSymbolizer(*PolygonSymbolizer)
	VisitTextSymbolizer(*TextSymbolizer)
	VisitRasterSymbolizer(*RasterSymbolizer)
	VisitExtensionSymbolizer(*ExtensionSymbolizer)
	VisitDescription(*Description)
	VisitFill(*Fill)
	VisitStroke(*Stroke)
	VisitFont(*Font)
	VisitHalo(*Halo)
	VisitGraphic(*Graphic)
	VisitMark(*Mark)
	VisitExternalGraphic(*ExternalGraphic)
	VisitExternalMark(*ExternalMark)
	VisitPointPlacement(*PointPlacement)
	VisitLinePlacement(*LinePlacement)
	VisitAnchorPoint(*AnchorPoint)
	VisitDisplacement(*Displacement)
	VisitColorMap(*ColorMap)
	VisitColorMapEntry(*ColorMapEntry)
	VisitContrastEnhancement(*ContrastEnhancement)
	VisitChannelSelection(*ChannelSelection)
	VisitSelectedChannelType(*SelectedChannelType)
	VisitShadedRelief(*ShadedRelief)
}

// DataVisitor is the result-bearing form of Visitor. Each method gets
// the data passed to AcceptData and its result is returned by AcceptData.
type DataVisitor interface {
	VisitStyledLayerDescriptor(n *StyledLayerDescriptor, data any) any
	VisitNamedLayer(n *NamedLayer, data any) any
	VisitUserLayer(n *UserLayer, data any) any
	VisitFeatureTypeConstraint(n *FeatureTypeConstraint, data any) any
	VisitStyle(n *Style, data any) any
	VisitFeatureTypeStyle(n *FeatureTypeStyle, data any) any
	VisitRule(n *Rule, data any) any
	VisitPointSymbolizer(n *PointSymbolizer, data any) any
	VisitLineSymbolizer(n *LineSymbolizer, data any) any
	VisitPolygonSymbolizer(n *PolygonSymbolizer, data any) any
	VisitTextSymbolizer(n *TextSymbolizer, data any) any
	VisitRasterSymbolizer(n *RasterSymbolizer, data any) any
	VisitExtensionSymbolizer(n *ExtensionSymbolizer, data any) any
	VisitDescription(n *Description, data any) any
	VisitFill(n *Fill, data any) any
	VisitStroke(n *Stroke, data any) any
	VisitFont(n *Font, data any) any
	VisitHalo(n *Halo, data any) any
	VisitGraphic(n *Graphic, data any) any
	VisitMark(n *Mark, data any) any
	VisitExternalGraphic(n *ExternalGraphic, data any) any
	VisitExternalMark(n *ExternalMark, data any) any
	VisitPointPlacement(n *PointPlacement, data any) any
	VisitLinePlacement(n *LinePlacement, data any) any
	VisitAnchorPoint(n *AnchorPoint, data any) any
	VisitDisplacement(n *Displacement, data any) any
	VisitColorMap(n *ColorMap, data any) any
	VisitColorMapEntry(n *ColorMapEntry, data any) any
	VisitContrastEnhancement(n *ContrastEnhancement, data any) any
	VisitChannelSelection(n *ChannelSelection, data any) any
	VisitSelectedChannelType(n *SelectedChannelType, data any) any
	VisitShadedRelief(n *ShadedRelief, data any) any
}

// NopVisitor implements Visitor with methods that do nothing.
type NopVisitor struct{}

func (NopVisitor) VisitStyledLayerDescriptor(*StyledLayerDescriptor) {}
func (NopVisitor) VisitNamedLayer(*NamedLayer)                       {}
func (NopVisitor) VisitUserLayer(*UserLayer)                         {}
func (NopVisitor) VisitFeatureTypeConstraint(*FeatureTypeConstraint) {}
func (NopVisitor) VisitStyle(*Style)                                 {}
func (NopVisitor) VisitFeatureTypeStyle(*FeatureTypeStyle)           {}
func (NopVisitor) VisitRule(*Rule)                                   {}
func (NopVisitor) VisitPointSymbolizer(*PointSymbolizer)             {}
func (NopVisitor) VisitLineSymbolizer(*LineSymbolizer)               {}
func (NopVisitor) VisitPolygonSymbolizer(*PolygonSymbolizer)         {}
func (NopVisitor) VisitTextSymbolizer(*TextSymbolizer)               {}
func (NopVisitor) VisitRasterSymbolizer(*RasterSymbolizer)           {}
func (NopVisitor) VisitExtensionSymbolizer(*ExtensionSymbolizer)     {}
func (NopVisitor) VisitDescription(*Description)                     {}
func (NopVisitor) VisitFill(*Fill)                                   {}
func (NopVisitor) VisitStroke(*Stroke)                               {}
func (NopVisitor) VisitFont(*Font)                                   {}
func (NopVisitor) VisitHalo(*Halo)                                   {}
func (NopVisitor) VisitGraphic(*Graphic)                             {}
func (NopVisitor) VisitMark(*Mark)                                   {}
func (NopVisitor) VisitExternalGraphic(*ExternalGraphic)             {}
func (NopVisitor) VisitExternalMark(*ExternalMark)                   {}
func (NopVisitor) VisitPointPlacement(*PointPlacement)               {}
func (NopVisitor) VisitLinePlacement(*LinePlacement)                 {}
func (NopVisitor) VisitAnchorPoint(*AnchorPoint)                     {}
func (NopVisitor) VisitDisplacement(*Displacement)                   {}
func (NopVisitor) VisitColorMap(*ColorMap)                           {}
func (NopVisitor) VisitColorMapEntry(*ColorMapEntry)                 {}
func (NopVisitor) VisitContrastEnhancement(*ContrastEnhancement)     {}
func (NopVisitor) VisitChannelSelection(*ChannelSelection)           {}
func (NopVisitor) VisitSelectedChannelType(*SelectedChannelType)     {}
func (NopVisitor) VisitShadedRelief(*ShadedRelief)                   {}

var _ Visitor = NopVisitor{}

// Walk visits n and then, depth first, every node below it. Children are
// visited in the order their accessors expose them; nil children are
// skipped.
func Walk(v Visitor, n Node) {
	if n == nil || isNilNode(n) {
		return
	}
	n.Accept(v)
	for _, c := range Children(n) {
		Walk(v, c)
	}
}

// Children returns the direct child nodes of n in traversal order.
func Children(n Node) []Node {
	var ns []Node
	switch x := n.(type) {
	case *StyledLayerDescriptor:
		for _, l := range x.layers {
			ns = append(ns, l)
		}
	case *NamedLayer:
		for _, c := range x.constraints {
			ns = appendNode(ns, c)
		}
	case *UserLayer:
		for _, c := range x.constraints {
			ns = appendNode(ns, c)
		}
		for _, s := range x.styles {
			ns = appendNode(ns, s)
		}
	case *Style:
		ns = appendNode(ns, x.description)
		for _, f := range x.featureTypeStyles {
			ns = appendNode(ns, f)
		}
		ns = appendNode(ns, x.background)
		if x.defaultSpec != nil {
			ns = append(ns, x.defaultSpec)
		}
	case *FeatureTypeStyle:
		ns = appendNode(ns, x.description)
		for _, r := range x.rules {
			ns = appendNode(ns, r)
		}
	case *Rule:
		ns = appendNode(ns, x.description)
		ns = appendNode(ns, x.legend)
		for _, s := range x.symbolizers {
			ns = append(ns, s)
		}
	case *PointSymbolizer:
		ns = appendNode(ns, x.description)
		ns = appendNode(ns, x.graphic)
	case *LineSymbolizer:
		ns = appendNode(ns, x.description)
		ns = appendNode(ns, x.stroke)
	case *PolygonSymbolizer:
		ns = appendNode(ns, x.description)
		ns = appendNode(ns, x.fill)
		ns = appendNode(ns, x.stroke)
		ns = appendNode(ns, x.displacement)
	case *TextSymbolizer:
		ns = appendNode(ns, x.description)
		for _, f := range x.fonts {
			ns = appendNode(ns, f)
		}
		if x.placement != nil {
			ns = append(ns, x.placement)
		}
		ns = appendNode(ns, x.halo)
		ns = appendNode(ns, x.fill)
		ns = appendNode(ns, x.graphic)
	case *RasterSymbolizer:
		ns = appendNode(ns, x.description)
		ns = appendNode(ns, x.channelSelection)
		ns = appendNode(ns, x.colorMap)
		ns = appendNode(ns, x.contrastEnhancement)
		ns = appendNode(ns, x.shadedRelief)
		if x.imageOutline != nil {
			ns = append(ns, x.imageOutline)
		}
	case *ExtensionSymbolizer:
		ns = appendNode(ns, x.description)
	case *Fill:
		ns = appendNode(ns, x.graphicFill)
	case *Stroke:
		ns = appendNode(ns, x.graphicFill)
		ns = appendNode(ns, x.graphicStroke)
	case *Halo:
		ns = appendNode(ns, x.fill)
	case *Graphic:
		for _, s := range x.symbols {
			ns = append(ns, s)
		}
		ns = appendNode(ns, x.anchorPoint)
		ns = appendNode(ns, x.displacement)
	case *Mark:
		ns = appendNode(ns, x.fill)
		ns = appendNode(ns, x.stroke)
		ns = appendNode(ns, x.externalMark)
	case *PointPlacement:
		ns = appendNode(ns, x.anchorPoint)
		ns = appendNode(ns, x.displacement)
	case *ColorMap:
		for _, e := range x.entries {
			ns = appendNode(ns, e)
		}
	case *ChannelSelection:
		ns = appendNode(ns, x.gray)
		for _, c := range x.rgb {
			ns = appendNode(ns, c)
		}
	case *SelectedChannelType:
		ns = appendNode(ns, x.contrast)
	}
	return ns
}

func appendNode[P interface {
	comparable
	Node
}](ns []Node, p P) []Node {
	var zero P
	if p == zero {
		return ns
	}
	return append(ns, p)
}

// isNilNode reports whether n holds a nil pointer.
func isNilNode(n Node) bool {
	switch x := n.(type) {
	case *StyledLayerDescriptor:
		return x == nil
	case *NamedLayer:
		return x == nil
	case *UserLayer:
		return x == nil
	case *Style:
		return x == nil
	case *FeatureTypeStyle:
		return x == nil
	case *Rule:
		return x == nil
	case Symbolizer:
		return isNilSymbolizer(x)
	}
	return false
}
