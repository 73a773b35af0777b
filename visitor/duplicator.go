package visitor

import (
	"fmt"

	"github.com/gogpu/sld"
	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/style"
)

// Duplicator is an sld.DataVisitor that rebuilds the visited node and
// everything below it through the exported constructors and setters.
// The copy is Equal to the original and shares no node with it;
// expressions and filters are immutable and are shared.
//
// Frozen defaults are copied into mutable nodes. The data argument is
// ignored.
//
// Example:
//
//	c := visitor.Copy(s) // c.Equal(s) holds, c != s
type Duplicator struct{}

var _ sld.DataVisitor = Duplicator{}

// Copy returns a deep copy of n built by a Duplicator. It returns the
// zero value for a nil n.
func Copy[T interface {
	comparable
	sld.Node
}](n T) T {
	return dup(Duplicator{}, n)
}

func dup[T interface {
	comparable
	sld.Node
}](d Duplicator, n T) T {
	var zero T
	if n == zero {
		return zero
	}
	return n.AcceptData(d, nil).(T)
}

// as converts a capability interface back to the concrete node type.
func as[T any](v any) T {
	t, _ := v.(T)
	return t
}

// must reports a setter failure on a freshly built node, which means the
// source holds a value its own setters reject.
func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("visitor: copy rejected by setter: %v", err))
	}
}

type symbolizerBase interface {
	Name() string
	Description() style.Description
	Geometry() expr.Expression
	UnitOfMeasure() style.Unit
	Options() map[string]string
	SetName(name string)
	SetDescription(d style.Description)
	SetGeometry(g expr.Expression)
	SetUnitOfMeasure(u style.Unit)
	SetOption(key, value string)
}

func (d Duplicator) base(dst, src symbolizerBase) {
	dst.SetName(src.Name())
	dst.SetDescription(dup(d, as[*sld.Description](src.Description())))
	dst.SetGeometry(src.Geometry())
	dst.SetUnitOfMeasure(src.UnitOfMeasure())
	for k, v := range src.Options() {
		dst.SetOption(k, v)
	}
}

func (d Duplicator) constraints(src []*sld.FeatureTypeConstraint, add func(*sld.FeatureTypeConstraint)) {
	for _, c := range src {
		add(dup(d, c))
	}
}

func (d Duplicator) VisitStyledLayerDescriptor(n *sld.StyledLayerDescriptor, _ any) any {
	c := sld.NewStyledLayerDescriptor(n.Name())
	c.SetTitle(n.Title())
	c.SetAbstract(n.Abstract())
	for _, l := range n.Layers() {
		c.AddLayer(dup(d, l))
	}
	return c
}

func (d Duplicator) VisitNamedLayer(n *sld.NamedLayer, _ any) any {
	c := sld.NewNamedLayer(n.LayerName(), n.StyleNames()...)
	d.constraints(n.Constraints(), c.AddConstraint)
	return c
}

func (d Duplicator) VisitUserLayer(n *sld.UserLayer, _ any) any {
	c := sld.NewUserLayer(n.LayerName())
	for _, s := range n.Styles() {
		c.AddStyle(dup(d, s))
	}
	c.SetInlineFeatures(n.InlineFeatures())
	c.SetRemoteOWS(n.RemoteOWS())
	d.constraints(n.Constraints(), c.AddConstraint)
	return c
}

func (d Duplicator) VisitFeatureTypeConstraint(n *sld.FeatureTypeConstraint, _ any) any {
	return sld.NewFeatureTypeConstraint(n.FeatureTypeName(), n.Filter(), n.Extents()...)
}

func (d Duplicator) VisitStyle(n *sld.Style, _ any) any {
	c := sld.NewStyle(n.Name())
	c.SetDefault(n.IsDefault())
	c.SetDescription(dup(d, as[*sld.Description](n.Description())))
	fts := make([]style.FeatureTypeStyle, 0, len(n.FeatureTypeStyleList()))
	for _, f := range n.FeatureTypeStyleList() {
		fts = append(fts, dup(d, f))
	}
	c.SetFeatureTypeStyles(fts)
	c.SetBackground(dup(d, as[*sld.Fill](n.Background())))
	if spec := as[sld.Symbolizer](n.DefaultSpecification()); spec != nil {
		c.SetDefaultSpecification(dup(d, spec))
	}
	return c
}

func (d Duplicator) VisitFeatureTypeStyle(n *sld.FeatureTypeStyle, _ any) any {
	c := sld.NewFeatureTypeStyle()
	c.SetName(n.Name())
	c.SetDescription(dup(d, as[*sld.Description](n.Description())))
	c.SetFeatureTypeNames(n.FeatureTypeNames()...)
	c.SetSemanticTypeIdentifiers(n.SemanticTypeIdentifiers()...)
	c.SetFeatureInstanceIDs(n.FeatureInstanceIDs())
	c.SetTransformation(n.Transformation())
	for k, v := range n.Options() {
		c.SetOption(k, v)
	}
	rules := make([]style.Rule, 0, len(n.RuleList()))
	for _, r := range n.RuleList() {
		rules = append(rules, dup(d, r))
	}
	c.SetRules(rules)
	return c
}

func (d Duplicator) VisitRule(n *sld.Rule, _ any) any {
	c := sld.NewRule()
	c.SetName(n.Name())
	c.SetDescription(dup(d, as[*sld.Description](n.Description())))
	c.SetLegend(dup(d, as[*sld.Graphic](n.Legend())))
	c.SetFilter(n.Filter())
	c.SetElseFilter(n.ElseFilter())
	c.SetMinScaleDenominator(n.MinScaleDenominator())
	c.SetMaxScaleDenominator(n.MaxScaleDenominator())
	c.SetOnlineResource(n.OnlineResource())
	syms := make([]style.Symbolizer, 0, len(n.SymbolizerList()))
	for _, s := range n.SymbolizerList() {
		syms = append(syms, dup(d, s))
	}
	c.SetSymbolizers(syms)
	return c
}

func (d Duplicator) VisitPointSymbolizer(n *sld.PointSymbolizer, _ any) any {
	c := sld.NewPointSymbolizer()
	d.base(c, n)
	c.SetGraphic(dup(d, as[*sld.Graphic](n.Graphic())))
	return c
}

func (d Duplicator) VisitLineSymbolizer(n *sld.LineSymbolizer, _ any) any {
	c := sld.NewLineSymbolizer()
	d.base(c, n)
	c.SetStroke(dup(d, as[*sld.Stroke](n.Stroke())))
	c.SetPerpendicularOffset(n.PerpendicularOffset())
	return c
}

func (d Duplicator) VisitPolygonSymbolizer(n *sld.PolygonSymbolizer, _ any) any {
	c := sld.NewPolygonSymbolizer()
	d.base(c, n)
	c.SetFill(dup(d, as[*sld.Fill](n.Fill())))
	c.SetStroke(dup(d, as[*sld.Stroke](n.Stroke())))
	c.SetDisplacement(dup(d, as[*sld.Displacement](n.Displacement())))
	c.SetPerpendicularOffset(n.PerpendicularOffset())
	return c
}

func (d Duplicator) VisitTextSymbolizer(n *sld.TextSymbolizer, _ any) any {
	c := sld.NewTextSymbolizer()
	d.base(c, n)
	c.SetLabel(n.Label())
	c.SetPriority(n.Priority())
	c.SetSnippet(n.Snippet())
	c.SetFeatureDescription(n.FeatureDescription())
	fonts := make([]style.Font, 0, len(n.Fonts()))
	for _, f := range n.Fonts() {
		fonts = append(fonts, dup(d, as[*sld.Font](f)))
	}
	c.SetFonts(fonts)
	if p := as[sld.LabelPlacement](n.LabelPlacement()); p != nil {
		c.SetLabelPlacement(dup(d, p))
	} else {
		c.SetLabelPlacement(nil)
	}
	c.SetHalo(dup(d, as[*sld.Halo](n.Halo())))
	c.SetFill(dup(d, as[*sld.Fill](n.Fill())))
	c.SetGraphic(dup(d, as[*sld.Graphic](n.Graphic())))
	if o := as[*sld.OtherText](n.OtherText()); o != nil {
		c.SetOtherText(sld.NewOtherText(o.Target(), o.Text()))
	} else {
		c.SetOtherText(nil)
	}
	return c
}

func (d Duplicator) VisitRasterSymbolizer(n *sld.RasterSymbolizer, _ any) any {
	c := sld.NewRasterSymbolizer()
	d.base(c, n)
	c.SetOpacity(n.Opacity())
	c.SetChannelSelection(dup(d, as[*sld.ChannelSelection](n.ChannelSelection())))
	must(c.SetOverlapBehavior(n.OverlapBehavior()))
	c.SetColorMap(dup(d, as[*sld.ColorMap](n.ColorMap())))
	c.SetContrastEnhancement(dup(d, as[*sld.ContrastEnhancement](n.ContrastEnhancement())))
	c.SetShadedRelief(dup(d, as[*sld.ShadedRelief](n.ShadedRelief())))
	if o := as[sld.Symbolizer](n.ImageOutline()); o != nil {
		must(c.SetImageOutline(dup(d, o)))
	}
	return c
}

func (d Duplicator) VisitExtensionSymbolizer(n *sld.ExtensionSymbolizer, _ any) any {
	c := sld.NewExtensionSymbolizer(n.ExtensionName())
	d.base(c, n)
	for k, v := range n.Parameters() {
		c.SetParameter(k, v)
	}
	return c
}

func (d Duplicator) VisitDescription(n *sld.Description, _ any) any {
	c := sld.NewDescription("", "")
	if t := n.Title(); t != nil {
		c.SetTitle(copyText(t))
	}
	if a := n.Abstract(); a != nil {
		c.SetAbstract(copyText(a))
	}
	return c
}

func copyText(s style.InternationalString) *sld.InternationalString {
	c := sld.NewInternationalString(s.String())
	for tag, text := range s.Translations() {
		c.SetTranslation(tag, text)
	}
	return c
}

func (d Duplicator) VisitFill(n *sld.Fill, _ any) any {
	c := sld.NewFill()
	must(c.SetColor(n.Color()))
	must(c.SetBackgroundColor(n.BackgroundColor()))
	must(c.SetOpacity(n.Opacity()))
	must(c.SetGraphicFill(dup(d, as[*sld.Graphic](n.GraphicFill()))))
	return c
}

func (d Duplicator) VisitStroke(n *sld.Stroke, _ any) any {
	c := sld.NewStroke()
	must(c.SetColor(n.Color()))
	must(c.SetWidth(n.Width()))
	must(c.SetOpacity(n.Opacity()))
	must(c.SetLineJoin(n.LineJoin()))
	must(c.SetLineCap(n.LineCap()))
	must(c.SetDashArray(n.DashArray()))
	must(c.SetDashOffset(n.DashOffset()))
	must(c.SetGraphicFill(dup(d, as[*sld.Graphic](n.GraphicFill()))))
	must(c.SetGraphicStroke(dup(d, as[*sld.Graphic](n.GraphicStroke()))))
	return c
}

func (d Duplicator) VisitFont(n *sld.Font, _ any) any {
	c := sld.NewFont()
	c.SetFamily(n.Family())
	c.SetStyle(n.Style())
	c.SetWeight(n.Weight())
	c.SetSize(n.Size())
	return c
}

func (d Duplicator) VisitHalo(n *sld.Halo, _ any) any {
	c := sld.NewHalo()
	c.SetFill(dup(d, as[*sld.Fill](n.Fill())))
	c.SetRadius(n.Radius())
	return c
}

func (d Duplicator) VisitGraphic(n *sld.Graphic, _ any) any {
	c := sld.NewGraphic()
	symbols := make([]style.GraphicalSymbol, 0, len(n.Symbols()))
	for _, s := range n.Symbols() {
		symbols = append(symbols, dup(d, s))
	}
	must(c.SetGraphicalSymbols(symbols))
	must(c.SetOpacity(n.Opacity()))
	must(c.SetSize(n.Size()))
	must(c.SetRotation(n.Rotation()))
	must(c.SetGap(n.Gap()))
	must(c.SetInitialGap(n.InitialGap()))
	must(c.SetAnchorPoint(dup(d, as[*sld.AnchorPoint](n.AnchorPoint()))))
	must(c.SetDisplacement(dup(d, as[*sld.Displacement](n.Displacement()))))
	return c
}

func (d Duplicator) VisitMark(n *sld.Mark, _ any) any {
	c := sld.NewMark()
	c.SetWellKnownName(n.WellKnownName())
	c.SetFill(dup(d, as[*sld.Fill](n.Fill())))
	c.SetStroke(dup(d, as[*sld.Stroke](n.Stroke())))
	c.SetExternalMark(dup(d, as[*sld.ExternalMark](n.ExternalMark())))
	return c
}

func (d Duplicator) VisitExternalGraphic(n *sld.ExternalGraphic, _ any) any {
	c := sld.NewExternalGraphic(n.OnlineResource(), n.Format())
	c.SetInlineContent(n.InlineContent())
	c.SetColorReplacements(n.ColorReplacements())
	for k, v := range n.CustomProperties() {
		c.SetCustomProperty(k, v)
	}
	return c
}

func (d Duplicator) VisitExternalMark(n *sld.ExternalMark, _ any) any {
	c := sld.NewExternalMark(n.OnlineResource(), n.Format(), n.MarkIndex())
	c.SetInlineContent(n.InlineContent())
	return c
}

func (d Duplicator) VisitPointPlacement(n *sld.PointPlacement, _ any) any {
	c := sld.NewPointPlacement()
	c.SetAnchorPoint(dup(d, as[*sld.AnchorPoint](n.AnchorPoint())))
	c.SetDisplacement(dup(d, as[*sld.Displacement](n.Displacement())))
	c.SetRotation(n.Rotation())
	return c
}

func (d Duplicator) VisitLinePlacement(n *sld.LinePlacement, _ any) any {
	c := sld.NewLinePlacement()
	c.SetPerpendicularOffset(n.PerpendicularOffset())
	c.SetRepeated(n.Repeated())
	c.SetAligned(n.Aligned())
	c.SetGeneralizeLine(n.GeneralizeLine())
	c.SetGap(n.Gap())
	c.SetInitialGap(n.InitialGap())
	return c
}

func (d Duplicator) VisitAnchorPoint(n *sld.AnchorPoint, _ any) any {
	return sld.NewAnchorPoint(n.AnchorPointX(), n.AnchorPointY())
}

func (d Duplicator) VisitDisplacement(n *sld.Displacement, _ any) any {
	return sld.NewDisplacement(n.DisplacementX(), n.DisplacementY())
}

func (d Duplicator) VisitColorMap(n *sld.ColorMap, _ any) any {
	c := sld.NewColorMap()
	must(c.SetType(n.Type()))
	c.SetExtendedColors(n.ExtendedColors())
	c.SetFunction(n.Function())
	entries := make([]style.ColorMapEntry, 0, len(n.Entries()))
	for _, e := range n.Entries() {
		entries = append(entries, dup(d, as[*sld.ColorMapEntry](e)))
	}
	c.SetEntries(entries)
	return c
}

func (d Duplicator) VisitColorMapEntry(n *sld.ColorMapEntry, _ any) any {
	c := sld.NewColorMapEntry(n.Quantity(), n.Color())
	c.SetOpacity(n.Opacity())
	c.SetLabel(n.Label())
	return c
}

func (d Duplicator) VisitContrastEnhancement(n *sld.ContrastEnhancement, _ any) any {
	c := sld.NewContrastEnhancement(n.Method())
	c.SetGammaValue(n.GammaValue())
	for k, v := range n.Options() {
		c.SetOption(k, v)
	}
	return c
}

func (d Duplicator) VisitChannelSelection(n *sld.ChannelSelection, _ any) any {
	c := sld.NewChannelSelection()
	c.SetGrayChannel(dup(d, as[*sld.SelectedChannelType](n.GrayChannel())))
	if rgb := n.RGBChannels(); len(rgb) > 0 {
		chs := make([]style.SelectedChannelType, len(rgb))
		for i, ch := range rgb {
			chs[i] = dup(d, as[*sld.SelectedChannelType](ch))
		}
		must(c.SetRGBChannels(chs))
	}
	return c
}

func (d Duplicator) VisitSelectedChannelType(n *sld.SelectedChannelType, _ any) any {
	return sld.NewSelectedChannelType(n.ChannelName(),
		dup(d, as[*sld.ContrastEnhancement](n.ContrastEnhancement())))
}

func (d Duplicator) VisitShadedRelief(n *sld.ShadedRelief, _ any) any {
	c := sld.NewShadedRelief()
	c.SetBrightnessOnly(n.BrightnessOnly())
	c.SetReliefFactor(n.ReliefFactor())
	return c
}
