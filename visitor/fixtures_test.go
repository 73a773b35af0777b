package visitor

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/gogpu/sld"
	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/filter"
	"github.com/gogpu/sld/style"
)

// richDescriptor builds a document that uses every node kind.
func richDescriptor(t *testing.T) *sld.StyledLayerDescriptor {
	t.Helper()

	title := sld.NewInternationalString("Roads")
	title.SetTranslation(language.French, "Routes")
	desc := sld.NewDescription("", "Road network")
	desc.SetTitle(title)

	// polygon with a graphic fill holding both symbol kinds
	ext := sld.NewExternalGraphic("http://example.com/tree.svg", "image/svg+xml")
	ext.SetCustomProperty("scale", "2")
	ext.SetColorReplacements([]expr.Expression{expr.Hex("#00FF00")})
	mark := sld.NewMark()
	mark.SetWellKnownName(expr.Str(sld.MarkCircle))
	mark.SetExternalMark(sld.NewExternalMark("font://Wingdings", "ttf", 42))
	pattern := sld.NewGraphic()
	require.NoError(t, pattern.SetGraphicalSymbols([]style.GraphicalSymbol{mark, ext}))
	require.NoError(t, pattern.SetAnchorPoint(sld.NewAnchorPoint(expr.Float(0.5), expr.Float(0.5))))
	require.NoError(t, pattern.SetDisplacement(sld.NewDisplacement(expr.Float(1), expr.Float(2))))
	require.NoError(t, pattern.SetGap(expr.Int(4)))
	fill := sld.NewFill()
	require.NoError(t, fill.SetGraphicFill(pattern))
	require.NoError(t, fill.SetBackgroundColor(expr.Hex("#FFFFFF")))
	poly := sld.NewPolygonSymbolizer()
	poly.SetName("area")
	poly.SetGeometry(expr.Property("geom"))
	poly.SetUnitOfMeasure(style.Metre)
	poly.SetOption("autoWrap", "true")
	poly.SetFill(fill)
	poly.SetStroke(sld.NewStyleFactory(nil).DashedStroke(expr.Hex("#333333"), expr.Float(2), 5, 3))
	poly.SetDisplacement(sld.NewDisplacement(expr.Float(3), expr.Float(4)))
	poly.SetPerpendicularOffset(expr.Float(1))

	// text with every optional part
	text := sld.NewTextSymbolizer()
	text.SetDescription(desc)
	text.SetLabel(expr.Property("name"))
	text.SetPriority(expr.Property("rank"))
	font := sld.NewFont()
	font.SetSize(expr.Int(12))
	text.SetFonts([]style.Font{font, sld.NewFont()})
	text.SetLabelPlacement(sld.NewPointPlacement())
	text.SetHalo(sld.NewHalo())
	text.SetGraphic(sld.DefaultGraphic)
	text.SetOtherText(sld.NewOtherText("label", expr.Str("alt")))

	road := sld.NewTextSymbolizer()
	road.SetLabel(expr.Property("ref"))
	lp := sld.NewLinePlacement()
	lp.SetRepeated(true)
	lp.SetGap(expr.Int(200))
	road.SetLabelPlacement(lp)

	// raster
	ce := sld.NewContrastEnhancement(style.ContrastNormalize)
	require.NoError(t, ce.SetAlgorithm(sld.ClipToZero))
	ce.SetGammaValue(expr.Float(1.2))
	cs := sld.NewChannelSelection()
	require.NoError(t, cs.SetRGBChannels([]style.SelectedChannelType{
		sld.NewSelectedChannelType(expr.Str("1"), ce),
		sld.NewSelectedChannelType(expr.Str("2"), nil),
		sld.NewSelectedChannelType(expr.Str("3"), nil),
	}))
	cm := sld.NewColorMap()
	require.NoError(t, cm.SetType(style.ColorMapIntervals))
	cm.SetExtendedColors(true)
	entry := sld.NewColorMapEntry(expr.Int(100), expr.Hex("#0000FF"))
	entry.SetLabel("low")
	entry.SetOpacity(expr.Float(0.5))
	cm.SetEntries([]style.ColorMapEntry{entry, sld.NewColorMapEntry(expr.Int(500), expr.Hex("#FF0000"))})
	relief := sld.NewShadedRelief()
	relief.SetBrightnessOnly(true)
	raster := sld.NewRasterSymbolizer()
	raster.SetChannelSelection(cs)
	raster.SetColorMap(cm)
	raster.SetContrastEnhancement(sld.NewContrastEnhancement(style.ContrastHistogram))
	raster.SetShadedRelief(relief)
	require.NoError(t, raster.SetOverlapBehavior(style.Average))
	require.NoError(t, raster.SetImageOutline(sld.NewLineSymbolizer()))

	gray := sld.NewRasterSymbolizer()
	gray.SetChannelSelection(nil)

	ext2 := sld.NewExtensionSymbolizer("heatmap")
	ext2.SetParameter("weight", expr.Property("population"))

	point := sld.NewPointSymbolizer()
	point.SetGraphic(sld.DefaultGraphic)

	rule := sld.NewRule(poly, text, road, raster, gray, ext2, point)
	rule.SetName("all")
	rule.SetDescription(desc)
	rule.SetLegend(sld.NewGraphic())
	rule.SetFilter(filter.Cmp(expr.Property("class"), filter.OpEqual, expr.Str("A")))
	rule.SetMinScaleDenominator(1000)
	rule.SetMaxScaleDenominator(50000)
	rule.SetOnlineResource("http://example.com/rule")

	elseRule := sld.NewRule(sld.NewLineSymbolizer())
	elseRule.SetElseFilter(true)

	fts := sld.NewFeatureTypeStyle(rule, elseRule)
	fts.SetName("fts")
	fts.SetFeatureTypeNames("road", "track")
	fts.SetSemanticTypeIdentifiers(style.SemanticLine, style.SemanticPolygon)
	fts.SetFeatureInstanceIDs(filter.IDs("road.1", "road.2"))
	fts.SetTransformation(expr.Call("vec:Simplify", expr.Property("geom")))
	fts.SetOption("composite", "multiply")

	s := sld.NewStyle("network", fts)
	s.SetDefault(true)
	s.SetDescription(sld.NewDescription("Network", ""))
	s.SetBackground(sld.NewFill())
	s.SetDefaultSpecification(sld.NewLineSymbolizer())

	user := sld.NewUserLayer("sketch", s)
	user.SetInlineFeatures([]byte("<FeatureCollection/>"))
	user.SetRemoteOWS(&sld.RemoteOWS{Service: "WFS", OnlineResource: "http://example.com/wfs"})
	user.AddConstraint(sld.NewFeatureTypeConstraint("road", nil, sld.Extent{Name: "time", Value: "2020"}))

	named := sld.NewNamedLayer("roads", "default")
	named.AddConstraint(sld.NewFeatureTypeConstraint("road",
		filter.Cmp(expr.Property("lanes"), filter.OpGreater, expr.Int(2))))

	d := sld.NewStyledLayerDescriptor("doc", named, user)
	d.SetTitle("Title")
	d.SetAbstract("Abstract")
	return d
}
