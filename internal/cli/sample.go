package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/sld"
	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/filter"
	"github.com/gogpu/sld/internal/config"
	"github.com/gogpu/sld/style"
	"github.com/gogpu/sld/visitor"
)

// sampleStyle builds a small basemap: parks, labelled roads, towns and a
// fallback rule.
func sampleStyle(d config.Defaults) (*sld.Style, error) {
	f := sld.NewStyleFactory(nil)
	fill := expr.Hex(d.FillColor)
	stroke := expr.Hex(d.StrokeColor)
	width := expr.Float(d.StrokeWidth)

	park := sld.NewPolygonSymbolizer()
	park.SetFill(f.Fill(fill, expr.Float(0.8)))
	park.SetStroke(f.Stroke(stroke, width))
	parks := sld.NewRule(park)
	parks.SetName("parks")
	parks.SetFilter(filter.Cmp(expr.Property("landuse"), filter.OpEqual, expr.Str("park")))

	road := sld.NewLineSymbolizer()
	road.SetStroke(f.Stroke(stroke, expr.Call("mul", expr.Property("lanes"), width)))
	font, err := f.Font([]expr.Expression{expr.Str(d.FontFamily)},
		expr.Str("normal"), expr.Str("normal"), expr.Float(d.FontSize))
	if err != nil {
		return nil, fmt.Errorf("sample font: %w", err)
	}
	label := sld.NewTextSymbolizer()
	label.SetLabel(expr.Property("name"))
	label.SetFonts([]style.Font{font})
	label.SetHalo(f.Halo(f.Fill(expr.Hex("#FFFFFF"), expr.Float(1)), expr.Float(1.5)))
	label.SetLabelPlacement(f.LinePlacement(expr.Float(0)))
	roads := sld.NewRule(road, label)
	roads.SetName("roads")
	roads.SetFilter(filter.Cmp(expr.Property("highway"), filter.OpNotEqual, expr.Str("")))
	roads.SetMaxScaleDenominator(100000)

	town := sld.NewPointSymbolizer()
	town.SetGraphic(f.Graphic([]style.GraphicalSymbol{f.CircleMark()},
		expr.Float(1), expr.Call("sqrt", expr.Property("population")), expr.Float(0)))
	towns := sld.NewRule(town)
	towns.SetName("towns")
	towns.SetFilter(filter.Cmp(expr.Property("place"), filter.OpEqual, expr.Str("town")))

	other := sld.NewRule(f.DefaultPolygonSymbolizer())
	other.SetName("other")
	other.SetElseFilter(true)

	fts := sld.NewFeatureTypeStyle(parks, roads, towns, other)
	fts.SetName("basemap")

	s := sld.NewStyle("demo", fts)
	s.SetDescription(sld.NewDescription("Demo basemap", "Generated by sldtool"))
	return s, nil
}

func (c *CLI) sampleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Print the demonstration style",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sampleStyle(c.cfg.Defaults)
			if err != nil {
				return err
			}
			c.Logger.Debug("built sample style", "hash", fmt.Sprintf("%016x", s.Hash()))
			return visitor.NewPrinter(cmd.OutOrStdout(), c.printerOptions()...).Print(s)
		},
	}
}
