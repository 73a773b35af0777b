package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/sld"
	"github.com/gogpu/sld/visitor"
)

// frozenDefaults lists the shared defaults in display order.
var frozenDefaults = []struct {
	name string
	node sld.Node
}{
	{"DefaultAnchorPoint", sld.DefaultAnchorPoint},
	{"DefaultDisplacement", sld.DefaultDisplacement},
	{"DefaultFill", sld.DefaultFill},
	{"NullFill", sld.NullFill},
	{"DefaultStroke", sld.DefaultStroke},
	{"NullStroke", sld.NullStroke},
	{"DefaultGraphic", sld.DefaultGraphic},
	{"NullGraphic", sld.NullGraphic},
}

func (c *CLI) defaultsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the frozen default nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			p := visitor.NewPrinter(w, c.printerOptions()...)
			for _, d := range frozenDefaults {
				if _, err := fmt.Fprintln(w, c.heading(d.name)); err != nil {
					return err
				}
				if err := p.Print(d.node); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
