package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/sld/visitor"
)

func (c *CLI) propsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "props",
		Short: "List the feature attributes the demonstration style reads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sampleStyle(c.cfg.Defaults)
			if err != nil {
				return err
			}
			names := visitor.NewPropertyCollector().Collect(s)
			c.Logger.Debug("collected attributes", "count", len(names))
			for _, n := range names {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), n); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
