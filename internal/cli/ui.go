package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/sld/visitor"
)

var (
	colorCyan = lipgloss.Color("36")
	colorGray = lipgloss.Color("245")
	colorBlue = lipgloss.Color("75")
)

var (
	styleKind    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleAttr    = lipgloss.NewStyle().Foreground(colorGray)
	styleHeading = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
)

// printerOptions maps the output configuration onto printer options.
func (c *CLI) printerOptions() []visitor.PrinterOption {
	opts := []visitor.PrinterOption{
		visitor.WithIndent(strings.Repeat(" ", c.cfg.Output.Indent)),
	}
	if c.cfg.Output.Color {
		opts = append(opts,
			visitor.WithKindStyle(func(s string) string { return styleKind.Render(s) }),
			visitor.WithAttrStyle(func(s string) string { return styleAttr.Render(s) }),
		)
	}
	return opts
}

func (c *CLI) heading(s string) string {
	if !c.cfg.Output.Color {
		return s
	}
	return styleHeading.Render(s)
}
