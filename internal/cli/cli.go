// Package cli implements the sldtool command-line interface.
//
// sldtool builds a demonstration style from configurable defaults and
// inspects it with the visitor package.
//
// # Commands
//
//   - sample: print the demonstration style as a tree
//   - props: list the feature attributes the demonstration style reads
//   - defaults: print the frozen default nodes
//
// # Logging
//
// --verbose switches the charmbracelet/log logger to debug level. The
// same logger receives the sld library's slog output.
package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/sld"
	"github.com/gogpu/sld/internal/config"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
	noColor    bool
	cfg        config.Config
}

// New returns a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "sldtool",
		Short:         "sldtool builds and inspects map styles",
		Version:       sld.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "path to a TOML configuration file")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.BoolVar(&c.noColor, "no-color", false, "disable coloured output")

	root.AddCommand(c.sampleCommand())
	root.AddCommand(c.propsCommand())
	root.AddCommand(c.defaultsCommand())

	return root
}

// setup applies flags, loads the configuration and routes library logs
// to the CLI logger.
func (c *CLI) setup() error {
	if c.verbose {
		c.SetLogLevel(LogDebug)
	}
	sld.SetLogger(slog.New(c.Logger))

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.noColor {
		cfg.Output.Color = false
	}
	c.cfg = cfg
	if c.configPath != "" {
		c.Logger.Debug("loaded configuration", "path", c.configPath)
	}
	return nil
}
