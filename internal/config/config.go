// Package config loads the sldtool configuration file.
//
// The file is TOML with two tables:
//
//	[defaults]
//	fill_color   = "#808080"
//	stroke_color = "#000000"
//	stroke_width = 1.0
//	font_family  = "Serif"
//	font_size    = 10.0
//
//	[output]
//	color  = true
//	indent = 2
//
// Every key is optional; missing keys keep their Default value. Unknown
// keys are rejected so that typos do not go unnoticed.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/sld/expr"
)

// ErrUnknownKey is returned when a file sets a key Config does not know.
var ErrUnknownKey = errors.New("config: unknown key")

// ErrInvalid is returned when a value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// MaxIndent is the largest accepted output indent.
const MaxIndent = 8

// Config is the full sldtool configuration.
type Config struct {
	Defaults Defaults `toml:"defaults"`
	Output   Output   `toml:"output"`
}

// Defaults holds the symbolizer values the sample style is built from.
type Defaults struct {
	FillColor   string  `toml:"fill_color"`
	StrokeColor string  `toml:"stroke_color"`
	StrokeWidth float64 `toml:"stroke_width"`
	FontFamily  string  `toml:"font_family"`
	FontSize    float64 `toml:"font_size"`
}

// Output controls how trees are printed.
type Output struct {
	Color  bool `toml:"color"`
	Indent int  `toml:"indent"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Defaults: Defaults{
			FillColor:   "#808080",
			StrokeColor: "#000000",
			StrokeWidth: 1,
			FontFamily:  "Serif",
			FontSize:    10,
		},
		Output: Output{
			Color:  true,
			Indent: 2,
		},
	}
}

// Load reads the file at path over Default. An empty path returns
// Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := check(md, cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over Default.
func Parse(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := check(md, cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func check(md toml.MetaData, cfg Config) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	return cfg.Validate()
}

// Validate reports the first out of range value.
func (c Config) Validate() error {
	d := c.Defaults
	for _, col := range []struct{ key, value string }{
		{"defaults.fill_color", d.FillColor},
		{"defaults.stroke_color", d.StrokeColor},
	} {
		if _, err := expr.ParseColor(col.value); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, col.key, err)
		}
	}
	switch {
	case d.StrokeWidth <= 0:
		return fmt.Errorf("%w: defaults.stroke_width must be positive, got %g", ErrInvalid, d.StrokeWidth)
	case d.FontSize <= 0:
		return fmt.Errorf("%w: defaults.font_size must be positive, got %g", ErrInvalid, d.FontSize)
	case strings.TrimSpace(d.FontFamily) == "":
		return fmt.Errorf("%w: defaults.font_family is empty", ErrInvalid)
	case c.Output.Indent < 0 || c.Output.Indent > MaxIndent:
		return fmt.Errorf("%w: output.indent must be in 0..%d, got %d", ErrInvalid, MaxIndent, c.Output.Indent)
	}
	return nil
}
