package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/sld"
	"github.com/gogpu/sld/internal/config"
	"github.com/gogpu/sld/visitor"
)

// run executes sldtool with args and returns stdout and the log output.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { sld.SetLogger(nil) })

	var out, logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), logs.String(), err
}

func TestSample(t *testing.T) {
	out, _, err := run(t, "sample", "--no-color")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, `Style name="demo"`, lines[0])
	assert.Contains(t, out, "\n  Description title=\"Demo basemap\" abstract=\"Generated by sldtool\"\n")
	assert.Contains(t, out, `Rule name="parks" filter=[landuse] = park`)
	assert.Contains(t, out, `Rule name="roads" filter=[highway] <> `+" scale=[0, 100000)")
	assert.Contains(t, out, `Rule name="other" else=true`)
	assert.Contains(t, out, "Fill color=#808080 opacity=0.8")
	assert.Contains(t, out, "width=mul([lanes], 1)")
	assert.NotContains(t, out, "\x1b[")
}

func TestSampleConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sldtool.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[defaults]
fill_color = "#00FF00"
font_family = "Sans"

[output]
color = false
indent = 4
`), 0o600))

	out, _, err := run(t, "--config", path, "sample")
	require.NoError(t, err)
	assert.Contains(t, out, "\n    FeatureTypeStyle name=\"basemap\"")
	assert.Contains(t, out, "Fill color=#00FF00 opacity=0.8")
	assert.Contains(t, out, "Font family=[Sans] style=normal weight=normal size=10")
}

func TestBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[defaults]\nfill = \"red\"\n"), 0o600))

	_, _, err := run(t, "--config", path, "sample")
	assert.ErrorIs(t, err, config.ErrUnknownKey)
}

func TestProps(t *testing.T) {
	out, _, err := run(t, "props")
	require.NoError(t, err)
	assert.Equal(t, "landuse\nhighway\nlanes\nname\nplace\npopulation\n", out)
}

func TestDefaults(t *testing.T) {
	out, _, err := run(t, "defaults", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "DefaultFill\nFill color=#808080 opacity=1 frozen=true\n")
	assert.Contains(t, out, "NullStroke\nStroke color=NIL width=NIL opacity=NIL join=NIL cap=NIL frozen=true\n")
	for _, d := range frozenDefaults {
		assert.Contains(t, out, d.name+"\n")
	}
}

func TestVerbose(t *testing.T) {
	_, logs, err := run(t, "sample", "--verbose", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, logs, "built sample style")

	_, logs, err = run(t, "sample", "--no-color")
	require.NoError(t, err)
	assert.NotContains(t, logs, "built sample style")
}

func TestLibraryLogsReachCLI(t *testing.T) {
	t.Cleanup(func() { sld.SetLogger(nil) })

	var logs bytes.Buffer
	c := New(&logs, LogInfo)
	require.NoError(t, c.setup())

	fts := sld.NewFeatureTypeStyle()
	fts.SetFeatureTypeNames("feature")
	assert.Contains(t, logs.String(), "deprecated")
}

func TestRejectsArgs(t *testing.T) {
	_, _, err := run(t, "props", "extra")
	assert.Error(t, err)
}

func TestColorOutput(t *testing.T) {
	for _, color := range []bool{true, false} {
		t.Run(strconv.FormatBool(color), func(t *testing.T) {
			c := New(&bytes.Buffer{}, LogInfo)
			c.cfg.Output.Color = color

			var out bytes.Buffer
			p := visitor.NewPrinter(&out, c.printerOptions()...)
			require.NoError(t, p.Print(sld.NewFill()))
			assert.Contains(t, out.String(), "Fill")
			assert.Contains(t, out.String(), "color")
			assert.Contains(t, out.String(), "#808080")
			assert.Contains(t, c.heading("Fill"), "Fill")
		})
	}
}
