package visitor

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/sld"
	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/filter"
)

func roadStyle() *sld.Style {
	r := sld.NewRule(sld.NewLineSymbolizer())
	r.SetName("major")
	r.SetFilter(filter.Cmp(expr.Property("class"), filter.OpEqual, expr.Str("A")))
	r.SetMaxScaleDenominator(50000)
	return sld.NewStyle("roads", sld.NewFeatureTypeStyle(r))
}

func TestPrinter(t *testing.T) {
	tests := []struct {
		name string
		opts []PrinterOption
		want string
	}{
		{
			name: "default",
			want: `Style name="roads"
  FeatureTypeStyle semantic=[ANY]
    Rule name="major" filter=[class] = A scale=[0, 50000)
      LineSymbolizer
        Stroke color=#000000 width=1 opacity=1 join=miter cap=butt
`,
		},
		{
			name: "styled",
			opts: []PrinterOption{
				WithIndent("\t"),
				WithKindStyle(strings.ToUpper),
				WithAttrStyle(func(s string) string { return "@" + s }),
			},
			want: `STYLE @name="roads"
	FEATURETYPESTYLE @semantic=[ANY]
		RULE @name="major" @filter=[class] = A @scale=[0, 50000)
			LINESYMBOLIZER
				STROKE @color=#000000 @width=1 @opacity=1 @join=miter @cap=butt
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewPrinter(&buf, tt.opts...).Print(roadStyle()))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrinterFrozen(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf).Print(sld.DefaultFill))
	assert.Equal(t, "Fill color=#808080 opacity=1 frozen=true\n", buf.String())
}

func TestPrinterEveryKind(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf).Print(richDescriptor(t)))

	out := buf.String()
	for _, kind := range []string{
		"StyledLayerDescriptor", "NamedLayer", "UserLayer", "FeatureTypeConstraint",
		"Style", "FeatureTypeStyle", "Rule", "PointSymbolizer", "LineSymbolizer",
		"PolygonSymbolizer", "TextSymbolizer", "RasterSymbolizer", "ExtensionSymbolizer",
		"Description", "Fill", "Stroke", "Font", "Halo", "Graphic", "Mark",
		"ExternalGraphic", "ExternalMark", "PointPlacement", "LinePlacement",
		"AnchorPoint", "Displacement", "ColorMap", "ColorMapEntry",
		"ContrastEnhancement", "ChannelSelection", "SelectedChannelType", "ShadedRelief",
	} {
		assert.Contains(t, out, kind)
	}
	assert.Contains(t, out, `remote=WFS@http://example.com/wfs`)
	assert.Contains(t, out, `type=intervals extended=true`)
	assert.Contains(t, out, `overlap=AVERAGE`)
	assert.Contains(t, out, `extent=time:2020`)
	assert.Contains(t, out, `else=true`)
}

type failingWriter struct{ n int }

var errWrite = errors.New("disk full")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errWrite
	}
	w.n--
	return len(p), nil
}

func TestPrinterWriteError(t *testing.T) {
	err := NewPrinter(&failingWriter{n: 2}).Print(roadStyle())
	assert.ErrorIs(t, err, errWrite)

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf).Print(sld.NewHalo()))
	assert.Equal(t, "Halo radius=1\n  Fill color=#FFFFFF opacity=1\n", buf.String())
}
