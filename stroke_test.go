package sld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/sld/expr"
)

func TestParseLineCap(t *testing.T) {
	tests := []struct {
		in   string
		want LineCap
		ok   bool
	}{
		{"butt", LineCapButt, true},
		{"ROUND", LineCapRound, true},
		{" square ", LineCapSquare, true},
		{"pointy", LineCapButt, false},
	}
	for _, tt := range tests {
		got, ok := ParseLineCap(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	assert.Equal(t, "square", LineCapSquare.String())
}

func TestParseLineJoin(t *testing.T) {
	tests := []struct {
		in   string
		want LineJoin
		ok   bool
	}{
		{"miter", LineJoinMiter, true},
		{"mitre", LineJoinMiter, true},
		{"Round", LineJoinRound, true},
		{"bevel", LineJoinBevel, true},
		{"", LineJoinMiter, false},
	}
	for _, tt := range tests {
		got, ok := ParseLineJoin(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestStrokeDefaults(t *testing.T) {
	s := NewStroke()
	c, ok := s.Cap()
	require.True(t, ok)
	assert.Equal(t, LineCapButt, c)
	j, ok := s.Join()
	require.True(t, ok)
	assert.Equal(t, LineJoinMiter, j)
	assert.False(t, s.IsDashed())
	assert.True(t, expr.Equal(expr.Float(1), s.Width()))

	require.NoError(t, s.SetLineCap(expr.Property("cap")))
	_, ok = s.Cap()
	assert.False(t, ok, "computed cap")
}

func TestStrokeDashPattern(t *testing.T) {
	tests := []struct {
		name   string
		dashes []expr.Expression
		want   []float64
		ok     bool
	}{
		{"solid", nil, nil, true},
		{"dashed", []expr.Expression{expr.Float(5), expr.Int(3)}, []float64{5, 3}, true},
		{"negative lengths", []expr.Expression{expr.Float(-4), expr.Float(2)}, []float64{4, 2}, true},
		{"all zero is solid", []expr.Expression{expr.Float(0), expr.Float(0)}, nil, true},
		{"computed", []expr.Expression{expr.Property("dash")}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStroke()
			require.NoError(t, s.SetDashArray(tt.dashes))
			got, ok := s.DashPattern()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStrokeDashArrayIsCopied(t *testing.T) {
	in := []expr.Expression{expr.Float(1), expr.Float(2)}
	s := NewStroke()
	require.NoError(t, s.SetDashArray(in))
	in[0] = expr.Float(9)
	out := s.DashArray()
	out[1] = expr.Float(9)
	assert.Equal(t, []expr.Expression{expr.Float(1), expr.Float(2)}, s.DashArray())
}
