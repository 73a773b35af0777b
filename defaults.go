package sld

import "github.com/gogpu/sld/expr"

// Shared read-only defaults. Every setter on them returns ErrFrozen; use
// the matching Cast function or Clone to get a mutable copy. They may be
// read concurrently.
var (
	// DefaultAnchorPoint is the anchor point a renderer assumes for a
	// point label: left edge, vertical centre.
	DefaultAnchorPoint = &AnchorPoint{x: expr.Float(0), y: expr.Float(0.5), frozen: true}

	// DefaultDisplacement is the zero offset.
	DefaultDisplacement = &Displacement{x: expr.Float(0), y: expr.Float(0), frozen: true}

	// DefaultFill is a 50% gray, fully opaque fill.
	DefaultFill = &Fill{color: expr.Hex("#808080"), opacity: expr.Float(1), frozen: true}

	// NullFill paints nothing: every field is unset.
	NullFill = &Fill{color: expr.Nil, backgroundColor: expr.Nil, opacity: expr.Nil, frozen: true}

	// DefaultStroke is a solid black stroke one unit wide.
	DefaultStroke = &Stroke{
		color:      expr.Hex("#000000"),
		width:      expr.Float(1),
		opacity:    expr.Float(1),
		lineJoin:   expr.Str(LineJoinMiter.String()),
		lineCap:    expr.Str(LineCapButt.String()),
		dashOffset: expr.Float(0),
		frozen:     true,
	}

	// NullStroke draws nothing: every field is unset.
	NullStroke = &Stroke{
		color:      expr.Nil,
		width:      expr.Nil,
		opacity:    expr.Nil,
		lineJoin:   expr.Nil,
		lineCap:    expr.Nil,
		dashOffset: expr.Nil,
		frozen:     true,
	}

	// DefaultGraphic is an empty, opaque, unrotated graphic of size 16.
	DefaultGraphic = &Graphic{
		opacity:  expr.Float(1),
		size:     expr.Int(16),
		rotation: expr.Float(0),
		frozen:   true,
	}

	// NullGraphic draws nothing: it has no symbols and every field is
	// unset.
	NullGraphic = &Graphic{
		opacity:    expr.Nil,
		size:       expr.Nil,
		rotation:   expr.Nil,
		gap:        expr.Nil,
		initialGap: expr.Nil,
		frozen:     true,
	}
)
