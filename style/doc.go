// Package style declares the capability interfaces of the symbology model.
//
// A capability interface is the read-only accessor contract of one node
// kind (a Fill, a Rule, a RasterSymbolizer). Any type that provides those
// accessors can be handed to the concrete model in package sld, which
// normalises it into its own mutable implementation through the Cast
// functions:
//
//	var foreign style.Fill = otherlib.Fill{...}
//	fill := sld.CastFill(foreign) // *sld.Fill holding the same values
//
// Nested accessors return capability interfaces too, so a whole foreign
// tree can be cast in one call.
//
// The package also holds the small enumerations shared by both sides of
// that boundary: units of measure, semantic types, contrast methods,
// overlap behaviours and colour map types.
package style
