// Package expr provides the opaque expression values stored by the
// symbology model.
//
// # Overview
//
// Every numeric, textual or colour attribute of a style (a stroke width, a
// fill colour, a label) is an [Expression]. An expression is either a
// constant ([Literal]), a reference to a feature attribute ([PropertyName])
// or a named function over other expressions ([Function]). The model never
// evaluates expressions: it stores them, copies them by reference and
// compares them by value. Renderers that only understand constants can use
// [AsFloat], [AsString] and [AsColor].
//
// # Absence
//
// Two kinds of absence are distinguished:
//
//   - a Go nil Expression means "not specified": the consumer applies the
//     default for that attribute;
//   - [Nil] means "explicitly cleared": the attribute has no value.
//
// # Building expressions
//
// Code that constructs styles receives a [Builder] instead of reaching for
// a global registry. [Factory] is the default implementation:
//
//	b := expr.Factory{}
//	width := b.Literal(2.5)
//	name := b.Property("NAME")
//	upper := b.Function("strToUpperCase", name)
//
// # Colours
//
// Colour literals are stored as [color.NRGBA]. [Hex] and [ParseColor]
// accept "#RGB", "#RGBA", "#RRGGBB" and "#RRGGBBAA" as well as CSS/SVG
// colour names ("steelblue", "gray").
package expr
