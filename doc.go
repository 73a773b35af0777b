// Package sld provides an in-memory model of OGC Styled Layer Descriptor
// and Symbology Encoding styles.
//
// # Overview
//
// A style tree describes how to draw a map. It never parses documents,
// renders pixels or evaluates expressions: parsers build trees with the
// constructors and setters here, and renderers or encoders read them
// back through plain accessors or the visitor protocol.
//
// # Quick Start
//
//	import "github.com/gogpu/sld"
//
//	f := sld.NewStyleFactory(nil)
//	poly := f.DefaultPolygonSymbolizer()
//	_ = poly.Fill().(*sld.Fill).SetColor(expr.Hex("#FF0000"))
//
//	rule := sld.NewRule(poly)
//	st := sld.NewStyle("parcels", sld.NewFeatureTypeStyle(rule))
//
// # Architecture
//
// The model is organized into:
//   - expr: opaque attribute expressions and the Nil sentinel
//   - filter: opaque feature filters
//   - style: read-only capability interfaces and shared enumerations
//   - sld: the concrete mutable model, casts, defaults and the factory
//   - visitor: printing, property collection and deep duplication
//
// # Casting
//
// Every concrete type T has a CastT function taking the matching
// style interface. A nil input gives nil, a *T is returned as is, a
// frozen default is copied and any other implementation is copied field
// by field, casting nested nodes on the way. Setters that take a
// capability interface cast their argument, so a stored tree is made of
// this package's types only.
//
// # Equality
//
// Equal compares within one concrete type: a foreign value with the
// same accessors is never equal to a *T. Hash is consistent with Equal
// and Clone copies down to expression leaves, which are shared.
//
// # Defaults
//
// DefaultAnchorPoint, DefaultFill, DefaultStroke, DefaultGraphic and
// their siblings are frozen. Their setters fail with ErrFrozen, so they
// can be shared freely. They visit like any other node.
//
// # Concurrency
//
// A tree has a single writer while it is built. Once built it may be
// read from many goroutines; nothing in the package locks.
package sld

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
