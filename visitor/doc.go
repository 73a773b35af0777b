// Package visitor holds traversals of sld style trees built on the
// sld.Visitor and sld.DataVisitor protocols.
//
//   - Printer writes an indented outline of a tree.
//   - PropertyCollector lists the feature attributes a tree reads.
//   - Duplicator rebuilds a tree through the public constructors and
//     setters, sharing nothing but expression and filter leaves.
package visitor
