// Package spec holds the OpenAPI 3.0 document object model produced by the
// dsl builders. It is a plain tree of structs, ordered maps and scalars:
// every optional member is omitted from serialized output when absent, and
// map keys keep their declaration order so rendered documents are
// reproducible.
//
// The model is deliberately minimal. It covers the objects the builders can
// emit; it is not a general OpenAPI parser.
package spec
