// Package dsl turns ordered declarations of types, paths and operations
// into a spec.Document.
//
// A Builder is one document-build session. It owns the component registry
// and the per-path operation accumulators; two Builders never share state,
// so unrelated documents built in the same process cannot leak component
// names into each other.
//
// Declarations run in caller order and that order is preserved everywhere
// it is visible: object properties, parameter lists, response maps, the
// paths map and the components maps all serialize in declaration order.
// Authoring mistakes surface as openapi3.Issues from the declaration call
// that commits the offending fragment; they are never deferred to
// rendering time, with the single exception of the info title/version
// check at Document().
package dsl
