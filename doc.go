// Package openapi3 provides:
//
// - A small field algebra (primitives, arrays, component references) for
//   describing the shapes that appear in an HTTP API
// - A stable error model via Issues (path, code, message)
// - The dsl package, which compiles field declarations into an OpenAPI 3.0
//   document through an ordered builder session
// - The render package, which serializes the resulting document to JSON or
//   YAML with declaration order preserved
//
// Design policy:
// - Keep only public types in the root package; builders live under dsl/
//   and non-public detail under internal/.
// - A Builder session owns all mutable state; two sessions never share
//   component registries.
// - Declarations execute in caller order and report authoring mistakes
//   synchronously; nothing is retried or deferred to serialization time.
//
// Typical usage:
//
//	b := dsl.New()
//	pet := dsl.Object().
//		Field("name", openapi3.String).Required().
//		Field("tag", openapi3.String).Optional()
//	ref, err := b.Components().Schema("Pet", pet)
//
//	pets := b.Path("/pets/{id:Int64}")
//	get := pets.Get().Summary("Find a pet")
//	err = get.Response("200", "the pet", dsl.WithContent(dsl.JSON(openapi3.Ref("Pet"))))
//	err = pets.Done()
//
//	doc, err := b.Document()
//	out, err := render.YAML(doc)
package openapi3
