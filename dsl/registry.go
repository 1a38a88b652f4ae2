package dsl

import (
	"fmt"
	"reflect"

	openapi3 "github.com/reoring/openapi3"
	"github.com/reoring/openapi3/i18n"
	"github.com/reoring/openapi3/spec"
)

// Category names a components namespace. The same component name may
// appear in several categories without conflict.
type Category string

const (
	CategorySchemas         Category = "schemas"
	CategoryParameters      Category = "parameters"
	CategoryResponses       Category = "responses"
	CategoryRequestBodies   Category = "requestBodies"
	CategoryHeaders         Category = "headers"
	CategoryExamples        Category = "examples"
	CategoryLinks           Category = "links"
	CategoryCallbacks       Category = "callbacks"
	CategorySecuritySchemes Category = "securitySchemes"
)

// Registry is the per-session component store. A component's canonical
// definition is built at most once; every other consumer gets a reference
// node. References may be handed out before the definition exists, which
// is what makes bottom-up declaration order work: an outer object can be
// compiled while its nested component is still being declared.
type Registry struct {
	schemas         *spec.Map[*spec.Schema]
	parameters      *spec.Map[*spec.Parameter]
	responses       *spec.Map[*spec.Response]
	requestBodies   *spec.Map[*spec.RequestBody]
	headers         *spec.Map[*spec.Header]
	examples        *spec.Map[any]
	links           *spec.Map[any]
	callbacks       *spec.Map[any]
	securitySchemes *spec.Map[any]

	// guard rejects declarations once the owning builder has
	// materialized. Nil for standalone registries.
	guard func() error
}

// NewRegistry returns an empty standalone registry. Builder sessions
// create their own; use this directly only when no document assembly is
// involved.
func NewRegistry() *Registry {
	return &Registry{
		schemas:         spec.NewMap[*spec.Schema](),
		parameters:      spec.NewMap[*spec.Parameter](),
		responses:       spec.NewMap[*spec.Response](),
		requestBodies:   spec.NewMap[*spec.RequestBody](),
		headers:         spec.NewMap[*spec.Header](),
		examples:        spec.NewMap[any](),
		links:           spec.NewMap[any](),
		callbacks:       spec.NewMap[any](),
		securitySchemes: spec.NewMap[any](),
	}
}

// Reference returns a reference node for a component, whether or not its
// canonical definition has been registered yet. Structurally identical for
// every call with the same arguments.
func (r *Registry) Reference(cat Category, name string) *spec.Schema {
	return spec.NewRef(refPath(cat, name))
}

// Has reports whether a canonical definition exists for (cat, name).
func (r *Registry) Has(cat Category, name string) bool {
	node, _ := r.lookup(cat, name)
	return node != nil
}

// Register stores the canonical definition for (cat, name), invoking build
// at most once for a fresh name, and returns a reference node.
//
// Re-registering a name whose definition already materialized builds the
// candidate and compares: a structurally identical result is a no-op,
// a different one fails with duplicate_component.
func (r *Registry) Register(cat Category, name string, build func() (any, error)) (*spec.Schema, error) {
	if r.guard != nil {
		if err := r.guard(); err != nil {
			return nil, err
		}
	}
	existing, err := r.lookup(cat, name)
	if err != nil {
		return nil, err
	}
	node, err := build()
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if reflect.DeepEqual(existing, node) {
			return r.Reference(cat, name), nil
		}
		return nil, openapi3.Issues{{
			Path:    "/components/" + string(cat) + "/" + name,
			Code:    openapi3.CodeDuplicateComponent,
			Message: i18n.T(openapi3.CodeDuplicateComponent, nil),
			Params:  map[string]any{"category": string(cat), "name": name},
		}}
	}
	if err := r.store(cat, name, node); err != nil {
		return nil, err
	}
	return r.Reference(cat, name), nil
}

// Schema registers an object type's canonical schema.
func (r *Registry) Schema(name string, b *ObjectBuilder) (*spec.Schema, error) {
	return r.Register(CategorySchemas, name, func() (any, error) {
		return b.Build()
	})
}

// Parameter registers a reusable parameter built from a location, a wire
// name and a field type.
func (r *Registry) Parameter(name string, in Location, paramName string, f openapi3.Field, opts ...ParamOpt) (*spec.Schema, error) {
	return r.Register(CategoryParameters, name, func() (any, error) {
		return NewParameter(in, paramName, f, opts...)
	})
}

// Response registers a reusable response.
func (r *Registry) Response(name, description string, opts ...ResponseOpt) (*spec.Schema, error) {
	return r.Register(CategoryResponses, name, func() (any, error) {
		return NewResponse("default", description, opts...)
	})
}

// RequestBody registers a reusable request body.
func (r *Registry) RequestBody(name string, content Content, opts ...BodyOpt) (*spec.Schema, error) {
	return r.Register(CategoryRequestBodies, name, func() (any, error) {
		return NewRequestBody(content, opts...)
	})
}

func (r *Registry) lookup(cat Category, name string) (any, error) {
	switch cat {
	case CategorySchemas:
		if v, ok := r.schemas.Get(name); ok {
			return v, nil
		}
	case CategoryParameters:
		if v, ok := r.parameters.Get(name); ok {
			return v, nil
		}
	case CategoryResponses:
		if v, ok := r.responses.Get(name); ok {
			return v, nil
		}
	case CategoryRequestBodies:
		if v, ok := r.requestBodies.Get(name); ok {
			return v, nil
		}
	case CategoryHeaders:
		if v, ok := r.headers.Get(name); ok {
			return v, nil
		}
	case CategoryExamples:
		if v, ok := r.examples.Get(name); ok {
			return v, nil
		}
	case CategoryLinks:
		if v, ok := r.links.Get(name); ok {
			return v, nil
		}
	case CategoryCallbacks:
		if v, ok := r.callbacks.Get(name); ok {
			return v, nil
		}
	case CategorySecuritySchemes:
		if v, ok := r.securitySchemes.Get(name); ok {
			return v, nil
		}
	default:
		return nil, r.badCategory(cat)
	}
	return nil, nil
}

func (r *Registry) store(cat Category, name string, node any) error {
	mismatch := func(want string) error {
		return openapi3.Issues{{
			Path:    "/components/" + string(cat) + "/" + name,
			Code:    openapi3.CodeInvalidType,
			Message: i18n.T(openapi3.CodeInvalidType, nil),
			Hint:    "category " + string(cat) + " holds " + want,
			Params:  map[string]any{"got": fmt.Sprintf("%T", node)},
		}}
	}
	switch cat {
	case CategorySchemas:
		v, ok := node.(*spec.Schema)
		if !ok {
			return mismatch("*spec.Schema")
		}
		r.schemas.Set(name, v)
	case CategoryParameters:
		v, ok := node.(*spec.Parameter)
		if !ok {
			return mismatch("*spec.Parameter")
		}
		r.parameters.Set(name, v)
	case CategoryResponses:
		v, ok := node.(*spec.Response)
		if !ok {
			return mismatch("*spec.Response")
		}
		r.responses.Set(name, v)
	case CategoryRequestBodies:
		v, ok := node.(*spec.RequestBody)
		if !ok {
			return mismatch("*spec.RequestBody")
		}
		r.requestBodies.Set(name, v)
	case CategoryHeaders:
		v, ok := node.(*spec.Header)
		if !ok {
			return mismatch("*spec.Header")
		}
		r.headers.Set(name, v)
	case CategoryExamples:
		r.examples.Set(name, node)
	case CategoryLinks:
		r.links.Set(name, node)
	case CategoryCallbacks:
		r.callbacks.Set(name, node)
	case CategorySecuritySchemes:
		r.securitySchemes.Set(name, node)
	default:
		return r.badCategory(cat)
	}
	return nil
}

func (r *Registry) badCategory(cat Category) error {
	return openapi3.Issues{{
		Path:    "/components/" + string(cat),
		Code:    openapi3.CodeInvalidType,
		Message: i18n.T(openapi3.CodeInvalidType, nil),
		Hint:    "unknown components category",
	}}
}

// components assembles the registry into the document's components
// section; nil when every category is empty so the section is omitted.
func (r *Registry) components() *spec.Components {
	c := &spec.Components{}
	if r.schemas.Len() > 0 {
		c.Schemas = r.schemas
	}
	if r.responses.Len() > 0 {
		c.Responses = r.responses
	}
	if r.parameters.Len() > 0 {
		c.Parameters = r.parameters
	}
	if r.examples.Len() > 0 {
		c.Examples = r.examples
	}
	if r.requestBodies.Len() > 0 {
		c.RequestBodies = r.requestBodies
	}
	if r.headers.Len() > 0 {
		c.Headers = r.headers
	}
	if r.securitySchemes.Len() > 0 {
		c.SecuritySchemes = r.securitySchemes
	}
	if r.links.Len() > 0 {
		c.Links = r.links
	}
	if r.callbacks.Len() > 0 {
		c.Callbacks = r.callbacks
	}
	if c.Empty() {
		return nil
	}
	return c
}
