package dsl

import (
	openapi3 "github.com/reoring/openapi3"
	"github.com/reoring/openapi3/i18n"
	"github.com/reoring/openapi3/spec"
)

// BodyOpt configures a request-body declaration.
type BodyOpt func(*spec.RequestBody)

// BodyDoc sets the request body description.
func BodyDoc(description string) BodyOpt {
	return func(b *spec.RequestBody) { b.Description = description }
}

// BodyRequired marks the request body required.
func BodyRequired() BodyOpt {
	return func(b *spec.RequestBody) { b.Required = true }
}

// NewRequestBody builds a request body from a non-empty content list; each
// media type's field compiles independently.
func NewRequestBody(content Content, opts ...BodyOpt) (*spec.RequestBody, error) {
	if len(content) == 0 {
		return nil, openapi3.Issues{{
			Path:    "/requestBody",
			Code:    openapi3.CodeParameterShape,
			Message: i18n.T(openapi3.CodeParameterShape, nil),
			Hint:    "request body content must be non-empty",
		}}
	}
	cm, err := content.compile()
	if err != nil {
		return nil, err
	}
	b := &spec.RequestBody{Content: cm}
	for _, o := range opts {
		o(b)
	}
	return b, nil
}
