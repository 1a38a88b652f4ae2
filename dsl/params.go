package dsl

import (
	openapi3 "github.com/reoring/openapi3"
	"github.com/reoring/openapi3/i18n"
	"github.com/reoring/openapi3/spec"
)

// Location is a parameter location.
type Location string

const (
	InPath   Location = "path"
	InQuery  Location = "query"
	InHeader Location = "header"
	InCookie Location = "cookie"
)

// ParamOpt configures a parameter declaration.
type ParamOpt func(*spec.Parameter)

// ParamRequired marks the parameter required.
func ParamRequired() ParamOpt {
	return func(p *spec.Parameter) { p.Required = true }
}

// ParamDoc sets the parameter description.
func ParamDoc(description string) ParamOpt {
	return func(p *spec.Parameter) { p.Description = description }
}

// ParamDeprecated marks the parameter deprecated.
func ParamDeprecated() ParamOpt {
	return func(p *spec.Parameter) { p.Deprecated = true }
}

// ParamAllowEmptyValue allows empty-valued query parameters.
func ParamAllowEmptyValue() ParamOpt {
	return func(p *spec.Parameter) { p.AllowEmptyValue = true }
}

// NewParameter builds a parameter whose shape comes from a field type.
// Path parameters are implicitly required regardless of opts.
func NewParameter(in Location, name string, f openapi3.Field, opts ...ParamOpt) (*spec.Parameter, error) {
	if f == nil {
		return nil, paramShapeErr(in, name, "a schema field is required")
	}
	s, err := Compile(f, CompileOpt{})
	if err != nil {
		return nil, err
	}
	p := &spec.Parameter{Name: name, In: string(in), Schema: s}
	for _, o := range opts {
		o(p)
	}
	return finishParam(p, in, name)
}

// NewParameterContent builds a parameter carrying a content map instead of
// a schema, for complex serialization cases.
func NewParameterContent(in Location, name string, content Content, opts ...ParamOpt) (*spec.Parameter, error) {
	if len(content) == 0 {
		return nil, paramShapeErr(in, name, "content must be non-empty")
	}
	cm, err := content.compile()
	if err != nil {
		return nil, err
	}
	p := &spec.Parameter{Name: name, In: string(in), Content: cm}
	for _, o := range opts {
		o(p)
	}
	return finishParam(p, in, name)
}

func finishParam(p *spec.Parameter, in Location, name string) (*spec.Parameter, error) {
	switch in {
	case InPath, InQuery, InHeader, InCookie:
	default:
		return nil, paramShapeErr(in, name, "location must be path, query, header or cookie")
	}
	// Exactly one of schema/content carries the parameter's shape.
	if (p.Schema == nil) == (p.Content == nil) {
		return nil, paramShapeErr(in, name, "exactly one of schema or content")
	}
	if in == InPath {
		p.Required = true
	}
	return p, nil
}

func paramShapeErr(in Location, name, hint string) error {
	return openapi3.Issues{{
		Path:    "/parameters/" + name,
		Code:    openapi3.CodeParameterShape,
		Message: i18n.T(openapi3.CodeParameterShape, nil),
		Hint:    hint,
		Params:  map[string]any{"in": string(in), "name": name},
	}}
}
