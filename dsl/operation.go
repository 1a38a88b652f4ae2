package dsl

import (
	openapi3 "github.com/reoring/openapi3"
	"github.com/reoring/openapi3/i18n"
	"github.com/reoring/openapi3/spec"
)

// OperationBuilder accumulates the fragments of one HTTP method on a path
// group: metadata, parameters, at most one request body, and responses.
// Nothing is validated against the path until the group's Done call.
type OperationBuilder struct {
	pb     *PathBuilder
	method string

	tags        []string
	summary     string
	description string
	operationID string
	deprecated  bool

	params    []*spec.Parameter
	body      *spec.RequestBody
	responses *spec.Map[*spec.Response]
}

func newOperationBuilder(pb *PathBuilder, method string) *OperationBuilder {
	return &OperationBuilder{
		pb:        pb,
		method:    method,
		responses: spec.NewMap[*spec.Response](),
	}
}

// Summary sets the operation summary.
func (o *OperationBuilder) Summary(s string) *OperationBuilder {
	o.summary = s
	return o
}

// Doc sets the operation description.
func (o *OperationBuilder) Doc(s string) *OperationBuilder {
	o.description = s
	return o
}

// Tags appends operation tags.
func (o *OperationBuilder) Tags(tags ...string) *OperationBuilder {
	o.tags = append(o.tags, tags...)
	return o
}

// OperationID sets the operation's unique identifier.
func (o *OperationBuilder) OperationID(id string) *OperationBuilder {
	o.operationID = id
	return o
}

// Deprecated marks the operation deprecated.
func (o *OperationBuilder) Deprecated() *OperationBuilder {
	o.deprecated = true
	return o
}

// Param declares a parameter. Parameters accumulate in declaration order;
// a second declaration never overwrites an earlier one.
func (o *OperationBuilder) Param(in Location, name string, f openapi3.Field, opts ...ParamOpt) error {
	p, err := NewParameter(in, name, f, opts...)
	if err != nil {
		return err
	}
	o.params = append(o.params, p)
	return nil
}

// ParamContent declares a parameter carrying a content map.
func (o *OperationBuilder) ParamContent(in Location, name string, content Content, opts ...ParamOpt) error {
	p, err := NewParameterContent(in, name, content, opts...)
	if err != nil {
		return err
	}
	o.params = append(o.params, p)
	return nil
}

// QueryParam declares a query parameter.
func (o *OperationBuilder) QueryParam(name string, f openapi3.Field, opts ...ParamOpt) error {
	return o.Param(InQuery, name, f, opts...)
}

// HeaderParam declares a header parameter.
func (o *OperationBuilder) HeaderParam(name string, f openapi3.Field, opts ...ParamOpt) error {
	return o.Param(InHeader, name, f, opts...)
}

// CookieParam declares a cookie parameter.
func (o *OperationBuilder) CookieParam(name string, f openapi3.Field, opts ...ParamOpt) error {
	return o.Param(InCookie, name, f, opts...)
}

// ParamRef declares a parameter by reference to a components/parameters
// entry.
func (o *OperationBuilder) ParamRef(name string) *OperationBuilder {
	o.params = append(o.params, &spec.Parameter{Ref: refPath(CategoryParameters, name)})
	return o
}

// Body declares the operation's request body. A method has at most one;
// the second declaration fails.
func (o *OperationBuilder) Body(content Content, opts ...BodyOpt) error {
	if o.body != nil {
		return o.dupBodyErr()
	}
	b, err := NewRequestBody(content, opts...)
	if err != nil {
		return err
	}
	o.body = b
	return nil
}

// BodyRef declares the request body by reference to a
// components/requestBodies entry.
func (o *OperationBuilder) BodyRef(name string) error {
	if o.body != nil {
		return o.dupBodyErr()
	}
	o.body = &spec.RequestBody{Ref: refPath(CategoryRequestBodies, name)}
	return nil
}

// Response declares a response for a status key. Redeclaring a status
// replaces the earlier response at its original position.
func (o *OperationBuilder) Response(status, description string, opts ...ResponseOpt) error {
	r, err := NewResponse(status, description, opts...)
	if err != nil {
		return err
	}
	o.responses.Set(status, r)
	return nil
}

// ResponseRef declares a response by reference to a components/responses
// entry.
func (o *OperationBuilder) ResponseRef(status, name string) error {
	if err := CheckStatus(status); err != nil {
		return err
	}
	o.responses.Set(status, &spec.Response{Ref: refPath(CategoryResponses, name)})
	return nil
}

func (o *OperationBuilder) dupBodyErr() error {
	return openapi3.Issues{{
		Path:    "/paths/" + o.pb.template + "/" + o.method,
		Code:    openapi3.CodeDuplicateRequestBody,
		Message: i18n.T(openapi3.CodeDuplicateRequestBody, nil),
		Params:  map[string]any{"method": o.method},
	}}
}

// build materializes the operation node, appending the group's implicit
// path parameters after the method-declared ones.
func (o *OperationBuilder) build(pathParams []*spec.Parameter) (*spec.Operation, error) {
	if o.method == "get" && o.body != nil {
		return nil, openapi3.Issues{{
			Path:    "/paths/" + o.pb.template + "/get",
			Code:    openapi3.CodeGetRequestBody,
			Message: i18n.T(openapi3.CodeGetRequestBody, nil),
		}}
	}
	if o.responses.Len() == 0 {
		return nil, openapi3.Issues{{
			Path:    "/paths/" + o.pb.template + "/" + o.method,
			Code:    openapi3.CodeMissingResponse,
			Message: i18n.T(openapi3.CodeMissingResponse, nil),
			Params:  map[string]any{"method": o.method},
		}}
	}
	op := &spec.Operation{
		Tags:        o.tags,
		Summary:     o.summary,
		Description: o.description,
		OperationID: o.operationID,
		RequestBody: o.body,
		Responses:   o.responses,
		Deprecated:  o.deprecated,
	}
	if len(o.params) > 0 || len(pathParams) > 0 {
		merged := make([]*spec.Parameter, 0, len(o.params)+len(pathParams))
		merged = append(merged, o.params...)
		merged = append(merged, pathParams...)
		op.Parameters = merged
	}
	return op, nil
}
