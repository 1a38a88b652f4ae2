package dsl

import (
	openapi3 "github.com/reoring/openapi3"
	"github.com/reoring/openapi3/i18n"
	"github.com/reoring/openapi3/internal/pathtmpl"
	"github.com/reoring/openapi3/spec"
)

// PathBuilder is the accumulator for one path group: the operations
// declared together under one URL template. Method-level declarations
// collect fragments; Done parses the template, validates every method,
// emits a single path item into the document's paths map, and always
// resets the accumulator, success or failure.
type PathBuilder struct {
	b        *Builder
	template string

	summary     string
	description string
	params      []*spec.Parameter
	servers     []*spec.Server

	methodOrder []string
	methods     map[string]*OperationBuilder
}

func newPathBuilder(b *Builder, template string) *PathBuilder {
	return &PathBuilder{
		b:        b,
		template: template,
		methods:  map[string]*OperationBuilder{},
	}
}

// Summary sets the path item summary.
func (pb *PathBuilder) Summary(s string) *PathBuilder {
	pb.summary = s
	return pb
}

// Doc sets the path item description.
func (pb *PathBuilder) Doc(s string) *PathBuilder {
	pb.description = s
	return pb
}

// Servers overrides the servers for this path item.
func (pb *PathBuilder) Servers(servers ...*spec.Server) *PathBuilder {
	pb.servers = append(pb.servers, servers...)
	return pb
}

// Param declares a path-item-level parameter shared by all operations of
// the group.
func (pb *PathBuilder) Param(in Location, name string, f openapi3.Field, opts ...ParamOpt) error {
	p, err := NewParameter(in, name, f, opts...)
	if err != nil {
		return err
	}
	pb.params = append(pb.params, p)
	return nil
}

func (pb *PathBuilder) method(name string) *OperationBuilder {
	if o, ok := pb.methods[name]; ok {
		return o
	}
	o := newOperationBuilder(pb, name)
	pb.methods[name] = o
	pb.methodOrder = append(pb.methodOrder, name)
	return o
}

// Get returns the accumulator for the group's GET operation, creating it
// on first use.
func (pb *PathBuilder) Get() *OperationBuilder { return pb.method("get") }

// Put returns the accumulator for the group's PUT operation.
func (pb *PathBuilder) Put() *OperationBuilder { return pb.method("put") }

// Post returns the accumulator for the group's POST operation.
func (pb *PathBuilder) Post() *OperationBuilder { return pb.method("post") }

// Delete returns the accumulator for the group's DELETE operation.
func (pb *PathBuilder) Delete() *OperationBuilder { return pb.method("delete") }

// Options returns the accumulator for the group's OPTIONS operation.
func (pb *PathBuilder) Options() *OperationBuilder { return pb.method("options") }

// Head returns the accumulator for the group's HEAD operation.
func (pb *PathBuilder) Head() *OperationBuilder { return pb.method("head") }

// Patch returns the accumulator for the group's PATCH operation.
func (pb *PathBuilder) Patch() *OperationBuilder { return pb.method("patch") }

// Trace returns the accumulator for the group's TRACE operation.
func (pb *PathBuilder) Trace() *OperationBuilder { return pb.method("trace") }

// Done declares the path group: it parses the template, resolves implicit
// path parameters, validates every accumulated method, and writes one path
// item into the document's paths map. The accumulated state is released on
// every exit path; after a failed Done the paths map is untouched and the
// builder is ready for a fresh group.
func (pb *PathBuilder) Done() error {
	defer pb.flush()
	if err := pb.b.declarable(); err != nil {
		return err
	}
	normalized, pathParams, err := pb.resolveTemplate()
	if err != nil {
		return err
	}

	item := &spec.PathItem{
		Summary:     pb.summary,
		Description: pb.description,
		Servers:     pb.servers,
	}
	if len(pb.params) > 0 {
		item.Parameters = pb.params
	}
	for _, m := range pb.methodOrder {
		op, err := pb.methods[m].build(pathParams)
		if err != nil {
			return err
		}
		item.SetMethod(m, op)
	}

	if existing, ok := pb.b.paths.Get(normalized); ok {
		mergePathItem(existing, item, pb.methodOrder)
		return nil
	}
	pb.b.paths.Set(normalized, item)
	return nil
}

// resolveTemplate parses the URL template and turns each placeholder into
// an implicit, required path parameter. Typed placeholders resolve against
// the built-in field table first, then against previously declared
// parameters components (as a reference); anything else fails.
func (pb *PathBuilder) resolveTemplate() (string, []*spec.Parameter, error) {
	normalized, tmplParams, err := pathtmpl.Parse(pb.template)
	if err != nil {
		return "", nil, openapi3.Issues{{
			Path:    "/paths/" + pb.template,
			Code:    openapi3.CodeUnknownPathParamType,
			Message: i18n.T(openapi3.CodeUnknownPathParamType, nil),
			Cause:   err,
		}}
	}
	var params []*spec.Parameter
	for _, tp := range tmplParams {
		var f openapi3.Field
		switch {
		case tp.TypeName == "":
			// Untyped placeholders default to a plain string.
			f = openapi3.String
		default:
			if bf, ok := openapi3.FieldByName(tp.TypeName); ok {
				f = bf
				break
			}
			if pb.b.registry.Has(CategoryParameters, tp.TypeName) {
				params = append(params, &spec.Parameter{
					Ref: refPath(CategoryParameters, tp.TypeName),
				})
				continue
			}
			return "", nil, openapi3.Issues{{
				Path:    "/paths/" + pb.template,
				Code:    openapi3.CodeUnknownPathParamType,
				Message: i18n.T(openapi3.CodeUnknownPathParamType, nil),
				Params:  map[string]any{"type": tp.TypeName, "name": tp.Name},
			}}
		}
		if f != nil {
			p, err := NewParameter(InPath, tp.Name, f)
			if err != nil {
				return "", nil, err
			}
			params = append(params, p)
		}
	}
	return normalized, params, nil
}

// flush releases the group's accumulated state so the next group starts
// empty even when Done failed.
func (pb *PathBuilder) flush() {
	pb.summary = ""
	pb.description = ""
	pb.params = nil
	pb.servers = nil
	pb.methodOrder = nil
	pb.methods = map[string]*OperationBuilder{}
}

// mergePathItem folds a later declaration for an already-registered
// template into the existing entry: each redeclared method replaces the
// previous definition, and group metadata wins when the new declaration
// sets it.
func mergePathItem(dst, src *spec.PathItem, methods []string) {
	for _, m := range methods {
		dst.SetMethod(m, src.Method(m))
	}
	if src.Summary != "" {
		dst.Summary = src.Summary
	}
	if src.Description != "" {
		dst.Description = src.Description
	}
	if len(src.Parameters) > 0 {
		dst.Parameters = src.Parameters
	}
	if len(src.Servers) > 0 {
		dst.Servers = src.Servers
	}
}
