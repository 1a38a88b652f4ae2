package dsl

import (
	"fmt"

	openapi3 "github.com/reoring/openapi3"
	"github.com/reoring/openapi3/i18n"
	"github.com/reoring/openapi3/spec"
)

// CompileOpt carries the optional per-field metadata attached to a compiled
// schema. Zero values produce no output keys; the document stays free of
// "readOnly: false" style clutter.
type CompileOpt struct {
	Description string
	ReadOnly    bool
	Example     any
}

// Compile turns a field declaration into a schema fragment.
//
// Primitives compile to their type/format pair. Arrays compile to one of
// three forms: a homogeneous array carries its single member's schema under
// items, a mixed array carries a oneOf list, and an arbitrary array
// carries the empty schema. A Component never compiles inline: it always
// becomes a reference, and only the registry builds the canonical
// definition for its name.
func Compile(f openapi3.Field, opt CompileOpt) (*spec.Schema, error) {
	switch t := f.(type) {
	case openapi3.Prim:
		s := &spec.Schema{
			Type:        t.Type(),
			Format:      t.Format(),
			Description: opt.Description,
			Example:     opt.Example,
		}
		if opt.ReadOnly {
			s.ReadOnly = true
		}
		return s, nil
	case openapi3.Array:
		return compileArray(t)
	case openapi3.Component:
		return schemaRef(t.Name), nil
	case nil:
		return nil, openapi3.Issues{{
			Path:    "/",
			Code:    openapi3.CodeInvalidType,
			Message: i18n.T(openapi3.CodeInvalidType, nil),
			Hint:    "nil field declaration",
		}}
	}
	// Reaching here means a Field implementation outside this module's
	// closed set; an authoring bug, not a recoverable condition.
	return nil, openapi3.Issues{{
		Path:    "/",
		Code:    openapi3.CodeInvalidType,
		Message: i18n.T(openapi3.CodeInvalidType, nil),
		Params:  map[string]any{"got": fmt.Sprintf("%T", f)},
	}}
}

func compileArray(a openapi3.Array) (*spec.Schema, error) {
	s := &spec.Schema{Type: "array"}
	switch a.Mode {
	case openapi3.ArrayAny:
		s.Items = &spec.Schema{}
	case openapi3.ArraySingle:
		if len(a.Members) != 1 {
			return nil, openapi3.Issues{{
				Path:    "/",
				Code:    openapi3.CodeInvalidType,
				Message: i18n.T(openapi3.CodeInvalidType, nil),
				Hint:    "a homogeneous array needs exactly one member type",
			}}
		}
		item, err := Compile(a.Members[0], CompileOpt{})
		if err != nil {
			return nil, err
		}
		s.Items = item
	case openapi3.ArrayMixed:
		if len(a.Members) == 0 {
			return nil, openapi3.Issues{{
				Path:    "/",
				Code:    openapi3.CodeInvalidType,
				Message: i18n.T(openapi3.CodeInvalidType, nil),
				Hint:    "a mixed array needs at least one member type",
			}}
		}
		one := make([]*spec.Schema, 0, len(a.Members))
		for _, m := range a.Members {
			item, err := Compile(m, CompileOpt{})
			if err != nil {
				return nil, err
			}
			one = append(one, item)
		}
		s.Items = &spec.Schema{OneOf: one}
	default:
		return nil, openapi3.Issues{{
			Path:    "/",
			Code:    openapi3.CodeInvalidType,
			Message: i18n.T(openapi3.CodeInvalidType, nil),
			Params:  map[string]any{"mode": int(a.Mode)},
		}}
	}
	return s, nil
}

func schemaRef(name string) *spec.Schema {
	return spec.NewRef(refPath(CategorySchemas, name))
}

func refPath(cat Category, name string) string {
	return "#/components/" + string(cat) + "/" + name
}
