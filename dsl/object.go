package dsl

import (
	openapi3 "github.com/reoring/openapi3"
	"github.com/reoring/openapi3/spec"
)

type objectField struct {
	name     string
	field    openapi3.Field
	required bool
	opt      CompileOpt
}

// ObjectBuilder accumulates the property declarations of a named object
// type. Properties keep declaration order; the required list keeps the
// order of the fields marked required.
type ObjectBuilder struct {
	description string
	fields      []objectField
}

// FieldStep narrows the builder to the most recently declared field so its
// metadata can be chained before moving on.
type FieldStep struct {
	b *ObjectBuilder
	i int
}

// Object creates a new object builder.
func Object() *ObjectBuilder {
	return &ObjectBuilder{}
}

// Doc sets the object's description.
func (b *ObjectBuilder) Doc(description string) *ObjectBuilder {
	b.description = description
	return b
}

// Field declares a property. A redeclared name replaces the earlier
// declaration in place.
func (b *ObjectBuilder) Field(name string, f openapi3.Field) *FieldStep {
	for i := range b.fields {
		if b.fields[i].name == name {
			b.fields[i] = objectField{name: name, field: f}
			return &FieldStep{b: b, i: i}
		}
	}
	b.fields = append(b.fields, objectField{name: name, field: f})
	return &FieldStep{b: b, i: len(b.fields) - 1}
}

// Required marks the field as required and returns the builder.
func (s *FieldStep) Required() *ObjectBuilder {
	s.b.fields[s.i].required = true
	return s.b
}

// Optional marks the field as optional (the default) and returns the builder.
func (s *FieldStep) Optional() *ObjectBuilder {
	s.b.fields[s.i].required = false
	return s.b
}

// Doc sets the field's description.
func (s *FieldStep) Doc(description string) *FieldStep {
	s.b.fields[s.i].opt.Description = description
	return s
}

// ReadOnly marks the field read-only.
func (s *FieldStep) ReadOnly() *FieldStep {
	s.b.fields[s.i].opt.ReadOnly = true
	return s
}

// Example attaches an example value.
func (s *FieldStep) Example(v any) *FieldStep {
	s.b.fields[s.i].opt.Example = v
	return s
}

// Field starts the next property, leaving the current one optional.
func (s *FieldStep) Field(name string, f openapi3.Field) *FieldStep {
	return s.b.Field(name, f)
}

// Build compiles the accumulated fields into an object schema. Component
// members compile to references; the registry resolves them when their own
// declarations run.
func (b *ObjectBuilder) Build() (*spec.Schema, error) {
	s := &spec.Schema{
		Type:        "object",
		Description: b.description,
		Properties:  spec.NewMap[*spec.Schema](),
	}
	for _, f := range b.fields {
		prop, err := Compile(f.field, f.opt)
		if err != nil {
			return nil, err
		}
		s.Properties.Set(f.name, prop)
		if f.required {
			s.Required = append(s.Required, f.name)
		}
	}
	return s, nil
}
