package spec

// Schema is the compiled representation of input and output data types, as
// described in https://swagger.io/specification/#schema-object. One struct
// covers the shapes the compiler emits: primitive, array, object, oneOf
// wrapper and reference. A Schema with Ref set carries nothing else.
type Schema struct {
	Ref string `json:"$ref,omitempty" yaml:"$ref,omitempty"`

	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Format      string `json:"format,omitempty" yaml:"format,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	ReadOnly    bool   `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
	Example     any    `json:"example,omitempty" yaml:"example,omitempty"`

	// Array. An empty Items schema ({}) means the array accepts anything;
	// an Items carrying only OneOf is the mixed-type form.
	Items *Schema `json:"items,omitempty" yaml:"items,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`

	// Object
	Properties *Map[*Schema] `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required   []string      `json:"required,omitempty" yaml:"required,omitempty"`
}

// NewRef returns a reference schema pointing at a components entry, e.g.
// NewRef("#/components/schemas/Pet").
func NewRef(ref string) *Schema { return &Schema{Ref: ref} }

// IsRef reports whether s is a pure reference node.
func (s *Schema) IsRef() bool { return s != nil && s.Ref != "" }
