package openapi3

// Field describes the shape of a single value in an API declaration: a
// primitive, an array, or a reference to a separately declared component.
// The set of implementations is closed; the dsl compiler switches over it.
type Field interface {
	fieldKind() string
}

// ArrayMode selects how an Array treats its member types.
type ArrayMode int

const (
	ArraySingle ArrayMode = iota // Homogeneous: one member type for every element.
	ArrayMixed                   // Union: elements match one of several member types.
	ArrayAny                     // Arbitrary: elements are unconstrained.
)

// Prim is a built-in primitive data type. The exported vars below are the
// full vocabulary; each carries its OpenAPI type/format pair.
type Prim struct {
	name   string
	typ    string
	format string
}

func (Prim) fieldKind() string { return "primitive" }

// Name returns the declaration name, e.g. "Int64". Path templates resolve
// type annotations against these names.
func (p Prim) Name() string { return p.name }

// Type returns the OpenAPI "type" value, e.g. "integer".
func (p Prim) Type() string { return p.typ }

// Format returns the OpenAPI "format" value, empty for bare types.
func (p Prim) Format() string { return p.format }

// Built-in primitives. Format follows the OpenAPI data-type table:
// bare String/Number/Integer/Boolean carry no format, the refinements
// carry their conventional format names.
var (
	Boolean  = Prim{name: "Boolean", typ: "boolean"}
	String   = Prim{name: "String", typ: "string"}
	Byte     = Prim{name: "Byte", typ: "string", format: "byte"}
	Binary   = Prim{name: "Binary", typ: "string", format: "binary"}
	Date     = Prim{name: "Date", typ: "string", format: "date"}
	DateTime = Prim{name: "DateTime", typ: "string", format: "date-time"}
	Password = Prim{name: "Password", typ: "string", format: "password"}
	Email    = Prim{name: "Email", typ: "string", format: "email"}
	Number   = Prim{name: "Number", typ: "number"}
	Float    = Prim{name: "Float", typ: "number", format: "float"}
	Double   = Prim{name: "Double", typ: "number", format: "double"}
	Integer  = Prim{name: "Integer", typ: "integer"}
	Int32    = Prim{name: "Int32", typ: "integer", format: "int32"}
	Int64    = Prim{name: "Int64", typ: "integer", format: "int64"}
)

var primsByName = func() map[string]Prim {
	all := []Prim{
		Boolean, String, Byte, Binary, Date, DateTime, Password, Email,
		Number, Float, Double, Integer, Int32, Int64,
	}
	m := make(map[string]Prim, len(all))
	for _, p := range all {
		m[p.name] = p
	}
	return m
}()

// FieldByName resolves a built-in primitive by its declaration name, e.g.
// "Int64". Used when resolving typed path-template placeholders.
func FieldByName(name string) (Field, bool) {
	p, ok := primsByName[name]
	if !ok {
		return nil, false
	}
	return p, true
}

// Array is an OpenAPI array type. The array itself is just a container for
// another Field or a set of them, depending on Mode.
type Array struct {
	Mode    ArrayMode
	Members []Field
}

func (Array) fieldKind() string { return "array" }

// ArrayOf returns a homogeneous array of the given member type.
func ArrayOf(member Field) Array {
	return Array{Mode: ArraySingle, Members: []Field{member}}
}

// MixedArrayOf returns a mixed-type array whose elements match one of the
// given member types, in declaration order.
func MixedArrayOf(members ...Field) Array {
	return Array{Mode: ArrayMixed, Members: members}
}

// AnyArray returns an array that accepts elements of any type.
func AnyArray() Array {
	return Array{Mode: ArrayAny}
}

// Component names a user-declared object type. It always compiles to a
// reference; the canonical definition is built once by the registry.
type Component struct {
	Name string
}

func (Component) fieldKind() string { return "component" }

// Ref returns a Field referring to the named component schema.
func Ref(name string) Component { return Component{Name: name} }
