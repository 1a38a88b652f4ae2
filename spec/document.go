package spec

// Contact describes the contact information for the exposed API, as
// described in https://swagger.io/specification/#contact-object.
type Contact struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// License describes license information for the exposed API, as described
// in https://swagger.io/specification/#license-object.
type License struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Info provides metadata about the API, as described in
// https://swagger.io/specification/#info-object. Title and Version are
// required; the assembler refuses to materialize without them.
type Info struct {
	Title          string   `json:"title" yaml:"title"`
	Version        string   `json:"version" yaml:"version"`
	Description    string   `json:"description,omitempty" yaml:"description,omitempty"`
	TermsOfService string   `json:"termsOfService,omitempty" yaml:"termsOfService,omitempty"`
	Contact        *Contact `json:"contact,omitempty" yaml:"contact,omitempty"`
	License        *License `json:"license,omitempty" yaml:"license,omitempty"`
}

// ServerVariable represents a server variable for URL template
// substitution, as described in
// https://swagger.io/specification/#server-variable-object.
type ServerVariable struct {
	Default     string   `json:"default" yaml:"default"`
	Enum        []string `json:"enum,omitempty" yaml:"enum,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// Server represents a server, as described in
// https://swagger.io/specification/#server-object.
type Server struct {
	URL         string               `json:"url" yaml:"url"`
	Description string               `json:"description,omitempty" yaml:"description,omitempty"`
	Variables   *Map[*ServerVariable] `json:"variables,omitempty" yaml:"variables,omitempty"`
}

// Tag adds metadata to a single tag used by operations, as described in
// https://swagger.io/specification/#tag-object.
type Tag struct {
	Name         string        `json:"name" yaml:"name"`
	Description  string        `json:"description,omitempty" yaml:"description,omitempty"`
	ExternalDocs *ExternalDocs `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`
}

// ExternalDocs references an external resource for extended documentation,
// as described in https://swagger.io/specification/#external-documentation-object.
type ExternalDocs struct {
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Document is the root OpenAPI object. Field order here is serialization
// order for both JSON and YAML.
type Document struct {
	OpenAPI      string                `json:"openapi" yaml:"openapi"`
	Info         *Info                 `json:"info" yaml:"info"`
	Servers      []*Server             `json:"servers,omitempty" yaml:"servers,omitempty"`
	Paths        *Map[*PathItem]       `json:"paths" yaml:"paths"`
	Components   *Components           `json:"components,omitempty" yaml:"components,omitempty"`
	Security     []map[string][]string `json:"security,omitempty" yaml:"security,omitempty"`
	Tags         []*Tag                `json:"tags,omitempty" yaml:"tags,omitempty"`
	ExternalDocs *ExternalDocs         `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`
}
