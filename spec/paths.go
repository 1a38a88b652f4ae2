package spec

// Media type constants for content maps.
const (
	MediaJSON       = "application/json"
	MediaXML        = "application/xml"
	MediaPDF        = "application/pdf"
	MediaURLEncoded = "application/x-www-form-urlencoded"
	MediaMultipart  = "multipart/form-data"
	MediaPlain      = "text/plain; charset=utf-8"
	MediaHTML       = "text/html"
	MediaPNG        = "image/png"
)

// MediaType wraps the schema for a single media type, as described in
// https://swagger.io/specification/#media-type-object.
type MediaType struct {
	Schema *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// Parameter describes a single operation parameter, as described in
// https://swagger.io/specification/#parameter-object. A Parameter with Ref
// set points at a components/parameters entry and carries nothing else.
// Exactly one of Schema or Content is set on concrete parameters.
type Parameter struct {
	Ref string `json:"$ref,omitempty" yaml:"$ref,omitempty"`

	Name            string          `json:"name,omitempty" yaml:"name,omitempty"`
	In              string          `json:"in,omitempty" yaml:"in,omitempty"`
	Description     string          `json:"description,omitempty" yaml:"description,omitempty"`
	Required        bool            `json:"required,omitempty" yaml:"required,omitempty"`
	Deprecated      bool            `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	AllowEmptyValue bool            `json:"allowEmptyValue,omitempty" yaml:"allowEmptyValue,omitempty"`
	Schema          *Schema         `json:"schema,omitempty" yaml:"schema,omitempty"`
	Content         *Map[*MediaType] `json:"content,omitempty" yaml:"content,omitempty"`
}

// Header describes a response header, as described in
// https://swagger.io/specification/#header-object. It follows the
// Parameter structure without name and location.
type Header struct {
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool    `json:"required,omitempty" yaml:"required,omitempty"`
	Schema      *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// RequestBody describes a single request body, as described in
// https://swagger.io/specification/#request-body-object. A RequestBody
// with Ref set points at a components/requestBodies entry. The builders
// guarantee concrete bodies carry a non-empty content map.
type RequestBody struct {
	Ref string `json:"$ref,omitempty" yaml:"$ref,omitempty"`

	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Content     *Map[*MediaType] `json:"content,omitempty" yaml:"content,omitempty"`
	Required    bool            `json:"required,omitempty" yaml:"required,omitempty"`
}

// Response describes a single response from an operation, as described in
// https://swagger.io/specification/#response-object. A Response with Ref
// set points at a components/responses entry. Description is the one piece
// of metadata the format makes mandatory; the builders enforce it for
// concrete responses.
type Response struct {
	Ref string `json:"$ref,omitempty" yaml:"$ref,omitempty"`

	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Headers     *Map[*Header]    `json:"headers,omitempty" yaml:"headers,omitempty"`
	Content     *Map[*MediaType] `json:"content,omitempty" yaml:"content,omitempty"`
}

// Operation describes a single API operation on a path, as described in
// https://swagger.io/specification/#operation-object.
type Operation struct {
	Tags        []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
	Summary     string         `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	OperationID string         `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Parameters  []*Parameter   `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody *RequestBody   `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   *Map[*Response] `json:"responses" yaml:"responses"`
	Deprecated  bool           `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
}

// PathItem describes the operations available on a single path, as
// described in https://swagger.io/specification/#path-item-object.
type PathItem struct {
	Summary     string       `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Get         *Operation   `json:"get,omitempty" yaml:"get,omitempty"`
	Put         *Operation   `json:"put,omitempty" yaml:"put,omitempty"`
	Post        *Operation   `json:"post,omitempty" yaml:"post,omitempty"`
	Delete      *Operation   `json:"delete,omitempty" yaml:"delete,omitempty"`
	Options     *Operation   `json:"options,omitempty" yaml:"options,omitempty"`
	Head        *Operation   `json:"head,omitempty" yaml:"head,omitempty"`
	Patch       *Operation   `json:"patch,omitempty" yaml:"patch,omitempty"`
	Trace       *Operation   `json:"trace,omitempty" yaml:"trace,omitempty"`
	Parameters  []*Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Servers     []*Server    `json:"servers,omitempty" yaml:"servers,omitempty"`
}

// Method returns the operation for an HTTP method name ("get", "put", ...)
// or nil.
func (p *PathItem) Method(name string) *Operation {
	switch name {
	case "get":
		return p.Get
	case "put":
		return p.Put
	case "post":
		return p.Post
	case "delete":
		return p.Delete
	case "options":
		return p.Options
	case "head":
		return p.Head
	case "patch":
		return p.Patch
	case "trace":
		return p.Trace
	}
	return nil
}

// SetMethod installs op under an HTTP method name, replacing any previous
// definition for that method.
func (p *PathItem) SetMethod(name string, op *Operation) {
	switch name {
	case "get":
		p.Get = op
	case "put":
		p.Put = op
	case "post":
		p.Post = op
	case "delete":
		p.Delete = op
	case "options":
		p.Options = op
	case "head":
		p.Head = op
	case "patch":
		p.Patch = op
	case "trace":
		p.Trace = op
	}
}
