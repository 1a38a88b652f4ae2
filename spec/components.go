package spec

// Components holds the reusable objects of the document, as described in
// https://swagger.io/specification/#components-object. Entries have no
// effect until something references them via "#/components/<category>/<name>".
// Each category is omitted from output when empty.
type Components struct {
	Schemas         *Map[*Schema]      `json:"schemas,omitempty" yaml:"schemas,omitempty"`
	Responses       *Map[*Response]    `json:"responses,omitempty" yaml:"responses,omitempty"`
	Parameters      *Map[*Parameter]   `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Examples        *Map[any]          `json:"examples,omitempty" yaml:"examples,omitempty"`
	RequestBodies   *Map[*RequestBody] `json:"requestBodies,omitempty" yaml:"requestBodies,omitempty"`
	Headers         *Map[*Header]      `json:"headers,omitempty" yaml:"headers,omitempty"`
	SecuritySchemes *Map[any]          `json:"securitySchemes,omitempty" yaml:"securitySchemes,omitempty"`
	Links           *Map[any]          `json:"links,omitempty" yaml:"links,omitempty"`
	Callbacks       *Map[any]          `json:"callbacks,omitempty" yaml:"callbacks,omitempty"`
}

// Empty reports whether every category is empty.
func (c *Components) Empty() bool {
	if c == nil {
		return true
	}
	return c.Schemas.Len() == 0 &&
		c.Responses.Len() == 0 &&
		c.Parameters.Len() == 0 &&
		c.Examples.Len() == 0 &&
		c.RequestBodies.Len() == 0 &&
		c.Headers.Len() == 0 &&
		c.SecuritySchemes.Len() == 0 &&
		c.Links.Len() == 0 &&
		c.Callbacks.Len() == 0
}
