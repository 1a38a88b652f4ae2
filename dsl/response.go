package dsl

import (
	"strconv"

	openapi3 "github.com/reoring/openapi3"
	"github.com/reoring/openapi3/i18n"
	"github.com/reoring/openapi3/spec"
)

// ResponseOpt configures a response declaration.
type ResponseOpt func(*responseDecl)

type responseDecl struct {
	content Content
	headers []headerDecl
}

type headerDecl struct {
	name        string
	field       openapi3.Field
	description string
}

// WithContent attaches a content map to the response.
func WithContent(c Content) ResponseOpt {
	return func(d *responseDecl) { d.content = append(d.content, c...) }
}

// WithHeader attaches a response header described by a field type.
func WithHeader(name string, f openapi3.Field, description string) ResponseOpt {
	return func(d *responseDecl) {
		d.headers = append(d.headers, headerDecl{name: name, field: f, description: description})
	}
}

// NewResponse builds a response for a status key. The key must be the
// literal "default" or an integer status in [100,599]; the description is
// mandatory.
func NewResponse(status, description string, opts ...ResponseOpt) (*spec.Response, error) {
	if err := CheckStatus(status); err != nil {
		return nil, err
	}
	if description == "" {
		return nil, openapi3.Issues{{
			Path:    "/responses/" + status,
			Code:    openapi3.CodeMissingResponse,
			Message: i18n.T(openapi3.CodeMissingResponse, nil),
			Hint:    "a response requires a description",
		}}
	}
	var d responseDecl
	for _, o := range opts {
		o(&d)
	}
	r := &spec.Response{Description: description}
	if len(d.content) > 0 {
		cm, err := d.content.compile()
		if err != nil {
			return nil, err
		}
		r.Content = cm
	}
	if len(d.headers) > 0 {
		hm := spec.NewMap[*spec.Header]()
		for _, h := range d.headers {
			s, err := Compile(h.field, CompileOpt{})
			if err != nil {
				return nil, err
			}
			hm.Set(h.name, &spec.Header{Description: h.description, Schema: s})
		}
		r.Headers = hm
	}
	return r, nil
}

// CheckStatus enforces the response status rule: "default", or an integer
// in [100,599].
func CheckStatus(status string) error {
	if status == "default" {
		return nil
	}
	n, err := strconv.Atoi(status)
	if err != nil || n < 100 || n > 599 {
		return openapi3.Issues{{
			Path:    "/responses/" + status,
			Code:    openapi3.CodeInvalidStatusCode,
			Message: i18n.T(openapi3.CodeInvalidStatusCode, nil),
			Params:  map[string]any{"status": status},
		}}
	}
	return nil
}
