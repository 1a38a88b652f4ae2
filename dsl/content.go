package dsl

import (
	openapi3 "github.com/reoring/openapi3"
	"github.com/reoring/openapi3/spec"
)

// ContentItem pairs a media type with the field describing its payload.
type ContentItem struct {
	MediaType string
	Field     openapi3.Field
}

// Content is an ordered list of media-type declarations for a request or
// response body.
type Content []ContentItem

// JSON is shorthand for a single application/json entry.
func JSON(f openapi3.Field) Content {
	return Content{{MediaType: spec.MediaJSON, Field: f}}
}

// Plain is shorthand for a single text/plain entry.
func Plain(f openapi3.Field) Content {
	return Content{{MediaType: spec.MediaPlain, Field: f}}
}

// With appends another media-type entry.
func (c Content) With(mediaType string, f openapi3.Field) Content {
	return append(c, ContentItem{MediaType: mediaType, Field: f})
}

// compile builds the media-type map, compiling each entry's field
// independently. Declaration order is preserved.
func (c Content) compile() (*spec.Map[*spec.MediaType], error) {
	m := spec.NewMap[*spec.MediaType]()
	for _, item := range c {
		s, err := Compile(item.Field, CompileOpt{})
		if err != nil {
			return nil, err
		}
		m.Set(item.MediaType, &spec.MediaType{Schema: s})
	}
	return m, nil
}
