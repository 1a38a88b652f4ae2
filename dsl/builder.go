package dsl

import (
	openapi3 "github.com/reoring/openapi3"
	"github.com/reoring/openapi3/i18n"
	"github.com/reoring/openapi3/spec"
)

// DefaultVersion is the OpenAPI version stamped on documents unless
// overridden with WithVersion.
const DefaultVersion = "3.0.0"

// Option configures a Builder session.
type Option func(*Builder)

// WithVersion overrides the document's openapi version string.
func WithVersion(v string) Option {
	return func(b *Builder) { b.version = v }
}

// Builder is one document-build session: it owns the component registry,
// the paths map and the document metadata, and materializes them into a
// spec.Document exactly once. Not safe for concurrent use; declarations
// run in caller order.
type Builder struct {
	version string

	info         *spec.Info
	servers      []*spec.Server
	paths        *spec.Map[*spec.PathItem]
	registry     *Registry
	tags         []*spec.Tag
	externalDocs *spec.ExternalDocs

	doc *spec.Document // memoized result; non-nil means frozen
}

// New creates an empty session.
func New(opts ...Option) *Builder {
	b := &Builder{
		version:  DefaultVersion,
		paths:    spec.NewMap[*spec.PathItem](),
		registry: NewRegistry(),
	}
	b.registry.guard = b.declarable
	for _, o := range opts {
		o(b)
	}
	return b
}

// Components returns the session's component registry.
func (b *Builder) Components() *Registry { return b.registry }

// Info declares the document metadata. Title and Version are checked at
// Document time, not here, so partial metadata can be staged early.
func (b *Builder) Info(info spec.Info) error {
	if err := b.declarable(); err != nil {
		return err
	}
	b.info = &info
	return nil
}

// Server declares a server. Variables must be bijective with the URL's
// {placeholder} set.
func (b *Builder) Server(url, description string, vars ...ServerVar) error {
	if err := b.declarable(); err != nil {
		return err
	}
	s, err := newServer(url, description, vars)
	if err != nil {
		return err
	}
	b.servers = append(b.servers, s)
	return nil
}

// Tag declares a documentation tag.
func (b *Builder) Tag(name, description string) error {
	if err := b.declarable(); err != nil {
		return err
	}
	b.tags = append(b.tags, &spec.Tag{Name: name, Description: description})
	return nil
}

// ExternalDocs declares the document-level external documentation link.
func (b *Builder) ExternalDocs(url, description string) error {
	if err := b.declarable(); err != nil {
		return err
	}
	b.externalDocs = &spec.ExternalDocs{URL: url, Description: description}
	return nil
}

// Path opens a path group for a URL template. The group's declarations
// take effect when its Done method runs.
func (b *Builder) Path(template string) *PathBuilder {
	return newPathBuilder(b, template)
}

// Document assembles the final document. The first successful call
// computes and caches it; later calls return the cached value and any
// further declaration on this session is rejected. A failed call (missing
// info) caches nothing, so the session can be repaired and materialized.
func (b *Builder) Document() (*spec.Document, error) {
	if b.doc != nil {
		return b.doc, nil
	}
	if b.info == nil || b.info.Title == "" || b.info.Version == "" {
		return nil, openapi3.Issues{{
			Path:    "/info",
			Code:    openapi3.CodeDocumentAssembly,
			Message: i18n.T(openapi3.CodeDocumentAssembly, nil),
			Hint:    "info.title and info.version are required",
		}}
	}
	servers := b.servers
	if len(servers) == 0 {
		servers = []*spec.Server{{URL: "/", Description: "Default server"}}
	}
	b.doc = &spec.Document{
		OpenAPI:      b.version,
		Info:         b.info,
		Servers:      servers,
		Paths:        b.paths,
		Components:   b.registry.components(),
		Tags:         b.tags,
		ExternalDocs: b.externalDocs,
	}
	return b.doc, nil
}

// declarable rejects declarations once the document has materialized.
func (b *Builder) declarable() error {
	if b.doc == nil {
		return nil
	}
	return openapi3.Issues{{
		Path:    "/",
		Code:    openapi3.CodeDocumentAssembly,
		Message: i18n.T(openapi3.CodeDocumentAssembly, nil),
		Hint:    "document already materialized; declarations are rejected",
	}}
}
