package dsl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	openapi3 "github.com/reoring/openapi3"
	g "github.com/reoring/openapi3/dsl"
	"github.com/reoring/openapi3/spec"
)

func TestNewRequestBody_EmptyContentFails(t *testing.T) {
	_, err := g.NewRequestBody(nil)
	require.Error(t, err)
}

func TestNewRequestBody_MultipleMediaTypesKeepOrder(t *testing.T) {
	content := g.JSON(openapi3.Ref("Pet")).With(spec.MediaXML, openapi3.Ref("Pet"))
	b, err := g.NewRequestBody(content, g.BodyDoc("A pet to add"), g.BodyRequired())
	require.NoError(t, err)
	assert.Equal(t, []string{spec.MediaJSON, spec.MediaXML}, b.Content.Keys())
	assert.True(t, b.Required)
	assert.Equal(t, "A pet to add", b.Description)
}
