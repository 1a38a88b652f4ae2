package dsl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	openapi3 "github.com/reoring/openapi3"
	g "github.com/reoring/openapi3/dsl"
)

func TestCompile_Primitive(t *testing.T) {
	s, err := g.Compile(openapi3.Int64, g.CompileOpt{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"type": "integer", "format": "int64"}, normalize(t, s))
}

func TestCompile_PrimitiveWithOpts(t *testing.T) {
	s, err := g.Compile(openapi3.String, g.CompileOpt{
		Description: "The pet's name.",
		ReadOnly:    true,
		Example:     "Fido",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"type":        "string",
		"description": "The pet's name.",
		"readOnly":    true,
		"example":     "Fido",
	}, normalize(t, s))
}

func TestCompile_OptsOmittedWhenAbsent(t *testing.T) {
	// Absent metadata must be omitted, not emitted as false/null.
	s, err := g.Compile(openapi3.Boolean, g.CompileOpt{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"type": "boolean"}, normalize(t, s))
}

func TestCompile_AnyArray(t *testing.T) {
	s, err := g.Compile(openapi3.AnyArray(), g.CompileOpt{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"type":  "array",
		"items": map[string]any{},
	}, normalize(t, s))
}

func TestCompile_SingleArray(t *testing.T) {
	s, err := g.Compile(openapi3.ArrayOf(openapi3.Int64), g.CompileOpt{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "integer", "format": "int64"},
	}, normalize(t, s))
}

func TestCompile_MixedArrayPreservesOrder(t *testing.T) {
	s, err := g.Compile(openapi3.MixedArrayOf(openapi3.Int64, openapi3.Email), g.CompileOpt{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"type": "array",
		"items": map[string]any{
			"oneOf": []any{
				map[string]any{"type": "integer", "format": "int64"},
				map[string]any{"type": "string", "format": "email"},
			},
		},
	}, normalize(t, s))
}

func TestCompile_ComponentAlwaysReference(t *testing.T) {
	s, err := g.Compile(openapi3.Ref("Pet"), g.CompileOpt{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"$ref": "#/components/schemas/Pet"}, normalize(t, s))

	// Component members of arrays compile to references too.
	arr, err := g.Compile(openapi3.ArrayOf(openapi3.Ref("Pet")), g.CompileOpt{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"type":  "array",
		"items": map[string]any{"$ref": "#/components/schemas/Pet"},
	}, normalize(t, arr))
}

func TestCompile_NilFieldFailsFast(t *testing.T) {
	_, err := g.Compile(nil, g.CompileOpt{})
	require.Error(t, err)
	assert.True(t, openapi3.HasCode(err, openapi3.CodeInvalidType))
}
