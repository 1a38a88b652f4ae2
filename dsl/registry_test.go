package dsl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	openapi3 "github.com/reoring/openapi3"
	g "github.com/reoring/openapi3/dsl"
	"github.com/reoring/openapi3/spec"
)

func TestRegistry_BuildOnceAndStableReferences(t *testing.T) {
	r := g.NewRegistry()
	calls := 0
	ref, err := r.Register(g.CategorySchemas, "Pet", func() (any, error) {
		calls++
		return &spec.Schema{Type: "object"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "#/components/schemas/Pet", ref.Ref)

	// reference() any number of times yields structurally identical nodes
	// and never triggers another build.
	for i := 0; i < 3; i++ {
		assert.Equal(t, ref, r.Reference(g.CategorySchemas, "Pet"))
	}
	assert.Equal(t, 1, calls)
}

func TestRegistry_ForwardReferenceBeforeRegister(t *testing.T) {
	r := g.NewRegistry()
	ref := r.Reference(g.CategorySchemas, "Owner")
	assert.Equal(t, "#/components/schemas/Owner", ref.Ref)
	assert.False(t, r.Has(g.CategorySchemas, "Owner"))

	_, err := r.Schema("Owner", g.Object().Field("name", openapi3.String).Required())
	require.NoError(t, err)
	assert.True(t, r.Has(g.CategorySchemas, "Owner"))
}

func TestRegistry_IdempotentReRegisterIsNoOp(t *testing.T) {
	r := g.NewRegistry()
	obj := g.Object().Field("name", openapi3.String).Required()
	_, err := r.Schema("Pet", obj)
	require.NoError(t, err)

	same := g.Object().Field("name", openapi3.String).Required()
	ref, err := r.Schema("Pet", same)
	require.NoError(t, err)
	assert.Equal(t, "#/components/schemas/Pet", ref.Ref)
}

func TestRegistry_ConflictingReRegisterFails(t *testing.T) {
	r := g.NewRegistry()
	_, err := r.Schema("Pet", g.Object().Field("name", openapi3.String).Required())
	require.NoError(t, err)

	_, err = r.Schema("Pet", g.Object().Field("name", openapi3.Int64).Required())
	require.Error(t, err)
	assert.True(t, openapi3.HasCode(err, openapi3.CodeDuplicateComponent))
}

func TestRegistry_CategoriesAreIndependentNamespaces(t *testing.T) {
	r := g.NewRegistry()
	_, err := r.Schema("NotFound", g.Object().Field("message", openapi3.String).Required())
	require.NoError(t, err)

	// The same name under responses is not a collision.
	ref, err := r.Response("NotFound", "The resource was not found")
	require.NoError(t, err)
	assert.Equal(t, "#/components/responses/NotFound", ref.Ref)
}

func TestRegistry_ParameterComponent(t *testing.T) {
	r := g.NewRegistry()
	ref, err := r.Parameter("PageSize", g.InQuery, "page_size", openapi3.Int32, g.ParamDoc("Page size"))
	require.NoError(t, err)
	assert.Equal(t, "#/components/parameters/PageSize", ref.Ref)
}

func TestRegistry_RequestBodyComponent(t *testing.T) {
	r := g.NewRegistry()
	ref, err := r.RequestBody("NewPet", g.JSON(openapi3.Ref("Pet")), g.BodyRequired())
	require.NoError(t, err)
	assert.Equal(t, "#/components/requestBodies/NewPet", ref.Ref)
}
