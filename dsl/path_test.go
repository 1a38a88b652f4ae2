package dsl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	openapi3 "github.com/reoring/openapi3"
	g "github.com/reoring/openapi3/dsl"
	"github.com/reoring/openapi3/spec"
)

func newSession(t *testing.T) *g.Builder {
	t.Helper()
	b := g.New()
	require.NoError(t, b.Info(spec.Info{Title: "t", Version: "1"}))
	return b
}

func okResponse(t *testing.T, o *g.OperationBuilder) {
	t.Helper()
	require.NoError(t, o.Response("200", "ok"))
}

func TestPath_TypedTemplateNormalizesAndAddsParam(t *testing.T) {
	b := newSession(t)
	p := b.Path("/pets/{id:Int64}")
	okResponse(t, p.Get())
	require.NoError(t, p.Done())

	doc, err := b.Document()
	require.NoError(t, err)
	assert.Equal(t, []string{"/pets/{id}"}, doc.Paths.Keys())

	item, ok := doc.Paths.Get("/pets/{id}")
	require.True(t, ok)
	require.Len(t, item.Get.Parameters, 1)
	pp := item.Get.Parameters[0]
	assert.Equal(t, "id", pp.Name)
	assert.Equal(t, "path", pp.In)
	assert.True(t, pp.Required)
	assert.Equal(t, "integer", pp.Schema.Type)
	assert.Equal(t, "int64", pp.Schema.Format)
}

func TestPath_UntypedPlaceholderDefaultsToString(t *testing.T) {
	b := newSession(t)
	p := b.Path("/users/{name}")
	okResponse(t, p.Get())
	require.NoError(t, p.Done())

	doc, err := b.Document()
	require.NoError(t, err)
	item, _ := doc.Paths.Get("/users/{name}")
	require.Len(t, item.Get.Parameters, 1)
	assert.Equal(t, "string", item.Get.Parameters[0].Schema.Type)
}

func TestPath_UnknownTypeName(t *testing.T) {
	b := newSession(t)
	p := b.Path("/pets/{id:Whatever}")
	okResponse(t, p.Get())
	err := p.Done()
	require.Error(t, err)
	assert.True(t, openapi3.HasCode(err, openapi3.CodeUnknownPathParamType))
}

func TestPath_MalformedTemplate(t *testing.T) {
	b := newSession(t)
	p := b.Path("/pets/{id")
	okResponse(t, p.Get())
	err := p.Done()
	require.Error(t, err)
	assert.True(t, openapi3.HasCode(err, openapi3.CodeUnknownPathParamType))
}

func TestPath_TypeNameResolvesToParameterComponent(t *testing.T) {
	b := newSession(t)
	_, err := b.Components().Parameter("PetID", g.InPath, "id", openapi3.Int64)
	require.NoError(t, err)

	p := b.Path("/pets/{id:PetID}")
	okResponse(t, p.Get())
	require.NoError(t, p.Done())

	doc, err := b.Document()
	require.NoError(t, err)
	item, _ := doc.Paths.Get("/pets/{id}")
	require.Len(t, item.Get.Parameters, 1)
	assert.Equal(t, "#/components/parameters/PetID", item.Get.Parameters[0].Ref)
}

func TestPath_MethodParamsPrecedePathParams(t *testing.T) {
	b := newSession(t)
	p := b.Path("/pets/{id:Int64}")
	get := p.Get()
	require.NoError(t, get.QueryParam("verbose", openapi3.Boolean))
	require.NoError(t, get.QueryParam("fields", openapi3.String))
	okResponse(t, get)
	require.NoError(t, p.Done())

	doc, err := b.Document()
	require.NoError(t, err)
	item, _ := doc.Paths.Get("/pets/{id}")
	require.Len(t, item.Get.Parameters, 3)
	assert.Equal(t, "verbose", item.Get.Parameters[0].Name)
	assert.Equal(t, "fields", item.Get.Parameters[1].Name)
	assert.Equal(t, "id", item.Get.Parameters[2].Name)
}

func TestPath_GetWithBodyRejected(t *testing.T) {
	b := newSession(t)
	p := b.Path("/pets")
	get := p.Get()
	require.NoError(t, get.Body(g.JSON(openapi3.Ref("Pet"))))
	okResponse(t, get)
	err := p.Done()
	require.Error(t, err)
	assert.True(t, openapi3.HasCode(err, openapi3.CodeGetRequestBody))

	// The failed group must not have touched the paths map.
	doc, err := b.Document()
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Paths.Len())
}

func TestPath_OperationWithoutResponsesRejected(t *testing.T) {
	b := newSession(t)
	p := b.Path("/pets")
	p.Get().Summary("no responses declared")
	err := p.Done()
	require.Error(t, err)
	assert.True(t, openapi3.HasCode(err, openapi3.CodeMissingResponse))
}

func TestPath_DuplicateRequestBodyAtDeclaration(t *testing.T) {
	b := newSession(t)
	post := b.Path("/pets").Post()
	require.NoError(t, post.Body(g.JSON(openapi3.Ref("Pet"))))
	err := post.Body(g.JSON(openapi3.ArrayOf(openapi3.Ref("Pet"))))
	require.Error(t, err)
	assert.True(t, openapi3.HasCode(err, openapi3.CodeDuplicateRequestBody))
}

func TestPath_FlushAfterFailureLeavesCleanAccumulator(t *testing.T) {
	b := newSession(t)
	p := b.Path("/pets")
	get := p.Get()
	require.NoError(t, get.Body(g.JSON(openapi3.Ref("Pet"))))
	okResponse(t, get)
	require.Error(t, p.Done())

	// Reusing the same group after the failure starts from empty state:
	// no leaked GET body, so a plain GET now succeeds.
	okResponse(t, p.Get())
	require.NoError(t, p.Done())

	doc, err := b.Document()
	require.NoError(t, err)
	item, ok := doc.Paths.Get("/pets")
	require.True(t, ok)
	assert.Nil(t, item.Get.RequestBody)
}

func TestPath_RedeclaredTemplateMergesPerMethod(t *testing.T) {
	b := newSession(t)

	p1 := b.Path("/pets")
	okResponse(t, p1.Get().Summary("v1"))
	require.NoError(t, p1.Done())

	p2 := b.Path("/pets")
	okResponse(t, p2.Get().Summary("v2"))
	post := p2.Post()
	require.NoError(t, post.Body(g.JSON(openapi3.Ref("Pet"))))
	okResponse(t, post)
	require.NoError(t, p2.Done())

	doc, err := b.Document()
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Paths.Len())
	item, _ := doc.Paths.Get("/pets")
	// Last write replaced the GET definition; POST was added.
	assert.Equal(t, "v2", item.Get.Summary)
	require.NotNil(t, item.Post)
}

func TestPath_GroupLevelMetadataAndParams(t *testing.T) {
	b := newSession(t)
	p := b.Path("/pets").Summary("Pets").Doc("Everything about pets")
	require.NoError(t, p.Param(g.InHeader, "X-Trace", openapi3.String))
	okResponse(t, p.Get())
	require.NoError(t, p.Done())

	doc, err := b.Document()
	require.NoError(t, err)
	item, _ := doc.Paths.Get("/pets")
	assert.Equal(t, "Pets", item.Summary)
	assert.Equal(t, "Everything about pets", item.Description)
	require.Len(t, item.Parameters, 1)
	assert.Equal(t, "X-Trace", item.Parameters[0].Name)
}

func TestPath_ResponseAndBodyRefs(t *testing.T) {
	b := newSession(t)
	_, err := b.Components().Response("NotFound", "The resource was not found")
	require.NoError(t, err)
	_, err = b.Components().RequestBody("NewPet", g.JSON(openapi3.Ref("Pet")))
	require.NoError(t, err)

	p := b.Path("/pets")
	post := p.Post()
	require.NoError(t, post.BodyRef("NewPet"))
	require.NoError(t, post.Response("201", "created"))
	require.NoError(t, post.ResponseRef("404", "NotFound"))
	require.NoError(t, p.Done())

	doc, err := b.Document()
	require.NoError(t, err)
	item, _ := doc.Paths.Get("/pets")
	assert.Equal(t, "#/components/requestBodies/NewPet", item.Post.RequestBody.Ref)
	r, ok := item.Post.Responses.Get("404")
	require.True(t, ok)
	assert.Equal(t, "#/components/responses/NotFound", r.Ref)
}
