package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	openapi3 "github.com/reoring/openapi3"
	"github.com/reoring/openapi3/dsl"
	"github.com/reoring/openapi3/render"
	"github.com/reoring/openapi3/spec"
)

func buildDoc(t *testing.T) *spec.Document {
	t.Helper()
	b := dsl.New()
	require.NoError(t, b.Info(spec.Info{Title: "Petstore", Version: "1.0.0"}))

	pet := dsl.Object().
		Field("name", openapi3.String).Required().
		Field("animal_type", openapi3.String).Required().
		Field("tags", openapi3.ArrayOf(openapi3.String)).Optional()
	_, err := b.Components().Schema("Pet", pet)
	require.NoError(t, err)

	p := b.Path("/pets")
	require.NoError(t, p.Get().Response("200", "pet list",
		dsl.WithContent(dsl.JSON(openapi3.ArrayOf(openapi3.Ref("Pet"))))))
	require.NoError(t, p.Done())

	doc, err := b.Document()
	require.NoError(t, err)
	return doc
}

func TestJSON_TopLevelKeyOrder(t *testing.T) {
	out, err := render.JSON(buildDoc(t))
	require.NoError(t, err)

	s := string(out)
	want := []string{`"openapi"`, `"info"`, `"servers"`, `"paths"`, `"components"`}
	last := -1
	for _, key := range want {
		i := strings.Index(s, key)
		require.GreaterOrEqual(t, i, 0, "missing %s", key)
		assert.Greater(t, i, last, "%s out of order", key)
		last = i
	}
}

func TestJSON_PropertyOrderPreserved(t *testing.T) {
	out, err := render.JSON(buildDoc(t))
	require.NoError(t, err)

	s := string(out)
	assert.Less(t, strings.Index(s, `"name"`), strings.Index(s, `"animal_type"`))
	assert.Less(t, strings.Index(s, `"animal_type"`), strings.Index(s, `"tags"`))
}

func TestJSONIndent_IsValidJSON(t *testing.T) {
	out, err := render.JSONIndent(buildDoc(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "{\n  \"openapi\""))
	compact, err := render.JSON(buildDoc(t))
	require.NoError(t, err)
	assert.JSONEq(t, string(compact), string(out))
}

func TestYAML_RoundTripsAndKeepsOrder(t *testing.T) {
	out, err := render.YAML(buildDoc(t))
	require.NoError(t, err)

	s := string(out)
	assert.True(t, strings.HasPrefix(s, "openapi: 3.0.0\n"))
	assert.Less(t, strings.Index(s, "name:"), strings.Index(s, "animal_type:"))

	var m map[string]any
	require.NoError(t, yaml.Unmarshal(out, &m))
	assert.Equal(t, "3.0.0", m["openapi"])
	info, ok := m["info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Petstore", info["title"])
}

func TestEmptyComponentsOmitted(t *testing.T) {
	b := dsl.New()
	require.NoError(t, b.Info(spec.Info{Title: "t", Version: "1"}))
	doc, err := b.Document()
	require.NoError(t, err)

	out, err := render.JSON(doc)
	require.NoError(t, err)
	assert.NotContains(t, string(out), `"components"`)
	assert.Contains(t, string(out), `"paths":{}`)
}

func TestWriters(t *testing.T) {
	doc := buildDoc(t)

	var jb bytes.Buffer
	require.NoError(t, render.WriteJSON(&jb, doc))
	indented, err := render.JSONIndent(doc)
	require.NoError(t, err)
	assert.Equal(t, indented, jb.Bytes())

	var yb bytes.Buffer
	require.NoError(t, render.WriteYAML(&yb, doc))
	assert.True(t, strings.HasPrefix(yb.String(), "openapi:"))
}
