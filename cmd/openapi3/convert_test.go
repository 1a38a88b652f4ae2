package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_JSONToYAMLKeepsOrder(t *testing.T) {
	in := `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{"/b":{},"/a":{}}}`
	out, err := Convert([]byte(in), "yaml")
	require.NoError(t, err)
	s := string(out)
	assert.Less(t, strings.Index(s, "/b"), strings.Index(s, "/a"))
	assert.Contains(t, s, "openapi: 3.0.0")
}

func TestConvert_JSONToYAMLUsesBlockStyle(t *testing.T) {
	in := `{"openapi":"3.0.0","info":{"title":"t","version":"1"}}`
	out, err := Convert([]byte(in), "yaml")
	require.NoError(t, err)
	s := string(out)
	assert.True(t, strings.HasPrefix(s, "openapi: 3.0.0\n"), "got %q", s)
	assert.Contains(t, s, "info:\n  title: t\n")
	assert.NotContains(t, s, "{")
}

func TestConvert_YAMLToJSONKeepsOrder(t *testing.T) {
	in := "openapi: 3.0.0\npaths:\n  /b: {}\n  /a: {}\n"
	out, err := Convert([]byte(in), "json")
	require.NoError(t, err)
	s := string(out)
	assert.Less(t, strings.Index(s, `"/b"`), strings.Index(s, `"/a"`))
}

func TestConvert_RoundTrip(t *testing.T) {
	in := `{"a":[1,2,{"b":true}],"c":null,"d":"x"}`
	y, err := Convert([]byte(in), "yaml")
	require.NoError(t, err)
	j, err := Convert(y, "json")
	require.NoError(t, err)
	assert.JSONEq(t, in, string(j))
}

func TestConvert_UnknownFormat(t *testing.T) {
	_, err := Convert([]byte("{}"), "toml")
	assert.Error(t, err)
}
