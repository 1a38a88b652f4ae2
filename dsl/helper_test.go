package dsl_test

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

// normalize marshals v to JSON and back into plain any values so tests can
// compare structure without caring about concrete node types.
func normalize(t *testing.T, v any) any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var out any
	require.NoError(t, json.Unmarshal(b, &out))
	return out
}

// dig walks a normalized tree through nested object keys.
func dig(t *testing.T, v any, keys ...string) any {
	t.Helper()
	for _, k := range keys {
		m, ok := v.(map[string]any)
		require.True(t, ok, "expected object while descending to %q", k)
		v, ok = m[k]
		require.True(t, ok, "missing key %q", k)
	}
	return v
}
