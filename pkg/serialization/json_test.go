package serialization_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apikit/go-apikit/pkg/serialization"
)

func TestJSONWriter_SingleValue(t *testing.T) {
	t.Parallel()
	w, err := serialization.JSONWriterFactory{}.Writer("application/json")
	require.NoError(t, err)

	require.NoError(t, w.WriteValue("", map[string]any{"name": "foo"}))
	content, err := w.Content()
	require.NoError(t, err)
	assert.Equal(t, `{"name":"foo"}`, string(content))
	assert.NoError(t, w.Close())
}

func TestJSONWriter_Collection(t *testing.T) {
	t.Parallel()
	w, err := serialization.JSONWriterFactory{}.Writer("application/json")
	require.NoError(t, err)

	values := []any{
		map[string]any{"name": "foo"},
		map[string]any{"name": "bar"},
	}
	require.NoError(t, w.WriteValues("", values))
	content, err := w.Content()
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"foo"},{"name":"bar"}]`, string(content))
}

func TestJSONWriter_NamedValue(t *testing.T) {
	t.Parallel()
	w, err := serialization.JSONWriterFactory{}.Writer("application/json")
	require.NoError(t, err)

	require.NoError(t, w.WriteValue("user", map[string]any{"name": "foo"}))
	content, err := w.Content()
	require.NoError(t, err)
	assert.Equal(t, `{"user":{"name":"foo"}}`, string(content))
}

func TestJSONWriterFactory_ContentTypes(t *testing.T) {
	t.Parallel()
	f := serialization.JSONWriterFactory{}

	_, err := f.Writer("")
	assert.Error(t, err)

	_, err = f.Writer("text/plain")
	assert.Error(t, err)

	// Suffixed JSON media types are accepted.
	_, err = f.Writer("application/vnd.api+json")
	assert.NoError(t, err)
}

func TestIsJSONContentType(t *testing.T) {
	t.Parallel()
	assert.True(t, serialization.IsJSONContentType("application/json"))
	assert.True(t, serialization.IsJSONContentType("application/vnd.api+json"))
	assert.False(t, serialization.IsJSONContentType("application/octet-stream"))
	assert.False(t, serialization.IsJSONContentType("text/json-ish"))
}
