package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apikit/go-apikit/pkg/request"
)

// listOptions is an example options object for a listing operation.
// The emitted names are aliases, they differ from the field names.
type listOptions struct {
	Search     string
	Limit      int
	IncludeAll bool
	Tags       []string
}

func (o listOptions) QueryParams() map[string]any {
	return map[string]any{
		"q":           o.Search,
		"limit":       o.Limit,
		"include_all": o.IncludeAll,
		"tags":        o.Tags,
	}
}

func TestSetQueryParamsFrom(t *testing.T) {
	t.Parallel()
	d := request.NewDescriptor("GET", "/search{?q,limit,include_all,tags}")
	d.SetQueryParamsFrom(listOptions{Search: "go", Limit: 20, Tags: []string{"a"}})

	assert.Equal(t, map[string]any{
		"q":           "go",
		"limit":       20,
		"include_all": false,
		"tags":        []string{"a"},
	}, d.QueryParams())
}

func TestSetQueryParamsFrom_SkipsEmptyValues(t *testing.T) {
	t.Parallel()
	d := request.NewDescriptor("GET", "/search{?q,limit,include_all,tags}")

	// An empty string and a nil slice are skipped,
	// zero numbers and false are legitimate values and are kept.
	d.SetQueryParamsFrom(listOptions{})
	assert.Equal(t, map[string]any{"limit": 0, "include_all": false}, d.QueryParams())

	out, err := d.URL()
	require.NoError(t, err)
	assert.Equal(t, "/search?limit=0&include_all=false", out)
}

func TestSetQueryParamsFrom_Nil(t *testing.T) {
	t.Parallel()
	d := request.NewDescriptor("GET", "/search")
	d.SetQueryParamsFrom(nil)
	assert.Empty(t, d.QueryParams())
}

func TestURL_SliceValue(t *testing.T) {
	t.Parallel()
	d := request.NewDescriptor("GET", "/search{?tags}")
	d.SetQueryParamsFrom(listOptions{Tags: []string{"a", "b"}})

	// A non-empty slice is rendered as a list, not as an empty string.
	out, err := d.URL()
	require.NoError(t, err)
	assert.Equal(t, "/search?tags=a,b", out)
}

func TestURL_MapValue(t *testing.T) {
	t.Parallel()
	d := request.NewDescriptor("GET", "/search{?filter}")
	d.AndQueryParam("filter", map[string]string{"b": "2", "a": "1"})

	out, err := d.URL()
	require.NoError(t, err)
	assert.Equal(t, "/search?filter=a,1,b,2", out)
}

func TestURL_UncastableValue(t *testing.T) {
	t.Parallel()
	d := request.NewDescriptor("GET", "/search{?q}")
	d.AndQueryParam("q", struct{ A int }{A: 1})

	_, err := d.URL()
	require.Error(t, err)
	resolutionErr := &request.URIResolutionError{}
	assert.ErrorAs(t, err, &resolutionErr)
	assert.Contains(t, err.Error(), "cannot cast")
}
