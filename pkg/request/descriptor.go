package request

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"strings"

	"github.com/yosida95/uritemplate/v3"

	"github.com/apikit/go-apikit/pkg/serialization"
)

const (
	// RawURLKey is the reserved path parameter key, a string value stored
	// under it overrides the URL template, see Descriptor.URL.
	RawURLKey = "request-raw-url"
	// BaseURLKey is the path parameter required when the URL template
	// contains the {+baseurl} token.
	BaseURLKey = "baseurl"
)

// Descriptor holds the mutable state of one not-yet-sent HTTP request.
//
// A descriptor is configured through its setters in any order and then
// resolved by the URL method. It is intended for exclusive use by one
// logical request, concurrent use from multiple goroutines is not
// supported.
type Descriptor struct {
	method      string
	urlTemplate string
	rawURL      string
	pathParams  map[string]any
	queryParams map[string]any
	headers     map[string]string
	options     map[OptionKind]Option
	body        io.Reader
}

// NewDescriptor creates an empty descriptor for the given HTTP method and
// RFC 6570 URL template.
func NewDescriptor(method, urlTemplate string) *Descriptor {
	return &Descriptor{
		method:      method,
		urlTemplate: urlTemplate,
		pathParams:  make(map[string]any),
		queryParams: make(map[string]any),
		headers:     make(map[string]string),
		options:     make(map[OptionKind]Option),
	}
}

// Method returns the HTTP method.
func (d *Descriptor) Method() string {
	return d.method
}

// SetMethod sets the HTTP method.
func (d *Descriptor) SetMethod(method string) {
	d.method = method
}

// URLTemplate returns the URL template.
func (d *Descriptor) URLTemplate() string {
	return d.urlTemplate
}

// SetURL sets the raw URL override.
// The override takes sole authority over the final URL, previously
// accumulated path and query parameters are cleared and all following
// URL calls return the override unchanged.
func (d *Descriptor) SetURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("url cannot be empty: %w", ErrInvalidArgument)
	}
	d.rawURL = rawURL
	d.pathParams = make(map[string]any)
	d.queryParams = make(map[string]any)
	return nil
}

// URL resolves the final request URL.
//
// If the raw URL override is set, directly by SetURL or via the reserved
// RawURLKey path parameter, it is returned unchanged. Otherwise the URL
// template is expanded against the merged path and query parameters,
// query parameters winning on a key collision. Date and time parameter
// values are rendered in RFC 3339 form.
func (d *Descriptor) URL() (string, error) {
	if d.rawURL != "" {
		return d.rawURL, nil
	}

	if raw, ok := d.pathParams[RawURLKey].(string); ok {
		if err := d.SetURL(raw); err != nil {
			return "", err
		}
		return d.rawURL, nil
	}

	if strings.Contains(strings.ToLower(d.urlTemplate), "{+"+BaseURLKey+"}") {
		if _, found := d.pathParams[BaseURLKey]; !found {
			return "", fmt.Errorf(`template "%s" requires the "%s" path parameter: %w`, d.urlTemplate, BaseURLKey, ErrInvalidArgument)
		}
	}

	tmpl, err := uritemplate.New(d.urlTemplate)
	if err != nil {
		return "", &URIResolutionError{Template: d.urlTemplate, Err: err}
	}

	values := make(uritemplate.Values)
	for k, v := range d.pathParams {
		value, err := paramValue(v)
		if err != nil {
			return "", &URIResolutionError{Template: d.urlTemplate, Err: err}
		}
		values.Set(k, value)
	}
	for k, v := range d.queryParams {
		value, err := paramValue(v)
		if err != nil {
			return "", &URIResolutionError{Template: d.urlTemplate, Err: err}
		}
		values.Set(k, value)
	}

	out, err := tmpl.Expand(values)
	if err != nil {
		return "", &URIResolutionError{Template: d.urlTemplate, Err: err}
	}
	return out, nil
}

// PathParams returns a copy of the URL path parameters.
func (d *Descriptor) PathParams() map[string]any {
	return maps.Clone(d.pathParams)
}

// SetPathParams replaces all path parameters.
func (d *Descriptor) SetPathParams(params map[string]any) {
	d.pathParams = make(map[string]any, len(params))
	maps.Copy(d.pathParams, params)
}

// AndPathParam sets a single path parameter.
func (d *Descriptor) AndPathParam(key string, value any) {
	d.pathParams[key] = value
}

// QueryParams returns a copy of the URL query parameters.
func (d *Descriptor) QueryParams() map[string]any {
	return maps.Clone(d.queryParams)
}

// AndQueryParam sets a single query parameter.
func (d *Descriptor) AndQueryParam(key string, value any) {
	d.queryParams[key] = value
}

// SetQueryParamsFrom reads query parameters from the given options object.
// Empty values are skipped entirely, they do not appear as empty
// parameters. Zero numbers and false are legitimate values and are kept.
func (d *Descriptor) SetQueryParamsFrom(opts QueryEncoder) {
	if opts == nil {
		return
	}
	for k, v := range opts.QueryParams() {
		if isEmptyValue(v) {
			continue
		}
		d.queryParams[k] = v
	}
}

// Headers returns a copy of the request headers.
func (d *Descriptor) Headers() map[string]string {
	return maps.Clone(d.headers)
}

// SetHeaders merges the given headers into the existing header map,
// existing keys are kept unless overwritten, last value wins per key.
func (d *Descriptor) SetHeaders(headers map[string]string) {
	for k, v := range headers {
		d.headers[k] = v
	}
}

// Body returns the request body, nil if no body is set.
func (d *Descriptor) Body() io.Reader {
	return d.body
}

// SetStreamContent assigns the given stream as the request body and sets
// the Content-Type header to the binary content type.
// A previously set body and content type are overwritten.
func (d *Descriptor) SetStreamContent(content io.Reader) {
	d.body = content
	d.headers[HeaderContentType] = ContentTypeBinary
}

// SetContentFromValues builds the request body by serializing the given
// values with a writer obtained from the provider for the content type.
// A single value is written as one structured object, multiple values as
// a collection. Failures of the provider or the writer are reported as a
// SerializationError with the original cause preserved.
func (d *Descriptor) SetContentFromValues(provider serialization.WriterProvider, contentType string, values ...any) error {
	if len(values) == 0 {
		return fmt.Errorf("no values to serialize: %w", ErrInvalidArgument)
	}

	writer, err := provider.Writer(contentType)
	if err != nil {
		return &SerializationError{ContentType: contentType, Err: err}
	}

	d.headers[HeaderContentType] = contentType

	if len(values) == 1 {
		err = writer.WriteValue("", values[0])
	} else {
		err = writer.WriteValues("", values)
	}
	if err != nil {
		return &SerializationError{ContentType: contentType, Err: err}
	}

	content, err := writer.Content()
	if err != nil {
		return &SerializationError{ContentType: contentType, Err: err}
	}

	d.body = bytes.NewReader(content)
	return nil
}

// SetJSONContent builds the request body by serializing the values to JSON
// using the default writer registry.
func (d *Descriptor) SetJSONContent(values ...any) error {
	return d.SetContentFromValues(serialization.Default(), ContentTypeJSON, values...)
}
