package request

import (
	"context"
	"net/http"
)

// ToHTTPRequest assembles the resolved URL, method, headers and body into
// a standard request value ready for an HTTP client.
// The method defaults to GET when not set.
func (d *Descriptor) ToHTTPRequest(ctx context.Context) (*http.Request, error) {
	urlStr, err := d.URL()
	if err != nil {
		return nil, err
	}

	method := d.method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, urlStr, d.body)
	if err != nil {
		return nil, err
	}
	for k, v := range d.headers {
		req.Header.Set(k, v)
	}
	return req, nil
}
