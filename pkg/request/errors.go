package request

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is reported when a setter or the URL resolution is
// called with an inconsistent configuration, e.g. an empty raw URL or a
// missing required path parameter.
var ErrInvalidArgument = errors.New("invalid argument")

// URIResolutionError is reported when the final URL cannot be produced,
// either the template is malformed, it cannot be expanded, or a parameter
// value cannot be rendered.
type URIResolutionError struct {
	Template string
	Err      error
}

func (e *URIResolutionError) Error() string {
	return fmt.Sprintf(`cannot resolve url template "%s": %s`, e.Template, e.Err)
}

func (e *URIResolutionError) Unwrap() error {
	return e.Err
}

// SerializationError wraps a failure of the payload writer or its factory,
// the original cause is preserved as the nested error.
type SerializationError struct {
	ContentType string
	Err         error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf(`cannot serialize "%s" request body: %s`, e.ContentType, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
