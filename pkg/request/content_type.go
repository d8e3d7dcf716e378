package request

const (
	// HeaderContentType is the content type header name.
	HeaderContentType = "Content-Type"
	// ContentTypeBinary is the content type set by SetStreamContent.
	ContentTypeBinary = "application/octet-stream"
	// ContentTypeJSON is the content type used by SetJSONContent.
	ContentTypeJSON = "application/json"
)
