// Package serialization defines the writer surface used to turn structured
// model values into request payloads.
//
// A WriterFactory produces a Writer for one content type.
// The Registry maps content types to factories, it is filled during startup
// and read-only afterwards. The Default registry contains a JSON
// implementation, see JSONWriterFactory.
package serialization

// Writer serializes structured values into a payload of one content type.
type Writer interface {
	// WriteValue serializes a single structured value, optionally wrapped in the given name.
	WriteValue(name string, value any) error
	// WriteValues serializes a collection of structured values, optionally wrapped in the given name.
	WriteValues(name string, values []any) error
	// Content returns the payload accumulated by the previous writes.
	Content() ([]byte, error)
	// Close releases resources held by the writer, if any.
	Close() error
}

// WriterFactory produces writers for one content type.
type WriterFactory interface {
	WriterProvider
	// ValidContentType returns the content type the factory serializes to.
	ValidContentType() string
}

// WriterProvider provides a writer by a content type.
// It is implemented by each WriterFactory and by the Registry.
type WriterProvider interface {
	// Writer returns a writer producing payloads of the given content type.
	Writer(contentType string) (Writer, error)
}
