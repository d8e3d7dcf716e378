package serialization

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/umisama/go-regexpcache"
)

// json - replacement of the standard encoding/json library, it is faster for larger payloads.
var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

const jsonContentTypeRegexp = `^application/([a-zA-Z0-9\.\-]+\+)?json$`

// IsJSONContentType returns true if the content type is a JSON media type,
// including suffixed types such as "application/vnd.api+json".
func IsJSONContentType(contentType string) bool {
	return regexpcache.MustCompile(jsonContentTypeRegexp).MatchString(contentType)
}

// JSONWriterFactory produces writers serializing values to JSON.
// It accepts any JSON media type, see IsJSONContentType.
type JSONWriterFactory struct{}

// ValidContentType returns the canonical JSON content type.
func (JSONWriterFactory) ValidContentType() string {
	return "application/json"
}

// Writer returns a new JSON writer, it implements the WriterProvider interface.
func (f JSONWriterFactory) Writer(contentType string) (Writer, error) {
	if contentType == "" {
		return nil, fmt.Errorf("content type cannot be empty")
	}
	if !IsJSONContentType(contentType) {
		return nil, fmt.Errorf(`unsupported content type "%s", expected a JSON media type`, contentType)
	}
	return &jsonWriter{}, nil
}

// jsonWriter accumulates serialized values in an in-memory buffer.
type jsonWriter struct {
	buffer bytes.Buffer
}

func (w *jsonWriter) WriteValue(name string, value any) error {
	return w.write(name, value)
}

func (w *jsonWriter) WriteValues(name string, values []any) error {
	return w.write(name, values)
}

func (w *jsonWriter) write(name string, value any) error {
	if name != "" {
		value = map[string]any{name: value}
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf(`cannot encode JSON body: %w`, err)
	}
	w.buffer.Write(data)
	return nil
}

func (w *jsonWriter) Content() ([]byte, error) {
	return w.buffer.Bytes(), nil
}

func (w *jsonWriter) Close() error {
	return nil
}
