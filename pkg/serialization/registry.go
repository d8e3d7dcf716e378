package serialization

import (
	"fmt"
	"sync"
)

// Registry maps content types to writer factories.
// Factories are registered during startup, later lookups are read-only,
// so the registry can be shared by concurrent requests.
type Registry struct {
	lock      sync.RWMutex
	factories map[string]WriterFactory
}

// defaultRegistry is the process-wide registry with the JSON factory pre-registered.
var defaultRegistry = func() *Registry { //nolint:gochecknoglobals
	r := NewRegistry()
	r.Register(JSONWriterFactory{})
	return r
}()

// NewRegistry creates an empty writer factory registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]WriterFactory)}
}

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register adds the factory under its valid content type,
// a factory registered for the same content type earlier is replaced.
func (r *Registry) Register(factory WriterFactory) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.factories[factory.ValidContentType()] = factory
}

// Writer returns a writer for the given content type, it implements the WriterProvider interface.
func (r *Registry) Writer(contentType string) (Writer, error) {
	if contentType == "" {
		return nil, fmt.Errorf("content type cannot be empty")
	}

	r.lock.RLock()
	factory, found := r.factories[contentType]
	r.lock.RUnlock()

	if !found {
		return nil, fmt.Errorf(`no writer factory is registered for the content type "%s"`, contentType)
	}
	return factory.Writer(contentType)
}
