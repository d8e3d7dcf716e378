package request

// OptionKind identifies a request option type.
// The descriptor stores options unique per kind, adding an option of a
// kind already present replaces the prior one.
type OptionKind string

// Option is a request-scoped option carried by the descriptor to the
// transport layer, e.g. a per-request middleware toggle.
type Option interface {
	Kind() OptionKind
}

// Options returns all stored options.
func (d *Descriptor) Options() []Option {
	out := make([]Option, 0, len(d.options))
	for _, o := range d.options {
		out = append(out, o)
	}
	return out
}

// OptionByKind returns the stored option of the given kind, if any.
func (d *Descriptor) OptionByKind(kind OptionKind) (Option, bool) {
	o, found := d.options[kind]
	return o, found
}

// AddOptions stores the given options, the last one of a given kind wins.
func (d *Descriptor) AddOptions(options ...Option) {
	for _, o := range options {
		d.options[o.Kind()] = o
	}
}

// RemoveOptions deletes stored options by kind.
// Removing a kind that was never added is a no-op.
func (d *Descriptor) RemoveOptions(options ...Option) {
	for _, o := range options {
		delete(d.options, o.Kind())
	}
}
