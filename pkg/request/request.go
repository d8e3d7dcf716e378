// Package request models one outgoing HTTP request as a mutable descriptor,
// see the NewDescriptor function.
//
// The descriptor accumulates a URL template, path and query parameters,
// headers, request options and a body, and resolves them into a final URL
// and payload for a transport layer. Payload serialization is delegated to
// the serialization package through the WriterProvider interface.
//
// The final URL is produced either by RFC 6570 template expansion or by a
// raw URL override, see Descriptor.URL.
package request
